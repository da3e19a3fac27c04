package util

import (
	"github.com/gin-gonic/gin"

	"github.com/seha22/studienhouse/internal/model"
)

const identityKey = "identity"

// Identity is the resolved caller: token verified, profile row loaded.
// Role always reflects the profiles table at request time.
type Identity struct {
	UserID uint
	Email  string
	Role   model.UserRole
}

func SetIdentity(c *gin.Context, id *Identity) {
	c.Set(identityKey, id)
}

func GetIdentity(c *gin.Context) *Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	id, ok := v.(*Identity)
	if !ok {
		return nil
	}
	return id
}
