package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seha22/studienhouse/internal/config"
	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/repository"
	"github.com/seha22/studienhouse/internal/util"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// resolve verifies the bearer token and loads the caller's profile row.
// The token only proves identity; the role always comes from the
// profiles table at request time.
func resolve(c *gin.Context, cfg *config.Config, users *repository.UserRepository) *util.Identity {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return nil
	}

	claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
	if err != nil {
		return nil
	}

	user, err := users.FindByID(claims.UserID)
	if err != nil || user.Disabled {
		return nil
	}

	return &util.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
}

// AuthMiddleware rejects the request with 401 unless a valid token maps
// to an existing profile. No mutation runs past this point on failure.
func AuthMiddleware(cfg *config.Config, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := resolve(c, cfg, users)
		if id == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		util.SetIdentity(c, id)
		c.Next()
	}
}

// TryAuthMiddleware resolves the caller when a valid credential is
// present but lets anonymous requests through. Used by routes that serve
// both audiences, like the catalog.
func TryAuthMiddleware(cfg *config.Config, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := resolve(c, cfg, users); id != nil {
			util.SetIdentity(c, id)
		}
		c.Next()
	}
}

// RoleMiddleware enforces the caller-supplied allow-list exactly: a role
// outside the list is forbidden, admin included.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := util.GetIdentity(c)
		if id == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		for _, role := range roles {
			if id.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}
