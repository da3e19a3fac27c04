package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/service"
	"github.com/seha22/studienhouse/internal/util"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// GetCatalog godoc
// @Summary Get the course catalog
// @Description Published courses and modules for anonymous callers; all=1 returns the full tree for admins and teachers
// @Tags catalog
// @Produce json
// @Param all query string false "Set to 1 to include unpublished entries (admin/teacher only)"
// @Success 200 {object} object{courses=[]model.Course}
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 500 {object} util.Response "Internal Server Error"
// @Router /api/catalog [get]
func (ctl *CatalogController) GetCatalog(c *gin.Context) {
	all := c.Query("all") == "1"

	if all {
		id := util.GetIdentity(c)
		if id == nil {
			util.Unauthorized(c)
			return
		}
		if id.Role != model.Admin && id.Role != model.Teacher {
			util.Forbidden(c)
			return
		}
	}

	courses, err := ctl.CatalogService.GetCatalog(all)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}
