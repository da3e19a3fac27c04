package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/service"
	"github.com/seha22/studienhouse/internal/util"
)

type ModuleController struct {
	CatalogService *service.CatalogService
	PublishService *service.PublishService
}

func NewModuleController(catalogService *service.CatalogService, publishService *service.PublishService) *ModuleController {
	return &ModuleController{
		CatalogService: catalogService,
		PublishService: publishService,
	}
}

type CreateModuleRequest struct {
	CourseID        string `json:"courseId" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Summary         string `json:"summary"`
	OrderIndex      int    `json:"orderIndex"`
	DurationMinutes int    `json:"durationMinutes"`
}

// CreateModule godoc
// @Summary Create a module (admin or teacher)
// @Tags catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateModuleRequest true "Module fields"
// @Success 201 {object} util.Response{data=model.Module}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/modules [post]
func (ctl *ModuleController) CreateModule(c *gin.Context) {
	var req CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	module := &model.Module{
		CourseID:        req.CourseID,
		Title:           req.Title,
		Summary:         req.Summary,
		OrderIndex:      req.OrderIndex,
		DurationMinutes: req.DurationMinutes,
	}
	if err := ctl.CatalogService.CreateModule(module); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.BadRequest(c, "course not found")
			return
		}
		util.BadRequest(c, err.Error())
		return
	}

	util.Created(c, module)
}

// PublishModule godoc
// @Summary Publish a module (admin or teacher)
// @Description Flips the flag and runs the publish_module fan-out once; a fan-out failure is reported but the flag stays flipped
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Module ID"
// @Success 200 {object} object{ok=bool,moduleId=string}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/modules/{id}/publish [post]
func (ctl *ModuleController) PublishModule(c *gin.Context) {
	moduleID := c.Param("id")
	err := ctl.PublishService.PublishModule(c.Request.Context(), moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c)
			return
		}
		// The flag flip committed even when only the fan-out failed;
		// the error is surfaced so the caller can retry the fan-out.
		util.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "moduleId": moduleID})
}

// UnpublishModule godoc
// @Summary Unpublish a module (admin or teacher)
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Module ID"
// @Success 200 {object} object{ok=bool,moduleId=string,is_published=bool}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/modules/{id}/unpublish [post]
func (ctl *ModuleController) UnpublishModule(c *gin.Context) {
	moduleID := c.Param("id")
	if err := ctl.PublishService.UnpublishModule(moduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c)
			return
		}
		util.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "moduleId": moduleID, "is_published": false})
}
