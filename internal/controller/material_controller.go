package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/service"
	"github.com/seha22/studienhouse/internal/util"
)

type MaterialController struct {
	MaterialService *service.MaterialService
}

func NewMaterialController(materialService *service.MaterialService) *MaterialController {
	return &MaterialController{MaterialService: materialService}
}

type CreateMaterialRequest struct {
	ModuleID     string `json:"moduleId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	MaterialType string `json:"materialType" binding:"required,oneof=file link"`
	StoragePath  string `json:"storagePath"`
	URL          string `json:"url"`
}

// CreateMaterial godoc
// @Summary Register a material (admin or teacher)
// @Description Records a material pointing at an already-stored object or an external link
// @Tags materials
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateMaterialRequest true "Material fields"
// @Success 200 {object} object{ok=bool}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/materials [post]
func (ctl *MaterialController) CreateMaterial(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	if req.StoragePath == "" && req.URL == "" {
		util.BadRequest(c, "storagePath or url is required")
		return
	}

	id := util.GetIdentity(c)

	material := &model.Material{
		ModuleID:     req.ModuleID,
		Title:        req.Title,
		MaterialType: model.MaterialType(req.MaterialType),
		StoragePath:  req.StoragePath,
		URL:          req.URL,
		CreatedBy:    id.UserID,
	}
	if err := ctl.MaterialService.Create(material); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UploadMaterial godoc
// @Summary Upload a material file (admin or teacher)
// @Description Stores the file in the materials bucket and records the material row
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Material file"
// @Param moduleId formData string true "Module ID"
// @Param title formData string true "Material title"
// @Param materialType formData string false "Material type (default file)"
// @Success 200 {object} object{ok=bool,path=string,url=string}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/materials/upload [post]
func (ctl *MaterialController) UploadMaterial(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "file, moduleId, and title are required")
		return
	}
	moduleID := c.PostForm("moduleId")
	title := c.PostForm("title")
	materialType := c.PostForm("materialType")
	if materialType == "" {
		materialType = string(model.MaterialFile)
	}

	// Validation short-circuits before any storage object or row exists.
	if moduleID == "" || title == "" {
		util.BadRequest(c, "file, moduleId, and title are required")
		return
	}

	id := util.GetIdentity(c)

	material, err := ctl.MaterialService.Upload(
		c.Request.Context(), file, moduleID, title, model.MaterialType(materialType), id.UserID)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "path": material.StoragePath, "url": material.URL})
}
