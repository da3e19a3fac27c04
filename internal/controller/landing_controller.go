package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seha22/studienhouse/internal/service"
	"github.com/seha22/studienhouse/internal/util"
)

type LandingController struct {
	LandingService *service.LandingService
}

func NewLandingController(landingService *service.LandingService) *LandingController {
	return &LandingController{LandingService: landingService}
}

// GetLanding godoc
// @Summary Get the landing page content
// @Description Never hard-fails: any retrieval problem serves the built-in default with source "fallback"
// @Tags landing
// @Produce json
// @Success 200 {object} service.LandingResult
// @Router /api/landing [get]
func (ctl *LandingController) GetLanding(c *gin.Context) {
	result := ctl.LandingService.Fetch(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

type SaveLandingRequest struct {
	Content json.RawMessage `json:"content"`
}

// SaveLanding godoc
// @Summary Update the landing page content (admin only)
// @Description Partial document merged onto the last saved one; omitted fields are preserved
// @Tags landing
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SaveLandingRequest true "Partial content"
// @Success 200 {object} object{ok=bool,content=model.LandingContent,updated_at=string,updated_by=string}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/landing [put]
func (ctl *LandingController) SaveLanding(c *gin.Context) {
	var req SaveLandingRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Content) == 0 || string(req.Content) == "null" {
		util.BadRequest(c, "Invalid content payload")
		return
	}

	id := util.GetIdentity(c)

	result, err := ctl.LandingService.Save(c.Request.Context(), req.Content, id.Email)
	if err != nil {
		if errors.Is(err, util.ErrInvalidPayload) {
			util.BadRequest(c, "Invalid content payload")
			return
		}
		util.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"content":    result.Content,
		"updated_at": result.UpdatedAt,
		"updated_by": result.UpdatedBy,
	})
}

// UploadLandingAsset godoc
// @Summary Upload a landing page asset (admin only)
// @Tags landing
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Asset file"
// @Param folder formData string false "Target folder (default general)"
// @Success 200 {object} object{ok=bool,url=string,path=string,uploaded_by=string}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/landing/upload [post]
func (ctl *LandingController) UploadLandingAsset(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "File is required")
		return
	}
	folder := c.PostForm("folder")

	id := util.GetIdentity(c)

	url, path, err := ctl.LandingService.UploadAsset(c.Request.Context(), file, folder)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"url":         url,
		"path":        path,
		"uploaded_by": id.Email,
	})
}
