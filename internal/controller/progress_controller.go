package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/service"
	"github.com/seha22/studienhouse/internal/util"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type SaveProgressRequest struct {
	StudentID uint   `json:"studentId" binding:"required"`
	ModuleID  string `json:"moduleId" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=not_started in_progress done"`
	Score     *int   `json:"score"`
}

// SaveProgress godoc
// @Summary Record module progress
// @Description Upserts the (student, module) progress row; students may only write their own
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SaveProgressRequest true "Progress fields"
// @Success 200 {object} object{ok=bool}
// @Failure 400 {object} util.Response "Bad Request"
// @Failure 403 {object} util.Response "Forbidden"
// @Router /api/progress [put]
func (ctl *ProgressController) SaveProgress(c *gin.Context) {
	var req SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "studentId, moduleId, and status are required")
		return
	}

	id := util.GetIdentity(c)

	err := ctl.ProgressService.Save(id, req.StudentID, req.ModuleID, model.ProgressStatus(req.Status), req.Score)
	if err != nil {
		if errors.Is(err, util.ErrForbidden) {
			util.Forbidden(c)
			return
		}
		util.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
