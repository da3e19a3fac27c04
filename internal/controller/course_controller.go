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

type CourseController struct {
	CatalogService *service.CatalogService
	PublishService *service.PublishService
}

func NewCourseController(catalogService *service.CatalogService, publishService *service.PublishService) *CourseController {
	return &CourseController{
		CatalogService: catalogService,
		PublishService: publishService,
	}
}

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	Mode        string `json:"mode"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

// CreateCourse godoc
// @Summary Create a course (admin only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateCourseRequest true "Course fields"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/courses [post]
func (ctl *CourseController) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	course := &model.Course{
		Title:       req.Title,
		Category:    req.Category,
		Mode:        req.Mode,
		Level:       req.Level,
		Description: req.Description,
	}
	if err := ctl.CatalogService.CreateCourse(course); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	util.Created(c, course)
}

// PublishCourse godoc
// @Summary Publish a course (admin only)
// @Description Idempotent: republishing still succeeds and refreshes updated_at
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Success 200 {object} object{ok=bool,courseId=string,is_published=bool}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/courses/{id}/publish [post]
func (ctl *CourseController) PublishCourse(c *gin.Context) {
	courseID := c.Param("id")
	if err := ctl.PublishService.PublishCourse(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c)
			return
		}
		util.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "courseId": courseID, "is_published": true})
}

// UnpublishCourse godoc
// @Summary Unpublish a course (admin only)
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Success 200 {object} object{ok=bool,courseId=string,is_published=bool}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/courses/{id}/unpublish [post]
func (ctl *CourseController) UnpublishCourse(c *gin.Context) {
	courseID := c.Param("id")
	if err := ctl.PublishService.UnpublishCourse(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c)
			return
		}
		util.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "courseId": courseID, "is_published": false})
}
