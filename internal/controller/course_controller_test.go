package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/repository"
	"github.com/seha22/studienhouse/internal/service"
	"github.com/seha22/studienhouse/internal/util"
)

type fakeHook struct {
	calls int
	err   error
}

func (h *fakeHook) ModulePublished(ctx context.Context, moduleID string) error {
	h.calls++
	return h.err
}

func newPublishRouter(db *gorm.DB, hook service.ModulePublishHook) *gin.Engine {
	courseRepo := repository.NewCourseRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	catalog := service.NewCatalogService(courseRepo, moduleRepo)
	publish := service.NewPublishService(courseRepo, moduleRepo, hook)

	courseCtl := NewCourseController(catalog, publish)
	moduleCtl := NewModuleController(catalog, publish)

	admin := &util.Identity{UserID: 1, Role: model.Admin}
	router := gin.New()
	router.POST("/api/courses", asIdentity(admin), courseCtl.CreateCourse)
	router.POST("/api/courses/:id/publish", asIdentity(admin), courseCtl.PublishCourse)
	router.POST("/api/courses/:id/unpublish", asIdentity(admin), courseCtl.UnpublishCourse)
	router.POST("/api/modules", asIdentity(admin), moduleCtl.CreateModule)
	router.POST("/api/modules/:id/publish", asIdentity(admin), moduleCtl.PublishModule)
	router.POST("/api/modules/:id/unpublish", asIdentity(admin), moduleCtl.UnpublishModule)
	return router
}

func TestPublishCourseEndpoint(t *testing.T) {
	db := newTestDB(t)
	router := newPublishRouter(db, &fakeHook{})

	course := &model.Course{Title: "Kalkulus"}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("Failed to seed course: %v", err)
	}

	w := doJSON(t, router, http.MethodPost, "/api/courses/"+course.ID+"/publish", nil)

	expectStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	if body["ok"] != true || body["courseId"] != course.ID || body["is_published"] != true {
		t.Errorf("Unexpected publish body: %v", body)
	}

	var got model.Course
	db.First(&got, "id = ?", course.ID)
	if !got.IsPublished {
		t.Error("Expected course flag flipped")
	}
}

func TestPublishCourseNotFound(t *testing.T) {
	db := newTestDB(t)
	router := newPublishRouter(db, &fakeHook{})

	w := doJSON(t, router, http.MethodPost, "/api/courses/nope/publish", nil)

	expectStatus(t, w, http.StatusNotFound)
}

func TestUnpublishCourseEndpoint(t *testing.T) {
	db := newTestDB(t)
	router := newPublishRouter(db, &fakeHook{})

	course := &model.Course{Title: "Kalkulus", IsPublished: true}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("Failed to seed course: %v", err)
	}

	w := doJSON(t, router, http.MethodPost, "/api/courses/"+course.ID+"/unpublish", nil)

	expectStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	if body["is_published"] != false {
		t.Errorf("Expected is_published false, got %v", body)
	}
}

func TestPublishModuleEndpointRunsHook(t *testing.T) {
	db := newTestDB(t)
	hook := &fakeHook{}
	router := newPublishRouter(db, hook)

	course := &model.Course{Title: "Kalkulus"}
	db.Create(course)
	mod := &model.Module{CourseID: course.ID, Title: "Limit"}
	db.Create(mod)

	w := doJSON(t, router, http.MethodPost, "/api/modules/"+mod.ID+"/publish", nil)

	expectStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	if body["ok"] != true || body["moduleId"] != mod.ID {
		t.Errorf("Unexpected publish body: %v", body)
	}
	if hook.calls != 1 {
		t.Errorf("Expected fan-out hook to run once, got %d", hook.calls)
	}
}

func TestPublishModuleFanoutFailureReportsButCommits(t *testing.T) {
	db := newTestDB(t)
	hook := &fakeHook{err: errors.New("proc failed")}
	router := newPublishRouter(db, hook)

	course := &model.Course{Title: "Kalkulus"}
	db.Create(course)
	mod := &model.Module{CourseID: course.ID, Title: "Limit"}
	db.Create(mod)

	w := doJSON(t, router, http.MethodPost, "/api/modules/"+mod.ID+"/publish", nil)

	expectStatus(t, w, http.StatusBadRequest)

	var got model.Module
	db.First(&got, "id = ?", mod.ID)
	if !got.IsPublished {
		t.Error("Expected flag flip to stand despite fan-out failure")
	}
}

func TestCreateCourseAndModule(t *testing.T) {
	db := newTestDB(t)
	router := newPublishRouter(db, &fakeHook{})

	w := doJSON(t, router, http.MethodPost, "/api/courses", gin.H{
		"title":    "Matematika SD",
		"category": "matematika",
		"mode":     "online",
		"level":    "sd",
	})
	expectStatus(t, w, http.StatusCreated)

	var course model.Course
	if err := db.First(&course, "title = ?", "Matematika SD").Error; err != nil {
		t.Fatalf("Expected course persisted: %v", err)
	}
	if course.IsPublished {
		t.Error("Expected new course to start unpublished")
	}

	w = doJSON(t, router, http.MethodPost, "/api/modules", gin.H{
		"courseId":   course.ID,
		"title":      "Penjumlahan",
		"orderIndex": 1,
	})
	expectStatus(t, w, http.StatusCreated)

	var mod model.Module
	if err := db.First(&mod, "course_id = ?", course.ID).Error; err != nil {
		t.Fatalf("Expected module persisted: %v", err)
	}
	if mod.IsPublished {
		t.Error("Expected new module to start unpublished")
	}
}

func TestCreateModuleUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	router := newPublishRouter(db, &fakeHook{})

	w := doJSON(t, router, http.MethodPost, "/api/modules", gin.H{
		"courseId": "missing",
		"title":    "Yatim",
	})

	expectStatus(t, w, http.StatusBadRequest)

	var count int64
	db.Model(&model.Module{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no module for a missing course, got %d", count)
	}
}
