package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/repository"
	"github.com/seha22/studienhouse/internal/service"
	"github.com/seha22/studienhouse/internal/util"
)

func newCatalogRouter(db *gorm.DB, id *util.Identity) *gin.Engine {
	ctl := NewCatalogController(service.NewCatalogService(
		repository.NewCourseRepository(db), repository.NewModuleRepository(db)))
	router := gin.New()
	router.GET("/api/catalog", asIdentity(id), ctl.GetCatalog)
	return router
}

func seedTestCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	pub := &model.Course{Title: "Published", IsPublished: true}
	draft := &model.Course{Title: "Draft"}
	for _, c := range []*model.Course{pub, draft} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("Failed to seed course: %v", err)
		}
	}
	mods := []model.Module{
		{CourseID: pub.ID, Title: "Visible", OrderIndex: 1, IsPublished: true},
		{CourseID: pub.ID, Title: "Hidden", OrderIndex: 2},
	}
	for i := range mods {
		if err := db.Create(&mods[i]).Error; err != nil {
			t.Fatalf("Failed to seed module: %v", err)
		}
	}
}

func TestGetCatalogAnonymousSeesPublishedOnly(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	router := newCatalogRouter(db, nil)

	w := doJSON(t, router, http.MethodGet, "/api/catalog", nil)

	expectStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	courses := body["courses"].([]interface{})
	if len(courses) != 1 {
		t.Fatalf("Expected one published course, got %d", len(courses))
	}
	course := courses[0].(map[string]interface{})
	if course["title"] != "Published" {
		t.Errorf("Expected published course, got %v", course["title"])
	}
	modules := course["modules"].([]interface{})
	if len(modules) != 1 {
		t.Errorf("Expected drafts filtered from module list, got %d modules", len(modules))
	}
}

func TestGetCatalogAllRequiresAuth(t *testing.T) {
	db := newTestDB(t)
	router := newCatalogRouter(db, nil)

	w := doJSON(t, router, http.MethodGet, "/api/catalog?all=1", nil)

	expectStatus(t, w, http.StatusUnauthorized)
}

func TestGetCatalogAllForbiddenForStudents(t *testing.T) {
	db := newTestDB(t)
	router := newCatalogRouter(db, &util.Identity{UserID: 1, Role: model.Student})

	w := doJSON(t, router, http.MethodGet, "/api/catalog?all=1", nil)

	expectStatus(t, w, http.StatusForbidden)
}

func TestGetCatalogAllForStaff(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)

	for _, role := range []model.UserRole{model.Teacher, model.Admin} {
		router := newCatalogRouter(db, &util.Identity{UserID: 1, Role: role})

		w := doJSON(t, router, http.MethodGet, "/api/catalog?all=1", nil)

		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		courses := body["courses"].([]interface{})
		if len(courses) != 2 {
			t.Errorf("role %s: expected full tree with drafts, got %d courses", role, len(courses))
		}
	}
}

func TestGetCatalogStudentIgnoredAllFlagOff(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	// Without all=1 a signed-in student gets the same published view as
	// an anonymous caller.
	router := newCatalogRouter(db, &util.Identity{UserID: 1, Role: model.Student})

	w := doJSON(t, router, http.MethodGet, "/api/catalog", nil)

	expectStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	courses := body["courses"].([]interface{})
	if len(courses) != 1 {
		t.Errorf("Expected published-only view, got %d courses", len(courses))
	}
}
