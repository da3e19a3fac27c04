package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/repository"
	"github.com/seha22/studienhouse/internal/service"
	"github.com/seha22/studienhouse/internal/util"
)

func newLandingRouter(db *gorm.DB, id *util.Identity) *gin.Engine {
	ctl := NewLandingController(service.NewLandingService(repository.NewLandingRepository(db), nil, nil))
	router := gin.New()
	router.GET("/api/landing", ctl.GetLanding)
	router.PUT("/api/landing", asIdentity(id), ctl.SaveLanding)
	return router
}

func TestGetLandingFallbackOnBrokenStore(t *testing.T) {
	// Unmigrated database: the landing table does not exist, so every
	// read fails and the handler must still answer 200.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	router := newLandingRouter(db, nil)

	w := doJSON(t, router, http.MethodGet, "/api/landing", nil)

	expectStatus(t, w, http.StatusOK)

	var result service.LandingResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode landing result: %v", err)
	}
	if result.Source != service.SourceFallback {
		t.Errorf("Expected source %q, got %q", service.SourceFallback, result.Source)
	}
	want := model.DefaultLandingContent()
	if result.Content.Hero.Title != want.Hero.Title {
		t.Errorf("Expected default hero title %q, got %q", want.Hero.Title, result.Content.Hero.Title)
	}
	if len(result.Content.Testimonials.Items) != len(want.Testimonials.Items) {
		t.Errorf("Expected complete default document in fallback")
	}
}

func TestSaveLandingThenGet(t *testing.T) {
	db := newTestDB(t)
	admin := &util.Identity{UserID: 1, Email: "admin@studienhouse.id", Role: model.Admin}
	router := newLandingRouter(db, admin)

	w := doJSON(t, router, http.MethodPut, "/api/landing", gin.H{
		"content": gin.H{"hero": gin.H{"title": "Judul Baru"}},
	})

	expectStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	if body["ok"] != true {
		t.Fatalf("Expected ok:true, got %v", body)
	}
	if body["updated_by"] != "admin@studienhouse.id" {
		t.Errorf("Expected updated_by from the caller, got %v", body["updated_by"])
	}

	w = doJSON(t, router, http.MethodGet, "/api/landing", nil)
	expectStatus(t, w, http.StatusOK)

	var result service.LandingResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode landing result: %v", err)
	}
	if result.Source != service.SourceDatabase {
		t.Errorf("Expected stored document, got source %q", result.Source)
	}
	if result.Content.Hero.Title != "Judul Baru" {
		t.Errorf("Expected saved title, got %q", result.Content.Hero.Title)
	}
	// Fields the partial never mentioned keep their defaults.
	if result.Content.Hero.CTALabel != model.DefaultLandingContent().Hero.CTALabel {
		t.Errorf("Expected untouched field preserved, got %q", result.Content.Hero.CTALabel)
	}
}

func TestSaveLandingRejectsEmptyContent(t *testing.T) {
	db := newTestDB(t)
	admin := &util.Identity{UserID: 1, Email: "admin@studienhouse.id", Role: model.Admin}
	router := newLandingRouter(db, admin)

	for _, body := range []gin.H{
		{},
		{"content": nil},
	} {
		w := doJSON(t, router, http.MethodPut, "/api/landing", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for %v, got %d", body, w.Code)
		}
	}

	var count int64
	db.Model(&model.LandingRecord{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected nothing persisted after rejected saves, got %d rows", count)
	}
}
