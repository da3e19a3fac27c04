package repository

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/seha22/studienhouse/internal/model"
)

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	published := &model.Course{Title: "Matematika SMP", IsPublished: true}
	draft := &model.Course{Title: "Algoritma Lanjut", IsPublished: false}
	for _, c := range []*model.Course{published, draft} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("Failed to seed course: %v", err)
		}
	}

	modules := []model.Module{
		{CourseID: published.ID, Title: "Bab 2", OrderIndex: 2, IsPublished: true},
		{CourseID: published.ID, Title: "Bab 1", OrderIndex: 1, IsPublished: true},
		{CourseID: published.ID, Title: "Bab 3 (draft)", OrderIndex: 3, IsPublished: false},
		{CourseID: draft.ID, Title: "Tersembunyi", OrderIndex: 1, IsPublished: true},
	}
	for i := range modules {
		if err := db.Create(&modules[i]).Error; err != nil {
			t.Fatalf("Failed to seed module: %v", err)
		}
	}
}

func TestFindPublishedTreeFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	courses, err := NewCourseRepository(db).FindPublishedTree()
	if err != nil {
		t.Fatalf("FindPublishedTree failed: %v", err)
	}

	if len(courses) != 1 {
		t.Fatalf("Expected only the published course, got %d", len(courses))
	}
	course := courses[0]
	if course.Title != "Matematika SMP" {
		t.Errorf("Expected published course, got %q", course.Title)
	}

	// A published module inside an unpublished course must never leak,
	// and drafts inside a published course stay hidden.
	if len(course.Modules) != 2 {
		t.Fatalf("Expected two published modules, got %d", len(course.Modules))
	}
	if course.Modules[0].Title != "Bab 1" || course.Modules[1].Title != "Bab 2" {
		t.Errorf("Expected modules ordered by order_index, got %q then %q",
			course.Modules[0].Title, course.Modules[1].Title)
	}
}

func TestFindFullTreeIncludesDrafts(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	courses, err := NewCourseRepository(db).FindFullTree()
	if err != nil {
		t.Fatalf("FindFullTree failed: %v", err)
	}

	if len(courses) != 2 {
		t.Fatalf("Expected both courses, got %d", len(courses))
	}
	// Title ASC puts the draft course first.
	if courses[0].Title != "Algoritma Lanjut" {
		t.Errorf("Expected courses ordered by title, got %q first", courses[0].Title)
	}
	if len(courses[1].Modules) != 3 {
		t.Errorf("Expected all modules including drafts, got %d", len(courses[1].Modules))
	}
}

func TestSetPublishedRefreshesTimestamp(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepository(db)

	course := &model.Course{Title: "Geometri", IsPublished: true}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("Failed to seed course: %v", err)
	}
	var before model.Course
	db.First(&before, "id = ?", course.ID)

	time.Sleep(10 * time.Millisecond)

	// Publishing an already-published course still succeeds and bumps
	// updated_at.
	if err := repo.SetPublished(course.ID, true); err != nil {
		t.Fatalf("SetPublished failed: %v", err)
	}

	var after model.Course
	db.First(&after, "id = ?", course.ID)
	if !after.IsPublished {
		t.Error("Expected course to stay published")
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("Expected updated_at refresh: before=%v after=%v", before.UpdatedAt, after.UpdatedAt)
	}
}

func TestSetPublishedUnknownID(t *testing.T) {
	db := newTestDB(t)

	err := NewCourseRepository(db).SetPublished("does-not-exist", true)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound, got %v", err)
	}
}
