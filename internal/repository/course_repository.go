package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/seha22/studienhouse/internal/model"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// FindPublishedTree loads the catalog the anonymous site sees: published
// courses only, each carrying only its published modules (ordered by
// order_index) with all their materials.
func (r *CourseRepository) FindPublishedTree() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Where("is_published = ?", true).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_published = ?", true).Order("order_index ASC")
		}).
		Preload("Modules.Materials").
		Order("title ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// FindFullTree loads every course and module regardless of publish state.
func (r *CourseRepository) FindFullTree() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Preload("Modules.Materials").
		Order("title ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// SetPublished flips the visibility flag and always refreshes updated_at,
// even when the flag does not change.
func (r *CourseRepository) SetPublished(id string, published bool) error {
	res := r.DB.Model(&model.Course{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_published": published,
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
