package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seha22/studienhouse/internal/model"
)

type LandingRepository struct {
	DB *gorm.DB
}

func NewLandingRepository(db *gorm.DB) *LandingRepository {
	return &LandingRepository{DB: db}
}

func (r *LandingRepository) FindBySlug(slug string) (*model.LandingRecord, error) {
	var rec model.LandingRecord
	err := r.DB.Where("slug = ?", slug).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Upsert creates the singleton document on first save and only ever
// updates it afterwards; the row is never deleted.
func (r *LandingRepository) Upsert(rec *model.LandingRecord) error {
	rec.UpdatedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_by", "updated_at"}),
	}).Create(rec).Error
}
