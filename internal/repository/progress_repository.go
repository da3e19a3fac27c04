package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seha22/studienhouse/internal/model"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert writes the (student, module) row atomically: the database's
// conflict handling on the composite unique index resolves concurrent
// submissions to last-write-wins.
func (r *ProgressRepository) Upsert(p *model.Progress) error {
	now := time.Now()
	p.LastViewedAt = now
	p.UpdatedAt = now
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "module_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "score", "last_viewed_at", "updated_at"}),
	}).Create(p).Error
}

func (r *ProgressRepository) FindByStudent(studentID uint) ([]model.Progress, error) {
	var rows []model.Progress
	err := r.DB.Where("student_id = ?", studentID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ProgressRepository) FindByModule(moduleID string) ([]model.Progress, error) {
	var rows []model.Progress
	err := r.DB.Where("module_id = ?", moduleID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
