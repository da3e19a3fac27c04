package service

import (
	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/repository"
	"github.com/seha22/studienhouse/internal/util"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

// Save upserts the (student, module) progress row. Students may only
// write their own row; the ownership check runs before anything touches
// the store.
func (s *ProgressService) Save(caller *util.Identity, studentID uint, moduleID string, status model.ProgressStatus, score *int) error {
	if caller.Role == model.Student && caller.UserID != studentID {
		return util.ErrForbidden
	}

	return s.ProgressRepo.Upsert(&model.Progress{
		StudentID: studentID,
		ModuleID:  moduleID,
		Status:    status,
		Score:     score,
	})
}
