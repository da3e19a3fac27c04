package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seha22/studienhouse/internal/repository"
	"github.com/seha22/studienhouse/pkg/logger"
	"github.com/seha22/studienhouse/pkg/monitoring"
)

// ModulePublishHook is the fan-out collaborator run after a module flips
// to published: it recomputes dependent progress/visibility records. It
// must fire exactly once per successful publish; its failure is reported
// but never rolls the flag back.
type ModulePublishHook interface {
	ModulePublished(ctx context.Context, moduleID string) error
}

// StoredProcPublishHook invokes the publish_module procedure in the
// relational store.
type StoredProcPublishHook struct {
	DB *gorm.DB
}

func (h *StoredProcPublishHook) ModulePublished(ctx context.Context, moduleID string) error {
	return h.DB.WithContext(ctx).Exec("CALL publish_module(?)", moduleID).Error
}

// FanoutError marks a publish whose flag flip committed but whose
// fan-out hook failed.
type FanoutError struct {
	ModuleID string
	Err      error
}

func (e *FanoutError) Error() string {
	return fmt.Sprintf("publish fan-out for module %s: %v", e.ModuleID, e.Err)
}

func (e *FanoutError) Unwrap() error {
	return e.Err
}

// PublishService owns the visibility state machine. Courses and modules
// carry one independent boolean each; publishing an already-published
// entity succeeds and still refreshes its timestamp.
type PublishService struct {
	CourseRepo *repository.CourseRepository
	ModuleRepo *repository.ModuleRepository
	Hook       ModulePublishHook
}

func NewPublishService(courseRepo *repository.CourseRepository, moduleRepo *repository.ModuleRepository, hook ModulePublishHook) *PublishService {
	return &PublishService{
		CourseRepo: courseRepo,
		ModuleRepo: moduleRepo,
		Hook:       hook,
	}
}

func (s *PublishService) PublishCourse(id string) error {
	if err := s.CourseRepo.SetPublished(id, true); err != nil {
		return err
	}
	monitoring.PublishCounter.WithLabelValues("course", "publish").Inc()
	return nil
}

func (s *PublishService) UnpublishCourse(id string) error {
	if err := s.CourseRepo.SetPublished(id, false); err != nil {
		return err
	}
	monitoring.PublishCounter.WithLabelValues("course", "unpublish").Inc()
	return nil
}

// PublishModule flips the flag, then runs the fan-out hook once. A hook
// failure comes back as *FanoutError so callers can report it while the
// publish itself stands.
func (s *PublishService) PublishModule(ctx context.Context, id string) error {
	if err := s.ModuleRepo.SetPublished(id, true); err != nil {
		return err
	}
	monitoring.PublishCounter.WithLabelValues("module", "publish").Inc()

	if s.Hook != nil {
		if err := s.Hook.ModulePublished(ctx, id); err != nil {
			logger.Log.Error("module publish fan-out failed",
				zap.String("moduleId", id), zap.Error(err))
			return &FanoutError{ModuleID: id, Err: err}
		}
	}
	return nil
}

func (s *PublishService) UnpublishModule(id string) error {
	if err := s.ModuleRepo.SetPublished(id, false); err != nil {
		return err
	}
	monitoring.PublishCounter.WithLabelValues("module", "unpublish").Inc()
	return nil
}
