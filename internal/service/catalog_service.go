package service

import (
	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/repository"
)

// CatalogService shapes the course → module → material tree by caller
// privilege. The privileged flag is decided at the route boundary; this
// layer only builds the matching query.
type CatalogService struct {
	CourseRepo *repository.CourseRepository
	ModuleRepo *repository.ModuleRepository
}

func NewCatalogService(courseRepo *repository.CourseRepository, moduleRepo *repository.ModuleRepository) *CatalogService {
	return &CatalogService{
		CourseRepo: courseRepo,
		ModuleRepo: moduleRepo,
	}
}

// GetCatalog returns the full tree for privileged callers and the
// published-only view otherwise. A module is visible to unprivileged
// readers only when both it and its course are published; materials of
// an included module are always returned.
func (s *CatalogService) GetCatalog(privileged bool) ([]model.Course, error) {
	if privileged {
		return s.CourseRepo.FindFullTree()
	}
	return s.CourseRepo.FindPublishedTree()
}

func (s *CatalogService) CreateCourse(course *model.Course) error {
	return s.CourseRepo.Create(course)
}

func (s *CatalogService) CreateModule(module *model.Module) error {
	if _, err := s.CourseRepo.FindByID(module.CourseID); err != nil {
		return err
	}
	return s.ModuleRepo.Create(module)
}
