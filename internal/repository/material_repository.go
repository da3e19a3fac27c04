package repository

import (
	"gorm.io/gorm"

	"github.com/seha22/studienhouse/internal/model"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(material *model.Material) error {
	return r.DB.Create(material).Error
}

func (r *MaterialRepository) FindByModule(moduleID string) ([]model.Material, error) {
	var materials []model.Material
	err := r.DB.Where("module_id = ?", moduleID).Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}
