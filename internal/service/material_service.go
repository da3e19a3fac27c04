package service

import (
	"context"
	"mime/multipart"

	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/repository"
	"github.com/seha22/studienhouse/internal/util"
)

type MaterialService struct {
	MaterialRepo *repository.MaterialRepository
	Storage      *StorageService
}

func NewMaterialService(materialRepo *repository.MaterialRepository, storage *StorageService) *MaterialService {
	return &MaterialService{
		MaterialRepo: materialRepo,
		Storage:      storage,
	}
}

func (s *MaterialService) Create(material *model.Material) error {
	return s.MaterialRepo.Create(material)
}

// Upload stores the file in the materials bucket under the module's
// prefix, then records the material row pointing at it. Validation has
// already happened at the boundary, so nothing is written on bad input.
func (s *MaterialService) Upload(ctx context.Context, file *multipart.FileHeader, moduleID, title string, materialType model.MaterialType, createdBy uint) (*model.Material, error) {
	if err := s.Storage.EnsureBucket(ctx, util.BucketMaterials); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	object := util.ObjectName(moduleID, file.Filename)
	if err := s.Storage.Upload(ctx, util.BucketMaterials, object, src, file.Size, contentType); err != nil {
		return nil, err
	}

	material := &model.Material{
		ModuleID:     moduleID,
		Title:        title,
		MaterialType: materialType,
		StoragePath:  object,
		URL:          s.Storage.PublicURL(util.BucketMaterials, object),
		CreatedBy:    createdBy,
	}
	if err := s.MaterialRepo.Create(material); err != nil {
		return nil, err
	}
	return material, nil
}
