package service

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/repository"
	"github.com/seha22/studienhouse/internal/util"
	"github.com/seha22/studienhouse/pkg/logger"
)

const (
	landingCacheKey = "landing:" + model.LandingSlug
	landingCacheTTL = time.Minute
)

// LandingSource tells a caller whether the document came from the store
// or from the built-in default.
const (
	SourceDatabase = "database"
	SourceFallback = "fallback"
)

type LandingResult struct {
	Content   model.LandingContent `json:"content"`
	Source    string               `json:"source"`
	UpdatedAt *time.Time           `json:"updated_at"`
	UpdatedBy string               `json:"updated_by,omitempty"`
}

type LandingService struct {
	LandingRepo *repository.LandingRepository
	Storage     *StorageService
	Redis       *redis.Client
}

func NewLandingService(landingRepo *repository.LandingRepository, storage *StorageService, rdb *redis.Client) *LandingService {
	return &LandingService{
		LandingRepo: landingRepo,
		Storage:     storage,
		Redis:       rdb,
	}
}

// Fetch returns the landing document for the public site. It never
// fails: any retrieval problem degrades to the built-in default with
// fallback provenance.
func (s *LandingService) Fetch(ctx context.Context) *LandingResult {
	if cached := s.cacheGet(ctx); cached != nil {
		return cached
	}

	rec, err := s.LandingRepo.FindBySlug(model.LandingSlug)
	if err != nil || len(rec.Content) == 0 {
		return &LandingResult{
			Content: model.DefaultLandingContent(),
			Source:  SourceFallback,
		}
	}

	// Merging the stored partial onto the defaults backfills any field
	// added to the schema after the document was last saved.
	content, err := MergeLandingContent(model.DefaultLandingContent(), json.RawMessage(rec.Content))
	if err != nil {
		logger.Log.Warn("stored landing content unreadable, serving default", zap.Error(err))
		return &LandingResult{
			Content: model.DefaultLandingContent(),
			Source:  SourceFallback,
		}
	}

	result := &LandingResult{
		Content:   content,
		Source:    SourceDatabase,
		UpdatedAt: &rec.UpdatedAt,
		UpdatedBy: rec.UpdatedBy,
	}
	s.cacheSet(ctx, result)
	return result
}

// Save merges the partial payload onto the last known document and
// persists the result, so a partial PUT behaves as a targeted patch.
func (s *LandingService) Save(ctx context.Context, partial json.RawMessage, updatedBy string) (*LandingResult, error) {
	base := model.DefaultLandingContent()
	if rec, err := s.LandingRepo.FindBySlug(model.LandingSlug); err == nil && len(rec.Content) > 0 {
		if merged, err := MergeLandingContent(base, json.RawMessage(rec.Content)); err == nil {
			base = merged
		}
	}

	merged, err := MergeLandingContent(base, partial)
	if err != nil {
		return nil, util.ErrInvalidPayload
	}

	contentBytes, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}

	rec := &model.LandingRecord{
		Slug:      model.LandingSlug,
		Content:   contentBytes,
		UpdatedBy: updatedBy,
	}
	if err := s.LandingRepo.Upsert(rec); err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx)

	return &LandingResult{
		Content:   merged,
		Source:    SourceDatabase,
		UpdatedAt: &rec.UpdatedAt,
		UpdatedBy: rec.UpdatedBy,
	}, nil
}

// UploadAsset stores a CMS asset in the landing bucket and returns its
// public URL and storage path.
func (s *LandingService) UploadAsset(ctx context.Context, file *multipart.FileHeader, folder string) (url, path string, err error) {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		folder = "general"
	}

	if err := s.Storage.EnsureBucket(ctx, util.BucketLanding); err != nil {
		return "", "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	object := util.ObjectName(model.LandingSlug+"/"+folder, file.Filename)
	if err := s.Storage.Upload(ctx, util.BucketLanding, object, src, file.Size, contentType); err != nil {
		return "", "", err
	}

	return s.Storage.PublicURL(util.BucketLanding, object), object, nil
}

func (s *LandingService) cacheGet(ctx context.Context) *LandingResult {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(ctx, landingCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var result LandingResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}
	return &result
}

func (s *LandingService) cacheSet(ctx context.Context, result *LandingResult) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, landingCacheKey, raw, landingCacheTTL).Err(); err != nil {
		logger.Log.Debug("landing cache set failed", zap.Error(err))
	}
}

func (s *LandingService) cacheInvalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, landingCacheKey).Err(); err != nil {
		logger.Log.Debug("landing cache invalidate failed", zap.Error(err))
	}
}
