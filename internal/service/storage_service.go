package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/seha22/studienhouse/internal/config"
	"github.com/seha22/studienhouse/internal/util"
)

// StorageProvider is the object-storage capability the catalog and CMS
// consume: upload bytes under a bucket, resolve a public URL, delete.
type StorageProvider interface {
	EnsureBucket(ctx context.Context, bucket string) error
	Upload(ctx context.Context, bucket, object string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, bucket, object string) error
	PublicURL(bucket, object string) string
}

// LocalStorageProvider keeps objects on disk under <LocalPath>/<bucket>.
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) EnsureBucket(ctx context.Context, bucket string) error {
	dir := filepath.Join(p.Config.LocalPath, bucket)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func (p *LocalStorageProvider) Upload(ctx context.Context, bucket, object string, reader io.Reader, size int64, contentType string) error {
	dst := filepath.Join(p.Config.LocalPath, bucket, filepath.FromSlash(object))
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	return err
}

func (p *LocalStorageProvider) Delete(ctx context.Context, bucket, object string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, bucket, filepath.FromSlash(object)))
}

func (p *LocalStorageProvider) PublicURL(bucket, object string) string {
	base := strings.TrimSuffix(p.Config.PublicBaseURL, "/")
	if base == "" {
		base = "/uploads"
	}
	return base + "/" + bucket + "/" + object
}

// MinioStorageProvider backs storage with a MinIO (or any S3-compatible)
// server.
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := p.Client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	err = p.Client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "exists") {
		return err
	}
	return nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, bucket, object string, reader io.Reader, size int64, contentType string) error {
	_, err := p.Client.PutObject(ctx, bucket, object, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (p *MinioStorageProvider) Delete(ctx context.Context, bucket, object string) error {
	return p.Client.RemoveObject(ctx, bucket, object, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) PublicURL(bucket, object string) string {
	if p.Config.PublicBaseURL != "" {
		return strings.TrimSuffix(p.Config.PublicBaseURL, "/") + "/" + bucket + "/" + object
	}
	scheme := "http"
	if p.Config.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, p.Config.MinioEndpoint, bucket, object)
}

// OSSStorageProvider backs storage with Aliyun OSS. Bucket names get the
// configured prefix since OSS buckets are account-global.
type OSSStorageProvider struct {
	Config *config.StorageConfig
	Client *oss.Client
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Config: cfg, Client: client}, nil
}

func (p *OSSStorageProvider) bucketName(bucket string) string {
	return p.Config.OSSBucketPrefix + bucket
}

func (p *OSSStorageProvider) EnsureBucket(ctx context.Context, bucket string) error {
	name := p.bucketName(bucket)
	exists, err := p.Client.IsBucketExist(name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return p.Client.CreateBucket(name)
}

func (p *OSSStorageProvider) Upload(ctx context.Context, bucket, object string, reader io.Reader, size int64, contentType string) error {
	b, err := p.Client.Bucket(p.bucketName(bucket))
	if err != nil {
		return err
	}
	return b.PutObject(object, reader, oss.ContentType(contentType))
}

func (p *OSSStorageProvider) Delete(ctx context.Context, bucket, object string) error {
	b, err := p.Client.Bucket(p.bucketName(bucket))
	if err != nil {
		return err
	}
	return b.DeleteObject(object)
}

func (p *OSSStorageProvider) PublicURL(bucket, object string) string {
	return fmt.Sprintf("https://%s.%s/%s", p.bucketName(bucket), p.Config.OSSEndpoint, object)
}

// StorageService picks a provider from config, falling back to local disk.
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	switch cfg.Storage.Type {
	case util.StorageMinio:
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err == nil {
			provider = p
		}
	case util.StorageOSS:
		p, err := NewOSSStorageProvider(&cfg.Storage)
		if err == nil {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &StorageService{Provider: provider}
}

func (s *StorageService) EnsureBucket(ctx context.Context, bucket string) error {
	return s.Provider.EnsureBucket(ctx, bucket)
}

func (s *StorageService) Upload(ctx context.Context, bucket, object string, reader io.Reader, size int64, contentType string) error {
	return s.Provider.Upload(ctx, bucket, object, reader, size, contentType)
}

func (s *StorageService) Delete(ctx context.Context, bucket, object string) error {
	return s.Provider.Delete(ctx, bucket, object)
}

func (s *StorageService) PublicURL(bucket, object string) string {
	return s.Provider.PublicURL(bucket, object)
}
