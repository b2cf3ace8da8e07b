package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"points-rewards/internal/pkg/config"
	"points-rewards/internal/usecase/commands"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioImageStore keeps benefit images in an S3-compatible bucket and
// returns the public URL of each stored object.
type MinioImageStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewMinioImageStore(cfg config.StorageConfig) (*MinioImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinioImageStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

// EnsureBucket creates the bucket on first start.
func (s *MinioImageStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	slog.Info("Storage bucket created", slog.String("bucket", s.bucket))
	return nil
}

func (s *MinioImageStore) Upload(ctx context.Context, key string, img commands.ImageUpload) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, img.Body, img.Size, minio.PutObjectOptions{
		ContentType: img.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", key, err)
	}
	slog.Debug("Image stored",
		slog.String("bucket", s.bucket),
		slog.String("key", info.Key),
		slog.Int64("size", info.Size),
	)
	return s.baseURL + "/" + key, nil
}
