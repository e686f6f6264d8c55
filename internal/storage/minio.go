package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/lshigami/Zooracle/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

type minioStorage struct {
	client *minio.Client
	bucket string
	guard  bucketGuard
}

// bucketGuard makes sure the bucket exists before the first write. Only
// success is remembered, so a transient endpoint outage is retried on the
// next call instead of wedging the store until restart.
type bucketGuard struct {
	mu      sync.Mutex
	ensured bool
}

func (g *bucketGuard) ensure(ctx context.Context, exists func(context.Context) (bool, error), create func(context.Context) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ensured {
		return nil
	}
	ok, err := exists(ctx)
	if err != nil {
		return err
	}
	if !ok {
		if err := create(ctx); err != nil {
			return err
		}
	}
	g.ensured = true
	return nil
}

// NewMinioStorage connects to the MinIO endpoint from config. The bucket is
// created lazily on first use so startup does not depend on MinIO being up.
func NewMinioStorage(cfg *config.Config) (ObjectStorage, error) {
	endpoint := fmt.Sprintf("%s:%s", cfg.Minio.Host, cfg.Minio.Port)
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	log.Info().Str("endpoint", endpoint).Str("bucket", cfg.Minio.Bucket).Msg("Object storage client created")
	return &minioStorage{client: client, bucket: cfg.Minio.Bucket}, nil
}

func (s *minioStorage) ensureBucket(ctx context.Context) error {
	return s.guard.ensure(ctx,
		func(ctx context.Context) (bool, error) {
			exists, err := s.client.BucketExists(ctx, s.bucket)
			if err != nil {
				return false, fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
			}
			return exists, nil
		},
		func(ctx context.Context) error {
			if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
				return fmt.Errorf("failed to create bucket %q: %w", s.bucket, err)
			}
			return nil
		},
	)
}

func (s *minioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %q: %w", key, err)
	}
	return nil
}

func (s *minioStorage) Fetch(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get object %q: %w", key, err)
	}
	// GetObject is lazy: Stat forces the request so a missing key surfaces
	// here instead of on first Read.
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		var respErr minio.ErrorResponse
		if errors.As(err, &respErr) && respErr.Code == "NoSuchKey" {
			return nil, 0, ErrObjectNotFound
		}
		return nil, 0, fmt.Errorf("failed to stat object %q: %w", key, err)
	}
	return obj, info.Size, nil
}

func (s *minioStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %q: %w", key, err)
	}
	return nil
}
