package storage

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig holds MinIO connection settings
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// MinioStore implements Store on a MinIO or S3-compatible endpoint
type MinioStore struct {
	client *minio.Client
	region string
}

// NewMinio creates a MinIO-backed store
func NewMinio(cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	return &MinioStore{client: client, region: region}, nil
}

// CreateBucket creates a bucket in the configured region
func (s *MinioStore) CreateBucket(ctx context.Context, name string) error {
	err := s.client.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: s.region})
	if err != nil {
		switch minio.ToErrorResponse(err).Code {
		case "BucketAlreadyOwnedByYou", "BucketAlreadyExists":
			return fmt.Errorf("%w: %s", ErrBucketExists, name)
		}
		return fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	return nil
}

// ListObjects lists every object in the bucket recursively
func (s *MinioStore) ListObjects(ctx context.Context, bucket string) ([]Object, error) {
	objects := []Object{}
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			if minio.ToErrorResponse(obj.Err).Code == "NoSuchBucket" {
				return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
			}
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		objects = append(objects, Object{Name: obj.Key, Size: obj.Size})
	}
	return objects, nil
}

// Ping checks that the endpoint accepts authenticated requests
func (s *MinioStore) Ping(ctx context.Context) error {
	if _, err := s.client.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio ping failed: %w", err)
	}
	return nil
}
