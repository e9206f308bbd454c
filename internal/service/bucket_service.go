package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/id"
)

// BucketService provisions buckets that versions are later taken from
type BucketService struct {
	storage ObjectStorage
	log     *zap.Logger
}

// NewBucketService creates a new bucket service
func NewBucketService(objectStorage ObjectStorage, log *zap.Logger) *BucketService {
	return &BucketService{storage: objectStorage, log: log.Named("buckets")}
}

// Create provisions an empty bucket under a freshly generated name
func (s *BucketService) Create(ctx context.Context) (*domain.Bucket, error) {
	name := id.NewBucketName()

	if err := s.storage.CreateBucket(ctx, name); err != nil {
		return nil, logFailure(s.log, "create bucket", unknown("failed to create bucket", err), zap.String("bucket", name))
	}

	s.log.Info("bucket created", zap.String("bucket", name))
	return &domain.Bucket{Name: name}, nil
}
