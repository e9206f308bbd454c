package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/query"
	"github.com/ilyde-platform/ilyde-datasets/internal/storage"
)

// MockDatasetRepository is a mock implementation of DatasetRepository
type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) Create(ctx context.Context, dataset *domain.Dataset) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

func (m *MockDatasetRepository) Update(ctx context.Context, dataset *domain.Dataset) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

func (m *MockDatasetRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDatasetRepository) SetVersion(ctx context.Context, id uuid.UUID, label string, at time.Time) error {
	args := m.Called(ctx, id, label, at)
	return args.Error(0)
}

func (m *MockDatasetRepository) First(ctx context.Context, p query.Predicate, sort query.Sort) (*domain.Dataset, error) {
	args := m.Called(ctx, p, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

func (m *MockDatasetRepository) Find(ctx context.Context, p query.Predicate, sort query.Sort) ([]domain.Dataset, error) {
	args := m.Called(ctx, p, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dataset), args.Error(1)
}

// MockVersionRepository is a mock implementation of VersionRepository
type MockVersionRepository struct {
	mock.Mock
}

func (m *MockVersionRepository) Create(ctx context.Context, version *domain.Version) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

func (m *MockVersionRepository) First(ctx context.Context, p query.Predicate, sort query.Sort) (*domain.Version, error) {
	args := m.Called(ctx, p, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Version), args.Error(1)
}

func (m *MockVersionRepository) Find(ctx context.Context, p query.Predicate, sort query.Sort) ([]domain.Version, error) {
	args := m.Called(ctx, p, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Version), args.Error(1)
}

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) CreateBucket(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockObjectStorage) ListObjects(ctx context.Context, bucket string) ([]storage.Object, error) {
	args := m.Called(ctx, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Object), args.Error(1)
}
