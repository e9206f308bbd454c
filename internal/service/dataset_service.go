package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/id"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/metrics"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/pagination"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/query"
	"github.com/ilyde-platform/ilyde-datasets/internal/validator"
)

// DatasetRepository defines dataset document store operations
type DatasetRepository interface {
	Create(ctx context.Context, dataset *domain.Dataset) error
	// Update writes name, description and last_updated_at of a live dataset
	Update(ctx context.Context, dataset *domain.Dataset) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	SetVersion(ctx context.Context, id uuid.UUID, label string, at time.Time) error
	First(ctx context.Context, p query.Predicate, sort query.Sort) (*domain.Dataset, error)
	Find(ctx context.Context, p query.Predicate, sort query.Sort) ([]domain.Dataset, error)
}

// DatasetService handles dataset operations
type DatasetService struct {
	datasetRepo DatasetRepository
	log         *zap.Logger
}

// NewDatasetService creates a new dataset service
func NewDatasetService(datasetRepo DatasetRepository, log *zap.Logger) *DatasetService {
	return &DatasetService{
		datasetRepo: datasetRepo,
		log:         log.Named("datasets"),
	}
}

// Create creates a new dataset. Scope defaults to Local, and a Local
// dataset must name its project.
func (s *DatasetService) Create(ctx context.Context, input *domain.DatasetInput) (*domain.Dataset, error) {
	if err := validator.Validate(input); err != nil {
		return nil, s.fail("create dataset", err)
	}

	scope := input.Scope
	if scope == "" {
		scope = domain.DefaultScope
	}
	if scope == domain.ScopeLocal && input.Project == "" {
		return nil, s.fail("create dataset", apperrors.InvalidArgument("Local datasets must have project value set."))
	}

	now := time.Now().UTC()
	dataset := &domain.Dataset{
		ID:            id.New(),
		Name:          input.Name,
		Description:   input.Description,
		Scope:         scope,
		Project:       input.Project,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := s.datasetRepo.Create(ctx, dataset); err != nil {
		return nil, s.fail("create dataset", unknown("failed to create dataset", err))
	}

	metrics.RecordDatasetCreated()
	s.log.Info("dataset created",
		zap.String("dataset_id", dataset.ID.String()),
		zap.String("scope", string(dataset.Scope)),
	)

	return dataset, nil
}

// Retrieve returns a dataset that has not been soft-deleted
func (s *DatasetService) Retrieve(ctx context.Context, rawID string) (*domain.Dataset, error) {
	dataset, err := s.retrieve(ctx, rawID)
	if err != nil {
		return nil, s.fail("retrieve dataset", err, zap.String("dataset_id", rawID))
	}
	return dataset, nil
}

func (s *DatasetService) retrieve(ctx context.Context, rawID string) (*domain.Dataset, error) {
	p, err := query.Datasets.ByID(rawID)
	if err != nil {
		return nil, err
	}

	dataset, err := s.datasetRepo.First(ctx, p, query.NewestFirst)
	if err != nil {
		return nil, unknown("failed to retrieve dataset", err)
	}
	return dataset, nil
}

// Update overwrites the name and description of a live dataset. Scope,
// project and version are left untouched.
func (s *DatasetService) Update(ctx context.Context, input *domain.DatasetUpdateInput) (*domain.Dataset, error) {
	if input.ID == "" {
		return nil, s.fail("update dataset", apperrors.InvalidArgument("Dataset's id not provided."))
	}
	if err := validator.Validate(input); err != nil {
		return nil, s.fail("update dataset", err, zap.String("dataset_id", input.ID))
	}

	dataset, err := s.retrieve(ctx, input.ID)
	if err != nil {
		return nil, s.fail("update dataset", err, zap.String("dataset_id", input.ID))
	}

	dataset.Name = input.Name
	dataset.Description = input.Description
	dataset.LastUpdatedAt = time.Now().UTC()

	if err := s.datasetRepo.Update(ctx, dataset); err != nil {
		return nil, s.fail("update dataset", unknown("failed to update dataset", err), zap.String("dataset_id", input.ID))
	}

	return dataset, nil
}

// SoftDelete flags a live dataset as deleted. The record and its versions
// stay in the store but disappear from every read.
func (s *DatasetService) SoftDelete(ctx context.Context, rawID string) (*domain.Status, error) {
	dataset, err := s.retrieve(ctx, rawID)
	if err != nil {
		return nil, s.fail("delete dataset", err, zap.String("dataset_id", rawID))
	}

	if err := s.datasetRepo.SoftDelete(ctx, dataset.ID); err != nil {
		return nil, s.fail("delete dataset", unknown("failed to delete dataset", err), zap.String("dataset_id", rawID))
	}

	metrics.RecordDatasetDeleted()
	s.log.Info("dataset deleted", zap.String("dataset_id", dataset.ID.String()))

	return &domain.Status{Status: http.StatusOK, Message: "Successfully delete dataset."}, nil
}

// Search returns a page of live datasets matching the filter, newest first
func (s *DatasetService) Search(ctx context.Context, req *domain.DatasetSearch) (*pagination.Result[domain.Dataset], error) {
	p, err := query.Datasets.Build(req.Query.Fields())
	if err != nil {
		return nil, s.fail("search datasets", err)
	}

	datasets, err := s.datasetRepo.Find(ctx, query.Datasets.Visible(p), query.NewestFirst)
	if err != nil {
		return nil, s.fail("search datasets", unknown("failed to search datasets", err))
	}

	result := pagination.Paginate(datasets, pagination.Request{Page: req.Page, Limit: req.Limit})
	return &result, nil
}

func (s *DatasetService) fail(op string, err error, fields ...zap.Field) error {
	return logFailure(s.log, op, err, fields...)
}
