package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/id"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/metrics"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/pagination"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/query"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/snapshot"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/versioning"
	"github.com/ilyde-platform/ilyde-datasets/internal/storage"
	"github.com/ilyde-platform/ilyde-datasets/internal/validator"
)

// VersionRepository defines version document store operations
type VersionRepository interface {
	Create(ctx context.Context, version *domain.Version) error
	First(ctx context.Context, p query.Predicate, sort query.Sort) (*domain.Version, error)
	Find(ctx context.Context, p query.Predicate, sort query.Sort) ([]domain.Version, error)
}

// ObjectStorage defines the object storage operations used by the services
type ObjectStorage interface {
	CreateBucket(ctx context.Context, name string) error
	ListObjects(ctx context.Context, bucket string) ([]storage.Object, error)
}

// VersionCommitter persists a new version and points its dataset at it
type VersionCommitter interface {
	Commit(ctx context.Context, version *domain.Version) error
}

// SequentialCommitter writes the version and then the dataset label as two
// independent store operations. If the second write fails the version
// exists while the dataset still carries its previous label.
type SequentialCommitter struct {
	versions VersionRepository
	datasets DatasetRepository
}

// NewSequentialCommitter creates a non-atomic version committer
func NewSequentialCommitter(versions VersionRepository, datasets DatasetRepository) *SequentialCommitter {
	return &SequentialCommitter{versions: versions, datasets: datasets}
}

// Commit inserts version then updates the dataset's version label
func (c *SequentialCommitter) Commit(ctx context.Context, version *domain.Version) error {
	if err := c.versions.Create(ctx, version); err != nil {
		return unknown("failed to create version", err)
	}

	if err := c.datasets.SetVersion(ctx, version.DatasetID, version.Name, version.CreatedAt); err != nil {
		metrics.RecordVersionCommitGap()
		return apperrors.Unknown("version created but dataset label not updated").
			WithDetail("version_id", version.ID.String()).
			WithError(err)
	}
	return nil
}

// VersionService handles version operations
type VersionService struct {
	datasetRepo DatasetRepository
	versionRepo VersionRepository
	storage     ObjectStorage
	committer   VersionCommitter
	log         *zap.Logger
}

// NewVersionService creates a new version service. A nil committer selects
// the sequential two-write commit.
func NewVersionService(
	datasetRepo DatasetRepository,
	versionRepo VersionRepository,
	objectStorage ObjectStorage,
	committer VersionCommitter,
	log *zap.Logger,
) *VersionService {
	if committer == nil {
		committer = NewSequentialCommitter(versionRepo, datasetRepo)
	}
	return &VersionService{
		datasetRepo: datasetRepo,
		versionRepo: versionRepo,
		storage:     objectStorage,
		committer:   committer,
		log:         log.Named("versions"),
	}
}

// Create snapshots the related bucket into a new version of a live dataset.
// The label is the successor of the dataset's latest version name.
func (s *VersionService) Create(ctx context.Context, input *domain.VersionInput) (*domain.Version, error) {
	if err := validator.Validate(input); err != nil {
		return nil, s.fail("create version", err)
	}

	version, err := s.create(ctx, input)
	if err != nil {
		return nil, s.fail("create version", err,
			zap.String("dataset_id", input.Dataset),
			zap.String("bucket", input.RelatedBucket),
		)
	}

	metrics.RecordVersionCreated(version.Size)
	s.log.Info("version created",
		zap.String("version_id", version.ID.String()),
		zap.String("dataset_id", version.DatasetID.String()),
		zap.String("name", version.Name),
		zap.Int("files", len(version.Manifest)),
		zap.Int64("size", version.Size),
	)

	return version, nil
}

func (s *VersionService) create(ctx context.Context, input *domain.VersionInput) (*domain.Version, error) {
	p, err := query.Datasets.ByID(input.Dataset)
	if err != nil {
		return nil, err
	}
	dataset, err := s.datasetRepo.First(ctx, p, query.NewestFirst)
	if err != nil {
		return nil, unknown("failed to retrieve dataset", err)
	}

	latest, err := s.latest(ctx, dataset)
	if err != nil {
		return nil, err
	}
	name, err := versioning.Next(latest)
	if err != nil {
		return nil, apperrors.Unknown("failed to compute version name").WithError(err)
	}

	objects, err := s.storage.ListObjects(ctx, input.RelatedBucket)
	if err != nil {
		if errors.Is(err, storage.ErrBucketNotFound) {
			return nil, apperrors.NotFound("bucket").WithError(err)
		}
		return nil, unknown("failed to list bucket objects", err)
	}
	manifest, size := snapshot.Aggregate(objects)

	version := &domain.Version{
		ID:            id.New(),
		Name:          name,
		DatasetID:     dataset.ID,
		RelatedBucket: input.RelatedBucket,
		Manifest:      manifest,
		Size:          size,
		Author:        input.Author,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.committer.Commit(ctx, version); err != nil {
		return nil, unknown("failed to commit version", err)
	}
	return version, nil
}

// latest returns the name of the dataset's newest version, or the initial
// label when it has none
func (s *VersionService) latest(ctx context.Context, dataset *domain.Dataset) (string, error) {
	last, err := s.versionRepo.First(ctx, query.Predicate{query.Eq(query.FieldDataset, dataset.ID)}, query.NameDesc)
	if apperrors.IsNotFound(err) {
		return versioning.Initial, nil
	}
	if err != nil {
		return "", unknown("failed to retrieve latest version", err)
	}
	return last.Name, nil
}

// Retrieve returns a version whose dataset is live
func (s *VersionService) Retrieve(ctx context.Context, rawID string) (*domain.Version, error) {
	p, err := query.Versions.ByID(rawID)
	if err != nil {
		return nil, s.fail("retrieve version", err, zap.String("version_id", rawID))
	}

	version, err := s.versionRepo.First(ctx, p, query.NewestFirst)
	if err != nil {
		return nil, s.fail("retrieve version", unknown("failed to retrieve version", err), zap.String("version_id", rawID))
	}
	return version, nil
}

// Search returns a page of versions of live datasets matching the filter,
// newest first
func (s *VersionService) Search(ctx context.Context, req *domain.VersionSearch) (*pagination.Result[domain.Version], error) {
	p, err := query.Versions.Build(req.Query.Fields())
	if err != nil {
		return nil, s.fail("search versions", err)
	}

	versions, err := s.versionRepo.Find(ctx, query.Versions.Visible(p), query.NewestFirst)
	if err != nil {
		return nil, s.fail("search versions", unknown("failed to search versions", err))
	}

	result := pagination.Paginate(versions, pagination.Request{Page: req.Page, Limit: req.Limit})
	return &result, nil
}

func (s *VersionService) fail(op string, err error, fields ...zap.Field) error {
	return logFailure(s.log, op, err, fields...)
}
