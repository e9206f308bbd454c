package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/query"
)

// DatasetRepository stores datasets in memory
type DatasetRepository struct {
	s *Store
}

// Create inserts a new dataset
func (r *DatasetRepository) Create(_ context.Context, dataset *domain.Dataset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.datasets[dataset.ID]; ok {
		return fmt.Errorf("failed to create dataset: duplicate id %s", dataset.ID)
	}
	r.s.datasets[dataset.ID] = *dataset
	return nil
}

// GetByID is the raw primary-key lookup, regardless of its deleted flag.
// Service reads go through First with a visibility predicate; this stays
// for operators and tests that need to see soft-deleted records.
func (r *DatasetRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Dataset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.datasets[id]
	if !ok {
		return nil, apperrors.NotFound("dataset")
	}
	return &d, nil
}

// Update writes name, description and last_updated_at of a live dataset
func (r *DatasetRepository) Update(_ context.Context, dataset *domain.Dataset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.datasets[dataset.ID]
	if !ok || d.Deleted {
		return apperrors.NotFound("dataset")
	}
	d.Name = dataset.Name
	d.Description = dataset.Description
	d.LastUpdatedAt = dataset.LastUpdatedAt
	r.s.datasets[d.ID] = d
	return nil
}

// SoftDelete flags a live dataset as deleted
func (r *DatasetRepository) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.datasets[id]
	if !ok || d.Deleted {
		return apperrors.NotFound("dataset")
	}
	d.Deleted = true
	r.s.datasets[id] = d
	return nil
}

// SetVersion records the latest version label of a dataset
func (r *DatasetRepository) SetVersion(_ context.Context, id uuid.UUID, label string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.datasets[id]
	if !ok {
		return apperrors.NotFound("dataset")
	}
	d.Version = label
	d.LastUpdatedAt = at
	r.s.datasets[id] = d
	return nil
}

// First returns the first dataset matching p in sort order
func (r *DatasetRepository) First(ctx context.Context, p query.Predicate, sort query.Sort) (*domain.Dataset, error) {
	found, err := r.Find(ctx, p, sort)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, apperrors.NotFound("dataset")
	}
	return &found[0], nil
}

// Find returns every dataset matching p in sort order
func (r *DatasetRepository) Find(_ context.Context, p query.Predicate, sort query.Sort) ([]domain.Dataset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	found := []domain.Dataset{}
	for _, d := range r.s.datasets {
		ok, err := r.s.matches(p, datasetField(d))
		if err != nil {
			return nil, fmt.Errorf("failed to find datasets: %w", err)
		}
		if ok {
			found = append(found, d)
		}
	}

	if err := sortBy(found, sort, datasetField); err != nil {
		return nil, fmt.Errorf("failed to find datasets: %w", err)
	}
	return found, nil
}
