package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/query"
)

// VersionRepository stores versions in memory
type VersionRepository struct {
	s *Store
}

// Create inserts a new version. The owning dataset must exist.
func (r *VersionRepository) Create(_ context.Context, version *domain.Version) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.versions[version.ID]; ok {
		return fmt.Errorf("failed to create version: duplicate id %s", version.ID)
	}
	if _, ok := r.s.datasets[version.DatasetID]; !ok {
		return fmt.Errorf("failed to create version: dataset %s does not exist", version.DatasetID)
	}

	v := *version
	v.Manifest = append([]domain.File{}, version.Manifest...)
	r.s.versions[v.ID] = v
	return nil
}

// GetByID is the raw primary-key lookup, regardless of its dataset's state.
// Service reads go through First with a visibility predicate; this stays
// for operators and tests that need to see soft-deleted records.
func (r *VersionRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Version, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.versions[id]
	if !ok {
		return nil, apperrors.NotFound("version")
	}
	return &v, nil
}

// First returns the first version matching p in sort order
func (r *VersionRepository) First(ctx context.Context, p query.Predicate, sort query.Sort) (*domain.Version, error) {
	found, err := r.Find(ctx, p, sort)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, apperrors.NotFound("version")
	}
	return &found[0], nil
}

// Find returns every version matching p in sort order
func (r *VersionRepository) Find(_ context.Context, p query.Predicate, sort query.Sort) ([]domain.Version, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	found := []domain.Version{}
	for _, v := range r.s.versions {
		ok, err := r.s.matches(p, versionField(v))
		if err != nil {
			return nil, fmt.Errorf("failed to find versions: %w", err)
		}
		if ok {
			found = append(found, v)
		}
	}

	if err := sortBy(found, sort, versionField); err != nil {
		return nil, fmt.Errorf("failed to find versions: %w", err)
	}
	return found, nil
}
