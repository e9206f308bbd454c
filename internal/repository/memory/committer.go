package memory

import (
	"context"
	"fmt"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
)

// Committer persists a version and its dataset's label under one lock
type Committer struct {
	s *Store
}

// Committer returns an atomic version committer for the store
func (s *Store) Committer() *Committer {
	return &Committer{s: s}
}

// Commit inserts version and points its dataset at it
func (c *Committer) Commit(_ context.Context, version *domain.Version) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	d, ok := c.s.datasets[version.DatasetID]
	if !ok {
		return apperrors.NotFound("dataset")
	}
	if _, dup := c.s.versions[version.ID]; dup {
		return fmt.Errorf("failed to create version: duplicate id %s", version.ID)
	}

	v := *version
	v.Manifest = append([]domain.File{}, version.Manifest...)
	c.s.versions[v.ID] = v

	d.Version = version.Name
	d.LastUpdatedAt = version.CreatedAt
	c.s.datasets[d.ID] = d
	return nil
}
