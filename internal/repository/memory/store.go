package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/query"
)

// Store is an in-process document store holding datasets and versions.
// Each method call is atomic with respect to the others.
type Store struct {
	mu       sync.RWMutex
	datasets map[uuid.UUID]domain.Dataset
	versions map[uuid.UUID]domain.Version
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		datasets: make(map[uuid.UUID]domain.Dataset),
		versions: make(map[uuid.UUID]domain.Version),
	}
}

// Datasets returns the dataset repository view of the store
func (s *Store) Datasets() *DatasetRepository {
	return &DatasetRepository{s: s}
}

// Versions returns the version repository view of the store
func (s *Store) Versions() *VersionRepository {
	return &VersionRepository{s: s}
}

// Ping always succeeds
func (s *Store) Ping() error {
	return nil
}

// fieldValue returns the value of a storage field of a document
type fieldValue func(field string) (any, bool)

func datasetField(d domain.Dataset) fieldValue {
	return func(field string) (any, bool) {
		switch field {
		case query.FieldID:
			return d.ID, true
		case query.FieldName:
			return d.Name, true
		case query.FieldScope:
			return string(d.Scope), true
		case query.FieldProject:
			return d.Project, true
		case query.FieldDeleted:
			return d.Deleted, true
		case query.FieldCreatedAt:
			return d.CreatedAt, true
		}
		return nil, false
	}
}

func versionField(v domain.Version) fieldValue {
	return func(field string) (any, bool) {
		switch field {
		case query.FieldID:
			return v.ID, true
		case query.FieldName:
			return v.Name, true
		case query.FieldDataset:
			return v.DatasetID, true
		case query.FieldAuthor:
			return v.Author, true
		case query.FieldCreatedAt:
			return v.CreatedAt, true
		}
		return nil, false
	}
}

// matches evaluates p against a document. The caller holds s.mu.
func (s *Store) matches(p query.Predicate, get fieldValue) (bool, error) {
	for _, c := range p {
		value, ok := get(c.Field)
		if !ok {
			return false, fmt.Errorf("field %q cannot be filtered", c.Field)
		}
		switch c.Op {
		case query.OpEq:
			if !equal(value, c.Value) {
				return false, nil
			}
		case query.OpLiveDataset:
			ref, ok := value.(uuid.UUID)
			if !ok {
				return false, fmt.Errorf("field %q is not a dataset reference", c.Field)
			}
			d, found := s.datasets[ref]
			if !found || d.Deleted {
				return false, nil
			}
		default:
			return false, fmt.Errorf("unsupported operator %d on %q", c.Op, c.Field)
		}
	}
	return true, nil
}

func equal(have, want any) bool {
	if s, ok := want.(domain.Scope); ok {
		want = string(s)
	}
	return have == want
}

// less orders two documents by a sort field. Strings compare byte-wise.
func less(a, b fieldValue, by query.Sort) bool {
	av, _ := a(by.Field)
	bv, _ := b(by.Field)

	var cmp int
	switch x := av.(type) {
	case string:
		cmp = strings.Compare(x, bv.(string))
	case time.Time:
		cmp = x.Compare(bv.(time.Time))
	}

	if by.Desc {
		return cmp > 0
	}
	return cmp < 0
}

// sortBy stably orders docs by a sortable field
func sortBy[T any](docs []T, s query.Sort, get func(T) fieldValue) error {
	var zero T
	switch v, _ := get(zero)(s.Field); v.(type) {
	case string, time.Time:
	default:
		return fmt.Errorf("field %q cannot be sorted", s.Field)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return less(get(docs[i]), get(docs[j]), s)
	})
	return nil
}
