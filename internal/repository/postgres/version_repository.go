package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/database"
	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/query"
)

const versionSelectColumns = `id, name, dataset_id, related_bucket, manifest, size, author, created_at`

var versionColumns = map[string]bool{
	query.FieldID:        true,
	query.FieldName:      true,
	query.FieldDataset:   true,
	query.FieldAuthor:    true,
	query.FieldCreatedAt: true,
}

// VersionRepository handles version data operations in PostgreSQL
type VersionRepository struct {
	db *database.PostgresDB
}

// NewVersionRepository creates a new version repository
func NewVersionRepository(db *database.PostgresDB) *VersionRepository {
	return &VersionRepository{db: db}
}

// Create inserts a new version
func (r *VersionRepository) Create(ctx context.Context, version *domain.Version) error {
	return insertVersion(ctx, r.db.Pool, version)
}

// GetByID is the raw primary-key lookup, regardless of its dataset's state.
// Service reads go through First with a visibility predicate; this stays
// for operators and tests that need to see soft-deleted records.
func (r *VersionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Version, error) {
	version, err := scanVersion(r.db.Pool.QueryRow(ctx, `SELECT `+versionSelectColumns+` FROM versions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("version")
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// First returns the first version matching p in sort order
func (r *VersionRepository) First(ctx context.Context, p query.Predicate, sort query.Sort) (*domain.Version, error) {
	stmt, args, err := selectStatement(versionSelectColumns, "versions", p, sort, versionColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to build version query: %w", err)
	}

	version, err := scanVersion(r.db.Pool.QueryRow(ctx, stmt+" LIMIT 1", args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("version")
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	return version, nil
}

// Find returns every version matching p in sort order
func (r *VersionRepository) Find(ctx context.Context, p query.Predicate, sort query.Sort) ([]domain.Version, error) {
	stmt, args, err := selectStatement(versionSelectColumns, "versions", p, sort, versionColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to build version query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find versions: %w", err)
	}
	defer rows.Close()

	versions := []domain.Version{}
	for rows.Next() {
		version, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		versions = append(versions, *version)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to find versions: %w", err)
	}

	return versions, nil
}

func insertVersion(ctx context.Context, q database.Querier, version *domain.Version) error {
	query := `
		INSERT INTO versions (id, name, dataset_id, related_bucket, manifest, size, author, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	manifest := version.Manifest
	if manifest == nil {
		manifest = []domain.File{}
	}

	_, err := q.Exec(ctx, query,
		version.ID,
		version.Name,
		version.DatasetID,
		version.RelatedBucket,
		manifest,
		version.Size,
		version.Author,
		version.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create version: %w", err)
	}
	return nil
}

func scanVersion(row pgx.Row) (*domain.Version, error) {
	var version domain.Version
	err := row.Scan(
		&version.ID,
		&version.Name,
		&version.DatasetID,
		&version.RelatedBucket,
		&version.Manifest,
		&version.Size,
		&version.Author,
		&version.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &version, nil
}
