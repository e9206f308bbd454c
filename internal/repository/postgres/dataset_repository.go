package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/database"
	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/query"
)

const datasetSelectColumns = `id, name, description, scope, project, version, deleted, created_at, last_updated_at`

var datasetColumns = map[string]bool{
	query.FieldID:        true,
	query.FieldName:      true,
	query.FieldScope:     true,
	query.FieldProject:   true,
	query.FieldDeleted:   true,
	query.FieldCreatedAt: true,
}

// DatasetRepository handles dataset data operations in PostgreSQL
type DatasetRepository struct {
	db *database.PostgresDB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *database.PostgresDB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// Create inserts a new dataset
func (r *DatasetRepository) Create(ctx context.Context, dataset *domain.Dataset) error {
	query := `
		INSERT INTO datasets (id, name, description, scope, project, version, deleted, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		dataset.ID,
		dataset.Name,
		dataset.Description,
		dataset.Scope,
		dataset.Project,
		dataset.Version,
		dataset.Deleted,
		dataset.CreatedAt,
		dataset.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}

	return nil
}

// GetByID is the raw primary-key lookup, regardless of its deleted flag.
// Service reads go through First with a visibility predicate; this stays
// for operators and tests that need to see soft-deleted records.
func (r *DatasetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	row := r.db.Pool.QueryRow(ctx, `SELECT `+datasetSelectColumns+` FROM datasets WHERE id = $1`, id)

	dataset, err := scanDataset(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("dataset")
		}
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}

	return dataset, nil
}

// Update writes name, description and last_updated_at of a live dataset
func (r *DatasetRepository) Update(ctx context.Context, dataset *domain.Dataset) error {
	query := `
		UPDATE datasets
		SET name = $2, description = $3, last_updated_at = $4
		WHERE id = $1 AND deleted = false
	`

	tag, err := r.db.Pool.Exec(ctx, query,
		dataset.ID,
		dataset.Name,
		dataset.Description,
		dataset.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update dataset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("dataset")
	}

	return nil
}

// SoftDelete flags a live dataset as deleted
func (r *DatasetRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `UPDATE datasets SET deleted = true WHERE id = $1 AND deleted = false`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("dataset")
	}

	return nil
}

// SetVersion records the latest version label of a dataset
func (r *DatasetRepository) SetVersion(ctx context.Context, id uuid.UUID, label string, at time.Time) error {
	return setVersion(ctx, r.db.Pool, id, label, at)
}

// First returns the first dataset matching p in sort order
func (r *DatasetRepository) First(ctx context.Context, p query.Predicate, sort query.Sort) (*domain.Dataset, error) {
	stmt, args, err := selectStatement(datasetSelectColumns, "datasets", p, sort, datasetColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset query: %w", err)
	}

	dataset, err := scanDataset(r.db.Pool.QueryRow(ctx, stmt+" LIMIT 1", args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("dataset")
		}
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}

	return dataset, nil
}

// Find returns every dataset matching p in sort order
func (r *DatasetRepository) Find(ctx context.Context, p query.Predicate, sort query.Sort) ([]domain.Dataset, error) {
	stmt, args, err := selectStatement(datasetSelectColumns, "datasets", p, sort, datasetColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find datasets: %w", err)
	}
	defer rows.Close()

	datasets := []domain.Dataset{}
	for rows.Next() {
		dataset, err := scanDataset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		datasets = append(datasets, *dataset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to find datasets: %w", err)
	}

	return datasets, nil
}

func setVersion(ctx context.Context, q database.Querier, id uuid.UUID, label string, at time.Time) error {
	tag, err := q.Exec(ctx, `UPDATE datasets SET version = $2, last_updated_at = $3 WHERE id = $1`, id, label, at)
	if err != nil {
		return fmt.Errorf("failed to set dataset version: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("dataset")
	}
	return nil
}

func scanDataset(row pgx.Row) (*domain.Dataset, error) {
	var dataset domain.Dataset
	err := row.Scan(
		&dataset.ID,
		&dataset.Name,
		&dataset.Description,
		&dataset.Scope,
		&dataset.Project,
		&dataset.Version,
		&dataset.Deleted,
		&dataset.CreatedAt,
		&dataset.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &dataset, nil
}
