package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/database"
)

// TxCommitter persists a version and its dataset's label in one transaction
type TxCommitter struct {
	db *database.PostgresDB
}

// NewTxCommitter creates a transactional version committer
func NewTxCommitter(db *database.PostgresDB) *TxCommitter {
	return &TxCommitter{db: db}
}

// Commit inserts version and points its dataset at it. Either both writes
// land or neither does.
func (c *TxCommitter) Commit(ctx context.Context, version *domain.Version) error {
	return database.Transaction(ctx, c.db, func(tx pgx.Tx) error {
		if err := insertVersion(ctx, tx, version); err != nil {
			return err
		}
		return setVersion(ctx, tx, version.DatasetID, version.Name, version.CreatedAt)
	})
}
