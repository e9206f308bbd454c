package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/config"
	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/database"
)

// getTestDB returns a migrated database for integration tests. Tests are
// skipped when POSTGRES_TEST_HOST is not set or the database is unreachable.
func getTestDB(t *testing.T) *database.PostgresDB {
	t.Helper()

	if os.Getenv("POSTGRES_TEST_HOST") == "" {
		t.Skip("Skipping integration test: POSTGRES_TEST_HOST not set")
	}

	cfg := config.PostgresConfig{
		Host:     os.Getenv("POSTGRES_TEST_HOST"),
		Port:     5432,
		User:     os.Getenv("POSTGRES_TEST_USER"),
		Password: os.Getenv("POSTGRES_TEST_PASS"),
		Database: os.Getenv("POSTGRES_TEST_DB"),
		SSLMode:  "disable",
		MaxConns: 5,
		MinConns: 1,
	}
	if cfg.Database == "" {
		cfg.Database = "test_datasets"
	}
	if cfg.User == "" {
		cfg.User = "postgres"
	}

	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg, zap.NewNop())
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to PostgreSQL: %v", err)
	}
	if err := Migrate(ctx, db, zap.NewNop()); err != nil {
		db.Close()
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(db.Close)

	return db
}

// cleanupDatasets removes test datasets and their versions
func cleanupDatasets(t *testing.T, db *database.PostgresDB, ids ...uuid.UUID) {
	t.Helper()
	t.Cleanup(func() {
		ctx := context.Background()
		for _, id := range ids {
			_, _ = db.Pool.Exec(ctx, "DELETE FROM versions WHERE dataset_id = $1", id)
			_, _ = db.Pool.Exec(ctx, "DELETE FROM datasets WHERE id = $1", id)
		}
	})
}

func newTestDataset(name string) *domain.Dataset {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Dataset{
		ID:            uuid.New(),
		Name:          name,
		Description:   "integration test dataset",
		Scope:         domain.ScopeGlobal,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
}

func newTestVersion(datasetID uuid.UUID, name string) *domain.Version {
	return &domain.Version{
		ID:            uuid.New(),
		Name:          name,
		DatasetID:     datasetID,
		RelatedBucket: "bucket-" + name,
		Manifest:      []domain.File{{Name: "a.png", Size: 10}, {Name: "b.png", Size: 20}},
		Size:          30,
		Author:        "tester",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}
