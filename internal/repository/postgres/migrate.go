package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema. Every statement is idempotent, so it
// runs on each startup.
func Migrate(ctx context.Context, db *database.PostgresDB, log *zap.Logger) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		stmt, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := db.Pool.Exec(ctx, string(stmt)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		log.Info("applied migration", zap.String("file", name))
	}
	return nil
}
