package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/config"
	"github.com/ilyde-platform/ilyde-datasets/internal/handler"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/circuitbreaker"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/database"
	"github.com/ilyde-platform/ilyde-datasets/internal/repository/memory"
	pgrepo "github.com/ilyde-platform/ilyde-datasets/internal/repository/postgres"
	"github.com/ilyde-platform/ilyde-datasets/internal/service"
	"github.com/ilyde-platform/ilyde-datasets/internal/storage"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Connections
	Postgres *database.PostgresDB
	Redis    *redis.Client
	Storage  *storage.Guarded

	// Services
	DatasetService *service.DatasetService
	VersionService *service.VersionService
	BucketService  *service.BucketService

	// Checks probed by the health endpoints
	Checks map[string]handler.Check
}

// repositories groups the document store implementation chosen at startup
type repositories struct {
	datasets  service.DatasetRepository
	versions  service.VersionRepository
	committer service.VersionCommitter
}

// initDependencies connects to the configured backends and builds the services
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
		Checks: make(map[string]handler.Check),
	}

	repos, err := deps.initStore(ctx)
	if err != nil {
		deps.Close()
		return nil, err
	}

	objects, err := newObjectStore(ctx, cfg)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	breaker := circuitbreaker.DefaultConfig("storage-" + cfg.Storage.Driver)
	breaker.MaxFailures = cfg.CircuitBreaker.MaxFailures
	breaker.Timeout = cfg.CircuitBreaker.Timeout
	deps.Storage = storage.NewGuarded(objects, cfg.Storage.Driver, breaker, logger)
	deps.Checks["storage"] = deps.Storage.Ping

	if cfg.RateLimit.Enabled {
		client, err := database.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		deps.Redis = client
		deps.Checks["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	}

	deps.DatasetService = service.NewDatasetService(repos.datasets, logger)
	deps.VersionService = service.NewVersionService(repos.datasets, repos.versions, deps.Storage, repos.committer, logger)
	deps.BucketService = service.NewBucketService(deps.Storage, logger)

	return deps, nil
}

// initStore opens the document store and returns its repositories
func (d *Dependencies) initStore(ctx context.Context) (*repositories, error) {
	cfg := d.Config

	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memory.NewStore()
		d.Checks["store"] = func(context.Context) error { return store.Ping() }

		repos := &repositories{datasets: store.Datasets(), versions: store.Versions()}
		if cfg.Store.TransactionalVersions {
			repos.committer = store.Committer()
		}
		d.Logger.Warn("using in-memory document store, data is lost on restart")
		return repos, nil
	}

	db, err := database.NewPostgres(ctx, cfg.Postgres, d.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}
	d.Postgres = db
	d.Checks["store"] = db.Ping

	if err := pgrepo.Migrate(ctx, db, d.Logger); err != nil {
		return nil, err
	}

	repos := &repositories{
		datasets: pgrepo.NewDatasetRepository(db),
		versions: pgrepo.NewVersionRepository(db),
	}
	if cfg.Store.TransactionalVersions {
		repos.committer = pgrepo.NewTxCommitter(db)
	}
	return repos, nil
}

// newObjectStore creates the configured object storage backend
func newObjectStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverS3:
		return storage.NewS3(ctx, storage.S3Config{
			Endpoint:     cfg.S3.Endpoint,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			Region:       cfg.Storage.Region,
			UsePathStyle: cfg.S3.UsePathStyle,
		})
	case config.StorageDriverMemory:
		return storage.NewMemory(), nil
	default:
		return storage.NewMinio(storage.MinioConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Region:    cfg.Storage.Region,
		})
	}
}

// Close closes all connections
func (d *Dependencies) Close() {
	if d.Postgres != nil {
		d.Postgres.Close()
	}
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
}
