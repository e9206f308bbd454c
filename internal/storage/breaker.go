package storage

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/circuitbreaker"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/metrics"
)

// Guarded wraps a Store with a circuit breaker and per-call metrics.
// Missing or duplicate buckets are caller errors and never trip the circuit.
type Guarded struct {
	store  Store
	driver string
	cb     *circuitbreaker.CircuitBreaker
}

// NewGuarded wraps store. driver labels the metrics.
func NewGuarded(store Store, driver string, cfg circuitbreaker.Config, log *zap.Logger) *Guarded {
	cfg.IsFailure = func(err error) bool {
		return !errors.Is(err, ErrBucketNotFound) && !errors.Is(err, ErrBucketExists)
	}
	cfg.OnStateChange = func(name string, from, to circuitbreaker.State) {
		metrics.SetBreakerState(name, int(to))
		log.Warn("storage circuit state changed",
			zap.String("breaker", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	}

	return &Guarded{store: store, driver: driver, cb: circuitbreaker.New(cfg)}
}

// CreateBucket creates a bucket through the breaker
func (g *Guarded) CreateBucket(ctx context.Context, name string) error {
	start := time.Now()
	err := g.cb.Execute(ctx, func() error {
		return g.store.CreateBucket(ctx, name)
	})
	metrics.RecordStorageOp(g.driver, "create_bucket", time.Since(start), err)
	return err
}

// ListObjects lists a bucket through the breaker
func (g *Guarded) ListObjects(ctx context.Context, bucket string) ([]Object, error) {
	start := time.Now()
	objects, err := circuitbreaker.Do(g.cb, ctx, func() ([]Object, error) {
		return g.store.ListObjects(ctx, bucket)
	})
	metrics.RecordStorageOp(g.driver, "list_objects", time.Since(start), err)
	return objects, err
}

// Ping bypasses the breaker so health checks report the real backend state
func (g *Guarded) Ping(ctx context.Context) error {
	return g.store.Ping(ctx)
}

// State returns the circuit state
func (g *Guarded) State() circuitbreaker.State {
	return g.cb.State()
}
