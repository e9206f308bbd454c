package database

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/metrics"
)

const storeName = "postgres"

// queryTracer implements pgx.QueryTracer, recording metrics for every
// statement and logging slow ones
type queryTracer struct {
	log *zap.Logger
}

type queryStartKey struct{}
type querySQLKey struct{}

func newQueryTracer(log *zap.Logger) *queryTracer {
	return &queryTracer{log: log}
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	ctx = context.WithValue(ctx, queryStartKey{}, time.Now())
	return context.WithValue(ctx, querySQLKey{}, data.SQL)
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return
	}

	duration := time.Since(start)
	sql, _ := ctx.Value(querySQLKey{}).(string)
	op := operation(sql)

	metrics.RecordStoreQuery(storeName, op, duration)
	if data.Err != nil {
		metrics.RecordStoreError(storeName, op)
	}

	if duration > metrics.SlowQueryThreshold {
		t.log.Warn("slow query detected",
			zap.Int64("duration_ms", duration.Milliseconds()),
			zap.String("sql", truncateSQL(sql, 200)),
		)
	}
}

// operation labels a statement by its leading keyword
func operation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

func truncateSQL(sql string, maxLen int) string {
	if len(sql) <= maxLen {
		return sql
	}
	return sql[:maxLen] + "..."
}
