package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTruncateSQL(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		maxLen   int
		expected string
	}{
		{name: "short SQL unchanged", sql: "SELECT * FROM datasets", maxLen: 100, expected: "SELECT * FROM datasets"},
		{name: "exactly at max length", sql: "SELECT * FROM datasets", maxLen: 22, expected: "SELECT * FROM datasets"},
		{name: "truncated with ellipsis", sql: "SELECT * FROM datasets WHERE id = $1", maxLen: 22, expected: "SELECT * FROM datasets..."},
		{name: "empty string", sql: "", maxLen: 10, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateSQL(tt.sql, tt.maxLen))
		})
	}
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM datasets"))
	assert.Equal(t, "update", operation("\n\t UPDATE datasets SET deleted = true"))
	assert.Equal(t, "unknown", operation("   "))
}

func TestQueryTracer(t *testing.T) {
	t.Run("start stores time and sql", func(t *testing.T) {
		tracer := newQueryTracer(zap.NewNop())

		ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})

		start, ok := ctx.Value(queryStartKey{}).(time.Time)
		assert.True(t, ok)
		assert.False(t, start.IsZero())
		assert.Equal(t, "SELECT 1", ctx.Value(querySQLKey{}))
	})

	t.Run("slow query is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		tracer := newQueryTracer(zap.New(core))
		ctx := context.WithValue(context.Background(), queryStartKey{}, time.Now().Add(-200*time.Millisecond))
		ctx = context.WithValue(ctx, querySQLKey{}, "SELECT pg_sleep(1)")

		tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.CommandTag{}})

		assert.Equal(t, 1, logs.FilterMessage("slow query detected").Len())
	})

	t.Run("fast failing query is not logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		tracer := newQueryTracer(zap.New(core))
		ctx := context.WithValue(context.Background(), queryStartKey{}, time.Now())

		tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("connection refused")})

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("missing start time is ignored", func(t *testing.T) {
		tracer := newQueryTracer(zap.NewNop())

		assert.NotPanics(t, func() {
			tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
		})
	})
}

func TestPostgresDBClose(t *testing.T) {
	db := &PostgresDB{Pool: nil}

	assert.NotPanics(t, db.Close)
}
