package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Info("dataset created", zap.String("dataset_id", "abc"))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "dataset created", entry["msg"])
	assert.Equal(t, "abc", entry["dataset_id"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "loud", Output: &buf})
	t.Cleanup(func() { Log = zap.NewNop() })

	assert.False(t, IsDebug())
	WithRequestID("req-1").Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

func TestLogError_SeverityByKind(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level zapcore.Level
		kind  string
	}{
		{name: "not found", err: apperrors.NotFound("dataset"), level: zapcore.WarnLevel, kind: apperrors.CodeNotFound},
		{name: "invalid argument", err: apperrors.InvalidArgument("bad"), level: zapcore.WarnLevel, kind: apperrors.CodeInvalidArgument},
		{name: "unknown", err: apperrors.Unknown("store down"), level: zapcore.ErrorLevel, kind: apperrors.CodeUnknown},
		{name: "plain error", err: errors.New("boom"), level: zapcore.ErrorLevel, kind: apperrors.CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			log := WithDatasetID(zap.New(core), "ds-1")

			LogError(log, "operation failed", tt.err)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.kind, entry.ContextMap()["kind"])
			assert.Equal(t, "ds-1", entry.ContextMap()["dataset_id"])
		})
	}
}
