package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
)

var (
	// Log is the global logger instance
	Log = zap.NewNop()
	// currentLevel stores the configured level for IsDebug checks
	currentLevel = zapcore.InfoLevel
)

// Config holds logger configuration
type Config struct {
	Level  string
	Format string
	// Output defaults to stdout
	Output io.Writer
}

// New builds a logger from cfg without touching the global instance
func New(cfg Config) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Init initializes the global logger
func Init(cfg Config) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	currentLevel = level
	Log = New(cfg)
	return Log
}

// Sync flushes any buffered log entries
func Sync() error {
	return Log.Sync()
}

// WithRequestID returns a logger with request ID
func WithRequestID(requestID string) *zap.Logger {
	return Log.With(zap.String("request_id", requestID))
}

// WithDatasetID returns a logger with dataset ID
func WithDatasetID(log *zap.Logger, datasetID string) *zap.Logger {
	return log.With(zap.String("dataset_id", datasetID))
}

// LogError logs err at a severity matching its kind. Caller mistakes
// (InvalidArgument, NotFound) are warnings, everything else is an error.
func LogError(log *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("kind", apperrors.KindOf(err)), zap.Error(err))
	switch apperrors.KindOf(err) {
	case apperrors.CodeInvalidArgument, apperrors.CodeNotFound:
		log.Warn(msg, fields...)
	default:
		log.Error(msg, fields...)
	}
}

// IsDebug returns true if the global logger is configured for debug level
func IsDebug() bool {
	return currentLevel <= zapcore.DebugLevel
}
