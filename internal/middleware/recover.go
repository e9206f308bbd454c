package middleware

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/config"
)

// InitSentry initializes the Sentry SDK. It is a no-op when reporting is
// disabled.
func InitSentry(cfg config.SentryConfig, release string) error {
	if !cfg.Enabled {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          release,
		SampleRate:       cfg.SampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	return nil
}

// FlushSentry flushes any buffered events to Sentry
func FlushSentry(timeout time.Duration) {
	sentry.Flush(timeout)
}

// Recover turns a panic into an UNKNOWN error response. The panic is
// logged with its stack and, when enabled, reported to Sentry.
func Recover(logger *zap.Logger, sentryEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			panicErr, ok := r.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", r)
			}
			stack := debug.Stack()

			logger.Error("panic recovered",
				zap.Error(panicErr),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.String("request_id", GetRequestID(c)),
				zap.ByteString("stack", stack),
			)

			if sentryEnabled {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetTag("request_id", GetRequestID(c))
				hub.Scope().SetContext("Request", map[string]interface{}{
					"url":    c.OriginalURL(),
					"method": c.Method(),
				})
				hub.Scope().SetLevel(sentry.LevelFatal)
				if eventID := hub.RecoverWithContext(c.UserContext(), r); eventID != nil {
					logger.Info("panic reported to Sentry", zap.String("event_id", string(*eventID)))
				}
				hub.Flush(2 * time.Second)
			}

			err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "UNKNOWN",
					"message": "An unexpected error occurred",
				},
			})
		}()

		return c.Next()
	}
}
