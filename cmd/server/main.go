package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ilyde-platform/ilyde-datasets/internal/config"
	"github.com/ilyde-platform/ilyde-datasets/internal/middleware"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/logger"
)

const appVersion = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = logger.Sync() }()

	sentryEnabled := cfg.Sentry.Enabled
	if err := middleware.InitSentry(cfg.Sentry, "ilyde-datasets@"+appVersion); err != nil {
		log.Error("failed to initialize Sentry", zap.Error(err))
		sentryEnabled = false
	}
	if sentryEnabled {
		defer middleware.FlushSentry(5 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := initDependencies(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.Close()

	app := fiber.New(fiber.Config{
		AppName:               "Ilyde Datasets",
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          5 * time.Minute,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          errorHandler(log),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(middleware.DefaultLoggerConfig(log)))
	app.Use(middleware.Recover(log, sentryEnabled))
	app.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	app.Use(middleware.Metrics(middleware.DefaultMetricsConfig()))

	registerRoutes(app, deps)

	grpcHealth := newHealthServer(cfg.GRPC.Addr(), log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting HTTP server", zap.String("addr", cfg.Server.Addr()))
		if err := app.Listen(cfg.Server.Addr()); err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return grpcHealth.Serve(gctx)
	})

	grpcHealth.SetServing(true)

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		grpcHealth.SetServing(false)

		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			log.Error("HTTP server shutdown error", zap.Error(err))
		}
		grpcHealth.Stop()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("server stopped")
	return nil
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes, in the API error envelope
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		kind := "UNKNOWN"
		message := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
			switch {
			case code == fiber.StatusNotFound:
				kind = "NOT_FOUND"
			case code < 500:
				kind = "INVALID_ARGUMENT"
			}
		}

		if code >= 500 {
			log.Error("request error",
				zap.Error(err),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    kind,
				"message": message,
			},
		})
	}
}
