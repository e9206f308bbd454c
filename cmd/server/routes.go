package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ilyde-platform/ilyde-datasets/internal/handler"
	"github.com/ilyde-platform/ilyde-datasets/internal/middleware"
)

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App, deps *Dependencies) {
	handler.NewHealthHandler(appVersion, deps.Checks).RegisterRoutes(app)
	handler.NewDocsHandler().RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/v1")
	if deps.Redis != nil {
		limit := middleware.DefaultRateLimitConfig(deps.Config.RateLimit.RequestsPerMinute)
		limit.Logger = deps.Logger
		v1.Use(middleware.RateLimit(deps.Redis, limit))
	}
	v1.Use(middleware.Concurrency(int64(deps.Config.Server.MaxWorkers)))

	handler.NewDatasetsHandler(deps.DatasetService, deps.Logger).RegisterRoutes(v1)
	handler.NewVersionsHandler(deps.VersionService, deps.Logger).RegisterRoutes(v1)
	handler.NewBucketsHandler(deps.BucketService).RegisterRoutes(v1)
}
