package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ilyde-platform/ilyde-datasets/internal/service"
)

// BucketsHandler handles bucket provisioning
type BucketsHandler struct {
	bucketService *service.BucketService
}

// NewBucketsHandler creates a new buckets handler
func NewBucketsHandler(bucketService *service.BucketService) *BucketsHandler {
	return &BucketsHandler{bucketService: bucketService}
}

// CreateBucket handles POST /v1/buckets
func (h *BucketsHandler) CreateBucket(c *fiber.Ctx) error {
	bucket, err := h.bucketService.Create(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(bucket)
}

// RegisterRoutes registers bucket routes
func (h *BucketsHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/buckets", h.CreateBucket)
}
