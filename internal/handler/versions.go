package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	"github.com/ilyde-platform/ilyde-datasets/internal/service"
)

// VersionsHandler handles version endpoints
type VersionsHandler struct {
	versionService *service.VersionService
	logger         *zap.Logger
}

// NewVersionsHandler creates a new versions handler
func NewVersionsHandler(versionService *service.VersionService, logger *zap.Logger) *VersionsHandler {
	return &VersionsHandler{
		versionService: versionService,
		logger:         logger,
	}
}

// CreateVersion handles POST /v1/versions
func (h *VersionsHandler) CreateVersion(c *fiber.Ctx) error {
	var input domain.VersionInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, err)
	}

	version, err := h.versionService.Create(c.UserContext(), &input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(version)
}

// GetVersion handles GET /v1/versions/:id
func (h *VersionsHandler) GetVersion(c *fiber.Ctx) error {
	version, err := h.versionService.Retrieve(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(version)
}

// SearchVersions handles POST /v1/versions/search
func (h *VersionsHandler) SearchVersions(c *fiber.Ctx) error {
	var req domain.VersionSearch
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, err)
		}
	}

	return h.search(c, &req)
}

// ListVersions handles GET /v1/versions
func (h *VersionsHandler) ListVersions(c *fiber.Ctx) error {
	var req domain.VersionSearch
	if err := c.QueryParser(&req.Query); err != nil {
		return badRequest(c, err)
	}
	req.Page = parseQueryInt(c, "page", 0)
	req.Limit = parseQueryInt(c, "limit", 0)

	return h.search(c, &req)
}

func (h *VersionsHandler) search(c *fiber.Ctx, req *domain.VersionSearch) error {
	result, err := h.versionService.Search(c.UserContext(), req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(result)
}

// RegisterRoutes registers version routes
func (h *VersionsHandler) RegisterRoutes(router fiber.Router) {
	versions := router.Group("/versions")
	versions.Post("/", h.CreateVersion)
	versions.Get("/", h.ListVersions)
	versions.Post("/search", h.SearchVersions)
	versions.Get("/:id", h.GetVersion)
}
