package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	"github.com/ilyde-platform/ilyde-datasets/internal/service"
)

// DatasetsHandler handles dataset endpoints
type DatasetsHandler struct {
	datasetService *service.DatasetService
	logger         *zap.Logger
}

// NewDatasetsHandler creates a new datasets handler
func NewDatasetsHandler(datasetService *service.DatasetService, logger *zap.Logger) *DatasetsHandler {
	return &DatasetsHandler{
		datasetService: datasetService,
		logger:         logger,
	}
}

// CreateDataset handles POST /v1/datasets
func (h *DatasetsHandler) CreateDataset(c *fiber.Ctx) error {
	var input domain.DatasetInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, err)
	}

	dataset, err := h.datasetService.Create(c.UserContext(), &input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dataset)
}

// GetDataset handles GET /v1/datasets/:id
func (h *DatasetsHandler) GetDataset(c *fiber.Ctx) error {
	dataset, err := h.datasetService.Retrieve(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(dataset)
}

// UpdateDataset handles PUT /v1/datasets/:id
func (h *DatasetsHandler) UpdateDataset(c *fiber.Ctx) error {
	var input domain.DatasetUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, err)
	}
	input.ID = c.Params("id")

	dataset, err := h.datasetService.Update(c.UserContext(), &input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(dataset)
}

// DeleteDataset handles DELETE /v1/datasets/:id
func (h *DatasetsHandler) DeleteDataset(c *fiber.Ctx) error {
	status, err := h.datasetService.SoftDelete(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(status)
}

// SearchDatasets handles POST /v1/datasets/search
func (h *DatasetsHandler) SearchDatasets(c *fiber.Ctx) error {
	var req domain.DatasetSearch
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, err)
		}
	}

	return h.search(c, &req)
}

// ListDatasets handles GET /v1/datasets
func (h *DatasetsHandler) ListDatasets(c *fiber.Ctx) error {
	var req domain.DatasetSearch
	if err := c.QueryParser(&req.Query); err != nil {
		return badRequest(c, err)
	}
	req.Page = parseQueryInt(c, "page", 0)
	req.Limit = parseQueryInt(c, "limit", 0)

	return h.search(c, &req)
}

func (h *DatasetsHandler) search(c *fiber.Ctx, req *domain.DatasetSearch) error {
	result, err := h.datasetService.Search(c.UserContext(), req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(result)
}

// RegisterRoutes registers dataset routes
func (h *DatasetsHandler) RegisterRoutes(router fiber.Router) {
	datasets := router.Group("/datasets")
	datasets.Post("/", h.CreateDataset)
	datasets.Get("/", h.ListDatasets)
	datasets.Post("/search", h.SearchDatasets)
	datasets.Get("/:id", h.GetDataset)
	datasets.Put("/:id", h.UpdateDataset)
	datasets.Delete("/:id", h.DeleteDataset)
}
