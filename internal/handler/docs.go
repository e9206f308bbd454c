package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ilyde-platform/ilyde-datasets/docs"
)

const swaggerPage = `<!DOCTYPE html>
<html>
<head>
<title>Ilyde Datasets API</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui.css">
</head>
<body>
<div id="ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui-bundle.js"></script>
<script>SwaggerUIBundle({url: "/openapi.yaml", dom_id: "#ui"});</script>
</body>
</html>`

// DocsHandler serves the embedded OpenAPI document and a Swagger UI page.
type DocsHandler struct{}

func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

func (h *DocsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/openapi.yaml", h.Spec)
	router.Get("/docs", h.UI)
}

// Spec returns the OpenAPI document.
func (h *DocsHandler) Spec(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "application/x-yaml")
	return c.Send(docs.OpenAPISpec)
}

func (h *DocsHandler) UI(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(swaggerPage)
}
