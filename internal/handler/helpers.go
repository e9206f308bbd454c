package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
)

// ErrorBody is the payload of an error response
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// errorResponse maps err to its status code and error envelope. Errors that
// carry no kind are reported as UNKNOWN without leaking their text.
func errorResponse(c *fiber.Ctx, err error) error {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: ErrorBody{Code: apperrors.CodeUnknown, Message: "internal error"},
		})
	}

	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

// badRequest reports a request body that could not be decoded
func badRequest(c *fiber.Ctx, err error) error {
	return errorResponse(c, apperrors.InvalidArgument("Invalid request body: "+err.Error()))
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *fiber.Ctx, key string, defaultValue int) int {
	val := c.Query(key)
	if val == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return intVal
}
