package middleware

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/semaphore"
)

// Concurrency admits at most limit requests at a time. A request beyond the
// bound waits for a slot until its context ends, then fails with 503.
func Concurrency(limit int64) fiber.Handler {
	sem := semaphore.NewWeighted(limit)

	return func(c *fiber.Ctx) error {
		if err := sem.Acquire(c.UserContext(), 1); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "UNAVAILABLE",
					"message": "server is at capacity",
				},
			})
		}
		defer sem.Release(1)

		return c.Next()
	}
}
