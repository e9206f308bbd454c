package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig configures the CORS middleware
type CORSConfig struct {
	// AllowOrigins is a list of allowed origins; "*" allows any
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
	// ExposeHeaders is a list of headers readable by browsers
	ExposeHeaders []string
	// MaxAge is the preflight cache lifetime in seconds
	MaxAge int
}

// DefaultCORSConfig returns default CORS config
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			RequestIDHeader,
		},
		ExposeHeaders: []string{
			RequestIDHeader,
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		MaxAge: 86400,
	}
}

// CORS sets cross-origin headers and answers preflight requests
func CORS(config CORSConfig) fiber.Handler {
	allowMethods := strings.Join(config.AllowMethods, ", ")
	allowHeaders := strings.Join(config.AllowHeaders, ", ")
	exposeHeaders := strings.Join(config.ExposeHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		allowOrigin := matchOrigin(config.AllowOrigins, origin)
		if allowOrigin == "" {
			return c.Next()
		}

		c.Set("Access-Control-Allow-Origin", allowOrigin)
		if exposeHeaders != "" {
			c.Set("Access-Control-Expose-Headers", exposeHeaders)
		}

		if c.Method() == fiber.MethodOptions {
			c.Set("Access-Control-Allow-Methods", allowMethods)
			c.Set("Access-Control-Allow-Headers", allowHeaders)
			if config.MaxAge > 0 {
				c.Set("Access-Control-Max-Age", maxAge)
			}
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}

// matchOrigin returns the Access-Control-Allow-Origin value for origin, or
// "" when origin is not allowed. Entries like *.example.com match subdomains.
func matchOrigin(allowed []string, origin string) string {
	for _, o := range allowed {
		switch {
		case o == "*":
			return "*"
		case o == origin:
			return origin
		case strings.HasPrefix(o, "*.") && origin != "" && strings.HasSuffix(origin, o[1:]):
			return origin
		}
	}
	return ""
}
