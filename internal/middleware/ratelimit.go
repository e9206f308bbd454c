package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig configures the rate limiter
type RateLimitConfig struct {
	// Max requests per window
	Max int
	// Window duration
	Window time.Duration
	// Key generator function
	KeyGenerator func(*fiber.Ctx) string
	// Skip function
	Skip func(*fiber.Ctx) bool
	// Logger receives limiter backend failures
	Logger *zap.Logger
}

// DefaultRateLimitConfig returns a per-IP limit of perMinute requests per minute
func DefaultRateLimitConfig(perMinute int) RateLimitConfig {
	return RateLimitConfig{
		Max:    perMinute,
		Window: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Skip:   HealthSkipper,
		Logger: zap.NewNop(),
	}
}

// RateLimit limits callers with a Redis sliding window log. A Redis
// failure lets the request through.
func RateLimit(client *redis.Client, config RateLimitConfig) fiber.Handler {
	window := int64(config.Window.Seconds())

	return func(c *fiber.Ctx) error {
		if config.Skip != nil && config.Skip(c) {
			return c.Next()
		}

		ctx := c.UserContext()
		key := fmt.Sprintf("ratelimit:%s", config.KeyGenerator(c))
		now := time.Now()
		reset := strconv.FormatInt(now.Unix()+window, 10)

		pipe := client.TxPipeline()
		pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(now.Add(-config.Window).UnixNano(), 10))
		count := pipe.ZCard(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			config.Logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(config.Max))
		c.Set("X-RateLimit-Reset", reset)

		if count.Val() >= int64(config.Max) {
			c.Set("X-RateLimit-Remaining", "0")
			c.Set("Retry-After", strconv.FormatInt(window, 10))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "RATE_LIMITED",
					"message": "Rate limit exceeded. Please try again later.",
				},
			})
		}

		pipe = client.TxPipeline()
		pipe.ZAdd(ctx, key, redis.Z{
			Score:  float64(now.UnixNano()),
			Member: fmt.Sprintf("%d:%s", now.UnixNano(), GetRequestID(c)),
		})
		pipe.Expire(ctx, key, 2*config.Window)
		if _, err := pipe.Exec(ctx); err != nil {
			config.Logger.Warn("rate limiter unavailable", zap.Error(err))
		}

		c.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Max)-count.Val()-1, 10))
		return c.Next()
	}
}
