package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// LoginRateLimit limits login attempts per identifier or IP using Redis if
// available.
func LoginRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 5
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next() // no-op without Redis
		}
		key := strings.TrimSpace(c.FormValue("identifier"))
		if key == "" {
			key = c.IP()
		}
		rlKey := "rl:login:" + strings.ToLower(key)
		cnt, err := cache.Incr(c.UserContext(), rlKey).Result()
		if err == nil && cnt == 1 {
			cache.Expire(c.UserContext(), rlKey, time.Minute)
		}
		if err != nil {
			return c.Next() // fail-open on cache errors
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many login attempts, try again later")
		}
		return c.Next()
	}
}
