package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

type window struct {
	count int
	reset time.Time
}

// RateLimitMiddleware caps requests per client IP over a fixed window.
// State lives in process memory; a single local binary needs no shared
// counter store.
func RateLimitMiddleware(limit int, per time.Duration) fiber.Handler {
	var mu sync.Mutex
	windows := make(map[string]*window)

	return func(c *fiber.Ctx) error {
		now := time.Now()

		mu.Lock()
		w, ok := windows[c.IP()]
		if !ok || now.After(w.reset) {
			w = &window{reset: now.Add(per)}
			windows[c.IP()] = w
		}
		w.count++
		over := w.count > limit
		mu.Unlock()

		if over {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded"})
		}
		return c.Next()
	}
}
