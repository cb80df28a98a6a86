package middleware

import "github.com/gofiber/fiber/v2"

// NoStore marks responses as uncacheable. Session views change on every
// transition and must not be served from a cache.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Next()
	}
}
