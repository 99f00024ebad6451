package auth

import "github.com/gofiber/fiber/v2"

// Config holds the API key expected from callers.
type Config struct {
	ApiKey string
}

// New returns a middleware that validates the X-API-Key header. With an
// empty configured key the check is disabled, which keeps local
// development friction-free.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get("X-API-Key") != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
