package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals key and response header for the request's ray ID.
const (
	LocalsKey = "ray_id"
	Header    = "X-Ray-ID"
)

// New returns a middleware that assigns every request a unique ray ID,
// stores it in locals for downstream loggers, and echoes it in the
// response header. An ID supplied by the caller is kept.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
