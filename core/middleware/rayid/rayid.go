package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName carries the ray ID back to the client.
const HeaderName = "X-Ray-ID"

// LocalsKey stores the ray ID in the Fiber context locals.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a unique ray ID to every request.
// An incoming X-Ray-ID header is honored so upstream proxies can correlate.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
