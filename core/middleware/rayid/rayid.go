package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request's RayID.
const Header = "X-Ray-Id"

// LocalsKey is the Fiber locals key under which the RayID is stored.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a unique RayID.
// The ID is stored in the request locals and echoed in the response headers
// so log lines and client reports can be correlated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.New().String()
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
