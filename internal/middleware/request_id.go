package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID assigns a unique id to every request, exposed both as a
// response header and as a Locals value for the request logger.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.New().String()
		c.Locals("requestid", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}
