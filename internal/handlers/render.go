package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blog/internal/middleware"
)

// render executes a view with the shared layout, always exposing the
// authenticated user to the template.
func render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["CurrentUser"] = middleware.CurrentUser(c)
	return c.Render(view, data)
}
