package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the static pages and the health endpoint.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// RegisterRoutes registers the static page routes with the Fiber app.
func (h *PageHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/about", h.HandleAbout)
	router.Get("/contact", h.HandleContact)
	router.Get("/health", h.HandleHealth)
}

func (h *PageHandler) HandleAbout(c *fiber.Ctx) error {
	return render(c, "about", fiber.Map{"Title": "About"})
}

func (h *PageHandler) HandleContact(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{"Title": "Contact"})
}

func (h *PageHandler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
