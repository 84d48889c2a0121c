package middleware

import (
	"github.com/gofiber/fiber/v2"

	"blog/internal/models"
	"blog/internal/services"
)

// SessionCookie is the name of the cookie carrying the signed session
// token.
const SessionCookie = "session"

// currentUserKey is the Locals key the resolved user is stored under.
const currentUserKey = "currentUser"

// LoadUser resolves the session cookie on every request and stores the
// authenticated user in the request Locals. Anonymous requests and stale
// cookies pass through with no user set.
func LoadUser(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token != "" {
			if user, err := authService.ResolveSession(token); err == nil {
				c.Locals(currentUserKey, user)
			}
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user for the request, or nil for
// anonymous requests. LoadUser must run first.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireAdmin rejects every caller that does not carry the admin role,
// anonymous callers included.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !CurrentUser(c).IsAdmin() {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}
