package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"blog/internal/forms"
	"blog/internal/middleware"
	"blog/internal/services"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/register", h.HandleRegisterForm)
	router.Post("/register", h.HandleRegister)
	router.Get("/login", h.HandleLoginForm)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", middleware.RequireAuth(), h.HandleLogout)
}

// HandleRegisterForm renders the empty registration form.
func (h *AuthHandler) HandleRegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{
		"Title": "Register",
		"Form":  forms.RegisterForm{},
	})
}

// HandleRegister creates a new account and sends the user to the login
// page. A duplicate email re-renders the form with a message.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var form forms.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing register form: %v", err)
		return fiber.ErrBadRequest
	}

	if err := form.Validate(); err != nil {
		return render(c, "register", fiber.Map{
			"Title":     "Register",
			"Form":      form,
			"FormError": err.Error(),
		})
	}

	if _, err := h.authService.Register(form.Email, form.Name, form.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return render(c, "register", fiber.Map{
				"Title":     "Register",
				"Form":      form,
				"FormError": "That email address is already in use, please log in instead.",
			})
		}
		log.Printf("Error registering user: %v", err)
		return err
	}

	return c.Redirect("/login", fiber.StatusSeeOther)
}

// HandleLoginForm renders the empty login form.
func (h *AuthHandler) HandleLoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{
		"Title": "Log In",
		"Form":  forms.LoginForm{},
	})
}

// HandleLogin verifies the credentials, establishes a session cookie and
// sends the user home. A failed login re-renders the form with a message.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var form forms.LoginForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing login form: %v", err)
		return fiber.ErrBadRequest
	}

	if err := form.Validate(); err != nil {
		return render(c, "login", fiber.Map{
			"Title":     "Log In",
			"Form":      form,
			"FormError": err.Error(),
		})
	}

	user, err := h.authService.Login(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return render(c, "login", fiber.Map{
				"Title":     "Log In",
				"Form":      form,
				"FormError": "No account matches that email and password.",
			})
		}
		log.Printf("Error during login for %s: %v", form.Email, err)
		return err
	}

	token, err := h.authService.IssueSession(user)
	if err != nil {
		log.Printf("Error issuing session for user %d: %v", user.ID, err)
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.authService.SessionTTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleLogout clears the session cookie.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}
