// Package app wires the repositories, services, handlers and middleware
// into a ready-to-serve Fiber application.
package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"

	"blog/internal/config"
	"blog/internal/handlers"
	"blog/internal/middleware"
	"blog/internal/repositories"
	"blog/internal/services"
)

// New builds the Fiber application against the given store and event
// publisher. The publisher may be nil, which disables event publishing.
func New(cfg config.Config, db *gorm.DB, publisher services.EventPublisher) *fiber.App {
	// Repositories
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)
	commentRepo := repositories.NewGORMCommentRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg.SecretKey)
	postService := services.NewPostService(postRepo, commentRepo, publisher)
	commentService := services.NewCommentService(commentRepo, postRepo, publisher)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService, commentService)
	pageHandler := handlers.NewPageHandler()

	engine := html.New(cfg.ViewsDir, ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.LoadUser(authService))

	authHandler.RegisterRoutes(app)
	postHandler.RegisterRoutes(app)
	pageHandler.RegisterRoutes(app)

	return app
}
