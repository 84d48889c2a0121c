package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"blog/internal/forms"
	"blog/internal/middleware"
	"blog/internal/models"
	"blog/internal/repositories"
	"blog/internal/services"
)

// postPath builds the canonical URL of a post page.
func postPath(id uint) string {
	return fmt.Sprintf("/post/%d", id)
}

// PostHandler handles the post listing, post pages and the admin-only
// post management routes.
type PostHandler struct {
	postService    *services.PostService
	commentService *services.CommentService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService, commentService *services.CommentService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
	}
}

// RegisterRoutes registers the post routes with the Fiber app. The
// mutation routes are admin-only; commenting requires a login.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/post/:id", h.HandleShowPost)
	router.Post("/post/:id", middleware.RequireAuth(), h.HandleAddComment)

	admin := middleware.RequireAdmin()
	router.Get("/new-post", admin, h.HandleNewPostForm)
	router.Post("/new-post", admin, h.HandleCreatePost)
	router.Get("/edit-post/:id", admin, h.HandleEditPostForm)
	router.Post("/edit-post/:id", admin, h.HandleUpdatePost)
	router.Get("/delete/:id", admin, h.HandleDeletePost)
}

// HandleIndex renders the home page with every post.
func (h *PostHandler) HandleIndex(c *fiber.Ctx) error {
	posts, err := h.postService.List()
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		return err
	}
	return render(c, "index", fiber.Map{
		"Title": "Home",
		"Posts": posts,
	})
}

// HandleShowPost renders a single post with its comments and the comment
// form.
func (h *PostHandler) HandleShowPost(c *fiber.Ctx) error {
	post, err := h.lookupPost(c)
	if err != nil {
		return err
	}
	return render(c, "post", fiber.Map{
		"Title": post.Title,
		"Post":  post,
		"Form":  forms.CommentForm{},
	})
}

// HandleAddComment attaches a comment to the post on behalf of the
// logged-in user. An invalid comment re-renders the post page with a
// message instead of being silently dropped.
func (h *PostHandler) HandleAddComment(c *fiber.Ctx) error {
	post, err := h.lookupPost(c)
	if err != nil {
		return err
	}

	var form forms.CommentForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing comment form: %v", err)
		return fiber.ErrBadRequest
	}

	if err := form.Validate(); err != nil {
		return render(c, "post", fiber.Map{
			"Title":     post.Title,
			"Post":      post,
			"Form":      form,
			"FormError": err.Error(),
		})
	}

	user := middleware.CurrentUser(c)
	if _, err := h.commentService.Add(post.ID, user, form.Body); err != nil {
		log.Printf("Error adding comment to post %d: %v", post.ID, err)
		return err
	}

	return c.Redirect(c.Path(), fiber.StatusSeeOther)
}

// HandleNewPostForm renders the empty post authoring form.
func (h *PostHandler) HandleNewPostForm(c *fiber.Ctx) error {
	return render(c, "make-post", fiber.Map{
		"Title":  "New Post",
		"Form":   forms.PostForm{},
		"Action": "/new-post",
	})
}

// HandleCreatePost creates a new post authored by the admin.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var form forms.PostForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing post form: %v", err)
		return fiber.ErrBadRequest
	}

	if err := form.Validate(); err != nil {
		return render(c, "make-post", fiber.Map{
			"Title":     "New Post",
			"Form":      form,
			"Action":    "/new-post",
			"FormError": err.Error(),
		})
	}

	author := middleware.CurrentUser(c)
	if _, err := h.postService.Create(form, author); err != nil {
		if isUniqueViolation(err) {
			return render(c, "make-post", fiber.Map{
				"Title":     "New Post",
				"Form":      form,
				"Action":    "/new-post",
				"FormError": "A post with that title already exists.",
			})
		}
		log.Printf("Error creating post: %v", err)
		return err
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleEditPostForm renders the authoring form prefilled with an
// existing post.
func (h *PostHandler) HandleEditPostForm(c *fiber.Ctx) error {
	post, err := h.lookupPost(c)
	if err != nil {
		return err
	}
	form := forms.PostForm{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Body:     post.Body,
		ImageURL: post.ImageURL,
	}
	return render(c, "make-post", fiber.Map{
		"Title":  "Edit Post",
		"Form":   form,
		"Action": c.Path(),
	})
}

// HandleUpdatePost replaces the mutable fields of an existing post.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	var form forms.PostForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing post form: %v", err)
		return fiber.ErrBadRequest
	}

	if err := form.Validate(); err != nil {
		return render(c, "make-post", fiber.Map{
			"Title":     "Edit Post",
			"Form":      form,
			"Action":    c.Path(),
			"FormError": err.Error(),
		})
	}

	post, err := h.postService.Update(uint(id), form)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.ErrNotFound
		}
		if isUniqueViolation(err) {
			return render(c, "make-post", fiber.Map{
				"Title":     "Edit Post",
				"Form":      form,
				"Action":    c.Path(),
				"FormError": "A post with that title already exists.",
			})
		}
		log.Printf("Error updating post %d: %v", id, err)
		return err
	}

	return c.Redirect(postPath(post.ID), fiber.StatusSeeOther)
}

// HandleDeletePost removes a post and its comments.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	if err := h.postService.Delete(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.ErrNotFound
		}
		log.Printf("Error deleting post %d: %v", id, err)
		return err
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// lookupPost resolves the :id route parameter to a post, translating a
// missing id into a 404.
func (h *PostHandler) lookupPost(c *fiber.Ctx) (*models.Post, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, fiber.ErrNotFound
	}
	post, err := h.postService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fiber.ErrNotFound
		}
		log.Printf("Error loading post %d: %v", id, err)
		return nil, err
	}
	return post, nil
}

// isUniqueViolation reports whether a store error came from a unique
// index, which both SQLite and PostgreSQL describe differently.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
