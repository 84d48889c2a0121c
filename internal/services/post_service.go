package services

import (
	"fmt"
	"log"
	"time"

	"blog/internal/forms"
	"blog/internal/models"
	"blog/internal/repositories"
)

// dateLayout is the display format stamped onto a post at creation time,
// e.g. "August 31, 2026".
const dateLayout = "January 2, 2006"

// PostService handles business logic related to posts.
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	publisher   EventPublisher
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, publisher EventPublisher) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
	}
}

// List retrieves all posts.
func (s *PostService) List() ([]models.Post, error) {
	return s.postRepo.GetAll()
}

// GetByID retrieves a single post with its comments.
func (s *PostService) GetByID(id uint) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// Create stores a new post authored by the given user, stamped with the
// current calendar date.
func (s *PostService) Create(form forms.PostForm, author *models.User) (*models.Post, error) {
	post := &models.Post{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
		Date:     time.Now().Format(dateLayout),
		AuthorID: author.ID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.publish("post.created", map[string]interface{}{
		"post_id":   post.ID,
		"title":     post.Title,
		"author_id": post.AuthorID,
	})

	return post, nil
}

// Update replaces the mutable fields of an existing post in place. The
// author and the original publication date keep their values.
func (s *PostService) Update(id uint, form forms.PostForm) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.Title = form.Title
	post.Subtitle = form.Subtitle
	post.Body = form.Body
	post.ImageURL = form.ImageURL

	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}
	return post, nil
}

// Delete removes a post together with its comments, so no comment is left
// referencing a post that no longer exists.
func (s *PostService) Delete(id uint) error {
	if err := s.commentRepo.DeleteByPostID(id); err != nil {
		return fmt.Errorf("failed to delete comments of post %d: %w", id, err)
	}
	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	s.publish("post.deleted", map[string]interface{}{
		"post_id": id,
	})

	return nil
}

// publish sends a lifecycle event if a publisher is configured. A publish
// failure is logged and never fails the request.
func (s *PostService) publish(event string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
