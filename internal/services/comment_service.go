package services

import (
	"fmt"
	"log"

	"blog/internal/models"
	"blog/internal/repositories"
)

// CommentService handles business logic related to comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	publisher   EventPublisher
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, publisher EventPublisher) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		publisher:   publisher,
	}
}

// Add attaches a new comment to a post on behalf of the author. The post
// must exist.
func (s *CommentService) Add(postID uint, author *models.User, body string) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:     body,
		AuthorID: author.ID,
		PostID:   postID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to add comment to post %d: %w", postID, err)
	}

	if s.publisher != nil {
		payload := map[string]interface{}{
			"comment_id": comment.ID,
			"post_id":    comment.PostID,
			"author_id":  comment.AuthorID,
		}
		if err := s.publisher.Publish("comment.created", payload); err != nil {
			log.Printf("Warning: failed to publish comment.created event: %v", err)
		}
	}

	return comment, nil
}
