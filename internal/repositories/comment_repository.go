package repositories

import "blog/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByPostID(postID uint) ([]models.Comment, error)
	DeleteByPostID(postID uint) error
}
