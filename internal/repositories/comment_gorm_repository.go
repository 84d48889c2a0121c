package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"blog/internal/models"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// Create inserts a new comment.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByPostID retrieves all comments on a post with their authors,
// oldest first.
func (r *GORMCommentRepository) GetByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").Order("id").Find(&comments, "post_id = ?", postID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get comments for post %d: %w", postID, err)
	}
	return comments, nil
}

// DeleteByPostID removes every comment belonging to a post. Deleting
// nothing is not an error; a post may have no comments.
func (r *GORMCommentRepository) DeleteByPostID(postID uint) error {
	if err := r.db.Delete(&models.Comment{}, "post_id = ?", postID).Error; err != nil {
		return fmt.Errorf("failed to delete comments for post %d: %w", postID, err)
	}
	return nil
}
