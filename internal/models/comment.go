package models

import "time"

// Comment is a short reply attached to exactly one post and one author.
// Comments are immutable once created.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"type:varchar(500);not null" validate:"required,max=500"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
	PostID    uint      `json:"post_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
