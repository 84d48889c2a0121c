package models

import "time"

// Post represents a published article. Date is the human-readable
// publication date stamped when the post is created; it is a display
// string, not a timestamp.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"uniqueIndex;type:varchar(250)" validate:"required,max=250"`
	Subtitle  string    `json:"subtitle" gorm:"type:varchar(250)" validate:"required,max=250"`
	Date      string    `json:"date" gorm:"type:varchar(250)"`
	Body      string    `json:"body" gorm:"type:text" validate:"required"`
	ImageURL  string    `json:"image_url" gorm:"type:varchar(250)" validate:"required,url"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
	Comments  []Comment `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
