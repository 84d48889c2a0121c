package models

import "time"

// Role values assigned to users at registration.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered account. The password field holds a bcrypt
// hash, never the plaintext, and is excluded from JSON output.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Role      string    `json:"role" gorm:"type:varchar(20);default:user"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
