package entity

import (
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User holds a single active session: Token is set on login, overwritten by a
// later login and cleared on logout. A nil Token means logged out.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	FullName  string     `gorm:"size:100" json:"fullName"`
	Role      string     `gorm:"size:20;default:student" json:"role"`
	Avatar    *string    `gorm:"type:text" json:"avatar,omitempty"`
	Token     *string    `gorm:"size:64;index" json:"-"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
