// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role names a permission level.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleUser     Role = "user"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleCustomer:
		return true
	}
	return false
}

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username defaults to the email address at registration.
	Username string `gorm:"uniqueIndex;size:150;not null"`

	// Email is used for login and must be unique.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PhoneNumber must be unique across all users.
	PhoneNumber string `gorm:"uniqueIndex;size:30;not null"`

	FirstName string `gorm:"size:255;not null;default:''"`
	LastName  string `gorm:"size:255;not null;default:''"`

	// Password is the bcrypt hash, never the plaintext.
	Password string `gorm:"size:255;not null"`

	Role     Role `gorm:"size:50;not null;default:user"`
	IsActive bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
