// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// Username and email are unique under case-insensitive comparison;
// the email column always holds the lowercased form.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the display handle chosen at registration.
	// It must be unique across all users (case-insensitive).
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address used for authentication.
	// It is stored lowercased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores a plaintext password.
	Password string `gorm:"size:255;not null"`

	// ProfilePicture is an optional avatar URL.
	ProfilePicture string `gorm:"size:1024"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
