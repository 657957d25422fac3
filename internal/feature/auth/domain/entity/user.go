// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered investor.
// Users are created by registration and never modified afterwards.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown to the user.
	Name string `gorm:"size:255;not null"`

	// Email is the login key, stored trimmed and lower-cased.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex:idx_users_email;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is maintained by GORM.
	UpdatedAt time.Time
}
