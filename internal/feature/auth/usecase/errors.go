// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

// Sentinels returned by UserRepository implementations.
var (
	// ErrUserNotFound is returned when a user cannot be found by email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when the users.email unique index rejects an insert.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Config holds the auth usecase settings read from the environment.
type Config struct {
	HashCost int `env:"BCRYPT_COST" envDefault:"12"`
}
