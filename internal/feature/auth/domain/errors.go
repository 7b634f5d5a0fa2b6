// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrEmailTaken indicates that an account with the given email already
	// exists (compared case-insensitively). Returned during registration and
	// profile updates, including when a concurrent insert loses the
	// duplicate-key race at the database.
	ErrEmailTaken = errors.New("Email already registered")

	// ErrUsernameTaken indicates that the username is already in use
	// (compared case-insensitively).
	ErrUsernameTaken = errors.New("Username already taken")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// Unknown email and wrong password are deliberately reported identically.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrWeakPassword indicates that the password does not meet the minimum length.
	ErrWeakPassword = errors.New("Password must be at least 6 characters")
)
