// Package api defines the shared JSON envelopes returned by HTTP handlers.
package api

import "time"

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the envelope for requests that succeed without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// User is the public view of an account. The password hash is never part of it.
type User struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AuthResponse is returned by /auth/register and /auth/login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserResponse wraps a single user view.
type UserResponse struct {
	User User `json:"user"`
}
