// Package dto defines data transfer objects for the profile feature's HTTP transport layer.
package dto

// UpdateProfileReq represents the request body for PUT /users/profile.
// Every field is optional; absent fields are left untouched, which is why
// pointers are used instead of zero values.
type UpdateProfileReq struct {
	Username       *string `json:"username" binding:"omitempty,min=1"`
	Email          *string `json:"email" binding:"omitempty,email"`
	ProfilePicture *string `json:"profilePicture"`
}
