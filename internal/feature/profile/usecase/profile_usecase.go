// Package usecase implements the profile feature's business logic.
//
// Profiles are mutable attributes of the same account entity the auth
// feature owns; this usecase only ever touches username, email and the
// profile picture, never the password hash.
package usecase

import (
	"context"
	"strings"

	"movie_backend/internal/feature/auth/domain"
	"movie_backend/internal/feature/auth/domain/entity"
)

// ProfileRepository abstracts the persistence layer for account profiles.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type ProfileRepository interface {
	// FindByID returns the user with the given ID, or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail returns the user with the given lowercased email,
	// or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsernameFold returns the user matching the username
	// case-insensitively, or domain.ErrUserNotFound.
	FindByUsernameFold(ctx context.Context, username string) (*entity.User, error)

	// Save persists changes to an existing user. Unique violations are
	// normalized to domain.ErrUsernameTaken / domain.ErrEmailTaken.
	Save(ctx context.Context, user *entity.User) error
}

// ProfileUpdate carries the optional fields of a profile update.
// A nil field is left untouched.
type ProfileUpdate struct {
	Username       *string
	Email          *string
	ProfilePicture *string
}

// profileUsecase implements profile read and update operations.
type profileUsecase struct {
	users ProfileRepository
}

// NewProfileUsecase creates a new profileUsecase instance.
func NewProfileUsecase(users ProfileRepository) *profileUsecase {
	return &profileUsecase{users: users}
}

// Get returns the account view for the given user ID.
func (u *profileUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update applies the provided fields to the user's profile.
//
// For each provided field that differs from the current value, global
// uniqueness is re-checked excluding the caller's own account before
// anything is written; username is checked before email, and the first
// collision aborts the whole update. Fields not supplied stay untouched.
func (u *profileUsecase) Update(ctx context.Context, id uint, upd ProfileUpdate) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Username != nil && *upd.Username != user.Username {
		if other, err := u.users.FindByUsernameFold(ctx, *upd.Username); err == nil && other.ID != user.ID {
			return nil, domain.ErrUsernameTaken
		}
		user.Username = *upd.Username
	}

	if upd.Email != nil {
		email := strings.ToLower(*upd.Email)
		if email != user.Email {
			if other, err := u.users.FindByEmail(ctx, email); err == nil && other.ID != user.ID {
				return nil, domain.ErrEmailTaken
			}
			user.Email = email
		}
	}

	if upd.ProfilePicture != nil {
		user.ProfilePicture = *upd.ProfilePicture
	}

	// A concurrent update racing past the checks above still hits the
	// unique indexes; Save surfaces that as the same conflict errors.
	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
