// Package handler provides HTTP handlers for the profile feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	authdomain "movie_backend/internal/feature/auth/domain"
	"movie_backend/internal/feature/auth/domain/entity"
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	"movie_backend/internal/feature/profile/transport/http/dto"
	"movie_backend/internal/feature/profile/usecase"
	jwtmw "movie_backend/internal/platform/jwt"
)

// ProfileUsecase defines the usecase for profile operations.
// Following Go convention, the interface is defined by the consumer (handler).
type ProfileUsecase interface {
	// Get returns the account view for the given user ID.
	Get(ctx context.Context, id uint) (*entity.User, error)
	// Update applies the provided optional fields and returns the updated user.
	Update(ctx context.Context, id uint, upd usecase.ProfileUpdate) (*entity.User, error)
}

// ProfileHandler handles HTTP requests for profile operations.
type ProfileHandler struct {
	profiles ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(profiles ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /users/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	user, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}
		slog.Error("profile fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, api.UserResponse{User: authhandler.UserView(user)})
}

// Update handles PUT /users/profile.
// Uniqueness conflicts come back as 400 with the name of the first
// colliding field (username is checked before email).
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile update validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.profiles.Update(c.Request.Context(), userID, usecase.ProfileUpdate{
		Username:       req.Username,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrUsernameTaken), errors.Is(err, authdomain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, authdomain.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		default:
			slog.Error("profile update failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update profile"})
		}
		return
	}

	slog.Info("profile updated", "user_id", userID)
	c.JSON(http.StatusOK, api.UserResponse{User: authhandler.UserView(user)})
}
