package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
	"github.com/jpfonseca/watchlog/internal/services"
)

// ProfileGetter defines the interface for reading an account profile.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileUpdater defines the interface for partially updating a profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, p services.UpdateProfileParams) (*models.UserDB, error)
}

// ProfileResponse represents the public profile fields of an account.
// The password hash is never exposed.
// swagger:model ProfileResponse
type ProfileResponse struct {
	FirstName string `json:"nome"`
	LastName  string `json:"apelido"`
	Username  string `json:"username"`
	BirthDate string `json:"dataNascimento"`
	Email     string `json:"email"`
	Avatar    string `json:"avatarUser"`
}

// UpdateProfileRequest represents a partial profile update; absent fields
// are left untouched.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	FirstName *string `json:"nome"`
	LastName  *string `json:"apelido"`
	Username  *string `json:"username"`
	BirthDate *string `json:"dataNascimento"`
	Email     *string `json:"email"`
	Avatar    *string `json:"avatarUser"`
}

// NewGetProfileHandler returns an HTTP handler for reading a profile.
// @Summary Get user profile
// @Description Returns the public profile fields of an account
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.ProfileResponse "Profile fields"
// @Failure 400 {object} handlers.MessageResponse "Malformed user id"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Router /utilizador/{id} [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid user id.",
			})
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "User not found.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: err.Error(),
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Username:  user.Username,
			BirthDate: user.BirthDate,
			Email:     user.Email,
			Avatar:    user.Avatar,
		})
	}
}

// NewUpdateProfileHandler returns an HTTP handler for partial profile updates.
// @Summary Update user profile
// @Description Overwrites the supplied profile fields; absent fields keep their value
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} handlers.MessageResponse "Profile updated"
// @Failure 400 {object} handlers.MessageResponse "Malformed user id or body"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Router /utilizador/{id} [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid user id.",
			})
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid request body.",
			})
			return
		}

		_, err = svc.UpdateProfile(r.Context(), userID, services.UpdateProfileParams{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Username:  req.Username,
			BirthDate: req.BirthDate,
			Email:     req.Email,
			Avatar:    req.Avatar,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "User not found.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: err.Error(),
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "User profile updated successfully.",
		})
	}
}
