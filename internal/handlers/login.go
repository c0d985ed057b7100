package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
	"github.com/jpfonseca/watchlog/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: ana
	Username string `json:"username"`

	// Password
	// required: true
	// default: pw123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	Message      string    `json:"message"`
	SessionToken string    `json:"sessionToken"`
	Username     string    `json:"username"`
	UserID       uuid.UUID `json:"id_utilizador"`
	Avatar       string    `json:"avatarUser"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates a user, mints a session token (overwriting any prior session) and returns it with public profile fields
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session token and profile"
// @Failure 400 {object} handlers.MessageResponse "Incorrect password or invalid body"
// @Failure 404 {object} handlers.MessageResponse "Unknown username"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid request body.",
			})
			return
		}

		user, token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "User not found.",
				})
			case errors.Is(err, services.ErrInvalidPassword):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "Incorrect password.",
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
		json.NewEncoder(w).Encode(LoginResponse{
			Message:      "Login successful.",
			SessionToken: token,
			Username:     user.Username,
			UserID:       user.UserID,
			Avatar:       user.Avatar,
		})
	}
}
