package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/services"
)

// PasswordResetter defines the interface for consuming a reset token.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for consuming a reset token
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// New password
	// required: true
	NewPassword string `json:"newPassword"`
}

// NewResetPasswordHandler returns an HTTP handler for phase 2 of the
// password reset flow: consume the token, replace the password and clear
// the token so it cannot be reused.
// @Summary Consume a password reset token
// @Description Replaces the password if the token matches an account and is not expired, then sends a confirmation email.
// @Tags auth
// @Accept json
// @Produce plain
// @Param token path string true "Reset token"
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "New password"
// @Success 200 {string} string "Confirmation text"
// @Failure 400 {object} handlers.MessageResponse "Invalid or expired token"
// @Failure 500 {object} handlers.MessageResponse "Store or email failure"
// @Router /recover/redefinir-password/{token} [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid request body.",
			})
			return
		}

		if err := svc.ResetPassword(r.Context(), token, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrResetTokenInvalid):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "Password reset token is invalid or has expired.",
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
		w.Write([]byte("Password reset successfully."))
	}
}
