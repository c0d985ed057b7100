package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/services"
)

// PasswordForgetter defines the interface for starting a password reset.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, email string) error
}

// ForgotPasswordRequest represents the JSON body for requesting a password reset
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Account email
	// required: true
	Email string `json:"email"`
}

// NewForgotPasswordHandler returns an HTTP handler for phase 1 of the
// password reset flow: mint a reset token, persist it with a one-hour
// expiry and email a reset link.
// @Summary Request a password reset
// @Description Emails a reset link to the account with the given email. A send failure is surfaced as 500 even though the token was already stored.
// @Tags auth
// @Accept json
// @Produce plain
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Account email"
// @Success 200 {string} string "Confirmation text"
// @Failure 404 {object} handlers.MessageResponse "No account with that email"
// @Failure 500 {object} handlers.MessageResponse "Store or email failure"
// @Router /forgot/recuperar-password [post]
func NewForgotPasswordHandler(svc PasswordForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid request body.",
			})
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "No user found with the given email.",
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
		w.Write([]byte("Password reset instructions sent by email."))
	}
}
