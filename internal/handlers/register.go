package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, p services.RegisterParams) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// First name
	// required: true
	FirstName string `json:"nome"`

	// Last name
	// required: true
	LastName string `json:"apelido"`

	// Username
	// required: true
	Username string `json:"username"`

	// Birth date
	// required: true
	BirthDate string `json:"dataNascimento"`

	// Email
	// required: true
	Email string `json:"email"`

	// Avatar reference
	// required: true
	Avatar string `json:"avatarUser"`

	// Password
	// required: true
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new account. Username and email must be unique; the password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} handlers.MessageResponse "Account created"
// @Failure 400 {object} handlers.MessageResponse "Incomplete data or username/email taken"
// @Router /utilizadores [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid request body.",
			})
			return
		}

		if req.FirstName == "" || req.LastName == "" || req.Username == "" ||
			req.BirthDate == "" || req.Email == "" || req.Avatar == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Incomplete registration data.",
			})
			return
		}

		err := svc.Register(r.Context(), services.RegisterParams{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Username:  req.Username,
			BirthDate: req.BirthDate,
			Email:     req.Email,
			Avatar:    req.Avatar,
			Password:  req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "Username or email already in use.",
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "User created successfully.",
		})
	}
}
