package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/tokens"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string, purpose tokens.Purpose) (uuid.UUID, error)
}

// SessionReader reads the single active session token of a user.
type SessionReader interface {
	Get(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthMiddleware returns a middleware that requires a valid session token.
// The token must parse as a session-purpose token and must equal the user's
// currently active session: a token from a login that was since overwritten
// is rejected even if it has not expired yet.
func AuthMiddleware(tokener Tokener, sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString, tokens.PurposeSession)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			active, err := sessions.Get(ctx, userID)
			if err != nil {
				logger.Log.Errorw("failed to read session", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if active != tokenString {
				logger.Log.Errorw("authorization failed", "err", "token is not the active session")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
