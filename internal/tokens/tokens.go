package tokens

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Purpose scopes a token to a single security domain. A session token is
// never accepted where a reset token is expected, and vice versa.
type Purpose string

const (
	PurposeSession Purpose = "session"
	PurposeReset   Purpose = "reset"
)

// JWT provides methods to generate and validate purpose-scoped HS256 tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// GenerateSession creates a session token bound to a userID and username.
func (j *JWT) GenerateSession(ctx context.Context, userID uuid.UUID, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"username": username,
		"purpose":  string(PurposeSession),
		"exp":      time.Now().Add(j.Exp).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GenerateReset creates a password-reset token bound to a userID.
func (j *JWT) GenerateReset(ctx context.Context, userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"purpose": string(PurposeReset),
		"exp":     time.Now().Add(j.Exp).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetUserID parses the token string and returns the userID if the token is
// valid and carries the expected purpose claim.
func (j *JWT) GetUserID(ctx context.Context, tokenString string, purpose Purpose) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	if p, _ := claims["purpose"].(string); p != string(purpose) {
		return uuid.Nil, errors.New("token purpose mismatch")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("user_id not found in token")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid user_id format")
	}
	return userID, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
