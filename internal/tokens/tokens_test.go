package tokens

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_SessionGenerateAndValidate(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.GenerateSession(ctx, userID, "ana")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetUserID(ctx, token, PurposeSession)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_ResetGenerateAndValidate(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.GenerateReset(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetUserID(ctx, token, PurposeReset)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_PurposeMismatch(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	sessionToken, err := j.GenerateSession(ctx, userID, "ana")
	assert.NoError(t, err)
	resetToken, err := j.GenerateReset(ctx, userID)
	assert.NoError(t, err)

	// A session token is never accepted as a reset token
	got, err := j.GetUserID(ctx, sessionToken, PurposeReset)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)

	// And a reset token is never accepted as a session token
	got, err = j.GetUserID(ctx, resetToken, PurposeSession)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.GenerateSession(ctx, userID, "ana")
	assert.NoError(t, err)

	got, err := j.GetUserID(ctx, token, PurposeSession)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	got, err := j.GetUserID(ctx, "invalid.token.string", PurposeSession)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	j1 := New("secret1", time.Minute)
	j2 := New("secret2", time.Minute)
	ctx := context.Background()

	userID := uuid.New()
	token, err := j1.GenerateSession(ctx, userID, "ana")
	assert.NoError(t, err)

	got, err := j2.GetUserID(ctx, token, PurposeSession)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
