package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jpfonseca/watchlog/internal/logger"
)

// SessionCacheRepository stores the single active session token per user in
// Redis. The key is per-user, so a new login overwrites the previous session,
// and the TTL bounds session lifetime without any cleanup job.
type SessionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // session lifetime
}

// NewSessionCacheRepository creates a new repository instance with the given TTL.
func NewSessionCacheRepository(client *redis.Client, expiration time.Duration) *SessionCacheRepository {
	return &SessionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("session:%s", userID)
}

// Set stores the active session token for a user, replacing any prior one.
func (r *SessionCacheRepository) Set(ctx context.Context, userID uuid.UUID, token string) error {
	key := sessionKey(userID)
	err := r.client.Set(ctx, key, token, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Get returns the active session token for a user, or "" when none exists.
func (r *SessionCacheRepository) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	key := sessionKey(userID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Delete revokes the active session of a user.
func (r *SessionCacheRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := sessionKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	return err
}
