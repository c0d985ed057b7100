package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
)

// UserReadRepository handles account read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `user_id, first_name, last_name, username, birth_date, email, avatar,
	password_hash, reset_token, reset_expires, created_at, updated_at`

// GetByUsernameOrEmail returns the account matching the given username
// and/or email, or nil when no such account exists.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the account with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByResetToken returns the account holding the given reset token whose
// expiry is still in the future, or nil when no such account exists. An
// expired token is indistinguishable from an unknown one.
func (r *UserReadRepository) GetByResetToken(ctx context.Context, token string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE reset_token = $1
		  AND reset_expires > NOW()
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, token)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{token},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles account write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new account. Username and email uniqueness is enforced by
// the store; a conflict surfaces as a constraint error.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	query := `
		INSERT INTO users (user_id, first_name, last_name, username, birth_date, email, avatar, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	args := []any{uuid.New(), user.FirstName, user.LastName, user.Username, user.BirthDate, user.Email, user.Avatar, user.PasswordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateProfile overwrites the profile fields that are non-nil and leaves
// the rest untouched. Returns the post-write account, or nil when absent.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName, username, birthDate, email, avatar *string) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET first_name = COALESCE($2, first_name),
		    last_name  = COALESCE($3, last_name),
		    username   = COALESCE($4, username),
		    birth_date = COALESCE($5, birth_date),
		    email      = COALESCE($6, email),
		    avatar     = COALESCE($7, avatar),
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns + `
	`
	args := []any{userID, firstName, lastName, username, birthDate, email, avatar}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetResetToken stores a new reset token and expiry on the account,
// replacing any outstanding one.
func (r *UserWriteRepository) SetResetToken(ctx context.Context, userID uuid.UUID, token string, expires time.Time) error {
	query := `
		UPDATE users
		SET reset_token = $2,
		    reset_expires = $3,
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, token, expires}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ResetPassword overwrites the password hash and clears the reset token and
// expiry so the token cannot be consumed twice.
func (r *UserWriteRepository) ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2,
		    reset_token = NULL,
		    reset_expires = NULL,
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
