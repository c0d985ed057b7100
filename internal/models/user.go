package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents an account record in the database.
type UserDB struct {
	UserID       uuid.UUID  `json:"id" db:"user_id"`                  // Primary key
	FirstName    string     `json:"nome" db:"first_name"`             // Legal first name
	LastName     string     `json:"apelido" db:"last_name"`           // Legal last name
	Username     string     `json:"username" db:"username"`           // Unique username
	BirthDate    string     `json:"dataNascimento" db:"birth_date"`   // Birth date as sent by the client
	Email        string     `json:"email" db:"email"`                 // Unique email
	Avatar       string     `json:"avatarUser" db:"avatar"`           // Avatar reference
	PasswordHash string     `json:"-" db:"password_hash"`             // Bcrypt hash, never serialized
	ResetToken   *string    `json:"-" db:"reset_token"`               // Outstanding password-reset token, nil when none
	ResetExpires *time.Time `json:"-" db:"reset_expires"`             // Reset token expiry, nil when none
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
