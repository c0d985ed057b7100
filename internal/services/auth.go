package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("username or email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrResetTokenInvalid = errors.New("reset token is invalid or expired")
)

// resetTokenTTL bounds the validity of an outstanding password-reset token.
const resetTokenTTL = time.Hour

// UserReader defines read-only operations for accounts.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByResetToken(ctx context.Context, token string) (*models.UserDB, error)
}

// UserWriter defines write operations for accounts.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName, username, birthDate, email, avatar *string) (*models.UserDB, error)
	SetResetToken(ctx context.Context, userID uuid.UUID, token string, expires time.Time) error
	ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// SessionWriter stores the single active session token per user.
type SessionWriter interface {
	Set(ctx context.Context, userID uuid.UUID, token string) error
}

// TokenGenerator mints purpose-scoped tokens.
type TokenGenerator interface {
	GenerateSession(ctx context.Context, userID uuid.UUID, username string) (string, error)
	GenerateReset(ctx context.Context, userID uuid.UUID) (string, error)
}

// EmailSender delivers outbound email.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// RegisterParams carries the fields of a registration request.
type RegisterParams struct {
	FirstName string
	LastName  string
	Username  string
	BirthDate string
	Email     string
	Avatar    string
	Password  string
}

// UpdateProfileParams carries a partial profile update; nil fields are left
// untouched.
type UpdateProfileParams struct {
	FirstName *string
	LastName  *string
	Username  *string
	BirthDate *string
	Email     *string
	Avatar    *string
}

// AuthService handles registration, login, profile and password-reset flows.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	sessions    SessionWriter
	tokens      TokenGenerator
	mailer      EmailSender
	frontendURL string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionWriter, tokens TokenGenerator, mailer EmailSender, frontendURL string) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		sessions:    sessions,
		tokens:      tokens,
		mailer:      mailer,
		frontendURL: frontendURL,
	}
}

// Register creates a new account with a bcrypt-hashed password. Username and
// email must be unique.
func (svc *AuthService) Register(ctx context.Context, p RegisterParams) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &p.Username, nil)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user == nil {
		user, err = svc.reader.GetByUsernameOrEmail(ctx, nil, &p.Email)
		if err != nil {
			logger.Log.Errorw("failed to check email exists", "err", err)
			return err
		}
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", p.Username, "email", p.Email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, models.UserDB{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Username:     p.Username,
		BirthDate:    p.BirthDate,
		Email:        p.Email,
		Avatar:       p.Avatar,
		PasswordHash: string(hashedPassword),
	}); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user, mints a new session token and stores it as
// the single active session, overwriting any prior one. Returns the account
// and the token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return nil, "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, "", ErrInvalidPassword
	}

	token, err := svc.tokens.GenerateSession(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, "", err
	}

	if err := svc.sessions.Set(ctx, user.UserID, token); err != nil {
		logger.Log.Errorw("failed to store session", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// GetProfile returns the account with the given id.
func (svc *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile overwrites the supplied profile fields and leaves the rest
// untouched.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, p UpdateProfileParams) (*models.UserDB, error) {
	user, err := svc.writer.UpdateProfile(ctx, userID, p.FirstName, p.LastName, p.Username, p.BirthDate, p.Email, p.Avatar)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ForgotPassword mints a reset token, persists it with a one-hour expiry on
// the account and emails a reset link. The token row is committed before the
// email is sent, so a send failure leaves a valid token behind.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Errorw("no user with email", "email", email)
		return ErrUserNotFound
	}

	token, err := svc.tokens.GenerateReset(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return err
	}

	if err := svc.writer.SetResetToken(ctx, user.UserID, token, time.Now().Add(resetTokenTTL)); err != nil {
		logger.Log.Errorw("failed to store reset token", "err", err)
		return err
	}

	resetURL := fmt.Sprintf("%s/recover/redefinir-password/%s", svc.frontendURL, token)
	body := fmt.Sprintf(
		"A password reset was requested for your account. Follow the link below to set a new password:\n\n%s\n\nIf you did not request a reset, ignore this email.",
		resetURL,
	)

	if err := svc.mailer.Send(ctx, email, "Password reset instructions", body); err != nil {
		logger.Log.Errorw("failed to send reset email", "err", err)
		return err
	}

	return nil
}

// ResetPassword consumes a reset token: the stored token must match and its
// expiry must still be in the future. On success the password is replaced,
// the token is cleared so it cannot be reused, and a confirmation email is
// sent.
func (svc *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := svc.reader.GetByResetToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up reset token", "err", err)
		return err
	}
	if user == nil {
		return ErrResetTokenInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.ResetPassword(ctx, user.UserID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to reset password", "err", err)
		return err
	}

	if err := svc.mailer.Send(ctx, user.Email, "Password changed", "Your password was changed successfully."); err != nil {
		logger.Log.Errorw("failed to send confirmation email", "err", err)
		return err
	}

	return nil
}
