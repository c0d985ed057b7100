package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpfonseca/watchlog/internal/models"
	"github.com/jpfonseca/watchlog/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockMailer := services.NewMockEmailSender(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens, mockMailer, "http://localhost:3000")

	params := services.RegisterParams{
		FirstName: "Ana",
		LastName:  "Silva",
		Username:  "ana",
		BirthDate: "1999-04-12",
		Email:     "ana@example.com",
		Avatar:    "avatar3",
		Password:  "pw123",
	}

	tests := []struct {
		name          string
		usernameMatch *models.UserDB
		emailMatch    *models.UserDB
		readerErr     error
		writerErr     error
		wantErr       error
	}{
		{
			name:    "successful registration",
			wantErr: nil,
		},
		{
			name:          "username taken",
			usernameMatch: &models.UserDB{UserID: uuid.New()},
			wantErr:       services.ErrUserAlreadyExists,
		},
		{
			name:       "email taken",
			emailMatch: &models.UserDB{UserID: uuid.New()},
			wantErr:    services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &params.Username, (*string)(nil)).
				Return(tt.usernameMatch, tt.readerErr)

			if tt.usernameMatch == nil && tt.readerErr == nil {
				mockReader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), (*string)(nil), &params.Email).
					Return(tt.emailMatch, nil)
			}

			if tt.usernameMatch == nil && tt.emailMatch == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user models.UserDB) error {
						assert.Equal(t, params.Username, user.Username)
						assert.Equal(t, params.Email, user.Email)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.Password)))
						return tt.writerErr
					})
			}

			err := svc.Register(context.Background(), params)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockMailer := services.NewMockEmailSender(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens, mockMailer, "http://localhost:3000")

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name        string
		username    string
		user        *models.UserDB
		readerErr   error
		tokenErr    error
		sessionErr  error
		loginPass   string
		expectToken string
		wantErr     error
	}{
		{
			name:        "successful login",
			username:    "ana",
			user:        &models.UserDB{UserID: userID, Username: "ana", PasswordHash: string(hashed)},
			loginPass:   password,
			expectToken: "token123",
		},
		{
			name:      "user does not exist",
			username:  "ghost",
			user:      nil,
			loginPass: password,
			wantErr:   services.ErrUserNotFound,
		},
		{
			name:      "invalid password",
			username:  "ana",
			user:      &models.UserDB{UserID: userID, Username: "ana", PasswordHash: string(hashed)},
			loginPass: "wrongpass",
			wantErr:   services.ErrInvalidPassword,
		},
		{
			name:      "reader error",
			username:  "ana",
			readerErr: errors.New("db error"),
			loginPass: password,
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token generation error",
			username:  "ana",
			user:      &models.UserDB{UserID: userID, Username: "ana", PasswordHash: string(hashed)},
			loginPass: password,
			tokenErr:  errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
		{
			name:       "session store error",
			username:   "ana",
			user:       &models.UserDB{UserID: userID, Username: "ana", PasswordHash: string(hashed)},
			loginPass:  password,
			sessionErr: errors.New("redis down"),
			wantErr:    errors.New("redis down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, (*string)(nil)).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockTokens.EXPECT().
					GenerateSession(gomock.Any(), tt.user.UserID, tt.user.Username).
					Return(tt.expectToken, tt.tokenErr)

				if tt.tokenErr == nil {
					mockSessions.EXPECT().
						Set(gomock.Any(), tt.user.UserID, tt.expectToken).
						Return(tt.sessionErr)
				}
			}

			user, token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
				assert.Equal(t, tt.expectToken, token)
			}
		})
	}
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockMailer := services.NewMockEmailSender(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens, mockMailer, "http://localhost:3000")

	email := "ana@example.com"
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: email}

	t.Run("sends a reset link containing the token", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), (*string)(nil), &email).
			Return(user, nil)
		mockTokens.EXPECT().
			GenerateReset(gomock.Any(), userID).
			Return("RESET_TOKEN", nil)
		mockWriter.EXPECT().
			SetResetToken(gomock.Any(), userID, "RESET_TOKEN", gomock.Any()).
			Return(nil)
		mockMailer.EXPECT().
			Send(gomock.Any(), email, "Password reset instructions", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, body string) error {
				assert.Contains(t, body, "http://localhost:3000/recover/redefinir-password/RESET_TOKEN")
				return nil
			})

		err := svc.ForgotPassword(context.Background(), email)
		assert.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), (*string)(nil), &email).
			Return(nil, nil)

		err := svc.ForgotPassword(context.Background(), email)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("send failure after token is stored", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), (*string)(nil), &email).
			Return(user, nil)
		mockTokens.EXPECT().
			GenerateReset(gomock.Any(), userID).
			Return("RESET_TOKEN", nil)
		mockWriter.EXPECT().
			SetResetToken(gomock.Any(), userID, "RESET_TOKEN", gomock.Any()).
			Return(nil)
		mockMailer.EXPECT().
			Send(gomock.Any(), email, "Password reset instructions", gomock.Any()).
			Return(errors.New("smtp unreachable"))

		err := svc.ForgotPassword(context.Background(), email)
		assert.EqualError(t, err, "smtp unreachable")
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockMailer := services.NewMockEmailSender(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens, mockMailer, "http://localhost:3000")

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "ana@example.com"}

	t.Run("replaces the password and confirms by email", func(t *testing.T) {
		mockReader.EXPECT().
			GetByResetToken(gomock.Any(), "RESET_TOKEN").
			Return(user, nil)
		mockWriter.EXPECT().
			ResetPassword(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpw456")))
				return nil
			})
		mockMailer.EXPECT().
			Send(gomock.Any(), user.Email, "Password changed", gomock.Any()).
			Return(nil)

		err := svc.ResetPassword(context.Background(), "RESET_TOKEN", "newpw456")
		assert.NoError(t, err)
	})

	t.Run("invalid or expired token", func(t *testing.T) {
		mockReader.EXPECT().
			GetByResetToken(gomock.Any(), "STALE_TOKEN").
			Return(nil, nil)

		err := svc.ResetPassword(context.Background(), "STALE_TOKEN", "newpw456")
		assert.ErrorIs(t, err, services.ErrResetTokenInvalid)
	})
}

func TestAuthService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockMailer := services.NewMockEmailSender(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens, mockMailer, "http://localhost:3000")

	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		user := &models.UserDB{UserID: userID, Username: "ana"}
		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)

		got, err := svc.GetProfile(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		got, err := svc.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, got)
	})
}
