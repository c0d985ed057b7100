package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jpfonseca/watchlog/internal/models"
)

func newTestUser(username, email string) models.UserDB {
	return models.UserDB{
		FirstName:    "Ana",
		LastName:     "Silva",
		Username:     username,
		BirthDate:    "1999-04-12",
		Email:        email,
		Avatar:       "avatar3",
		PasswordHash: "hashed",
	}
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, newTestUser("ana", "ana@example.com"))
	assert.NoError(t, err)

	var user models.UserDB
	err = db.Get(&user, "SELECT "+userColumns+" FROM users WHERE username=$1", "ana")
	assert.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.NotEqual(t, uuid.Nil, user.UserID)

	// A duplicate username violates the unique constraint
	err = repo.Save(ctx, newTestUser("ana", "other@example.com"))
	assert.Error(t, err)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Save(ctx, newTestUser("carla", "carla@example.com")))
	assert.NoError(t, writeRepo.Save(ctx, newTestUser("duarte", "duarte@example.com")))

	t.Run("ByUsername", func(t *testing.T) {
		username := "carla"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "carla", user.Username)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "duarte@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "duarte", user.Username)
	})

	t.Run("NotFoundIsNilNotError", func(t *testing.T) {
		username := "nonexistent"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Save(ctx, newTestUser("carla", "carla@example.com")))

	username := "carla"
	saved, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
	assert.NoError(t, err)

	user, err := readRepo.GetByID(ctx, saved.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "carla", user.Username)

	user, err = readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserWriteRepository_UpdateProfile(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Save(ctx, newTestUser("carla", "carla@example.com")))
	username := "carla"
	saved, _ := readRepo.GetByUsernameOrEmail(ctx, &username, nil)

	t.Run("PartialUpdate", func(t *testing.T) {
		newEmail := "carla.new@example.com"
		user, err := writeRepo.UpdateProfile(ctx, saved.UserID, nil, nil, nil, nil, &newEmail, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, newEmail, user.Email)
		// Untouched fields keep their value
		assert.Equal(t, "carla", user.Username)
		assert.Equal(t, "Ana", user.FirstName)
	})

	t.Run("AbsentUser", func(t *testing.T) {
		newEmail := "ghost@example.com"
		user, err := writeRepo.UpdateProfile(ctx, uuid.New(), nil, nil, nil, nil, &newEmail, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_ResetTokenFlow(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Save(ctx, newTestUser("carla", "carla@example.com")))
	username := "carla"
	saved, _ := readRepo.GetByUsernameOrEmail(ctx, &username, nil)

	t.Run("ValidToken", func(t *testing.T) {
		err := writeRepo.SetResetToken(ctx, saved.UserID, "RESET_TOKEN", time.Now().Add(time.Hour))
		assert.NoError(t, err)

		user, err := readRepo.GetByResetToken(ctx, "RESET_TOKEN")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, saved.UserID, user.UserID)
	})

	t.Run("ExpiredTokenIsInvisible", func(t *testing.T) {
		err := writeRepo.SetResetToken(ctx, saved.UserID, "EXPIRED_TOKEN", time.Now().Add(-time.Minute))
		assert.NoError(t, err)

		user, err := readRepo.GetByResetToken(ctx, "EXPIRED_TOKEN")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ResetPasswordClearsToken", func(t *testing.T) {
		assert.NoError(t, writeRepo.SetResetToken(ctx, saved.UserID, "RESET_TOKEN", time.Now().Add(time.Hour)))
		assert.NoError(t, writeRepo.ResetPassword(ctx, saved.UserID, "newhash"))

		user, err := readRepo.GetByResetToken(ctx, "RESET_TOKEN")
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = readRepo.GetByID(ctx, saved.UserID)
		assert.NoError(t, err)
		assert.Equal(t, "newhash", user.PasswordHash)
		assert.Nil(t, user.ResetToken)
		assert.Nil(t, user.ResetExpires)
	})
}
