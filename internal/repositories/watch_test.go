package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jpfonseca/watchlog/internal/models"
)

func TestWatchWriteRepository_Upsert(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewWatchWriteRepository(db, models.MediaKindMovie)
	ctx := context.Background()

	userID := uuid.New()

	record, err := repo.Upsert(ctx, userID, 603, false, true)
	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.False(t, record.Watched)
	assert.True(t, record.Watchlisted)

	// A second upsert for the same pair overwrites both flags in place
	again, err := repo.Upsert(ctx, userID, 603, true, false)
	assert.NoError(t, err)
	assert.Equal(t, record.ID, again.ID)
	assert.True(t, again.Watched)
	assert.False(t, again.Watchlisted)

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM user_movies WHERE user_id=$1 AND media_id=$2", userID, int64(603)))
	assert.Equal(t, 1, count)
}

func TestWatchWriteRepository_Review(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewWatchWriteRepository(db, models.MediaKindMovie)
	ctx := context.Background()

	userID := uuid.New()
	_, err := repo.Upsert(ctx, userID, 603, true, false)
	assert.NoError(t, err)

	t.Run("RatingOnlyKeepsComment", func(t *testing.T) {
		comment := "Great pacing."
		record, err := repo.Review(ctx, userID, 603, nil, &comment)
		assert.NoError(t, err)
		assert.NotNil(t, record.Comment)
		assert.NotNil(t, record.CommentAt)
		firstCommentAt := *record.CommentAt

		rating := 7.5
		record, err = repo.Review(ctx, userID, 603, &rating, nil)
		assert.NoError(t, err)
		assert.NotNil(t, record.Rating)
		assert.Equal(t, 7.5, *record.Rating)
		// Absent comment leaves the stored one and its timestamp untouched
		assert.Equal(t, "Great pacing.", *record.Comment)
		assert.Equal(t, firstCommentAt, *record.CommentAt)
	})

	t.Run("ZeroRatingIsStored", func(t *testing.T) {
		zero := 0.0
		record, err := repo.Review(ctx, userID, 603, &zero, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, *record.Rating)
	})

	t.Run("NoRecordReturnsNil", func(t *testing.T) {
		rating := 8.0
		record, err := repo.Review(ctx, uuid.New(), 603, &rating, nil)
		assert.NoError(t, err)
		assert.Nil(t, record)
	})
}

func TestWatchWriteRepository_UpdateAndDeleteByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewWatchWriteRepository(db, models.MediaKindMovie)
	ctx := context.Background()

	userID := uuid.New()
	record, err := repo.Upsert(ctx, userID, 603, false, true)
	assert.NoError(t, err)

	t.Run("UpdateByID", func(t *testing.T) {
		rating := 9.0
		comment := "Rewatched, even better."
		updated, err := repo.UpdateByID(ctx, record.ID, true, false, &rating, &comment)
		assert.NoError(t, err)
		assert.True(t, updated.Watched)
		assert.False(t, updated.Watchlisted)
		assert.Equal(t, 9.0, *updated.Rating)
		assert.Equal(t, comment, *updated.Comment)
	})

	t.Run("UpdateAbsentID", func(t *testing.T) {
		updated, err := repo.UpdateByID(ctx, uuid.New(), true, false, nil, nil)
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		deleted, err := repo.DeleteByID(ctx, record.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		deleted, err = repo.DeleteByID(ctx, record.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}

func TestWatchReadRepository_GetAndLists(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewWatchWriteRepository(db, models.MediaKindMovie)
	readRepo := NewWatchReadRepository(db, models.MediaKindMovie)
	ctx := context.Background()

	userID := uuid.New()
	_, err := writeRepo.Upsert(ctx, userID, 603, true, false)
	assert.NoError(t, err)
	_, err = writeRepo.Upsert(ctx, userID, 604, false, true)
	assert.NoError(t, err)
	_, err = writeRepo.Upsert(ctx, userID, 605, true, true)
	assert.NoError(t, err)

	t.Run("Get", func(t *testing.T) {
		record, err := readRepo.Get(ctx, userID, 603)
		assert.NoError(t, err)
		assert.NotNil(t, record)
		assert.True(t, record.Watched)

		record, err = readRepo.Get(ctx, userID, 999)
		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("ListWatched", func(t *testing.T) {
		records, err := readRepo.ListWatched(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("ListWatchlisted", func(t *testing.T) {
		records, err := readRepo.ListWatchlisted(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("OtherUserSeesNothing", func(t *testing.T) {
		records, err := readRepo.ListWatched(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestWatchReadRepository_ListComments(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userWriteRepo := NewUserWriteRepository(db)
	userReadRepo := NewUserReadRepository(db)
	writeRepo := NewWatchWriteRepository(db, models.MediaKindMovie)
	readRepo := NewWatchReadRepository(db, models.MediaKindMovie)
	ctx := context.Background()

	assert.NoError(t, userWriteRepo.Save(ctx, newTestUser("carla", "carla@example.com")))
	username := "carla"
	owner, _ := userReadRepo.GetByUsernameOrEmail(ctx, &username, nil)

	// A comment by a known account
	_, err := writeRepo.Upsert(ctx, owner.UserID, 603, true, false)
	assert.NoError(t, err)
	comment := "Loved it."
	rating := 8.2
	_, err = writeRepo.Review(ctx, owner.UserID, 603, &rating, &comment)
	assert.NoError(t, err)

	// A record without a comment is excluded
	_, err = writeRepo.Upsert(ctx, owner.UserID, 604, true, false)
	assert.NoError(t, err)

	// A comment whose owner has no account row is skipped by the join
	ghostID := uuid.New()
	_, err = writeRepo.Upsert(ctx, ghostID, 603, true, false)
	assert.NoError(t, err)
	ghostComment := "Who am I?"
	_, err = writeRepo.Review(ctx, ghostID, 603, nil, &ghostComment)
	assert.NoError(t, err)

	comments, err := readRepo.ListComments(ctx, 603)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, "Loved it.", comments[0].Comment)
	assert.Equal(t, "carla", comments[0].Username)
	assert.Equal(t, "avatar3", comments[0].Avatar)
	assert.NotNil(t, comments[0].Rating)
	assert.NotNil(t, comments[0].CommentAt)
}
