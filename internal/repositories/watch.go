package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
)

// watchTables maps a media kind to its relationship table. The tables are
// structurally identical and carry a UNIQUE (user_id, media_id) constraint.
var watchTables = map[models.MediaKind]string{
	models.MediaKindMovie:  "user_movies",
	models.MediaKindSeries: "user_series",
}

const watchColumns = `id, user_id, media_id, watched, watchlisted, rating, comment, comment_at, created_at, updated_at`

// WatchWriteRepository handles relationship write operations for one media kind.
type WatchWriteRepository struct {
	db    *sqlx.DB
	table string
}

func NewWatchWriteRepository(db *sqlx.DB, kind models.MediaKind) *WatchWriteRepository {
	return &WatchWriteRepository{db: db, table: watchTables[kind]}
}

// Upsert creates the relationship record for (user, media) if absent, else
// overwrites both watch flags together. The conditional upsert is a single
// atomic statement, so concurrent calls for the same pair cannot produce
// duplicate rows. Returns the post-write record.
func (r *WatchWriteRepository) Upsert(ctx context.Context, userID uuid.UUID, mediaID int64, watched, watchlisted bool) (*models.WatchDB, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, media_id, watched, watchlisted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id, media_id) DO UPDATE
		SET watched = EXCLUDED.watched,
		    watchlisted = EXCLUDED.watchlisted,
		    updated_at = NOW()
		RETURNING `+watchColumns+`
	`, r.table)
	args := []any{uuid.New(), userID, mediaID, watched, watchlisted}

	var record models.WatchDB
	err := r.db.GetContext(ctx, &record, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Review overwrites rating and/or comment on an existing record. A nil
// rating or comment leaves the corresponding field untouched; a non-nil
// comment also stamps the comment time. Returns nil when no record exists
// for the pair: review never creates.
func (r *WatchWriteRepository) Review(ctx context.Context, userID uuid.UUID, mediaID int64, rating *float64, comment *string) (*models.WatchDB, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET rating = COALESCE($3, rating),
		    comment = CASE WHEN $4::TEXT IS NOT NULL THEN $4 ELSE comment END,
		    comment_at = CASE WHEN $4::TEXT IS NOT NULL THEN NOW() ELSE comment_at END,
		    updated_at = NOW()
		WHERE user_id = $1 AND media_id = $2
		RETURNING `+watchColumns+`
	`, r.table)
	args := []any{userID, mediaID, rating, comment}

	var record models.WatchDB
	err := r.db.GetContext(ctx, &record, query, args...)

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
	return &record, nil
}

// UpdateByID overwrites flags, rating and comment of the record with the
// given store-generated id. Returns nil when absent.
func (r *WatchWriteRepository) UpdateByID(ctx context.Context, id uuid.UUID, watched, watchlisted bool, rating *float64, comment *string) (*models.WatchDB, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET watched = $2,
		    watchlisted = $3,
		    rating = $4,
		    comment = $5,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+watchColumns+`
	`, r.table)
	args := []any{id, watched, watchlisted, rating, comment}

	var record models.WatchDB
	err := r.db.GetContext(ctx, &record, query, args...)

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
	return &record, nil
}

// DeleteByID removes the record with the given id and reports how many rows
// were deleted (0 or 1).
func (r *WatchWriteRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.table)

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// WatchReadRepository handles relationship read operations for one media kind.
type WatchReadRepository struct {
	db    *sqlx.DB
	table string
}

func NewWatchReadRepository(db *sqlx.DB, kind models.MediaKind) *WatchReadRepository {
	return &WatchReadRepository{db: db, table: watchTables[kind]}
}

// Get returns the record for (user, media), or nil when the pair has no
// relationship yet. Absence is a common state, not an error.
func (r *WatchReadRepository) Get(ctx context.Context, userID uuid.UUID, mediaID int64) (*models.WatchDB, error) {
	query := fmt.Sprintf(`
		SELECT `+watchColumns+`
		FROM %s
		WHERE user_id = $1 AND media_id = $2
	`, r.table)

	var record models.WatchDB
	err := r.db.GetContext(ctx, &record, query, userID, mediaID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, mediaID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListWatchlisted returns every watchlisted record of a user, in natural
// storage order.
func (r *WatchReadRepository) ListWatchlisted(ctx context.Context, userID uuid.UUID) ([]models.WatchDB, error) {
	return r.listByFlag(ctx, userID, "watchlisted")
}

// ListWatched returns every watched record of a user, in natural storage order.
func (r *WatchReadRepository) ListWatched(ctx context.Context, userID uuid.UUID) ([]models.WatchDB, error) {
	return r.listByFlag(ctx, userID, "watched")
}

func (r *WatchReadRepository) listByFlag(ctx context.Context, userID uuid.UUID, flag string) ([]models.WatchDB, error) {
	query := fmt.Sprintf(`
		SELECT `+watchColumns+`
		FROM %s
		WHERE user_id = $1 AND %s = TRUE
	`, r.table, flag)

	var records []models.WatchDB
	err := r.db.SelectContext(ctx, &records, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListComments returns the flattened comment projection for one media item
// across all accounts, owning account resolved inline. Records whose owner
// cannot be resolved are skipped by the join.
func (r *WatchReadRepository) ListComments(ctx context.Context, mediaID int64) ([]models.MediaCommentDB, error) {
	query := fmt.Sprintf(`
		SELECT w.comment, w.rating, w.comment_at, u.username, u.avatar
		FROM %s w
		JOIN users u ON u.user_id = w.user_id
		WHERE w.media_id = $1 AND w.comment IS NOT NULL
	`, r.table)

	var comments []models.MediaCommentDB
	err := r.db.SelectContext(ctx, &comments, query, mediaID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mediaID},
		"result", len(comments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return comments, nil
}
