package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
)

// catalogTables maps a media kind to its catalog table. Movies and series
// carry identical columns; only the table differs.
var catalogTables = map[models.MediaKind]string{
	models.MediaKindMovie:  "movies",
	models.MediaKindSeries: "series",
}

const mediaColumns = `media_id, title, genres, api_rating, created_at, updated_at`

// CatalogWriteRepository handles catalog write operations for one media kind.
type CatalogWriteRepository struct {
	db    *sqlx.DB
	table string
}

func NewCatalogWriteRepository(db *sqlx.DB, kind models.MediaKind) *CatalogWriteRepository {
	return &CatalogWriteRepository{db: db, table: catalogTables[kind]}
}

// Save performs an atomic upsert keyed on the external media id: creates the
// record if absent, otherwise overwrites title, genres and rating. Returns
// the post-write record.
func (r *CatalogWriteRepository) Save(ctx context.Context, media models.MediaDB) (*models.MediaDB, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (media_id, title, genres, api_rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (media_id) DO UPDATE
		SET title = EXCLUDED.title,
		    genres = EXCLUDED.genres,
		    api_rating = EXCLUDED.api_rating,
		    updated_at = NOW()
		RETURNING `+mediaColumns+`
	`, r.table)
	args := []any{media.MediaID, media.Title, media.Genres, media.APIRating}

	var out models.MediaDB
	err := r.db.GetContext(ctx, &out, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CatalogReadRepository handles catalog read operations for one media kind.
type CatalogReadRepository struct {
	db    *sqlx.DB
	table string
}

func NewCatalogReadRepository(db *sqlx.DB, kind models.MediaKind) *CatalogReadRepository {
	return &CatalogReadRepository{db: db, table: catalogTables[kind]}
}

// GetByID returns the catalog record with the given external id, or nil
// when absent.
func (r *CatalogReadRepository) GetByID(ctx context.Context, mediaID int64) (*models.MediaDB, error) {
	query := fmt.Sprintf(`
		SELECT `+mediaColumns+`
		FROM %s
		WHERE media_id = $1
	`, r.table)

	var media models.MediaDB
	err := r.db.GetContext(ctx, &media, query, mediaID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mediaID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// GetByIDs returns the catalog records for the given external ids in a
// single round trip. Ids without a record are simply absent from the result.
func (r *CatalogReadRepository) GetByIDs(ctx context.Context, mediaIDs []int64) ([]models.MediaDB, error) {
	query := fmt.Sprintf(`
		SELECT `+mediaColumns+`
		FROM %s
		WHERE media_id = ANY($1)
	`, r.table)

	var media []models.MediaDB
	err := r.db.SelectContext(ctx, &media, query, pq.Array(mediaIDs))

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mediaIDs},
		"result", len(media),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return media, nil
}
