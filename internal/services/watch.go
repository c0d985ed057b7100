package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
)

var (
	// ErrWatchNotFound is returned when an operation requires an existing
	// relationship record and none exists for the pair or id.
	ErrWatchNotFound = errors.New("watch record not found")
)

// WatchWriter defines write operations on relationship records.
type WatchWriter interface {
	Upsert(ctx context.Context, userID uuid.UUID, mediaID int64, watched, watchlisted bool) (*models.WatchDB, error)
	Review(ctx context.Context, userID uuid.UUID, mediaID int64, rating *float64, comment *string) (*models.WatchDB, error)
	UpdateByID(ctx context.Context, id uuid.UUID, watched, watchlisted bool, rating *float64, comment *string) (*models.WatchDB, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

// WatchReader defines read operations on relationship records.
type WatchReader interface {
	Get(ctx context.Context, userID uuid.UUID, mediaID int64) (*models.WatchDB, error)
	ListWatchlisted(ctx context.Context, userID uuid.UUID) ([]models.WatchDB, error)
	ListWatched(ctx context.Context, userID uuid.UUID) ([]models.WatchDB, error)
	ListComments(ctx context.Context, mediaID int64) ([]models.MediaCommentDB, error)
}

// CatalogReader resolves catalog records for list enrichment.
type CatalogReader interface {
	GetByIDs(ctx context.Context, mediaIDs []int64) ([]models.MediaDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// WatchListEntry is a relationship record enriched with its catalog record.
// Media is nil when the catalog has no record for the media id: the catalog
// and relationship stores are not transactionally consistent.
type WatchListEntry struct {
	models.WatchDB
	Media *models.MediaDB
}

// interactionEvent is the JSON payload published to Kafka after a
// successful status or review mutation.
type interactionEvent struct {
	Event       string    `json:"event"`
	MediaKind   string    `json:"media_kind"`
	UserID      string    `json:"user_id"`
	MediaID     int64     `json:"media_id"`
	Watched     bool      `json:"watched,omitempty"`
	Watchlisted bool      `json:"watchlisted,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// WatchService orchestrates relationship operations for one media kind and
// publishes interaction events.
type WatchService struct {
	kind        models.MediaKind
	writeRepo   WatchWriter
	readRepo    WatchReader
	catalogRepo CatalogReader
	kafkaWriter KafkaWriter
}

// NewWatchService creates a new WatchService. The kafkaWriter may be nil,
// in which case no events are published.
func NewWatchService(
	kind models.MediaKind,
	writeRepo WatchWriter,
	readRepo WatchReader,
	catalogRepo CatalogReader,
	kafkaWriter KafkaWriter,
) *WatchService {
	return &WatchService{
		kind:        kind,
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		catalogRepo: catalogRepo,
		kafkaWriter: kafkaWriter,
	}
}

// SetStatus creates or overwrites the relationship record for (user, media)
// with both watch flags replaced together. Idempotent by value.
func (svc *WatchService) SetStatus(ctx context.Context, userID uuid.UUID, mediaID int64, watched, watchlisted bool) (*models.WatchDB, error) {
	record, err := svc.writeRepo.Upsert(ctx, userID, mediaID, watched, watchlisted)
	if err != nil {
		logger.Log.Errorw("failed to upsert watch record", "err", err)
		return nil, err
	}

	svc.publish(ctx, "status", record)
	return record, nil
}

// Review overwrites rating and/or comment on an existing record. A present
// rating (including zero) replaces the stored one. A comment whose trimmed
// form is empty is silently ignored; a non-blank comment replaces the stored
// one and stamps the comment time. Review never creates a record.
func (svc *WatchService) Review(ctx context.Context, userID uuid.UUID, mediaID int64, rating *float64, comment *string) (*models.WatchDB, error) {
	if comment != nil && strings.TrimSpace(*comment) == "" {
		comment = nil
	}

	record, err := svc.writeRepo.Review(ctx, userID, mediaID, rating, comment)
	if err != nil {
		logger.Log.Errorw("failed to review watch record", "err", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrWatchNotFound
	}

	svc.publish(ctx, "review", record)
	return record, nil
}

// Status returns the watch flags for (user, media). A pair with no record
// yields {false, false}, never an error.
func (svc *WatchService) Status(ctx context.Context, userID uuid.UUID, mediaID int64) (watchlisted, watched bool, err error) {
	record, err := svc.readRepo.Get(ctx, userID, mediaID)
	if err != nil {
		logger.Log.Errorw("failed to get watch record", "err", err)
		return false, false, err
	}
	if record == nil {
		return false, false, nil
	}
	return record.Watchlisted, record.Watched, nil
}

// Watchlist returns the user's watchlisted records enriched with catalog data.
func (svc *WatchService) Watchlist(ctx context.Context, userID uuid.UUID) ([]WatchListEntry, error) {
	records, err := svc.readRepo.ListWatchlisted(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list watchlisted records", "err", err)
		return nil, err
	}
	return svc.enrich(ctx, records)
}

// Watched returns the user's watched records enriched with catalog data.
func (svc *WatchService) Watched(ctx context.Context, userID uuid.UUID) ([]WatchListEntry, error) {
	records, err := svc.readRepo.ListWatched(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list watched records", "err", err)
		return nil, err
	}
	return svc.enrich(ctx, records)
}

// enrich resolves the catalog records for a batch of relationship records in
// a single round trip and attaches them inline. Records without a catalog
// match keep a nil attachment.
func (svc *WatchService) enrich(ctx context.Context, records []models.WatchDB) ([]WatchListEntry, error) {
	entries := make([]WatchListEntry, 0, len(records))
	if len(records) == 0 {
		return entries, nil
	}

	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.MediaID)
	}

	media, err := svc.catalogRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to resolve catalog records", "err", err)
		return nil, err
	}

	byID := make(map[int64]*models.MediaDB, len(media))
	for i := range media {
		byID[media[i].MediaID] = &media[i]
	}

	for _, rec := range records {
		entries = append(entries, WatchListEntry{
			WatchDB: rec,
			Media:   byID[rec.MediaID],
		})
	}
	return entries, nil
}

// UpdateEntry overwrites flags, rating and comment of a record by its
// store-generated id.
func (svc *WatchService) UpdateEntry(ctx context.Context, id uuid.UUID, watched, watchlisted bool, rating *float64, comment *string) (*models.WatchDB, error) {
	record, err := svc.writeRepo.UpdateByID(ctx, id, watched, watchlisted, rating, comment)
	if err != nil {
		logger.Log.Errorw("failed to update watch record", "err", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrWatchNotFound
	}
	return record, nil
}

// DeleteEntry removes a record by its store-generated id.
func (svc *WatchService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	deleted, err := svc.writeRepo.DeleteByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete watch record", "err", err)
		return err
	}
	if deleted == 0 {
		return ErrWatchNotFound
	}
	return nil
}

// Comments returns the flattened comment projection for one media item.
func (svc *WatchService) Comments(ctx context.Context, mediaID int64) ([]models.MediaCommentDB, error) {
	comments, err := svc.readRepo.ListComments(ctx, mediaID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "err", err)
		return nil, err
	}
	return comments, nil
}

// publish emits an interaction event. Publishing is best effort: failures
// are logged and never surfaced to the caller.
func (svc *WatchService) publish(ctx context.Context, event string, record *models.WatchDB) {
	if svc.kafkaWriter == nil {
		return
	}

	payload, err := json.Marshal(interactionEvent{
		Event:       event,
		MediaKind:   string(svc.kind),
		UserID:      record.UserID.String(),
		MediaID:     record.MediaID,
		Watched:     record.Watched,
		Watchlisted: record.Watchlisted,
		Timestamp:   time.Now(),
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal interaction event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(record.UserID.String()),
		Value: payload,
	}
	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish interaction event", "err", err)
	}
}
