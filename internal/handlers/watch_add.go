package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
)

// StatusSetter defines the interface for the relationship upsert.
type StatusSetter interface {
	SetStatus(ctx context.Context, userID uuid.UUID, mediaID int64, watched, watchlisted bool) (*models.WatchDB, error)
}

// AddWatchRequest represents the JSON body for adding or updating a
// (user, media) relationship. Both flags are always replaced together.
// swagger:model AddWatchRequest
type AddWatchRequest struct {
	// User id
	// required: true
	UserID uuid.UUID `json:"id_utilizador"`

	// External media id
	// required: true
	MediaID int64 `json:"id_media"`

	// Watched flag
	Watched bool `json:"visto"`

	// Watchlisted flag
	Watchlisted bool `json:"a_ver"`
}

// NewAddWatchHandler returns an HTTP handler for the relationship upsert.
// @Summary Add or update a watch record
// @Description Creates the relationship record for the pair if absent, otherwise overwrites both watch flags; idempotent by value
// @Tags watch
// @Accept json
// @Produce json
// @Param addWatchRequest body handlers.AddWatchRequest true "Upsert request"
// @Success 201 {object} handlers.WatchRecordResponse "Post-write record"
// @Failure 400 {object} handlers.MessageResponse "Invalid body"
// @Router /utilizador-filme/adicionar [post]
// @Security BearerAuth
func NewAddWatchHandler(svc StatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddWatchRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid request body.",
			})
			return
		}

		record, err := svc.SetStatus(r.Context(), req.UserID, req.MediaID, req.Watched, req.Watchlisted)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: err.Error(),
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(WatchRecordResponse{
			Message: "Record added to the user's list.",
			Record:  record,
		})
	}
}
