package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
	"github.com/jpfonseca/watchlog/internal/services"
)

// ListGetter defines the interface for reading a user's enriched lists.
type ListGetter interface {
	Watchlist(ctx context.Context, userID uuid.UUID) ([]services.WatchListEntry, error)
	Watched(ctx context.Context, userID uuid.UUID) ([]services.WatchListEntry, error)
}

// WatchListItem is a relationship record with its catalog record attached
// under the kind-specific key. The attachment is absent when the catalog has
// no record for the media id.
// swagger:model WatchListItem
type WatchListItem struct {
	models.WatchDB
	Movie  *models.MediaDB `json:"filme,omitempty"`
	Series *models.MediaDB `json:"serie,omitempty"`
}

// NewWatchlistHandler returns an HTTP handler for the enriched watchlist.
// @Summary Get a user's watchlist
// @Description Returns every watchlisted record of the user with catalog metadata attached inline
// @Tags watch
// @Produce json
// @Param id_utilizador path string true "User id"
// @Success 200 {array} handlers.WatchListItem "Enriched records"
// @Failure 400 {object} handlers.MessageResponse "Malformed user id"
// @Router /utilizador-filme/aver/{id_utilizador} [get]
// @Security BearerAuth
func NewWatchlistHandler(svc ListGetter, kind models.MediaKind) http.HandlerFunc {
	return listHandler(kind, func(ctx context.Context, userID uuid.UUID) ([]services.WatchListEntry, error) {
		return svc.Watchlist(ctx, userID)
	})
}

// NewWatchedHandler returns an HTTP handler for the enriched watched list.
// @Summary Get a user's watched list
// @Description Returns every watched record of the user with catalog metadata attached inline
// @Tags watch
// @Produce json
// @Param id_utilizador path string true "User id"
// @Success 200 {array} handlers.WatchListItem "Enriched records"
// @Failure 400 {object} handlers.MessageResponse "Malformed user id"
// @Router /utilizador-filme/visto/{id_utilizador} [get]
// @Security BearerAuth
func NewWatchedHandler(svc ListGetter, kind models.MediaKind) http.HandlerFunc {
	return listHandler(kind, func(ctx context.Context, userID uuid.UUID) ([]services.WatchListEntry, error) {
		return svc.Watched(ctx, userID)
	})
}

func listHandler(kind models.MediaKind, list func(ctx context.Context, userID uuid.UUID) ([]services.WatchListEntry, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id_utilizador"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid user id.",
			})
			return
		}

		entries, err := list(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: err.Error(),
			})
			return
		}

		items := make([]WatchListItem, 0, len(entries))
		for _, entry := range entries {
			item := WatchListItem{WatchDB: entry.WatchDB}
			switch kind {
			case models.MediaKindMovie:
				item.Movie = entry.Media
			case models.MediaKindSeries:
				item.Series = entry.Media
			}
			items = append(items, item)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}
