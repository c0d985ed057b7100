package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpfonseca/watchlog/internal/logger"
)

// StatusGetter defines the interface for reading watch flags of a pair.
type StatusGetter interface {
	Status(ctx context.Context, userID uuid.UUID, mediaID int64) (watchlisted, watched bool, err error)
}

// StatusResponse represents the watch flags of a (user, media) pair. A pair
// with no relationship yields both flags false.
// swagger:model StatusResponse
type StatusResponse struct {
	Added   bool `json:"added"`
	Watched bool `json:"watched"`
}

// NewStatusHandler returns an HTTP handler for the watch-status query.
// @Summary Get watch status
// @Description Returns the watchlist/watched flags for a (user, media) pair; absence of a relationship is not an error
// @Tags watch
// @Produce json
// @Param id_utilizador path string true "User id"
// @Param id_media path integer true "External media id"
// @Success 200 {object} handlers.StatusResponse "Watch flags"
// @Failure 400 {object} handlers.MessageResponse "Malformed identifier"
// @Router /utilizador-filme/status/{id_utilizador}/{id_media} [get]
// @Security BearerAuth
func NewStatusHandler(svc StatusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id_utilizador"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid user id.",
			})
			return
		}

		mediaID, err := strconv.ParseInt(chi.URLParam(r, "id_media"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid media id.",
			})
			return
		}

		watchlisted, watched, err := svc.Status(r.Context(), userID, mediaID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: err.Error(),
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{
			Added:   watchlisted,
			Watched: watched,
		})
	}
}
