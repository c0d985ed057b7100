package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
)

// CatalogSaver defines the interface for the catalog upsert.
type CatalogSaver interface {
	Save(ctx context.Context, media models.MediaDB) (*models.MediaDB, error)
}

// SaveMediaRequest represents the JSON body for a catalog upsert.
// swagger:model SaveMediaRequest
type SaveMediaRequest struct {
	// External media id
	// required: true
	MediaID int64 `json:"id_media"`

	// Title
	// required: true
	Title string `json:"nome"`

	// Genre labels
	Genres []string `json:"genero"`

	// Rating from the upstream catalog source
	APIRating float64 `json:"avaliacao_api"`
}

// MediaRecordResponse wraps a catalog record with a confirmation message.
// swagger:model MediaRecordResponse
type MediaRecordResponse struct {
	Message string          `json:"message"`
	Media   *models.MediaDB `json:"media"`
}

// NewSaveMediaHandler returns an HTTP handler for the catalog upsert.
// @Summary Add or update a catalog record
// @Description Upserts a catalog record keyed by its external id. Ratings with an exactly-zero fractional part are nudged by a small epsilon before storage.
// @Tags catalog
// @Accept json
// @Produce json
// @Param saveMediaRequest body handlers.SaveMediaRequest true "Catalog record"
// @Success 200 {object} handlers.MediaRecordResponse "Post-write record"
// @Failure 400 {object} handlers.MessageResponse "Invalid body"
// @Router /filmes/adicionar [post]
// @Security BearerAuth
func NewSaveMediaHandler(svc CatalogSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveMediaRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid request body.",
			})
			return
		}

		media, err := svc.Save(r.Context(), models.MediaDB{
			MediaID:   req.MediaID,
			Title:     req.Title,
			Genres:    req.Genres,
			APIRating: req.APIRating,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: err.Error(),
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MediaRecordResponse{
			Message: "Media saved successfully.",
			Media:   media,
		})
	}
}
