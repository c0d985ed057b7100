package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
	"github.com/jpfonseca/watchlog/internal/services"
)

// Reviewer defines the interface for the review operation.
type Reviewer interface {
	Review(ctx context.Context, userID uuid.UUID, mediaID int64, rating *float64, comment *string) (*models.WatchDB, error)
}

// ReviewRequest represents the JSON body for rating and/or commenting on an
// existing watch record. A present rating (including zero) replaces the
// stored one; a blank comment is silently ignored.
// swagger:model ReviewRequest
type ReviewRequest struct {
	// User id
	// required: true
	UserID uuid.UUID `json:"id_utilizador"`

	// External media id
	// required: true
	MediaID int64 `json:"id_media"`

	// Rating
	Rating *float64 `json:"avaliacao"`

	// Comment
	Comment *string `json:"comentario"`
}

// NewReviewHandler returns an HTTP handler for the review operation.
// @Summary Rate or comment on a watch record
// @Description Overwrites rating and/or comment on an existing record; review never creates a record
// @Tags watch
// @Accept json
// @Produce json
// @Param reviewRequest body handlers.ReviewRequest true "Review request"
// @Success 200 {object} handlers.WatchRecordResponse "Updated record"
// @Failure 400 {object} handlers.MessageResponse "Invalid body"
// @Failure 404 {object} handlers.MessageResponse "No record for the pair"
// @Router /utilizador-filme/update [put]
// @Security BearerAuth
func NewReviewHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReviewRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid request body.",
			})
			return
		}

		record, err := svc.Review(r.Context(), req.UserID, req.MediaID, req.Rating, req.Comment)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWatchNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "Record not found.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: err.Error(),
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WatchRecordResponse{
			Message: "Review updated successfully.",
			Record:  record,
		})
	}
}
