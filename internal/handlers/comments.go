package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
)

// CommentsGetter defines the interface for the cross-user comment projection.
type CommentsGetter interface {
	Comments(ctx context.Context, mediaID int64) ([]models.MediaCommentDB, error)
}

// CommentsResponse wraps the flattened comment projection for one media item.
// swagger:model CommentsResponse
type CommentsResponse struct {
	Comments []models.MediaCommentDB `json:"comentarios"`
}

// NewCommentsHandler returns an HTTP handler for the comment aggregation.
// @Summary Get all comments for a media item
// @Description Returns every non-empty comment across all accounts for the media item, with the commenting account's username and avatar resolved inline
// @Tags watch
// @Produce json
// @Param id_media path integer true "External media id"
// @Success 200 {object} handlers.CommentsResponse "Flattened comments"
// @Failure 400 {object} handlers.MessageResponse "Malformed media id"
// @Router /filme/comentarios/{id_media} [get]
// @Security BearerAuth
func NewCommentsHandler(svc CommentsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaID, err := strconv.ParseInt(chi.URLParam(r, "id_media"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid media id.",
			})
			return
		}

		comments, err := svc.Comments(r.Context(), mediaID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: err.Error(),
			})
			return
		}

		if comments == nil {
			comments = []models.MediaCommentDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CommentsResponse{
			Comments: comments,
		})
	}
}
