package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
	"github.com/jpfonseca/watchlog/internal/services"
)

// EntryUpdater defines the interface for overwriting a record by its id.
type EntryUpdater interface {
	UpdateEntry(ctx context.Context, id uuid.UUID, watched, watchlisted bool, rating *float64, comment *string) (*models.WatchDB, error)
}

// EntryDeleter defines the interface for deleting a record by its id.
type EntryDeleter interface {
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// UpdateEntryRequest represents the JSON body for a full overwrite of a
// watch record addressed by its store-generated id.
// swagger:model UpdateEntryRequest
type UpdateEntryRequest struct {
	Watched     bool     `json:"visto"`
	Watchlisted bool     `json:"a_ver"`
	Rating      *float64 `json:"avaliacao"`
	Comment     *string  `json:"comentario"`
}

// NewUpdateEntryHandler returns an HTTP handler that overwrites flags,
// rating and comment of a record addressed by its store-generated id.
// @Summary Update a watch record by id
// @Description Overwrites flags, rating and comment of the record with the given id
// @Tags watch
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param updateEntryRequest body handlers.UpdateEntryRequest true "New field values"
// @Success 200 {object} models.WatchDB "Updated record"
// @Failure 400 {object} handlers.MessageResponse "Malformed id or body"
// @Failure 404 {object} handlers.MessageResponse "Record not found"
// @Router /utilizador-filme/{id} [put]
// @Security BearerAuth
func NewUpdateEntryHandler(svc EntryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid record id.",
			})
			return
		}

		var req UpdateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid request body.",
			})
			return
		}

		record, err := svc.UpdateEntry(r.Context(), id, req.Watched, req.Watchlisted, req.Rating, req.Comment)
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
		json.NewEncoder(w).Encode(record)
	}
}

// NewDeleteEntryHandler returns an HTTP handler that removes a record by its
// store-generated id.
// @Summary Delete a watch record by id
// @Description Removes the record with the given id from the user's list
// @Tags watch
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} handlers.MessageResponse "Record removed"
// @Failure 400 {object} handlers.MessageResponse "Malformed id"
// @Failure 404 {object} handlers.MessageResponse "Record not found"
// @Router /utilizador-filme/eliminar/{id} [delete]
// @Security BearerAuth
func NewDeleteEntryHandler(svc EntryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid record id.",
			})
			return
		}

		if err := svc.DeleteEntry(r.Context(), id); err != nil {
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
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Record removed successfully.",
		})
	}
}
