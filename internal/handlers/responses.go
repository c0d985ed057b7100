package handlers

import "github.com/jpfonseca/watchlog/internal/models"

// MessageResponse is the JSON body used for errors and simple confirmations.
// swagger:model MessageResponse
type MessageResponse struct {
	// Human-readable message
	// default: ok
	Message string `json:"message"`
}

// WatchRecordResponse wraps a relationship record with a confirmation message.
// swagger:model WatchRecordResponse
type WatchRecordResponse struct {
	Message string          `json:"message"`
	Record  *models.WatchDB `json:"registo"`
}
