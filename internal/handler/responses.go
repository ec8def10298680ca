package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"itemforge/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already written; nothing to send back but a log line.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgInvalidRequestField = "Invalid request. Please check your inputs."

	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgDatabaseNotLoadedError = "Item database is not loaded yet"
	ErrMsgMissingSourceError     = "Item data files are missing or empty"

	ErrMsgInventoryFullError = "Inventory is full"
	ErrMsgInvalidSlotError   = "Invalid slot index"

	ErrMsgRecipeNotFoundError    = "Recipe not found"
	ErrMsgInsufficientItemsError = "Not enough ingredients"
	ErrMsgInventoryCorruptError  = "Inventory state is corrupted. Reload your save."
	ErrMsgQueueEmptyError        = "Crafting queue is empty"
	ErrMsgLootTableNotFoundError = "Loot table not found"
	ErrMsgSnapshotNotFoundError  = "No saved inventory found"
	ErrMsgInvalidQuantityError   = "Quantity must be positive"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages a client can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrDatabaseNotLoaded):
		return http.StatusServiceUnavailable, ErrMsgDatabaseNotLoadedError
	case errors.Is(err, domain.ErrMissingSource):
		return http.StatusInternalServerError, ErrMsgMissingSourceError
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusConflict, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrInsufficientIngredients):
		return http.StatusConflict, ErrMsgInsufficientItemsError
	case errors.Is(err, domain.ErrConsistency):
		return http.StatusInternalServerError, ErrMsgInventoryCorruptError
	case errors.Is(err, domain.ErrQueueEmpty):
		return http.StatusConflict, ErrMsgQueueEmptyError
	case errors.Is(err, domain.ErrLootTableNotFound):
		return http.StatusNotFound, ErrMsgLootTableNotFoundError
	case errors.Is(err, domain.ErrSnapshotNotFound):
		return http.StatusNotFound, ErrMsgSnapshotNotFoundError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestField
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError maps a service error and writes it.
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
