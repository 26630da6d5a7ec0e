package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"linuxword/internal/contextutil"
	"linuxword/internal/search"
	"linuxword/internal/service"
)

// ErrorResponse represents an error response. The page shows Error in a
// dismissible notice.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "validation error", "error", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	var patternErr *search.InvalidPatternError
	if errors.As(err, &patternErr) {
		logger.WarnContext(ctx, "invalid search pattern", "pattern", patternErr.Pattern, "error", err)
		writeError(w, http.StatusBadRequest, patternErr.Error())
		return
	}

	if errors.Is(err, service.ErrInvalidInput) {
		logger.WarnContext(ctx, "invalid input", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		logger.WarnContext(ctx, "not found", "error", err)
		writeError(w, http.StatusNotFound, "No document found with this name.")
		return
	}

	logger.ErrorContext(ctx, "service error", "error", err)

	if errors.Is(err, service.ErrStorage) {
		writeError(w, http.StatusInternalServerError, "Storage error")
		return
	}

	// Default to internal server error
	writeError(w, http.StatusInternalServerError, defaultMsg)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
