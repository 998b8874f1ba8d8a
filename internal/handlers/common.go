package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"couple-wellness-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []models.FieldError `json:"fields,omitempty"`
}

// Envelope is the success payload shared by all endpoints
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Result  interface{} `json:"result,omitempty"`
}

// respondJSON writes payload with the given status
func respondJSON(w http.ResponseWriter, payload interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondResult wraps result in a success envelope
func respondResult(w http.ResponseWriter, result interface{}, statusCode int) {
	respondJSON(w, Envelope{Success: true, Result: result}, statusCode)
}

// respondEmptyList reports an empty collection as a successful response
func respondEmptyList(w http.ResponseWriter, message string) {
	respondJSON(w, map[string]interface{}{
		"success": true,
		"message": message,
		"result":  []interface{}{},
	}, http.StatusOK)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, ErrorResponse{Error: message}, statusCode)
}

// respondServiceError maps a service error to a status code and logs unexpected failures
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, ErrorResponse{Error: verr.Error(), Fields: verr.Fields}, http.StatusBadRequest)
	case errors.Is(err, models.ErrNotFound):
		respondError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidGender):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrValidation):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrAlreadyPaired), errors.Is(err, models.ErrConflict):
		respondError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrAuthFailure):
		respondError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrUnavailable):
		respondError(w, err.Error(), http.StatusServiceUnavailable)
	default:
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg(msg)
		respondError(w, msg, http.StatusInternalServerError)
	}
}

// decodeJSON decodes the request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return models.NewValidationError("body", "is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.NewValidationError("body", "is not valid JSON")
	}
	return nil
}

// idParam parses a positive integer URL parameter
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}
