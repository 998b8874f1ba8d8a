package handlers

import (
	"errors"
	"net/http"

	"couple-wellness-backend/internal/middleware"
	"couple-wellness-backend/internal/models"
	"couple-wellness-backend/internal/services"
)

// EmotionHandler handles emotion records
type EmotionHandler struct {
	emotionService *services.EmotionService
}

// NewEmotionHandler creates a new emotion handler
func NewEmotionHandler(emotionService *services.EmotionService) *EmotionHandler {
	return &EmotionHandler{emotionService: emotionService}
}

// Create handles POST /api/v1/emotions
func (h *EmotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	var req services.EmotionInput
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, err, "Failed to create emotion record")
		return
	}

	record, err := h.emotionService.Create(r.Context(), memberID, req)
	if err != nil {
		respondServiceError(w, r, err, "Failed to create emotion record")
		return
	}

	respondResult(w, record, http.StatusCreated)
}

// Latest handles GET /api/v1/emotions
func (h *EmotionHandler) Latest(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	record, total, err := h.emotionService.Latest(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondJSON(w, Envelope{Success: false, Message: "No emotion records yet"}, http.StatusOK)
			return
		}
		respondServiceError(w, r, err, "Failed to get emotion record")
		return
	}

	respondJSON(w, map[string]interface{}{
		"success":      true,
		"totalRecords": total,
		"result":       record,
	}, http.StatusOK)
}

// Get handles GET /api/v1/emotions/{id}
func (h *EmotionHandler) Get(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err, "Invalid emotion record id")
		return
	}

	record, err := h.emotionService.Get(r.Context(), memberID, id)
	if err != nil {
		respondServiceError(w, r, err, "Failed to get emotion record")
		return
	}

	respondResult(w, record, http.StatusOK)
}

// Update handles PUT /api/v1/emotions/{id}
func (h *EmotionHandler) Update(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err, "Invalid emotion record id")
		return
	}

	var patch models.EmotionPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondServiceError(w, r, err, "Failed to update emotion record")
		return
	}

	record, err := h.emotionService.Update(r.Context(), memberID, id, patch)
	if err != nil {
		respondServiceError(w, r, err, "Failed to update emotion record")
		return
	}

	respondResult(w, record, http.StatusOK)
}
