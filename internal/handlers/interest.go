package handlers

import (
	"net/http"

	"couple-wellness-backend/internal/middleware"
	"couple-wellness-backend/internal/services"
)

// InterestHandler handles member interests
type InterestHandler struct {
	interestService *services.InterestService
}

// NewInterestHandler creates a new interest handler
func NewInterestHandler(interestService *services.InterestService) *InterestHandler {
	return &InterestHandler{interestService: interestService}
}

// List handles GET /api/v1/interests
func (h *InterestHandler) List(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	interests, err := h.interestService.List(r.Context(), memberID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to get interests")
		return
	}
	if len(interests) == 0 {
		respondEmptyList(w, "No interests recorded yet")
		return
	}

	respondResult(w, interests, http.StatusOK)
}

// Create handles POST /api/v1/interests
func (h *InterestHandler) Create(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	var req services.InterestInput
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, err, "Failed to create interest")
		return
	}

	interest, err := h.interestService.Create(r.Context(), memberID, req)
	if err != nil {
		respondServiceError(w, r, err, "Failed to create interest")
		return
	}

	respondResult(w, interest, http.StatusCreated)
}
