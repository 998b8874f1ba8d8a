package handlers

import (
	"net/http"

	"couple-wellness-backend/internal/middleware"
	"couple-wellness-backend/internal/services"
)

// CounselHandler handles counseling summaries
type CounselHandler struct {
	counselService *services.CounselService
}

// NewCounselHandler creates a new counsel handler
func NewCounselHandler(counselService *services.CounselService) *CounselHandler {
	return &CounselHandler{counselService: counselService}
}

// List handles GET /api/v1/counsels
func (h *CounselHandler) List(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	records, err := h.counselService.List(r.Context(), memberID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to get counsel records")
		return
	}
	if len(records) == 0 {
		respondEmptyList(w, "No counsel records yet")
		return
	}

	respondResult(w, records, http.StatusOK)
}

// Create handles POST /api/v1/counsels
func (h *CounselHandler) Create(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	var req services.CounselInput
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, err, "Failed to create counsel record")
		return
	}

	record, err := h.counselService.Create(r.Context(), memberID, req)
	if err != nil {
		respondServiceError(w, r, err, "Failed to create counsel record")
		return
	}

	respondResult(w, record, http.StatusCreated)
}

// Get handles GET /api/v1/counsels/{id}
func (h *CounselHandler) Get(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err, "Invalid counsel record id")
		return
	}

	record, err := h.counselService.Get(r.Context(), memberID, id)
	if err != nil {
		respondServiceError(w, r, err, "Failed to get counsel record")
		return
	}

	respondResult(w, record, http.StatusOK)
}
