package handlers

import (
	"net/http"

	"couple-wellness-backend/internal/middleware"
	"couple-wellness-backend/internal/services"
)

// InfertilityHandler handles infertility stress assessments
type InfertilityHandler struct {
	infertilityService *services.InfertilityService
}

// NewInfertilityHandler creates a new infertility test handler
func NewInfertilityHandler(infertilityService *services.InfertilityService) *InfertilityHandler {
	return &InfertilityHandler{infertilityService: infertilityService}
}

// List handles GET /api/v1/infertility-tests
func (h *InfertilityHandler) List(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	tests, err := h.infertilityService.List(r.Context(), memberID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to get infertility tests")
		return
	}
	if len(tests) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondResult(w, tests, http.StatusOK)
}

// Create handles POST /api/v1/infertility-tests
func (h *InfertilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	var req services.InfertilityInput
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, err, "Failed to create infertility test")
		return
	}

	test, err := h.infertilityService.Create(r.Context(), memberID, req)
	if err != nil {
		respondServiceError(w, r, err, "Failed to create infertility test")
		return
	}

	respondResult(w, test, http.StatusCreated)
}

// Detail handles GET /api/v1/infertility-tests/{id}
func (h *InfertilityHandler) Detail(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err, "Invalid infertility test id")
		return
	}

	detail, err := h.infertilityService.Detail(r.Context(), memberID, id)
	if err != nil {
		respondServiceError(w, r, err, "Failed to get infertility test")
		return
	}

	// a first test has no before_test; it is reported as []
	var before interface{} = []interface{}{}
	if detail.Before != nil {
		before = detail.Before
	}

	respondJSON(w, map[string]interface{}{
		"success":      true,
		"current_test": detail.Current,
		"before_test":  before,
	}, http.StatusOK)
}
