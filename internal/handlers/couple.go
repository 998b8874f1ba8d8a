package handlers

import (
	"errors"
	"net/http"

	"couple-wellness-backend/internal/middleware"
	"couple-wellness-backend/internal/models"
	"couple-wellness-backend/internal/services"
)

// CoupleHandler handles couple registration and lookup
type CoupleHandler struct {
	coupleService *services.CoupleService
}

// NewCoupleHandler creates a new couple handler
func NewCoupleHandler(coupleService *services.CoupleService) *CoupleHandler {
	return &CoupleHandler{coupleService: coupleService}
}

// RegisterCoupleRequest represents the couple registration body
type RegisterCoupleRequest struct {
	SpouseEmail string `json:"spouseEmail"`
}

// SpouseInfo is the public view of the partner
type SpouseInfo struct {
	Name   string        `json:"name"`
	Email  string        `json:"email"`
	Gender models.Gender `json:"gender"`
}

// Register handles POST /api/v1/couples
func (h *CoupleHandler) Register(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	var req RegisterCoupleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, err, "Failed to register couple")
		return
	}

	couple, err := h.coupleService.RegisterCouple(r.Context(), memberID, req.SpouseEmail)
	if err != nil {
		respondServiceError(w, r, err, "Failed to register couple")
		return
	}

	respondResult(w, couple, http.StatusCreated)
}

// GetSpouse handles GET /api/v1/couples
func (h *CoupleHandler) GetSpouse(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	spouse, err := h.coupleService.ResolveSpouse(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, models.ErrNotPaired) {
			respondJSON(w, map[string]interface{}{
				"success":    false,
				"spouseInfo": nil,
			}, http.StatusOK)
			return
		}
		respondServiceError(w, r, err, "Failed to get spouse")
		return
	}

	respondResult(w, map[string]interface{}{
		"spouseInfo": SpouseInfo{
			Name:   spouse.Username,
			Email:  spouse.Email,
			Gender: spouse.Gender,
		},
	}, http.StatusOK)
}
