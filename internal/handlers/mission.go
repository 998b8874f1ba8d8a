package handlers

import (
	"errors"
	"net/http"
	"time"

	"couple-wellness-backend/internal/middleware"
	"couple-wellness-backend/internal/models"
	"couple-wellness-backend/internal/services"
)

// MissionHandler serves the weekly mission view
type MissionHandler struct {
	missionService *services.MissionService
	loc            *time.Location
	now            func() time.Time
}

// NewMissionHandler creates a new mission handler. The date query parameter is read in loc.
func NewMissionHandler(missionService *services.MissionService, loc *time.Location) *MissionHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &MissionHandler{
		missionService: missionService,
		loc:            loc,
		now:            time.Now,
	}
}

// Weekly handles GET /api/v1/missions/weekly?date=YYYY-MM-DD
func (h *MissionHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	ref := h.now().In(h.loc)
	if date := r.URL.Query().Get("date"); date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, h.loc)
		if err != nil {
			respondServiceError(w, r, models.NewValidationError("date", "must be formatted as YYYY-MM-DD"), "Invalid date")
			return
		}
		ref = parsed
	}

	status, err := h.missionService.GetWeeklyMissionStatus(r.Context(), memberID, ref)
	if err != nil {
		if errors.Is(err, models.ErrNotPaired) {
			respondJSON(w, Envelope{Success: false, Message: "No spouse registered"}, http.StatusOK)
			return
		}
		respondServiceError(w, r, err, "Failed to get weekly mission status")
		return
	}

	respondResult(w, status, http.StatusOK)
}
