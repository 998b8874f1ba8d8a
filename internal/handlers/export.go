package handlers

import (
	"net/http"

	"couple-wellness-backend/internal/middleware"
	"couple-wellness-backend/internal/services"
)

// ExportHandler handles data export requests
type ExportHandler struct {
	exportService *services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles POST /api/v1/exports
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	result, err := h.exportService.Export(r.Context(), memberID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to export records")
		return
	}

	respondResult(w, result, http.StatusCreated)
}
