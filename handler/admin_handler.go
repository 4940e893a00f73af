package handler

import (
	"net/http"

	"airjustice/service"

	"github.com/rs/zerolog/log"
)

// AdminHandler provides operator-only endpoints. No citizen impact.
type AdminHandler struct {
	complaintService *service.ComplaintService
}

// NewAdminHandler creates an admin handler
func NewAdminHandler(complaintService *service.ComplaintService) *AdminHandler {
	return &AdminHandler{complaintService: complaintService}
}

// RefreshStatuses handles POST /api/v1/admin/complaints/refresh.
// Same pass the status worker runs on its schedule.
func (h *AdminHandler) RefreshStatuses(w http.ResponseWriter, r *http.Request) {
	results, err := h.complaintService.RefreshStatuses(r.Context())
	if err != nil {
		log.Error().Err(err).Str("component", "admin").Msg("manual status refresh failed")
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to refresh statuses")
		return
	}

	changed := 0
	for _, res := range results {
		if res.Changed {
			changed++
		}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"processed": len(results),
		"changed":   changed,
		"results":   results,
	})
}
