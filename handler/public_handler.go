package handler

import (
	"net/http"
	"time"

	"airjustice/utils"
)

// APIVersion is reported by the info and health endpoints
const APIVersion = "2.0.0"

var endpoints = map[string]string{
	"/":                            "API info",
	"/health":                      "Health check",
	"/aqi":                         "Get AQI data",
	"/aqi/predict":                 "Predict AQI",
	"/legal/check":                 "Check legal violations",
	"/health/impact":               "Health impact analysis",
	"/complaint/file":              "File complaint",
	"/complaint/status/{id}":       "Check complaint status",
	"/sources/detect":              "Detect pollution sources",
	"/metrics":                     "Prometheus metrics",
	"/api/v1/authority/token":      "Issue authority token (admin)",
	"/api/v1/authority/complaints": "List complaints (authority)",
}

// PublicHandler serves the API info and health endpoints. No auth.
type PublicHandler struct {
	clock utils.Clock
}

// NewPublicHandler creates a public handler
func NewPublicHandler(clock utils.Clock) *PublicHandler {
	return &PublicHandler{clock: clock}
}

// Root handles GET /
func (h *PublicHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Air Justice API v2.0",
		"version":   APIVersion,
		"status":    "operational",
		"timestamp": h.clock().Format(time.RFC3339),
		"endpoints": endpoints,
	})
}

// Health handles GET /health
func (h *PublicHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": h.clock().Format(time.RFC3339),
		"uptime":    "24/7",
		"version":   APIVersion,
		"features": map[string]bool{
			"aqi_monitoring":    true,
			"legal_analysis":    true,
			"health_assessment": true,
			"complaint_system":  true,
			"ai_predictions":    true,
		},
	})
}
