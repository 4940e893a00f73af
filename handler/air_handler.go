package handler

import (
	"net/http"

	"airjustice/models"
	"airjustice/service"
)

// AirHandler serves readings, forecasts, legal checks, health advice and source detection.
// All of these are total: only boundary validation can fail.
type AirHandler struct {
	aqiService      *service.AqiService
	forecastService *service.ForecastService
	legalService    *service.LegalService
	healthService   *service.HealthService
	sourceService   *service.SourceService
}

// NewAirHandler creates a new air handler
func NewAirHandler(
	aqiService *service.AqiService,
	forecastService *service.ForecastService,
	legalService *service.LegalService,
	healthService *service.HealthService,
	sourceService *service.SourceService,
) *AirHandler {
	return &AirHandler{
		aqiService:      aqiService,
		forecastService: forecastService,
		legalService:    legalService,
		healthService:   healthService,
		sourceService:   sourceService,
	}
}

type aqiResponse struct {
	Success bool              `json:"success"`
	Data    *models.AqiSample `json:"data"`
}

type forecastResponse struct {
	Success bool `json:"success"`
	*models.Forecast
}

type violationResponse struct {
	Success bool `json:"success"`
	*models.ViolationReport
}

type healthImpactResponse struct {
	Success bool `json:"success"`
	*models.HealthImpact
}

type sourceResponse struct {
	Success bool `json:"success"`
	*models.SourceReport
}

// GetAqi handles GET /aqi?lat&lon
func (h *AirHandler) GetAqi(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := coordinates(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, aqiResponse{Success: true, Data: h.aqiService.CurrentAqi(lat, lon)})
}

// PredictAqi handles GET /aqi/predict?lat&lon&hours
func (h *AirHandler) PredictAqi(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := coordinates(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	hours, err := intParam(r, "hours", service.DefaultForecastHours)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	if hours < 1 || hours > MaxForecastHours {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "hours must be between 1 and 168")
		return
	}
	respondWithJSON(w, http.StatusOK, forecastResponse{Success: true, Forecast: h.forecastService.Predict(lat, lon, hours)})
}

// CheckLegal handles GET /legal/check?aqi&lat&lon
func (h *AirHandler) CheckLegal(w http.ResponseWriter, r *http.Request) {
	aqi, err := floatParam(r, "aqi")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	lat, lon, err := coordinates(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	report := h.legalService.CheckViolations(aqi, models.Location{Lat: lat, Lon: lon})
	respondWithJSON(w, http.StatusOK, violationResponse{Success: true, ViolationReport: report})
}

// HealthImpact handles GET /health/impact?aqi&age&conditions
func (h *AirHandler) HealthImpact(w http.ResponseWriter, r *http.Request) {
	aqi, err := floatParam(r, "aqi")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	age, err := intParam(r, "age", 0)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	impact := h.healthService.HealthImpact(aqi, age, r.URL.Query().Get("conditions"))
	respondWithJSON(w, http.StatusOK, healthImpactResponse{Success: true, HealthImpact: impact})
}

// DetectSources handles GET /sources/detect?lat&lon
func (h *AirHandler) DetectSources(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := coordinates(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, sourceResponse{Success: true, SourceReport: h.sourceService.DetectSources(lat, lon)})
}
