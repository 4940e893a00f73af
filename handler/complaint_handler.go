package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"airjustice/models"
	"airjustice/repository"
	"airjustice/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// ComplaintHandler handles complaint filing and status requests
type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// FileComplaint handles POST /complaint/file
func (h *ComplaintHandler) FileComplaint(w http.ResponseWriter, r *http.Request) {
	var req models.FileComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}
	if err := validateCoordinates(req.Location.Lat, req.Location.Lon); err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	resp, err := h.complaintService.FileComplaint(r.Context(), &req)
	if err != nil {
		log.Error().Err(err).Str("component", "complaint").Msg("file complaint failed")
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to file complaint")
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// GetComplaintStatus handles GET /complaint/status/{id}
func (h *ComplaintHandler) GetComplaintStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "complaint id required")
		return
	}

	resp, err := h.complaintService.GetComplaintStatus(r.Context(), id)
	if errors.Is(err, repository.ErrComplaintNotFound) {
		respondWithError(w, http.StatusNotFound, "Not Found", "Complaint not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("component", "complaint").Str("complaint_id", id).Msg("status lookup failed")
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to get complaint status")
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	response := models.ErrorResponse{
		Error:   errorType,
		Message: message,
		Code:    statusCode,
	}
	respondWithJSON(w, statusCode, response)
}
