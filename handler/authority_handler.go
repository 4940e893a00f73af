package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"airjustice/middleware"
	"airjustice/reference"
	"airjustice/service"
	"airjustice/utils"

	"github.com/rs/zerolog/log"
)

// AuthorityHandler serves the authority desk view of the ledger
type AuthorityHandler struct {
	complaintService *service.ComplaintService
	jwtSecret        []byte
	tokenTTLHours    int
	clock            utils.Clock
}

// NewAuthorityHandler creates a new authority handler
func NewAuthorityHandler(complaintService *service.ComplaintService, jwtSecret string, tokenTTLHours int, clock utils.Clock) *AuthorityHandler {
	return &AuthorityHandler{
		complaintService: complaintService,
		jwtSecret:        []byte(jwtSecret),
		tokenTTLHours:    tokenTTLHours,
		clock:            clock,
	}
}

type issueTokenRequest struct {
	Authority string `json:"authority"`
}

type issueTokenResponse struct {
	Token     string    `json:"token"`
	Authority string    `json:"authority"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueToken handles POST /api/v1/authority/token (admin only)
func (h *AuthorityHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}
	req.Authority = strings.TrimSpace(req.Authority)
	if !reference.KnownAuthority(req.Authority) {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "Unknown authority")
		return
	}

	now := h.clock()
	token, err := utils.GenerateAuthorityJWT(req.Authority, h.jwtSecret, h.tokenTTLHours, now)
	if err != nil {
		log.Error().Err(err).Str("component", "authority").Msg("token signing failed")
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to issue token")
		return
	}
	respondWithJSON(w, http.StatusOK, issueTokenResponse{
		Token:     token,
		Authority: req.Authority,
		ExpiresAt: now.Add(time.Duration(h.tokenTTLHours) * time.Hour),
	})
}

// ListComplaints handles GET /api/v1/authority/complaints (authority JWT)
func (h *AuthorityHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	authority, _ := middleware.AuthorityFromContext(r)

	views, err := h.complaintService.ListForAuthority(r.Context())
	if err != nil {
		log.Error().Err(err).Str("component", "authority").Msg("list complaints failed")
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to list complaints")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"authority":  authority,
		"total":      len(views),
		"complaints": views,
	})
}
