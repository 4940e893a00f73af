package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"airjustice/models"
)

type contextKey string

// AuthorityContextKey holds the authority name of a verified authority token
const AuthorityContextKey contextKey = "authority"

// AuthorityFromContext returns the authority set by RequireAuthorityAuth
func AuthorityFromContext(r *http.Request) (string, bool) {
	a, ok := r.Context().Value(AuthorityContextKey).(string)
	return a, ok && a != ""
}

// bearerToken extracts "Bearer <token>" from the Authorization header
func bearerToken(r *http.Request) (string, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", "Authorization header required"
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", "Invalid authorization format. Expected: Bearer <token>"
	}
	return parts[1], ""
}

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   errorType,
		Message: message,
		Code:    statusCode,
	})
}
