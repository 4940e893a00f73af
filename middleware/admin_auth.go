package middleware

import (
	"crypto/subtle"
	"net/http"
)

// RequireAdminAuth validates the static admin token. Fully isolated from authority auth.
// Empty configured token disables admin routes; missing or mismatched token → 403.
func RequireAdminAuth(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminToken == "" {
				respondWithError(w, http.StatusForbidden, "Forbidden", "Admin access not configured")
				return
			}
			token, problem := bearerToken(r)
			if problem != "" {
				respondWithError(w, http.StatusForbidden, "Forbidden", problem)
				return
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				respondWithError(w, http.StatusForbidden, "Forbidden", "Invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
