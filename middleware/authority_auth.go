package middleware

import (
	"context"
	"net/http"

	"airjustice/reference"
	"airjustice/utils"
)

// AuthorityAuthMiddleware validates JWT tokens issued to authority desks
type AuthorityAuthMiddleware struct {
	jwtSecret []byte
	clock     utils.Clock
}

// NewAuthorityAuthMiddleware creates a new authority auth middleware. Token expiry is judged by clock.
func NewAuthorityAuthMiddleware(jwtSecret string, clock utils.Clock) *AuthorityAuthMiddleware {
	return &AuthorityAuthMiddleware{jwtSecret: []byte(jwtSecret), clock: clock}
}

// RequireAuthorityAuth validates the token and sets the authority name in context
func (m *AuthorityAuthMiddleware) RequireAuthorityAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, problem := bearerToken(r)
		if problem != "" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", problem)
			return
		}

		authority, err := utils.ParseAuthorityJWT(token, m.jwtSecret, m.clock)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token")
			return
		}
		if !reference.KnownAuthority(authority) {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Authority not recognised")
			return
		}

		ctx := context.WithValue(r.Context(), AuthorityContextKey, authority)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
