package http

import (
	"crypto/subtle"
	"net/http"

	"samedayramps-backend/internal/logger"
)

// StaffAuth guards the staff routes with a shared key presented in the
// X-Staff-Key header. The public lead form and the customer acceptance link
// are mounted outside this middleware.
func StaffAuth(staffKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get("X-Staff-Key")
			if subtle.ConstantTimeCompare([]byte(presented), []byte(staffKey)) != 1 {
				logger.Warn("rejected staff request", "path", r.URL.Path, "remote", r.RemoteAddr)
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
