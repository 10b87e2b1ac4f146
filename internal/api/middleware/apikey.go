package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/propfolio/backend/internal/api/response"
)

// APIKeyMiddleware guards administrative endpoints with a shared secret.
// The expected key comes from the INTERNAL_API_KEY environment variable;
// requests must present it in the X-API-Key header. When no key is
// configured the guarded endpoints are unavailable, not open.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusServiceUnavailable, "internal API key not configured", "")
			return
		}

		provided := r.Header.Get("X-API-Key")
		if provided == "" {
			response.RespondError(w, http.StatusUnauthorized, "X-API-Key header is required", "")
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusForbidden, "invalid API key", "")
			return
		}

		next.ServeHTTP(w, r)
	})
}
