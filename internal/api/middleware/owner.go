package middleware

import (
	"context"
	"net/http"

	"github.com/propfolio/backend/internal/api/response"
	"github.com/propfolio/backend/internal/validation"
)

type contextKey string

// ownerKey is the context key holding the authenticated owner's user ID.
const ownerKey contextKey = "owner"

// RequireOwner extracts the portfolio owner from the X-User-ID header and
// stores it in the request context. Authentication itself happens upstream
// of this service; the header carries whatever identity the auth layer
// established, and this middleware only insists it is present and a UUID.
// Returns 401 when the header is missing or malformed.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		if userID == "" {
			response.RespondError(w, http.StatusUnauthorized, "X-User-ID header is required", "")
			return
		}

		if err := validation.ValidateUUID(userID); err != nil {
			response.RespondError(w, http.StatusUnauthorized, "X-User-ID must be a valid UUID", err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), ownerKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithOwner returns a copy of the request carrying the given owner ID,
// as if RequireOwner had run. Intended for handler tests.
func WithOwner(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ownerKey, userID))
}

// OwnerID returns the owner user ID stored by RequireOwner, or an empty
// string when the middleware did not run.
func OwnerID(r *http.Request) string {
	if id, ok := r.Context().Value(ownerKey).(string); ok {
		return id
	}
	return ""
}
