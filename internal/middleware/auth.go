package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "userID"

// SessionValidator resolves a bearer token to a user id. Matches the
// signature of services.ValidateSession.
type SessionValidator func(token string) (uuid.UUID, bool, error)

// RequireAuth resolves the caller's identity before any handler runs.
// Requests without a valid session get 401 and never reach the core.
func RequireAuth(validate SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractBearerToken(r.Header.Get("Authorization"))
			userID, ok, err := validate(token)
			if err != nil || !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"message":"Authentication required"}`))
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user's id injected by RequireAuth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// ExtractBearerToken pulls the token out of an Authorization header.
func ExtractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
