// internal/app/system/auth/middleware.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/domain/models"
)

type ctxKey string

const claimsKey ctxKey = "authClaims"

// CurrentClaims returns the verified token claims attached to the request
// by RequireAuth, plus a "found?" flag.
func CurrentClaims(r *http.Request) (*Claims, bool) {
	c, ok := r.Context().Value(claimsKey).(*Claims)
	return c, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns "" when the header is missing or malformed.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth rejects requests without a verifiable bearer token and
// attaches the decoded claims to the request context. Rejection is
// terminal per request: 401 when no token is present, 400 when the token
// is present but unverifiable or expired.
func (m *TokenManager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httpjson.Message(w, http.StatusUnauthorized, "Access denied")
			return
		}
		claims, err := m.Verify(token)
		if err != nil {
			httpjson.Message(w, http.StatusBadRequest, "Invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// RequireAdmin is RequireAuth plus a role check: valid tokens whose role
// claim is not admin are rejected with 403.
func (m *TokenManager) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := CurrentClaims(r)
		if !ok || claims.Role != models.RoleAdmin {
			httpjson.Message(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// WithTestClaims injects claims directly into the request context,
// bypassing token verification. For handler tests only.
func WithTestClaims(r *http.Request, c *Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, c))
}
