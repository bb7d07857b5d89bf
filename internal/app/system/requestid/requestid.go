// internal/app/system/requestid/requestid.go
//
// Package requestid assigns every inbound request a unique identifier,
// echoes it in the X-Request-ID response header, and makes it available
// to handlers for request-scoped logging.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// Header is the response header carrying the request ID.
const Header = "X-Request-ID"

// Middleware tags the request with a fresh UUID, honoring an inbound
// X-Request-ID when a proxy already assigned one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// FromRequest returns the request's ID, or "" if the middleware did not run.
func FromRequest(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}
