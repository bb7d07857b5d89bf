package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/eventhub/internal/app/system/auth"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// UserClaims builds token claims for a regular user.
func UserClaims(email string) *auth.Claims {
	return &auth.Claims{
		UserID: primitive.NewObjectID().Hex(),
		Email:  email,
		Role:   models.RoleUser,
	}
}

// AdminClaims builds token claims for an admin.
func AdminClaims(email string) *auth.Claims {
	return &auth.Claims{
		UserID: primitive.NewObjectID().Hex(),
		Email:  email,
		Role:   models.RoleAdmin,
	}
}

// NewJSONRequest creates an HTTP request with a JSON body and content type.
func NewJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewAuthenticatedRequest creates a JSON request with claims injected into
// the context, bypassing the token middleware.
func NewAuthenticatedRequest(method, target, body string, claims *auth.Claims) *http.Request {
	return auth.WithTestClaims(NewJSONRequest(method, target, body), claims)
}
