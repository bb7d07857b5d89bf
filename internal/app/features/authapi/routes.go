// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/dalemusser/eventhub/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the auth routes under the path where this router is
// mounted (typically "/api/auth" from bootstrap).
//
// Registration and login are public; the login endpoints sit behind the
// credential rate limiter. Profile and password changes require a valid
// bearer token.
func Routes(h *Handler, loginLimit *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.ServeRegister)
	r.Post("/admin-register", h.ServeAdminRegister)

	r.Group(func(lr chi.Router) {
		lr.Use(loginLimit.Middleware)
		lr.Post("/login", h.ServeLogin)
		lr.Post("/admin-login", h.ServeAdminLogin)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(h.Tokens.RequireAuth)
		pr.Put("/profile", h.ServeUpdateProfile)
		pr.Put("/change-password", h.ServeChangePassword)
	})

	return r
}

// ProfileRoutes mounts the read-only profile endpoint (typically at
// "/api/profile").
func ProfileRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(h.Tokens.RequireAuth)
	r.Get("/", h.ServeProfile)
	return r
}
