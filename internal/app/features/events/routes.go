// internal/app/features/events/routes.go
package events

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the event routes under the path where this router is
// mounted (typically "/api/events" from bootstrap).
//
// The static by-user/by-admin paths are registered alongside the {id}
// routes; chi matches static segments before parameters.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeSearch)
	r.Get("/by-user", h.ServeByUser)
	r.Get("/by-admin", h.ServeByAdmin)
	r.Post("/{id}/register", h.ServeRegister)
	r.Post("/{id}/rsvp", h.ServeRSVP)
	r.Delete("/{id}", h.ServeDelete)

	return r
}
