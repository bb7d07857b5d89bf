// internal/app/features/news/routes.go
package news

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the news routes under the path where this router is
// mounted (typically "/api/news" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeNews)
	return r
}
