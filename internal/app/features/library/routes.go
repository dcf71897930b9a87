// internal/app/features/library/routes.go
package library

import "github.com/go-chi/chi/v5"

// Routes returns the library page routes, mounted at the site root.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLibrary)
	return r
}
