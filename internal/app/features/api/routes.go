// internal/app/features/api/routes.go
package api

import "github.com/go-chi/chi/v5"

// Routes mounts the resource API under whatever base path the caller
// chooses (typically "/api/resources" from bootstrap).
//
// Example from bootstrap:
//
//	h := api.NewHandler(db, errLog, logger)
//	r.Mount("/api/resources", api.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST / SEARCH
	r.Get("/", h.ServeList)

	// CREATE
	r.Post("/", h.HandleCreate)

	// GET ONE
	r.Get("/{id}", h.ServeResource)

	// DOWNLOAD COUNTER
	r.Post("/{id}/download", h.HandleDownload)

	return r
}
