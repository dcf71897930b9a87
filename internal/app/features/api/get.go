// internal/app/features/api/get.go
package api

import (
	"context"
	"errors"
	"net/http"

	resourcestore "github.com/dalemusser/learnhub/internal/app/store/resources"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeResource handles GET /api/resources/{id}.
//
// A malformed id can't name any record, so it gets the same 404 as a
// well-formed id that matches nothing.
func (h *Handler) ServeResource(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.NotFound(w, "Resource not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	resource, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, resourcestore.ErrNotFound) {
		h.ErrLog.NotFound(w, "Resource not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get resource failed", err, "Failed to fetch resource")
		return
	}

	writeJSON(w, http.StatusOK, resource)
}
