// internal/app/features/api/list.go
package api

import (
	"context"
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /api/resources.
//
// Dispatch follows the request shape:
//   - q or sortBy present: full search (text + optional type + sort)
//   - only type present:   type-filtered list, newest first
//   - otherwise:           everything, newest first
//
// The response is always a JSON array of resources; an empty result is
// "[]", never null.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	resourceType := query.Get(r, "type")
	sortBy := query.Get(r, "sortBy")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		resources []models.Resource
		err       error
	)
	switch {
	case q != "" || sortBy != "":
		resources, err = h.Engine.Search(ctx, q, resourceType, sortBy)
	case resourceType != "":
		resources, err = h.Store.GetByType(ctx, resourceType)
	default:
		resources, err = h.Store.GetAll(ctx)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list resources failed", err, "Failed to fetch resources")
		return
	}

	if resources == nil {
		resources = []models.Resource{}
	}
	writeJSON(w, http.StatusOK, resources)
}
