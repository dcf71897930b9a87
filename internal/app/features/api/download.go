// internal/app/features/api/download.go
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

// HandleDownload handles POST /api/resources/{id}/download.
//
// The store performs a single atomic increment; an id that matches no
// record is reported as 404 rather than acknowledged as a no-op.
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.NotFound(w, "Resource not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Store.IncrementDownloadCount(ctx, id)
	if errors.Is(err, resourcestore.ErrNotFound) {
		h.ErrLog.NotFound(w, "Resource not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "increment download count failed", err, "Failed to increment download count")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Download count incremented"})
}
