// internal/app/features/api/create.go
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/dalemusser/learnhub/internal/domain/models"
)

// createRequest is the POST /api/resources body. The id, download count,
// and creation timestamp are store-assigned and cannot be supplied.
type createRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Author      string   `json:"author" validate:"required,min=2,max=100"`
	Type        string   `json:"type" validate:"required,oneof=ebook lecture-notes research-paper multimedia"`
	Description string   `json:"description" validate:"required,min=10,max=1000"`
	FileName    string   `json:"fileName" validate:"omitempty,max=255"`
	FileSize    string   `json:"fileSize" validate:"omitempty,max=32"`
	FileURL     string   `json:"fileUrl" validate:"omitempty,url"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=50"`
}

// HandleCreate handles POST /api/resources.
//
// The body is validated before anything touches storage; a failure returns
// a per-field error report and leaves the record count unchanged. Text
// fields are stripped of markup on the way in. When a file name is given
// without a URL, a unique simulated download URL is assigned (no bytes are
// ever stored).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid request body")
		return
	}

	if fields := validateRequest(req); len(fields) > 0 {
		h.ErrLog.ValidationFailed(w, "Invalid resource data", fields)
		return
	}

	resource := models.Resource{
		Title:       htmlsanitize.StripTags(req.Title),
		Author:      htmlsanitize.StripTags(req.Author),
		Type:        req.Type,
		Description: htmlsanitize.StripTags(req.Description),
		FileName:    htmlsanitize.StripTags(req.FileName),
		FileSize:    htmlsanitize.StripTags(req.FileSize),
		FileURL:     req.FileURL,
		Tags:        req.Tags,
	}
	if resource.FileName != "" && resource.FileURL == "" {
		resource.FileURL = simulatedFileURL(resource.FileName)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, resource)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create resource failed", err, "Failed to create resource")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
