// internal/app/features/library/list.go
package library

import (
	"context"
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

// categoryVM is one entry in the category sidebar.
type categoryVM struct {
	Value    string
	Label    string
	Count    int
	Selected bool
}

// libraryVM is the view model for the library page.
type libraryVM struct {
	Title      string
	Query      string
	Category   string
	Categories []categoryVM
	Resources  []models.Resource
	Shown      int
	Total      int
	Filtered   bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – browsable catalog                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeLibrary renders the catalog with the visitor's filter applied.
//
// An explicit ?category= selection is remembered for the next visit; a
// request without one reopens the last remembered shelf. Filtering happens
// here against the full fetched list, so typing in the search box narrows
// what is already on screen without changing what the store returns.
func (h *Handler) ServeLibrary(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	category := query.Get(r, "category")
	if category == "" {
		category = h.Prefs.Category(r)
	} else {
		h.Prefs.SaveCategory(w, r, category)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Store.GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "library list failed", err, "Failed to load the library")
		return
	}

	state := FilterState{Query: q, Category: category}
	shown := state.Apply(all)
	counts := CategoryCounts(all)

	categories := make([]categoryVM, 0, len(models.ResourceTypes)+1)
	categories = append(categories, categoryVM{
		Value:    "all",
		Label:    "All Resources",
		Count:    len(all),
		Selected: category == "" || category == "all",
	})
	for _, rt := range models.ResourceTypes {
		categories = append(categories, categoryVM{
			Value:    rt,
			Label:    models.ResourceTypeLabel(rt),
			Count:    counts[rt],
			Selected: category == rt,
		})
	}

	data := libraryVM{
		Title:      "Library",
		Query:      q,
		Category:   category,
		Categories: categories,
		Resources:  shown,
		Shown:      len(shown),
		Total:      len(all),
		Filtered:   state.Active(),
	}

	templates.Render(w, r, "library", data)
}
