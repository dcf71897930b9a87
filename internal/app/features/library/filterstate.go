// internal/app/features/library/filterstate.go
package library

import (
	"strings"

	"github.com/dalemusser/learnhub/internal/app/store/queries/resourcequeries"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/samber/lo"
)

// FilterState is the visitor's current view of the catalog: a free-text
// query plus a category restriction. It is derived fresh from the request
// on every page load and applied to an already-fetched list; nothing here
// is shared or mutated across requests.
type FilterState struct {
	Query    string
	Category string
}

// Active reports whether the state restricts the catalog at all.
func (f FilterState) Active() bool {
	return strings.TrimSpace(f.Query) != "" ||
		(f.Category != "" && f.Category != resourcequeries.TypeAll)
}

// Apply returns the resources visible under this state, preserving input
// order. The text predicate is the same one the search engine uses, so the
// page and the API can never disagree about what matches.
func (f FilterState) Apply(resources []models.Resource) []models.Resource {
	visible := resources
	if f.Category != "" && f.Category != resourcequeries.TypeAll {
		visible = lo.Filter(visible, func(r models.Resource, _ int) bool {
			return r.Type == f.Category
		})
	}
	return resourcequeries.FilterByText(visible, f.Query)
}

// CategoryCounts returns how many of the given resources fall in each
// category. Counts are taken over the unfiltered list so the sidebar
// numbers stay put while the visitor narrows the view.
func CategoryCounts(resources []models.Resource) map[string]int {
	return lo.CountValuesBy(resources, func(r models.Resource) string {
		return r.Type
	})
}
