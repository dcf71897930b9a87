// Package resourcequeries composes the catalog's filtered and sorted views:
// an optional category restriction, a case-insensitive free-text predicate,
// and one of four total orders. It is the single owner of search semantics;
// the library page reuses its predicate so interactive filtering and a full
// server search can never disagree.
package resourcequeries

import (
	"context"
	"strings"

	resourcestore "github.com/dalemusser/learnhub/internal/app/store/resources"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// Sort orders accepted by Search. Anything else falls back to SortNewest.
const (
	SortDownloads = "downloads"
	SortTitle     = "title"
	SortAuthor    = "author"
	SortNewest    = "newest"
)

// TypeAll is the category value meaning "no type restriction".
const TypeAll = "all"

// Engine runs searches against the resource record store.
type Engine struct {
	store *resourcestore.Store
}

func New(store *resourcestore.Store) *Engine {
	return &Engine{store: store}
}

// Search returns the resources matching the given free-text query and
// category, ordered by sortBy.
//
// The candidate set comes from the store already ordered newest-first; that
// order is the tie-break order for every comparator (sorting is stable).
// Filtering and sorting are independent stages: the text predicate never
// reorders, the sort never drops.
func (e *Engine) Search(ctx context.Context, textQuery, resourceType, sortBy string) ([]models.Resource, error) {
	var (
		candidates []models.Resource
		err        error
	)
	if resourceType != "" && resourceType != TypeAll {
		candidates, err = e.store.GetByType(ctx, resourceType)
	} else {
		candidates, err = e.store.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	matched := FilterByText(candidates, textQuery)
	SortResources(matched, sortBy)
	return matched, nil
}

// FilterByText keeps the resources whose title, author, or description
// contains the query, case-insensitively (any-field match). An empty or
// whitespace-only query keeps everything.
func FilterByText(resources []models.Resource, textQuery string) []models.Resource {
	folded := text.Fold(strings.TrimSpace(textQuery))
	if folded == "" {
		return resources
	}
	matched := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if MatchesText(r, folded) {
			matched = append(matched, r)
		}
	}
	return matched
}

// MatchesText reports whether a resource matches an already-folded query.
// Callers fold the query once with waffle's text.Fold; matching runs
// against the stored *_ci shadow fields so both sides are normalized the
// same way.
func MatchesText(r models.Resource, foldedQuery string) bool {
	if foldedQuery == "" {
		return true
	}
	return strings.Contains(r.TitleCI, foldedQuery) ||
		strings.Contains(r.AuthorCI, foldedQuery) ||
		strings.Contains(r.DescriptionCI, foldedQuery)
}
