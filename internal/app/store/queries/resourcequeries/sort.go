package resourcequeries

import (
	"sort"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortResources orders the slice in place by the given sort key:
//
//   - SortDownloads: download count descending
//   - SortTitle:     title ascending, locale-aware
//   - SortAuthor:    author ascending, locale-aware
//   - SortNewest:    creation time descending (default; also the fallback
//     for unrecognized keys)
//
// Every order is stable, so ties keep the store's newest-first order.
// Sorting an already-sorted slice leaves it unchanged.
func SortResources(resources []models.Resource, sortBy string) {
	switch sortBy {
	case SortDownloads:
		sort.SliceStable(resources, func(i, j int) bool {
			return resources[i].DownloadCount > resources[j].DownloadCount
		})
	case SortTitle:
		c := newCollator()
		sort.SliceStable(resources, func(i, j int) bool {
			return c.CompareString(resources[i].Title, resources[j].Title) < 0
		})
	case SortAuthor:
		c := newCollator()
		sort.SliceStable(resources, func(i, j int) bool {
			return c.CompareString(resources[i].Author, resources[j].Author) < 0
		})
	default: // SortNewest
		sort.SliceStable(resources, func(i, j int) bool {
			return resources[i].CreatedAt.After(resources[j].CreatedAt)
		})
	}
}

// newCollator builds a fresh case-insensitive collator per sort; a
// collate.Collator carries internal buffers and must not be shared across
// goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}
