// Package htmlsanitize strips markup from user-supplied text before it is
// persisted. Catalog metadata fields are plain text; anything that looks
// like HTML in an upload is content to remove, not content to render.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripTags removes all HTML elements from s and returns the remaining
// text with entities decoded, so "5 < 10" survives a round trip intact.
func StripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
