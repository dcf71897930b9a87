package models

// ResourceTypes is the closed set of resource categories. The API rejects
// any other value before it can reach storage; the set is not extensible at
// runtime.
var ResourceTypes = []string{
	"ebook",
	"lecture-notes",
	"research-paper",
	"multimedia",
}

// ResourceTypeLabels maps each type to its display name.
var ResourceTypeLabels = map[string]string{
	"ebook":          "E-books",
	"lecture-notes":  "Lecture Notes",
	"research-paper": "Research Papers",
	"multimedia":     "Multimedia",
}

// IsValidResourceType checks if a value is one of the closed enum values.
func IsValidResourceType(value string) bool {
	for _, t := range ResourceTypes {
		if t == value {
			return true
		}
	}
	return false
}

// ResourceTypeLabel returns the display name for a type, falling back to
// the raw value when no label is registered.
func ResourceTypeLabel(value string) string {
	if label, ok := ResourceTypeLabels[value]; ok {
		return label
	}
	return value
}
