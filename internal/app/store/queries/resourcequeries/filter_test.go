package resourcequeries

import (
	"testing"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

func record(title, author, description string) models.Resource {
	return models.Resource{
		Title:         title,
		TitleCI:       text.Fold(title),
		Author:        author,
		AuthorCI:      text.Fold(author),
		Description:   description,
		DescriptionCI: text.Fold(description),
	}
}

func TestMatchesText(t *testing.T) {
	r := record("Machine Learning in Healthcare", "Dr. Emily Johnson", "Applications of ML in diagnostics.")

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty matches everything", "", true},
		{"title substring", "machine", true},
		{"title substring mixed case", "MACHINE LEARNING", true},
		{"author substring", "emily", true},
		{"description substring", "diagnostics", true},
		{"substring across word boundary", "ing in health", true},
		{"no match", "quantum", false},
		{"near miss", "machines", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesText(r, text.Fold(tt.query))
			if got != tt.want {
				t.Errorf("MatchesText(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterByText_AnyFieldMatch(t *testing.T) {
	rs := []models.Resource{
		record("Intro to Go", "Pat Doe", "Basics of the Go language."),
		record("Databases", "Go Round Press", "Relational modeling."),
		record("Networking", "Kim Lee", "TCP, UDP, and the Go runtime."),
		record("Chemistry", "Ada Li", "Organic compounds."),
	}

	got := FilterByText(rs, "go")
	if len(got) != 3 {
		t.Fatalf("got %d matches, want 3", len(got))
	}
	// Filtering never reorders.
	if got[0].Title != "Intro to Go" || got[1].Title != "Databases" || got[2].Title != "Networking" {
		t.Errorf("wrong order: %q, %q, %q", got[0].Title, got[1].Title, got[2].Title)
	}
}

func TestFilterByText_EmptyQueryKeepsAll(t *testing.T) {
	rs := []models.Resource{
		record("A", "B", "C"),
		record("D", "E", "F"),
	}

	for _, q := range []string{"", "   "} {
		got := FilterByText(rs, q)
		if len(got) != len(rs) {
			t.Errorf("query %q: got %d, want %d", q, len(got), len(rs))
		}
	}
}

func TestFilterByText_CaseAndDiacriticsFolded(t *testing.T) {
	rs := []models.Resource{
		record("École Numérique", "Prof. René Dubois", "Digital schooling."),
	}

	if got := FilterByText(rs, "ecole"); len(got) != 1 {
		t.Errorf("folded query: got %d matches, want 1", len(got))
	}
	if got := FilterByText(rs, "RENÉ"); len(got) != 1 {
		t.Errorf("uppercase accented query: got %d matches, want 1", len(got))
	}
}
