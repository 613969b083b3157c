// Package catalog provides the static, versioned table of searchable accessibility entries.
package catalog

import "fmt"

// Category classifies an entry and fixes where it is displayed in grouped results.
type Category string

const (
	// CategoryChapter is a top-level chapter such as "Forms & Inputs".
	CategoryChapter Category = "chapter"
	// CategorySubsection is a numbered pattern inside a chapter such as "3.1".
	CategorySubsection Category = "subsection"
	// CategoryPrinciple is a cross-cutting design principle.
	CategoryPrinciple Category = "principle"
)

// Categories lists every category in display order.
//
//nolint:gochecknoglobals // Fixed display order.
var Categories = []Category{CategoryChapter, CategorySubsection, CategoryPrinciple}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryChapter, CategorySubsection, CategoryPrinciple:
		return true
	}
	return false
}

// Label returns the heading shown above a category's results.
func (c Category) Label() string {
	switch c {
	case CategoryChapter:
		return "Sections"
	case CategorySubsection:
		return "Components & Examples"
	case CategoryPrinciple:
		return "Best Practices"
	}
	return string(c)
}

// Entry is a single searchable item of the catalog.
type Entry struct {
	// ID is unique across the whole catalog (e.g. "forms", "3.1").
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Description is the one-line summary shown under the title.
	Description string `json:"description"`

	// Path is the base destination route (e.g. "/section/forms").
	Path string `json:"path"`

	// SectionNumber is the dotted identifier of a subsection (e.g. "3.2"). Empty otherwise.
	SectionNumber string `json:"section_number,omitempty"`

	// Category is fixed at creation.
	Category Category `json:"category"`
}

// HasSectionNumber reports whether the entry carries a section number.
func (e Entry) HasSectionNumber() bool {
	return e.SectionNumber != ""
}

func (e Entry) validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry %q: empty id", e.Title)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("entry %s: unknown category %q", e.ID, e.Category)
	}
	if e.Path == "" {
		return fmt.Errorf("entry %s: empty path", e.ID)
	}
	if e.SectionNumber != "" && e.Category != CategorySubsection {
		return fmt.Errorf("entry %s: section number on %s entry", e.ID, e.Category)
	}
	return nil
}
