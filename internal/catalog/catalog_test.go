package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	return []Entry{
		{ID: "forms", Title: "Forms & Inputs", Description: "Form design best practices", Path: "/section/forms", Category: CategoryChapter},
		{ID: "3.1", Title: "All Inputs Labeled", Description: "Labels make form fields discoverable", Path: "/section/forms", SectionNumber: "3.1", Category: CategorySubsection},
		{ID: "3.2", Title: "Persistent Labels", Description: "Placeholders vanish when typing", Path: "/section/forms", SectionNumber: "3.2", Category: CategorySubsection},
		{ID: "links", Title: "Hyperlinks", Description: "Link accessibility and UX", Path: "/section/links", Category: CategoryChapter},
		{ID: "robust", Title: "Robust", Description: "Works with assistive technology", Path: "/principles/robust", Category: CategoryPrinciple},
	}
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []Entry
	}{
		{"duplicate id", []Entry{
			{ID: "a", Path: "/a", Category: CategoryChapter},
			{ID: "a", Path: "/b", Category: CategoryChapter},
		}},
		{"empty id", []Entry{{Path: "/a", Category: CategoryChapter}}},
		{"unknown category", []Entry{{ID: "a", Path: "/a", Category: "widget"}}},
		{"empty path", []Entry{{ID: "a", Category: CategoryChapter}}},
		{"section number on chapter", []Entry{{ID: "a", Path: "/a", SectionNumber: "1.1", Category: CategoryChapter}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New("v1", tt.entries)
			require.Error(t, err)
		})
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	t.Parallel()

	entries := sampleEntries()
	c, err := New("v1", entries)
	require.NoError(t, err)

	entries[0].Title = "changed"
	got := c.Entries()
	require.Equal(t, "Forms & Inputs", got[0].Title)

	got[1].Title = "changed again"
	entry, err := c.Get("3.1")
	require.NoError(t, err)
	require.Equal(t, "All Inputs Labeled", entry.Title)
}

func TestGetAndByCategory(t *testing.T) {
	t.Parallel()

	c, err := New("v1", sampleEntries())
	require.NoError(t, err)
	require.Equal(t, "v1", c.Version())
	require.Equal(t, 5, c.Len())

	_, err = c.Get("missing")
	require.True(t, errors.Is(err, ErrNotFound))

	chapters := c.ByCategory(CategoryChapter)
	require.Len(t, chapters, 2)
	require.Equal(t, "forms", chapters[0].ID)
	require.Equal(t, "links", chapters[1].ID)

	counts := c.Counts()
	require.Equal(t, 2, counts[CategoryChapter])
	require.Equal(t, 2, counts[CategorySubsection])
	require.Equal(t, 1, counts[CategoryPrinciple])
}

func TestJSONRoundTripThroughFile(t *testing.T) {
	t.Parallel()

	c, err := New("v1", sampleEntries())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "catalog.json")
	require.NoError(t, c.WriteJSON(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, c.Version(), loaded.Version())
	require.Equal(t, c.Entries(), loaded.Entries())
}

func TestLoadJSONErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadJSON([]byte("{"))
	require.Error(t, err)

	_, err = LoadJSON([]byte(`{"entries": []}`))
	require.ErrorContains(t, err, "missing version")

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestCategoryLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Sections", CategoryChapter.Label())
	require.Equal(t, "Components & Examples", CategorySubsection.Label())
	require.Equal(t, "Best Practices", CategoryPrinciple.Label())
	require.False(t, Category("other").Valid())
}
