package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a11yref/a11yref/internal/catalog"
)

func mixedMatches() []catalog.Entry {
	return []catalog.Entry{
		{ID: "3.1", Category: catalog.CategorySubsection},
		{ID: "forms", Category: catalog.CategoryChapter},
		{ID: "perceivable", Category: catalog.CategoryPrinciple},
		{ID: "3.2", Category: catalog.CategorySubsection},
		{ID: "links", Category: catalog.CategoryChapter},
	}
}

func TestGroupKeepsRelativeOrder(t *testing.T) {
	t.Parallel()

	g := Group(mixedMatches())
	require.Equal(t, []string{"forms", "links"}, ids(g.Chapters))
	require.Equal(t, []string{"3.1", "3.2"}, ids(g.Subsections))
	require.Equal(t, []string{"perceivable"}, ids(g.Principles))
	require.Equal(t, 5, g.Total())
	require.Equal(t, []string{"forms", "links", "3.1", "3.2", "perceivable"}, ids(g.Flatten()))
}

func TestGlobalIndex(t *testing.T) {
	t.Parallel()

	g := Group(mixedMatches())
	for i, entry := range g.Flatten() {
		require.Equal(t, i, g.GlobalIndex(entry))

		at, ok := g.At(i)
		require.True(t, ok)
		require.Equal(t, entry.ID, at.ID)
	}

	require.Equal(t, -1, g.GlobalIndex(catalog.Entry{ID: "missing", Category: catalog.CategoryChapter}))
	_, ok := g.At(5)
	require.False(t, ok)
	_, ok = g.At(-1)
	require.False(t, ok)
}

func TestBucketsSkipEmptyAndCarryOffsets(t *testing.T) {
	t.Parallel()

	g := Group([]catalog.Entry{
		{ID: "3.1", Category: catalog.CategorySubsection},
		{ID: "robust", Category: catalog.CategoryPrinciple},
	})

	buckets := g.Buckets()
	require.Len(t, buckets, 2)
	require.Equal(t, "Components & Examples", buckets[0].Label)
	require.Equal(t, 0, buckets[0].Offset)
	require.Equal(t, "Best Practices", buckets[1].Label)
	require.Equal(t, 1, buckets[1].Offset)

	require.True(t, Group(nil).Empty())
	require.Empty(t, Group(nil).Buckets())
}
