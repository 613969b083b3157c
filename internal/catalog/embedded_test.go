package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	a11yref "github.com/a11yref/a11yref"
	"github.com/a11yref/a11yref/internal/catalog"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	t.Parallel()

	c, err := catalog.LoadJSON(a11yref.CatalogJSON)
	require.NoError(t, err)
	require.NotEmpty(t, c.Version())

	counts := c.Counts()
	require.Equal(t, 12, counts[catalog.CategoryChapter])
	require.Equal(t, 43, counts[catalog.CategorySubsection])
	require.Equal(t, 4, counts[catalog.CategoryPrinciple])

	for _, entry := range c.ByCategory(catalog.CategorySubsection) {
		require.Equal(t, entry.ID, entry.SectionNumber, "subsection ids are their section numbers")
	}
}
