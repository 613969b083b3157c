// Package assets loads the catalog and pattern library both binaries serve.
package assets

import (
	"fmt"
	"log/slog"

	a11yref "github.com/a11yref/a11yref"
	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/helpers"
	"github.com/a11yref/a11yref/internal/patterns"
)

// Assets is the immutable reference data for one process.
type Assets struct {
	Catalog  *catalog.Catalog
	Patterns *patterns.Library
}

// Load reads the embedded catalog, or the JSON file at catalogPath when it is set, and the embedded
// pattern library.
func Load(catalogPath string, logger *slog.Logger) (*Assets, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	if catalogPath != "" {
		c, err = catalog.LoadFile(catalogPath)
	} else {
		c, err = catalog.LoadJSON(a11yref.CatalogJSON)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	lib, err := patterns.Load(a11yref.PatternFiles, a11yref.PatternsRoot, logger)
	if err != nil {
		return nil, fmt.Errorf("load patterns: %w", err)
	}

	counts := c.Counts()
	logger.Info("Loaded catalog",
		slog.String("catalog_version", c.Version()),
		slog.String("source", helpers.PathKind(catalogPath)),
		slog.Int("chapters", counts[catalog.CategoryChapter]),
		slog.Int("subsections", counts[catalog.CategorySubsection]),
		slog.Int("principles", counts[catalog.CategoryPrinciple]),
		slog.Int("patterns", lib.Len()))

	for _, entry := range c.ByCategory(catalog.CategorySubsection) {
		if _, err := lib.Get(entry.SectionNumber); err != nil {
			logger.Debug("Subsection without pattern document", slog.String("section", entry.SectionNumber))
		}
	}

	return &Assets{Catalog: c, Patterns: lib}, nil
}
