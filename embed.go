// Package a11yref provides embedded resources for the accessibility reference binaries.
package a11yref

import (
	"embed"
)

// CatalogJSON contains the versioned catalog of chapters, subsections and principles.
//
//go:embed dist/catalog.json
var CatalogJSON []byte

// PatternFiles contains the bad-vs-good pattern documents, one markdown file per subsection.
//
//go:embed dist/patterns/**
var PatternFiles embed.FS

// PatternsRoot is the directory of PatternFiles that holds the pattern documents.
const PatternsRoot = "dist/patterns"
