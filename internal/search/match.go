// Package search implements the literal catalog matcher and the category grouper behind the search box.
package search

import (
	"strings"

	"github.com/a11yref/a11yref/internal/catalog"
)

// Match returns the entries whose title or description contains query case-insensitively, or whose
// section number contains query literally. Surrounding whitespace in query is ignored and a blank
// query matches nothing. Catalog order is preserved.
//
// Matching is plain substring search, so characters such as "(" or "*" have no special meaning.
func Match(query string, entries []catalog.Entry) []catalog.Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	lower := strings.ToLower(query)
	var results []catalog.Entry

	for _, entry := range entries {
		if Matches(entry, query, lower) {
			results = append(results, entry)
		}
	}

	return results
}

// Matches reports whether a single entry matches. query must already be trimmed and lower must be
// strings.ToLower(query).
func Matches(entry catalog.Entry, query, lower string) bool {
	titleMatch := strings.Contains(strings.ToLower(entry.Title), lower)
	descMatch := strings.Contains(strings.ToLower(entry.Description), lower)
	sectionMatch := entry.HasSectionNumber() && strings.Contains(entry.SectionNumber, query)

	return titleMatch || descMatch || sectionMatch
}
