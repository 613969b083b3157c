package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an entry id is not part of the catalog.
var ErrNotFound = errors.New("entry not found")

// Catalog is an immutable, ordered collection of entries.
// It is safe for concurrent use because nothing mutates it after New returns.
type Catalog struct {
	version string
	entries []Entry
	byID    map[string]int
}

// New validates entries and builds a catalog. The slice is copied.
func New(version string, entries []Entry) (*Catalog, error) {
	c := &Catalog{
		version: version,
		entries: make([]Entry, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, entry := range c.entries {
		if err := entry.validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog: %w", err)
		}
		if _, dup := c.byID[entry.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate id %q", entry.ID)
		}
		c.byID[entry.ID] = i
	}

	return c, nil
}

// Version returns the catalog version string.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the entry with the given id.
func (c *Catalog) Get(id string) (Entry, error) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.entries[i], nil
}

// ByCategory returns the entries of one category in catalog order.
func (c *Catalog) ByCategory(category Category) []Entry {
	var out []Entry
	for _, entry := range c.entries {
		if entry.Category == category {
			out = append(out, entry)
		}
	}
	return out
}

// Counts returns the number of entries per category.
func (c *Catalog) Counts() map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, entry := range c.entries {
		counts[entry.Category]++
	}
	return counts
}
