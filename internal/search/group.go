package search

import "github.com/a11yref/a11yref/internal/catalog"

// Groups partitions matches into the fixed display buckets.
type Groups struct {
	Chapters    []catalog.Entry `json:"chapters"`
	Subsections []catalog.Entry `json:"subsections"`
	Principles  []catalog.Entry `json:"principles"`
}

// Bucket is one labelled, non-empty group with the global index of its first entry.
type Bucket struct {
	Category catalog.Category
	Label    string
	Entries  []catalog.Entry
	Offset   int
}

// Group splits matches by category, keeping their relative order.
func Group(matches []catalog.Entry) Groups {
	var g Groups
	for _, entry := range matches {
		switch entry.Category {
		case catalog.CategoryChapter:
			g.Chapters = append(g.Chapters, entry)
		case catalog.CategorySubsection:
			g.Subsections = append(g.Subsections, entry)
		case catalog.CategoryPrinciple:
			g.Principles = append(g.Principles, entry)
		}
	}
	return g
}

// Total returns the number of grouped entries.
func (g Groups) Total() int {
	return len(g.Chapters) + len(g.Subsections) + len(g.Principles)
}

// Empty reports whether no entry matched.
func (g Groups) Empty() bool {
	return g.Total() == 0
}

// Flatten returns all entries in display order: chapters, subsections, principles.
func (g Groups) Flatten() []catalog.Entry {
	out := make([]catalog.Entry, 0, g.Total())
	out = append(out, g.Chapters...)
	out = append(out, g.Subsections...)
	out = append(out, g.Principles...)
	return out
}

// GlobalIndex returns the entry's position in the flattened display order: its position in its own
// bucket plus the sizes of the buckets rendered before it. It returns -1 when the entry is absent.
func (g Groups) GlobalIndex(entry catalog.Entry) int {
	offset := 0
	for _, bucket := range g.ordered() {
		if bucket.category == entry.Category {
			for i, candidate := range bucket.entries {
				if candidate.ID == entry.ID {
					return offset + i
				}
			}
			return -1
		}
		offset += len(bucket.entries)
	}
	return -1
}

// At returns the entry at a global index.
func (g Groups) At(index int) (catalog.Entry, bool) {
	if index < 0 {
		return catalog.Entry{}, false
	}
	for _, bucket := range g.ordered() {
		if index < len(bucket.entries) {
			return bucket.entries[index], true
		}
		index -= len(bucket.entries)
	}
	return catalog.Entry{}, false
}

// Buckets returns the non-empty buckets in display order, each with its heading label.
func (g Groups) Buckets() []Bucket {
	var out []Bucket
	offset := 0
	for _, bucket := range g.ordered() {
		if len(bucket.entries) == 0 {
			continue
		}
		out = append(out, Bucket{
			Category: bucket.category,
			Label:    bucket.category.Label(),
			Entries:  bucket.entries,
			Offset:   offset,
		})
		offset += len(bucket.entries)
	}
	return out
}

type orderedBucket struct {
	category catalog.Category
	entries  []catalog.Entry
}

func (g Groups) ordered() [3]orderedBucket {
	return [3]orderedBucket{
		{catalog.CategoryChapter, g.Chapters},
		{catalog.CategorySubsection, g.Subsections},
		{catalog.CategoryPrinciple, g.Principles},
	}
}
