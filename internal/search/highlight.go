package search

import (
	"strings"
	"unicode"
)

// Segment is a run of text that either matches the query or not.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match,omitempty"`
}

// MatchRange is a byte range [Start, End) of a query occurrence.
type MatchRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Ranges returns the non-overlapping, case-insensitive occurrences of the trimmed query in text.
func Ranges(text, query string) []MatchRange {
	query = strings.TrimSpace(query)
	if query == "" || text == "" {
		return nil
	}

	needle := foldRunes(query)
	folded := foldRunes(text)

	// Byte offset of every rune, plus the end of text. An invalid byte decodes as one
	// utf8.RuneError of width 1, in step with foldRunes.
	offsets := make([]int, 0, len(folded)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	var ranges []MatchRange
	for i := 0; i+len(needle) <= len(folded); {
		if equalRunes(folded[i:i+len(needle)], needle) {
			ranges = append(ranges, MatchRange{Start: offsets[i], End: offsets[i+len(needle)]})
			i += len(needle)
			continue
		}
		i++
	}

	return ranges
}

// Highlight splits text into segments, flagging every occurrence of query.
// Text without occurrences comes back as a single unmatched segment.
func Highlight(text, query string) []Segment {
	ranges := Ranges(text, query)
	if len(ranges) == 0 {
		if text == "" {
			return nil
		}
		return []Segment{{Text: text}}
	}

	segments := make([]Segment, 0, 2*len(ranges)+1)
	last := 0
	for _, r := range ranges {
		if r.Start > last {
			segments = append(segments, Segment{Text: text[last:r.Start]})
		}
		segments = append(segments, Segment{Text: text[r.Start:r.End], Match: true})
		last = r.End
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}

	return segments
}

func foldRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
