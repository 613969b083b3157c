// Package sorttable sorts table rows by an explicit set of columns and reports the aria-sort
// state for each column header.
package sorttable

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownColumn is returned when a sort key names no column.
var ErrUnknownColumn = errors.New("unknown column")

// Direction is a sort direction.
type Direction string

const (
	// Ascending sorts A to Z.
	Ascending Direction = "ascending"
	// Descending sorts Z to A.
	Descending Direction = "descending"
)

// Column maps a sort key to the header text and the accessor for a row.
type Column[T any] struct {
	Key    string
	Header string
	Value  func(T) string
}

// Table holds the column set and the current sort state.
type Table[T any] struct {
	columns []Column[T]
	key     string
	dir     Direction
}

// New returns an unsorted table over columns.
func New[T any](columns ...Column[T]) *Table[T] {
	return &Table[T]{columns: columns}
}

// Columns returns the column set in declaration order.
func (t *Table[T]) Columns() []Column[T] {
	return t.columns
}

// State returns the active sort key and direction. The key is empty until the first Toggle.
func (t *Table[T]) State() (string, Direction) {
	return t.key, t.dir
}

// Toggle activates a column: the active column flips between ascending and descending,
// any other column starts ascending.
func (t *Table[T]) Toggle(key string) error {
	if _, ok := t.column(key); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}

	if t.key == key && t.dir == Ascending {
		t.dir = Descending
		return nil
	}
	t.key = key
	t.dir = Ascending
	return nil
}

// SortBy sets the state directly.
func (t *Table[T]) SortBy(key string, dir Direction) error {
	if _, ok := t.column(key); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}
	if dir != Ascending && dir != Descending {
		return fmt.Errorf("invalid direction %q", dir)
	}
	t.key = key
	t.dir = dir
	return nil
}

// Sort returns a copy of rows ordered by the active column. Equal values keep their input order,
// and rows are returned unchanged while no column is active.
func (t *Table[T]) Sort(rows []T) []T {
	out := slices.Clone(rows)
	col, ok := t.column(t.key)
	if !ok {
		return out
	}

	slices.SortStableFunc(out, func(a, b T) int {
		c := cmp.Compare(strings.ToLower(col.Value(a)), strings.ToLower(col.Value(b)))
		if t.dir == Descending {
			return -c
		}
		return c
	})
	return out
}

// AriaSort returns the aria-sort value for a column header.
func (t *Table[T]) AriaSort(key string) string {
	if key == "" || key != t.key {
		return "none"
	}
	return string(t.dir)
}

func (t *Table[T]) column(key string) (Column[T], bool) {
	for _, col := range t.columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column[T]{}, false
}
