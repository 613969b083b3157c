package sorttable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type row struct {
	name string
	role string
}

func newTable() *Table[row] {
	return New(
		Column[row]{Key: "name", Header: "Name", Value: func(r row) string { return r.name }},
		Column[row]{Key: "role", Header: "Role", Value: func(r row) string { return r.role }},
	)
}

func rows() []row {
	return []row{
		{name: "carol", role: "editor"},
		{name: "Alice", role: "admin"},
		{name: "bob", role: "editor"},
		{name: "dave", role: "admin"},
	}
}

func names(rs []row) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.name)
	}
	return out
}

func TestToggleCyclesDirection(t *testing.T) {
	t.Parallel()

	table := newTable()
	require.Equal(t, "none", table.AriaSort("name"))

	require.NoError(t, table.Toggle("name"))
	require.Equal(t, "ascending", table.AriaSort("name"))
	require.Equal(t, "none", table.AriaSort("role"))

	require.NoError(t, table.Toggle("name"))
	require.Equal(t, "descending", table.AriaSort("name"))

	require.NoError(t, table.Toggle("name"))
	require.Equal(t, "ascending", table.AriaSort("name"))

	require.NoError(t, table.Toggle("role"))
	require.Equal(t, "ascending", table.AriaSort("role"))
	require.Equal(t, "none", table.AriaSort("name"))
}

func TestToggleRejectsUnknownColumn(t *testing.T) {
	t.Parallel()

	table := newTable()
	err := table.Toggle("__proto__")
	require.ErrorIs(t, err, ErrUnknownColumn)

	key, _ := table.State()
	require.Empty(t, key)
}

func TestSortIsStableAndCaseInsensitive(t *testing.T) {
	t.Parallel()

	table := newTable()
	require.Equal(t, []string{"carol", "Alice", "bob", "dave"}, names(table.Sort(rows())))

	require.NoError(t, table.Toggle("name"))
	require.Equal(t, []string{"Alice", "bob", "carol", "dave"}, names(table.Sort(rows())))

	require.NoError(t, table.Toggle("name"))
	require.Equal(t, []string{"dave", "carol", "bob", "Alice"}, names(table.Sort(rows())))

	require.NoError(t, table.Toggle("role"))
	require.Equal(t, []string{"Alice", "dave", "carol", "bob"}, names(table.Sort(rows())))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	table := newTable()
	require.NoError(t, table.SortBy("name", Descending))

	in := rows()
	_ = table.Sort(in)
	require.Equal(t, rows(), in)
}

func TestSortByValidates(t *testing.T) {
	t.Parallel()

	table := newTable()
	require.ErrorIs(t, table.SortBy("age", Ascending), ErrUnknownColumn)
	require.Error(t, table.SortBy("name", Direction("sideways")))
	require.NoError(t, table.SortBy("role", Descending))

	key, dir := table.State()
	require.Equal(t, "role", key)
	require.Equal(t, Descending, dir)
}
