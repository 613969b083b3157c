package navigate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a11yref/a11yref/internal/catalog"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	chapter := catalog.Entry{ID: "forms", Path: "/section/forms", Category: catalog.CategoryChapter}
	require.Equal(t, "/section/forms", Resolve(chapter))

	sub := catalog.Entry{ID: "3.1", Path: "/section/forms", SectionNumber: "3.1", Category: catalog.CategorySubsection}
	require.Equal(t, "/section/forms#3.1", Resolve(sub))
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder
	_, ok := r.Last()
	require.False(t, ok)

	var nav Navigator = &r
	nav.Navigate("/a")
	nav.Navigate("/b#1.1")

	last, ok := r.Last()
	require.True(t, ok)
	require.Equal(t, "/b#1.1", last)
	require.Equal(t, []string{"/a", "/b#1.1"}, r.History())
}

func TestFunc(t *testing.T) {
	t.Parallel()

	var got string
	Func(func(d string) { got = d }).Navigate("/x")
	require.Equal(t, "/x", got)

	require.NotPanics(t, func() { Discard.Navigate("/y") })
}
