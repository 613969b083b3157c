package patterns

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	a11yref "github.com/a11yref/a11yref"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadSortsAndIndexes(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"docs/forms/b.md":   {Data: []byte("---\nsection: \"3.2\"\ntitle: Persistent Labels\nweight: 2\n---\nbody")},
		"docs/forms/a.md":   {Data: []byte("---\nsection: \"3.1\"\ntitle: All Inputs Labeled\nweight: 1\n---\nbody")},
		"docs/forms/bad.md": {Data: []byte("---\ntitle: missing section\n---\n")},
		"docs/notes.txt":    {Data: []byte("ignored")},
	}

	lib, err := Load(fsys, "docs", discardLogger())
	require.NoError(t, err)
	require.Equal(t, 2, lib.Len())
	require.Equal(t, []string{"3.1", "3.2"}, lib.Sections())

	doc, err := lib.Get("3.2")
	require.NoError(t, err)
	require.Equal(t, "Persistent Labels", doc.Title)
	require.Equal(t, "docs/forms/b.md", doc.File)

	_, err = lib.Get("9.9")
	require.True(t, errors.Is(err, ErrNoDocument))
}

func TestLoadRejectsDuplicateSections(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"docs/a.md": {Data: []byte("---\nsection: \"1.1\"\n---\n")},
		"docs/b.md": {Data: []byte("---\nsection: \"1.1\"\n---\n")},
	}

	_, err := Load(fsys, "docs", discardLogger())
	require.ErrorContains(t, err, "defined twice")
}

func TestLoadMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := Load(fstest.MapFS{}, "nowhere", discardLogger())
	require.Error(t, err)
}

func TestEmbeddedPatternsLoad(t *testing.T) {
	t.Parallel()

	lib, err := Load(a11yref.PatternFiles, a11yref.PatternsRoot, discardLogger())
	require.NoError(t, err)
	require.Equal(t, 8, lib.Len())

	doc, err := lib.Get("1.1")
	require.NoError(t, err)
	require.Equal(t, "Sequential Headings", doc.Title)
	require.Contains(t, doc.BadCode, "<h4>Subtitle</h4>")
	require.Contains(t, doc.GoodCode, "<h2")
	require.NotEmpty(t, doc.DesignLogic)
}

func TestSectionLess(t *testing.T) {
	t.Parallel()

	require.True(t, sectionLess("8.9", "8.10"))
	require.True(t, sectionLess("1.6", "8.7"))
	require.False(t, sectionLess("3.2", "3.2"))
	require.True(t, sectionLess("3", "3.1"))
	require.True(t, sectionLess("a.1", "b.1"))
}
