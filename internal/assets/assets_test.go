package assets

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a11yref/a11yref/internal/catalog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()

	a, err := Load("", discardLogger())
	require.NoError(t, err)
	require.Equal(t, 59, a.Catalog.Len())
	require.Equal(t, 8, a.Patterns.Len())
}

func TestLoadOverrideFile(t *testing.T) {
	t.Parallel()

	c, err := catalog.New("custom", []catalog.Entry{
		{ID: "forms", Title: "Forms", Path: "/section/forms", Category: catalog.CategoryChapter},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, c.WriteJSON(path))

	a, err := Load(path, discardLogger())
	require.NoError(t, err)
	require.Equal(t, "custom", a.Catalog.Version())
	require.Equal(t, 1, a.Catalog.Len())
}

func TestLoadBadOverride(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), discardLogger())
	require.ErrorContains(t, err, "load catalog")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = Load(path, discardLogger())
	require.Error(t, err)
}
