// Package helpers provides utility functions.
package helpers

import (
	"path/filepath"
	"strings"
)

// PathKind returns a safe representation of a file path for logging.
func PathKind(path string) string {
	switch {
	case path == "":
		return "embedded"
	case strings.Contains(path, "temp"), strings.Contains(path, "tmp"):
		return "temporary"
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".md":
		return "markdown"
	}
	return "other"
}
