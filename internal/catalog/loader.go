package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// document is the versioned on-disk form of a catalog.
type document struct {
	Version string  `json:"version"`
	Entries []Entry `json:"entries"`
}

// LoadJSON deserializes and validates a catalog.
func LoadJSON(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if doc.Version == "" {
		return nil, fmt.Errorf("failed to load catalog: missing version")
	}

	return New(doc.Version, doc.Entries)
}

// LoadFile reads a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	// #nosec G304 -- path is an operator-supplied catalog override
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return LoadJSON(data)
}

// MarshalJSON encodes the catalog in its versioned form.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{Version: c.version, Entries: c.entries})
}

// WriteJSON serializes the catalog to a file.
func (c *Catalog) WriteJSON(outputPath string) error {
	data, err := json.MarshalIndent(document{Version: c.version, Entries: c.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}
