// Package patterns loads the bad-vs-good pattern documents that back catalog subsections.
package patterns

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strconv"
	"strings"
)

// ErrNoDocument is returned when a section has no pattern document.
var ErrNoDocument = errors.New("no pattern document")

// Document is a parsed pattern document.
type Document struct {
	Section     string `json:"section"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DesignLogic string `json:"design_logic,omitempty"`
	Language    string `json:"language,omitempty"`
	BadCode     string `json:"bad_code,omitempty"`
	GoodCode    string `json:"good_code,omitempty"`
	Markdown    string `json:"markdown"`

	// File is the document path inside the source filesystem.
	File string `json:"-"`
}

// Library indexes pattern documents by section number.
type Library struct {
	docs      []*Document
	bySection map[string]*Document
}

// Load walks root inside fsys and parses every markdown file.
// Files that fail to parse are logged and skipped; a duplicated section is an error.
func Load(fsys fs.FS, root string, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.Default()
	}

	lib := &Library{bySection: make(map[string]*Document)}

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		doc, err := ParseDocument(content)
		if err != nil {
			logger.Warn("Skipping pattern document",
				slog.String("file", p),
				slog.String("error", err.Error()))
			return nil
		}
		doc.File = path.Clean(p)

		if prev, dup := lib.bySection[doc.Section]; dup {
			return fmt.Errorf("section %s defined twice: %s and %s", doc.Section, prev.File, doc.File)
		}
		lib.bySection[doc.Section] = doc
		lib.docs = append(lib.docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern documents from %s: %w", root, err)
	}

	sort.SliceStable(lib.docs, func(i, j int) bool {
		return sectionLess(lib.docs[i].Section, lib.docs[j].Section)
	})

	return lib, nil
}

// sectionLess orders dotted section numbers numerically, so "8.9" sorts before "8.10".
func sectionLess(a, b string) bool {
	pa, pb := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(pa) && i < len(pb); i++ {
		na, errA := strconv.Atoi(pa[i])
		nb, errB := strconv.Atoi(pb[i])
		if errA != nil || errB != nil {
			if pa[i] != pb[i] {
				return pa[i] < pb[i]
			}
			continue
		}
		if na != nb {
			return na < nb
		}
	}
	return len(pa) < len(pb)
}

// Get returns the document for a section number.
func (l *Library) Get(section string) (*Document, error) {
	doc, ok := l.bySection[section]
	if !ok {
		return nil, fmt.Errorf("%w for section %s", ErrNoDocument, section)
	}
	return doc, nil
}

// Sections returns the section numbers that have documents, in display order.
func (l *Library) Sections() []string {
	out := make([]string, 0, len(l.docs))
	for _, doc := range l.docs {
		out = append(out, doc.Section)
	}
	return out
}

// Len returns the number of documents.
func (l *Library) Len() int {
	return len(l.docs)
}
