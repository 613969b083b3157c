package patterns

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter represents the YAML header of a pattern document.
type Frontmatter struct {
	// Section is the dotted section number the document belongs to.
	Section string `yaml:"section"`

	// Title is the pattern title.
	Title string `yaml:"title"`

	// Description is the one-line summary.
	Description string `yaml:"description"`

	// Weight is kept for authoring tools; documents are ordered by section number.
	Weight int `yaml:"weight"`
}

// ParseFrontmatter splits a markdown document into its YAML frontmatter and body.
// A document without frontmatter yields an empty Frontmatter and the whole content as body.
func ParseFrontmatter(content []byte) (*Frontmatter, []byte, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return &Frontmatter{}, content, nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(content[4:]))
	var yamlLines []string
	consumed := 4
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		consumed += len(line) + 1
		if line == "---" {
			closed = true
			break
		}
		yamlLines = append(yamlLines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to scan frontmatter: %w", err)
	}
	if !closed {
		return nil, nil, fmt.Errorf("unterminated frontmatter")
	}

	body := []byte{}
	if consumed < len(content) {
		body = content[consumed:]
	}

	raw := strings.Join(yamlLines, "\n")

	var fm Frontmatter
	err := yaml.Unmarshal([]byte(raw), &fm)
	if err == nil {
		return &fm, body, nil
	}
	if !strings.Contains(err.Error(), "mapping key") {
		return nil, nil, fmt.Errorf("failed to parse frontmatter YAML: %w", err)
	}

	// Duplicate keys: the last occurrence wins.
	sanitized := dedupeFrontmatter(raw)
	if sanitized == raw {
		return nil, nil, fmt.Errorf("failed to parse frontmatter YAML: %w", err)
	}
	if err := yaml.Unmarshal([]byte(sanitized), &fm); err != nil {
		return nil, nil, fmt.Errorf("failed to parse frontmatter YAML: %w", err)
	}

	return &fm, body, nil
}

func dedupeFrontmatter(raw string) string {
	lines := strings.Split(raw, "\n")

	type block struct {
		key   string
		start int
		end   int
	}

	var blocks []block
	for i, line := range lines {
		key, ok := topLevelKey(line)
		if !ok {
			if len(blocks) == 0 {
				blocks = append(blocks, block{start: i, end: i})
			} else {
				blocks[len(blocks)-1].end = i
			}
			continue
		}
		blocks = append(blocks, block{key: key, start: i, end: i})
	}

	last := make(map[string]int, len(blocks))
	for i, b := range blocks {
		if b.key != "" {
			last[b.key] = i
		}
	}

	var output []string
	for i, b := range blocks {
		if b.key != "" && last[b.key] != i {
			continue
		}
		output = append(output, lines[b.start:b.end+1]...)
	}

	return strings.Join(output, "\n")
}

func topLevelKey(line string) (string, bool) {
	if line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
		return "", false
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "-") {
		return "", false
	}

	key, _, found := strings.Cut(trimmed, ":")
	if !found {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", false
	}
	return key, true
}

// headings recognised in a pattern body.
const (
	headingLogic = "design logic"
	headingAvoid = "avoid"
	headingGood  = "prefer"
)

// ParseDocument parses a full pattern document.
func ParseDocument(content []byte) (*Document, error) {
	fm, body, err := ParseFrontmatter(content)
	if err != nil {
		return nil, err
	}
	if fm.Section == "" {
		return nil, fmt.Errorf("pattern document without section")
	}

	doc := &Document{
		Section:     fm.Section,
		Title:       fm.Title,
		Description: fm.Description,
		Markdown:    strings.TrimSpace(string(body)),
	}

	sections := splitSections(string(body))
	doc.DesignLogic = strings.TrimSpace(sections[headingLogic])

	// The avoided block names the language; the preferred block fills in when it has no info string.
	var goodLang string
	doc.BadCode, doc.Language = firstCodeBlock(sections[headingAvoid])
	doc.GoodCode, goodLang = firstCodeBlock(sections[headingGood])
	if doc.Language == "" {
		doc.Language = goodLang
	}

	return doc, nil
}

// splitSections maps lower-cased "## " headings to the text under them.
func splitSections(body string) map[string]string {
	sections := make(map[string]string)
	current := ""
	var buf strings.Builder
	inFence := false

	flush := func() {
		if current != "" {
			sections[current] = buf.String()
		}
		buf.Reset()
	}

	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
		}
		if !inFence && strings.HasPrefix(line, "## ") {
			flush()
			current = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "## ")))
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	flush()

	return sections
}

// firstCodeBlock returns the body and info string of the first fenced code block in text.
func firstCodeBlock(text string) (string, string) {
	lines := strings.Split(text, "\n")
	start := -1
	lang := ""
	for i, line := range lines {
		if !strings.HasPrefix(line, "```") {
			continue
		}
		if start == -1 {
			start = i
			lang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
			continue
		}
		return strings.Join(lines[start+1:i], "\n"), lang
	}
	return "", ""
}
