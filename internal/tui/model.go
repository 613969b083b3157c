// Package tui is a terminal rendition of the search combobox.
package tui

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/navigate"
	"github.com/a11yref/a11yref/internal/patterns"
	"github.com/a11yref/a11yref/internal/search"
	"github.com/a11yref/a11yref/internal/session"
)

// Model is the bubbletea model for the browse command.
type Model struct {
	input   textinput.Model
	session *session.Session
	library *patterns.Library
	styles  *Styles
	log     *logrus.Logger

	destination string
	doc         *patterns.Document
	width       int
}

// New builds a model over entries. Documents come from lib, which may be nil.
// A nil logger discards log output.
func New(entries []catalog.Entry, lib *patterns.Library, log *logrus.Logger) *Model {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "Search patterns, e.g. form, label, 8.7"
	ti.Prompt = "🔍 "
	ti.CharLimit = 128
	ti.Focus()

	m := &Model{
		input:   ti,
		library: lib,
		styles:  NewStyles(),
		log:     log,
	}
	m.session = session.New(entries, navigate.Func(m.navigate))
	m.session.Focus()
	return m
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.log.Debug("quit")
		return m, tea.Quit
	}

	if m.doc != nil {
		switch key {
		case "q":
			return m, tea.Quit
		case "esc", "enter", "backspace":
			m.doc = nil
		}
		return m, nil
	}

	if key == "q" && m.input.Value() == "" {
		return m, tea.Quit
	}

	if k := session.ParseKey(key); msg.Type != tea.KeyRunes && k != session.KeyNone {
		m.session.KeyDown(k)
		m.log.WithFields(logrus.Fields{
			"key":     k.String(),
			"state":   m.session.State().String(),
			"focused": m.session.FocusedIndex(),
		}).Debug("key")
		if m.session.Query() != m.input.Value() {
			m.input.SetValue(m.session.Query())
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.session.SetQuery(value)
		m.log.WithFields(logrus.Fields{
			"query":   value,
			"matches": m.session.Groups().Total(),
		}).Debug("query")
	}
	return m, cmd
}

func (m *Model) navigate(destination string) {
	m.destination = destination
	m.log.WithField("destination", destination).Info("navigate")

	_, section, ok := strings.Cut(destination, "#")
	if !ok || m.library == nil {
		return
	}

	doc, err := m.library.Get(section)
	if err != nil {
		if !errors.Is(err, patterns.ErrNoDocument) {
			m.log.WithError(err).Warn("pattern lookup failed")
		}
		return
	}
	m.doc = doc
}

// Destination returns the last navigation destination.
func (m *Model) Destination() string {
	return m.destination
}

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Accessibility reference"))
	b.WriteString("\n")

	if m.doc != nil {
		b.WriteString(m.renderDocument(m.doc))
		b.WriteString(m.styles.Help.Render("esc back • q quit"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.session.IsOpen():
		b.WriteString(m.renderResults())
	case strings.TrimSpace(m.session.Query()) != "":
		b.WriteString(m.styles.Dim.Render("No matches"))
		b.WriteString("\n")
	}

	if m.destination != "" {
		b.WriteString(m.styles.Status.Render("→ " + m.destination))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("↑/↓ move • enter open • esc clear • ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderResults() string {
	var b strings.Builder
	query := m.session.Query()
	focused := m.session.FocusedIndex()

	for _, bucket := range m.session.Groups().Buckets() {
		b.WriteString(m.styles.Heading.Render(bucket.Label))
		b.WriteString("\n")

		for i, entry := range bucket.Entries {
			index := bucket.Offset + i

			var line strings.Builder
			if entry.HasSectionNumber() {
				line.WriteString(m.styles.Section.Render(entry.SectionNumber))
				line.WriteString(" ")
			}
			for _, seg := range search.Highlight(entry.Title, query) {
				if seg.Match {
					line.WriteString(m.styles.Match.Render(seg.Text))
				} else {
					line.WriteString(seg.Text)
				}
			}
			line.WriteString(" ")
			line.WriteString(m.styles.Dim.Render(entry.Description))

			if index == focused {
				b.WriteString(m.styles.Selected.Render("> " + line.String()))
			} else {
				b.WriteString(m.styles.Option.Render("  " + line.String()))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderDocument(doc *patterns.Document) string {
	var b strings.Builder
	b.WriteString(m.styles.Section.Render(doc.Section))
	b.WriteString(" ")
	b.WriteString(doc.Title)
	b.WriteString("\n")
	if doc.Description != "" {
		b.WriteString(m.styles.Dim.Render(doc.Description))
		b.WriteString("\n")
	}
	if doc.DesignLogic != "" {
		b.WriteString("\n")
		b.WriteString(doc.DesignLogic)
		b.WriteString("\n")
	}
	if doc.BadCode != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Bad.Render("✗ Avoid"))
		b.WriteString("\n")
		b.WriteString(m.styles.Code.Render(doc.BadCode))
		b.WriteString("\n")
	}
	if doc.GoodCode != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Good.Render("✓ Prefer"))
		b.WriteString("\n")
		b.WriteString(m.styles.Code.Render(doc.GoodCode))
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts the program on the terminal and blocks until it exits.
func Run(entries []catalog.Entry, lib *patterns.Library, log *logrus.Logger, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(entries, lib, log), opts...).Run()
	return err
}
