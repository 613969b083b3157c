// Package session holds the per-interaction state of the search combobox and its transitions.
//
// A Session is owned by a single input: one rendered search box, one terminal model or one
// websocket connection. It is not safe for concurrent use.
package session

import (
	"fmt"

	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/navigate"
	"github.com/a11yref/a11yref/internal/search"
)

// State is the coarse interaction state derived from the session fields.
type State int

const (
	// StateIdle has an empty query and a closed popup.
	StateIdle State = iota
	// StateTyping has a query but nothing displayed.
	StateTyping
	// StateOpen displays matches with no option highlighted.
	StateOpen
	// StateNavigating displays matches with one option highlighted.
	StateNavigating
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTyping:
		return "typing"
	case StateOpen:
		return "open"
	case StateNavigating:
		return "navigating"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(text []byte) error {
	for _, candidate := range []State{StateIdle, StateTyping, StateOpen, StateNavigating} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown session state %q", text)
}

// OptionID returns the element id of the option at a global index, used for aria-activedescendant.
func OptionID(index int) string {
	return fmt.Sprintf("result-%d", index)
}

// Session is the transient search state of one combobox.
type Session struct {
	entries []catalog.Entry
	nav     navigate.Navigator

	query    string
	groups   search.Groups
	focused  int
	open     bool
	hasFocus bool
}

// New creates an idle session over entries. A nil navigator discards destinations.
func New(entries []catalog.Entry, nav navigate.Navigator) *Session {
	if nav == nil {
		nav = navigate.Discard
	}
	return &Session{
		entries: entries,
		nav:     nav,
		focused: -1,
	}
}

// SetQuery replaces the query, recomputes matches and clears the highlight.
// The popup opens exactly when something matches.
func (s *Session) SetQuery(query string) {
	s.query = query
	s.groups = search.Group(search.Match(query, s.entries))
	s.open = !s.groups.Empty()
	s.focused = -1
	s.hasFocus = true
}

// KeyDown applies a key press and reports whether the key was consumed.
func (s *Session) KeyDown(key Key) bool {
	switch key {
	case KeyArrowDown:
		s.move(1)
	case KeyArrowUp:
		s.move(-1)
	case KeyEnter:
		if s.focused >= 0 {
			s.Select(s.focused)
		}
	case KeyEscape:
		s.reset()
		s.hasFocus = false
	default:
		return false
	}
	return true
}

// move shifts the highlight by delta, wrapping in both directions.
func (s *Session) move(delta int) {
	total := s.groups.Total()
	if !s.open || total == 0 {
		return
	}

	switch {
	case delta > 0 && s.focused < total-1:
		s.focused++
	case delta > 0:
		s.focused = 0
	case s.focused > 0:
		s.focused--
	default:
		s.focused = total - 1
	}
}

// Select activates the option at a global index: the navigator receives its destination and the
// session returns to idle. It reports false, leaving the session untouched, for an unknown index.
func (s *Session) Select(index int) bool {
	entry, ok := s.groups.At(index)
	if !ok {
		return false
	}

	s.nav.Navigate(navigate.Resolve(entry))
	s.reset()
	return true
}

// Focus gives the input focus and reopens the popup when there are matches.
func (s *Session) Focus() {
	s.hasFocus = true
	if !s.groups.Empty() {
		s.open = true
	}
}

// ClickOutside closes the popup and clears the highlight, keeping the query.
func (s *Session) ClickOutside() {
	s.open = false
	s.focused = -1
	s.hasFocus = false
}

func (s *Session) reset() {
	s.query = ""
	s.groups = search.Groups{}
	s.open = false
	s.focused = -1
}

// Query returns the current query text.
func (s *Session) Query() string {
	return s.query
}

// Groups returns the grouped matches for the current query.
func (s *Session) Groups() search.Groups {
	return s.groups
}

// FocusedIndex returns the highlighted global index, or -1.
func (s *Session) FocusedIndex() int {
	return s.focused
}

// Focused returns the highlighted entry.
func (s *Session) Focused() (catalog.Entry, bool) {
	return s.groups.At(s.focused)
}

// IsOpen reports whether the popup is displayed.
func (s *Session) IsOpen() bool {
	return s.open
}

// HasFocus reports whether the input holds focus.
func (s *Session) HasFocus() bool {
	return s.hasFocus
}

// State derives the interaction state.
func (s *Session) State() State {
	switch {
	case s.open && s.focused >= 0:
		return StateNavigating
	case s.open:
		return StateOpen
	case s.query != "":
		return StateTyping
	}
	return StateIdle
}

// Snapshot is everything a renderer needs to draw the combobox.
type Snapshot struct {
	Query            string        `json:"query"`
	State            State         `json:"state"`
	Open             bool          `json:"open"`
	HasFocus         bool          `json:"has_focus"`
	FocusedIndex     int           `json:"focused_index"`
	ActiveDescendant string        `json:"active_descendant,omitempty"`
	Total            int           `json:"total"`
	Groups           search.Groups `json:"groups"`
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Query:        s.query,
		State:        s.State(),
		Open:         s.open,
		HasFocus:     s.hasFocus,
		FocusedIndex: s.focused,
		Total:        s.groups.Total(),
		Groups:       s.groups,
	}
	if s.focused >= 0 {
		snap.ActiveDescendant = OptionID(s.focused)
	}
	return snap
}
