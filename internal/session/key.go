package session

import "strings"

// Key is a key press the session reacts to.
type Key int

const (
	// KeyNone is any key the session ignores.
	KeyNone Key = iota
	// KeyArrowDown moves the highlight to the next option.
	KeyArrowDown
	// KeyArrowUp moves the highlight to the previous option.
	KeyArrowUp
	// KeyEnter activates the highlighted option.
	KeyEnter
	// KeyEscape clears and closes the session.
	KeyEscape
)

// String returns the DOM key name.
func (k Key) String() string {
	switch k {
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	}
	return "None"
}

// ParseKey maps DOM key names ("ArrowDown", "Escape") and terminal key names ("down", "esc")
// to a Key. Unknown names map to KeyNone.
func ParseKey(name string) Key {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "arrowdown", "down", "ctrl+n":
		return KeyArrowDown
	case "arrowup", "up", "ctrl+p":
		return KeyArrowUp
	case "enter", "return":
		return KeyEnter
	case "escape", "esc":
		return KeyEscape
	}
	return KeyNone
}
