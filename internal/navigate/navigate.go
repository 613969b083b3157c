// Package navigate turns catalog entries into destinations and hands them to a router.
package navigate

import (
	"sync"

	"github.com/a11yref/a11yref/internal/catalog"
)

// Resolve returns the entry's destination: its path, followed by "#<section number>" when it has one.
func Resolve(entry catalog.Entry) string {
	if entry.HasSectionNumber() {
		return entry.Path + "#" + entry.SectionNumber
	}
	return entry.Path
}

// Navigator performs a client-side transition to a destination.
type Navigator interface {
	Navigate(destination string)
}

// Func adapts a function to the Navigator interface.
type Func func(destination string)

// Navigate calls f(destination).
func (f Func) Navigate(destination string) {
	f(destination)
}

// Discard is a Navigator that ignores every destination.
//
//nolint:gochecknoglobals // Stateless sentinel.
var Discard Navigator = Func(func(string) {})

// Recorder remembers every destination it was asked to navigate to.
type Recorder struct {
	mu      sync.Mutex
	history []string
}

// Navigate records destination.
func (r *Recorder) Navigate(destination string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, destination)
}

// History returns a copy of the recorded destinations, oldest first.
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Last returns the most recent destination and whether there was one.
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return "", false
	}
	return r.history[len(r.history)-1], true
}
