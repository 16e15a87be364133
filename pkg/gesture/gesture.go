// Package gesture describes the input patterns that bring up the log overlay.
package gesture

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Recognizer inspects terminal events and reports when its gesture completes.
// width and height are the current size of the screen in cells.
type Recognizer interface {
	Recognize(ev tcell.Event, width, height int) bool
}

// Default returns the default trigger: a swipe in from the right edge.
func Default() Recognizer {
	return NewEdgeSwipe(EdgeRight)
}

// anyOf combines recognizers; the first one to match wins.
type anyOf []Recognizer

// AnyOf returns a Recognizer that fires when any of rs fires.
// Every recognizer still sees every event so stateful ones stay in sync.
func AnyOf(rs ...Recognizer) Recognizer {
	filtered := make(anyOf, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (a anyOf) Recognize(ev tcell.Event, width, height int) bool {
	matched := false
	for _, r := range a {
		if r.Recognize(ev, width, height) {
			matched = true
		}
	}
	return matched
}

func (a anyOf) String() string {
	names := make([]string, len(a))
	for i, r := range a {
		names[i] = fmt.Sprint(r)
	}
	return strings.Join(names, " or ")
}
