// Package logstore holds the in-memory log buffer shown by the log overlay,
// together with the overlay's visibility and trigger configuration.
package logstore

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/Qendolin/log-overlay/pkg/gesture"
	"github.com/gdamore/tcell/v2"
)

// DefaultTitle is the overlay header used when none is configured.
const DefaultTitle = "LOGGER"

// LogStore is an ordered, append-only collection of log entries plus the
// state of the overlay that displays them. It is safe for concurrent use.
//
// Entries are never reordered or removed. Growth is unbounded.
type LogStore struct {
	mu         sync.RWMutex
	entries    []LogEntry
	visibility Visibility
	gesture    gesture.Recognizer
	title      string
	now        func() time.Time

	onShow func()
	onHide func()
}

// Option customizes a LogStore created with New.
type Option func(*LogStore)

// WithClock sets the clock used to timestamp appended entries.
func WithClock(now func() time.Time) Option {
	return func(s *LogStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTitle sets the initial display title.
func WithTitle(title string) Option {
	return func(s *LogStore) {
		if title != "" {
			s.title = title
		}
	}
}

// WithGesture sets the initial trigger gesture.
func WithGesture(g gesture.Recognizer) Option {
	return func(s *LogStore) {
		if g != nil {
			s.gesture = g
		}
	}
}

// New creates an isolated LogStore. Tests should prefer this over Shared.
func New(opts ...Option) *LogStore {
	s := &LogStore{
		entries:    make([]LogEntry, 0, 256),
		visibility: Hidden,
		gesture:    gesture.Default(),
		title:      DefaultTitle,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	sharedOnce  sync.Once
	sharedStore *LogStore
)

// Shared returns the process-wide store, creating it on first use.
// It lives until the process exits.
func Shared() *LogStore {
	sharedOnce.Do(func() {
		sharedStore = New()
	})
	return sharedStore
}

// Configure replaces the trigger gesture and the display title.
// A missing or empty title resets it to DefaultTitle; a nil gesture restores
// the default edge swipe. The last call wins.
func (s *LogStore) Configure(g gesture.Recognizer, title ...string) {
	if g == nil {
		g = gesture.Default()
	}
	t := DefaultTitle
	if len(title) > 0 && title[0] != "" {
		t = title[0]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gesture = g
	s.title = t
}

// Title returns the configured display title.
func (s *LogStore) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// Gesture returns the configured trigger gesture.
func (s *LogStore) Gesture() gesture.Recognizer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gesture
}

// Append adds message to the end of the store, stamped with the current time.
func (s *LogStore) Append(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, LogEntry{Message: message, Timestamp: s.now()})
}

// Appendf formats according to a format specifier and appends the result.
func (s *LogStore) Appendf(format string, args ...any) {
	s.Append(fmt.Sprintf(format, args...))
}

// Write implements io.Writer so the store can back a log.Logger.
// Every non-empty line of p becomes one entry.
func (s *LogStore) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(p, []byte{'\n'}) {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		s.Append(string(line))
	}
	return len(p), nil
}

// Snapshot returns a copy of all entries in insertion order.
func (s *LogStore) Snapshot() []LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entriesCopy := make([]LogEntry, len(s.entries))
	copy(entriesCopy, s.entries)
	return entriesCopy
}

// Len returns the number of entries.
func (s *LogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Entry returns the entry at index i.
func (s *LogStore) Entry(i int) (LogEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.entries) {
		return LogEntry{}, false
	}
	return s.entries[i], true
}

// ShareText returns the export text for the entry at index i.
func (s *LogStore) ShareText(i int) (string, bool) {
	e, ok := s.Entry(i)
	if !ok {
		return "", false
	}
	return e.ShareText(), true
}

// Visibility returns whether a presentation surface is active.
func (s *LogStore) Visibility() Visibility {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibility
}

// SetVisibility sets the visibility flag directly, without invoking callbacks.
// Surfaces that manage their own lifecycle use this; everything else should
// go through RequestShow and RequestHide.
func (s *LogStore) SetVisibility(v Visibility) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visibility = v
}

// OnShow registers the callback run after a successful RequestShow.
// Only one callback is kept; nil clears it.
func (s *LogStore) OnShow(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onShow = fn
}

// OnHide registers the callback run after RequestHide.
// Only one callback is kept; nil clears it.
func (s *LogStore) OnHide(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onHide = fn
}

// RequestShow moves the store from Hidden to Shown and runs the show callback.
// It returns false, doing nothing, if the store is already Shown.
func (s *LogStore) RequestShow() bool {
	s.mu.Lock()
	if s.visibility == Shown {
		s.mu.Unlock()
		return false
	}
	s.visibility = Shown
	fn := s.onShow
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	return true
}

// RequestHide moves the store to Hidden and runs the hide callback.
// It always succeeds.
func (s *LogStore) RequestHide() {
	s.mu.Lock()
	s.visibility = Hidden
	fn := s.onHide
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// HandleEvent passes ev to the trigger gesture and requests the overlay when
// it is recognized. It reports whether the gesture was recognized, even when
// the overlay was already shown.
func (s *LogStore) HandleEvent(ev tcell.Event, width, height int) bool {
	g := s.Gesture()
	if g == nil || !g.Recognize(ev, width, height) {
		return false
	}
	s.RequestShow()
	return true
}
