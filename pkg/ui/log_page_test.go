package ui

import (
	"sync"
	"testing"
	"time"

	"github.com/Qendolin/log-overlay/pkg/logging"
	"github.com/Qendolin/log-overlay/pkg/logstore"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// fakeApp satisfies AppInterface without a running tview application.
type fakeApp struct {
	mu       sync.Mutex
	store    *logstore.LogStore
	exporter Exporter
}

func (f *fakeApp) QueueUpdateDraw(fn func()) *tview.Application {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn()
	return nil
}
func (f *fakeApp) Stop()                                       {}
func (f *fakeApp) Navigation() *NavigationManager              { return nil }
func (f *fakeApp) Dialogs() *DialogManager                     { return nil }
func (f *fakeApp) Layout() *LayoutManager                      { return nil }
func (f *fakeApp) GetFocus() tview.Primitive                   { return nil }
func (f *fakeApp) SetFocus(tview.Primitive) *tview.Application { return nil }
func (f *fakeApp) GetLogger() *logging.Logger                  { return nil }
func (f *fakeApp) GetStore() *logstore.LogStore                { return f.store }
func (f *fakeApp) GetExporter() Exporter                       { return f.exporter }

// recordingExporter remembers what it was given.
type recordingExporter struct {
	texts []string
}

func (r *recordingExporter) Export(text string) (string, error) {
	r.texts = append(r.texts, text)
	return "memory", nil
}

func sendKey(p tview.Primitive, key tcell.Key, ch rune) {
	p.InputHandler()(tcell.NewEventKey(key, ch, tcell.ModNone), func(tview.Primitive) {})
}

func newTestStore(messages ...string) *logstore.LogStore {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	s := logstore.New(logstore.WithClock(func() time.Time { return ts }))
	for _, m := range messages {
		s.Append(m)
	}
	return s
}

func TestRowText(t *testing.T) {
	e := logstore.LogEntry{Message: "line one\nline two\n", Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	ts, msg := RowText(e)
	if ts != "2024-01-02 03:04:05 +0000" {
		t.Errorf("Unexpected timestamp cell %q", ts)
	}
	if msg != "line one ⏎ line two" {
		t.Errorf("Unexpected message cell %q", msg)
	}
}

func TestLogPageShowsSnapshot(t *testing.T) {
	store := newTestStore("a", "b", "c")
	app := &fakeApp{store: store}

	page := NewLogPage(app)
	store.Append("appended after the page opened")

	if got := len(page.Entries()); got != 3 {
		t.Fatalf("Expected page to hold a snapshot of 3 entries, got %d", got)
	}
	if rows := page.table.GetRowCount(); rows != 3 {
		t.Errorf("Expected 3 table rows, got %d", rows)
	}
	if row, _ := page.table.GetSelection(); row != 2 {
		t.Errorf("Expected the newest entry to be selected, got row %d", row)
	}
	if cell := page.table.GetCell(1, 1); cell.Text != "b" {
		t.Errorf("Expected second row message %q, got %q", "b", cell.Text)
	}
}

func TestLogPageShareSelected(t *testing.T) {
	store := newTestStore("first", "second")
	exp := &recordingExporter{}
	page := NewLogPage(&fakeApp{store: store, exporter: exp})

	sendKey(page, tcell.KeyRune, 's')
	page.table.Select(0, 0)
	sendKey(page, tcell.KeyRune, 'S')

	want := []string{
		"2024-05-06 07:08:09 +0000\n\nsecond",
		"2024-05-06 07:08:09 +0000\n\nfirst",
	}
	if len(exp.texts) != len(want) {
		t.Fatalf("Expected %d exports, got %d", len(want), len(exp.texts))
	}
	for i := range want {
		if exp.texts[i] != want[i] {
			t.Errorf("Export %d: expected %q, got %q", i, want[i], exp.texts[i])
		}
	}
}

func TestLogPageEmpty(t *testing.T) {
	exp := &recordingExporter{}
	page := NewLogPage(&fakeApp{store: newTestStore(), exporter: exp})

	if rows := page.table.GetRowCount(); rows != 1 {
		t.Errorf("Expected a single placeholder row, got %d", rows)
	}
	sendKey(page, tcell.KeyRune, 's')
	if len(exp.texts) != 0 {
		t.Errorf("Expected nothing to be exported from an empty list, got %q", exp.texts)
	}
}

func TestLogPageEscapeDismisses(t *testing.T) {
	store := newTestStore("x")
	hidden := 0
	store.OnHide(func() { hidden++ })
	store.RequestShow()

	page := NewLogPage(&fakeApp{store: store})
	sendKey(page, tcell.KeyEscape, 0)

	if store.Visibility() != logstore.Hidden {
		t.Errorf("Expected Esc to hide the overlay, visibility is %v", store.Visibility())
	}
	if hidden != 1 {
		t.Errorf("Expected one hide callback, got %d", hidden)
	}
}

func TestDemoPageBurst(t *testing.T) {
	store := newTestStore()
	page := NewDemoPage(&fakeApp{store: store})

	page.addEntry()
	page.burst()

	deadline := time.Now().Add(5 * time.Second)
	for store.Len() < 1+burstWriters*burstPerWriter {
		if time.Now().After(deadline) {
			t.Fatalf("Timed out waiting for burst, have %d entries", store.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := store.Len(); got != 1+burstWriters*burstPerWriter {
		t.Errorf("Expected exactly %d entries, got %d", 1+burstWriters*burstPerWriter, got)
	}
	if e, _ := store.Entry(0); e.Message != "Button pressed 1 time(s)" {
		t.Errorf("Unexpected first entry %q", e.Message)
	}
}

func TestDemoPageShowLogs(t *testing.T) {
	store := newTestStore()
	shows := 0
	store.OnShow(func() { shows++ })
	page := NewDemoPage(&fakeApp{store: store})

	page.showLogs()
	page.showLogs()
	if shows != 1 || store.Visibility() != logstore.Shown {
		t.Errorf("Expected a single show, got %d shows and visibility %v", shows, store.Visibility())
	}
}
