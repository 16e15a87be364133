package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Qendolin/log-overlay/pkg/logging"
	"github.com/Qendolin/log-overlay/pkg/logstore"
)

func TestLoggerWritesLevelledLines(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewLogger()
	l.SetWriter(&buf)

	l.Infof("Main: started %d", 1)
	l.Warn("disk", "low")
	l.Errorf("boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	wantSuffix := []string{"INFO  Main: started 1", "WARN  disk low", "ERROR boom"}
	for i, line := range lines {
		if !strings.HasSuffix(line, wantSuffix[i]) {
			t.Errorf("Line %d: expected suffix %q, got %q", i, wantSuffix[i], line)
		}
	}

	warnings, errors := l.Counts()
	if warnings != 1 || errors != 1 {
		t.Errorf("Expected 1 warning and 1 error, got %d and %d", warnings, errors)
	}
}

func TestLoggerDebugGate(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewLogger()
	l.SetWriter(&buf)

	l.Debugf("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected debug output to be suppressed, got %q", buf.String())
	}

	l.SetDebug(true)
	l.Debug("visible")
	if !strings.Contains(buf.String(), "DEBUG visible") {
		t.Errorf("Expected debug output when enabled, got %q", buf.String())
	}
}

func TestLoggerMirrorsIntoStore(t *testing.T) {
	store := logstore.New()
	l := logging.NewLogger()
	l.SetMirror(store)

	l.Infof("App: ready")
	l.Debugf("not mirrored while debug is off")
	l.Errorf("App: failed: %v", "reason")

	entries := store.Snapshot()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 mirrored entries, got %d", len(entries))
	}
	if entries[0].Message != "INFO  App: ready" {
		t.Errorf("Unexpected first entry %q", entries[0].Message)
	}
	if entries[1].Message != "ERROR App: failed: reason" {
		t.Errorf("Unexpected second entry %q", entries[1].Message)
	}

	l.SetMirror(nil)
	l.Infof("after detaching")
	if store.Len() != 2 {
		t.Errorf("Expected no mirroring after SetMirror(nil), got %d entries", store.Len())
	}
}
