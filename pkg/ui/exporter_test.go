package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileExporter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exp := FileExporter{Dir: dir}

	text := "2024-01-01 00:00:00 +0000\n\nhello"
	first, err := exp.Export(text)
	if err != nil {
		t.Fatalf("Export returned an unexpected error: %v", err)
	}
	second, err := exp.Export(text)
	if err != nil {
		t.Fatalf("Export returned an unexpected error: %v", err)
	}
	if first == second {
		t.Errorf("Expected each export to get its own file, both went to %s", first)
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("Failed to read exported file: %v", err)
	}
	if string(data) != text {
		t.Errorf("Expected file content %q, got %q", text, string(data))
	}
	if filepath.Dir(first) != dir || !strings.HasPrefix(filepath.Base(first), "entry-") {
		t.Errorf("Unexpected export path %s", first)
	}
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		kind     string
		dir      string
		expected Exporter
		err      bool
	}{
		{"", "", ClipboardExporter{}, false},
		{"Clipboard", "", ClipboardExporter{}, false},
		{"file", "out", FileExporter{Dir: "out"}, false},
		{"file", "", FileExporter{Dir: "."}, false},
		{"airdrop", "", nil, true},
	}
	for _, test := range tests {
		exp, err := NewExporter(test.kind, test.dir)
		if test.err {
			if err == nil {
				t.Errorf("Expected error for kind %q but got none", test.kind)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for kind %q: %v", test.kind, err)
			continue
		}
		if exp != test.expected {
			t.Errorf("For kind %q, expected %#v but got %#v", test.kind, test.expected, exp)
		}
	}
}

func TestFormatErrorChain(t *testing.T) {
	root := errors.New("permission denied")
	err := fmt.Errorf("sharing entry 3: %w", fmt.Errorf("writing export file: %w", root))

	got := formatErrorChain(err)
	want := "- sharing entry 3\n - writing export file\n  - permission denied"
	if got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}
