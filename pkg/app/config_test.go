package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Qendolin/log-overlay/pkg/gesture"
	"github.com/Qendolin/log-overlay/pkg/ui"
	"github.com/gdamore/tcell/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestParseArgs(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	args, err := parseArgs(fs, []string{"-verbose", "-title", "Debug", "-gesture", "key:f12", "-heartbeat", "0"})
	if err != nil {
		t.Fatalf("parseArgs returned an unexpected error: %v", err)
	}
	if !args.Verbose || args.Title != "Debug" || args.Gesture != "key:f12" || args.Heartbeat != "0" {
		t.Errorf("Unexpected parsed args: %+v", args)
	}
	if args.LogDir != "." {
		t.Errorf("Expected default log dir '.', got %q", args.LogDir)
	}
}

func TestLoadOverlayConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"JSON5", "overlay.json5", `{
			// comments and trailing commas are fine
			title: 'Console',
			gesture: "key:ctrl+l",
			export: "file",
			export_dir: "shared",
			heartbeat: "2s",
		}`},
		{"YAML", "overlay.yaml", "title: Console\ngesture: key:ctrl+l\nexport: file\nexport_dir: shared\nheartbeat: 2s\n"},
	}

	want := OverlayConfig{Title: "Console", Gesture: "key:ctrl+l", Export: "file", ExportDir: "shared", Heartbeat: "2s"}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadOverlayConfig(writeFile(t, tc.file, tc.content))
			if err != nil {
				t.Fatalf("LoadOverlayConfig returned an unexpected error: %v", err)
			}
			if *cfg != want {
				t.Errorf("Expected %+v, got %+v", want, *cfg)
			}
		})
	}

	t.Run("Unsupported_Extension", func(t *testing.T) {
		if _, err := LoadOverlayConfig(writeFile(t, "overlay.toml", "title = 'x'")); err == nil {
			t.Errorf("Expected an error for a .toml file")
		}
	})
	t.Run("Missing_File", func(t *testing.T) {
		if _, err := LoadOverlayConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Errorf("Expected an error for a missing file")
		}
	})
	t.Run("Malformed", func(t *testing.T) {
		if _, err := LoadOverlayConfig(writeFile(t, "bad.json", "{title: ")); err == nil {
			t.Errorf("Expected an error for malformed JSON5")
		}
	})
}

func TestResolveSettingsDefaults(t *testing.T) {
	s, err := ResolveSettings(&CLIArgs{})
	if err != nil {
		t.Fatalf("ResolveSettings returned an unexpected error: %v", err)
	}
	if s.Title != "" {
		t.Errorf("Expected empty title so the store default applies, got %q", s.Title)
	}
	if _, ok := s.Gesture.(*gesture.EdgeSwipe); !ok {
		t.Errorf("Expected the default edge swipe, got %T", s.Gesture)
	}
	if _, ok := s.Exporter.(ui.ClipboardExporter); !ok {
		t.Errorf("Expected the clipboard exporter, got %T", s.Exporter)
	}
	if s.Heartbeat != defaultHeartbeat {
		t.Errorf("Expected default heartbeat %s, got %s", defaultHeartbeat, s.Heartbeat)
	}
}

func TestResolveSettingsFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "overlay.yml", "title: From File\ngesture: key:f1\nexport: file\nexport_dir: out\nheartbeat: 3s\n")
	s, err := ResolveSettings(&CLIArgs{ConfigPath: path, Title: "From Flag", Heartbeat: "0"})
	if err != nil {
		t.Fatalf("ResolveSettings returned an unexpected error: %v", err)
	}
	if s.Title != "From Flag" {
		t.Errorf("Expected flag title to win, got %q", s.Title)
	}
	if s.Heartbeat != 0 {
		t.Errorf("Expected heartbeat disabled by flag, got %s", s.Heartbeat)
	}
	if exp, ok := s.Exporter.(ui.FileExporter); !ok || exp.Dir != "out" {
		t.Errorf("Expected file exporter into 'out', got %#v", s.Exporter)
	}
	if !s.Gesture.Recognize(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), 80, 24) {
		t.Errorf("Expected gesture from file to trigger on F1")
	}
}

func TestResolveSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		args CLIArgs
	}{
		{"Bad_Gesture", CLIArgs{Gesture: "wave"}},
		{"Bad_Export", CLIArgs{Export: "printer"}},
		{"Bad_Heartbeat", CLIArgs{Heartbeat: "often"}},
		{"Negative_Heartbeat", CLIArgs{Heartbeat: "-1s"}},
		{"Missing_Config", CLIArgs{ConfigPath: "/nonexistent/overlay.json"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ResolveSettings(&tc.args); err == nil {
				t.Errorf("Expected an error for %+v", tc.args)
			}
		})
	}
}

func TestParseInterval(t *testing.T) {
	if d, err := parseInterval("1m30s"); err != nil || d != 90*time.Second {
		t.Errorf("Expected 90s, got %s (err=%v)", d, err)
	}
}
