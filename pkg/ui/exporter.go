package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
)

// Exporter hands the text of a single log entry to something outside the
// application. It returns a short description of where the text went.
type Exporter interface {
	Export(text string) (string, error)
}

// ClipboardExporter copies entries to the system clipboard.
type ClipboardExporter struct{}

// Export implements Exporter.
func (ClipboardExporter) Export(text string) (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("no clipboard utility available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return "", fmt.Errorf("writing to clipboard: %w", err)
	}
	return "clipboard", nil
}

// FileExporter writes each entry to its own file in Dir.
type FileExporter struct {
	Dir string
}

// Export implements Exporter.
func (e FileExporter) Export(text string) (string, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(e.Dir, "entry-"+uuid.NewString()+".txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}

// NewExporter returns the exporter for kind ("clipboard" or "file").
// dir is only used by the file exporter.
func NewExporter(kind, dir string) (Exporter, error) {
	switch strings.ToLower(kind) {
	case "", "clipboard":
		return ClipboardExporter{}, nil
	case "file":
		if dir == "" {
			dir = "."
		}
		return FileExporter{Dir: dir}, nil
	default:
		return nil, fmt.Errorf("unknown export target %q", kind)
	}
}
