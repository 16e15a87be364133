package app

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Qendolin/log-overlay/pkg/gesture"
	"github.com/Qendolin/log-overlay/pkg/ui"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"
)

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	Verbose    bool
	LogDir     string
	ConfigPath string
	Title      string
	Gesture    string
	Export     string
	ExportDir  string
	Heartbeat  string
}

// ParseCLIArgs parses the command-line flags and returns a populated CLIArgs struct.
func ParseCLIArgs() *CLIArgs {
	args, _ := parseArgs(flag.CommandLine, os.Args[1:])
	return args
}

func parseArgs(fs *flag.FlagSet, argv []string) (*CLIArgs, error) {
	args := &CLIArgs{}

	fs.BoolVar(&args.Verbose, "verbose", false, "Enable verbose (debug) logging.")
	fs.StringVar(&args.LogDir, "log-dir", ".", "Specifies the directory to store log files.")
	fs.StringVar(&args.ConfigPath, "config", "", "Overlay config file (.json, .json5, .yaml or .yml).")
	fs.StringVar(&args.Title, "title", "", "Title shown at the top of the log overlay.")
	fs.StringVar(&args.Gesture, "gesture", "", "Gesture that opens the overlay, e.g. 'edge-swipe:right' or 'key:ctrl+l'.")
	fs.StringVar(&args.Export, "export", "", "Where shared entries go: 'clipboard' or 'file'.")
	fs.StringVar(&args.ExportDir, "export-dir", "", "Directory for shared entries when -export=file.")
	fs.StringVar(&args.Heartbeat, "heartbeat", "", "Interval for demo heartbeat entries, e.g. '5s'. '0' disables them.")
	err := fs.Parse(argv)

	return args, err
}

// OverlayConfig is the optional config file. Every field may be omitted.
type OverlayConfig struct {
	Title     string `json:"title" yaml:"title"`
	Gesture   string `json:"gesture" yaml:"gesture"`
	Export    string `json:"export" yaml:"export"`
	ExportDir string `json:"export_dir" yaml:"export_dir"`
	Heartbeat string `json:"heartbeat" yaml:"heartbeat"`
}

// LoadOverlayConfig reads an overlay config file. The format is chosen by
// extension: JSON5 for .json and .json5, YAML for .yaml and .yml.
func LoadOverlayConfig(path string) (*OverlayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &OverlayConfig{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".json5":
		err = json5.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

const defaultHeartbeat = 10 * time.Second

// Settings is the resolved configuration the App runs with.
type Settings struct {
	Title     string
	Gesture   gesture.Recognizer
	Exporter  ui.Exporter
	Heartbeat time.Duration
}

// ResolveSettings merges the config file named in args (if any) with the
// flags. Flags win over the file.
func ResolveSettings(args *CLIArgs) (*Settings, error) {
	cfg := &OverlayConfig{}
	if args.ConfigPath != "" {
		loaded, err := LoadOverlayConfig(args.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	title := firstNonEmpty(args.Title, cfg.Title)
	gestureSpec := firstNonEmpty(args.Gesture, cfg.Gesture)
	exportKind := firstNonEmpty(args.Export, cfg.Export)
	exportDir := firstNonEmpty(args.ExportDir, cfg.ExportDir)
	heartbeat := firstNonEmpty(args.Heartbeat, cfg.Heartbeat)

	recognizer, err := gesture.Parse(gestureSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid gesture: %w", err)
	}
	exporter, err := ui.NewExporter(exportKind, exportDir)
	if err != nil {
		return nil, fmt.Errorf("invalid export setting: %w", err)
	}

	interval := defaultHeartbeat
	if heartbeat != "" {
		if interval, err = parseInterval(heartbeat); err != nil {
			return nil, fmt.Errorf("invalid heartbeat: %w", err)
		}
	}

	return &Settings{
		Title:     title,
		Gesture:   recognizer,
		Exporter:  exporter,
		Heartbeat: interval,
	}, nil
}

func parseInterval(s string) (time.Duration, error) {
	if s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative interval %s", d)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
