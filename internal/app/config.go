package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/rosdocgo/internal/export"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths    []string // declaration files or directories
	Packages []string // packages to render; empty means show requests, then all
	Format   string
	Output   string // file to write; empty means the app's writer

	LogFormat string
	LogLevel  string

	Strict        bool
	ExampleConfig bool
	Addr          string // preview server listen address
}

// DefaultAddr is the preview server address used when Config.Addr is empty.
const DefaultAddr = "localhost:8080"

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one declaration path is required")
	}

	if cfg.Format == "" {
		cfg.Format = export.FormatMarkdown
	}
	if !slices.Contains(export.Formats(), cfg.Format) {
		return nil, fmt.Errorf("invalid format %q: must be one of %v", cfg.Format, export.Formats())
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	return &cfg, nil
}
