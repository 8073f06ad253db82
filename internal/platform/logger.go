// Package platform holds host plumbing shared by the terminal front ends:
// logging, event reporting and held-key emulation.
package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions configures the game log.
type LogOptions struct {
	Path       string // Empty discards all output
	Level      string // debug, info, warn, error
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultLogOptions returns the rotation settings used by the CLI.
func DefaultLogOptions() LogOptions {
	return LogOptions{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

// NewLogger builds a logger that writes to a rotating file. The terminal
// belongs to the game, so nothing is ever written to stderr while playing.
// The returned closer must be closed on shutdown.
func NewLogger(opts LogOptions) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("platform: log level: %w", err)
	}

	var w io.WriteCloser = nopCloser{io.Discard}
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("platform: log dir: %w", err)
		}
		w = &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "birdjam",
		Level:           level,
	})
	return logger, w, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
