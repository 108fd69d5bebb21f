// Package logging builds the hclog logger shared by the generator, the
// session driver and the CLI. The TUI owns stdout, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name
const Name = "usernamer"

// Options configures New
type Options struct {
	// File is the log destination. Empty means DefaultFile().
	File string
	// Level is an hclog level name such as "debug" or "warn".
	Level string
	// Output overrides File when set.
	Output io.Writer
}

// DefaultFile returns the log path used when none is configured
func DefaultFile() string {
	return filepath.Join(os.TempDir(), "usernamer.log")
}

// New returns a logger and a close function for its file, if any.
// A level of "off" returns a null logger.
func New(opts Options) (hclog.Logger, func() error, error) {
	level := hclog.LevelFromString(opts.Level)
	if opts.Level == "off" {
		return hclog.NewNullLogger(), noopClose, nil
	}
	if level == hclog.NoLevel {
		level = hclog.Info
	}

	out := opts.Output
	closeFn := noopClose
	if out == nil {
		path := opts.File
		if path == "" {
			path = DefaultFile()
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Level:  level,
		Output: out,
	})
	return logger, closeFn, nil
}

func noopClose() error { return nil }
