// Package logging builds the app's zerolog logger.
//
// The terminal belongs to the UI, so logs go to a file. When the file cannot
// be opened, logging is discarded rather than corrupting the screen.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultFile is used when no log file is configured.
const DefaultFile = "logs/app.log"

// Options selects where and how much to log.
type Options struct {
	File  string // path; DefaultFile when empty
	Level string // zerolog level name; "info" when empty or unknown
	Debug bool   // forces debug level
}

// New opens the log file and returns a logger writing to it along with a
// closer for the file. The closer is never nil.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	path := opts.File
	if path == "" {
		path = DefaultFile
	}
	level := ParseLevel(opts.Level)
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Discard(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Discard(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(f, level), f, nil
}

// NewWriter returns a timestamped logger writing JSON lines to w.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// NewConsole returns a human-readable logger for tools that own stderr.
func NewConsole(w io.Writer, level zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

// Discard returns a logger that drops everything.
func Discard() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
