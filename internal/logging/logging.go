// Package logging configures the slog logger shared by vicore's components.
//
// The terminal owns stdout and stderr while the editor runs, so log records go
// to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config selects the log level and destination.
type Config struct {
	// Level is one of debug, info, warn or error. Unknown names mean info.
	Level string

	// File is the path records are appended to. Empty discards output.
	File string
}

// Logger is an slog logger whose level can change after setup.
type Logger struct {
	*slog.Logger

	level  *slog.LevelVar
	closer io.Closer
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger for cfg. The log file is created if needed and
// opened for appending.
func New(cfg Config) (*Logger, error) {
	var out io.Writer = io.Discard
	var closer io.Closer
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out, closer = f, f
	}

	l := NewWithWriter(out, ParseLevel(cfg.Level))
	l.closer = closer
	return l, nil
}

// NewWithWriter creates a logger writing text records to w.
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	lv := new(slog.LevelVar)
	lv.Set(level)

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       lv,
		AddSource:   true,
		ReplaceAttr: replaceAttr,
	})
	return &Logger{Logger: slog.New(h), level: lv}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return NewWithWriter(io.Discard, slog.LevelError)
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.SourceKey:
		if src, ok := a.Value.Any().(*slog.Source); ok {
			src.File = filepath.Base(src.File)
		}
	case slog.TimeKey:
		a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
	}
	return a
}

// SetLevel changes the minimum level of records written.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Level returns the current minimum level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// Component returns a child logger tagged with the component name.
func (l *Logger) Component(name string) *slog.Logger {
	return l.With("component", name)
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
