package editor

import (
	"log/slog"

	"github.com/dshills/vicore/internal/engine/cursor"
	"github.com/dshills/vicore/internal/input/key"
	"github.com/dshills/vicore/internal/input/vim"
)

// Settings are the editing options that change how text is inserted.
type Settings struct {
	TabWidth    int
	IndentWidth int
	ExpandTab   bool
	AutoIndent  bool
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		TabWidth:    cursor.DefaultTabWidth,
		IndentWidth: 4,
		ExpandTab:   true,
		AutoIndent:  true,
	}
}

// Option configures an Editor.
type Option func(*Editor)

// WithSettings sets the editing options. Non-positive widths keep their
// defaults.
func WithSettings(s Settings) Option {
	return func(e *Editor) {
		if s.TabWidth <= 0 {
			s.TabWidth = e.settings.TabWidth
		}
		if s.IndentWidth <= 0 {
			s.IndentWidth = e.settings.IndentWidth
		}
		e.settings = s
	}
}

// WithRegisters shares a register store between editors.
func WithRegisters(rs *vim.RegisterStore) Option {
	return func(e *Editor) {
		if rs != nil {
			e.regs = rs
		}
	}
}

// WithClipboard backs the + and * registers with the system clipboard.
func WithClipboard(c vim.ClipboardProvider) Option {
	return func(e *Editor) {
		e.clipboard = c
	}
}

// WithRemap maps a single Normal-mode key to a key sequence. The
// replacement keys are not remapped again.
func WithRemap(from key.Event, to []key.Event) Option {
	return func(e *Editor) {
		if len(to) == 0 {
			return
		}
		if e.remaps == nil {
			e.remaps = make(map[key.Event][]key.Event)
		}
		e.remaps[from] = to
	}
}

// WithLogger sets the logger for editor events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}
