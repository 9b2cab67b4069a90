package engine

import (
	"log/slog"

	"github.com/dshills/vicore/internal/engine/history"
)

// DefaultMaxUndoGroups is the undo depth when none is configured.
const DefaultMaxUndoGroups = history.DefaultMaxGroups

// Option configures a Document during creation.
type Option func(*Document)

// WithContent sets the initial content of the document.
func WithContent(content string) Option {
	return func(d *Document) {
		d.initContent = content
	}
}

// WithPath binds the document to a file path.
func WithPath(path string) Option {
	return func(d *Document) {
		d.path = path
	}
}

// WithMaxUndoGroups sets the maximum number of undo groups kept.
func WithMaxUndoGroups(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.maxUndo = n
		}
	}
}

// WithReadOnly creates a read-only document.
// Mutations return ErrReadOnly.
func WithReadOnly() Option {
	return func(d *Document) {
		d.readOnly = true
	}
}

// WithLogger sets the logger used for document events.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}
