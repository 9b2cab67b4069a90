package editor

import (
	"iter"

	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/cursor"
)

// View is an immutable picture of the editor for rendering. It holds a
// snapshot of the text, so it stays consistent while the editor moves on.
type View struct {
	Mode         Mode
	Cursor       buffer.Point
	Cursors      []buffer.Point
	Selection    cursor.Selection
	HasSelection bool
	Pending      string
	Message      string
	Dirty        bool
	Path         string
	Revision     buffer.RevisionID

	text buffer.Snapshot
}

// View captures the current state.
func (e *Editor) View() View {
	sel, ok := e.cur.Selection()
	return View{
		Mode:         e.Mode(),
		Cursor:       e.cur.Position(),
		Cursors:      e.cur.Cursors(),
		Selection:    sel,
		HasSelection: ok,
		Pending:      e.parser.Pending(),
		Message:      e.message,
		Dirty:        e.doc.Dirty(),
		Path:         e.doc.Path(),
		Revision:     e.doc.Revision(),
		text:         e.doc.Snapshot(),
	}
}

// Text returns the text the view was taken of.
func (v View) Text() buffer.Reader {
	return v.text
}

// LineCount returns the number of lines.
func (v View) LineCount() int {
	return v.text.LineCount()
}

// Lines iterates over lines from..to-1.
func (v View) Lines(from, to int) iter.Seq2[int, string] {
	return v.text.Lines(from, to)
}
