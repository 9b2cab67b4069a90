package engine

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/history"
)

// Document is a buffer plus its undo log. It is the only write path into the
// buffer it owns.
type Document struct {
	mu sync.RWMutex

	id    uuid.UUID
	path  string
	buf   *buffer.Buffer
	log   *history.Log
	saved buffer.RevisionID

	readOnly    bool
	maxUndo     int
	initContent string
	logger      *slog.Logger
}

// New creates a document.
func New(opts ...Option) *Document {
	d := &Document{
		id:      uuid.New(),
		maxUndo: DefaultMaxUndoGroups,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.buf = buffer.NewFromString(d.initContent)
	d.initContent = ""
	d.log = history.New(d.maxUndo)
	d.saved = d.buf.Revision()
	d.logger = d.logger.With("component", "document", "doc", d.id.String())
	return d
}

// NewFromReader creates a document whose content is read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Document, error) {
	buf, err := buffer.NewFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	d := New(opts...)
	d.buf = buf
	d.saved = buf.Revision()
	return d, nil
}

// ID returns the document's unique identifier.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Path returns the file path the document is bound to, if any.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// SetPath binds the document to path.
func (d *Document) SetPath(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.path = path
}

// IsReadOnly returns true if mutations are refused.
func (d *Document) IsReadOnly() bool {
	return d.readOnly
}

// Reader returns the read-only view of the live text.
func (d *Document) Reader() buffer.Reader {
	return reader{d.buf}
}

// reader hides the concrete buffer so holders cannot type-assert their way
// to the write methods.
type reader struct {
	buffer.Reader
}

// Snapshot returns an immutable view of the current text.
func (d *Document) Snapshot() buffer.Snapshot {
	return d.buf.Snapshot()
}

// Text returns the full content.
func (d *Document) Text() string {
	return d.buf.Text()
}

// Len returns the byte length of the content.
func (d *Document) Len() int {
	return d.buf.Len()
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return d.buf.LineCount()
}

// LineText returns the text of line. It panics with *buffer.BoundsError if
// line does not exist.
func (d *Document) LineText(line int) string {
	return d.buf.LineText(line)
}

// Revision returns the buffer's current revision.
func (d *Document) Revision() buffer.RevisionID {
	return d.buf.Revision()
}

// Dirty reports whether the text changed since it was loaded or last saved.
func (d *Document) Dirty() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.buf.Revision() != d.saved
}

// MarkSaved records the current revision as the saved one.
func (d *Document) MarkSaved() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.saved = d.buf.Revision()
}

// WriteTo serialises the content to w, byte for byte.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.buf.WriteTo(w)
}

// Mutations

// Insert inserts text at offset and records the edit.
func (d *Document) Insert(offset int, text string) (buffer.Edit, error) {
	if d.readOnly {
		return buffer.Edit{}, ErrReadOnly
	}
	e, err := d.buf.Insert(offset, text)
	if err != nil {
		return buffer.Edit{}, fmt.Errorf("insert at %d: %w", offset, err)
	}
	d.log.Record(e)
	return e, nil
}

// Delete removes r and records the edit.
func (d *Document) Delete(r buffer.Range) (buffer.Edit, error) {
	if d.readOnly {
		return buffer.Edit{}, ErrReadOnly
	}
	e, err := d.buf.Delete(r)
	if err != nil {
		return buffer.Edit{}, fmt.Errorf("delete %s: %w", r, err)
	}
	d.log.Record(e)
	return e, nil
}

// Replace replaces [start, end) with text and records the edit.
func (d *Document) Replace(start, end int, text string) (buffer.Edit, error) {
	if d.readOnly {
		return buffer.Edit{}, ErrReadOnly
	}
	e, err := d.buf.Replace(start, end, text)
	if err != nil {
		return buffer.Edit{}, fmt.Errorf("replace [%d:%d): %w", start, end, err)
	}
	d.log.Record(e)
	return e, nil
}

// Undo groups

// BeginGroup opens an undo group; cursor is where the cursor was at the time.
func (d *Document) BeginGroup(name string, cursor buffer.Point) {
	d.log.BeginGroup(name, cursor)
}

// EndGroup closes the innermost undo group.
func (d *Document) EndGroup() {
	d.log.EndGroup()
}

// Scope opens an undo group and returns a handle whose End closes it.
func (d *Document) Scope(name string, cursor buffer.Point) *history.Scope {
	return d.log.Scope(name, cursor)
}

// CloseGroups commits any open undo group whatever its nesting depth.
func (d *Document) CloseGroups() {
	d.log.CloseAll()
}

// IsGrouping returns true while an undo group is open.
func (d *Document) IsGrouping() bool {
	return d.log.IsGrouping()
}

// Undo reverts the most recent group and returns where the cursor belongs.
// ErrNothingToUndo is a no-op report.
func (d *Document) Undo() (buffer.Point, error) {
	if d.readOnly {
		return buffer.Point{}, ErrReadOnly
	}
	off, err := d.log.Undo(d.buf)
	if err != nil {
		return buffer.Point{}, err
	}
	d.logger.Debug("undo", "offset", off, "remaining", d.log.UndoCount())
	return d.buf.PositionOf(min(off, d.buf.Len())), nil
}

// Redo re-applies the most recently undone group and returns where the
// cursor belongs. ErrNothingToRedo is a no-op report.
func (d *Document) Redo() (buffer.Point, error) {
	if d.readOnly {
		return buffer.Point{}, ErrReadOnly
	}
	off, err := d.log.Redo(d.buf)
	if err != nil {
		return buffer.Point{}, err
	}
	d.logger.Debug("redo", "offset", off, "remaining", d.log.RedoCount())
	return d.buf.PositionOf(min(off, d.buf.Len())), nil
}

// UndoCount returns the number of groups that can be undone.
func (d *Document) UndoCount() int {
	return d.log.UndoCount()
}
