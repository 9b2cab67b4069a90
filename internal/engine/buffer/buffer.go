package buffer

import (
	"io"
	"iter"
	"sync"

	"github.com/dshills/vicore/internal/engine/rope"
)

// Buffer is the mutable document text. Reads may happen from any goroutine;
// the editor performs all writes from one goroutine.
type Buffer struct {
	mu       sync.RWMutex
	rope     rope.Rope
	revision RevisionID
}

var _ Reader = (*Buffer)(nil)

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{revision: NewRevisionID()}
}

// NewFromString creates a buffer holding s verbatim.
func NewFromString(s string) *Buffer {
	return &Buffer{rope: rope.FromString(s), revision: NewRevisionID()}
}

// NewFromReader creates a buffer from everything readable from r.
func NewFromReader(r io.Reader) (*Buffer, error) {
	rp, err := rope.FromReader(r)
	if err != nil {
		return nil, err
	}
	return &Buffer{rope: rp, revision: NewRevisionID()}, nil
}

// Snapshot returns an immutable view of the current text.
func (b *Buffer) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{rope: b.rope, revision: b.revision}
}

// Revision returns the current revision ID.
func (b *Buffer) Revision() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// Read operations

func (b *Buffer) Len() int { return b.Snapshot().Len() }
func (b *Buffer) IsEmpty() bool { return b.Snapshot().IsEmpty() }
func (b *Buffer) LineCount() int { return b.Snapshot().LineCount() }
func (b *Buffer) Text() string { return b.Snapshot().Text() }
func (b *Buffer) LineText(line int) string { return b.Snapshot().LineText(line) }
func (b *Buffer) LineLen(line int) int { return b.Snapshot().LineLen(line) }
func (b *Buffer) LineStart(line int) int { return b.Snapshot().LineStart(line) }
func (b *Buffer) LineEnd(line int) int { return b.Snapshot().LineEnd(line) }
func (b *Buffer) OffsetOf(p Point) int { return b.Snapshot().OffsetOf(p) }
func (b *Buffer) PositionOf(offset int) Point { return b.Snapshot().PositionOf(offset) }
func (b *Buffer) CheckPoint(p Point) error { return b.Snapshot().CheckPoint(p) }
func (b *Buffer) CheckOffset(offset int) error { return b.Snapshot().CheckOffset(offset) }
func (b *Buffer) Slice(start, end int) string { return b.Snapshot().Slice(start, end) }
func (b *Buffer) ByteAt(offset int) (byte, bool) { return b.Snapshot().ByteAt(offset) }
func (b *Buffer) RuneAt(offset int) (rune, int) { return b.Snapshot().RuneAt(offset) }
func (b *Buffer) Lines(from, to int) iter.Seq2[int, string] { return b.Snapshot().Lines(from, to) }

// WriteTo serialises the full text to w. The bytes written are exactly the
// bytes held, so a save followed by a load reproduces the buffer.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	return b.Snapshot().WriteTo(w)
}

// Write operations

// Insert inserts text at offset and returns the applied edit.
func (b *Buffer) Insert(offset int, text string) (Edit, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > b.rope.Len() {
		return Edit{}, ErrOffsetOutOfRange
	}
	e := NewInsert(offset, text)
	b.apply(e)
	return e, nil
}

// Delete removes the text in r and returns the applied edit.
func (b *Buffer) Delete(r Range) (Edit, error) {
	return b.Replace(r.Start, r.End, "")
}

// Replace replaces [start, end) with text and returns the applied edit.
func (b *Buffer) Replace(start, end int, text string) (Edit, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > b.rope.Len() {
		return Edit{}, ErrRangeInvalid
	}
	e := Edit{
		Range:   Range{Start: start, End: end},
		OldText: b.rope.Slice(start, end),
		NewText: text,
	}
	b.apply(e)
	return e, nil
}

// Apply applies a previously produced edit, typically an inverse from the
// undo log. The text in e.Range must equal e.OldText.
func (b *Buffer) Apply(e Edit) (Edit, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !e.Range.IsValid() || e.Range.End > b.rope.Len() {
		return Edit{}, ErrRangeInvalid
	}
	if b.rope.Slice(e.Range.Start, e.Range.End) != e.OldText {
		return Edit{}, ErrStaleEdit
	}
	b.apply(e)
	return e, nil
}

func (b *Buffer) apply(e Edit) {
	if e.IsNoOp() && e.Range.IsEmpty() {
		return
	}
	b.rope = b.rope.Replace(e.Range.Start, e.Range.End, e.NewText)
	b.revision = NewRevisionID()
}
