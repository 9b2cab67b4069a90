package buffer

import (
	"io"
	"iter"
	"unicode/utf8"

	"github.com/dshills/vicore/internal/engine/rope"
)

// Reader is the read-only capability over document text. The cursor model
// and the renderer only ever see a Reader, never the Buffer itself.
type Reader interface {
	Len() int
	LineCount() int
	LineText(line int) string
	LineLen(line int) int
	LineStart(line int) int
	OffsetOf(p Point) int
	PositionOf(offset int) Point
	Slice(start, end int) string
	RuneAt(offset int) (rune, int)
	Lines(from, to int) iter.Seq2[int, string]
}

// Snapshot is an immutable view of a buffer at one revision. It stays valid
// and unchanged no matter what happens to the buffer afterwards.
type Snapshot struct {
	rope     rope.Rope
	revision RevisionID
}

var _ Reader = Snapshot{}

// Revision returns the revision the snapshot was taken at.
func (s Snapshot) Revision() RevisionID {
	return s.revision
}

// Len returns the byte length of the text.
func (s Snapshot) Len() int {
	return s.rope.Len()
}

// IsEmpty returns true if the text is empty.
func (s Snapshot) IsEmpty() bool {
	return s.rope.IsEmpty()
}

// LineCount returns the number of lines. An empty text has one line.
func (s Snapshot) LineCount() int {
	return s.rope.LineCount()
}

// Text returns the full content.
func (s Snapshot) Text() string {
	return s.rope.String()
}

// LineText returns the text of line without its newline.
func (s Snapshot) LineText(line int) string {
	s.checkLine("LineText", line)
	return s.rope.LineText(line)
}

// LineLen returns the byte length of line without its newline.
func (s Snapshot) LineLen(line int) int {
	s.checkLine("LineLen", line)
	return s.rope.LineEnd(line) - s.rope.LineStart(line)
}

// LineStart returns the offset of the first byte of line.
func (s Snapshot) LineStart(line int) int {
	s.checkLine("LineStart", line)
	return s.rope.LineStart(line)
}

// LineEnd returns the offset just before the newline ending line.
func (s Snapshot) LineEnd(line int) int {
	s.checkLine("LineEnd", line)
	return s.rope.LineEnd(line)
}

// OffsetOf converts a valid point to an offset.
func (s Snapshot) OffsetOf(p Point) int {
	if err := s.CheckPoint(p); err != nil {
		panic(pointBounds("OffsetOf", p, s.rope.LineCount()))
	}
	return s.rope.LineStart(p.Line) + p.Column
}

// PositionOf converts an offset in [0, Len] to a point.
func (s Snapshot) PositionOf(offset int) Point {
	if err := s.CheckOffset(offset); err != nil {
		panic(offsetBounds("PositionOf", offset, s.rope.Len()))
	}
	p := s.rope.OffsetToPoint(offset)
	return Point{Line: p.Line, Column: p.Column}
}

// CheckPoint reports whether p addresses a position in the text. The column
// just past the last byte of a line is valid.
func (s Snapshot) CheckPoint(p Point) error {
	if p.Line < 0 || p.Line >= s.rope.LineCount() || p.Column < 0 {
		return pointBounds("CheckPoint", p, s.rope.LineCount())
	}
	if n := s.rope.LineEnd(p.Line) - s.rope.LineStart(p.Line); p.Column > n {
		return pointBounds("CheckPoint", p, n)
	}
	return nil
}

// CheckOffset reports whether offset lies in [0, Len].
func (s Snapshot) CheckOffset(offset int) error {
	if offset < 0 || offset > s.rope.Len() {
		return offsetBounds("CheckOffset", offset, s.rope.Len())
	}
	return nil
}

// Slice returns the text in [start, end).
func (s Snapshot) Slice(start, end int) string {
	if start < 0 || end > s.rope.Len() || start > end {
		panic(&BoundsError{Op: "Slice", Offset: max(start, end), Limit: s.rope.Len()})
	}
	return s.rope.Slice(start, end)
}

// ByteAt returns the byte at offset and whether it exists.
func (s Snapshot) ByteAt(offset int) (byte, bool) {
	return s.rope.ByteAt(offset)
}

// RuneAt decodes the rune starting at offset. It returns (utf8.RuneError, 0)
// at or past the end of the text.
func (s Snapshot) RuneAt(offset int) (rune, int) {
	if offset < 0 || offset >= s.rope.Len() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.rope.Slice(offset, offset+utf8.UTFMax))
}

// Lines enumerates lines in [from, to) with their index. The bounds are
// clamped to the text, so a renderer can ask for a full window near the end.
func (s Snapshot) Lines(from, to int) iter.Seq2[int, string] {
	from = max(from, 0)
	to = min(to, s.rope.LineCount())
	return func(yield func(int, string) bool) {
		for line := from; line < to; line++ {
			if !yield(line, s.rope.LineText(line)) {
				return
			}
		}
	}
}

// WriteTo serialises the full text to w.
func (s Snapshot) WriteTo(w io.Writer) (int64, error) {
	return s.rope.WriteTo(w)
}

func (s Snapshot) checkLine(op string, line int) {
	if line < 0 || line >= s.rope.LineCount() {
		panic(pointBounds(op, Point{Line: line}, s.rope.LineCount()))
	}
}
