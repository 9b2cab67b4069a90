package rope

import (
	"io"
	"iter"
	"strings"
)

// Rope is an immutable text rope. The zero value is an empty rope.
type Rope struct {
	root *node
}

// New returns an empty rope.
func New() Rope {
	return Rope{}
}

// FromString builds a balanced rope holding s.
func FromString(s string) Rope {
	return Rope{root: build(s)}
}

// FromReader builds a rope from everything readable from r.
func FromReader(r io.Reader) (Rope, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return Rope{}, err
	}
	return FromString(sb.String()), nil
}

// Len returns the byte length of the text.
func (r Rope) Len() int {
	return sumOf(r.root).bytes
}

// IsEmpty reports whether the rope holds no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	return sumOf(r.root).lines + 1
}

// Height returns the tree height; an empty rope has height 0.
func (r Rope) Height() int {
	return height(r.root) + 1
}

// String returns the full text. Prefer Slice or Chunks for large ropes.
func (r Rope) String() string {
	return r.Slice(0, r.Len())
}

// Slice returns the text in [start, end). Out-of-range bounds are clamped.
func (r Rope) Slice(start, end int) string {
	start = max(start, 0)
	end = min(end, r.Len())
	if start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// ByteAt returns the byte at off and whether off was in range.
func (r Rope) ByteAt(off int) (byte, bool) {
	if off < 0 || off >= r.Len() {
		return 0, false
	}
	return r.root.byteAt(off), true
}

// Insert returns a rope with text inserted at off. off is clamped to [0, Len].
func (r Rope) Insert(off int, text string) Rope {
	if text == "" {
		return r
	}
	off = min(max(off, 0), r.Len())
	left, right := split(r.root, off)
	return Rope{root: join(join(left, build(text)), right)}
}

// Delete returns a rope with [start, end) removed. Bounds are clamped.
func (r Rope) Delete(start, end int) Rope {
	start = max(start, 0)
	end = min(end, r.Len())
	if start >= end {
		return r
	}
	left, rest := split(r.root, start)
	_, right := split(rest, end-start)
	return Rope{root: join(left, right)}
}

// Replace returns a rope with [start, end) replaced by text.
func (r Rope) Replace(start, end int, text string) Rope {
	return r.Delete(start, end).Insert(start, text)
}

// LineStart returns the offset of the first byte of line. Lines past the end
// map to Len.
func (r Rope) LineStart(line int) int {
	if line <= 0 || r.root == nil {
		return 0
	}
	if line > r.root.sum.lines {
		return r.Len()
	}
	return r.root.afterNewline(line)
}

// LineEnd returns the offset of the end of line, excluding its newline.
func (r Rope) LineEnd(line int) int {
	if r.root == nil {
		return 0
	}
	if line < 0 {
		return 0
	}
	if line >= r.root.sum.lines {
		return r.Len()
	}
	return r.root.afterNewline(line+1) - 1
}

// LineText returns the text of line without its newline.
func (r Rope) LineText(line int) string {
	return r.Slice(r.LineStart(line), r.LineEnd(line))
}

// OffsetToPoint converts a byte offset to a line/column. Offsets past the end
// map to the end of the last line.
func (r Rope) OffsetToPoint(off int) Point {
	off = min(max(off, 0), r.Len())
	if r.root == nil {
		return Point{}
	}
	line := r.root.newlinesBefore(off)
	return Point{Line: line, Column: off - r.LineStart(line)}
}

// PointToOffset converts a line/column to a byte offset. Columns past the end
// of the line clamp to the line end.
func (r Rope) PointToOffset(p Point) int {
	start := r.LineStart(p.Line)
	end := r.LineEnd(p.Line)
	if p.Column >= end-start {
		return end
	}
	return start + max(p.Column, 0)
}

// Chunks iterates over the leaf chunks in document order.
func (r Rope) Chunks() iter.Seq[string] {
	return func(yield func(string) bool) {
		r.root.walk(yield)
	}
}

// WriteTo writes the full text to w without materialising it as one string.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for chunk := range r.Chunks() {
		n, err := io.WriteString(w, chunk)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
