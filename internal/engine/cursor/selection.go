package cursor

import (
	"fmt"

	"github.com/dshills/vicore/internal/engine/buffer"
)

// SelectionKind is the granularity of a selection.
type SelectionKind uint8

const (
	SelectChar SelectionKind = iota
	SelectLine
	SelectBlock
)

// String returns the kind name.
func (k SelectionKind) String() string {
	switch k {
	case SelectChar:
		return "char"
	case SelectLine:
		return "line"
	case SelectBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Selection is a visual-mode selection. Active is always the cursor.
// Selection is an immutable value type.
type Selection struct {
	Anchor buffer.Point
	Active buffer.Point
	Kind   SelectionKind
}

// Start returns the end of the selection that comes first in the document.
func (s Selection) Start() buffer.Point {
	start, _ := buffer.OrderPoints(s.Anchor, s.Active)
	return start
}

// End returns the end of the selection that comes last in the document.
func (s Selection) End() buffer.Point {
	_, end := buffer.OrderPoints(s.Anchor, s.Active)
	return end
}

// Lines returns the first and last line touched by the selection.
func (s Selection) Lines() (first, last int) {
	return min(s.Anchor.Line, s.Active.Line), max(s.Anchor.Line, s.Active.Line)
}

// IsForward returns true if the active end is at or after the anchor.
func (s Selection) IsForward() bool {
	return !s.Active.Before(s.Anchor)
}

// Contains reports whether p is inside the selection. Character selections
// include both ends.
func (s Selection) Contains(p buffer.Point) bool {
	first, last := s.Lines()
	switch s.Kind {
	case SelectLine:
		return p.Line >= first && p.Line <= last
	case SelectBlock:
		lo, hi := min(s.Anchor.Column, s.Active.Column), max(s.Anchor.Column, s.Active.Column)
		return p.Line >= first && p.Line <= last && p.Column >= lo && p.Column <= hi
	default:
		return !p.Before(s.Start()) && !p.After(s.End())
	}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("%s[%s -> %s]", s.Kind, s.Anchor, s.Active)
}
