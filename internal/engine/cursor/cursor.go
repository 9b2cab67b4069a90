package cursor

import (
	"slices"

	"github.com/dshills/vicore/internal/engine/buffer"
)

// Policy decides where the cursor may rest on a line.
type Policy uint8

const (
	// PolicyNormal keeps the cursor on a character.
	PolicyNormal Policy = iota
	// PolicyInsert also allows the position just past the last character.
	PolicyInsert
)

// Option configures a Model.
type Option func(*Model)

// WithTabWidth sets the tab width used for display columns.
func WithTabWidth(width int) Option {
	return func(m *Model) {
		if width > 0 {
			m.tabWidth = width
		}
	}
}

// Model is the cursor state for one document.
type Model struct {
	r        buffer.Reader
	tabWidth int

	pos    buffer.Point
	policy Policy

	// sticky column in display cells; wantEOL is set by $
	want    int
	wantEOL bool

	visual bool
	sel    *Selection

	secondary []int
}

// New creates a model at the start of the text read through r.
func New(r buffer.Reader, opts ...Option) *Model {
	m := &Model{r: r, tabWidth: DefaultTabWidth}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Position returns the primary cursor position.
func (m *Model) Position() buffer.Point {
	return m.pos
}

// Offset returns the primary cursor as a byte offset.
func (m *Model) Offset() int {
	return m.r.OffsetOf(m.pos)
}

// Policy returns the current clamping policy.
func (m *Model) Policy() Policy {
	return m.policy
}

// SetPolicy changes the clamping policy and re-clamps the cursor. The sticky
// column is kept.
func (m *Model) SetPolicy(p Policy) {
	m.policy = p
	m.setPos(m.clamp(m.pos))
}

// MoveTo moves the cursor to p, clamped to a valid position, and makes its
// display column the new sticky column.
func (m *Model) MoveTo(p buffer.Point) {
	m.setPos(m.clamp(p))
	m.wantEOL = false
	m.want = m.displayColumn(m.pos)
}

// MoveToOffset moves the cursor to the position of offset.
func (m *Model) MoveToOffset(offset int) {
	offset = min(max(offset, 0), m.r.Len())
	m.MoveTo(m.r.PositionOf(offset))
}

// MoveVertical moves delta lines up (negative) or down, landing on the sticky
// column or as close to it as the target line allows. It returns false if
// the cursor could not move at all.
func (m *Model) MoveVertical(delta int) bool {
	line := min(max(m.pos.Line+delta, 0), m.r.LineCount()-1)
	if line == m.pos.Line {
		return delta == 0
	}

	text := m.r.LineText(line)
	col := len(text)
	if !m.wantEOL {
		col = ColumnForDisplay(text, m.want, m.tabWidth)
	}
	m.setPos(m.clamp(buffer.Point{Line: line, Column: col}))
	return true
}

// SetWantEOL makes vertical motion stick to line ends until the next
// horizontal move.
func (m *Model) SetWantEOL() {
	m.wantEOL = true
}

// WantColumn returns the sticky display column.
func (m *Model) WantColumn() int {
	return m.want
}

// WantEOL reports whether vertical motion sticks to line ends.
func (m *Model) WantEOL() bool {
	return m.wantEOL
}

// ClampPoint returns p adjusted to a valid resting place under the current
// policy.
func (m *Model) ClampPoint(p buffer.Point) buffer.Point {
	return m.clamp(p)
}

func (m *Model) clamp(p buffer.Point) buffer.Point {
	p.Line = min(max(p.Line, 0), m.r.LineCount()-1)
	text := m.r.LineText(p.Line)

	limit := len(text)
	if m.policy == PolicyNormal {
		limit = LastCharStart(text)
	}
	p.Column = SnapToBoundary(text, min(max(p.Column, 0), limit))
	return p
}

func (m *Model) displayColumn(p buffer.Point) int {
	return DisplayColumn(m.r.LineText(p.Line), p.Column, m.tabWidth)
}

func (m *Model) setPos(p buffer.Point) {
	m.pos = p
	if m.sel != nil {
		m.sel.Active = p
	}
}

// Visual state

// EnterVisual switches the model into visual state. Selection methods are
// only valid between EnterVisual and LeaveVisual.
func (m *Model) EnterVisual() {
	m.visual = true
}

// LeaveVisual destroys the selection and leaves visual state.
func (m *Model) LeaveVisual() {
	m.visual = false
	m.sel = nil
}

// InVisual returns true while the model is in visual state.
func (m *Model) InVisual() bool {
	return m.visual
}

func (m *Model) mustVisual(op string) {
	if !m.visual {
		panic("cursor: " + op + " called outside visual state")
	}
}

// StartSelection anchors a new selection of kind at the cursor.
func (m *Model) StartSelection(kind SelectionKind) {
	m.mustVisual("StartSelection")
	m.sel = &Selection{Anchor: m.pos, Active: m.pos, Kind: kind}
}

// SetSelectionKind changes the kind of the current selection.
func (m *Model) SetSelectionKind(kind SelectionKind) {
	m.mustVisual("SetSelectionKind")
	if m.sel != nil {
		m.sel.Kind = kind
	}
}

// ExtendTo moves the cursor, and with it the active end, to p.
func (m *Model) ExtendTo(p buffer.Point) {
	m.mustVisual("ExtendTo")
	m.MoveTo(p)
}

// SwapEnds exchanges anchor and active end, moving the cursor to the old
// anchor.
func (m *Model) SwapEnds() {
	m.mustVisual("SwapEnds")
	if m.sel == nil {
		return
	}
	anchor := m.sel.Anchor
	m.sel.Anchor = m.sel.Active
	m.MoveTo(anchor)
}

// ClearSelection drops the selection but stays in visual state.
func (m *Model) ClearSelection() {
	m.mustVisual("ClearSelection")
	m.sel = nil
}

// Selection returns the current selection, if any.
func (m *Model) Selection() (Selection, bool) {
	if m.sel == nil {
		return Selection{}, false
	}
	return *m.sel, true
}

// Secondary cursors

// AddCursor adds a secondary cursor at offset. Offsets outside the text or
// duplicates of an existing cursor are ignored.
func (m *Model) AddCursor(offset int) {
	if offset < 0 || offset > m.r.Len() || offset == m.Offset() {
		return
	}
	if slices.Contains(m.secondary, offset) {
		return
	}
	m.secondary = append(m.secondary, offset)
}

// ClearSecondary removes all secondary cursors.
func (m *Model) ClearSecondary() {
	m.secondary = nil
}

// Cursors returns every cursor position, primary first.
func (m *Model) Cursors() []buffer.Point {
	out := make([]buffer.Point, 0, 1+len(m.secondary))
	out = append(out, m.pos)
	for _, off := range m.secondary {
		out = append(out, m.r.PositionOf(min(off, m.r.Len())))
	}
	return out
}

// Transform shifts the secondary cursors across an applied edit. The primary
// cursor is placed explicitly by whoever made the edit.
func (m *Model) Transform(e buffer.Edit) {
	kept := m.secondary[:0]
	for _, off := range m.secondary {
		off = TransformOffset(off, e)
		if !slices.Contains(kept, off) {
			kept = append(kept, off)
		}
	}
	m.secondary = kept
}
