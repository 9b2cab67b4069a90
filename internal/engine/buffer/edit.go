package buffer

import "fmt"

// Edit is a primitive, reversible change: the text in Range was OldText and
// is replaced by NewText. Range is expressed against the text before the
// edit is applied.
type Edit struct {
	Range   Range
	OldText string
	NewText string
}

// NewInsert creates an Edit that inserts text at offset.
func NewInsert(offset int, text string) Edit {
	return Edit{Range: Range{Start: offset, End: offset}, NewText: text}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	switch {
	case e.IsInsert():
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	case e.IsDelete():
		return fmt.Sprintf("Delete%s %q", e.Range, e.OldText)
	default:
		return fmt.Sprintf("Replace%s %q with %q", e.Range, e.OldText, e.NewText)
	}
}

// IsInsert returns true if this is a pure insertion.
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion.
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// IsNoOp returns true if applying the edit changes nothing.
func (e Edit) IsNoOp() bool {
	return e.OldText == e.NewText
}

// End returns the offset just past NewText once the edit is applied.
func (e Edit) End() int {
	return e.Range.Start + len(e.NewText)
}

// Delta returns the change in buffer length caused by this edit.
func (e Edit) Delta() int {
	return len(e.NewText) - len(e.OldText)
}

// Invert returns the edit that undoes e when applied to the text produced by e.
func (e Edit) Invert() Edit {
	return Edit{
		Range:   Range{Start: e.Range.Start, End: e.End()},
		OldText: e.NewText,
		NewText: e.OldText,
	}
}
