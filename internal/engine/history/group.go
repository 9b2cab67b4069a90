package history

import (
	"time"

	"github.com/dshills/vicore/internal/engine/buffer"
)

// Group is an atomic unit of undo.
type Group struct {
	Name      string
	Edits     []buffer.Edit
	Cursor    buffer.Point // cursor position when the group was opened
	Timestamp time.Time
}

// IsEmpty returns true if the group holds no edits.
func (g *Group) IsEmpty() bool {
	return len(g.Edits) == 0
}

// Start returns the start offset of the group's first edit.
func (g *Group) Start() int {
	if len(g.Edits) == 0 {
		return 0
	}
	return g.Edits[0].Range.Start
}

// add appends e, merging it into the previous edit when the two form one
// contiguous run.
func (g *Group) add(e buffer.Edit) {
	if e.IsNoOp() {
		return
	}
	if n := len(g.Edits); n > 0 {
		if merged, ok := coalesce(g.Edits[n-1], e); ok {
			if merged.IsNoOp() {
				g.Edits = g.Edits[:n-1]
			} else {
				g.Edits[n-1] = merged
			}
			return
		}
	}
	g.Edits = append(g.Edits, e)
}

// coalesce merges next into prev when applying the result to the text prev
// was applied to yields the same text as applying both.
func coalesce(prev, next buffer.Edit) (buffer.Edit, bool) {
	prevInsert := prev.OldText == "" && prev.NewText != ""
	prevDelete := prev.OldText != "" && prev.NewText == ""

	switch {
	case prevInsert && next.IsInsert() && next.Range.Start == prev.End():
		// typing continues the run
		prev.NewText += next.NewText
		return prev, true

	case prevInsert && next.IsDelete() &&
		next.Range.End == prev.End() && next.Range.Start >= prev.Range.Start:
		// backspace over what was just typed
		prev.NewText = prev.NewText[:len(prev.NewText)-next.Range.Len()]
		return prev, true

	case prevDelete && next.IsDelete() && next.Range.End == prev.Range.Start:
		// backspace run
		return buffer.Edit{
			Range:   buffer.Range{Start: next.Range.Start, End: prev.Range.End},
			OldText: next.OldText + prev.OldText,
		}, true

	case prevDelete && next.IsDelete() && next.Range.Start == prev.Range.Start:
		// <Del> or x run
		return buffer.Edit{
			Range:   buffer.Range{Start: prev.Range.Start, End: prev.Range.Start + len(prev.OldText) + len(next.OldText)},
			OldText: prev.OldText + next.OldText,
		}, true
	}
	return buffer.Edit{}, false
}

// Scope closes a group opened by Log.Scope. It is meant to be deferred.
//
//	defer log.Scope("indent", cursor).End()
type Scope struct {
	log    *Log
	active bool
}

// End closes the group. Safe to call more than once.
func (s *Scope) End() {
	if s.active {
		s.log.EndGroup()
		s.active = false
	}
}
