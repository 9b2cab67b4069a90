package editor

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/cursor"
	"github.com/dshills/vicore/internal/input/key"
	"github.com/dshills/vicore/internal/input/vim"
)

// enterVisual starts a selection of kind anchored at the cursor.
func (e *Editor) enterVisual(kind cursor.SelectionKind) {
	e.cur.EnterVisual()
	e.cur.StartSelection(kind)
	e.setMode(visualMode(kind))
}

// leaveVisual drops the selection and returns to Normal mode.
func (e *Editor) leaveVisual() {
	e.cur.LeaveVisual()
	e.setMode(ModeNormal)
}

func visualMode(kind cursor.SelectionKind) Mode {
	if kind == cursor.SelectLine {
		return ModeVisualLine
	}
	return ModeVisual
}

// handleVisual processes a key in a visual mode. <Esc> with no pending
// input leaves the mode; otherwise it cancels the pending command.
func (e *Editor) handleVisual(ev key.Event) (Result, error) {
	if ev.IsCancel() && e.parser.IsIdle() {
		e.leaveVisual()
		return handled(), nil
	}
	res := e.parser.Feed(ev)
	switch res.Status {
	case vim.StatusPending:
		return pending(), nil
	case vim.StatusCancelled:
		return rejected(), nil
	}
	return e.execVisual(res.Command)
}

func (e *Editor) execVisual(cmd *vim.Command) (Result, error) {
	e.logger.Debug("visual command", "keys", cmd.Keys)
	switch {
	case cmd.Operator != nil:
		if cmd.Operator.Modifies {
			if res, ok := e.writable(); !ok {
				return res, nil
			}
		}
		sel, _ := e.cur.Selection()
		sp := e.visualSpan(cmd.Linewise)
		e.leaveVisual()
		return e.applyOperator(cmd.Operator, cmd.Register, sp, sel.Start(), cmd.EffectiveCount())

	case cmd.TextObject != nil:
		return e.selectObject(cmd), nil

	case cmd.Motion != nil:
		return e.moveCursor(cmd), nil
	}

	switch cmd.Action {
	case vim.ActionVisual, vim.ActionVisualLine:
		kind := cursor.SelectChar
		if cmd.Action == vim.ActionVisualLine {
			kind = cursor.SelectLine
		}
		if sel, _ := e.cur.Selection(); sel.Kind == kind {
			e.leaveVisual()
			return handled(), nil
		}
		e.cur.SetSelectionKind(kind)
		e.setMode(visualMode(kind))
		return handled(), nil

	case vim.ActionSwapSelectionEnds:
		e.cur.SwapEnds()
		return handled(), nil
	}

	if res, ok := e.writable(); !ok {
		return res, nil
	}
	switch cmd.Action {
	case vim.ActionPutAfter, vim.ActionPutBefore:
		return e.putOverSelection(cmd.Register, cmd.EffectiveCount(), cmd.Action == vim.ActionPutAfter), nil
	case vim.ActionJoin, vim.ActionJoinNoSpace:
		sel, _ := e.cur.Selection()
		first, last := sel.Lines()
		e.leaveVisual()
		e.cur.MoveTo(buffer.Point{Line: first})
		return e.join(max(last-first, 1), cmd.Action == vim.ActionJoin), nil
	case vim.ActionReplaceChar:
		return e.replaceSelection(cmd.Char), nil
	}
	return rejected(), nil
}

// visualSpan returns the span covered by the selection. A character
// selection whose end rests on a line end or an empty line includes the
// newline there.
func (e *Editor) visualSpan(linewise bool) span {
	sel, _ := e.cur.Selection()
	if linewise || sel.Kind == cursor.SelectLine {
		first, last := sel.Lines()
		return e.lineSpan(first, last)
	}

	start, end := sel.Start(), sel.End()
	text := e.r.LineText(end.Line)
	endOff := e.r.LineStart(end.Line) + len(text)
	switch {
	case end.Column < len(text):
		endOff = e.r.LineStart(end.Line) + cursor.NextBoundary(text, end.Column)
	case end.Line < e.r.LineCount()-1:
		endOff++
	}
	return span{start: e.r.OffsetOf(start), end: endOff}
}

// selectObject replaces the selection with the text object around the
// cursor. Linewise objects switch to Visual Line mode.
func (e *Editor) selectObject(cmd *vim.Command) Result {
	sp, ok := e.textObject(cmd.TextObject, cmd.Inner, cmd.EffectiveCount(), e.cur.Position())
	if !ok || sp.empty() {
		return noop("")
	}

	e.cur.ClearSelection()
	if sp.linewise {
		e.cur.MoveTo(buffer.Point{Line: sp.first})
		e.cur.StartSelection(cursor.SelectLine)
		e.cur.ExtendTo(buffer.Point{Line: sp.last})
		e.setMode(ModeVisualLine)
		return handled()
	}

	e.cur.MoveToOffset(sp.start)
	e.cur.StartSelection(cursor.SelectChar)
	e.cur.ExtendTo(e.r.PositionOf(sp.end - 1))
	e.setMode(ModeVisual)
	return handled()
}

// putOverSelection replaces the selection with register text. With keep
// set (p) the replaced text goes to the unnamed register; P leaves the
// registers alone.
func (e *Editor) putOverSelection(reg rune, count int, keep bool) Result {
	content, linewise, err := e.regs.Get(reg)
	if err != nil {
		return noop(err.Error())
	}
	if content == "" {
		return noop("Nothing in register " + registerName(reg))
	}
	text, ok := repeatText(content, count)
	if !ok {
		e.leaveVisual()
		return noop(msgTooLong)
	}

	sel, _ := e.cur.Selection()
	sp := e.visualSpan(false)
	e.leaveVisual()

	e.doc.BeginGroup("put", sel.Start())
	defer e.doc.EndGroup()

	if keep {
		if err := e.regs.Delete(0, e.registerText(sp), sp.linewise); err != nil {
			return noop(err.Error())
		}
	}

	switch {
	case sp.linewise && linewise:
		whole := sp.first == 0 && sp.last == e.r.LineCount()-1
		start, trailing := e.removeSpan(sp)
		switch {
		case whole:
			e.insert(0, strings.TrimSuffix(text, "\n"))
		case trailing:
			e.insert(start, "\n"+strings.TrimSuffix(text, "\n"))
		default:
			e.insert(start, text)
		}
		e.moveToLineStart(sp.first)

	case sp.linewise:
		end := e.r.LineStart(sp.last) + e.r.LineLen(sp.last)
		e.replace(sp.start, end, text)
		e.cur.MoveToOffset(sp.start)

	case linewise:
		e.replace(sp.start, sp.end, "\n"+text)
		e.moveToLineStart(e.r.PositionOf(sp.start).Line + 1)

	default:
		e.replace(sp.start, sp.end, text)
		end := e.r.PositionOf(sp.start + len(text))
		end.Column = cursor.PrevBoundary(e.r.LineText(end.Line), end.Column)
		e.cur.MoveTo(end)
	}
	return handled()
}

// replaceSelection implements r in a visual mode: every character of the
// selection except line breaks becomes c.
func (e *Editor) replaceSelection(c rune) Result {
	sp := e.visualSpan(false)
	sel, _ := e.cur.Selection()
	e.leaveVisual()
	if sp.empty() {
		return noop("")
	}

	old := e.r.Slice(sp.start, sp.end)
	lines := strings.Split(old, "\n")
	for i, l := range lines {
		lines[i] = strings.Repeat(string(c), uniseg.GraphemeClusterCount(l))
	}
	repl := strings.Join(lines, "\n")

	e.doc.BeginGroup("replace char", sel.Start())
	e.replace(sp.start, sp.end, repl)
	e.doc.EndGroup()
	e.cur.MoveToOffset(sp.start)
	return handled()
}
