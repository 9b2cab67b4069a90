package editor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/cursor"
	"github.com/dshills/vicore/internal/input/vim"
)

// reportLines is the line count from which operators report how many lines
// they touched.
const reportLines = 3

// execOperator applies a Normal-mode operator command.
func (e *Editor) execOperator(cmd *vim.Command) (Result, error) {
	if cmd.Operator.Modifies {
		if res, ok := e.writable(); !ok {
			return res, nil
		}
	}
	from := e.cur.Position()
	sp, ok := e.operatorSpan(cmd, from)
	if !ok {
		return noop(""), nil
	}
	return e.applyOperator(cmd.Operator, cmd.Register, sp, from, 1)
}

// operatorSpan computes the region cmd's operator acts on.
func (e *Editor) operatorSpan(cmd *vim.Command, from buffer.Point) (span, bool) {
	switch {
	case cmd.Linewise:
		last := min(from.Line+cmd.EffectiveCount()-1, e.r.LineCount()-1)
		return e.lineSpan(from.Line, last), true

	case cmd.TextObject != nil:
		sp, ok := e.textObject(cmd.TextObject, cmd.Inner, cmd.EffectiveCount(), from)
		if ok && !sp.linewise && cmd.Force == vim.ForceLinewise {
			first := e.r.PositionOf(sp.start).Line
			last := e.r.PositionOf(max(sp.end-1, sp.start)).Line
			sp = e.lineSpan(first, last)
		}
		return sp, ok
	}

	// cw on a non-blank changes to the end of the word, like ce.
	if cmd.Operator.Kind == vim.OpChange && isWordForward(cmd.Motion.Kind) && !e.onBlank(from) {
		big := cmd.Motion.Kind == vim.MotionWORDForward
		to := e.wordEnd(from, cmd.EffectiveCount(), big, true)
		return e.motionSpan(from, to, vim.ForceMotionType(vim.Inclusive, cmd.Force), cmd.Force == vim.ForceNone), true
	}

	t := e.evalMotion(cmd, from, true)
	if t.failed {
		return span{}, false
	}
	mtype := vim.ForceMotionType(t.mtype, cmd.Force)
	return e.motionSpan(from, t.pos, mtype, cmd.Force == vim.ForceNone), true
}

func isWordForward(k vim.MotionKind) bool {
	return k == vim.MotionWordForward || k == vim.MotionWORDForward
}

func (e *Editor) onBlank(p buffer.Point) bool {
	text := e.r.LineText(p.Line)
	return p.Column >= len(text) || charClass(runeAt(text, p.Column), false) == classBlank
}

// motionSpan turns a motion from a to b into a span according to its type.
// When adjust is set, Vim's rules for exclusive motions ending in column 0
// apply: the end retracts to the end of the previous line, and if the start
// is at or before the first non-blank the motion becomes linewise.
func (e *Editor) motionSpan(a, b buffer.Point, mtype vim.MotionType, adjust bool) span {
	start, end := buffer.OrderPoints(a, b)

	switch mtype {
	case vim.Linewise:
		return e.lineSpan(start.Line, end.Line)

	case vim.Inclusive:
		text := e.r.LineText(end.Line)
		if end.Column < len(text) {
			end.Column = cursor.NextBoundary(text, end.Column)
		}

	default:
		if adjust && end.Line > start.Line && end.Column == 0 {
			if start.Column <= len(leadingWhitespace(e.r.LineText(start.Line))) {
				return e.lineSpan(start.Line, end.Line-1)
			}
			end = buffer.Point{Line: end.Line - 1, Column: e.r.LineLen(end.Line - 1)}
		}
	}
	return span{start: e.r.OffsetOf(start), end: e.r.OffsetOf(end)}
}

// applyOperator runs op over sp. from is where the command started; levels
// is the indent depth for > and <.
func (e *Editor) applyOperator(op *vim.Operator, reg rune, sp span, from buffer.Point, levels int) (Result, error) {
	switch op.Kind {
	case vim.OpYank:
		return e.yankSpan(reg, sp, from), nil
	case vim.OpDelete:
		if sp.empty() {
			return noop(""), nil
		}
		e.doc.BeginGroup("delete", from)
		defer e.doc.EndGroup()
		return e.deleteSpan(reg, sp), nil
	case vim.OpChange:
		return e.changeSpan(reg, sp, from), nil
	case vim.OpIndent, vim.OpOutdent:
		first, last := e.spanLines(sp)
		if op.Kind == vim.OpOutdent {
			levels = -levels
		}
		e.doc.BeginGroup(op.Name, from)
		defer e.doc.EndGroup()
		return e.shiftLines(first, last, levels), nil
	default:
		if sp.empty() {
			return noop(""), nil
		}
		e.doc.BeginGroup(op.Name, from)
		defer e.doc.EndGroup()
		return e.caseSpan(op.Kind, sp, from), nil
	}
}

// spanLines returns the first and last line a span touches.
func (e *Editor) spanLines(sp span) (int, int) {
	if sp.linewise {
		return sp.first, sp.last
	}
	first := e.r.PositionOf(sp.start).Line
	last := e.r.PositionOf(max(sp.end-1, sp.start)).Line
	return first, last
}

// registerText returns the text of sp as stored in a register. Linewise
// text always ends with a newline.
func (e *Editor) registerText(sp span) string {
	text := e.r.Slice(sp.start, sp.end)
	if sp.linewise && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

func (e *Editor) yankSpan(reg rune, sp span, from buffer.Point) Result {
	if err := e.regs.Yank(reg, e.registerText(sp), sp.linewise); err != nil {
		return noop(err.Error())
	}

	if sp.linewise {
		if sp.first != from.Line {
			e.cur.MoveTo(buffer.Point{Line: sp.first, Column: from.Column})
		}
		if n := sp.last - sp.first + 1; n >= reportLines {
			return message(fmt.Sprintf("%d lines yanked", n))
		}
		return handled()
	}
	e.cur.MoveToOffset(sp.start)
	return handled()
}

// deleteSpan removes sp, stores it in a register and places the cursor.
// The caller opens the undo group.
func (e *Editor) deleteSpan(reg rune, sp span) Result {
	if err := e.regs.Delete(reg, e.registerText(sp), sp.linewise); err != nil {
		return noop(err.Error())
	}
	e.removeSpan(sp)

	if sp.linewise {
		e.moveToLineStart(sp.first)
		if n := sp.last - sp.first + 1; n >= reportLines {
			return message(fmt.Sprintf("%d fewer lines", n))
		}
		return handled()
	}
	e.cur.MoveToOffset(sp.start)
	return handled()
}

// removeSpan deletes sp from the document. Deleting the last lines also
// removes the newline before them so no empty line is left behind; the
// returned flag reports that case.
func (e *Editor) removeSpan(sp span) (int, bool) {
	start, end := sp.start, sp.end
	trailing := false
	if sp.linewise && sp.last == e.r.LineCount()-1 && start > 0 {
		start--
		trailing = true
	}
	e.remove(start, end)
	return start, trailing
}

// changeSpan deletes sp and starts Insert mode in its place. The undo group
// stays open until the insert session ends.
func (e *Editor) changeSpan(reg rune, sp span, from buffer.Point) Result {
	if err := e.regs.Delete(reg, e.registerText(sp), sp.linewise); err != nil {
		return noop(err.Error())
	}
	e.doc.BeginGroup("change", from)

	if sp.linewise {
		indent := ""
		if e.settings.AutoIndent {
			indent = leadingWhitespace(e.r.LineText(sp.first))
		}
		start := e.r.LineStart(sp.first)
		end := e.r.LineStart(sp.last) + e.r.LineLen(sp.last)
		e.replace(start, end, indent)
		e.beginInsert(ModeInsert, 1, false)
		e.cur.MoveTo(buffer.Point{Line: sp.first, Column: len(indent)})
		return handled()
	}

	e.remove(sp.start, sp.end)
	e.beginInsert(ModeInsert, 1, false)
	e.cur.MoveToOffset(sp.start)
	return handled()
}

// shiftLines indents (levels > 0) or outdents lines first..last. Empty lines
// are left alone.
func (e *Editor) shiftLines(first, last, levels int) Result {
	if levels > maxRepeatLen/e.settings.IndentWidth {
		return noop(msgTooLong)
	}
	changed := 0
	for line := first; line <= last; line++ {
		text := e.r.LineText(line)
		if text == "" {
			continue
		}
		ws := leadingWhitespace(text)
		width := cursor.DisplayColumn(text, len(ws), e.settings.TabWidth)
		indent := e.makeIndent(max(width+levels*e.settings.IndentWidth, 0))
		if indent == ws {
			continue
		}
		ls := e.r.LineStart(line)
		e.replace(ls, ls+len(ws), indent)
		changed++
	}
	e.moveToLineStart(first)

	if changed == 0 {
		return noop("")
	}
	if n := last - first + 1; n >= reportLines {
		dir := ">"
		if levels < 0 {
			dir = "<"
		}
		return message(fmt.Sprintf("%d lines %sed 1 time", n, dir))
	}
	return handled()
}

// makeIndent builds whitespace spanning width display cells.
func (e *Editor) makeIndent(width int) string {
	if e.settings.ExpandTab {
		return strings.Repeat(" ", width)
	}
	tw := e.settings.TabWidth
	return strings.Repeat("\t", width/tw) + strings.Repeat(" ", width%tw)
}

// caseSpan applies gu, gU or g~ to sp.
func (e *Editor) caseSpan(kind vim.OperatorKind, sp span, from buffer.Point) Result {
	text := e.r.Slice(sp.start, sp.end)
	changed := convertCase(kind, text)
	if changed != text {
		e.replace(sp.start, sp.end, changed)
	}

	if sp.linewise {
		e.cur.MoveTo(buffer.Point{Line: sp.first, Column: from.Column})
	} else {
		e.cur.MoveToOffset(sp.start)
	}
	if changed == text {
		return noop("")
	}
	return handled()
}

func convertCase(kind vim.OperatorKind, s string) string {
	switch kind {
	case vim.OpLowercase:
		return strings.ToLower(s)
	case vim.OpUppercase:
		return strings.ToUpper(s)
	default:
		return toggleCase(s)
	}
}

func toggleCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}
