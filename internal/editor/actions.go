package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/vicore/internal/engine"
	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/cursor"
	"github.com/dshills/vicore/internal/input/vim"
)

// execAction runs a Normal-mode action.
func (e *Editor) execAction(cmd *vim.Command) (Result, error) {
	switch cmd.Action {
	case vim.ActionVisual:
		e.enterVisual(cursor.SelectChar)
		return handled(), nil
	case vim.ActionVisualLine:
		e.enterVisual(cursor.SelectLine)
		return handled(), nil
	case vim.ActionUndo:
		return e.undo(cmd.EffectiveCount()), nil
	case vim.ActionRedo:
		return e.redo(cmd.EffectiveCount()), nil
	case vim.ActionWriteQuit:
		if e.doc.Dirty() {
			return Result{Status: StatusHandled, Request: RequestSaveQuit}, nil
		}
		return Result{Status: StatusHandled, Request: RequestQuit}, nil
	case vim.ActionQuit:
		return Result{Status: StatusHandled, Request: RequestQuit}, nil
	case vim.ActionSwapSelectionEnds:
		return rejected(), nil
	}

	if res, ok := e.writable(); !ok {
		return res, nil
	}

	p := e.cur.Position()
	text := e.r.LineText(p.Line)
	count := cmd.EffectiveCount()

	switch cmd.Action {
	case vim.ActionInsert:
		e.startInsert(p, count)
	case vim.ActionAppend:
		if text != "" {
			p.Column = cursor.NextBoundary(text, p.Column)
		}
		e.startInsert(p, count)
	case vim.ActionInsertLineStart:
		p.Column = len(leadingWhitespace(text))
		e.startInsert(p, count)
	case vim.ActionAppendLineEnd:
		p.Column = len(text)
		e.startInsert(p, count)
	case vim.ActionOpenBelow, vim.ActionOpenAbove:
		e.openLine(cmd.Action == vim.ActionOpenAbove, count)
	case vim.ActionReplaceMode:
		e.doc.BeginGroup("replace", p)
		e.beginInsert(ModeReplace, 1, false)
	case vim.ActionPutAfter, vim.ActionPutBefore:
		return e.put(cmd.Register, count, cmd.Action == vim.ActionPutBefore), nil
	case vim.ActionJoin, vim.ActionJoinNoSpace:
		return e.join(max(count-1, 1), cmd.Action == vim.ActionJoin), nil
	case vim.ActionReplaceChar:
		return e.replaceChars(cmd.Char, count), nil
	case vim.ActionToggleCaseChar:
		return e.toggleCaseChars(count), nil
	default:
		return rejected(), nil
	}
	return handled(), nil
}

// startInsert opens an undo group and enters Insert mode at p.
func (e *Editor) startInsert(p buffer.Point, count int) {
	e.doc.BeginGroup("insert", e.cur.Position())
	e.beginInsert(ModeInsert, count, false)
	e.cur.MoveTo(p)
}

// openLine implements o and O.
func (e *Editor) openLine(above bool, count int) {
	p := e.cur.Position()
	text := e.r.LineText(p.Line)
	e.doc.BeginGroup("open", p)
	e.beginInsert(ModeInsert, count, true)

	indent := ""
	if e.settings.AutoIndent {
		if above {
			indent = leadingWhitespace(text)
		} else {
			indent = e.newlineIndent(text)
		}
	}
	e.ins.indent = indent

	if above {
		e.insert(e.r.LineStart(p.Line), indent+"\n")
		e.cur.MoveTo(buffer.Point{Line: p.Line, Column: len(indent)})
		return
	}
	e.insert(e.r.LineStart(p.Line)+len(text), "\n"+indent)
	e.cur.MoveTo(buffer.Point{Line: p.Line + 1, Column: len(indent)})
}

func (e *Editor) undo(count int) Result {
	var p buffer.Point
	done := 0
	for range count {
		pt, err := e.doc.Undo()
		if err != nil {
			if errors.Is(err, engine.ErrReadOnly) {
				return Result{Status: StatusRejected, Message: "Document is read-only"}
			}
			break
		}
		p = pt
		done++
	}
	if done == 0 {
		return noop("Already at oldest change")
	}
	e.cur.MoveTo(p)
	return message(changesMessage(done, "undone"))
}

func (e *Editor) redo(count int) Result {
	var p buffer.Point
	done := 0
	for range count {
		pt, err := e.doc.Redo()
		if err != nil {
			if errors.Is(err, engine.ErrReadOnly) {
				return Result{Status: StatusRejected, Message: "Document is read-only"}
			}
			break
		}
		p = pt
		done++
	}
	if done == 0 {
		return noop("Already at newest change")
	}
	e.cur.MoveTo(p)
	return message(changesMessage(done, "redone"))
}

func changesMessage(n int, verb string) string {
	if n == 1 {
		return "1 change " + verb
	}
	return fmt.Sprintf("%d changes %s", n, verb)
}

func registerName(reg rune) string {
	if reg == 0 {
		return `"`
	}
	return string(reg)
}

// maxRepeatLen bounds the text a counted command may generate.
const maxRepeatLen = 64 << 20

const msgTooLong = "Resulting text too long"

// repeatText returns s repeated count times. It reports false when the
// result would be longer than maxRepeatLen.
func repeatText(s string, count int) (string, bool) {
	if count > 0 && len(s) > maxRepeatLen/count {
		return "", false
	}
	return strings.Repeat(s, count), true
}

// put implements p and P.
func (e *Editor) put(reg rune, count int, before bool) Result {
	content, linewise, err := e.regs.Get(reg)
	if err != nil {
		return noop(err.Error())
	}
	if content == "" {
		return noop("Nothing in register " + registerName(reg))
	}
	text, ok := repeatText(content, count)
	if !ok {
		return noop(msgTooLong)
	}
	p := e.cur.Position()

	e.doc.BeginGroup("put", p)
	defer e.doc.EndGroup()

	if linewise {
		line := p.Line
		switch {
		case before:
			e.insert(e.r.LineStart(line), text)
		case line+1 < e.r.LineCount():
			line++
			e.insert(e.r.LineStart(line), text)
		default:
			line++
			e.insert(e.r.Len(), "\n"+strings.TrimSuffix(text, "\n"))
		}
		e.moveToLineStart(line)
		return handled()
	}

	off := e.r.OffsetOf(p)
	if !before {
		if lineText := e.r.LineText(p.Line); lineText != "" {
			off = e.r.LineStart(p.Line) + cursor.NextBoundary(lineText, p.Column)
		}
	}
	e.insert(off, text)
	if strings.Contains(text, "\n") {
		e.cur.MoveToOffset(off)
		return handled()
	}
	end := e.r.PositionOf(off + len(text))
	end.Column = cursor.PrevBoundary(e.r.LineText(end.Line), end.Column)
	e.cur.MoveTo(end)
	return handled()
}

// join joins the cursor line with the next joins lines. With spaces set,
// leading blanks of each joined line are replaced by a single space, as J
// does; otherwise lines are concatenated as is (gJ).
func (e *Editor) join(joins int, spaces bool) Result {
	p := e.cur.Position()
	last := e.r.LineCount() - 1
	if p.Line >= last {
		return noop("")
	}
	joins = min(joins, last-p.Line)

	e.doc.BeginGroup("join", p)
	defer e.doc.EndGroup()

	col := 0
	for range joins {
		text := e.r.LineText(p.Line)
		next := e.r.LineText(p.Line + 1)
		eol := e.r.LineStart(p.Line) + len(text)
		to := e.r.LineStart(p.Line + 1)

		sep := ""
		if spaces {
			lead := len(leadingWhitespace(next))
			to += lead
			rest := next[lead:]
			if rest != "" && text != "" && !strings.HasSuffix(text, " ") &&
				!strings.HasSuffix(text, "\t") && !strings.HasPrefix(rest, ")") {
				sep = " "
			}
		}
		e.replace(eol, to, sep)
		col = len(text)
	}
	e.cur.MoveTo(buffer.Point{Line: p.Line, Column: col})
	return handled()
}

// replaceChars implements r: count characters from the cursor are replaced
// by c. r<CR> replaces them with a single line break.
func (e *Editor) replaceChars(c rune, count int) Result {
	p := e.cur.Position()
	text := e.r.LineText(p.Line)
	end := p.Column
	for range count {
		if end >= len(text) {
			return noop("")
		}
		end = cursor.NextBoundary(text, end)
	}

	ls := e.r.LineStart(p.Line)
	e.doc.BeginGroup("replace char", p)
	defer e.doc.EndGroup()

	if c == '\n' {
		e.replace(ls+p.Column, ls+end, "\n")
		e.moveToLineStart(p.Line + 1)
		return handled()
	}
	repl := strings.Repeat(string(c), count)
	e.replace(ls+p.Column, ls+end, repl)
	e.cur.MoveTo(buffer.Point{Line: p.Line, Column: p.Column + len(repl) - len(string(c))})
	return handled()
}

// toggleCaseChars implements ~ and leaves the cursor after the changed
// characters.
func (e *Editor) toggleCaseChars(count int) Result {
	p := e.cur.Position()
	text := e.r.LineText(p.Line)
	end := p.Column
	for i := 0; i < count && end < len(text); i++ {
		end = cursor.NextBoundary(text, end)
	}
	if end == p.Column {
		return noop("")
	}

	seg := text[p.Column:end]
	toggled := toggleCase(seg)
	if toggled != seg {
		ls := e.r.LineStart(p.Line)
		e.doc.BeginGroup("toggle case", p)
		e.replace(ls+p.Column, ls+end, toggled)
		e.doc.EndGroup()
	}
	e.cur.MoveTo(buffer.Point{Line: p.Line, Column: p.Column + len(toggled)})
	return handled()
}
