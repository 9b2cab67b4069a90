package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/cursor"
	"github.com/dshills/vicore/internal/input/key"
)

// insertSession tracks one stay in Insert or Replace mode.
type insertSession struct {
	// count is how many times the typed text is inserted in total.
	count int

	// typed is the text typed since the session started or the last
	// cursor movement.
	typed strings.Builder

	// lineRepeat makes each repetition start on a new line (o, O).
	lineRepeat bool
	indent     string

	// replaced is the Replace-mode backspace stack.
	replaced []replacedText
}

// replacedText is what one Replace-mode keystroke overwrote.
type replacedText struct {
	orig  string
	typed string
}

// beginInsert enters mode with a new session. The caller has opened the
// undo group the session will close.
func (e *Editor) beginInsert(mode Mode, count int, lineRepeat bool) {
	e.ins = &insertSession{count: max(count, 1), lineRepeat: lineRepeat}
	e.setMode(mode)
}

// handleInsert processes a key in Insert mode.
func (e *Editor) handleInsert(ev key.Event) (Result, error) {
	s := e.ins
	switch {
	case ev.IsCancel():
		return e.finishInsert(), nil
	case ev.IsChar():
		e.typeText(string(ev.Rune))
	case ev.Is(key.KeyTab):
		e.typeText(e.tabText())
	case ev.Is(key.KeyEnter):
		e.newline()
	case ev.Is(key.KeyBackspace), ev.IsCtrl('h'):
		e.backspace()
	case ev.Is(key.KeyDelete):
		s.count = 1
		e.deleteForward()
	case ev.IsCtrl('w'):
		s.count = 1
		e.deleteWordBefore()
	case ev.IsCtrl('u'):
		s.count = 1
		e.deleteLineBefore()
	case e.insertMove(ev):
	default:
		return rejected(), nil
	}
	return handled(), nil
}

// typeText inserts text at the cursor and records it for repetition.
func (e *Editor) typeText(text string) {
	off := e.cur.Offset()
	e.insert(off, text)
	e.cur.MoveToOffset(off + len(text))
	e.ins.typed.WriteString(text)
}

// tabText returns what <Tab> inserts at the cursor.
func (e *Editor) tabText() string {
	if !e.settings.ExpandTab {
		return "\t"
	}
	p := e.cur.Position()
	col := cursor.DisplayColumn(e.r.LineText(p.Line), p.Column, e.settings.TabWidth)
	iw := max(e.settings.IndentWidth, 1)
	return strings.Repeat(" ", iw-col%iw)
}

// newline splits the line at the cursor. With autoindent the new line gets
// the indent of the current one and blanks after the cursor are dropped.
func (e *Editor) newline() {
	p := e.cur.Position()
	text := e.r.LineText(p.Line)
	off := e.cur.Offset()
	end := off

	indent := ""
	if e.settings.AutoIndent {
		indent = e.newlineIndent(text[:p.Column])
		after := text[p.Column:]
		rest := strings.TrimLeft(after, " \t")
		end += len(after) - len(rest)
		if indent == leadingWhitespace(text) && rest != "" && strings.ContainsRune("}])", rune(rest[0])) {
			indent = e.dedent(indent)
		}
	}
	e.replace(off, end, "\n"+indent)
	e.cur.MoveTo(buffer.Point{Line: p.Line + 1, Column: len(indent)})
	e.ins.typed.WriteString("\n" + indent)
}

// newlineIndent returns the indent for a line opened after before. A line
// ending in an opening bracket gets one extra level.
func (e *Editor) newlineIndent(before string) string {
	indent := leadingWhitespace(before)
	trimmed := strings.TrimRight(before, " \t")
	if trimmed == "" || !strings.ContainsRune("{[(", rune(trimmed[len(trimmed)-1])) {
		return indent
	}
	width := cursor.DisplayColumn(indent, len(indent), e.settings.TabWidth)
	return e.makeIndent(width + e.settings.IndentWidth)
}

// backspace deletes the character before the cursor, joining with the
// previous line at column 0.
func (e *Editor) backspace() {
	p := e.cur.Position()
	off := e.cur.Offset()
	if p.Column == 0 {
		if p.Line == 0 {
			return
		}
		e.remove(off-1, off)
		e.cur.MoveToOffset(off - 1)
		e.untype(1)
		return
	}
	start := e.r.LineStart(p.Line) + cursor.PrevBoundary(e.r.LineText(p.Line), p.Column)
	e.remove(start, off)
	e.cur.MoveToOffset(start)
	e.untype(off - start)
}

// untype drops n bytes from the end of the recorded text. Deleting past
// what was typed in this session disables repetition.
func (e *Editor) untype(n int) {
	s := e.ins
	typed := s.typed.String()
	if n > len(typed) {
		s.typed.Reset()
		s.count = 1
		return
	}
	s.typed.Reset()
	s.typed.WriteString(typed[:len(typed)-n])
}

func (e *Editor) deleteForward() {
	off := e.cur.Offset()
	p := e.cur.Position()
	text := e.r.LineText(p.Line)
	switch {
	case p.Column < len(text):
		e.remove(off, e.r.LineStart(p.Line)+cursor.NextBoundary(text, p.Column))
	case p.Line < e.r.LineCount()-1:
		e.remove(off, off+1)
	}
	e.cur.MoveToOffset(off)
}

// deleteWordBefore implements <C-w>: blanks before the cursor and then the
// word before them are deleted.
func (e *Editor) deleteWordBefore() {
	p := e.cur.Position()
	if p.Column == 0 {
		e.backspace()
		return
	}
	text := e.r.LineText(p.Line)
	col := p.Column
	for col > 0 && (text[col-1] == ' ' || text[col-1] == '\t') {
		col--
	}
	if col > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:col])
		class := charClass(r, false)
		for col > 0 {
			r, size := utf8.DecodeLastRuneInString(text[:col])
			if charClass(r, false) != class {
				break
			}
			col -= size
		}
	}
	e.deleteBefore(p, col)
}

// deleteLineBefore implements <C-u>: text before the cursor back to the
// indent is deleted, or the indent itself when the cursor is inside it.
func (e *Editor) deleteLineBefore() {
	p := e.cur.Position()
	if p.Column == 0 {
		e.backspace()
		return
	}
	col := len(leadingWhitespace(e.r.LineText(p.Line)))
	if p.Column <= col {
		col = 0
	}
	e.deleteBefore(p, col)
}

func (e *Editor) deleteBefore(p buffer.Point, col int) {
	ls := e.r.LineStart(p.Line)
	e.remove(ls+col, ls+p.Column)
	e.cur.MoveTo(buffer.Point{Line: p.Line, Column: col})
	e.untype(p.Column - col)
}

// insertMove handles cursor keys in Insert and Replace mode. Moving starts
// a new undo group and a new session for repetition purposes.
func (e *Editor) insertMove(ev key.Event) bool {
	p := e.cur.Position()
	text := e.r.LineText(p.Line)
	switch {
	case ev.Is(key.KeyLeft):
		p.Column = cursor.PrevBoundary(text, p.Column)
		e.cur.MoveTo(p)
	case ev.Is(key.KeyRight):
		if p.Column < len(text) {
			p.Column = cursor.NextBoundary(text, p.Column)
		}
		e.cur.MoveTo(p)
	case ev.Is(key.KeyUp):
		e.cur.MoveVertical(-1)
	case ev.Is(key.KeyDown):
		e.cur.MoveVertical(1)
	case ev.Is(key.KeyHome):
		e.cur.MoveTo(buffer.Point{Line: p.Line})
	case ev.Is(key.KeyEnd):
		e.cur.MoveTo(buffer.Point{Line: p.Line, Column: len(text)})
		e.cur.SetWantEOL()
	default:
		return false
	}

	e.doc.CloseGroups()
	e.doc.BeginGroup(e.mode.String(), e.cur.Position())
	s := e.ins
	s.count = 1
	s.lineRepeat = false
	s.typed.Reset()
	s.replaced = nil
	return true
}

// finishInsert repeats the typed text for a count, records it in the "."
// register, closes the undo group and returns to Normal mode.
func (e *Editor) finishInsert() Result {
	s := e.ins
	res := handled()
	typed := s.typed.String()
	if s.count > 1 && typed != "" && e.mode == ModeInsert {
		rep := typed
		if s.lineRepeat {
			rep = "\n" + s.indent + typed
		}
		if all, ok := repeatText(rep, s.count-1); ok {
			off := e.cur.Offset()
			e.insert(off, all)
			e.cur.MoveToOffset(off + len(all))
		} else {
			res = message(msgTooLong)
		}
	}
	if typed != "" {
		e.regs.SetLastInserted(typed)
	}

	e.doc.CloseGroups()
	e.ins = nil

	p := e.cur.Position()
	p.Column = cursor.PrevBoundary(e.r.LineText(p.Line), p.Column)
	e.setMode(ModeNormal)
	e.cur.MoveTo(p)
	return res
}

// handleReplace processes a key in Replace mode.
func (e *Editor) handleReplace(ev key.Event) (Result, error) {
	switch {
	case ev.IsCancel():
		return e.finishInsert(), nil
	case ev.IsChar():
		e.overwrite(string(ev.Rune))
	case ev.Is(key.KeyTab):
		e.overwrite("\t")
	case ev.Is(key.KeyEnter):
		off := e.cur.Offset()
		e.insert(off, "\n")
		e.cur.MoveToOffset(off + 1)
		e.ins.replaced = append(e.ins.replaced, replacedText{typed: "\n"})
		e.ins.typed.WriteString("\n")
	case ev.Is(key.KeyBackspace), ev.IsCtrl('h'):
		e.restoreReplaced()
	case e.insertMove(ev):
	default:
		return rejected(), nil
	}
	return handled(), nil
}

// overwrite replaces the character under the cursor with text, or appends
// at the end of the line.
func (e *Editor) overwrite(text string) {
	p := e.cur.Position()
	line := e.r.LineText(p.Line)
	off := e.cur.Offset()

	orig := ""
	if p.Column < len(line) {
		orig = line[p.Column:cursor.NextBoundary(line, p.Column)]
	}
	e.replace(off, off+len(orig), text)
	e.cur.MoveToOffset(off + len(text))

	s := e.ins
	s.replaced = append(s.replaced, replacedText{orig: orig, typed: text})
	s.typed.WriteString(text)
}

// restoreReplaced undoes the last overwrite. With nothing left to restore
// the cursor just moves left.
func (e *Editor) restoreReplaced() {
	s := e.ins
	if n := len(s.replaced); n > 0 {
		last := s.replaced[n-1]
		s.replaced = s.replaced[:n-1]
		off := e.cur.Offset()
		start := off - len(last.typed)
		e.replace(start, off, last.orig)
		e.cur.MoveToOffset(start)
		e.untype(len(last.typed))
		return
	}
	p := e.cur.Position()
	if p.Column > 0 {
		p.Column = cursor.PrevBoundary(e.r.LineText(p.Line), p.Column)
		e.cur.MoveTo(p)
	}
}

// dedent removes one indent level from indent.
func (e *Editor) dedent(indent string) string {
	width := cursor.DisplayColumn(indent, len(indent), e.settings.TabWidth)
	return e.makeIndent(max(width-e.settings.IndentWidth, 0))
}
