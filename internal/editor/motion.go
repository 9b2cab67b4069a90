package editor

import (
	"strings"

	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/cursor"
	"github.com/dshills/vicore/internal/input/vim"
)

// findState remembers the last f/F/t/T for ; and ,.
type findState struct {
	kind vim.MotionKind
	char rune
}

// target is where a motion lands.
type target struct {
	pos   buffer.Point
	mtype vim.MotionType

	// vertical motions keep the sticky column
	vertical bool
	// eol is set by $ so later vertical moves stick to line ends
	eol bool
	// failed means the motion could not move at all
	failed bool
}

// evalMotion computes the target of cmd's motion from p. op is true when an
// operator will consume the result, which changes a few edge cases (w at the
// end of a line, l on the last character).
func (e *Editor) evalMotion(cmd *vim.Command, from buffer.Point, op bool) target {
	m := cmd.Motion
	n := cmd.EffectiveCount()
	t := target{pos: from, mtype: m.Type}
	last := e.r.LineCount() - 1
	text := e.r.LineText(from.Line)

	switch m.Kind {
	case vim.MotionLeft:
		col := from.Column
		for i := 0; i < n && col > 0; i++ {
			col = cursor.PrevBoundary(text, col)
		}
		t.pos.Column = col
		t.failed = col == from.Column

	case vim.MotionRight:
		col := from.Column
		for i := 0; i < n && col < len(text); i++ {
			col = cursor.NextBoundary(text, col)
		}
		if !op && col >= len(text) {
			col = cursor.LastCharStart(text)
		}
		t.pos.Column = col
		t.failed = col == from.Column

	case vim.MotionUp, vim.MotionDown:
		delta := n
		if m.Kind == vim.MotionUp {
			delta = -n
		}
		t.pos.Line = min(max(from.Line+delta, 0), last)
		t.pos.Column = e.verticalColumn(from, t.pos.Line)
		t.vertical = true
		t.failed = t.pos.Line == from.Line

	case vim.MotionWordForward, vim.MotionWORDForward:
		big := m.Kind == vim.MotionWORDForward
		t.pos = e.wordForward(from, n, big, op)
		t.failed = t.pos == from

	case vim.MotionWordBackward, vim.MotionWORDBackward:
		t.pos = e.wordBackward(from, n, m.Kind == vim.MotionWORDBackward)
		t.failed = t.pos == from

	case vim.MotionWordEnd, vim.MotionWORDEnd:
		t.pos = e.wordEnd(from, n, m.Kind == vim.MotionWORDEnd, false)
		t.failed = t.pos == from

	case vim.MotionWordEndBackward, vim.MotionWORDEndBackward:
		t.pos = e.wordEndBackward(from, n, m.Kind == vim.MotionWORDEndBackward)
		t.failed = t.pos == from

	case vim.MotionLineStart:
		t.pos.Column = 0

	case vim.MotionFirstNonBlank:
		t.pos.Column = firstNonBlank(text)

	case vim.MotionColumn:
		t.pos.Column = cursor.ColumnForDisplay(text, n-1, e.settings.TabWidth)
		if t.pos.Column >= len(text) {
			t.pos.Column = cursor.LastCharStart(text)
		}

	case vim.MotionLineEnd:
		t.pos.Line = min(from.Line+n-1, last)
		t.pos.Column = cursor.LastCharStart(e.r.LineText(t.pos.Line))
		t.eol = true

	case vim.MotionFileStart, vim.MotionFileEnd:
		line := 0
		if m.Kind == vim.MotionFileEnd {
			line = last
		}
		if cmd.HasCount() {
			line = min(n-1, last)
		}
		t.pos = buffer.Point{Line: line, Column: firstNonBlank(e.r.LineText(line))}

	case vim.MotionFindForward, vim.MotionFindBackward, vim.MotionTillForward, vim.MotionTillBackward:
		e.lastFind = &findState{kind: m.Kind, char: cmd.Char}
		col, ok := findInLine(text, from.Column, m.Kind, cmd.Char, n, false)
		t.pos.Column = col
		t.failed = !ok

	case vim.MotionRepeatFind, vim.MotionRepeatFindReverse:
		if e.lastFind == nil {
			t.failed = true
			break
		}
		kind := e.lastFind.kind
		if m.Kind == vim.MotionRepeatFindReverse {
			kind = reverseFind(kind)
		}
		t.mtype = vim.FindMotionType(kind)
		col, ok := findInLine(text, from.Column, kind, e.lastFind.char, n, true)
		t.pos.Column = col
		t.failed = !ok

	case vim.MotionMatchPair:
		if cmd.HasCount() {
			if n > 100 {
				t.failed = true
				break
			}
			line := min((n*(last+1)+99)/100-1, last)
			t.pos = buffer.Point{Line: max(line, 0), Column: firstNonBlank(e.r.LineText(max(line, 0)))}
			t.mtype = vim.Linewise
			break
		}
		p, ok := e.matchPair(from)
		t.pos = p
		t.failed = !ok

	case vim.MotionParagraphForward:
		t.pos = e.paragraphForward(from.Line, n)
		t.failed = t.pos == from

	case vim.MotionParagraphBackward:
		t.pos = e.paragraphBackward(from.Line, n)
		t.failed = t.pos == from

	case vim.MotionNextLineStart, vim.MotionPrevLineStart, vim.MotionCurrentLineStart:
		line := from.Line
		switch m.Kind {
		case vim.MotionNextLineStart:
			line += n
		case vim.MotionPrevLineStart:
			line -= n
		default:
			line += n - 1
		}
		line = min(max(line, 0), last)
		t.failed = line == from.Line && m.Kind != vim.MotionCurrentLineStart
		t.pos = buffer.Point{Line: line, Column: firstNonBlank(e.r.LineText(line))}
	}

	return t
}

// verticalColumn returns the column a vertical move from p lands on in line.
// From the cursor it follows the sticky column; from anywhere else, p's own
// display column.
func (e *Editor) verticalColumn(from buffer.Point, line int) int {
	text := e.r.LineText(line)
	want := cursor.DisplayColumn(e.r.LineText(from.Line), from.Column, e.settings.TabWidth)
	if from == e.cur.Position() {
		if e.cur.WantEOL() {
			return e.cur.ClampPoint(buffer.Point{Line: line, Column: len(text)}).Column
		}
		want = e.cur.WantColumn()
	}
	col := cursor.ColumnForDisplay(text, want, e.settings.TabWidth)
	return e.cur.ClampPoint(buffer.Point{Line: line, Column: col}).Column
}

func reverseFind(k vim.MotionKind) vim.MotionKind {
	switch k {
	case vim.MotionFindForward:
		return vim.MotionFindBackward
	case vim.MotionFindBackward:
		return vim.MotionFindForward
	case vim.MotionTillForward:
		return vim.MotionTillBackward
	default:
		return vim.MotionTillForward
	}
}

// findInLine finds the count'th c from col in the direction of kind. Till
// motions stop one character short. When repeating a till motion the
// character right next to the cursor is skipped so ; makes progress.
func findInLine(text string, col int, kind vim.MotionKind, c rune, count int, repeat bool) (int, bool) {
	needle := string(c)
	till := kind == vim.MotionTillForward || kind == vim.MotionTillBackward
	pos := col

	switch kind {
	case vim.MotionFindForward, vim.MotionTillForward:
		if till && repeat {
			pos = cursor.NextBoundary(text, pos)
		}
		for range count {
			next := cursor.NextBoundary(text, pos)
			if next >= len(text) {
				return col, false
			}
			idx := strings.Index(text[next:], needle)
			if idx < 0 {
				return col, false
			}
			pos = next + idx
		}
		if till {
			pos = cursor.PrevBoundary(text, pos)
		}

	default:
		if till && repeat {
			pos = cursor.PrevBoundary(text, pos)
		}
		for range count {
			idx := strings.LastIndex(text[:pos], needle)
			if idx < 0 {
				return col, false
			}
			pos = idx
		}
		if till {
			pos = cursor.NextBoundary(text, pos)
		}
	}
	return pos, true
}

// wordForward implements w and W. With stopAtEOL set (operators), the last
// word moved over ends at the end of its line instead of the start of the
// next one.
func (e *Editor) wordForward(from buffer.Point, count int, big, stopAtEOL bool) buffer.Point {
	s := newScanner(e.r, from)
	last := e.r.LineCount() - 1

	for count > 0 {
		count--
		before := s.pos()
		lastLine := s.line == last
		sclass := s.class(big)

		if sclass != classBlank {
			for s.class(big) == sclass {
				i := s.inc()
				if i == -1 || (i >= 1 && stopAtEOL && count == 0) {
					return s.pos()
				}
			}
		}

		// skip blanks, stopping on an empty line
		for s.class(big) == classBlank {
			if s.col == 0 && s.lineEmpty() {
				break
			}
			i := s.inc()
			if i == -1 || (i >= 1 && lastLine) {
				return s.pos()
			}
			if i >= 1 && stopAtEOL && count == 0 {
				return s.pos()
			}
		}
		if s.pos() == before {
			break
		}
	}
	return s.pos()
}

// wordBackward implements b and B.
func (e *Editor) wordBackward(from buffer.Point, count int, big bool) buffer.Point {
	s := newScanner(e.r, from)

	for ; count > 0; count-- {
		if s.dec() == -1 {
			return s.pos()
		}

		emptyLine := false
		for s.class(big) == classBlank {
			if s.col == 0 && s.lineEmpty() {
				emptyLine = true
				break
			}
			if s.dec() == -1 {
				return s.pos()
			}
		}
		if emptyLine {
			continue
		}

		if s.skipClass(s.class(big), big, false) {
			return s.pos()
		}
		s.inc()
	}
	return s.pos()
}

// wordEnd implements e and E. With stop set, a cursor already on the last
// character of a word stays there (used by cw).
func (e *Editor) wordEnd(from buffer.Point, count int, big, stop bool) buffer.Point {
	s := newScanner(e.r, from)

	for ; count > 0; count-- {
		sclass := s.class(big)
		if s.inc() == -1 {
			return e.lastChar()
		}

		switch {
		case s.class(big) == sclass && sclass != classBlank:
			if s.skipClass(sclass, big, true) {
				return e.lastChar()
			}
		case !stop || sclass == classBlank:
			for s.class(big) == classBlank {
				if s.inc() == -1 {
					return e.lastChar()
				}
			}
			if s.skipClass(s.class(big), big, true) {
				return e.lastChar()
			}
		}
		s.dec()
		stop = false
	}
	return s.pos()
}

// wordEndBackward implements ge and gE.
func (e *Editor) wordEndBackward(from buffer.Point, count int, big bool) buffer.Point {
	s := newScanner(e.r, from)

	for ; count > 0; count-- {
		sclass := s.class(big)
		if s.dec() == -1 {
			return s.pos()
		}
		if sclass != classBlank {
			for s.class(big) == sclass {
				if s.dec() == -1 {
					return s.pos()
				}
			}
		}
		for s.class(big) == classBlank {
			if s.col == 0 && s.lineEmpty() {
				break
			}
			if s.dec() == -1 {
				return s.pos()
			}
		}
	}
	return s.pos()
}

// lastChar returns the position of the last character in the document.
func (e *Editor) lastChar() buffer.Point {
	line := e.r.LineCount() - 1
	return buffer.Point{Line: line, Column: cursor.LastCharStart(e.r.LineText(line))}
}

// bracketPairs lists the pairs % jumps between.
var bracketPairs = map[rune]struct {
	match   rune
	forward bool
}{
	'(': {')', true},
	')': {'(', false},
	'[': {']', true},
	']': {'[', false},
	'{': {'}', true},
	'}': {'{', false},
}

// matchPair finds the bracket at or after the cursor on its line and
// returns the position of its partner.
func (e *Editor) matchPair(from buffer.Point) (buffer.Point, bool) {
	s := newScanner(e.r, from)
	for !s.atEOL() {
		if _, ok := bracketPairs[s.char()]; ok {
			break
		}
		s.inc()
	}
	open := s.char()
	pair, ok := bracketPairs[open]
	if !ok {
		return from, false
	}
	return e.findPartner(s, open, pair.match, pair.forward)
}

// findPartner scans from s, which rests on open, for the close that
// balances it.
func (e *Editor) findPartner(s *scanner, open, close rune, forward bool) (buffer.Point, bool) {
	step := s.dec
	if forward {
		step = s.inc
	}
	depth := 1
	for step() != -1 {
		switch s.char() {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s.pos(), true
			}
		}
	}
	return buffer.Point{}, false
}

// paragraphForward implements }: the next empty line after a run of
// non-empty lines, or the end of the document.
func (e *Editor) paragraphForward(line, count int) buffer.Point {
	last := e.r.LineCount() - 1
	for range count {
		if line == last {
			break
		}
		for line < last && e.r.LineLen(line) == 0 {
			line++
		}
		for line < last && e.r.LineLen(line) != 0 {
			line++
		}
	}
	if line == last && e.r.LineLen(line) != 0 {
		return buffer.Point{Line: line, Column: e.r.LineLen(line)}
	}
	return buffer.Point{Line: line}
}

// paragraphBackward implements {.
func (e *Editor) paragraphBackward(line, count int) buffer.Point {
	for range count {
		if line == 0 {
			break
		}
		for line > 0 && e.r.LineLen(line) == 0 {
			line--
		}
		for line > 0 && e.r.LineLen(line) != 0 {
			line--
		}
	}
	return buffer.Point{Line: line}
}
