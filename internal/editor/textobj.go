package editor

import (
	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/cursor"
	"github.com/dshills/vicore/internal/input/vim"
)

// span is a region an operator acts on. Offsets are half-open. Linewise
// spans also carry their first and last line.
type span struct {
	start, end  int
	linewise    bool
	first, last int
}

func (s span) empty() bool {
	return s.end <= s.start
}

// lineSpan returns the linewise span covering lines first..last, including
// the newline after last when there is one.
func (e *Editor) lineSpan(first, last int) span {
	end := e.r.Len()
	if last+1 < e.r.LineCount() {
		end = e.r.LineStart(last + 1)
	}
	return span{start: e.r.LineStart(first), end: end, linewise: true, first: first, last: last}
}

// textObject computes the span of obj around p.
func (e *Editor) textObject(obj *vim.TextObject, inner bool, count int, p buffer.Point) (span, bool) {
	switch obj.Kind {
	case vim.ObjWord, vim.ObjWORD:
		return e.wordObject(p, inner, obj.Kind == vim.ObjWORD, count)
	case vim.ObjSentence:
		return e.sentenceObject(p, inner)
	case vim.ObjParagraph:
		return e.paragraphObject(p.Line, inner, count)
	case vim.ObjDoubleQuote, vim.ObjSingleQuote, vim.ObjBackQuote:
		return e.quoteObject(p, obj.Open, inner)
	default:
		return e.bracketObject(p, obj.Open, obj.Close, inner, count)
	}
}

// wordObject implements iw, aw, iW and aW on the cursor line.
func (e *Editor) wordObject(p buffer.Point, inner, big bool, count int) (span, bool) {
	text := e.r.LineText(p.Line)
	if text == "" {
		return span{}, false
	}
	class := func(col int) int {
		if col >= len(text) {
			return classBlank
		}
		return charClass(runeAt(text, col), big)
	}
	runEnd := func(col int) int {
		c := class(col)
		for col < len(text) && class(col) == c {
			col = cursor.NextBoundary(text, col)
		}
		return col
	}

	col := cursor.SnapToBoundary(text, min(p.Column, cursor.LastCharStart(text)))
	c := class(col)
	start := col
	for start > 0 {
		prev := cursor.PrevBoundary(text, start)
		if class(prev) != c {
			break
		}
		start = prev
	}
	end := runEnd(col)

	if inner {
		for i := 1; i < count && end < len(text); i++ {
			end = runEnd(end)
		}
	} else {
		switch {
		case c == classBlank:
			if end < len(text) {
				end = runEnd(end)
			}
		case end < len(text) && class(end) == classBlank:
			end = runEnd(end)
		default:
			for start > 0 && class(cursor.PrevBoundary(text, start)) == classBlank {
				start = cursor.PrevBoundary(text, start)
			}
		}
		for i := 1; i < count && end < len(text); i++ {
			if class(end) != classBlank {
				end = runEnd(end)
			}
			if end < len(text) && class(end) == classBlank {
				end = runEnd(end)
			}
		}
	}

	ls := e.r.LineStart(p.Line)
	return span{start: ls + start, end: ls + end}, true
}

// quoteObject implements i", a" and the other quote objects. The quoted
// string must be on the cursor line; if the cursor is not inside one, the
// next one on the line is used.
func (e *Editor) quoteObject(p buffer.Point, quote rune, inner bool) (span, bool) {
	text := e.r.LineText(p.Line)
	var quotes []int
	escaped := false
	for i, r := range text {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == quote:
			quotes = append(quotes, i)
		}
	}

	open, closing := -1, -1
	for i := 0; i+1 < len(quotes); i += 2 {
		if quotes[i] <= p.Column && p.Column <= quotes[i+1] {
			open, closing = quotes[i], quotes[i+1]
			break
		}
	}
	if open < 0 {
		for i := 0; i+1 < len(quotes); i += 2 {
			if quotes[i] > p.Column {
				open, closing = quotes[i], quotes[i+1]
				break
			}
		}
	}
	if open < 0 {
		return span{}, false
	}

	ls := e.r.LineStart(p.Line)
	if inner {
		return span{start: ls + open + 1, end: ls + closing}, true
	}

	start, end := open, closing+1
	if trail := trailingBlanks(text, end); trail > end {
		end = trail
	} else {
		for start > 0 && (text[start-1] == ' ' || text[start-1] == '\t') {
			start--
		}
	}
	return span{start: ls + start, end: ls + end}, true
}

// trailingBlanks returns the column after the blanks starting at col.
func trailingBlanks(text string, col int) int {
	for col < len(text) && (text[col] == ' ' || text[col] == '\t') {
		col++
	}
	return col
}

// bracketObject implements ib, ab and the other bracket objects. Brackets
// may span lines. When the open bracket ends its line and the close bracket
// starts its own, the inner object is the whole lines between them.
func (e *Editor) bracketObject(p buffer.Point, open, closing rune, inner bool, count int) (span, bool) {
	s := newScanner(e.r, p)
	var openPos buffer.Point
	found := false

	switch s.char() {
	case open:
		openPos, found = s.pos(), true
	case closing:
		openPos, found = e.findPartner(s, closing, open, false)
	default:
		openPos, found = e.enclosingOpen(s, open, closing)
	}
	for i := 1; found && i < count; i++ {
		openPos, found = e.enclosingOpen(newScanner(e.r, openPos), open, closing)
	}
	if !found {
		return span{}, false
	}

	closePos, ok := e.findPartner(newScanner(e.r, openPos), open, closing, true)
	if !ok {
		return span{}, false
	}

	openOff := e.r.OffsetOf(openPos)
	closeOff := e.r.OffsetOf(closePos)
	if !inner {
		return span{start: openOff, end: closeOff + len(string(closing))}, true
	}

	start := openOff + len(string(open))
	end := closeOff
	if closePos.Line > openPos.Line {
		if openPos.Column+len(string(open)) >= e.r.LineLen(openPos.Line) {
			start = e.r.LineStart(openPos.Line + 1)
		}
		if isBlankLine(e.r.LineText(closePos.Line)[:closePos.Column]) {
			end = e.r.LineStart(closePos.Line)
		}
	}
	if end < start {
		end = start
	}
	return span{start: start, end: end}, true
}

// enclosingOpen scans backward from s for an unbalanced open bracket.
func (e *Editor) enclosingOpen(s *scanner, open, closing rune) (buffer.Point, bool) {
	depth := 0
	for s.dec() != -1 {
		switch s.char() {
		case closing:
			depth++
		case open:
			if depth == 0 {
				return s.pos(), true
			}
			depth--
		}
	}
	return buffer.Point{}, false
}

// paragraphObject implements ip and ap. Lines holding only blanks separate
// paragraphs.
func (e *Editor) paragraphObject(line int, inner bool, count int) (span, bool) {
	last := e.r.LineCount() - 1
	blank := func(l int) bool { return isBlankLine(e.r.LineText(l)) }
	runEnd := func(l int) int {
		b := blank(l)
		for l < last && blank(l+1) == b {
			l++
		}
		return l
	}

	startBlank := blank(line)
	first := line
	for first > 0 && blank(first-1) == startBlank {
		first--
	}
	end := runEnd(line)

	for i := 1; i < count && end < last; i++ {
		end = runEnd(end + 1)
	}
	if !inner {
		switch {
		case end < last:
			end = runEnd(end + 1)
		case !startBlank:
			for first > 0 && blank(first-1) {
				first--
			}
		}
	}
	return e.lineSpan(first, end), true
}

// sentenceObject implements is and as within the cursor's paragraph. A
// sentence ends at '.', '!' or '?', optionally followed by closing quotes
// or brackets, and then by a blank or the end of the paragraph.
func (e *Editor) sentenceObject(p buffer.Point, inner bool) (span, bool) {
	if isBlankLine(e.r.LineText(p.Line)) {
		return span{}, false
	}
	first, last := p.Line, p.Line
	for first > 0 && !isBlankLine(e.r.LineText(first-1)) {
		first--
	}
	for last < e.r.LineCount()-1 && !isBlankLine(e.r.LineText(last+1)) {
		last++
	}

	base := e.r.LineStart(first)
	text := e.r.Slice(base, e.r.LineStart(last)+e.r.LineLen(last))
	rel := e.r.OffsetOf(p) - base

	type sentence struct{ start, end, trail int }
	var sentences []sentence
	i := trailingSpace(text, 0)
	for i < len(text) {
		start := i
		end := len(text)
		for j := i; j < len(text); j++ {
			if !isSentenceEnd(text[j]) {
				continue
			}
			k := j + 1
			for k < len(text) && isSentenceCloser(text[k]) {
				k++
			}
			if k == len(text) || isSpaceByte(text[k]) {
				end = k
				break
			}
		}
		trail := trailingSpace(text, end)
		sentences = append(sentences, sentence{start, end, trail})
		i = trail
	}
	if len(sentences) == 0 {
		return span{}, false
	}

	idx := 0
	for k, s := range sentences {
		if rel < s.trail {
			idx = k
			break
		}
		idx = k
	}
	s := sentences[idx]

	start, end := s.start, s.end
	if !inner {
		if s.trail > s.end {
			end = s.trail
		} else if idx > 0 {
			start = sentences[idx-1].end
		}
	}
	return span{start: base + start, end: base + end}, true
}

func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func isSentenceCloser(b byte) bool {
	return b == ')' || b == ']' || b == '"' || b == '\''
}

func trailingSpace(text string, i int) int {
	for i < len(text) && isSpaceByte(text[i]) {
		i++
	}
	return i
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func runeAt(text string, col int) rune {
	for _, r := range text[col:] {
		return r
	}
	return 0
}
