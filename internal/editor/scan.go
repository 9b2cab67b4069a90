package editor

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/cursor"
)

// scanner walks the document one character at a time. Like Vim's internal
// cursor it may rest on the end of a line (col == len), which reads as a
// blank and separates the last word of a line from the next line.
type scanner struct {
	r    buffer.Reader
	line int
	col  int
	text string
}

func newScanner(r buffer.Reader, p buffer.Point) *scanner {
	s := &scanner{r: r}
	s.moveTo(p)
	return s
}

func (s *scanner) moveTo(p buffer.Point) {
	if p.Line != s.line || s.text == "" {
		s.text = s.r.LineText(p.Line)
	}
	s.line = p.Line
	s.col = min(p.Column, len(s.text))
}

func (s *scanner) pos() buffer.Point {
	return buffer.Point{Line: s.line, Column: s.col}
}

// char returns the rune at the scanner, or 0 at the end of a line.
func (s *scanner) char() rune {
	if s.col >= len(s.text) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.col:])
	return r
}

func (s *scanner) atEOL() bool {
	return s.col >= len(s.text)
}

func (s *scanner) lineEmpty() bool {
	return len(s.text) == 0
}

// inc moves forward one character. It returns 0 within a line, 2 when it
// lands on the end of the line, 1 when it moves to the next line and -1 at
// the end of the document.
func (s *scanner) inc() int {
	if s.col < len(s.text) {
		s.col = cursor.NextBoundary(s.text, s.col)
		if s.col >= len(s.text) {
			return 2
		}
		return 0
	}
	if s.line+1 >= s.r.LineCount() {
		return -1
	}
	s.line++
	s.col = 0
	s.text = s.r.LineText(s.line)
	return 1
}

// dec moves back one character. Moving to the previous line lands on its
// end and returns 1; -1 means the start of the document.
func (s *scanner) dec() int {
	if s.col > 0 {
		s.col = cursor.PrevBoundary(s.text, s.col)
		return 0
	}
	if s.line == 0 {
		return -1
	}
	s.line--
	s.text = s.r.LineText(s.line)
	s.col = len(s.text)
	return 1
}

// Character classes for word motions.
const (
	classBlank = iota
	classPunct
	classWord
)

func charClass(r rune, bigWord bool) int {
	switch {
	case r == 0 || r == ' ' || r == '\t' || unicode.IsSpace(r):
		return classBlank
	case bigWord:
		return classWord
	case isWordChar(r):
		return classWord
	default:
		return classPunct
	}
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.Is(unicode.Mn, r)
}

func (s *scanner) class(bigWord bool) int {
	return charClass(s.char(), bigWord)
}

// skipClass moves in dir while the class stays c. It returns true if the
// edge of the document was hit.
func (s *scanner) skipClass(c int, bigWord, forward bool) bool {
	for s.class(bigWord) == c {
		step := s.dec
		if forward {
			step = s.inc
		}
		if step() == -1 {
			return true
		}
	}
	return false
}

// firstNonBlank returns the byte column of the first non-blank character of
// text, or the column of its last character when the line is all blanks.
func firstNonBlank(text string) int {
	for i, r := range text {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return cursor.LastCharStart(text)
}

// leadingWhitespace returns the indentation of text.
func leadingWhitespace(text string) string {
	for i, r := range text {
		if r != ' ' && r != '\t' {
			return text[:i]
		}
	}
	return text
}

func isBlankLine(text string) bool {
	for _, r := range text {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
