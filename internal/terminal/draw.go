package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/vicore/internal/editor"
	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/cursor"
)

// Draw renders v, scrolling to keep the cursor visible, and shows the
// result. The last row is the status line.
func (s *Screen) Draw(v editor.View) {
	s.scr.Clear()
	width, height := s.scr.Size()
	if width <= 0 || height <= 0 {
		return
	}

	rows := max(height-1, 1)
	s.scroll(v, width, rows)

	others := make(map[buffer.Point]bool, len(v.Cursors))
	for _, p := range v.Cursors[min(1, len(v.Cursors)):] {
		others[p] = true
	}

	cx, cy := -1, -1
	for line, text := range v.Lines(s.top, s.top+rows) {
		y := line - s.top
		x := s.drawLine(v, others, line, text, y, width)
		if line == v.Cursor.Line {
			cx, cy = x, y
		}
	}
	for y := max(v.LineCount()-s.top, 0); y < rows; y++ {
		s.scr.SetContent(0, y, '~', nil, s.styles.Filler)
	}

	if height > 1 {
		s.drawStatus(v, width, height-1)
	}

	if cx >= 0 && cx < width {
		s.scr.SetCursorStyle(cursorStyle(v.Mode.CursorStyle()))
		s.scr.ShowCursor(cx, cy)
	} else {
		s.scr.HideCursor()
	}
	s.scr.Show()
}

// Origin returns the document line and display column at the top-left cell.
func (s *Screen) Origin() (line, column int) {
	return s.top, s.left
}

func (s *Screen) scroll(v editor.View, width, rows int) {
	line := v.Cursor.Line
	switch {
	case line < s.top:
		s.top = line
	case line >= s.top+rows:
		s.top = line - rows + 1
	}
	s.top = max(min(s.top, v.LineCount()-1), 0)

	text := v.Text().LineText(line)
	col := cursor.DisplayColumn(text, v.Cursor.Column, s.tabWidth)
	switch {
	case col < s.left:
		s.left = col
	case col >= s.left+width:
		s.left = col - width + 1
	}
}

// drawLine draws one text line and returns the screen column of the
// primary cursor if it is on this line, else -1.
func (s *Screen) drawLine(v editor.View, others map[buffer.Point]bool, line int, text string, y, width int) int {
	cursorX := -1
	disp := 0

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		start, _ := g.Positions()
		p := buffer.Point{Line: line, Column: start}

		cells := runewidth.StringWidth(cluster)
		if cluster == "\t" {
			cells = s.tabWidth - disp%s.tabWidth
		}
		if line == v.Cursor.Line && start == v.Cursor.Column {
			cursorX = disp - s.left
		}

		style := s.styles.Text
		switch {
		case others[p]:
			style = s.styles.Cursor
		case v.HasSelection && v.Selection.Contains(p):
			style = s.styles.Selection
		}

		x := disp - s.left
		if cluster == "\t" {
			for i := range cells {
				s.setCell(x+i, y, ' ', nil, style, 1, width)
			}
		} else if cells > 0 {
			runes := []rune(cluster)
			s.setCell(x, y, runes[0], runes[1:], style, cells, width)
		}
		disp += cells
	}

	end := disp - s.left
	if line == v.Cursor.Line && v.Cursor.Column >= len(text) {
		cursorX = end
	}
	eol := buffer.Point{Line: line, Column: len(text)}
	switch {
	case others[eol]:
		s.setCell(end, y, ' ', nil, s.styles.Cursor, 1, width)
	case text == "" && v.HasSelection && v.Selection.Contains(eol):
		s.setCell(end, y, ' ', nil, s.styles.Selection, 1, width)
	}
	return cursorX
}

func (s *Screen) setCell(x, y int, mainc rune, combc []rune, style tcell.Style, cells, width int) {
	if x < 0 || x+cells > width {
		return
	}
	s.scr.SetContent(x, y, mainc, combc, style)
}

func (s *Screen) drawStatus(v editor.View, width, y int) {
	name := v.Path
	if name == "" {
		name = "[No Name]"
	}
	if v.Dirty {
		name += " [+]"
	}
	right := fmt.Sprintf("%-6s %s  %d,%d", v.Pending, name, v.Cursor.Line+1, v.Cursor.Column+1)

	left := v.Message
	if left == "" {
		left = v.Mode.DisplayName()
	}

	rw := runewidth.StringWidth(right)
	if rw >= width {
		right = runewidth.Truncate(right, width, "…")
		rw = runewidth.StringWidth(right)
		left = ""
	}
	if room := width - rw - 1; runewidth.StringWidth(left) > room {
		left = runewidth.Truncate(left, max(room, 0), "…")
	}

	s.drawString(0, y, left, s.styles.Status, width)
	s.drawString(width-rw, y, right, s.styles.Text, width)
}

func (s *Screen) drawString(x, y int, str string, style tcell.Style, width int) {
	g := uniseg.NewGraphemes(str)
	for g.Next() {
		runes := g.Runes()
		cells := runewidth.StringWidth(g.Str())
		if cells == 0 {
			continue
		}
		s.setCell(x, y, runes[0], runes[1:], style, cells, width)
		x += cells
	}
}
