// Package terminal draws editor views on a tcell screen and turns terminal
// input into key events.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vicore/internal/editor"
	"github.com/dshills/vicore/internal/engine/cursor"
	"github.com/dshills/vicore/internal/input/key"
)

// Input is one event read from the terminal.
type Input struct {
	// Key is set for key presses.
	Key key.Event
	// Resize is true when the terminal changed size.
	Resize bool
}

// Styles are the colors used when drawing.
type Styles struct {
	Text      tcell.Style
	Selection tcell.Style
	Cursor    tcell.Style
	Filler    tcell.Style
	Status    tcell.Style
}

// DefaultStyles returns the built-in color scheme.
func DefaultStyles() Styles {
	return Styles{
		Text:      tcell.StyleDefault,
		Selection: tcell.StyleDefault.Reverse(true),
		Cursor:    tcell.StyleDefault.Reverse(true),
		Filler:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
		Status:    tcell.StyleDefault.Bold(true),
	}
}

// Screen renders editor views to a terminal.
type Screen struct {
	scr      tcell.Screen
	styles   Styles
	tabWidth int

	top, left int
}

// New opens the controlling terminal.
func New(tabWidth int) (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	return NewWithScreen(scr, tabWidth), nil
}

// NewWithScreen wraps an existing tcell screen.
func NewWithScreen(scr tcell.Screen, tabWidth int) *Screen {
	if tabWidth <= 0 {
		tabWidth = cursor.DefaultTabWidth
	}
	return &Screen{scr: scr, styles: DefaultStyles(), tabWidth: tabWidth}
}

// Init switches the terminal to full-screen mode.
func (s *Screen) Init() error {
	if err := s.scr.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	s.scr.EnablePaste()
	s.scr.Clear()
	return nil
}

// Fini restores the terminal. Poll returns false afterwards.
func (s *Screen) Fini() {
	s.scr.Fini()
}

// SetStyles replaces the color scheme.
func (s *Screen) SetStyles(st Styles) {
	s.styles = st
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (width, height int) {
	return s.scr.Size()
}

// Poll blocks until the next key press or resize. It returns false once the
// screen is finalized.
func (s *Screen) Poll() (Input, bool) {
	for {
		switch ev := s.scr.PollEvent().(type) {
		case nil:
			return Input{}, false
		case *tcell.EventKey:
			if k, ok := TranslateKey(ev); ok {
				return Input{Key: k}, true
			}
		case *tcell.EventResize:
			s.scr.Sync()
			return Input{Resize: true}, true
		}
	}
}

// Beep rings the terminal bell.
func (s *Screen) Beep() {
	_ = s.scr.Beep()
}

func cursorStyle(cs editor.CursorStyle) tcell.CursorStyle {
	switch cs {
	case editor.CursorBar:
		return tcell.CursorStyleSteadyBar
	case editor.CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}
