package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vicore/internal/editor"
	"github.com/dshills/vicore/internal/engine"
	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/input/key"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), key.Rune('a')},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), key.Rune('A')},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), key.Event{Key: key.KeyRune, Rune: 'x', Mod: key.ModAlt}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.Special(key.KeyEscape)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.Special(key.KeyEnter)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.Special(key.KeyTab)},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.Special(key.KeyBackspace)},
		{"ctrl-h backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModCtrl), key.Special(key.KeyBackspace)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), key.Ctrl('c')},
		{"ctrl-w", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), key.Ctrl('w')},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), key.Special(key.KeyLeft)},
		{"shift arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), key.Event{Key: key.KeyUp, Mod: key.ModShift}},
		{"function", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.Special(key.KeyF5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateKey(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := TranslateKey(tcell.NewEventKey(tcell.KeyF40, 0, tcell.ModNone))
	assert.False(t, ok)
}

func newScreen(t *testing.T, width, height, tabWidth int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim, tabWidth)
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	sim.SetSize(width, height)
	return s, sim
}

func newEditor(text string) *editor.Editor {
	return editor.New(engine.New(engine.WithContent(text)))
}

func feed(t *testing.T, e *editor.Editor, keys string) {
	t.Helper()
	for _, k := range key.MustParseSequence(keys) {
		_, err := e.HandleKey(k)
		require.NoError(t, err)
	}
}

func row(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, width := sim.GetContent(x, y)
		if width == 0 {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDraw(t *testing.T) {
	s, sim := newScreen(t, 30, 5, 8)
	e := newEditor("hello\nworld")

	s.Draw(e.View())

	assert.Equal(t, "hello", row(sim, 0))
	assert.Equal(t, "world", row(sim, 1))
	assert.Equal(t, "~", row(sim, 2))
	assert.Equal(t, "~", row(sim, 3))
	status := row(sim, 4)
	assert.Contains(t, status, "[No Name]")
	assert.True(t, strings.HasSuffix(status, "1,1"), status)

	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestDrawStatus(t *testing.T) {
	s, sim := newScreen(t, 40, 3, 8)
	e := editor.New(engine.New(engine.WithContent("abc"), engine.WithPath("notes.txt")))

	feed(t, e, "ix")
	s.Draw(e.View())
	status := row(sim, 2)
	assert.True(t, strings.HasPrefix(status, "-- INSERT --"), status)
	assert.Contains(t, status, "notes.txt [+]")
	assert.True(t, strings.HasSuffix(status, "1,2"), status)

	feed(t, e, "<Esc>2d")
	s.Draw(e.View())
	status = row(sim, 2)
	assert.Contains(t, status, "2d")
}

func TestDrawScrolls(t *testing.T) {
	s, sim := newScreen(t, 20, 4, 8)
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = strings.Repeat(string(rune('a'+i)), 3)
	}
	e := newEditor(strings.Join(lines, "\n"))

	e.SetCursor(buffer.Point{Line: 8})
	s.Draw(e.View())

	top, _ := s.Origin()
	assert.Equal(t, 6, top)
	assert.Equal(t, "ggg", row(sim, 0))
	assert.Equal(t, "iii", row(sim, 2))
	_, y, _ := sim.GetCursor()
	assert.Equal(t, 2, y)

	e.SetCursor(buffer.Point{Line: 1})
	s.Draw(e.View())
	top, _ = s.Origin()
	assert.Equal(t, 1, top)
	assert.Equal(t, "bbb", row(sim, 0))
}

func TestDrawScrollsHorizontally(t *testing.T) {
	s, sim := newScreen(t, 5, 3, 8)
	e := newEditor("0123456789")

	e.SetCursor(buffer.Point{Column: 7})
	s.Draw(e.View())

	_, left := s.Origin()
	assert.Equal(t, 3, left)
	assert.Equal(t, "34567", row(sim, 0))
	x, _, _ := sim.GetCursor()
	assert.Equal(t, 4, x)
}

func TestDrawWideAndTabs(t *testing.T) {
	s, sim := newScreen(t, 20, 4, 4)
	e := newEditor("日本\n\tx")

	e.SetCursor(buffer.Point{Column: len("日")})
	s.Draw(e.View())

	r, _, _, _ := sim.GetContent(0, 0)
	assert.Equal(t, '日', r)
	r, _, _, _ = sim.GetContent(2, 0)
	assert.Equal(t, '本', r)
	x, _, _ := sim.GetCursor()
	assert.Equal(t, 2, x)

	r, _, _, _ = sim.GetContent(4, 1)
	assert.Equal(t, 'x', r)
}

func TestDrawSelection(t *testing.T) {
	s, sim := newScreen(t, 20, 4, 8)
	e := newEditor("abcd")

	feed(t, e, "vl")
	s.Draw(e.View())

	sel := DefaultStyles().Selection
	for x := 0; x < 2; x++ {
		_, _, style, _ := sim.GetContent(x, 0)
		assert.Equal(t, sel, style, "cell %d", x)
	}
	_, _, style, _ := sim.GetContent(2, 0)
	assert.Equal(t, DefaultStyles().Text, style)
}

func TestPoll(t *testing.T) {
	s, sim := newScreen(t, 20, 4, 8)

	sim.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	assert.Equal(t, key.Rune('j'), pollKey(t, s))

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.Equal(t, key.Special(key.KeyEscape), pollKey(t, s))
}

// pollKey skips resize events.
func pollKey(t *testing.T, s *Screen) key.Event {
	t.Helper()
	for {
		in, ok := s.Poll()
		require.True(t, ok)
		if !in.Resize {
			return in.Key
		}
	}
}
