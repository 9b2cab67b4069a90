package cursor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/vicore/internal/engine/buffer"
)

func pt(line, col int) buffer.Point {
	return buffer.Point{Line: line, Column: col}
}

func TestMoveToClampsNormal(t *testing.T) {
	buf := buffer.NewFromString("hello\n\nab")
	m := New(buf)

	m.MoveTo(pt(0, 99))
	assert.Equal(t, pt(0, 4), m.Position(), "normal mode rests on the last character")

	m.MoveTo(pt(1, 3))
	assert.Equal(t, pt(1, 0), m.Position(), "empty line allows column 0 only")

	m.MoveTo(pt(9, 0))
	assert.Equal(t, pt(2, 0), m.Position())

	m.MoveTo(pt(-1, -1))
	assert.Equal(t, pt(0, 0), m.Position())
}

func TestMoveToClampsInsert(t *testing.T) {
	buf := buffer.NewFromString("hello")
	m := New(buf)
	m.SetPolicy(PolicyInsert)

	m.MoveTo(pt(0, 99))
	assert.Equal(t, pt(0, 5), m.Position())

	m.SetPolicy(PolicyNormal)
	assert.Equal(t, pt(0, 4), m.Position(), "switching policy re-clamps")
}

func TestMoveToSnapsToGrapheme(t *testing.T) {
	buf := buffer.NewFromString("aé🇫🇷b")
	m := New(buf)

	m.MoveTo(pt(0, 2)) // inside é
	assert.Equal(t, pt(0, 1), m.Position())

	m.MoveTo(pt(0, 99))
	assert.Equal(t, pt(0, len("aé🇫🇷")), m.Position())
}

func TestStickyColumn(t *testing.T) {
	buf := buffer.NewFromString("0123456789abc\nxyz\n0123456789abc")
	m := New(buf)

	m.MoveTo(pt(0, 8))
	require.True(t, m.MoveVertical(1))
	assert.Equal(t, pt(1, 2), m.Position())
	require.True(t, m.MoveVertical(1))
	assert.Equal(t, pt(2, 8), m.Position(), "sticky column survives a short line")

	assert.False(t, m.MoveVertical(1), "no line below")
	assert.Equal(t, pt(2, 8), m.Position())
}

func TestStickyColumnWideCharacters(t *testing.T) {
	buf := buffer.NewFromString("abcd\n世界x")
	m := New(buf)

	m.MoveTo(pt(0, 2))
	m.MoveVertical(1)
	// display cell 2 is the first cell of 界
	assert.Equal(t, pt(1, len("世")), m.Position())
}

func TestStickyColumnTabs(t *testing.T) {
	buf := buffer.NewFromString("\tx\n0123456789")
	m := New(buf, WithTabWidth(4))

	m.MoveTo(pt(0, 1)) // x sits at display cell 4
	m.MoveVertical(1)
	assert.Equal(t, pt(1, 4), m.Position())
}

func TestWantEOL(t *testing.T) {
	buf := buffer.NewFromString("short\na much longer line\nmid")
	m := New(buf)

	m.MoveTo(pt(0, 4))
	assert.Equal(t, 4, m.WantColumn())
	assert.False(t, m.WantEOL())
	m.SetWantEOL()
	assert.True(t, m.WantEOL())
	m.MoveVertical(1)
	assert.Equal(t, pt(1, len("a much longer line")-1), m.Position())
	m.MoveVertical(1)
	assert.Equal(t, pt(2, 2), m.Position())

	m.MoveTo(pt(2, 0))
	assert.False(t, m.WantEOL())
	m.MoveVertical(-1)
	assert.Equal(t, pt(1, 0), m.Position(), "horizontal move clears want-EOL")
}

func TestSelectionRequiresVisual(t *testing.T) {
	buf := buffer.NewFromString("abc")
	m := New(buf)

	assert.Panics(t, func() { m.StartSelection(SelectChar) })
	assert.Panics(t, func() { m.ExtendTo(pt(0, 1)) })
	assert.Panics(t, func() { m.SwapEnds() })
	assert.Panics(t, func() { m.ClearSelection() })
}

func TestSelectionFollowsCursor(t *testing.T) {
	buf := buffer.NewFromString("hello world\nsecond")
	m := New(buf)
	m.MoveTo(pt(0, 2))

	m.EnterVisual()
	m.StartSelection(SelectChar)
	m.ExtendTo(pt(0, 6))

	sel, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, pt(0, 2), sel.Anchor)
	assert.Equal(t, pt(0, 6), sel.Active)

	m.MoveVertical(1)
	sel, _ = m.Selection()
	assert.Equal(t, pt(1, 5), sel.Active)
	assert.True(t, sel.IsForward())

	m.SwapEnds()
	sel, _ = m.Selection()
	assert.Equal(t, pt(0, 2), m.Position())
	assert.Equal(t, pt(1, 5), sel.Anchor)
	assert.Equal(t, pt(0, 2), sel.Start())
	assert.Equal(t, pt(1, 5), sel.End())

	m.LeaveVisual()
	_, ok = m.Selection()
	assert.False(t, ok)
	assert.False(t, m.InVisual())
}

func TestSelectionContains(t *testing.T) {
	char := Selection{Anchor: pt(0, 3), Active: pt(1, 1), Kind: SelectChar}
	assert.True(t, char.Contains(pt(0, 3)))
	assert.True(t, char.Contains(pt(1, 1)))
	assert.False(t, char.Contains(pt(1, 2)))

	line := Selection{Anchor: pt(2, 3), Active: pt(1, 1), Kind: SelectLine}
	first, last := line.Lines()
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, last)
	assert.True(t, line.Contains(pt(2, 40)))

	block := Selection{Anchor: pt(0, 1), Active: pt(2, 3), Kind: SelectBlock}
	assert.True(t, block.Contains(pt(1, 2)))
	assert.False(t, block.Contains(pt(1, 4)))
}

func TestSecondaryCursorsTransform(t *testing.T) {
	buf := buffer.NewFromString("aaa bbb ccc")
	m := New(buf)
	m.AddCursor(4)
	m.AddCursor(8)
	m.AddCursor(8)

	e, err := buf.Insert(0, "xx")
	require.NoError(t, err)
	m.Transform(e)
	assert.Equal(t, []buffer.Point{pt(0, 0), pt(0, 6), pt(0, 10)}, m.Cursors())

	e, err = buf.Delete(buffer.Range{Start: 5, End: 11})
	require.NoError(t, err)
	m.Transform(e)
	assert.Len(t, m.Cursors(), 2, "cursors collapsed by a deletion merge")

	m.ClearSecondary()
	assert.Len(t, m.Cursors(), 1)
}

func TestTransformOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		edit   buffer.Edit
		want   int
	}{
		{"insert before", 5, buffer.NewInsert(2, "xyz"), 8},
		{"insert at", 5, buffer.NewInsert(5, "xyz"), 5},
		{"insert after", 5, buffer.NewInsert(7, "xyz"), 5},
		{"delete before", 5, buffer.Edit{Range: buffer.Range{Start: 0, End: 2}, OldText: "ab"}, 3},
		{"delete spanning", 5, buffer.Edit{Range: buffer.Range{Start: 3, End: 8}, OldText: "abcde"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransformOffset(tt.offset, tt.edit))
		})
	}
}

func TestGraphemeHelpers(t *testing.T) {
	s := "éx" // e + combining acute, then x
	assert.Equal(t, 3, NextBoundary(s, 0))
	assert.Equal(t, 0, PrevBoundary(s, 3))
	assert.Equal(t, 3, LastCharStart(s))
	assert.Equal(t, 0, SnapToBoundary(s, 1))
	assert.Equal(t, 1, DisplayColumn(s, 3, 8))
	assert.Equal(t, 0, LastCharStart(""))
}

// Moving down through lines of any length and back to a line at least as
// long as the start column restores that column.
func TestProperty_StickyColumn(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		col := rapid.IntRange(0, 40).Draw(t, "col")
		middle := rapid.SliceOfN(rapid.IntRange(0, 60), 1, 6).Draw(t, "middle")

		lines := []string{strings.Repeat("a", col+1)}
		for _, n := range middle {
			lines = append(lines, strings.Repeat("b", n))
		}
		lines = append(lines, strings.Repeat("c", col+1+rapid.IntRange(0, 10).Draw(t, "extra")))

		m := New(buffer.NewFromString(strings.Join(lines, "\n")))
		m.MoveTo(pt(0, col))
		for range middle {
			m.MoveVertical(1)
		}
		m.MoveVertical(1)

		if got := m.Position(); got != pt(len(lines)-1, col) {
			t.Fatalf("landed at %v, want column %d on last line", got, col)
		}
	})
}
