package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vicore/internal/engine/buffer"
)

func TestNewDocument(t *testing.T) {
	d := New(WithContent("hello\nworld"), WithPath("/tmp/x.txt"))

	assert.Equal(t, "hello\nworld", d.Text())
	assert.Equal(t, 2, d.LineCount())
	assert.Equal(t, "/tmp/x.txt", d.Path())
	assert.False(t, d.Dirty())
	assert.NotEqual(t, d.ID(), New().ID())
}

func TestNewFromReader(t *testing.T) {
	d, err := NewFromReader(strings.NewReader("from reader"))
	require.NoError(t, err)
	assert.Equal(t, "from reader", d.Text())
	assert.False(t, d.Dirty())
}

func TestDirtyTracking(t *testing.T) {
	d := New(WithContent("abc"))

	_, err := d.Insert(3, "d")
	require.NoError(t, err)
	assert.True(t, d.Dirty())

	d.MarkSaved()
	assert.False(t, d.Dirty())

	_, err = d.Delete(buffer.Range{Start: 0, End: 1})
	require.NoError(t, err)
	assert.True(t, d.Dirty())
}

func TestUndoReturnsPoint(t *testing.T) {
	d := New(WithContent("line one\nline two\nline three"))

	d.BeginGroup("delete line", buffer.Point{Line: 1})
	_, err := d.Delete(buffer.Range{Start: 9, End: 18})
	require.NoError(t, err)
	d.EndGroup()
	require.Equal(t, "line one\nline three", d.Text())

	pos, err := d.Undo()
	require.NoError(t, err)
	assert.Equal(t, buffer.Point{Line: 1, Column: 0}, pos)
	assert.Equal(t, "line one\nline two\nline three", d.Text())

	pos, err = d.Redo()
	require.NoError(t, err)
	assert.Equal(t, buffer.Point{Line: 1, Column: 0}, pos)

	_, err = d.Redo()
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestInsertErrorWraps(t *testing.T) {
	d := New(WithContent("abc"))
	_, err := d.Insert(10, "x")
	assert.ErrorIs(t, err, buffer.ErrOffsetOutOfRange)
	assert.Equal(t, 0, d.UndoCount())
}

func TestReadOnly(t *testing.T) {
	d := New(WithContent("locked"), WithReadOnly())

	_, err := d.Insert(0, "x")
	assert.ErrorIs(t, err, ErrReadOnly)
	_, err = d.Replace(0, 1, "x")
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.Equal(t, "locked", d.Text())
}

func TestReaderCannotMutate(t *testing.T) {
	d := New(WithContent("abc"))
	r := d.Reader()

	_, ok := r.(*buffer.Buffer)
	assert.False(t, ok, "reader must not expose the buffer")

	_, err := d.Insert(0, "x")
	require.NoError(t, err)
	assert.Equal(t, 4, r.Len(), "reader sees live text")
}

func TestWriteToLossless(t *testing.T) {
	content := "a  \n\tb\r\n\n"
	d := New(WithContent(content))

	var buf bytes.Buffer
	_, err := d.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, content, buf.String())
}

func TestMaxUndoGroups(t *testing.T) {
	d := New(WithMaxUndoGroups(2))
	for i := 0; i < 4; i++ {
		_, err := d.Insert(d.Len(), "x")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, d.UndoCount())
}
