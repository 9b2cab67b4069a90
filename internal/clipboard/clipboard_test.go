package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vicore/internal/input/vim"
)

var (
	_ vim.ClipboardProvider = System{}
	_ vim.ClipboardProvider = (*Memory)(nil)
)

func TestMemory(t *testing.T) {
	var m Memory

	s, err := m.Get()
	require.NoError(t, err)
	assert.Empty(t, s)

	require.NoError(t, m.Set("hello\n"))
	s, err = m.Get()
	require.NoError(t, err)
	assert.Equal(t, "hello\n", s)
}

func TestMemoryBacksRegisters(t *testing.T) {
	m := &Memory{}
	rs := vim.NewRegisterStore()
	rs.SetClipboard(m)

	require.NoError(t, rs.Yank('+', "copied", false))
	s, _ := m.Get()
	assert.Equal(t, "copied", s)

	require.NoError(t, m.Set("external"))
	content, _, err := rs.Get('*')
	require.NoError(t, err)
	assert.Equal(t, "external", content)
}

func TestSystemUnavailable(t *testing.T) {
	if Available() {
		t.Skip("system clipboard present")
	}

	_, err := System{}.Get()
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, System{}.Set("x"), ErrUnavailable)
}
