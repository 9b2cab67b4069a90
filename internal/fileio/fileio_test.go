package fileio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		name string
		text string
		want LineEnding
	}{
		{"empty", "", LineEndingLF},
		{"no breaks", "abc", LineEndingLF},
		{"lf", "a\nb\n", LineEndingLF},
		{"crlf", "a\r\nb\r\n", LineEndingCRLF},
		{"cr", "a\rb\r", LineEndingCR},
		{"mostly crlf", "a\r\nb\r\nc\n", LineEndingCRLF},
		{"mostly lf", "a\nb\nc\r\n", LineEndingLF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLineEnding(tt.text))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a\nb\nc\n", Normalize("a\r\nb\rc\n"))
	assert.Equal(t, "plain\n", Normalize("plain\n"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\r\ntwo\r\n"), 0o600))

	text, f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", text)
	assert.Equal(t, LineEndingCRLF, f.LineEnding)
	assert.True(t, f.Exists)
	assert.Equal(t, path, f.Path)
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	text, f, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.False(t, f.Exists)
	assert.Equal(t, LineEndingLF, f.LineEnding)
}

func TestLoad_Directory(t *testing.T) {
	_, _, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrIsDir)
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "there.txt")
	require.NoError(t, os.WriteFile(existing, nil, 0o644))

	_, err := Create(existing)
	assert.ErrorIs(t, err, ErrExists)

	_, err = Create("")
	assert.ErrorIs(t, err, ErrNoPath)

	f, err := Create(filepath.Join(dir, "fresh.txt"))
	require.NoError(t, err)
	assert.False(t, f.Exists)
	_, err = os.Stat(f.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "create does not write")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f := &File{Path: path}

	n, err := f.Save(strings.NewReader("a\nb\n"))
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	assert.True(t, f.Exists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, defaultPerm, info.Mode().Perm())
}

func TestSave_KeepsLineEndingAndMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dos.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\r\ny\r\n"), 0o600))

	text, f, err := Load(path)
	require.NoError(t, err)

	n, err := f.Save(strings.NewReader(text + "z\n"))
	require.NoError(t, err)
	assert.EqualValues(t, 9, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\r\ny\r\nz\r\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_NoPath(t *testing.T) {
	_, err := (&File{}).Save(strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestSave_FailureLeavesOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	f := &File{Path: path}
	_, err := f.Save(failingSource{})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file is removed")
}

type failingSource struct{}

func (failingSource) WriteTo(io.Writer) (int64, error) {
	return 0, errors.New("boom")
}

func TestChangedOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	_, f, err := Load(path)
	require.NoError(t, err)

	changed, err := f.ChangedOnDisk()
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(path, []byte("one two"), 0o644))
	changed, err = f.ChangedOnDisk()
	require.NoError(t, err)
	assert.True(t, changed)

	f.Sync()
	changed, err = f.ChangedOnDisk()
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.Remove(path))
	changed, err = f.ChangedOnDisk()
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locked.txt")

	l, err := AcquireLock(path)
	require.NoError(t, err)
	assert.FileExists(t, l.Path())

	_, err = AcquireLock(path)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, l.Release())
	require.NoError(t, l.Release())
	assert.NoFileExists(t, l.Path())

	l2, err := AcquireLock(path)
	require.NoError(t, err)
	assert.NoError(t, l2.Release())
}

func TestLockName(t *testing.T) {
	name := lockName("/home/me/my file.txt")
	assert.Equal(t, "home--me--my-file.txt.lock", name)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	w, err := NewWatcher(path, 20*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	select {
	case <-w.Changes():
		t.Fatal("change to another file reported")
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))
	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
