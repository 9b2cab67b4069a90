package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Errors returned by file operations.
var (
	// ErrNoPath indicates a save of a document with no file name.
	ErrNoPath = errors.New("no file name")

	// ErrExists indicates Create was given a path that already exists.
	ErrExists = errors.New("file already exists")

	// ErrIsDir indicates the path names a directory.
	ErrIsDir = errors.New("is a directory")
)

const defaultPerm fs.FileMode = 0o644

// File describes the on-disk side of a document.
type File struct {
	// Path is the file name as given by the user.
	Path string

	// LineEnding is written back on save.
	LineEnding LineEnding

	// Exists reports whether the file was on disk at load or last save.
	Exists bool

	modTime time.Time
	size    int64
}

// Load reads the file at path and returns its text with line endings
// normalized to "\n". A missing file yields empty text and a File with
// Exists false.
func Load(path string) (string, *File, error) {
	f := &File{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", f, nil
		}
		return "", nil, fmt.Errorf("open %s: %w", path, err)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("open %s: %w", path, ErrIsDir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}

	text := string(data)
	f.LineEnding = DetectLineEnding(text)
	f.Exists = true
	f.modTime = info.ModTime()
	f.size = info.Size()
	return Normalize(text), f, nil
}

// Create returns a File for a new document at path. Nothing is written until
// the first save.
func Create(path string) (*File, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	if _, err := os.Lstat(path); err == nil {
		return nil, fmt.Errorf("create %s: %w", path, ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &File{Path: path}, nil
}

// Save writes src to the file, converting "\n" to the file's line ending.
// It returns the number of bytes on disk.
func (f *File) Save(src io.WriterTo) (int64, error) {
	if f.Path == "" {
		return 0, ErrNoPath
	}

	perm := defaultPerm
	if info, err := os.Stat(f.Path); err == nil {
		if info.IsDir() {
			return 0, fmt.Errorf("save %s: %w", f.Path, ErrIsDir)
		}
		perm = info.Mode().Perm()
	}

	dir, base := filepath.Split(f.Path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("save %s: %w", f.Path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	cw := &countingWriter{w: tmp}
	bw := bufio.NewWriter(cw)
	if _, err := src.WriteTo(newEndingWriter(bw, f.LineEnding)); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("save %s: %w", f.Path, err)
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("save %s: %w", f.Path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("save %s: %w", f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("save %s: %w", f.Path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return 0, fmt.Errorf("save %s: %w", f.Path, err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		return 0, fmt.Errorf("save %s: %w", f.Path, err)
	}

	f.Exists = true
	f.record()
	return cw.n, nil
}

// ChangedOnDisk reports whether the file's size or modification time differs
// from what was last loaded or saved. A file removed since then counts as
// changed.
func (f *File) ChangedOnDisk() (bool, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f.Exists, nil
		}
		return false, err
	}
	if !f.Exists {
		return true, nil
	}
	return !info.ModTime().Equal(f.modTime) || info.Size() != f.size, nil
}

// Sync records the file's current size and modification time as seen.
func (f *File) Sync() {
	f.record()
}

func (f *File) record() {
	if info, err := os.Stat(f.Path); err == nil {
		f.modTime = info.ModTime()
		f.size = info.Size()
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
