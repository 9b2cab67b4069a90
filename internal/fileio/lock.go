package fileio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofrs/flock"
)

// ErrLocked indicates another vicore process holds the file's lock.
var ErrLocked = errors.New("file is being edited by another vicore process")

var unsafeChars = regexp.MustCompile(`[^\w\-.]`)

// Lock is an advisory lock on a file name, held for as long as the file is
// open for editing. Lock files live under the temp directory, not beside
// the edited file.
type Lock struct {
	fl   *flock.Flock
	path string
}

// LockDir returns the directory holding lock files.
func LockDir() string {
	return filepath.Join(os.TempDir(), "vicore")
}

// AcquireLock takes the lock for path without blocking. It returns
// ErrLocked if another process holds it.
func AcquireLock(path string) (*Lock, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}

	dir := LockDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}

	l := &Lock{path: filepath.Join(dir, lockName(abs))}
	l.fl = flock.New(l.path)

	locked, err := l.fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("lock %s: %w", path, ErrLocked)
	}
	return l, nil
}

// lockName maps an absolute path to a flat file name.
func lockName(abs string) string {
	name := strings.ReplaceAll(abs, string(filepath.Separator), "--")
	name = strings.ReplaceAll(name, ":", "--")
	name = unsafeChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, ".-")
	if name == "" {
		name = "root"
	}
	return name + ".lock"
}

// Path returns the lock file's location.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks and removes the lock file. Releasing twice is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("unlock: %w", err)
	}
	l.fl = nil
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove lock file: %w", err)
	}
	return nil
}
