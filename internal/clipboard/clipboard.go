// Package clipboard connects the + and * registers to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates no clipboard utility is installed.
var ErrUnavailable = errors.New("system clipboard unavailable")

// System reads and writes the system clipboard.
type System struct{}

// Get returns the clipboard text.
func (System) Get() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return s, nil
}

// Set replaces the clipboard text.
func (System) Set(content string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Available reports whether the system clipboard can be used.
func Available() bool {
	return !clipboard.Unsupported
}

// Memory is a process-local clipboard, used when the system one is
// disabled or unavailable.
type Memory struct {
	mu      sync.Mutex
	content string
}

// Get returns the stored text.
func (m *Memory) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content, nil
}

// Set stores content.
func (m *Memory) Set(content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = content
	return nil
}
