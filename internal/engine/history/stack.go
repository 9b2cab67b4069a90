package history

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dshills/vicore/internal/engine/buffer"
)

// Common errors for history operations. Both are no-op reports, not failures.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxGroups is used when New is given a non-positive limit.
const DefaultMaxGroups = 1000

// Applier applies a primitive edit. *buffer.Buffer satisfies it.
type Applier interface {
	Apply(e buffer.Edit) (buffer.Edit, error)
}

// Log is an ordered stack of edit groups with an index separating the undo
// side (below) from the redo side (at and above).
type Log struct {
	mu sync.Mutex

	groups []*Group
	index  int

	// grouping state
	open  *Group
	depth int

	maxGroups int
}

// New creates a log holding at most maxGroups groups.
func New(maxGroups int) *Log {
	if maxGroups <= 0 {
		maxGroups = DefaultMaxGroups
	}
	return &Log{maxGroups: maxGroups}
}

// BeginGroup opens a group. Nested calls only increase the depth; the group
// is named by the outermost call.
func (l *Log) BeginGroup(name string, cursor buffer.Point) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.depth++
	if l.depth > 1 {
		return
	}
	l.open = &Group{Name: name, Cursor: cursor, Timestamp: time.Now()}
}

// EndGroup closes the innermost group. When the outermost group closes it is
// committed, or discarded if it recorded nothing.
func (l *Log) EndGroup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.depth == 0 {
		return
	}
	l.depth--
	if l.depth == 0 {
		l.commitLocked()
	}
}

// Scope opens a group and returns a handle whose End closes it.
func (l *Log) Scope(name string, cursor buffer.Point) *Scope {
	l.BeginGroup(name, cursor)
	return &Scope{log: l, active: true}
}

// CloseAll commits the open group regardless of nesting depth. It is used
// when an operation is aborted and must not leave a group dangling.
func (l *Log) CloseAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.depth > 0 {
		l.depth = 0
		l.commitLocked()
	}
}

// IsGrouping returns true while a group is open.
func (l *Log) IsGrouping() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.depth > 0
}

// Record appends an applied edit to the open group. Without an open group
// the edit becomes a group of its own.
func (l *Log) Record(e buffer.Edit) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.depth > 0 {
		l.open.add(e)
		return
	}
	g := &Group{Name: "edit", Timestamp: time.Now()}
	g.add(e)
	l.open = g
	l.commitLocked()
}

func (l *Log) commitLocked() {
	g := l.open
	l.open = nil
	if g == nil || g.IsEmpty() {
		return
	}

	// a new edit discards everything that could have been redone
	l.groups = append(l.groups[:l.index], g)
	l.index++

	if excess := len(l.groups) - l.maxGroups; excess > 0 {
		l.groups = l.groups[excess:]
		l.index -= excess
	}
}

// Undo reverts the group below the index and returns the start offset of the
// group's first edit.
func (l *Log) Undo(a Applier) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.depth > 0 {
		l.depth = 0
		l.commitLocked()
	}
	if l.index == 0 {
		return 0, ErrNothingToUndo
	}

	g := l.groups[l.index-1]
	for i := len(g.Edits) - 1; i >= 0; i-- {
		if _, err := a.Apply(g.Edits[i].Invert()); err != nil {
			errs := []error{fmt.Errorf("undo %q: %w", g.Name, err)}
			// put back what was already reverted
			for j := i + 1; j < len(g.Edits); j++ {
				if _, rerr := a.Apply(g.Edits[j]); rerr != nil {
					errs = append(errs, fmt.Errorf("rollback %q: %w", g.Name, rerr))
				}
			}
			return 0, errors.Join(errs...)
		}
	}
	l.index--
	return g.Start(), nil
}

// Redo re-applies the group at the index and returns the start offset of
// the group's first edit.
func (l *Log) Redo(a Applier) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.depth > 0 {
		l.depth = 0
		l.commitLocked()
	}
	if l.index == len(l.groups) {
		return 0, ErrNothingToRedo
	}

	g := l.groups[l.index]
	for i, e := range g.Edits {
		if _, err := a.Apply(e); err != nil {
			errs := []error{fmt.Errorf("redo %q: %w", g.Name, err)}
			for j := i - 1; j >= 0; j-- {
				if _, rerr := a.Apply(g.Edits[j].Invert()); rerr != nil {
					errs = append(errs, fmt.Errorf("rollback %q: %w", g.Name, rerr))
				}
			}
			return 0, errors.Join(errs...)
		}
	}
	l.index++
	return g.Start(), nil
}

// CanRedo returns true if redo is available.
func (l *Log) CanRedo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index < len(l.groups)
}

// UndoCount returns the number of groups that can be undone.
func (l *Log) UndoCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index
}

// RedoCount returns the number of groups that can be redone.
func (l *Log) RedoCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.groups) - l.index
}

// PeekUndo returns the group the next Undo would revert.
func (l *Log) PeekUndo() (Group, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index == 0 {
		return Group{}, false
	}
	return *l.groups[l.index-1], true
}

// SetMaxGroups changes the cap, dropping the oldest groups if needed.
func (l *Log) SetMaxGroups(n int) {
	if n <= 0 {
		n = DefaultMaxGroups
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.maxGroups = n
	if excess := len(l.groups) - n; excess > 0 {
		l.groups = l.groups[excess:]
		l.index = max(l.index-excess, 0)
	}
}

// MaxGroups returns the cap on stored groups.
func (l *Log) MaxGroups() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxGroups
}
