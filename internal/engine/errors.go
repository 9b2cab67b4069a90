package engine

import (
	"errors"

	"github.com/dshills/vicore/internal/engine/history"
)

// Errors returned by document operations.
var (
	// ErrReadOnly indicates a mutation was attempted on a read-only document.
	ErrReadOnly = errors.New("document is read-only")

	// ErrNothingToUndo indicates the undo side of the log is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo side of the log is empty.
	ErrNothingToRedo = history.ErrNothingToRedo
)
