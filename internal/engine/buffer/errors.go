package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer mutations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrStaleEdit        = errors.New("edit does not match buffer content")
)

// BoundsError describes a position outside the buffer. Read accessors panic
// with a *BoundsError; it indicates a caller bug, not bad user input.
type BoundsError struct {
	Op     string
	Line   int
	Column int
	Offset int
	Limit  int
}

func (e *BoundsError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("buffer: %s: offset %d out of bounds [0, %d]", e.Op, e.Offset, e.Limit)
	}
	return fmt.Sprintf("buffer: %s: position %d:%d out of bounds (limit %d)", e.Op, e.Line, e.Column, e.Limit)
}

// Unwrap lets errors.Is match ErrOffsetOutOfRange.
func (e *BoundsError) Unwrap() error {
	return ErrOffsetOutOfRange
}

func offsetBounds(op string, off, limit int) *BoundsError {
	return &BoundsError{Op: op, Offset: off, Limit: limit}
}

func pointBounds(op string, p Point, limit int) *BoundsError {
	return &BoundsError{Op: op, Line: p.Line, Column: p.Column, Offset: -1, Limit: limit}
}
