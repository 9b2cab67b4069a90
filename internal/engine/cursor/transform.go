package cursor

import "github.com/dshills/vicore/internal/engine/buffer"

// TransformOffset updates an offset after an edit.
//
// Transformation rules:
//   - edit entirely before offset: shift by the edit's delta
//   - edit starts at or after offset: unchanged
//   - edit spans offset: move to the end of the new text
func TransformOffset(offset int, e buffer.Edit) int {
	if e.Range.End <= offset {
		return offset + e.Delta()
	}
	if e.Range.Start >= offset {
		return offset
	}
	return e.End()
}
