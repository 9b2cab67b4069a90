// Package buffer provides the mutable text buffer the editor engine operates
// on. A Buffer is a handle over a persistent rope: every mutation swaps in a
// new rope value, so snapshots taken before an edit stay valid and cost
// nothing to keep.
//
// Mutations return an Edit describing exactly what changed (range, old text
// and new text). Edits are invertible, which is what the undo log builds on:
//
//	buf := buffer.NewFromString("Hello, World!")
//	e, _ := buf.Insert(7, "Beautiful ")  // "Hello, Beautiful World!"
//	_, _ = buf.Apply(e.Invert())         // "Hello, World!"
//
// Positions:
//
//   - offsets are byte positions into the text
//   - Point is a 0-indexed line and byte column
//
// Read accessors treat an invalid line, point or offset as a contract
// violation and panic with a *BoundsError. Callers that are not sure a
// position is valid use CheckPoint or CheckOffset first; mutating methods
// return ErrOffsetOutOfRange or ErrRangeInvalid instead of panicking.
//
// The buffer never rewrites line endings. Decoding and newline normalisation
// happen before text reaches it.
package buffer
