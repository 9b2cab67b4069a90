// Package history provides undo/redo for a text buffer.
//
// The log stores groups of primitive buffer edits. A group is the unit of
// undo: one Normal-mode command, or one Insert-mode session from entry to
// <Esc>, undoes as a whole.
//
// # Groups
//
//	log := history.New(1000)
//
//	log.BeginGroup("delete word", cursor)
//	log.Record(edit) // every edit applied while the group is open
//	log.EndGroup()
//
// Groups nest; only the outermost EndGroup commits. Scope returns a value
// whose End method can be deferred. Empty groups are discarded when they
// close, and committing a non-empty group truncates any redo history.
//
// # Coalescing
//
// Inside a group, an insert that starts where the previous insert ended is
// merged into it, and a backspace that removes the tail of the previous
// insert shrinks it. Runs of deletions at one point are merged the same way,
// so a typed run costs one edit however many keys produced it.
//
// # Undo and redo
//
// Undo applies the inverses of the group's edits in reverse order through an
// Applier (normally the buffer) and returns the offset where the cursor
// should go: the start of the group's first edit.
package history
