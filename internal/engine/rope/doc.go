// Package rope provides a persistent rope for document text storage.
//
// A rope is a height-balanced binary tree whose leaves hold bounded text chunks
// and whose internal nodes carry aggregated metrics (byte count and newline
// count) for their subtree. Because every node knows how many bytes and
// newlines lie beneath it, offset and line lookups descend a single path and
// cost O(log n) plus a scan of one chunk; there is no separate line index to
// rebuild after an edit.
//
// Ropes are immutable values. Insert and Delete return new ropes that share
// untouched subtrees with the original, which makes snapshots free:
//
//	r := rope.FromString("hello world")
//	r2 := r.Insert(5, ",")   // "hello, world"
//	r3 := r2.Delete(0, 7)    // "world"
//	_ = r.String()           // still "hello world"
//
// Offsets are byte offsets into UTF-8 text. Lines are 0-indexed and separated
// by '\n'; a rope of n newlines has n+1 lines.
package rope
