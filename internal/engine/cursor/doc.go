// Package cursor tracks cursor positions and the visual selection over a
// read-only view of the document.
//
// The Model never mutates text. It only reads line count and line contents
// through a buffer.Reader to clamp positions:
//
//   - PolicyNormal: the cursor rests on a character; the column just past
//     the last character is only allowed on an empty line.
//   - PolicyInsert: the end-of-line column is allowed.
//
// Columns are byte offsets within a line, but horizontal stepping and the
// sticky column work in grapheme clusters and display cells, so a cursor
// never lands inside a multi-byte character.
//
// Selection Model:
//
// A Selection has an anchor (where it started), an active end (the cursor)
// and a kind: character, line or block. Selections exist only while the
// model is in visual state; calling a selection method outside of it is a
// programming error and panics.
//
// Secondary cursors are kept as byte offsets and shifted with Transform
// after each primitive edit.
package cursor
