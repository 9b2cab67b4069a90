// Package engine ties the text buffer to its undo log.
//
// A Document owns a buffer.Buffer and a history.Log. Every mutation goes
// through the Document, which applies it to the buffer and records the
// resulting edit, so the log can never drift from the text. Components that
// only need to look at the text (cursor clamping, rendering) get a
// buffer.Reader from Reader and cannot mutate through it.
//
//	doc := engine.New(engine.WithContent("hello"))
//
//	doc.BeginGroup("append", buffer.Point{})
//	doc.Insert(5, " world")
//	doc.EndGroup()
//
//	pos, _ := doc.Undo() // text is "hello" again, pos is (0:5)
//
// Documents also carry identity (a UUID used in log records), the path the
// text is bound to, and dirty tracking against the last saved revision.
package engine
