// Package editor is the modal command engine. An Editor owns one document,
// its cursor model and the Vim command parser, and turns key events into
// edits, cursor moves and mode transitions.
//
// Key handling is single-threaded: HandleKey fully processes one event
// before returning. Renderers read state through View, which is a copy that
// stays valid until the next HandleKey call.
//
// Modes form a closed set (Normal, Insert, Replace, Visual, VisualLine and
// the transient OperatorPending) and are dispatched by an explicit switch:
//
//	Normal + i/a/I/A/o/O    -> Insert, undo group opened
//	Normal + R              -> Replace
//	Normal + v/V            -> Visual/VisualLine, selection anchored at cursor
//	Normal + operator       -> OperatorPending until the motion arrives
//	Insert/Replace + <Esc>  -> Normal, group closed, cursor one left
//	Visual* + operator      -> Normal (Insert for change), selection dropped
//
// Operator ranges are derived from the motion's type tag (exclusive,
// inclusive or linewise) with Vim's exclusive adjustment rules applied.
package editor
