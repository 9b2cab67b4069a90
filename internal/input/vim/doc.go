// Package vim implements the Vim command grammar: a key-by-key state machine
// that accumulates counts, a register, an operator and a motion or text
// object into a Command.
//
// Every key fed to the Parser yields a Result with one of three statuses:
//
//   - StatusPending: the keys so far are a valid prefix; feed more.
//   - StatusResolved: a full Command is ready; the parser is idle again.
//   - StatusCancelled: <Esc>, or a key that cannot continue the prefix.
//     Everything accumulated is discarded.
//
// Grammar (Normal context):
//
//	[count]["x][count]operator[count][v|V](motion | text-object | operator)
//	[count]["x][count]action
//	[count]motion
//
// Counts before and after the operator multiply, so "2d3w" resolves to a
// delete over 6 words. A doubled operator ("dd", "yy", "gUU", "gugu") is
// linewise over count lines. Text objects are two keys ("iw", "a(") and only
// resolve once both have arrived.
//
// In the Visual context operators resolve immediately since the selection
// is their range, and "i"/"a" start text objects instead of inserting.
//
// Motions carry a type tag (Exclusive, Inclusive or Linewise) that tells the
// caller how an operator applies its range.
package vim
