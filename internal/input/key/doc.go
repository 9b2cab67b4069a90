// Package key defines the key events fed to the editor and the Vim-style
// notation used to write them down.
//
// An Event is either a character (Key == KeyRune with Rune set) or a named
// key such as KeyEscape, optionally with modifiers:
//
//	key.Rune('d')
//	key.Ctrl('r')
//	key.Special(key.KeyEscape)
//
// Notation follows Vim: plain characters stand for themselves and named or
// modified keys are written in angle brackets.
//
//	events, err := key.ParseSequence("2d3w<Esc><C-r>")
package key
