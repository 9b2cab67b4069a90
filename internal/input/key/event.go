package key

import (
	"fmt"
	"unicode"
)

// Event is a single key press.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// Rune creates the event for typing r.
func Rune(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Ctrl creates the event for Ctrl and r, such as <C-r>.
func Ctrl(r rune) Event {
	return Event{Key: KeyRune, Rune: unicode.ToLower(r), Mod: ModCtrl}
}

// Special creates the event for a named key.
func Special(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true if this is a character key.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true for a printable character typed without Ctrl, Alt or
// Meta. Shift is part of the character.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.Mod.Has(ModCtrl|ModAlt|ModMeta) && unicode.IsPrint(e.Rune)
}

// IsDigit returns true for an unmodified decimal digit.
func (e Event) IsDigit() bool {
	return e.IsChar() && e.Rune >= '0' && e.Rune <= '9'
}

// Is returns true if e is the unmodified named key k.
func (e Event) Is(k Key) bool {
	return e.Key == k && e.Mod == ModNone
}

// IsCtrl returns true if e is Ctrl plus the letter r.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Mod == ModCtrl && unicode.ToLower(e.Rune) == unicode.ToLower(r)
}

// IsCancel returns true for the keys that abandon pending input: <Esc> and
// <C-c>.
func (e Event) IsCancel() bool {
	return e.Is(KeyEscape) || e.IsCtrl('c')
}

// String returns the event in Vim notation: "a", "<Esc>", "<C-r>".
func (e Event) String() string {
	if e.IsChar() {
		switch e.Rune {
		case '<':
			return "<lt>"
		case ' ':
			return "<Space>"
		}
		return string(e.Rune)
	}
	mods := e.Mod
	var name string
	switch e.Key {
	case KeyRune:
		switch e.Rune {
		case ' ':
			name = "Space"
		case '<':
			name = "lt"
		default:
			name = string(e.Rune)
		}
		if mods.Has(ModShift) && unicode.IsUpper(e.Rune) {
			mods &^= ModShift
		}
	case KeyNone:
		return "<None>"
	default:
		name = e.Key.String()
	}
	return "<" + mods.prefix() + name + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("key.Event{Key: %s, Rune: %q, Mod: %q}", e.Key, e.Rune, e.Mod)
}
