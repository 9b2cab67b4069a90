package key

import "strings"

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// prefix returns the Vim notation prefix, such as "C-A-".
func (m Modifier) prefix() string {
	var sb strings.Builder
	if m.Has(ModCtrl) {
		sb.WriteString("C-")
	}
	if m.Has(ModAlt) {
		sb.WriteString("A-")
	}
	if m.Has(ModMeta) {
		sb.WriteString("D-")
	}
	if m.Has(ModShift) {
		sb.WriteString("S-")
	}
	return sb.String()
}

// String returns the modifiers in Vim notation, such as "C-S".
func (m Modifier) String() string {
	return strings.TrimSuffix(m.prefix(), "-")
}

func modifierFromLetter(s string) (Modifier, bool) {
	switch strings.ToLower(s) {
	case "c":
		return ModCtrl, true
	case "a", "m":
		return ModAlt, true
	case "d":
		return ModMeta, true
	case "s":
		return ModShift, true
	}
	return ModNone, false
}
