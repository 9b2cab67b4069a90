package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a single key in Vim notation: "a", "<Esc>", "<C-r>", "<CR>".
func Parse(spec string) (Event, error) {
	events, err := ParseSequence(spec)
	if err != nil {
		return Event{}, err
	}
	if len(events) != 1 {
		return Event{}, fmt.Errorf("%w: %q is %d keys", ErrInvalidSpec, spec, len(events))
	}
	return events[0], nil
}

// ParseSequence parses a run of keys, such as "dd", "2d3w" or "ihi<Esc>".
// A '<' that does not start a valid bracketed name is an error; write a
// literal '<' as "<lt>".
func ParseSequence(spec string) ([]Event, error) {
	if spec == "" {
		return nil, ErrEmptySpec
	}

	var events []Event
	for len(spec) > 0 {
		if spec[0] == '<' {
			end := strings.IndexByte(spec, '>')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
			}
			ev, err := parseBracketed(spec[1:end])
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
			spec = spec[end+1:]
			continue
		}
		r, size := utf8.DecodeRuneInString(spec)
		events = append(events, Rune(r))
		spec = spec[size:]
	}
	return events, nil
}

// MustParseSequence is ParseSequence for known-valid specs; it panics on error.
func MustParseSequence(spec string) []Event {
	events, err := ParseSequence(spec)
	if err != nil {
		panic("invalid key sequence " + spec + ": " + err.Error())
	}
	return events
}

func parseBracketed(inner string) (Event, error) {
	if inner == "" {
		return Event{}, fmt.Errorf("%w: <>", ErrInvalidSpec)
	}

	var mods Modifier
	// "C-S-x": every part before the last is a modifier letter. A trailing
	// "-" as in "<C-->" names the minus key.
	for {
		dash := strings.IndexByte(inner, '-')
		if dash <= 0 || dash == len(inner)-1 {
			break
		}
		mod, ok := modifierFromLetter(inner[:dash])
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, inner[:dash])
		}
		mods = mods.With(mod)
		inner = inner[dash+1:]
	}

	switch strings.ToLower(inner) {
	case "space":
		return Event{Key: KeyRune, Rune: ' ', Mod: mods}, nil
	case "lt":
		return Event{Key: KeyRune, Rune: '<', Mod: mods}, nil
	case "bar":
		return Event{Key: KeyRune, Rune: '|', Mod: mods}, nil
	case "bslash":
		return Event{Key: KeyRune, Rune: '\\', Mod: mods}, nil
	}
	if k := FromName(inner); k != KeyNone {
		return Event{Key: k, Mod: mods}, nil
	}
	if utf8.RuneCountInString(inner) == 1 {
		r, _ := utf8.DecodeRuneInString(inner)
		if mods.Has(ModCtrl) {
			return Ctrl(r).withMod(mods), nil
		}
		return Event{Key: KeyRune, Rune: r, Mod: mods}, nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, inner)
}

func (e Event) withMod(m Modifier) Event {
	e.Mod = e.Mod.With(m)
	return e
}
