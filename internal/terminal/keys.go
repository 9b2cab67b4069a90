package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vicore/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// TranslateKey converts a terminal key press to an editor key event. It
// returns false for keys the editor has no name for.
func TranslateKey(ev *tcell.EventKey) (key.Event, bool) {
	k := ev.Key()
	mods := ev.Modifiers()

	if k == tcell.KeyRune {
		e := key.Rune(ev.Rune())
		if mods&tcell.ModAlt != 0 {
			e.Mod = e.Mod.With(key.ModAlt)
		}
		return e, true
	}

	if named, ok := specialKeys[k]; ok {
		e := key.Special(named)
		// Control codes below DEL carry their own meaning; only the
		// extended keys take modifiers.
		if k > tcell.KeyDEL {
			if mods&tcell.ModCtrl != 0 {
				e.Mod = e.Mod.With(key.ModCtrl)
			}
			if mods&tcell.ModShift != 0 {
				e.Mod = e.Mod.With(key.ModShift)
			}
			if mods&tcell.ModAlt != 0 {
				e.Mod = e.Mod.With(key.ModAlt)
			}
		}
		return e, true
	}

	switch {
	case k == tcell.KeyCtrlSpace:
		return key.Ctrl(' '), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.Ctrl(rune('a' + (k - tcell.KeyCtrlA))), true
	}
	return key.Event{}, false
}
