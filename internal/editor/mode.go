package editor

import "github.com/dshills/vicore/internal/engine/cursor"

// Mode is an editing mode.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeReplace
	ModeVisual
	ModeVisualLine
	// ModeOperatorPending is reported while an operator waits for its
	// motion. It is derived from the parser, never entered directly.
	ModeOperatorPending
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeReplace:
		return "replace"
	case ModeVisual:
		return "visual"
	case ModeVisualLine:
		return "visual line"
	case ModeOperatorPending:
		return "operator pending"
	default:
		return "unknown"
	}
}

// DisplayName returns the status line label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeInsert:
		return "-- INSERT --"
	case ModeReplace:
		return "-- REPLACE --"
	case ModeVisual:
		return "-- VISUAL --"
	case ModeVisualLine:
		return "-- VISUAL LINE --"
	default:
		return ""
	}
}

// IsVisual returns true for the visual modes.
func (m Mode) IsVisual() bool {
	return m == ModeVisual || m == ModeVisualLine
}

// CursorStyle is the cursor shape a renderer should draw.
type CursorStyle uint8

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorUnderline
)

// CursorStyle returns the cursor shape for the mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case ModeInsert:
		return CursorBar
	case ModeReplace, ModeOperatorPending:
		return CursorUnderline
	default:
		return CursorBlock
	}
}

func (m Mode) policy() cursor.Policy {
	if m == ModeInsert || m == ModeReplace {
		return cursor.PolicyInsert
	}
	return cursor.PolicyNormal
}
