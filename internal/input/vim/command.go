package vim

import "strings"

// Action identifies a command that is neither a motion nor an operator.
type Action uint8

const (
	ActionNone Action = iota
	ActionInsert
	ActionAppend
	ActionInsertLineStart
	ActionAppendLineEnd
	ActionOpenBelow
	ActionOpenAbove
	ActionReplaceMode
	ActionVisual
	ActionVisualLine
	ActionPutAfter
	ActionPutBefore
	ActionJoin
	ActionJoinNoSpace
	ActionReplaceChar
	ActionToggleCaseChar
	ActionUndo
	ActionRedo
	ActionWriteQuit
	ActionQuit
	ActionSwapSelectionEnds
)

var actionNames = map[Action]string{
	ActionNone:              "none",
	ActionInsert:            "insert",
	ActionAppend:            "append",
	ActionInsertLineStart:   "insertLineStart",
	ActionAppendLineEnd:     "appendLineEnd",
	ActionOpenBelow:         "openBelow",
	ActionOpenAbove:         "openAbove",
	ActionReplaceMode:       "replaceMode",
	ActionVisual:            "visual",
	ActionVisualLine:        "visualLine",
	ActionPutAfter:          "putAfter",
	ActionPutBefore:         "putBefore",
	ActionJoin:              "join",
	ActionJoinNoSpace:       "joinNoSpace",
	ActionReplaceChar:       "replaceChar",
	ActionToggleCaseChar:    "toggleCaseChar",
	ActionUndo:              "undo",
	ActionRedo:              "redo",
	ActionWriteQuit:         "writeQuit",
	ActionQuit:              "quit",
	ActionSwapSelectionEnds: "swapSelectionEnds",
}

// String returns the action name.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// normalActions maps keys to actions in the Normal context.
var normalActions = map[rune]Action{
	'i': ActionInsert,
	'a': ActionAppend,
	'I': ActionInsertLineStart,
	'A': ActionAppendLineEnd,
	'o': ActionOpenBelow,
	'O': ActionOpenAbove,
	'R': ActionReplaceMode,
	'v': ActionVisual,
	'V': ActionVisualLine,
	'p': ActionPutAfter,
	'P': ActionPutBefore,
	'J': ActionJoin,
	'~': ActionToggleCaseChar,
	'u': ActionUndo,
}

// visualActions maps keys to actions in the Visual context.
var visualActions = map[rune]Action{
	'v': ActionVisual,
	'V': ActionVisualLine,
	'p': ActionPutAfter,
	'P': ActionPutBefore,
	'J': ActionJoin,
	'o': ActionSwapSelectionEnds,
	'O': ActionSwapSelectionEnds,
}

// normalAliases are single keys Vim defines as shorthands for an
// operator-motion pair.
var normalAliases = map[rune]string{
	'x': "dl",
	'X': "dh",
	'D': "d$",
	'C': "c$",
	's': "cl",
	'S': "cc",
	'Y': "yy",
}

// visualOperator is an operator typed in Visual context.
type visualOperator struct {
	op       *Operator
	linewise bool
}

// visualOperators maps keys to the operator they apply to a selection.
var visualOperators = map[rune]visualOperator{
	'd': {OperatorDelete, false},
	'x': {OperatorDelete, false},
	'X': {OperatorDelete, true},
	'D': {OperatorDelete, true},
	'c': {OperatorChange, false},
	's': {OperatorChange, false},
	'C': {OperatorChange, true},
	'S': {OperatorChange, true},
	'R': {OperatorChange, true},
	'y': {OperatorYank, false},
	'Y': {OperatorYank, true},
	'>': {OperatorIndent, false},
	'<': {OperatorOutdent, false},
	'u': {OperatorLowercase, false},
	'U': {OperatorUppercase, false},
	'~': {OperatorToggleCase, false},
}

// ForceType overrides a motion's type after an operator ("dvj", "dVw").
type ForceType uint8

const (
	ForceNone ForceType = iota
	ForceCharwise
	ForceLinewise
)

// Command is a fully parsed command.
type Command struct {
	// Count is the product of all counts typed, or 0 if none was typed.
	Count int

	// Register is the register named with "x, or 0 for the default.
	Register rune

	// Operator is the operator, if any.
	Operator *Operator

	// Motion is the motion, if any.
	Motion *Motion

	// TextObject is the text object, if any; Inner selects i over a.
	TextObject *TextObject
	Inner      bool

	// Char is the character argument of f/F/t/T and r.
	Char rune

	// Linewise is set for doubled operators (dd, yy) and linewise visual
	// operators (X, Y).
	Linewise bool

	// Force is a v/V override typed between operator and motion.
	Force ForceType

	// Action is set for commands that are neither motions nor operators.
	Action Action

	// Keys are the keys that produced the command, in Vim notation.
	Keys string
}

// EffectiveCount returns the count to apply (1 if none was typed).
func (c *Command) EffectiveCount() int {
	if c.Count <= 0 {
		return 1
	}
	return c.Count
}

// HasCount reports whether a count was typed.
func (c *Command) HasCount() bool {
	return c.Count > 0
}

// MotionType returns the motion's type after any v/V override.
func (c *Command) MotionType() MotionType {
	if c.Motion == nil {
		return Exclusive
	}
	return ForceMotionType(c.Motion.Type, c.Force)
}

// ForceMotionType applies a v/V override to t. Forcing v on a charwise
// motion toggles between exclusive and inclusive; on a linewise motion it
// makes it exclusive.
func ForceMotionType(t MotionType, f ForceType) MotionType {
	switch f {
	case ForceLinewise:
		return Linewise
	case ForceCharwise:
		if t == Exclusive {
			return Inclusive
		}
		return Exclusive
	}
	return t
}

// String returns the keys that produced the command.
func (c *Command) String() string {
	return c.Keys
}

func joinKeys(keys []string) string {
	return strings.Join(keys, "")
}
