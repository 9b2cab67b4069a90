package vim

// MotionType tells an operator how to apply the range a motion covers.
type MotionType uint8

const (
	// Exclusive ranges stop before the character the motion lands on.
	Exclusive MotionType = iota

	// Inclusive ranges include the character the motion lands on.
	Inclusive

	// Linewise ranges cover whole lines.
	Linewise
)

// String returns the type name.
func (t MotionType) String() string {
	switch t {
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	case Linewise:
		return "linewise"
	default:
		return "unknown"
	}
}

// MotionKind identifies a motion.
type MotionKind uint8

const (
	MotionLeft MotionKind = iota
	MotionRight
	MotionUp
	MotionDown
	MotionWordForward
	MotionWORDForward
	MotionWordBackward
	MotionWORDBackward
	MotionWordEnd
	MotionWORDEnd
	MotionWordEndBackward
	MotionWORDEndBackward
	MotionLineStart
	MotionFirstNonBlank
	MotionColumn
	MotionLineEnd
	MotionFileStart
	MotionFileEnd
	MotionFindForward
	MotionFindBackward
	MotionTillForward
	MotionTillBackward
	MotionRepeatFind
	MotionRepeatFindReverse
	MotionMatchPair
	MotionParagraphForward
	MotionParagraphBackward
	MotionNextLineStart
	MotionPrevLineStart
	MotionCurrentLineStart
)

// Motion describes a cursor motion.
type Motion struct {
	// Kind identifies the motion.
	Kind MotionKind

	// Name is the motion identifier (e.g., "wordForward").
	Name string

	// Keys is the key sequence that triggers this motion.
	Keys string

	// Type is the motion's range type when used with an operator.
	Type MotionType

	// NeedsChar indicates the motion takes a character argument (f, t, F, T).
	NeedsChar bool
}

// Standard Vim motions.
var (
	motionLeft            = &Motion{Kind: MotionLeft, Name: "left", Keys: "h", Type: Exclusive}
	motionRight           = &Motion{Kind: MotionRight, Name: "right", Keys: "l", Type: Exclusive}
	motionUp              = &Motion{Kind: MotionUp, Name: "up", Keys: "k", Type: Linewise}
	motionDown            = &Motion{Kind: MotionDown, Name: "down", Keys: "j", Type: Linewise}
	motionWordForward     = &Motion{Kind: MotionWordForward, Name: "wordForward", Keys: "w", Type: Exclusive}
	motionWORDForward     = &Motion{Kind: MotionWORDForward, Name: "WORDForward", Keys: "W", Type: Exclusive}
	motionWordBackward    = &Motion{Kind: MotionWordBackward, Name: "wordBackward", Keys: "b", Type: Exclusive}
	motionWORDBackward    = &Motion{Kind: MotionWORDBackward, Name: "WORDBackward", Keys: "B", Type: Exclusive}
	motionWordEnd         = &Motion{Kind: MotionWordEnd, Name: "wordEnd", Keys: "e", Type: Inclusive}
	motionWORDEnd         = &Motion{Kind: MotionWORDEnd, Name: "WORDEnd", Keys: "E", Type: Inclusive}
	motionWordEndBackward = &Motion{Kind: MotionWordEndBackward, Name: "wordEndBackward", Keys: "ge", Type: Inclusive}
	motionWORDEndBackward = &Motion{Kind: MotionWORDEndBackward, Name: "WORDEndBackward", Keys: "gE", Type: Inclusive}
	motionLineStart       = &Motion{Kind: MotionLineStart, Name: "lineStart", Keys: "0", Type: Exclusive}
	motionFirstNonBlank   = &Motion{Kind: MotionFirstNonBlank, Name: "firstNonBlank", Keys: "^", Type: Exclusive}
	motionColumn          = &Motion{Kind: MotionColumn, Name: "column", Keys: "|", Type: Exclusive}
	motionLineEnd         = &Motion{Kind: MotionLineEnd, Name: "lineEnd", Keys: "$", Type: Inclusive}
	motionFileStart       = &Motion{Kind: MotionFileStart, Name: "fileStart", Keys: "gg", Type: Linewise}
	motionFileEnd         = &Motion{Kind: MotionFileEnd, Name: "fileEnd", Keys: "G", Type: Linewise}
	motionFindForward     = &Motion{Kind: MotionFindForward, Name: "findForward", Keys: "f", Type: Inclusive, NeedsChar: true}
	motionFindBackward    = &Motion{Kind: MotionFindBackward, Name: "findBackward", Keys: "F", Type: Exclusive, NeedsChar: true}
	motionTillForward     = &Motion{Kind: MotionTillForward, Name: "tillForward", Keys: "t", Type: Inclusive, NeedsChar: true}
	motionTillBackward    = &Motion{Kind: MotionTillBackward, Name: "tillBackward", Keys: "T", Type: Exclusive, NeedsChar: true}
	motionRepeatFind      = &Motion{Kind: MotionRepeatFind, Name: "repeatFind", Keys: ";", Type: Inclusive}
	motionRepeatFindRev   = &Motion{Kind: MotionRepeatFindReverse, Name: "repeatFindReverse", Keys: ",", Type: Inclusive}
	motionMatchPair       = &Motion{Kind: MotionMatchPair, Name: "matchPair", Keys: "%", Type: Inclusive}
	motionParagraphFwd    = &Motion{Kind: MotionParagraphForward, Name: "paragraphForward", Keys: "}", Type: Exclusive}
	motionParagraphBack   = &Motion{Kind: MotionParagraphBackward, Name: "paragraphBackward", Keys: "{", Type: Exclusive}
	motionNextLineStart   = &Motion{Kind: MotionNextLineStart, Name: "nextLineStart", Keys: "+", Type: Linewise}
	motionPrevLineStart   = &Motion{Kind: MotionPrevLineStart, Name: "prevLineStart", Keys: "-", Type: Linewise}
	motionCurLineStart    = &Motion{Kind: MotionCurrentLineStart, Name: "currentLineStart", Keys: "_", Type: Linewise}
)

// motions maps single keys to motions.
var motions = map[rune]*Motion{
	'h': motionLeft,
	'l': motionRight,
	'k': motionUp,
	'j': motionDown,
	'w': motionWordForward,
	'W': motionWORDForward,
	'b': motionWordBackward,
	'B': motionWORDBackward,
	'e': motionWordEnd,
	'E': motionWORDEnd,
	'0': motionLineStart,
	'^': motionFirstNonBlank,
	'|': motionColumn,
	'$': motionLineEnd,
	'G': motionFileEnd,
	'f': motionFindForward,
	'F': motionFindBackward,
	't': motionTillForward,
	'T': motionTillBackward,
	';': motionRepeatFind,
	',': motionRepeatFindRev,
	'%': motionMatchPair,
	'}': motionParagraphFwd,
	'{': motionParagraphBack,
	'+': motionNextLineStart,
	'-': motionPrevLineStart,
	'_': motionCurLineStart,
}

// gMotions maps the key after 'g' to motions.
var gMotions = map[rune]*Motion{
	'g': motionFileStart,
	'e': motionWordEndBackward,
	'E': motionWORDEndBackward,
}

// GetMotion returns the motion for a single key, or nil.
func GetMotion(r rune) *Motion {
	return motions[r]
}

// GetGMotion returns the motion for the key after 'g', or nil.
func GetGMotion(r rune) *Motion {
	return gMotions[r]
}

// FindMotionType returns the type of a repeated f/F/t/T search.
func FindMotionType(kind MotionKind) MotionType {
	switch kind {
	case MotionFindBackward, MotionTillBackward:
		return Exclusive
	default:
		return Inclusive
	}
}
