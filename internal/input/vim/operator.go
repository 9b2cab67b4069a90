package vim

// OperatorKind identifies an operator.
type OperatorKind uint8

const (
	OpDelete OperatorKind = iota
	OpChange
	OpYank
	OpIndent
	OpOutdent
	OpLowercase
	OpUppercase
	OpToggleCase
)

// Operator represents a Vim operator: a command that needs a range.
type Operator struct {
	// Kind identifies the operator.
	Kind OperatorKind

	// Name is the operator identifier (e.g., "delete").
	Name string

	// Keys is the full key sequence ("d", "gU").
	Keys string

	// Key is the key that, repeated, makes the operator linewise
	// ("dd", "gUU", "gugu").
	Key rune

	// G is set for operators typed after a 'g' prefix.
	G bool

	// Modifies indicates the operator changes text.
	Modifies bool
}

// Standard Vim operators.
var (
	OperatorDelete     = &Operator{Kind: OpDelete, Name: "delete", Keys: "d", Key: 'd', Modifies: true}
	OperatorChange     = &Operator{Kind: OpChange, Name: "change", Keys: "c", Key: 'c', Modifies: true}
	OperatorYank       = &Operator{Kind: OpYank, Name: "yank", Keys: "y", Key: 'y'}
	OperatorIndent     = &Operator{Kind: OpIndent, Name: "indent", Keys: ">", Key: '>', Modifies: true}
	OperatorOutdent    = &Operator{Kind: OpOutdent, Name: "outdent", Keys: "<", Key: '<', Modifies: true}
	OperatorLowercase  = &Operator{Kind: OpLowercase, Name: "lowercase", Keys: "gu", Key: 'u', G: true, Modifies: true}
	OperatorUppercase  = &Operator{Kind: OpUppercase, Name: "uppercase", Keys: "gU", Key: 'U', G: true, Modifies: true}
	OperatorToggleCase = &Operator{Kind: OpToggleCase, Name: "toggleCase", Keys: "g~", Key: '~', G: true, Modifies: true}
)

// operators maps single keys to operators.
var operators = map[rune]*Operator{
	'd': OperatorDelete,
	'c': OperatorChange,
	'y': OperatorYank,
	'>': OperatorIndent,
	'<': OperatorOutdent,
}

// gOperators maps the key after 'g' to operators.
var gOperators = map[rune]*Operator{
	'u': OperatorLowercase,
	'U': OperatorUppercase,
	'~': OperatorToggleCase,
}

// GetOperator returns the operator for a key, or nil.
func GetOperator(r rune) *Operator {
	return operators[r]
}

// GetGOperator returns the operator for the key after 'g', or nil.
func GetGOperator(r rune) *Operator {
	return gOperators[r]
}
