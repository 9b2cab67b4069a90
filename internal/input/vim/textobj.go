package vim

// TextObjectKind identifies a text object.
type TextObjectKind uint8

const (
	ObjWord TextObjectKind = iota
	ObjWORD
	ObjSentence
	ObjParagraph
	ObjDoubleQuote
	ObjSingleQuote
	ObjBackQuote
	ObjParen
	ObjBracket
	ObjBrace
	ObjAngle
)

// TextObject represents a Vim text object.
// Text objects select regions of text based on structure rather than motion.
type TextObject struct {
	// Kind identifies the object.
	Kind TextObjectKind

	// Name is the text object identifier (e.g., "word", "paren").
	Name string

	// Open and Close are the delimiters for quote and bracket objects.
	Open, Close rune
}

// IsQuote returns true for the quote objects.
func (o *TextObject) IsQuote() bool {
	return o.Kind == ObjDoubleQuote || o.Kind == ObjSingleQuote || o.Kind == ObjBackQuote
}

// IsBracket returns true for the bracket-pair objects.
func (o *TextObject) IsBracket() bool {
	return o.Kind >= ObjParen && o.Kind <= ObjAngle
}

// Standard Vim text objects.
var (
	TextObjWord        = &TextObject{Kind: ObjWord, Name: "word"}
	TextObjWORD        = &TextObject{Kind: ObjWORD, Name: "WORD"}
	TextObjSentence    = &TextObject{Kind: ObjSentence, Name: "sentence"}
	TextObjParagraph   = &TextObject{Kind: ObjParagraph, Name: "paragraph"}
	TextObjDoubleQuote = &TextObject{Kind: ObjDoubleQuote, Name: "doubleQuote", Open: '"', Close: '"'}
	TextObjSingleQuote = &TextObject{Kind: ObjSingleQuote, Name: "singleQuote", Open: '\'', Close: '\''}
	TextObjBackQuote   = &TextObject{Kind: ObjBackQuote, Name: "backQuote", Open: '`', Close: '`'}
	TextObjParen       = &TextObject{Kind: ObjParen, Name: "paren", Open: '(', Close: ')'}
	TextObjBracket     = &TextObject{Kind: ObjBracket, Name: "bracket", Open: '[', Close: ']'}
	TextObjBrace       = &TextObject{Kind: ObjBrace, Name: "brace", Open: '{', Close: '}'}
	TextObjAngle       = &TextObject{Kind: ObjAngle, Name: "angle", Open: '<', Close: '>'}
)

// textObjects maps the key after 'i' or 'a' to text objects.
var textObjects = map[rune]*TextObject{
	'w':  TextObjWord,
	'W':  TextObjWORD,
	's':  TextObjSentence,
	'p':  TextObjParagraph,
	'"':  TextObjDoubleQuote,
	'\'': TextObjSingleQuote,
	'`':  TextObjBackQuote,
	'(':  TextObjParen,
	')':  TextObjParen,
	'b':  TextObjParen,
	'[':  TextObjBracket,
	']':  TextObjBracket,
	'{':  TextObjBrace,
	'}':  TextObjBrace,
	'B':  TextObjBrace,
	'<':  TextObjAngle,
	'>':  TextObjAngle,
}

// GetTextObject returns the text object for the key after 'i' or 'a', or nil.
func GetTextObject(r rune) *TextObject {
	return textObjects[r]
}
