package vim

import (
	"errors"
	"testing"

	"github.com/dshills/vicore/internal/input/key"
)

// feed types a key sequence in Vim notation and returns the last result.
func feed(t *testing.T, p *Parser, keys string) Result {
	t.Helper()
	var result Result
	for _, ev := range key.MustParseSequence(keys) {
		result = p.Feed(ev)
	}
	return result
}

// resolve types keys and requires a resolved command.
func resolve(t *testing.T, p *Parser, keys string) *Command {
	t.Helper()
	result := feed(t, p, keys)
	if result.Status != StatusResolved {
		t.Fatalf("%q: status = %v, want resolved", keys, result.Status)
	}
	if result.Command == nil {
		t.Fatalf("%q: resolved without a command", keys)
	}
	return result.Command
}

func TestParserMotions(t *testing.T) {
	tests := []struct {
		input     string
		wantKind  MotionKind
		wantType  MotionType
		wantCount int
	}{
		{"h", MotionLeft, Exclusive, 0},
		{"j", MotionDown, Linewise, 0},
		{"w", MotionWordForward, Exclusive, 0},
		{"e", MotionWordEnd, Inclusive, 0},
		{"0", MotionLineStart, Exclusive, 0},
		{"$", MotionLineEnd, Inclusive, 0},
		{"G", MotionFileEnd, Linewise, 0},
		{"gg", MotionFileStart, Linewise, 0},
		{"ge", MotionWordEndBackward, Inclusive, 0},
		{"5j", MotionDown, Linewise, 5},
		{"10w", MotionWordForward, Exclusive, 10},
		{"25G", MotionFileEnd, Linewise, 25},
		{"<Left>", MotionLeft, Exclusive, 0},
		{"<Down>", MotionDown, Linewise, 0},
		{"<End>", MotionLineEnd, Inclusive, 0},
		{"<Space>", MotionRight, Exclusive, 0},
		{"<CR>", MotionNextLineStart, Linewise, 0},
		{"%", MotionMatchPair, Inclusive, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := resolve(t, NewParser(), tt.input)
			if cmd.Motion == nil {
				t.Fatal("expected a motion")
			}
			if cmd.Operator != nil {
				t.Errorf("unexpected operator %s", cmd.Operator.Name)
			}
			if cmd.Motion.Kind != tt.wantKind {
				t.Errorf("motion = %s", cmd.Motion.Name)
			}
			if cmd.MotionType() != tt.wantType {
				t.Errorf("type = %v, want %v", cmd.MotionType(), tt.wantType)
			}
			if cmd.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", cmd.Count, tt.wantCount)
			}
		})
	}
}

func TestParserOperatorMotion(t *testing.T) {
	tests := []struct {
		input      string
		wantOp     OperatorKind
		wantMotion MotionKind
		wantCount  int
	}{
		{"dw", OpDelete, MotionWordForward, 0},
		{"cw", OpChange, MotionWordForward, 0},
		{"yw", OpYank, MotionWordForward, 0},
		{"d3w", OpDelete, MotionWordForward, 3},
		{"3dw", OpDelete, MotionWordForward, 3},
		{"2d3w", OpDelete, MotionWordForward, 6},
		{"d$", OpDelete, MotionLineEnd, 0},
		{"dgg", OpDelete, MotionFileStart, 0},
		{"gUw", OpUppercase, MotionWordForward, 0},
		{"g~e", OpToggleCase, MotionWordEnd, 0},
		{">j", OpIndent, MotionDown, 0},
		{"d<Left>", OpDelete, MotionLeft, 0},
		{"d<BS>", OpDelete, MotionLeft, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := resolve(t, NewParser(), tt.input)
			if cmd.Operator == nil || cmd.Operator.Kind != tt.wantOp {
				t.Fatalf("operator = %v", cmd.Operator)
			}
			if cmd.Motion == nil || cmd.Motion.Kind != tt.wantMotion {
				t.Fatalf("motion = %v", cmd.Motion)
			}
			if cmd.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", cmd.Count, tt.wantCount)
			}
			if cmd.Keys != tt.input {
				t.Errorf("keys = %q, want %q", cmd.Keys, tt.input)
			}
		})
	}
}

func TestParserCountsMultiply(t *testing.T) {
	for _, input := range []string{"6dw", "d6w", "2d3w", "3d2w"} {
		cmd := resolve(t, NewParser(), input)
		if cmd.EffectiveCount() != 6 {
			t.Errorf("%q: count = %d, want 6", input, cmd.EffectiveCount())
		}
	}

	cmd := resolve(t, NewParser(), `2"a3dw`)
	if cmd.Count != 6 || cmd.Register != 'a' {
		t.Errorf(`2"a3dw: count = %d register = %q`, cmd.Count, cmd.Register)
	}
}

func TestParserLinewise(t *testing.T) {
	tests := []struct {
		input     string
		wantOp    OperatorKind
		wantCount int
	}{
		{"dd", OpDelete, 0},
		{"yy", OpYank, 0},
		{"cc", OpChange, 0},
		{">>", OpIndent, 0},
		{"<lt><lt>", OpOutdent, 0},
		{"gUU", OpUppercase, 0},
		{"gugu", OpLowercase, 0},
		{"g~~", OpToggleCase, 0},
		{"3dd", OpDelete, 3},
		{"d2d", OpDelete, 2},
		{"2y3y", OpYank, 6},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := resolve(t, NewParser(), tt.input)
			if !cmd.Linewise {
				t.Error("expected linewise")
			}
			if cmd.Motion != nil {
				t.Errorf("unexpected motion %s", cmd.Motion.Name)
			}
			if cmd.Operator == nil || cmd.Operator.Kind != tt.wantOp {
				t.Fatalf("operator = %v", cmd.Operator)
			}
			if cmd.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", cmd.Count, tt.wantCount)
			}
		})
	}
}

func TestParserAliases(t *testing.T) {
	tests := []struct {
		input    string
		wantOp   OperatorKind
		motion   MotionKind
		linewise bool
	}{
		{"x", OpDelete, MotionRight, false},
		{"<Del>", OpDelete, MotionRight, false},
		{"X", OpDelete, MotionLeft, false},
		{"D", OpDelete, MotionLineEnd, false},
		{"C", OpChange, MotionLineEnd, false},
		{"s", OpChange, MotionRight, false},
		{"S", OpChange, 0, true},
		{"Y", OpYank, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := resolve(t, NewParser(), tt.input)
			if cmd.Operator == nil || cmd.Operator.Kind != tt.wantOp {
				t.Fatalf("operator = %v", cmd.Operator)
			}
			if cmd.Linewise != tt.linewise {
				t.Errorf("linewise = %v", cmd.Linewise)
			}
			if !tt.linewise && (cmd.Motion == nil || cmd.Motion.Kind != tt.motion) {
				t.Errorf("motion = %v", cmd.Motion)
			}
		})
	}

	cmd := resolve(t, NewParser(), "3x")
	if cmd.Count != 3 {
		t.Errorf("3x: count = %d", cmd.Count)
	}
}

func TestParserTextObjects(t *testing.T) {
	tests := []struct {
		input     string
		wantOp    OperatorKind
		wantObj   TextObjectKind
		wantInner bool
	}{
		{"diw", OpDelete, ObjWord, true},
		{"daw", OpDelete, ObjWord, false},
		{"ciW", OpChange, ObjWORD, true},
		{`di"`, OpDelete, ObjDoubleQuote, true},
		{"ya'", OpYank, ObjSingleQuote, false},
		{"dib", OpDelete, ObjParen, true},
		{"da)", OpDelete, ObjParen, false},
		{"ci{", OpChange, ObjBrace, true},
		{"daB", OpDelete, ObjBrace, false},
		{"di[", OpDelete, ObjBracket, true},
		{"ci<lt>", OpChange, ObjAngle, true},
		{"dap", OpDelete, ObjParagraph, false},
		{"gUiw", OpUppercase, ObjWord, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := resolve(t, NewParser(), tt.input)
			if cmd.Operator == nil || cmd.Operator.Kind != tt.wantOp {
				t.Fatalf("operator = %v", cmd.Operator)
			}
			if cmd.TextObject == nil || cmd.TextObject.Kind != tt.wantObj {
				t.Fatalf("text object = %v", cmd.TextObject)
			}
			if cmd.Inner != tt.wantInner {
				t.Errorf("inner = %v", cmd.Inner)
			}
		})
	}
}

func TestParserTextObjectNeedsBothKeys(t *testing.T) {
	p := NewParser()
	if r := feed(t, p, "d"); r.Status != StatusPending {
		t.Fatalf("d: %v", r.Status)
	}
	if p.OperatorPending() != OperatorDelete {
		t.Error("expected delete operator pending")
	}
	r := feed(t, p, "i")
	if r.Status != StatusPending || r.Pending != "di" {
		t.Fatalf("di: %v %q", r.Status, r.Pending)
	}
	if p.State() != StateTextObject {
		t.Errorf("state = %v", p.State())
	}
	if r := feed(t, p, "w"); r.Status != StatusResolved {
		t.Fatalf("diw: %v", r.Status)
	}
	if !p.IsIdle() {
		t.Error("parser should be idle after resolving")
	}
}

func TestParserForcedMotionType(t *testing.T) {
	tests := []struct {
		input string
		want  MotionType
	}{
		{"dvj", Exclusive},
		{"dVw", Linewise},
		{"dvw", Inclusive},
		{"dve", Exclusive},
		{"dj", Linewise},
	}
	for _, tt := range tests {
		cmd := resolve(t, NewParser(), tt.input)
		if got := cmd.MotionType(); got != tt.want {
			t.Errorf("%q: type = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParserCharArgument(t *testing.T) {
	tests := []struct {
		input    string
		wantKind MotionKind
		wantChar rune
		wantOp   bool
	}{
		{"fx", MotionFindForward, 'x', false},
		{"Fa", MotionFindBackward, 'a', false},
		{"t;", MotionTillForward, ';', false},
		{"T<Space>", MotionTillBackward, ' ', false},
		{"dfx", MotionFindForward, 'x', true},
		{"ct)", MotionTillForward, ')', true},
		{"2f<lt>", MotionFindForward, '<', false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := resolve(t, NewParser(), tt.input)
			if cmd.Motion == nil || cmd.Motion.Kind != tt.wantKind {
				t.Fatalf("motion = %v", cmd.Motion)
			}
			if cmd.Char != tt.wantChar {
				t.Errorf("char = %q, want %q", cmd.Char, tt.wantChar)
			}
			if (cmd.Operator != nil) != tt.wantOp {
				t.Errorf("operator = %v", cmd.Operator)
			}
		})
	}
}

func TestParserReplaceChar(t *testing.T) {
	tests := []struct {
		input string
		want  rune
		count int
	}{
		{"rx", 'x', 0},
		{"3ra", 'a', 3},
		{"r<CR>", '\n', 0},
		{"r<Tab>", '\t', 0},
	}
	for _, tt := range tests {
		cmd := resolve(t, NewParser(), tt.input)
		if cmd.Action != ActionReplaceChar || cmd.Char != tt.want || cmd.Count != tt.count {
			t.Errorf("%q: action=%v char=%q count=%d", tt.input, cmd.Action, cmd.Char, cmd.Count)
		}
	}

	if r := feed(t, NewParser(), "f<CR>"); r.Status != StatusCancelled {
		t.Errorf("f<CR> should cancel, got %v", r.Status)
	}
}

func TestParserActions(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{"i", ActionInsert},
		{"a", ActionAppend},
		{"I", ActionInsertLineStart},
		{"A", ActionAppendLineEnd},
		{"o", ActionOpenBelow},
		{"O", ActionOpenAbove},
		{"R", ActionReplaceMode},
		{"v", ActionVisual},
		{"V", ActionVisualLine},
		{"p", ActionPutAfter},
		{"P", ActionPutBefore},
		{"J", ActionJoin},
		{"gJ", ActionJoinNoSpace},
		{"~", ActionToggleCaseChar},
		{"u", ActionUndo},
		{"<C-r>", ActionRedo},
		{"3<C-r>", ActionRedo},
		{"ZZ", ActionWriteQuit},
		{"ZQ", ActionQuit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := resolve(t, NewParser(), tt.input)
			if cmd.Action != tt.want {
				t.Errorf("action = %v, want %v", cmd.Action, tt.want)
			}
		})
	}
}

func TestParserRegisters(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{`"ayy`, 'a'},
		{`"Ayy`, 'A'},
		{`"_dd`, '_'},
		{`"+p`, '+'},
		{`"0P`, '0'},
		{`"adiw`, 'a'},
	}
	for _, tt := range tests {
		cmd := resolve(t, NewParser(), tt.input)
		if cmd.Register != tt.want {
			t.Errorf("%q: register = %q, want %q", tt.input, cmd.Register, tt.want)
		}
	}

	if r := feed(t, NewParser(), `"!`); r.Status != StatusCancelled {
		t.Errorf(`"! should cancel, got %v`, r.Status)
	}
}

func TestParserInvalidKeysCancel(t *testing.T) {
	tests := []string{
		"dz",
		"gq",
		"dix",
		"Zx",
		"d<C-a>",
		"<C-a>",
		"d<F1>",
		"gud",
	}
	for _, input := range tests {
		p := NewParser()
		r := feed(t, p, input)
		if r.Status != StatusCancelled {
			t.Errorf("%q: status = %v, want cancelled", input, r.Status)
		}
		if !p.IsIdle() {
			t.Errorf("%q: parser not reset", input)
		}
	}
}

func TestParserEscapeCancels(t *testing.T) {
	for _, prefix := range []string{"", "3", `"a`, "d", "d2", "di", "g", "f", "r", "Z", "2d"} {
		for _, cancel := range []string{"<Esc>", "<C-c>"} {
			p := NewParser()
			if prefix != "" {
				if r := feed(t, p, prefix); r.Status != StatusPending {
					t.Fatalf("%q: status = %v, want pending", prefix, r.Status)
				}
			}
			if r := feed(t, p, cancel); r.Status != StatusCancelled {
				t.Errorf("%q%s: status = %v", prefix, cancel, r.Status)
			}
			if !p.IsIdle() || p.Pending() != "" {
				t.Errorf("%q%s: parser not reset", prefix, cancel)
			}
			// A fresh command parses normally afterwards.
			if cmd := resolve(t, p, "w"); cmd.Count != 0 || cmd.Operator != nil {
				t.Errorf("%q%s: state leaked into next command", prefix, cancel)
			}
		}
	}
}

func TestParserPending(t *testing.T) {
	p := NewParser()
	steps := []struct {
		key     string
		pending string
		state   State
	}{
		{"2", "2", StateCount},
		{`"`, `2"`, StateRegister},
		{"a", `2"a`, StateIdle},
		{"d", `2"ad`, StateOperator},
		{"3", `2"ad3`, StateOperatorCount},
		{"g", `2"ad3g`, StateGPrefix},
	}
	for _, s := range steps {
		r := feed(t, p, s.key)
		if r.Status != StatusPending {
			t.Fatalf("after %q: status = %v", s.pending, r.Status)
		}
		if r.Pending != s.pending || p.Pending() != s.pending {
			t.Errorf("pending = %q, want %q", r.Pending, s.pending)
		}
		if p.State() != s.state {
			t.Errorf("after %q: state = %v, want %v", s.pending, p.State(), s.state)
		}
	}
	cmd := resolve(t, p, "g")
	if cmd.Motion != motionFileStart || cmd.Count != 6 || cmd.Register != 'a' {
		t.Errorf("unexpected command %+v", cmd)
	}
}

func TestParserVisualContext(t *testing.T) {
	p := NewParser()
	p.SetContext(ContextVisual)

	tests := []struct {
		input    string
		wantOp   OperatorKind
		linewise bool
	}{
		{"d", OpDelete, false},
		{"x", OpDelete, false},
		{"D", OpDelete, true},
		{"y", OpYank, false},
		{"Y", OpYank, true},
		{"c", OpChange, false},
		{"S", OpChange, true},
		{">", OpIndent, false},
		{"u", OpLowercase, false},
		{"U", OpUppercase, false},
		{"~", OpToggleCase, false},
		{"gU", OpUppercase, false},
		{`"ad`, OpDelete, false},
	}
	for _, tt := range tests {
		cmd := resolve(t, p, tt.input)
		if cmd.Operator == nil || cmd.Operator.Kind != tt.wantOp {
			t.Fatalf("%q: operator = %v", tt.input, cmd.Operator)
		}
		if cmd.Linewise != tt.linewise {
			t.Errorf("%q: linewise = %v", tt.input, cmd.Linewise)
		}
		if cmd.Motion != nil || cmd.TextObject != nil {
			t.Errorf("%q: visual operators take no motion", tt.input)
		}
	}

	cmd := resolve(t, p, "3w")
	if cmd.Motion != motionWordForward || cmd.Count != 3 || cmd.Operator != nil {
		t.Errorf("3w in visual: %+v", cmd)
	}
	cmd = resolve(t, p, "iw")
	if cmd.TextObject != TextObjWord || !cmd.Inner || cmd.Operator != nil {
		t.Errorf("iw in visual: %+v", cmd)
	}
	cmd = resolve(t, p, "o")
	if cmd.Action != ActionSwapSelectionEnds {
		t.Errorf("o in visual: %v", cmd.Action)
	}
	if r := feed(t, p, "<C-r>"); r.Status != StatusCancelled {
		t.Errorf("<C-r> in visual should cancel, got %v", r.Status)
	}
	if p.Context() != ContextVisual {
		t.Error("cancel should keep the context")
	}
}

func TestCountState(t *testing.T) {
	var c CountState
	if c.Get() != 1 {
		t.Errorf("empty count = %d", c.Get())
	}
	if c.AccumulateDigit('0') {
		t.Error("0 must not start a count")
	}
	for _, r := range "120" {
		if !c.AccumulateDigit(r) {
			t.Fatalf("digit %q rejected", r)
		}
	}
	if c.Get() != 120 {
		t.Errorf("count = %d", c.Get())
	}
	if c.AccumulateDigit('x') {
		t.Error("non-digit accepted")
	}
	for range 20 {
		c.AccumulateDigit('9')
	}
	if c.Get() != maxCount {
		t.Errorf("count did not saturate: %d", c.Get())
	}

	if got := CombineCounts(2, 3); got != 6 {
		t.Errorf("CombineCounts(2, 3) = %d", got)
	}
	if got := CombineCounts(0, 4, 0); got != 4 {
		t.Errorf("CombineCounts(0, 4, 0) = %d", got)
	}
	if got := CombineCounts(maxCount, maxCount); got != maxCount {
		t.Errorf("CombineCounts overflow = %d", got)
	}
}

func TestLookups(t *testing.T) {
	if GetOperator('d') != OperatorDelete || GetOperator('q') != nil {
		t.Error("GetOperator")
	}
	if GetGOperator('U') != OperatorUppercase || GetGOperator('d') != nil {
		t.Error("GetGOperator")
	}
	if GetMotion('w') != motionWordForward || GetMotion('z') != nil {
		t.Error("GetMotion")
	}
	if GetGMotion('g') != motionFileStart {
		t.Error("GetGMotion")
	}
	if GetTextObject('b') != TextObjParen || GetTextObject('B') != TextObjBrace || GetTextObject('z') != nil {
		t.Error("GetTextObject")
	}
	if FindMotionType(MotionFindBackward) != Exclusive || FindMotionType(MotionWordEnd) != Inclusive {
		t.Error("FindMotionType")
	}
}

type fakeClipboard struct {
	content string
	err     error
}

func (f *fakeClipboard) Get() (string, error) { return f.content, f.err }

func (f *fakeClipboard) Set(s string) error {
	if f.err != nil {
		return f.err
	}
	f.content = s
	return nil
}

func TestRegisterStore(t *testing.T) {
	t.Run("yank default", func(t *testing.T) {
		rs := NewRegisterStore()
		if err := rs.Yank(0, "word", false); err != nil {
			t.Fatal(err)
		}
		for _, name := range []rune{0, '"', '0'} {
			got, linewise, err := rs.Get(name)
			if err != nil || got != "word" || linewise {
				t.Errorf("Get(%q) = %q, %v, %v", name, got, linewise, err)
			}
		}
	})

	t.Run("named and append", func(t *testing.T) {
		rs := NewRegisterStore()
		_ = rs.Yank('a', "one\n", true)
		_ = rs.Yank('A', "two\n", true)
		got, linewise, _ := rs.Get('a')
		if got != "one\ntwo\n" || !linewise {
			t.Errorf("a = %q linewise=%v", got, linewise)
		}
		if unnamed, _, _ := rs.Get('"'); unnamed != "one\ntwo\n" {
			t.Errorf("unnamed = %q", unnamed)
		}
		if zero, _, _ := rs.Get('0'); zero != "" {
			t.Errorf("named yank should not touch 0, got %q", zero)
		}

		_ = rs.Yank('b', "x", false)
		_ = rs.Yank('B', "line\n", true)
		if got, linewise, _ := rs.Get('b'); got != "x\nline\n" || !linewise {
			t.Errorf("b = %q linewise=%v", got, linewise)
		}
	})

	t.Run("delete ring", func(t *testing.T) {
		rs := NewRegisterStore()
		_ = rs.Delete(0, "first\n", true)
		_ = rs.Delete(0, "second\n", true)
		_ = rs.Delete(0, "ch", false)

		if got, _, _ := rs.Get('1'); got != "second\n" {
			t.Errorf("1 = %q", got)
		}
		if got, _, _ := rs.Get('2'); got != "first\n" {
			t.Errorf("2 = %q", got)
		}
		if got, _, _ := rs.Get('-'); got != "ch" {
			t.Errorf("- = %q", got)
		}
		if got, _, _ := rs.Get('"'); got != "ch" {
			t.Errorf("unnamed = %q", got)
		}
	})

	t.Run("black hole", func(t *testing.T) {
		rs := NewRegisterStore()
		_ = rs.Yank(0, "keep", false)
		_ = rs.Delete('_', "gone", false)
		if got, _, _ := rs.Get('"'); got != "keep" {
			t.Errorf("unnamed = %q", got)
		}
	})

	t.Run("read-only and unknown", func(t *testing.T) {
		rs := NewRegisterStore()
		if err := rs.Yank('.', "x", false); !errors.Is(err, ErrReadOnlyRegister) {
			t.Errorf("write to . = %v", err)
		}
		if _, _, err := rs.Get('!'); !errors.Is(err, ErrUnknownRegister) {
			t.Errorf("Get(!) = %v", err)
		}
		rs.SetLastInserted("typed")
		if got, _, _ := rs.Get('.'); got != "typed" {
			t.Errorf(". = %q", got)
		}
	})

	t.Run("clipboard", func(t *testing.T) {
		rs := NewRegisterStore()
		clip := &fakeClipboard{}
		rs.SetClipboard(clip)

		if err := rs.Yank('+', "line\n", true); err != nil {
			t.Fatal(err)
		}
		if clip.content != "line\n" {
			t.Errorf("clipboard = %q", clip.content)
		}
		got, linewise, err := rs.Get('*')
		if err != nil || got != "line\n" || !linewise {
			t.Errorf("Get(*) = %q %v %v", got, linewise, err)
		}
		if unnamed, _, _ := rs.Get('"'); unnamed != "line\n" {
			t.Errorf("unnamed = %q", unnamed)
		}

		clip.err = errors.New("no display")
		if err := rs.Yank('+', "x", false); !errors.Is(err, clip.err) {
			t.Errorf("Yank error = %v", err)
		}
		if _, _, err := rs.Get('+'); !errors.Is(err, clip.err) {
			t.Errorf("Get error = %v", err)
		}
	})
}

func TestIsValidRegister(t *testing.T) {
	for _, r := range `"azAZ09-_.+*` {
		if !IsValidRegister(r) {
			t.Errorf("%q should be valid", r)
		}
	}
	for _, r := range "!@ =%" {
		if IsValidRegister(r) {
			t.Errorf("%q should be invalid", r)
		}
	}
}
