package vim

import (
	"github.com/dshills/vicore/internal/input/key"
)

// Status is the outcome of feeding one key to the parser.
type Status uint8

const (
	// StatusPending indicates more input is needed.
	StatusPending Status = iota

	// StatusResolved indicates a complete command was parsed.
	StatusResolved

	// StatusCancelled indicates the pending input was discarded.
	StatusCancelled
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// State represents the current state of the parser.
type State uint8

const (
	// StateIdle is waiting for initial input.
	StateIdle State = iota

	// StateCount is accumulating a count prefix.
	StateCount

	// StateRegister is waiting for a register name after ".
	StateRegister

	// StateOperator has received an operator, waiting for motion/text-object.
	StateOperator

	// StateOperatorCount is accumulating count after operator.
	StateOperatorCount

	// StateGPrefix has received 'g', waiting for second key.
	StateGPrefix

	// StateZPrefix has received 'Z', waiting for Z or Q.
	StateZPrefix

	// StateTextObject has received 'i' or 'a', waiting for the object key.
	StateTextObject

	// StateChar is waiting for the character argument of f/F/t/T or r.
	StateChar
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCount:
		return "count"
	case StateRegister:
		return "register"
	case StateOperator:
		return "operator"
	case StateOperatorCount:
		return "operatorCount"
	case StateGPrefix:
		return "gPrefix"
	case StateZPrefix:
		return "zPrefix"
	case StateTextObject:
		return "textObject"
	case StateChar:
		return "char"
	default:
		return "unknown"
	}
}

// Context selects which grammar the parser applies.
type Context uint8

const (
	// ContextNormal parses Normal-mode commands.
	ContextNormal Context = iota

	// ContextVisual parses commands over a visual selection.
	ContextVisual
)

// Result contains the result of feeding a key event.
type Result struct {
	// Status indicates the parse result.
	Status Status

	// Command is the parsed command (if Status == StatusResolved).
	Command *Command

	// Pending shows the keys typed so far (for the status line).
	Pending string
}

// Parser parses Vim-style key sequences into commands.
type Parser struct {
	state State
	ctx   Context

	// Accumulated state
	count0   CountState // count typed before a register
	count1   CountState // pre-operator count
	count2   CountState // post-operator count
	register rune
	operator *Operator
	force    ForceType
	inner    bool
	charFor  *Motion // f/F/t/T waiting for a char; nil means r
	// opLinewise is set for visual operators that act on whole lines.
	opLinewise bool

	keys []string
}

// NewParser creates a new Vim command parser in the Normal context.
func NewParser() *Parser {
	return &Parser{keys: make([]string, 0, 8)}
}

// Reset clears all parser state. The context is kept.
func (p *Parser) Reset() {
	p.state = StateIdle
	p.count0.Reset()
	p.count1.Reset()
	p.count2.Reset()
	p.register = 0
	p.operator = nil
	p.force = ForceNone
	p.inner = false
	p.charFor = nil
	p.opLinewise = false
	p.keys = p.keys[:0]
}

// SetContext switches grammar and discards pending input.
func (p *Parser) SetContext(ctx Context) {
	p.ctx = ctx
	p.Reset()
}

// Context returns the current grammar context.
func (p *Parser) Context() Context {
	return p.ctx
}

// State returns the current parser state.
func (p *Parser) State() State {
	return p.state
}

// IsIdle returns true if no input is pending.
func (p *Parser) IsIdle() bool {
	return p.state == StateIdle && len(p.keys) == 0
}

// OperatorPending returns the operator awaiting a motion, or nil.
func (p *Parser) OperatorPending() *Operator {
	if p.ctx == ContextVisual {
		return nil
	}
	return p.operator
}

// Pending returns the keys typed so far in Vim notation.
func (p *Parser) Pending() string {
	return joinKeys(p.keys)
}

// Feed processes a key event and returns the result.
func (p *Parser) Feed(ev key.Event) Result {
	if ev.IsCancel() {
		return p.cancel()
	}
	p.keys = append(p.keys, ev.String())

	if p.state == StateChar {
		return p.parseChar(ev)
	}
	if p.state == StateRegister {
		if !ev.IsChar() {
			return p.cancel()
		}
		return p.parseRegister(ev.Rune)
	}

	if ev.IsCtrl('r') && (p.state == StateIdle || p.state == StateCount) && p.ctx == ContextNormal {
		return p.completeAction(ActionRedo)
	}

	r, ok := keyRune(ev)
	if !ok {
		return p.cancel()
	}

	switch p.state {
	case StateIdle:
		return p.parseIdle(r)
	case StateCount:
		return p.parseCount(r)
	case StateOperator, StateOperatorCount:
		return p.parseOperator(r)
	case StateGPrefix:
		return p.parseGPrefix(r)
	case StateZPrefix:
		return p.parseZPrefix(r)
	case StateTextObject:
		return p.parseTextObject(r)
	default:
		return p.cancel()
	}
}

// keyRune maps an event to the rune the grammar tables use. Named keys that
// Vim treats as motions map to their letter equivalents.
func keyRune(ev key.Event) (rune, bool) {
	if ev.IsChar() {
		if ev.Rune == ' ' {
			return 'l', true
		}
		return ev.Rune, true
	}
	if ev.Mod != key.ModNone {
		return 0, false
	}
	switch ev.Key {
	case key.KeyLeft, key.KeyBackspace:
		return 'h', true
	case key.KeyRight:
		return 'l', true
	case key.KeyUp:
		return 'k', true
	case key.KeyDown:
		return 'j', true
	case key.KeyHome:
		return '0', true
	case key.KeyEnd:
		return '$', true
	case key.KeyEnter:
		return '+', true
	case key.KeyDelete:
		return 'x', true
	}
	return 0, false
}

func (p *Parser) pending() Result {
	return Result{Status: StatusPending, Pending: p.Pending()}
}

func (p *Parser) cancel() Result {
	p.Reset()
	return Result{Status: StatusCancelled}
}

// parseIdle handles input in the idle state.
func (p *Parser) parseIdle(r rune) Result {
	if IsCountStart(r) {
		p.state = StateCount
		p.count1.AccumulateDigit(r)
		return p.pending()
	}
	return p.parseCommandStart(r)
}

// parseCount handles input during count accumulation.
func (p *Parser) parseCount(r rune) Result {
	if p.count1.AccumulateDigit(r) {
		return p.pending()
	}
	return p.parseCommandStart(r)
}

// parseCommandStart handles the first key after any count and register.
func (p *Parser) parseCommandStart(r rune) Result {
	switch r {
	case '"':
		p.state = StateRegister
		return p.pending()
	case 'g':
		p.state = StateGPrefix
		return p.pending()
	case 'r':
		p.state = StateChar
		p.charFor = nil
		return p.pending()
	}

	if p.ctx == ContextVisual {
		return p.parseVisualStart(r)
	}

	if r == 'Z' {
		p.state = StateZPrefix
		return p.pending()
	}
	if op := GetOperator(r); op != nil {
		p.operator = op
		p.state = StateOperator
		return p.pending()
	}
	if alias, ok := normalAliases[r]; ok {
		return p.completeAlias(alias)
	}
	if m := GetMotion(r); m != nil {
		return p.startMotion(m)
	}
	if a, ok := normalActions[r]; ok {
		return p.completeAction(a)
	}
	return p.cancel()
}

func (p *Parser) parseVisualStart(r rune) Result {
	if r == 'i' || r == 'a' {
		p.inner = r == 'i'
		p.state = StateTextObject
		return p.pending()
	}
	if vo, ok := visualOperators[r]; ok {
		p.operator = vo.op
		p.opLinewise = vo.linewise
		return p.completeVisualOperator()
	}
	if m := GetMotion(r); m != nil {
		return p.startMotion(m)
	}
	if a, ok := visualActions[r]; ok {
		return p.completeAction(a)
	}
	return p.cancel()
}

// parseRegister handles input after ".
func (p *Parser) parseRegister(r rune) Result {
	if !IsValidRegister(r) {
		return p.cancel()
	}
	p.register = r
	if p.count1.Active {
		p.count0 = p.count1
		p.count1.Reset()
	}
	p.state = StateIdle
	return p.pending()
}

// parseOperator handles input after an operator key and any count after it.
func (p *Parser) parseOperator(r rune) Result {
	if p.count2.AccumulateDigit(r) {
		p.state = StateOperatorCount
		return p.pending()
	}

	// Same operator key = linewise (dd, yy, cc, >>, g~~)
	if r == p.operator.Key {
		return p.completeLinewise()
	}

	switch r {
	case 'v':
		p.force = ForceCharwise
		return p.pending()
	case 'V':
		p.force = ForceLinewise
		return p.pending()
	case 'g':
		p.state = StateGPrefix
		return p.pending()
	case 'i', 'a':
		p.inner = r == 'i'
		p.state = StateTextObject
		return p.pending()
	}

	if m := GetMotion(r); m != nil {
		return p.startMotion(m)
	}
	return p.cancel()
}

// parseGPrefix handles input after 'g'.
func (p *Parser) parseGPrefix(r rune) Result {
	if m := GetGMotion(r); m != nil {
		return p.completeMotion(m, 0)
	}

	if p.operator != nil {
		// gugu, gUgU, g~g~
		if p.operator.G && r == p.operator.Key {
			return p.completeLinewise()
		}
		return p.cancel()
	}

	if op := GetGOperator(r); op != nil {
		p.operator = op
		if p.ctx == ContextVisual {
			return p.completeVisualOperator()
		}
		p.state = StateOperator
		return p.pending()
	}
	if r == 'J' {
		return p.completeAction(ActionJoinNoSpace)
	}
	return p.cancel()
}

// parseZPrefix handles input after 'Z'.
func (p *Parser) parseZPrefix(r rune) Result {
	switch r {
	case 'Z':
		return p.completeAction(ActionWriteQuit)
	case 'Q':
		return p.completeAction(ActionQuit)
	}
	return p.cancel()
}

// parseTextObject handles input after 'i' or 'a'.
func (p *Parser) parseTextObject(r rune) Result {
	obj := GetTextObject(r)
	if obj == nil {
		return p.cancel()
	}
	cmd := p.buildBaseCommand()
	cmd.Operator = p.operator
	cmd.TextObject = obj
	cmd.Inner = p.inner
	cmd.Force = p.force
	return p.resolve(cmd)
}

// parseChar handles the character argument of f/F/t/T and r.
func (p *Parser) parseChar(ev key.Event) Result {
	var c rune
	switch {
	case ev.IsChar():
		c = ev.Rune
	case ev.Is(key.KeyTab):
		c = '\t'
	case ev.Is(key.KeyEnter) && p.charFor == nil:
		c = '\n'
	default:
		return p.cancel()
	}

	if p.charFor != nil {
		return p.completeMotion(p.charFor, c)
	}
	cmd := p.buildBaseCommand()
	cmd.Action = ActionReplaceChar
	cmd.Char = c
	return p.resolve(cmd)
}

// startMotion resolves a motion or waits for its character argument.
func (p *Parser) startMotion(m *Motion) Result {
	if m.NeedsChar {
		p.charFor = m
		p.state = StateChar
		return p.pending()
	}
	return p.completeMotion(m, 0)
}

// completeMotion builds a motion command, with the pending operator if any.
func (p *Parser) completeMotion(m *Motion, c rune) Result {
	cmd := p.buildBaseCommand()
	cmd.Motion = m
	cmd.Char = c
	if p.ctx == ContextNormal {
		cmd.Operator = p.operator
		cmd.Force = p.force
	}
	return p.resolve(cmd)
}

// completeLinewise builds a doubled-operator command (dd, yy, etc.).
func (p *Parser) completeLinewise() Result {
	cmd := p.buildBaseCommand()
	cmd.Operator = p.operator
	cmd.Linewise = true
	return p.resolve(cmd)
}

// completeVisualOperator builds an operator that acts on the selection.
func (p *Parser) completeVisualOperator() Result {
	cmd := p.buildBaseCommand()
	cmd.Operator = p.operator
	cmd.Linewise = p.opLinewise
	return p.resolve(cmd)
}

// completeAlias resolves x, D, Y and friends to their operator form.
func (p *Parser) completeAlias(alias string) Result {
	keys := []rune(alias)
	p.operator = GetOperator(keys[0])
	if keys[1] == keys[0] {
		return p.completeLinewise()
	}
	return p.completeMotion(GetMotion(keys[1]), 0)
}

func (p *Parser) completeAction(a Action) Result {
	cmd := p.buildBaseCommand()
	cmd.Action = a
	return p.resolve(cmd)
}

// buildBaseCommand creates a Command with count and register set.
func (p *Parser) buildBaseCommand() *Command {
	cmd := &Command{Register: p.register, Keys: p.Pending()}
	if p.count0.Active || p.count1.Active || p.count2.Active {
		cmd.Count = CombineCounts(p.count0.Get(), p.count1.Get(), p.count2.Get())
	}
	return cmd
}

func (p *Parser) resolve(cmd *Command) Result {
	p.Reset()
	return Result{Status: StatusResolved, Command: cmd}
}
