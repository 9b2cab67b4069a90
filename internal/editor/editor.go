package editor

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/dshills/vicore/internal/engine"
	"github.com/dshills/vicore/internal/engine/buffer"
	"github.com/dshills/vicore/internal/engine/cursor"
	"github.com/dshills/vicore/internal/input/key"
	"github.com/dshills/vicore/internal/input/vim"
)

// Editor is the mode controller for one document. It is the exclusive owner
// of the document's write path, its cursor model and its command parser for
// the duration of each HandleKey call.
type Editor struct {
	doc       *engine.Document
	r         buffer.Reader
	cur       *cursor.Model
	parser    *vim.Parser
	regs      *vim.RegisterStore
	clipboard vim.ClipboardProvider
	settings  Settings
	remaps    map[key.Event][]key.Event
	logger    *slog.Logger

	mode     Mode
	message  string
	lastFind *findState
	ins      *insertSession
}

// New creates an editor over doc in Normal mode with the cursor at the
// start of the document.
func New(doc *engine.Document, opts ...Option) *Editor {
	e := &Editor{
		doc:      doc,
		r:        doc.Reader(),
		parser:   vim.NewParser(),
		regs:     vim.NewRegisterStore(),
		settings: DefaultSettings(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.clipboard != nil {
		e.regs.SetClipboard(e.clipboard)
	}
	e.cur = cursor.New(e.r, cursor.WithTabWidth(e.settings.TabWidth))
	e.logger = e.logger.With("component", "editor", "doc", doc.ID().String())
	return e
}

// Document returns the document being edited.
func (e *Editor) Document() *engine.Document {
	return e.doc
}

// Registers returns the register store.
func (e *Editor) Registers() *vim.RegisterStore {
	return e.regs
}

// Settings returns the editing options.
func (e *Editor) Settings() Settings {
	return e.settings
}

// Mode returns the current mode. ModeOperatorPending is reported while an
// operator in Normal mode waits for its motion.
func (e *Editor) Mode() Mode {
	if e.mode == ModeNormal && e.parser.OperatorPending() != nil {
		return ModeOperatorPending
	}
	return e.mode
}

// Cursor returns the primary cursor position.
func (e *Editor) Cursor() buffer.Point {
	return e.cur.Position()
}

// SetCursor moves the primary cursor, clamped for the current mode.
func (e *Editor) SetCursor(p buffer.Point) {
	e.cur.MoveTo(p)
}

// AddCursor adds a secondary cursor at p. Secondary cursors follow edits
// but are not moved by keys.
func (e *Editor) AddCursor(p buffer.Point) {
	p = e.cur.ClampPoint(p)
	e.cur.AddCursor(e.r.OffsetOf(p))
}

// Message returns the status message left by the last completed command.
func (e *Editor) Message() string {
	return e.message
}

// SetMessage replaces the status message, for collaborators reporting
// things like save results.
func (e *Editor) SetMessage(msg string) {
	e.message = msg
}

// HandleKey processes one key event to completion. A contract violation in
// the core aborts the command, closes any open undo group and is returned
// as an error wrapping ErrInternal; the editor is left in Normal mode.
func (e *Editor) HandleKey(ev key.Event) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = e.abort(r)
			res = Result{Status: StatusRejected, Message: "internal error, command aborted"}
			e.message = res.Message
		}
	}()

	if to, ok := e.remaps[ev]; ok && e.mode == ModeNormal && e.parser.IsIdle() {
		res, err = e.handleSequence(to)
	} else {
		res, err = e.dispatch(ev)
	}
	if res.Status != StatusPending {
		e.message = res.Message
	}
	return res, err
}

// handleSequence feeds keys produced by a remap. They are not remapped
// again. A rejected key stops the sequence.
func (e *Editor) handleSequence(keys []key.Event) (Result, error) {
	var res Result
	for _, k := range keys {
		var err error
		res, err = e.dispatch(k)
		if err != nil || res.Status == StatusRejected {
			return res, err
		}
	}
	return res, nil
}

func (e *Editor) dispatch(ev key.Event) (Result, error) {
	switch e.mode {
	case ModeInsert:
		return e.handleInsert(ev)
	case ModeReplace:
		return e.handleReplace(ev)
	case ModeVisual, ModeVisualLine:
		return e.handleVisual(ev)
	default:
		return e.handleNormal(ev)
	}
}

// abort restores a consistent state after a panic inside key handling.
func (e *Editor) abort(r any) error {
	e.doc.CloseGroups()
	e.parser.Reset()
	e.ins = nil
	if e.cur.InVisual() {
		e.cur.LeaveVisual()
	}
	e.setMode(ModeNormal)

	e.logger.Error("key handling aborted",
		"panic", r,
		"mode", e.mode.String(),
		"cursor", e.cur.Position().String(),
		"stack", string(debug.Stack()))

	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, r)
}

func (e *Editor) setMode(m Mode) {
	if e.mode != m {
		e.logger.Debug("mode change", "from", e.mode.String(), "to", m.String())
	}
	e.mode = m
	e.cur.SetPolicy(m.policy())

	ctx := vim.ContextNormal
	if m.IsVisual() {
		ctx = vim.ContextVisual
	}
	if e.parser.Context() != ctx {
		e.parser.SetContext(ctx)
	}
}

// handleNormal feeds a key to the parser and executes resolved commands.
func (e *Editor) handleNormal(ev key.Event) (Result, error) {
	res := e.parser.Feed(ev)
	switch res.Status {
	case vim.StatusPending:
		return pending(), nil
	case vim.StatusCancelled:
		return rejected(), nil
	}
	return e.execNormal(res.Command)
}

func (e *Editor) execNormal(cmd *vim.Command) (Result, error) {
	e.logger.Debug("command", "keys", cmd.Keys)
	switch {
	case cmd.Action != vim.ActionNone:
		return e.execAction(cmd)
	case cmd.Operator != nil:
		return e.execOperator(cmd)
	case cmd.Motion != nil:
		return e.moveCursor(cmd), nil
	}
	return rejected(), nil
}

// moveCursor applies a motion without an operator. In a visual mode this
// extends the selection.
func (e *Editor) moveCursor(cmd *vim.Command) Result {
	from := e.cur.Position()
	t := e.evalMotion(cmd, from, false)
	if t.failed {
		return noop("")
	}
	if t.vertical {
		e.cur.MoveVertical(t.pos.Line - from.Line)
		return handled()
	}
	e.cur.MoveTo(t.pos)
	if t.eol {
		e.cur.SetWantEOL()
	}
	return handled()
}

// Edit helpers. Ranges come from the editor's own computations, so a
// failure is a bug and panics; HandleKey turns it into ErrInternal.

func (e *Editor) insert(off int, text string) {
	if text == "" {
		return
	}
	ed, err := e.doc.Insert(off, text)
	if err != nil {
		panic(err)
	}
	e.cur.Transform(ed)
}

func (e *Editor) remove(start, end int) {
	if end <= start {
		return
	}
	ed, err := e.doc.Delete(buffer.Range{Start: start, End: end})
	if err != nil {
		panic(err)
	}
	e.cur.Transform(ed)
}

func (e *Editor) replace(start, end int, text string) {
	if end <= start && text == "" {
		return
	}
	ed, err := e.doc.Replace(start, end, text)
	if err != nil {
		panic(err)
	}
	e.cur.Transform(ed)
}

// writable reports whether the document accepts edits.
func (e *Editor) writable() (Result, bool) {
	if e.doc.IsReadOnly() {
		return Result{Status: StatusRejected, Message: "Document is read-only"}, false
	}
	return Result{}, true
}

// moveToLineStart puts the cursor on the first non-blank of line.
func (e *Editor) moveToLineStart(line int) {
	line = min(max(line, 0), e.r.LineCount()-1)
	e.cur.MoveTo(buffer.Point{Line: line, Column: firstNonBlank(e.r.LineText(line))})
}
