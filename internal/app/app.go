// Package app runs one editor session: it opens the file, feeds terminal
// keys to the editor one at a time, redraws after each, and carries out the
// save and quit requests the editor returns.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dshills/vicore/internal/clipboard"
	"github.com/dshills/vicore/internal/config"
	"github.com/dshills/vicore/internal/editor"
	"github.com/dshills/vicore/internal/engine"
	"github.com/dshills/vicore/internal/fileio"
	"github.com/dshills/vicore/internal/input/vim"
)

// Options configures the application.
type Options struct {
	// Path is the file to edit. Empty starts an unnamed buffer.
	Path string

	// Create requires Path not to exist yet.
	Create bool

	// Config holds settings. Nil means config.Defaults.
	Config *config.Config

	// Logger receives diagnostics. Nil means slog.Default.
	Logger *slog.Logger

	// Clipboard overrides the system clipboard for the + and * registers.
	Clipboard vim.ClipboardProvider
}

// Application owns the editor, the document's file and the terminal loop.
type Application struct {
	cfg    *config.Config
	logger *slog.Logger

	doc     *engine.Document
	ed      *editor.Editor
	file    *fileio.File
	lock    *fileio.Lock
	watcher *fileio.Watcher

	running atomic.Bool
}

// New opens the document and builds the editor.
func New(opts Options) (*Application, error) {
	app := &Application{
		cfg:    opts.Config,
		logger: opts.Logger,
	}
	if app.cfg == nil {
		app.cfg = config.Defaults()
	}
	if app.logger == nil {
		app.logger = slog.Default()
	}
	app.logger = app.logger.With("component", "app")

	if err := app.bootstrap(opts); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap opens the file, then builds the document and editor over it.
func (app *Application) bootstrap(opts Options) error {
	text, status, err := app.openFile(opts.Path, opts.Create)
	if err != nil {
		return err
	}

	readOnly := false
	if opts.Path != "" {
		lock, err := fileio.AcquireLock(opts.Path)
		switch {
		case errors.Is(err, fileio.ErrLocked):
			readOnly = true
			status = fmt.Sprintf("%q is open in another vicore, opened read-only", opts.Path)
		case err != nil:
			app.logger.Warn("could not lock file", "path", opts.Path, "error", err)
		default:
			app.lock = lock
		}
	}

	docOpts := []engine.Option{
		engine.WithContent(text),
		engine.WithPath(opts.Path),
		engine.WithMaxUndoGroups(app.cfg.Undo.MaxGroups),
		engine.WithLogger(app.logger),
	}
	if readOnly {
		docOpts = append(docOpts, engine.WithReadOnly())
	}
	app.doc = engine.New(docOpts...)
	if status == "" && app.file.Exists {
		status = fmt.Sprintf("%q %dL, %dB", opts.Path, statusLines(app.doc), app.doc.Len())
	}

	edOpts, err := app.editorOptions(opts.Clipboard)
	if err != nil {
		return &InitError{Component: "editor", Err: err}
	}
	app.ed = editor.New(app.doc, edOpts...)
	app.ed.SetMessage(status)

	if opts.Path != "" && app.cfg.Editor.WatchFile {
		w, err := fileio.NewWatcher(opts.Path, fileio.DefaultDebounce, app.logger)
		if err != nil {
			app.logger.Warn("could not watch file", "path", opts.Path, "error", err)
		} else {
			app.watcher = w
		}
	}

	app.logger.Info("document opened",
		"path", opts.Path,
		"doc", app.doc.ID().String(),
		"bytes", app.doc.Len(),
		"lineEnding", app.file.LineEnding.String(),
		"readOnly", readOnly)
	return nil
}

// openFile loads or creates the file and returns its text and the opening
// status message.
func (app *Application) openFile(path string, create bool) (string, string, error) {
	switch {
	case path == "":
		app.file = &fileio.File{}
		return "", "", nil
	case create:
		f, err := fileio.Create(path)
		if err != nil {
			return "", "", &FileError{Op: "create", Path: path, Err: err}
		}
		app.file = f
		return "", fmt.Sprintf("%q [New]", path), nil
	}

	text, f, err := fileio.Load(path)
	if err != nil {
		return "", "", &FileError{Op: "open", Path: path, Err: err}
	}
	app.file = f
	if !f.Exists {
		return "", fmt.Sprintf("%q [New]", path), nil
	}
	return text, "", nil
}

func (app *Application) editorOptions(cb vim.ClipboardProvider) ([]editor.Option, error) {
	ec := app.cfg.Editor
	opts := []editor.Option{
		editor.WithSettings(editor.Settings{
			TabWidth:    ec.TabWidth,
			IndentWidth: ec.IndentWidth,
			ExpandTab:   ec.ExpandTab,
			AutoIndent:  ec.AutoIndent,
		}),
		editor.WithLogger(app.logger),
	}

	if cb == nil && ec.Clipboard && clipboard.Available() {
		cb = clipboard.System{}
	}
	if cb != nil {
		opts = append(opts, editor.WithClipboard(cb))
	}

	remaps, err := app.cfg.Remaps()
	if err != nil {
		return nil, err
	}
	for _, r := range remaps {
		opts = append(opts, editor.WithRemap(r.From, r.To))
	}
	return opts, nil
}

// Editor returns the session's editor.
func (app *Application) Editor() *editor.Editor {
	return app.ed
}

// Document returns the document being edited.
func (app *Application) Document() *engine.Document {
	return app.doc
}

// Close stops watching the file and releases its lock.
func (app *Application) Close() error {
	var errs []error
	if app.watcher != nil {
		errs = append(errs, app.watcher.Close())
		app.watcher = nil
	}
	if app.lock != nil {
		errs = append(errs, app.lock.Release())
		app.lock = nil
	}
	return errors.Join(errs...)
}

// statusLines counts lines the way status messages report them: a final
// newline does not start another line.
func statusLines(doc *engine.Document) int {
	n := doc.LineCount()
	if doc.LineText(n-1) == "" {
		n--
	}
	return n
}
