package app

import (
	"context"
	"errors"

	"github.com/dshills/vicore/internal/editor"
	"github.com/dshills/vicore/internal/input/key"
	"github.com/dshills/vicore/internal/terminal"
)

// Screen is the terminal the application draws on and reads keys from.
type Screen interface {
	Init() error
	Fini()
	Poll() (terminal.Input, bool)
	Draw(v editor.View)
}

// Run drives the session until the editor asks to quit, the terminal closes
// or ctx is cancelled. Each key is handled completely and the screen redrawn
// before the next key is read.
func (app *Application) Run(ctx context.Context, scr Screen) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := scr.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer scr.Fini()

	done := make(chan struct{})
	defer close(done)
	inputs := make(chan terminal.Input)
	go readInput(scr, inputs, done)

	var changes <-chan struct{}
	if app.watcher != nil {
		changes = app.watcher.Changes()
	}

	scr.Draw(app.ed.View())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case in, ok := <-inputs:
			if !ok {
				return nil
			}
			if !in.Resize {
				if err := app.handleKey(in.Key); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}

		case <-changes:
			app.handleFileChange()
		}
		scr.Draw(app.ed.View())
	}
}

// readInput forwards terminal input until the screen closes or Run returns.
func readInput(scr Screen, inputs chan<- terminal.Input, done <-chan struct{}) {
	defer close(inputs)
	for {
		in, ok := scr.Poll()
		if !ok {
			return
		}
		select {
		case inputs <- in:
		case <-done:
			return
		}
	}
}

// handleKey passes one key to the editor and carries out its request.
func (app *Application) handleKey(k key.Event) error {
	res, err := app.ed.HandleKey(k)
	if err != nil {
		// The editor has already recovered; keep the session alive.
		app.logger.Error("key handling failed", "key", k.String(), "error", err)
		return nil
	}

	switch res.Request {
	case editor.RequestSave:
		_ = app.Save()
	case editor.RequestSaveQuit:
		if app.Save() == nil {
			return ErrQuit
		}
	case editor.RequestQuit:
		return ErrQuit
	}
	return nil
}
