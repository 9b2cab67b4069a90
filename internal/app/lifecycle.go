package app

import (
	"errors"
	"fmt"

	"github.com/dshills/vicore/internal/fileio"
)

// Save writes the document to its file. The outcome is also shown as the
// status message; on failure the document stays dirty.
func (app *Application) Save() error {
	path := app.file.Path
	n, err := app.file.Save(app.doc)
	if err != nil {
		if errors.Is(err, fileio.ErrNoPath) {
			app.ed.SetMessage("No file name")
			return &FileError{Op: "save", Err: err}
		}
		app.logger.Error("save failed", "path", path, "error", err)
		app.ed.SetMessage(fmt.Sprintf("Can't write %q: %v", path, errors.Unwrap(err)))
		return &FileError{Op: "save", Path: path, Err: err}
	}

	app.doc.MarkSaved()
	app.logger.Info("document saved", "path", path, "bytes", n, "revision", app.doc.Revision())
	app.ed.SetMessage(fmt.Sprintf("%q %dL, %dB written", path, statusLines(app.doc), n))
	return nil
}

// handleFileChange warns when another program modified the open file.
func (app *Application) handleFileChange() {
	changed, err := app.file.ChangedOnDisk()
	if err != nil {
		app.logger.Warn("stat failed", "path", app.file.Path, "error", err)
		return
	}
	if !changed {
		return
	}
	app.file.Sync()
	app.logger.Info("file changed on disk", "path", app.file.Path)
	app.ed.SetMessage(fmt.Sprintf("W: %q changed on disk since reading it", app.file.Path))
}
