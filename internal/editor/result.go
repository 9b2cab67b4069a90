package editor

import "errors"

// ErrInternal wraps a contract violation caught while handling a key. The
// operation is abandoned and any open undo group closed.
var ErrInternal = errors.New("editor: internal error")

// Status classifies the outcome of one key event.
type Status uint8

const (
	// StatusHandled means the key had an effect.
	StatusHandled Status = iota

	// StatusPending means the key was accepted as part of an unfinished
	// command.
	StatusPending

	// StatusRejected means the key sequence was invalid and discarded.
	StatusRejected

	// StatusNoOp means a valid command had nothing to do.
	StatusNoOp
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusHandled:
		return "handled"
	case StatusPending:
		return "pending"
	case StatusRejected:
		return "rejected"
	case StatusNoOp:
		return "noop"
	default:
		return "unknown"
	}
}

// Request asks the caller to do something the core does not do itself.
type Request uint8

const (
	RequestNone Request = iota
	RequestSave
	RequestQuit
	RequestSaveQuit
)

// String returns the request name.
func (r Request) String() string {
	switch r {
	case RequestNone:
		return "none"
	case RequestSave:
		return "save"
	case RequestQuit:
		return "quit"
	case RequestSaveQuit:
		return "saveQuit"
	default:
		return "unknown"
	}
}

// Result describes what HandleKey did with a key.
type Result struct {
	Status  Status
	Message string
	Request Request
}

func handled() Result { return Result{Status: StatusHandled} }

func pending() Result { return Result{Status: StatusPending} }

func rejected() Result { return Result{Status: StatusRejected} }

func noop(msg string) Result { return Result{Status: StatusNoOp, Message: msg} }

func message(msg string) Result { return Result{Status: StatusHandled, Message: msg} }
