package workspace

import (
	"github.com/scrawl/scrawl-cli/pkg/debug"
	"github.com/scrawl/scrawl-cli/pkg/models"
)

// Saver persists document content to a path.
type Saver func(path, content string) error

// Loader reads document content from a path.
type Loader func(path string) (string, error)

// CloseState is the phase of one close-confirmation attempt.
type CloseState int

const (
	// CloseIdle means no close attempt is in progress.
	CloseIdle CloseState = iota
	// CloseConfirming means the user is being asked what to do with
	// unsaved changes.
	CloseConfirming
	// CloseAllowed means the attempt succeeded and the window closes.
	CloseAllowed
	// CloseBlocked means the attempt was cancelled or failed; the window
	// stays open.
	CloseBlocked
)

// String returns a short name for logging.
func (s CloseState) String() string {
	switch s {
	case CloseIdle:
		return "idle"
	case CloseConfirming:
		return "confirming"
	case CloseAllowed:
		return "allowed"
	case CloseBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// CloseChoice is the user's answer to the close confirmation.
type CloseChoice int

const (
	ChoiceSave CloseChoice = iota
	ChoiceSaveAs
	ChoiceDiscard
	ChoiceCancel
)

// String returns a short name for logging.
func (c CloseChoice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceSaveAs:
		return "save-as"
	case ChoiceDiscard:
		return "discard"
	case ChoiceCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// CloseGuard runs the close-confirmation state machine for one window's
// document. A guard handles a single attempt at a time: Request starts
// it, Choose answers the confirmation, SubmitPath and CancelPath resolve
// a pending save-as, and Reset readies the guard for the next attempt
// after a blocked outcome has been handled.
//
// The guard never closes anything itself. It reports CloseAllowed or
// CloseBlocked and leaves window teardown to its owner.
type CloseGuard struct {
	doc          *models.Document
	save         Saver
	state        CloseState
	awaitingPath bool
	err          error
}

// NewCloseGuard creates a guard for doc that persists through save.
func NewCloseGuard(doc *models.Document, save Saver) *CloseGuard {
	return &CloseGuard{doc: doc, save: save, state: CloseIdle}
}

// Doc returns the guarded document.
func (g *CloseGuard) Doc() *models.Document {
	return g.doc
}

// State returns the current phase of the attempt.
func (g *CloseGuard) State() CloseState {
	return g.state
}

// AwaitingPath reports whether the attempt is waiting for a save-as path.
func (g *CloseGuard) AwaitingPath() bool {
	return g.awaitingPath
}

// Err returns the save error behind a blocked outcome, or nil when the
// attempt was blocked by a cancel.
func (g *CloseGuard) Err() error {
	return g.err
}

// Request starts a close attempt. A clean document is allowed to close
// immediately; a dirty one moves to CloseConfirming. Requesting while an
// attempt is already in progress leaves the machine unchanged.
func (g *CloseGuard) Request() CloseState {
	if g.state != CloseIdle {
		debug.Log("close: request ignored in state %s", g.state)
		return g.state
	}
	if !g.doc.Dirty() {
		g.state = CloseAllowed
		return g.state
	}
	g.state = CloseConfirming
	return g.state
}

// Choose answers the confirmation for a pending attempt.
//
// Save writes to the bound path and allows the close on success; a
// document with no bound path is treated as save-as. SaveAs keeps the
// machine in CloseConfirming and sets AwaitingPath until SubmitPath or
// CancelPath is called. Discard allows the close without saving. Cancel
// blocks the attempt.
func (g *CloseGuard) Choose(choice CloseChoice) CloseState {
	if g.state != CloseConfirming || g.awaitingPath {
		debug.Log("close: choice %s ignored in state %s", choice, g.state)
		return g.state
	}

	switch choice {
	case ChoiceSave:
		if g.doc.Path() == "" {
			g.awaitingPath = true
			return g.state
		}
		return g.attemptSave(g.doc.Path())
	case ChoiceSaveAs:
		g.awaitingPath = true
		return g.state
	case ChoiceDiscard:
		g.state = CloseAllowed
		return g.state
	case ChoiceCancel:
		g.state = CloseBlocked
		return g.state
	default:
		debug.Log("close: unknown choice %d", choice)
		return g.state
	}
}

// SubmitPath supplies the path requested by a save-as choice. An empty
// path blocks the attempt, as does a failed save.
func (g *CloseGuard) SubmitPath(path string) CloseState {
	if g.state != CloseConfirming || !g.awaitingPath {
		debug.Log("close: path ignored in state %s", g.state)
		return g.state
	}
	g.awaitingPath = false

	if path == "" {
		g.state = CloseBlocked
		return g.state
	}
	return g.attemptSave(path)
}

// CancelPath abandons a pending save-as, blocking the attempt.
func (g *CloseGuard) CancelPath() CloseState {
	if g.state != CloseConfirming || !g.awaitingPath {
		debug.Log("close: path cancel ignored in state %s", g.state)
		return g.state
	}
	g.awaitingPath = false
	g.state = CloseBlocked
	return g.state
}

// Reset returns the guard to CloseIdle so a new attempt can start. The
// document is untouched; unsaved changes survive the reset.
func (g *CloseGuard) Reset() {
	g.state = CloseIdle
	g.awaitingPath = false
	g.err = nil
}

func (g *CloseGuard) attemptSave(path string) CloseState {
	if err := g.save(path, g.doc.Text()); err != nil {
		debug.Log("close: save to %s failed: %v", path, err)
		g.err = err
		g.state = CloseBlocked
		return g.state
	}
	g.doc.BindPath(path)
	g.state = CloseAllowed
	return g.state
}
