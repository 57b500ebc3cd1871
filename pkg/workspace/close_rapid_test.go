package workspace

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/scrawl/scrawl-cli/pkg/models"
)

// TestCloseGuardRandomWalk drives a guard through arbitrary call
// sequences and checks the safety properties that hold no matter what
// the user does: a close is only ever allowed once the document is saved
// or explicitly discarded, a failing saver never binds a path, and the
// save-as wait state exists only while confirming.
func TestCloseGuardRandomWalk(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		failSaves := rapid.Bool().Draw(t, "failSaves")

		rec := &saveRecorder{}
		if failSaves {
			rec.err = errors.New("save refused")
		}

		doc := models.NewDocument()
		if rapid.Bool().Draw(t, "startBound") {
			doc.BindPath("/tmp/walk.txt")
		}
		startDirty := rapid.Bool().Draw(t, "startDirty")
		if startDirty {
			doc.SetText("unsaved text")
		}
		startPath := doc.Path()

		guard := NewCloseGuard(doc, rec.save)
		discarded := false

		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 4).Draw(t, "op") {
			case 0:
				guard.Request()
			case 1:
				choice := CloseChoice(rapid.IntRange(0, 3).Draw(t, "choice"))
				if choice == ChoiceDiscard && guard.State() == CloseConfirming && !guard.AwaitingPath() {
					discarded = true
				}
				guard.Choose(choice)
			case 2:
				path := rapid.SampledFrom([]string{"", "/tmp/walk-out.txt"}).Draw(t, "path")
				guard.SubmitPath(path)
			case 3:
				guard.CancelPath()
			case 4:
				guard.Reset()
				discarded = false
			}

			if guard.AwaitingPath() && guard.State() != CloseConfirming {
				t.Fatalf("awaiting a path in state %v", guard.State())
			}
			if guard.State() == CloseAllowed && doc.Dirty() && !discarded {
				t.Fatalf("close allowed with unsaved changes and no discard")
			}
			if failSaves && doc.Path() != startPath {
				t.Fatalf("failing saver bound path %q", doc.Path())
			}
			if failSaves && doc.Dirty() != startDirty {
				t.Fatalf("failing saver changed the dirty flag")
			}
		}
	})
}
