package workspace

import (
	"github.com/scrawl/scrawl-cli/pkg/debug"
	"github.com/scrawl/scrawl-cli/pkg/models"
)

const (
	minWindowWidth  = 30
	minWindowHeight = 8
)

// SaveOutcome reports what a save operation did.
type SaveOutcome int

const (
	// SaveDone means the document was written and bound to its path.
	SaveDone SaveOutcome = iota
	// SaveNeedsPath means the document has no bound path; the caller
	// should prompt for one and retry with SaveKeyTo.
	SaveNeedsPath
	// SaveNoWindow means no window is focused; the operation was a no-op.
	SaveNoWindow
	// SaveFailed means the write failed; the document stays dirty.
	SaveFailed
)

// Workspace owns every open window, their stacking order, and the close
// guard registry. It decides where new windows land on the canvas and
// routes save and close operations to the focused window.
//
// All Workspace methods are driven from the UI event loop and are not
// safe for concurrent use; the registry alone carries its own lock.
type Workspace struct {
	reg     *Registry
	windows []*Window // stacking order, focused window last
	nextID  int

	load Loader
	save Saver

	canvasW, canvasH int

	cascadeX, cascadeY  int
	widthPct, heightPct int

	// origin of the most recently placed window, clamped. The cascade
	// walks on from here even after windows close.
	lastX, lastY int
	placed       bool

	lastErr error
}

// New creates an empty workspace. Windows are loaded through load and
// persisted through save.
func New(settings *models.Settings, load Loader, save Saver) *Workspace {
	ws := &Workspace{
		reg:       NewRegistry(),
		nextID:    1,
		load:      load,
		save:      save,
		canvasW:   80,
		canvasH:   24,
		cascadeX:  settings.Window.CascadeCols,
		cascadeY:  settings.Window.CascadeRows,
		widthPct:  settings.Window.WidthPercent,
		heightPct: settings.Window.HeightPercent,
	}

	def := models.DefaultSettings().Window
	if ws.cascadeX <= 0 {
		ws.cascadeX = def.CascadeCols
	}
	if ws.cascadeY <= 0 {
		ws.cascadeY = def.CascadeRows
	}
	if ws.widthPct <= 0 || ws.widthPct > 100 {
		ws.widthPct = def.WidthPercent
	}
	if ws.heightPct <= 0 || ws.heightPct > 100 {
		ws.heightPct = def.HeightPercent
	}

	return ws
}

// Registry returns the close guard registry.
func (ws *Workspace) Registry() *Registry {
	return ws.reg
}

// Len returns the number of open windows.
func (ws *Workspace) Len() int {
	return len(ws.windows)
}

// Windows returns the open windows in stacking order, rearmost first.
func (ws *Workspace) Windows() []*Window {
	return ws.windows
}

// KeyWindow returns the focused window, or nil when none are open.
func (ws *Workspace) KeyWindow() *Window {
	if len(ws.windows) == 0 {
		return nil
	}
	return ws.windows[len(ws.windows)-1]
}

// Lookup returns the open window with the given id.
func (ws *Workspace) Lookup(id int) *Window {
	for _, w := range ws.windows {
		if w.ID() == id {
			return w
		}
	}
	return nil
}

// FindByPath returns the window whose document is bound to path, if any.
func (ws *Workspace) FindByPath(path string) *Window {
	if path == "" {
		return nil
	}
	for _, w := range ws.windows {
		if w.Doc().Path() == path {
			return w
		}
	}
	return nil
}

// Focus raises the window with the given id to the top of the stack.
func (ws *Workspace) Focus(id int) {
	for i, w := range ws.windows {
		if w.ID() == id {
			ws.windows = append(ws.windows[:i], ws.windows[i+1:]...)
			ws.windows = append(ws.windows, w)
			return
		}
	}
	debug.Log("workspace: focus on unknown window %d", id)
}

// CycleFocus raises the rearmost window, rotating focus through all open
// windows. It returns the newly focused window.
func (ws *Workspace) CycleFocus() *Window {
	if len(ws.windows) > 1 {
		w := ws.windows[0]
		ws.windows = append(ws.windows[1:], w)
	}
	return ws.KeyWindow()
}

// OpenBlank opens a window on a new untitled document and focuses it.
func (ws *Workspace) OpenBlank() *Window {
	return ws.addWindow(models.NewDocument())
}

// OpenFile opens a window on the file at path and focuses it. If the file
// is already open, its existing window is focused instead. The path
// should be absolute.
func (ws *Workspace) OpenFile(path string) (*Window, error) {
	if w := ws.FindByPath(path); w != nil {
		ws.Focus(w.ID())
		return w, nil
	}

	content, err := ws.load(path)
	if err != nil {
		return nil, err
	}

	doc := models.NewDocument()
	doc.SetText(content)
	doc.BindPath(path)

	return ws.addWindow(doc), nil
}

// OpenNew opens a window on an empty document already bound to path, for
// files that do not exist yet. Nothing is written until the first save.
func (ws *Workspace) OpenNew(path string) *Window {
	if w := ws.FindByPath(path); w != nil {
		ws.Focus(w.ID())
		return w
	}

	doc := models.NewDocument()
	doc.BindPath(path)
	return ws.addWindow(doc)
}

// addWindow registers a close guard, places the window on the canvas and
// pushes it onto the top of the stack. The guard is registered before the
// window is ever visible, so a close request can never miss it.
func (ws *Workspace) addWindow(doc *models.Document) *Window {
	id := ws.nextID
	ws.nextID++

	ws.reg.Register(id, NewCloseGuard(doc, ws.save))

	w := newWindow(id, doc)
	width, height := ws.windowSize()
	w.SetSize(width, height)
	w.SetPos(ws.place(width, height))

	ws.windows = append(ws.windows, w)
	return w
}

// windowSize computes the standard window size for the current canvas.
func (ws *Workspace) windowSize() (int, int) {
	w := ws.canvasW * ws.widthPct / 100
	h := ws.canvasH * ws.heightPct / 100
	w = clamp(w, min(minWindowWidth, ws.canvasW), ws.canvasW)
	h = clamp(h, min(minWindowHeight, ws.canvasH), ws.canvasH)
	return w, h
}

// place returns the origin for the next window: the first window of the
// process is centered, each later one is offset from the previous
// window's resulting origin by the cascade deltas and clamped to keep the
// window fully on the canvas. The clamped origin is what the next cascade
// step builds on.
func (ws *Workspace) place(width, height int) (int, int) {
	var x, y int
	if !ws.placed {
		x = (ws.canvasW - width) / 2
		y = (ws.canvasH - height) / 2
	} else {
		x = ws.lastX + ws.cascadeX
		y = ws.lastY + ws.cascadeY
	}

	x = clamp(x, 0, ws.canvasW-width)
	y = clamp(y, 0, ws.canvasH-height)

	ws.lastX, ws.lastY = x, y
	ws.placed = true
	return x, y
}

// Resize updates the canvas dimensions and pulls every window back inside
// the new bounds.
func (ws *Workspace) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	ws.canvasW, ws.canvasH = width, height

	for _, w := range ws.windows {
		ww, wh := w.Size()
		ww = min(ww, width)
		wh = min(wh, height)
		w.SetSize(ww, wh)

		x, y := w.Pos()
		w.SetPos(clamp(x, 0, width-ww), clamp(y, 0, height-wh))
	}
}

// RequestClose starts a close attempt for the window with the given id. A
// clean document closes immediately; a dirty one reports CloseConfirming
// and the caller follows up with ChooseClose.
func (ws *Workspace) RequestClose(id int) CloseState {
	guard, ok := ws.reg.Lookup(id)
	if !ok {
		debug.Log("workspace: close request for unknown window %d", id)
		return CloseIdle
	}
	return ws.settle(id, guard, guard.Request())
}

// ChooseClose answers the confirmation of a pending close attempt.
func (ws *Workspace) ChooseClose(id int, choice CloseChoice) CloseState {
	guard, ok := ws.reg.Lookup(id)
	if !ok {
		debug.Log("workspace: close choice for unknown window %d", id)
		return CloseIdle
	}
	return ws.settle(id, guard, guard.Choose(choice))
}

// SubmitClosePath supplies the save-as path requested during a close
// attempt.
func (ws *Workspace) SubmitClosePath(id int, path string) CloseState {
	guard, ok := ws.reg.Lookup(id)
	if !ok {
		debug.Log("workspace: close path for unknown window %d", id)
		return CloseIdle
	}
	return ws.settle(id, guard, guard.SubmitPath(path))
}

// CancelClosePath abandons the save-as picker during a close attempt.
func (ws *Workspace) CancelClosePath(id int) CloseState {
	guard, ok := ws.reg.Lookup(id)
	if !ok {
		debug.Log("workspace: close path cancel for unknown window %d", id)
		return CloseIdle
	}
	return ws.settle(id, guard, guard.CancelPath())
}

// settle applies a terminal close outcome: an allowed window is removed
// from the workspace and registry, a blocked guard is reset so the next
// attempt starts fresh. Non-terminal states pass through.
func (ws *Workspace) settle(id int, guard *CloseGuard, state CloseState) CloseState {
	switch state {
	case CloseAllowed:
		ws.remove(id)
	case CloseBlocked:
		ws.lastErr = guard.Err()
		guard.Reset()
	}
	return state
}

// LastCloseErr returns the save error behind the most recent blocked
// close, or nil when it was blocked by a cancel.
func (ws *Workspace) LastCloseErr() error {
	return ws.lastErr
}

func (ws *Workspace) remove(id int) {
	ws.reg.Release(id)
	for i, w := range ws.windows {
		if w.ID() == id {
			ws.windows = append(ws.windows[:i], ws.windows[i+1:]...)
			return
		}
	}
	debug.Log("workspace: remove of unknown window %d", id)
}

// SaveKey saves the focused window's document to its bound path. With no
// focused window the operation logs and reports SaveNoWindow; with no
// bound path it reports SaveNeedsPath so the caller can prompt for one.
func (ws *Workspace) SaveKey() (SaveOutcome, error) {
	w := ws.KeyWindow()
	if w == nil {
		debug.Log("workspace: save with no focused window")
		return SaveNoWindow, nil
	}
	if w.Doc().Path() == "" {
		return SaveNeedsPath, nil
	}
	return ws.saveTo(w.Doc(), w.Doc().Path())
}

// SaveKeyAs begins a save under a new path for the focused window. It
// reports SaveNeedsPath for the caller to collect the path, or
// SaveNoWindow when nothing is focused.
func (ws *Workspace) SaveKeyAs() SaveOutcome {
	if ws.KeyWindow() == nil {
		debug.Log("workspace: save-as with no focused window")
		return SaveNoWindow
	}
	return SaveNeedsPath
}

// SaveKeyTo saves the focused window's document to path and binds the
// document to it.
func (ws *Workspace) SaveKeyTo(path string) (SaveOutcome, error) {
	w := ws.KeyWindow()
	if w == nil {
		debug.Log("workspace: save with no focused window")
		return SaveNoWindow, nil
	}
	return ws.saveTo(w.Doc(), path)
}

func (ws *Workspace) saveTo(doc *models.Document, path string) (SaveOutcome, error) {
	if err := ws.save(path, doc.Text()); err != nil {
		return SaveFailed, err
	}
	doc.BindPath(path)
	return SaveDone, nil
}

// QuitReview closes windows front to back until one needs the user's
// decision. It returns CloseConfirming when the now-focused window has
// unsaved changes, CloseBlocked when an attempt was refused, and
// CloseAllowed once no windows remain.
func (ws *Workspace) QuitReview() CloseState {
	for {
		w := ws.KeyWindow()
		if w == nil {
			return CloseAllowed
		}
		switch state := ws.RequestClose(w.ID()); state {
		case CloseAllowed:
			// window closed, review the next one
		case CloseConfirming, CloseBlocked:
			return state
		default:
			return state
		}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
