package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl/scrawl-cli/internal/cli"
	"github.com/scrawl/scrawl-cli/pkg/debug"
	"github.com/scrawl/scrawl-cli/pkg/files"
	"github.com/scrawl/scrawl-cli/pkg/models"
	"github.com/scrawl/scrawl-cli/pkg/workspace"
)

type inputMode int

const (
	modeEdit inputMode = iota
	modeConfirmClose
	modeSavePath
	modeOpenPicker
)

// App is the top-level model: it owns the workspace, one pane per
// window, and the modal widgets that take over input.
type App struct {
	ws       *workspace.Workspace
	settings *models.Settings
	panes    map[int]*pane

	mode    inputMode
	confirm *CloseConfirm
	prompt  *PathPrompt
	picker  *OpenPicker

	// id of the window a close confirmation or close save-as is about
	closingID int

	// quitting is set while quit review walks the windows front to back
	quitting bool

	width  int
	height int
	ready  bool

	// paths from the command line, opened once the terminal size is known
	pendingOpens []string

	statusMsg string
	statusSeq int
	now       time.Time
}

// NewApp creates the application model. paths are documents to open at
// startup, already normalized to absolute paths.
func NewApp(settings *models.Settings, paths []string) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &App{
		ws:           workspace.New(settings, files.ReadDocument, files.WriteDocument),
		settings:     settings,
		panes:        make(map[int]*pane),
		confirm:      NewCloseConfirm(),
		prompt:       NewPathPrompt(),
		picker:       NewOpenPicker(),
		pendingOpens: paths,
		now:          time.Now(),
	}
}

// Workspace exposes the underlying window state
func (a *App) Workspace() *workspace.Workspace {
	return a.ws
}

func (a *App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if a.settings.UI.StatusClock {
		cmds = append(cmds, clockTickCmd())
	}
	if ShouldShowTerminalSetupWarning() {
		cmds = append(cmds, statusCmd(GetTerminalSetupMessage()))
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a, a.handleResize(msg)

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		return a, statusExpireCmd(a.statusSeq)

	case statusExpiredMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil

	case clockTickMsg:
		a.now = time.Time(msg)
		return a, clockTickCmd()
	}

	switch a.mode {
	case modeConfirmClose:
		if key, ok := msg.(tea.KeyMsg); ok {
			return a, a.confirm.Update(key)
		}
		return a, nil

	case modeSavePath:
		return a, a.prompt.Update(msg)

	case modeOpenPicker:
		return a.updatePicker(msg)

	default:
		return a.updateEdit(msg)
	}
}

func (a *App) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	a.width = msg.Width
	a.height = msg.Height

	// The bottom row belongs to the status bar
	canvasH := msg.Height - 1
	if canvasH < 1 {
		canvasH = 1
	}
	a.ws.Resize(msg.Width, canvasH)
	a.picker.SetSize(msg.Width, msg.Height)
	a.fitPanes()

	if !a.ready {
		a.ready = true
		return tea.Batch(a.openStartupFiles()...)
	}
	return nil
}

// fitPanes resizes every pane to its window's current body size
func (a *App) fitPanes() {
	for id, p := range a.panes {
		if w := a.ws.Lookup(id); w != nil {
			ww, wh := w.Size()
			p.setSize(ww-2, wh-3)
		}
	}
}

// openStartupFiles opens the command line documents, or a blank window
// when none were given. Paths that do not exist yet open empty, bound
// to the requested path.
func (a *App) openStartupFiles() []tea.Cmd {
	var cmds []tea.Cmd
	for _, path := range a.pendingOpens {
		w, err := a.ws.OpenFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				w = a.ws.OpenNew(path)
				cmds = append(cmds, a.attachPane(w), statusCmd("New file "+w.Doc().FileName()))
				continue
			}
			debug.Log("app: open %s: %v", path, err)
			cmds = append(cmds, statusCmd("Could not open "+filepath.Base(path)))
			continue
		}
		cmds = append(cmds, a.attachPane(w))
	}
	a.pendingOpens = nil

	if a.ws.Len() == 0 {
		cmds = append(cmds, a.attachPane(a.ws.OpenBlank()))
	}
	return cmds
}

// attachPane ensures a pane exists for the window and refreshes focus
func (a *App) attachPane(w *workspace.Window) tea.Cmd {
	p, ok := a.panes[w.ID()]
	if !ok {
		p = newPane(w, a.settings)
		a.panes[w.ID()] = p
	}
	ww, wh := w.Size()
	p.setSize(ww-2, wh-3)
	return a.refocus()
}

// refocus blurs every pane except the key window's
func (a *App) refocus() tea.Cmd {
	key := a.ws.KeyWindow()
	var cmd tea.Cmd
	for id, p := range a.panes {
		if key != nil && id == key.ID() {
			cmd = p.focus()
		} else {
			p.blur()
		}
	}
	return cmd
}

// prunePanes drops panes whose windows are gone
func (a *App) prunePanes() {
	for id := range a.panes {
		if a.ws.Lookup(id) == nil {
			delete(a.panes, id)
		}
	}
}

func (a *App) keyPane() *pane {
	w := a.ws.KeyWindow()
	if w == nil {
		return nil
	}
	return a.panes[w.ID()]
}

func (a *App) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blinks and the like go to the focused pane
		if p := a.keyPane(); p != nil {
			return a, p.update(msg)
		}
		return a, nil
	}

	switch key.String() {
	case Shortcuts.Quit.Get():
		a.quitting = true
		return a, a.advanceQuit()

	case Shortcuts.NewWindow.Get():
		return a, a.attachPane(a.ws.OpenBlank())

	case Shortcuts.OpenFile.Get():
		a.mode = modeOpenPicker
		return a, a.picker.Show(a.openDir())

	case Shortcuts.Save.Get():
		return a, a.saveKey()

	case Shortcuts.SaveAs.Get():
		return a, a.saveKeyAs()

	case Shortcuts.CloseWindow.Get():
		return a, a.beginClose()

	case Shortcuts.NextWindow.Get():
		a.ws.CycleFocus()
		return a, a.refocus()

	case Shortcuts.Preview.Get():
		if p := a.keyPane(); p != nil {
			return a, p.togglePreview()
		}
		return a, nil

	case Shortcuts.Copy.Get():
		return a, a.copyKey()

	case Shortcuts.Paste.Get():
		return a, a.pasteKey()
	}

	if p := a.keyPane(); p != nil {
		return a, p.update(msg)
	}
	debug.Log("app: key %q with no focused window", key.String())
	return a, nil
}

func (a *App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == Shortcuts.Cancel.Get() {
		a.picker.Hide()
		a.mode = modeEdit
		return a, a.refocus()
	}

	cmd, path, picked := a.picker.Update(msg)
	if picked {
		a.mode = modeEdit
		return a, tea.Batch(cmd, a.finishOpen(path))
	}
	return a, cmd
}

// openDir picks the picker's starting directory: alongside the focused
// document when it has a path, otherwise the user's home
func (a *App) openDir() string {
	if w := a.ws.KeyWindow(); w != nil && w.Doc().Path() != "" {
		return filepath.Dir(w.Doc().Path())
	}
	return ""
}

// finishOpen opens the picked file in a window, reusing an existing
// window that already shows the same path
func (a *App) finishOpen(path string) tea.Cmd {
	abs, err := cli.NormalizeDocumentPath(path)
	if err != nil {
		return statusCmd("Invalid path: " + err.Error())
	}

	w, err := a.ws.OpenFile(abs)
	if err != nil {
		debug.Log("app: open %s: %v", abs, err)
		return statusCmd("Could not open " + filepath.Base(abs))
	}
	return tea.Batch(a.attachPane(w), statusCmd("Opened "+w.Doc().FileName()))
}

// saveKey saves the focused document, falling back to the path prompt
// for documents that were never saved
func (a *App) saveKey() tea.Cmd {
	outcome, err := a.ws.SaveKey()
	switch outcome {
	case workspace.SaveDone:
		return statusCmd("Saved " + a.ws.KeyWindow().Doc().FileName())
	case workspace.SaveNeedsPath:
		return a.showSavePrompt()
	case workspace.SaveFailed:
		return statusCmd("Save failed: " + err.Error())
	default:
		return nil
	}
}

func (a *App) saveKeyAs() tea.Cmd {
	if a.ws.SaveKeyAs() != workspace.SaveNeedsPath {
		return nil
	}
	return a.showSavePrompt()
}

// showSavePrompt opens the path prompt for a plain save. The close flow
// wires its own callbacks instead.
func (a *App) showSavePrompt() tea.Cmd {
	initial := ""
	if w := a.ws.KeyWindow(); w != nil {
		initial = w.Doc().Path()
	}
	a.mode = modeSavePath
	return a.prompt.Show("Save As", initial, a.submitSavePath, a.cancelPrompt)
}

func (a *App) submitSavePath(path string) tea.Cmd {
	a.mode = modeEdit
	if path == "" {
		return tea.Batch(a.refocus(), statusCmd("Save cancelled"))
	}

	abs, err := cli.NormalizeDocumentPath(path)
	if err != nil {
		return tea.Batch(a.refocus(), statusCmd("Invalid path: "+err.Error()))
	}

	outcome, err := a.ws.SaveKeyTo(abs)
	switch outcome {
	case workspace.SaveDone:
		return tea.Batch(a.refocus(), statusCmd("Saved "+filepath.Base(abs)))
	case workspace.SaveFailed:
		return tea.Batch(a.refocus(), statusCmd("Save failed: "+err.Error()))
	default:
		return a.refocus()
	}
}

func (a *App) cancelPrompt() tea.Cmd {
	a.mode = modeEdit
	return a.refocus()
}

// beginClose starts the close flow for the focused window
func (a *App) beginClose() tea.Cmd {
	w := a.ws.KeyWindow()
	if w == nil {
		debug.Log("app: close with no focused window")
		return nil
	}

	switch a.ws.RequestClose(w.ID()) {
	case workspace.CloseAllowed:
		a.prunePanes()
		return a.refocus()
	case workspace.CloseConfirming:
		return a.showCloseConfirm(w)
	default:
		return nil
	}
}

func (a *App) showCloseConfirm(w *workspace.Window) tea.Cmd {
	a.closingID = w.ID()
	a.mode = modeConfirmClose
	a.confirm.Show(w.Doc().FileName(), a.resolveCloseChoice)
	return nil
}

func (a *App) resolveCloseChoice(choice workspace.CloseChoice) tea.Cmd {
	id := a.closingID
	switch a.ws.ChooseClose(id, choice) {
	case workspace.CloseAllowed:
		return a.finishClose()

	case workspace.CloseConfirming:
		// The guard wants a destination path before it can save
		initial := ""
		if w := a.ws.Lookup(id); w != nil {
			initial = w.Doc().Path()
		}
		a.mode = modeSavePath
		return a.prompt.Show("Save As", initial, a.submitClosePath, a.cancelClosePath)

	case workspace.CloseBlocked:
		return a.abortClose()

	default:
		a.mode = modeEdit
		return a.refocus()
	}
}

func (a *App) submitClosePath(path string) tea.Cmd {
	id := a.closingID

	if path != "" {
		abs, err := cli.NormalizeDocumentPath(path)
		if err != nil {
			a.ws.CancelClosePath(id)
			return tea.Batch(a.abortClose(), statusCmd("Invalid path: "+err.Error()))
		}
		path = abs
	}

	if a.ws.SubmitClosePath(id, path) == workspace.CloseAllowed {
		return a.finishClose()
	}
	return a.abortClose()
}

func (a *App) cancelClosePath() tea.Cmd {
	a.ws.CancelClosePath(a.closingID)
	return a.abortClose()
}

// finishClose completes an allowed close and, mid quit review, moves on
// to the next window
func (a *App) finishClose() tea.Cmd {
	a.closingID = 0
	a.mode = modeEdit
	a.prunePanes()
	if a.quitting {
		return a.advanceQuit()
	}
	return a.refocus()
}

// abortClose ends a blocked close attempt, keeping the window open and
// cancelling any quit in progress
func (a *App) abortClose() tea.Cmd {
	a.closingID = 0
	a.mode = modeEdit
	wasQuitting := a.quitting
	a.quitting = false
	a.prunePanes()

	notice := ""
	if err := a.ws.LastCloseErr(); err != nil {
		notice = "Save failed: " + err.Error()
	} else if wasQuitting {
		notice = "Quit cancelled"
	}

	cmds := []tea.Cmd{a.refocus()}
	if notice != "" {
		cmds = append(cmds, statusCmd(notice))
	}
	return tea.Batch(cmds...)
}

// advanceQuit closes clean windows front to back. The first window with
// unsaved changes interrupts the walk with a confirmation; when every
// window is gone the program exits.
func (a *App) advanceQuit() tea.Cmd {
	switch a.ws.QuitReview() {
	case workspace.CloseAllowed:
		return tea.Quit
	case workspace.CloseConfirming:
		a.prunePanes()
		return a.showCloseConfirm(a.ws.KeyWindow())
	default:
		a.prunePanes()
		a.quitting = false
		return a.refocus()
	}
}

func (a *App) copyKey() tea.Cmd {
	w := a.ws.KeyWindow()
	if w == nil {
		return nil
	}
	if err := clipboard.WriteAll(w.Doc().Text()); err != nil {
		debug.Log("app: clipboard write: %v", err)
		return statusCmd("Clipboard unavailable")
	}
	return statusCmd(w.Doc().FileName() + " → clipboard")
}

func (a *App) pasteKey() tea.Cmd {
	p := a.keyPane()
	if p == nil {
		return nil
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		debug.Log("app: clipboard read: %v", err)
		return statusCmd("Clipboard unavailable")
	}
	p.insertText(text)
	return nil
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	canvasH := a.height - 1
	if canvasH < 1 {
		canvasH = 1
	}

	var boxes []windowLayer
	for _, w := range a.ws.Windows() {
		p := a.panes[w.ID()]
		if p == nil {
			continue
		}
		x, y := w.Pos()
		ww, wh := w.Size()
		boxes = append(boxes, windowLayer{
			content: renderWindowBox(w, p, w == a.ws.KeyWindow()),
			x:       x,
			y:       y,
			w:       ww,
			h:       wh,
		})
	}

	screen := composeCanvas(a.renderBackdrop(a.width, canvasH), a.width, canvasH, boxes)
	bar := renderStatusBar(a.width, a.ws.KeyWindow(), a.ws.Len(), a.statusMsg, a.now, a.settings.UI.StatusClock)
	view := screen + "\n" + bar

	switch a.mode {
	case modeConfirmClose:
		w, h := a.confirm.Size()
		return renderOverlay(view, a.confirm.View(), a.width, a.height, w, h)
	case modeSavePath:
		w, h := a.prompt.Size()
		return renderOverlay(view, a.prompt.View(), a.width, a.height, w, h)
	case modeOpenPicker:
		w, h := a.picker.Size()
		return renderOverlay(view, a.picker.View(), a.width, a.height, w, h)
	}
	return view
}

// renderBackdrop fills the canvas behind the windows. With no windows
// open it shows a short key hint.
func (a *App) renderBackdrop(width, height int) string {
	if a.ws.Len() > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "")
	}

	hint := strings.Join([]string{
		"scrawl",
		"",
		fmt.Sprintf("%s new window", FormatShortcutForHelp(Shortcuts.NewWindow)),
		fmt.Sprintf("%s open file", FormatShortcutForHelp(Shortcuts.OpenFile)),
		fmt.Sprintf("%s quit", FormatShortcutForHelp(Shortcuts.Quit)),
	}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, EmptyHintStyle.Render(hint))
}
