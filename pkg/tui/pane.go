package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrawl/scrawl-cli/pkg/models"
	"github.com/scrawl/scrawl-cli/pkg/workspace"
)

// pane is the editing surface inside one window: a textarea for the
// document text and a read-only viewport the user can toggle to for a
// rendered preview.
type pane struct {
	win      *workspace.Window
	settings *models.Settings

	ta      textarea.Model
	preview viewport.Model

	showPreview bool

	contentW int
	contentH int
}

func newPane(win *workspace.Window, settings *models.Settings) *pane {
	ta := textarea.New()
	ta.ShowLineNumbers = settings.Editor.ShowLineNumbers
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.SetValue(win.Doc().Text())

	return &pane{
		win:      win,
		settings: settings,
		ta:       ta,
		preview:  viewport.New(0, 0),
	}
}

// setSize fits the widgets inside a window body of w by h cells.
func (p *pane) setSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	p.contentW = w
	p.contentH = h
	p.ta.SetWidth(w)
	p.ta.SetHeight(h)
	p.preview.Width = w
	p.preview.Height = h
}

func (p *pane) focus() tea.Cmd {
	if p.showPreview {
		return nil
	}
	return p.ta.Focus()
}

func (p *pane) blur() {
	p.ta.Blur()
}

// kind resolves the document kind, falling back to the configured
// default for never-saved documents.
func (p *pane) kind() models.DocKind {
	if p.win.Doc().Path() == "" {
		return models.ParseKind(p.settings.UI.DefaultKind)
	}
	return p.win.Doc().Kind()
}

// update feeds one message to the active widget and folds any text
// change back into the document.
func (p *pane) update(msg tea.Msg) tea.Cmd {
	if p.showPreview {
		var cmd tea.Cmd
		p.preview, cmd = p.preview.Update(msg)
		return cmd
	}

	// Soft tabs: a tab keystroke inserts spaces up to the configured
	// width instead of a literal tab character.
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" && p.settings.Editor.TabWidth > 0 {
		p.ta.InsertString(strings.Repeat(" ", p.settings.Editor.TabWidth))
		p.syncDoc()
		return nil
	}

	var cmd tea.Cmd
	p.ta, cmd = p.ta.Update(msg)
	p.syncDoc()
	return cmd
}

// syncDoc pushes the textarea value into the document when it diverged,
// which marks the document dirty.
func (p *pane) syncDoc() {
	if v := p.ta.Value(); v != p.win.Doc().Text() {
		p.win.Doc().SetText(v)
	}
}

// insertText types text at the cursor, as the paste operation does.
func (p *pane) insertText(text string) {
	if p.showPreview {
		return
	}
	p.ta.InsertString(text)
	p.syncDoc()
}

// togglePreview flips between editing and preview, re-rendering the
// preview from the current text on entry.
func (p *pane) togglePreview() tea.Cmd {
	p.showPreview = !p.showPreview
	if p.showPreview {
		p.ta.Blur()
		p.preview.SetContent(renderPreview(p.kind(), p.win.Doc().Text(), p.contentW, p.settings.UI.PreviewStyle))
		p.preview.GotoTop()
		return nil
	}
	return p.ta.Focus()
}

// view renders the pane body at its current size.
func (p *pane) view() string {
	if p.showPreview {
		return p.preview.View()
	}
	return p.ta.View()
}
