package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl/scrawl-cli/pkg/workspace"
)

// renderWindowBox draws one window at its current size: rounded border,
// a one-row title bar and the pane body below it. The border frame adds
// two cells on each axis, so the inner box is sized down by two.
func renderWindowBox(win *workspace.Window, p *pane, focused bool) string {
	outerW, outerH := win.Size()
	contentW := outerW - 2
	contentH := outerH - 2
	if contentW < 1 {
		contentW = 1
	}
	if contentH < 1 {
		contentH = 1
	}

	title := renderTitleBar(win, p, contentW, focused)

	body := ""
	if p != nil {
		body = p.view()
	}

	style := InactiveWindowStyle
	if focused {
		style = ActiveWindowStyle
	}
	return style.
		Width(contentW).
		Height(contentH).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// renderTitleBar renders the window title centered in the bar, with the
// unsaved-changes marker already folded into the title by the window.
func renderTitleBar(win *workspace.Window, p *pane, width int, focused bool) string {
	style := InactiveTitleStyle
	if focused {
		style = ActiveTitleStyle
	}

	label := win.Title()
	if p != nil && p.showPreview {
		label += " (preview)"
	}
	label = truncateLabel(label, width)
	return style.Width(width).Align(lipgloss.Center).Render(label)
}
