package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl/scrawl-cli/pkg/models"
)

func TestRenderWindowBoxDimensions(t *testing.T) {
	p, w := newTestPane(models.DefaultSettings())
	w.SetSize(40, 12)
	p.setSize(38, 9)

	box := renderWindowBox(w, p, true)

	if got := lipgloss.Width(box); got != 40 {
		t.Errorf("expected box width 40, got %d", got)
	}
	if got := lipgloss.Height(box); got != 12 {
		t.Errorf("expected box height 12, got %d", got)
	}
}

func TestRenderWindowBoxDirtyMarker(t *testing.T) {
	p, w := newTestPane(models.DefaultSettings())
	p.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	box := renderWindowBox(w, p, true)

	if !strings.Contains(box, "●") {
		t.Error("expected the dirty marker in the title bar")
	}
}

func TestRenderTitleBarTruncates(t *testing.T) {
	p, w := newTestPane(models.DefaultSettings())
	w.Doc().BindPath("/docs/a-very-long-document-name.txt")

	title := renderTitleBar(w, p, 12, false)

	if got := lipgloss.Width(title); got != 12 {
		t.Errorf("expected title width 12, got %d", got)
	}
	if !strings.Contains(title, "…") {
		t.Error("expected the label to be truncated")
	}
}

func TestRenderTitleBarPreviewSuffix(t *testing.T) {
	p, w := newTestPane(models.DefaultSettings())
	p.togglePreview()

	title := renderTitleBar(w, p, 38, true)

	if !strings.Contains(title, "(preview)") {
		t.Error("expected the preview suffix")
	}
}
