package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl/scrawl-cli/pkg/workspace"
)

const (
	closeConfirmWidth  = 56
	closeConfirmHeight = 7
)

// closeChoices lists the choices in display order with their hotkeys
var closeChoices = []struct {
	choice workspace.CloseChoice
	label  string
	key    string
}{
	{workspace.ChoiceSave, "Save", "s"},
	{workspace.ChoiceSaveAs, "Save As…", "a"},
	{workspace.ChoiceDiscard, "Don't Save", "d"},
	{workspace.ChoiceCancel, "Cancel", "esc"},
}

// CloseConfirm is the modal asking what to do with unsaved changes
// before a window closes
type CloseConfirm struct {
	active   bool
	fileName string
	selected int
	onChoice func(workspace.CloseChoice) tea.Cmd
}

// NewCloseConfirm creates a new inactive confirmation
func NewCloseConfirm() *CloseConfirm {
	return &CloseConfirm{}
}

// Show activates the confirmation for the named document
func (m *CloseConfirm) Show(fileName string, onChoice func(workspace.CloseChoice) tea.Cmd) {
	m.active = true
	m.fileName = fileName
	m.selected = 0
	m.onChoice = onChoice
}

// Hide deactivates the confirmation
func (m *CloseConfirm) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *CloseConfirm) Active() bool {
	return m.active
}

// Selected returns the highlighted choice
func (m *CloseConfirm) Selected() workspace.CloseChoice {
	return closeChoices[m.selected].choice
}

// Update handles key events for the confirmation
func (m *CloseConfirm) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "left", "shift+tab":
		m.selected = (m.selected + len(closeChoices) - 1) % len(closeChoices)

	case "right", "tab":
		m.selected = (m.selected + 1) % len(closeChoices)

	case "enter":
		return m.pick(closeChoices[m.selected].choice)

	case "s", "S":
		return m.pick(workspace.ChoiceSave)

	case "a", "A":
		return m.pick(workspace.ChoiceSaveAs)

	case "d", "D":
		return m.pick(workspace.ChoiceDiscard)

	case "esc":
		return m.pick(workspace.ChoiceCancel)
	}

	return nil
}

func (m *CloseConfirm) pick(choice workspace.CloseChoice) tea.Cmd {
	m.active = false
	if m.onChoice == nil {
		return nil
	}
	return m.onChoice(choice)
}

// Size returns the dialog's outer dimensions for overlay placement
func (m *CloseConfirm) Size() (int, int) {
	return closeConfirmWidth, closeConfirmHeight
}

// View renders the dialog
func (m *CloseConfirm) View() string {
	if !m.active {
		return ""
	}

	contentWidth := closeConfirmWidth - 2
	center := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center)

	// Buttons
	var buttons []string
	for i, c := range closeChoices {
		style := ButtonStyle
		if i == m.selected {
			style = ButtonFocusedStyle
			if c.choice == workspace.ChoiceDiscard {
				style = ButtonDangerStyle
			}
		}
		buttons = append(buttons, style.Render(c.label))
	}

	body := strings.Join([]string{
		center.Render(DialogTitleStyle.Render("Unsaved Changes")),
		"",
		center.Render(DialogTextStyle.Render(fmt.Sprintf("Save changes to %q before closing?", m.fileName))),
		"",
		center.Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...)),
	}, "\n")

	return DialogStyle.Width(contentWidth).Render(body)
}
