package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pathPromptWidth = 52

// PathPrompt is the modal input that collects a destination path for
// save-as, both standalone and as part of a close
type PathPrompt struct {
	active   bool
	title    string
	input    textinput.Model
	onSubmit func(path string) tea.Cmd
	onCancel func() tea.Cmd
}

// NewPathPrompt creates a new inactive prompt
func NewPathPrompt() *PathPrompt {
	ti := textinput.New()
	ti.Placeholder = "path/to/document.txt"
	ti.CharLimit = 512
	// Leave room for the input border, its prompt and the cursor
	ti.Width = pathPromptWidth - 12
	return &PathPrompt{input: ti}
}

// Show activates the prompt. initial pre-fills the input, usually with
// the document's current path
func (m *PathPrompt) Show(title, initial string, onSubmit func(string) tea.Cmd, onCancel func() tea.Cmd) tea.Cmd {
	m.active = true
	m.title = title
	m.onSubmit = onSubmit
	m.onCancel = onCancel
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Hide deactivates the prompt
func (m *PathPrompt) Hide() {
	m.active = false
	m.input.Blur()
}

// Active returns whether the prompt is currently shown
func (m *PathPrompt) Active() bool {
	return m.active
}

// Value returns the current input text
func (m *PathPrompt) Value() string {
	return m.input.Value()
}

// Update handles events while the prompt is open. Enter submits the
// trimmed path, esc cancels, everything else goes to the input
func (m *PathPrompt) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			path := strings.TrimSpace(m.input.Value())
			m.Hide()
			if m.onSubmit != nil {
				return m.onSubmit(path)
			}
			return nil

		case "esc":
			m.Hide()
			if m.onCancel != nil {
				return m.onCancel()
			}
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// Size returns the dialog's outer dimensions for overlay placement
func (m *PathPrompt) Size() (int, int) {
	return pathPromptWidth, 9
}

// View renders the dialog
func (m *PathPrompt) View() string {
	if !m.active {
		return ""
	}

	contentWidth := pathPromptWidth - 2
	center := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center)

	body := strings.Join([]string{
		center.Render(DialogTitleStyle.Render(m.title)),
		"",
		PathInputStyle.Width(contentWidth - 4).Render(m.input.View()),
		"",
		center.Render(HintTextStyle.Render("enter save · esc cancel")),
	}, "\n")

	return DialogStyle.Width(contentWidth).Render(body)
}
