package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const openPickerWidth = 64

// OpenPicker is the modal file browser behind the open command
type OpenPicker struct {
	active bool
	fp     filepicker.Model
	width  int
	height int
}

// NewOpenPicker creates a new inactive picker
func NewOpenPicker() *OpenPicker {
	fp := filepicker.New()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	// Set to show all files by default
	fp.AllowedTypes = []string{}
	fp.AutoHeight = false
	fp.Height = 16
	return &OpenPicker{fp: fp}
}

// Show activates the picker rooted at dir, falling back to the user's
// home directory. The returned command reads the directory
func (m *OpenPicker) Show(dir string) tea.Cmd {
	m.active = true
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = home
		} else {
			dir = "."
		}
	}
	m.fp.CurrentDirectory = dir

	// Now initialize it to read the directory
	return m.fp.Init()
}

// Hide deactivates the picker
func (m *OpenPicker) Hide() {
	m.active = false
}

// Active returns whether the picker is currently shown
func (m *OpenPicker) Active() bool {
	return m.active
}

// SetSize adapts the visible row count to the screen
func (m *OpenPicker) SetSize(width, height int) {
	m.width = width
	m.height = height

	rows := height - 9
	if rows < 5 {
		rows = 5
	}
	if rows > 20 {
		rows = 20
	}
	m.fp.Height = rows
}

// Update forwards events to the file picker and reports a selection.
// The bool result is true when the user picked a file
func (m *OpenPicker) Update(msg tea.Msg) (tea.Cmd, string, bool) {
	if !m.active {
		return nil, "", false
	}

	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	if didSelect, path := m.fp.DidSelectFile(msg); didSelect {
		m.Hide()
		return cmd, path, true
	}
	return cmd, "", false
}

// Size returns the dialog's outer dimensions for overlay placement
func (m *OpenPicker) Size() (int, int) {
	w := openPickerWidth
	if m.width > 0 && w > m.width-4 {
		w = m.width - 4
	}
	return w, m.fp.Height + 7
}

// View renders the dialog
func (m *OpenPicker) View() string {
	if !m.active {
		return ""
	}

	w, _ := m.Size()
	contentWidth := w - 2
	center := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center)

	current := truncateLabel(m.fp.CurrentDirectory, contentWidth-10)

	body := strings.Join([]string{
		center.Render(DialogTitleStyle.Render("Open File")),
		HintTextStyle.Render(" Current: " + current),
		"",
		m.fp.View(),
		"",
		center.Render(HintTextStyle.Render("enter open · esc cancel")),
	}, "\n")

	return DialogStyle.Width(contentWidth).Render(body)
}
