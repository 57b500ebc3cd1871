package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI 256 palette used across the TUI.
const (
	ColorActive   = "170" // purple, focused window chrome
	ColorInactive = "240" // gray, unfocused chrome
	ColorNormal   = "245" // light gray body text
	ColorDim      = "241" // muted hints
	ColorWarning  = "214" // orange, unsaved-changes dialog
	ColorDanger   = "196" // red, discard button
	ColorSuccess  = "28"  // green, save notices
	ColorWhite    = "255"
	ColorDark     = "235" // dark text on bright backgrounds
)

var (
	// Window chrome
	ActiveWindowStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveWindowStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	ActiveTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorDark)).
				Background(lipgloss.Color(ColorActive))

	InactiveTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal)).
				Background(lipgloss.Color("238"))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	// Empty canvas hint
	EmptyHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	// Dialogs
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive))

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorWarning))

	DialogTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Padding(0, 2)

	ButtonFocusedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorDark)).
				Background(lipgloss.Color(ColorActive)).
				Padding(0, 2)

	ButtonDangerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorDanger)).
				Padding(0, 2)

	// Prompt input frame and key hints
	PathInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	HintTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))
)
