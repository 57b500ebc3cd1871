package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusMsg carries a transient notice for the status bar.
type StatusMsg string

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(msg)
	}
}

// statusExpiredMsg clears a notice once its display time is up. The seq
// guards against an old timer wiping a newer notice.
type statusExpiredMsg struct {
	seq int
}

const statusVisibleFor = 4 * time.Second

func statusExpireCmd(seq int) tea.Cmd {
	return tea.Tick(statusVisibleFor, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// clockTickMsg advances the status bar clock.
type clockTickMsg time.Time

func clockTickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
