package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl/scrawl-cli/pkg/utils"
	"github.com/scrawl/scrawl-cli/pkg/workspace"
)

// statusDateFormat is the clock shown on the right of the bar
const statusDateFormat = "Mon 2 Jan 15:04"

// renderStatusBar renders the single-row bar at the bottom of the
// screen. The left side shows a transient notice when one is pending,
// otherwise the focused document's name and counts. The right side
// shows the window count and, when enabled, a clock.
func renderStatusBar(width int, win *workspace.Window, windows int, notice string, now time.Time, showClock bool) string {
	if width <= 0 {
		return ""
	}

	var left string
	switch {
	case notice != "":
		left = notice
	case win != nil:
		left = fmt.Sprintf("%s · %s", win.Title(), utils.FormatDocStats(win.Doc().Text()))
	default:
		left = "no windows"
	}

	right := fmt.Sprintf("%d window%s", windows, pluralize(windows))
	if showClock {
		right += " · " + now.Format(statusDateFormat)
	}

	// The bar style pads one cell on each side
	avail := width - 2
	if avail < 0 {
		avail = 0
	}

	rightW := lipgloss.Width(right)
	if leftMax := avail - rightW - 1; lipgloss.Width(left) > leftMax {
		left = truncateLabel(left, leftMax)
	}

	bar := padLine(left, avail-rightW) + right
	if lipgloss.Width(bar) > avail {
		bar = truncateLabel(bar, avail)
	}
	return StatusBarStyle.Width(width).Render(bar)
}
