package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// pluralize gives the "s" suffix for any count except exactly one.
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// truncateLabel shortens s to at most maxWidth terminal cells, appending
// an ellipsis when it had to cut. Wide characters count by cell width.
func truncateLabel(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth-1, "") + "…"
}

// padLine pads s with spaces on the right to exactly width cells.
func padLine(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
