package tui

import (
	"github.com/charmbracelet/lipgloss/v2"
)

// windowLayer is one positioned box handed to the compositor
type windowLayer struct {
	content string
	x, y    int
	w, h    int
}

// composeCanvas stacks window boxes over a backdrop. Boxes come in
// stacking order, so later layers paint over earlier ones and the last
// box ends up on top.
func composeCanvas(backdrop string, width, height int, boxes []windowLayer) string {
	layers := make([]*lipgloss.Layer, 0, len(boxes)+1)
	layers = append(layers, lipgloss.NewLayer(backdrop).
		Width(width).
		Height(height))

	for _, b := range boxes {
		layers = append(layers, lipgloss.NewLayer(b.content).
			Width(b.w).
			Height(b.h).
			X(b.x).
			Y(b.y))
	}

	return lipgloss.NewCanvas(layers...).Render()
}

// renderOverlay composes a centered modal on top of the given base view
// string, dimming the background.
func renderOverlay(base, fg string, baseW, baseH, overlayW, overlayH int) string {
	if baseW <= 0 {
		baseW = 80
	}
	if baseH <= 0 {
		baseH = 24
	}
	x := (baseW - overlayW) / 2
	y := (baseH - overlayH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	// Everything behind the modal renders faint
	dimBase := lipgloss.NewStyle().Faint(true).Render(base)

	baseLayer := lipgloss.NewLayer(dimBase).
		Width(baseW).
		Height(baseH)
	fgLayer := lipgloss.NewLayer(fg).
		Width(overlayW).
		Height(overlayH).
		X(x).
		Y(y)

	return lipgloss.NewCanvas(baseLayer, fgLayer).Render()
}
