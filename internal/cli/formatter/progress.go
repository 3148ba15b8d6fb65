package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar draws a proportion as width cells of filled and empty blocks.
// The filled part uses style; the rest is dimmed.
func RenderBar(fraction float64, width int, style lipgloss.Style) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if width < 1 {
		width = 1
	}

	filled := int(fraction*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return style.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}
