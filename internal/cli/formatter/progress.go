package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	return fmt.Sprintf("[%s] %3.0f%%", progressStyle(pct).Render(bar(pct, width)), pct*100)
}

// RenderPercent is RenderProgress for an integer percentage in [0, 100].
func RenderPercent(percent int, width int) string {
	return RenderProgress(float64(percent)/100, width)
}

// RenderCompactBar renders only the blocks, without brackets or label, for
// nested rows in the student board.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clamp01(pct)
	if dim {
		return StyleDim.Render(bar(pct, width))
	}
	return progressStyle(pct).Render(bar(pct, width))
}

func bar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func progressStyle(pct float64) lipgloss.Style {
	switch {
	case pct < 0.33:
		return StyleRed
	case pct < 0.66:
		return StyleYellow
	default:
		return StyleGreen
	}
}

func clamp01(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
