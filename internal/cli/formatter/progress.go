package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBatchProgress renders a one-line status for the enrichment batch,
// like "[██████░░░░░░] 6/12 Catering: Taste menus". index is zero-based.
func RenderBatchProgress(index, total int, label string, width int) string {
	if total <= 0 {
		return ""
	}
	if width < 2 {
		width = 2
	}

	filled := index * width / total
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	line := fmt.Sprintf("[%s] %d/%d", StyleBlue.Render(bar), index+1, total)
	if label != "" {
		line += " " + StyleDim.Render(label)
	}
	return line
}
