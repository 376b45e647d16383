package scrollbar

import (
	"github.com/grovetools/viewpick/tui/theme"
)

// Generate returns one gutter character per displayed row of a list of total
// rows whose window starts at offset and is height rows tall. The thumb is
// proportional to the share of rows on screen.
func Generate(total, offset, height int) []string {
	if height <= 0 {
		return []string{}
	}

	bar := make([]string, height)
	if total <= height {
		for i := range bar {
			bar[i] = theme.DefaultTheme.Muted.Render(" ")
		}
		return bar
	}

	thumbSize := max(1, height*height/total)
	maxStart := height - thumbSize
	thumbStart := 0
	if scrollable := total - height; scrollable > 0 {
		thumbStart = (offset*maxStart + scrollable/2) / scrollable
	}
	thumbStart = min(max(thumbStart, 0), maxStart)

	for i := range bar {
		if i >= thumbStart && i < thumbStart+thumbSize {
			bar[i] = theme.DefaultTheme.Muted.Render("█")
		} else {
			bar[i] = theme.DefaultTheme.Muted.Render("░")
		}
	}
	return bar
}
