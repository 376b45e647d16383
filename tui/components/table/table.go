package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/viewpick/tui/theme"
)

// Options configures a styled table.
type Options struct {
	Theme *theme.Theme
	// AccentColumn is rendered in the category style; -1 disables it.
	AccentColumn int
	// MarkedRows holds data row indexes drawn in the selected-row style.
	MarkedRows map[int]bool
}

// DefaultOptions returns the default table options.
func DefaultOptions() Options {
	return Options{Theme: theme.DefaultTheme, AccentColumn: -1}
}

// New creates a bordered table with themed header and row styles.
func New(headers []string, rows [][]string, opts Options) *ltable.Table {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}

	return ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Colors.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == ltable.HeaderRow:
				return base.Bold(true).Foreground(t.Colors.Orange)
			case opts.MarkedRows[row]:
				return t.SelectedRow.Padding(0, 1)
			case col == opts.AccentColumn:
				return t.Category.Padding(0, 1)
			}
			return base
		})
}

// Render is a shorthand for New(...).String() with the default options.
func Render(headers []string, rows [][]string) string {
	return New(headers, rows, DefaultOptions()).String()
}
