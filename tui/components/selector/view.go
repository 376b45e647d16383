package selector

import (
	"fmt"
	"strings"

	"github.com/grovetools/viewpick/pkg/picker"
	"github.com/grovetools/viewpick/tui/theme"
	"github.com/grovetools/viewpick/tui/utils/scrollbar"
)

// View renders the selector.
func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	t := theme.DefaultTheme
	var b strings.Builder

	b.WriteString(t.Title.Render(m.opts.Title))
	b.WriteString("\n")
	b.WriteString(t.Muted.Render("Search views: "))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	visible := m.ctrl.Visible()
	if len(visible) == 0 {
		b.WriteString(m.renderEmpty())
	} else {
		start, end := m.window(len(visible))
		bar := scrollbar.Generate(len(visible), start, end-start)
		for i := start; i < end; i++ {
			b.WriteString(bar[i-start])
			b.WriteString(m.renderLine(visible[i], i == m.cursor))
			b.WriteString("\n")
		}
		if hidden := len(visible) - (end - start); hidden > 0 {
			b.WriteString(t.Muted.Render(fmt.Sprintf("  … %d more", hidden)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	selected, total := m.ctrl.SelectionCount()
	b.WriteString(t.Info.Render(fmt.Sprintf("%d from %d", selected, total)))
	b.WriteString(t.Normal.Render(" views selected"))
	b.WriteString("\n")

	switch {
	case m.confirming:
		b.WriteString(t.Highlight.Render(m.confirmPrompt()))
		b.WriteString("\n")
	case m.warning != "":
		b.WriteString(t.Warning.Render(theme.IconWarning + " " + m.warning))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View())
	return b.String()
}

func (m Model) renderLine(c picker.Candidate, isCursor bool) string {
	t := theme.DefaultTheme
	var line strings.Builder

	if isCursor {
		line.WriteString(t.Highlight.Render("▶ "))
	} else {
		line.WriteString("  ")
	}

	if c.Selected() {
		line.WriteString(t.Success.Render(theme.IconChecked))
	} else {
		line.WriteString(t.Muted.Render(theme.IconUnchecked))
	}
	line.WriteString(" ")
	line.WriteString(t.Category.Render(c.Category() + ":"))
	line.WriteString(" ")
	if isCursor {
		line.WriteString(t.Bold.Render(c.Name()))
	} else {
		line.WriteString(c.Name())
	}
	return line.String()
}

func (m Model) renderEmpty() string {
	t := theme.DefaultTheme
	if m.ctrl.Query() == "" {
		return t.Muted.Render("  No eligible views.") + "\n"
	}

	out := t.Muted.Render(fmt.Sprintf("  No views match %q.", m.input.Value())) + "\n"
	if len(m.suggestions) > 0 {
		out += t.Muted.Render("  Did you mean: ") + t.Accent.Render(strings.Join(m.suggestions, ", ")) + t.Muted.Render("?") + "\n"
	}
	return out
}

// window returns the slice of visible rows that fits the terminal, keeping
// the cursor roughly centred.
func (m Model) window(n int) (int, int) {
	if m.height <= 0 {
		return 0, n
	}
	rows := m.height - 9
	if rows < 5 {
		rows = 5
	}
	if n <= rows {
		return 0, n
	}

	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start > n-rows {
		start = n - rows
	}
	return start, start + rows
}
