package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/viewpick/tui/keymap"
	"github.com/grovetools/viewpick/tui/theme"
)

// Model represents an embeddable help component
type Model struct {
	Keys     interface{} // keymap.SectionedKeyMap, optionally with ShortHelp
	ShowAll  bool
	Width    int
	Height   int
	Theme    *theme.Theme
	Title    string // Title for the full help view
	viewport viewport.Model
}

// New creates a new help model with default settings
func New(keys interface{}) Model {
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		viewport: newViewport(),
	}
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return vp
}

// Update handles messages for the help component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.ShowAll {
			m.setViewportContent()
		}

	case tea.KeyMsg:
		if m.ShowAll {
			if key.Matches(msg, m.getHelpBinding()) || msg.Type == tea.KeyEsc || msg.String() == "q" {
				m.Toggle()
				return m, nil
			}

			// Everything else scrolls
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the help component
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	if m.ShowAll {
		content := m.viewport.View()

		if m.viewport.TotalLineCount() > m.viewport.Height {
			indicator := "↕ more"
			if m.viewport.AtTop() {
				indicator = "↓ more"
			} else if m.viewport.AtBottom() {
				indicator = "↑ more"
			}

			indicatorStyle := m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width)
			content = lipgloss.JoinVertical(lipgloss.Right, content, indicatorStyle.Render(indicator))
		}

		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}

	var shortHelpGroup []key.Binding
	if k, ok := m.Keys.(interface{ ShortHelp() []key.Binding }); ok {
		shortHelpGroup = k.ShortHelp()
	}

	return m.viewShort(shortHelpGroup)
}

// viewShort renders the compact, single-line help view.
func (m Model) viewShort(group []key.Binding) string {
	var pairs []string
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		keys := binding.Help().Key
		desc := binding.Help().Desc
		if keys != "" && desc != "" {
			pairs = append(pairs, fmt.Sprintf("%s %s",
				m.Theme.Highlight.Render(keys),
				m.Theme.Muted.Render(desc),
			))
		}
	}

	if len(pairs) == 0 {
		return ""
	}

	helpPrompt := m.Theme.Highlight.Render(m.getHelpBinding().Help().Key) +
		m.Theme.Muted.Render(" help")

	return strings.Join(pairs, m.Theme.Muted.Render(" • ")) + m.Theme.Muted.Render(" • ") + helpPrompt
}

// setViewportContent renders the help content, picks a single or two column
// layout, and sets it in the viewport.
func (m *Model) setViewportContent() {
	const (
		verticalMargin   = 4
		horizontalMargin = 4
		gutterWidth      = 4
	)

	var sections []keymap.Section
	if k, ok := m.Keys.(keymap.SectionedKeyMap); ok {
		sections = k.Sections()
	}

	content := m.renderHelpContent(sections, verticalMargin, horizontalMargin, gutterWidth)
	m.viewport.SetContent(content)

	// Reserve 1 line for the scroll indicator.
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = m.Height - verticalMargin - 1
}

// renderHelpContent renders help content, preferring two columns when a
// single column is too tall.
func (m *Model) renderHelpContent(sections []keymap.Section, vMargin, hMargin, gutter int) string {
	blocks := m.collectSectionBlocks(sections)
	if len(blocks) == 0 {
		return ""
	}

	titleText := m.Title
	if titleText == "" {
		titleText = "Help"
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center)

	singleCol := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	singleColWithTitle := lipgloss.JoinVertical(lipgloss.Center, titleStyle.Width(lipgloss.Width(singleCol)).Render(titleText), singleCol)

	if lipgloss.Height(singleColWithTitle) <= m.Height-vMargin-1 || len(blocks) < 2 {
		return singleColWithTitle
	}

	twoCol := m.buildMultiColumnLayout(blocks, 2, gutter)
	twoColWithTitle := lipgloss.JoinVertical(lipgloss.Center, titleStyle.Width(lipgloss.Width(twoCol)).Render(titleText), twoCol)
	if lipgloss.Width(twoColWithTitle) <= m.Width-hMargin {
		return twoColWithTitle
	}

	return singleColWithTitle
}

// buildMultiColumnLayout distributes blocks across n columns, each block
// going to the currently shortest column.
func (m *Model) buildMultiColumnLayout(blocks []string, numCols, gutter int) string {
	columns := make([][]string, numCols)
	heights := make([]int, numCols)

	for _, block := range blocks {
		minIdx := 0
		for i := 1; i < numCols; i++ {
			if heights[i] < heights[minIdx] {
				minIdx = i
			}
		}
		columns[minIdx] = append(columns[minIdx], block)
		heights[minIdx] += lipgloss.Height(block)
	}

	gutterStr := strings.Repeat(" ", gutter)
	result := lipgloss.JoinVertical(lipgloss.Left, columns[0]...)
	for i := 1; i < numCols; i++ {
		if len(columns[i]) == 0 {
			continue
		}
		result = lipgloss.JoinHorizontal(lipgloss.Top, result, gutterStr, lipgloss.JoinVertical(lipgloss.Left, columns[i]...))
	}

	return result
}

// collectSectionBlocks renders each non-empty section as a block.
func (m *Model) collectSectionBlocks(sections []keymap.Section) []string {
	var blocks []string

	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)

	for _, section := range sections {
		if section.IsEmpty() {
			continue
		}
		var rows [][]string
		for _, binding := range section.Bindings {
			if !binding.Enabled() {
				continue
			}
			keyStr := binding.Help().Key
			desc := binding.Help().Desc
			if keyStr != "" && desc != "" {
				rows = append(rows, []string{
					keyStyle.Render(keyStr),
					m.Theme.Muted.Italic(true).Render(desc),
				})
			}
		}
		if len(rows) > 0 {
			blocks = append(blocks, m.renderSectionBox(section.Name, rows))
		}
	}

	return blocks
}

// renderSectionBox renders a single section into a styled box with a title.
func (m *Model) renderSectionBox(title string, rows [][]string) string {
	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, row := range rows {
		table = table.Row(row...)
	}

	titleText := fmt.Sprintf("%s %s", getSectionIcon(title), title)
	titleStyle := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true).
		MarginBottom(1)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginBottom(1)

	content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(titleText), table.String())
	return boxStyle.Render(content)
}

// getSectionIcon returns the icon shown next to a section name.
func getSectionIcon(name string) string {
	switch name {
	case keymap.SectionNavigation:
		return theme.IconArrow
	case keymap.SectionSearch:
		return theme.IconFilter
	case keymap.SectionSelection:
		return theme.IconSelectAll
	case keymap.SectionActions:
		return theme.IconSuccess
	default:
		return theme.IconInfo
	}
}

// getHelpBinding retrieves the help keybinding from the model's Keys.
func (m *Model) getHelpBinding() key.Binding {
	if k, ok := m.Keys.(interface{ GetHelp() key.Binding }); ok {
		return k.GetHelp()
	}
	return key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
}

// Toggle toggles between showing all help and short help. When showing, it
// recalculates content layout and resets the scroll position.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions of the help view
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// Builder provides a fluent interface for creating help models
type Builder struct {
	model Model
}

// NewBuilder creates a new help builder
func NewBuilder() *Builder {
	return &Builder{
		model: Model{
			Theme:    theme.DefaultTheme,
			viewport: newViewport(),
		},
	}
}

// WithKeys sets the keymap
func (b *Builder) WithKeys(keys interface{}) *Builder {
	b.model.Keys = keys
	return b
}

// WithTitle sets the title for the full help view dialog
func (b *Builder) WithTitle(title string) *Builder {
	b.model.Title = title
	return b
}

// Build creates the help model
func (b *Builder) Build() Model {
	return b.model
}
