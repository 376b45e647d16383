package selector

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/viewpick/errors"
	"github.com/grovetools/viewpick/pkg/picker"
	"github.com/grovetools/viewpick/tui/components/help"
)

const (
	searchPlaceholder = "Type to search views..."
	emptySelectionMsg = "Please select at least one view."
	pageSize          = 10
)

// Options configures the selector.
type Options struct {
	// Title is shown above the search field.
	Title string
	// Action names what committing does, as in "Execute on 3 selected view(s)?".
	Action string
	// Confirm asks before committing.
	Confirm bool
	// Keys overrides the default bindings.
	Keys *KeyMap
	// MaxSuggestions caps the "did you mean" list. Zero uses 3.
	MaxSuggestions int
}

// Model is the bubbletea model of an interactive selection session. All
// state lives in the controller; the model only tracks the cursor and what
// the screen currently shows.
type Model struct {
	ctrl    *picker.Controller
	opts    Options
	keys    KeyMap
	input   textinput.Model
	help    help.Model
	cursor  int
	width   int
	height  int
	warning string
	// confirming is set while the y/n prompt is showing
	confirming  bool
	suggestions []string
	result      []picker.Candidate
}

// New creates a selector over an open session.
func New(ctrl *picker.Controller, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "Select Views"
	}
	if opts.Action == "" {
		opts.Action = "Execute"
	}
	if opts.MaxSuggestions == 0 {
		opts.MaxSuggestions = 3
	}

	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = ""
	ti.SetValue(ctrl.Query())
	ti.Focus()

	return Model{
		ctrl:  ctrl,
		opts:  opts,
		keys:  keys,
		input: ti,
		help: help.NewBuilder().
			WithKeys(keys).
			WithTitle(opts.Title).
			Build(),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result returns the committed candidates, and false when the session did
// not end in a commit.
func (m Model) Result() ([]picker.Candidate, bool) {
	return m.result, m.ctrl.State() == picker.StateCommitted
}

// Cancelled reports whether the user dismissed the session.
func (m Model) Cancelled() bool {
	return m.ctrl.State() == picker.StateCancelled
}

// Warning returns the message currently shown under the counter.
func (m Model) Warning() string {
	return m.warning
}

// Confirming reports whether the commit prompt is showing.
func (m Model) Confirming() bool {
	return m.confirming
}

// Cursor returns the index of the highlighted visible candidate.
func (m Model) Cursor() int {
	return m.cursor
}

// Suggestions returns the names offered when nothing matches the query.
func (m Model) Suggestions() []string {
	return m.suggestions
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			if m.overlayCancel(msg) {
				return m.cancel()
			}
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		if m.confirming {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlayCancel(msg) {
		return m.cancel()
	}
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirming = false
		return m.commit()
	case "n", "N", "esc":
		m.confirming = false
	}
	return m, nil
}

// overlayCancel reports whether msg should end the session while help or the
// confirm prompt is showing. Esc only dismisses the overlay.
func (m Model) overlayCancel(msg tea.KeyMsg) bool {
	return msg.Type != tea.KeyEsc && key.Matches(msg, m.keys.Cancel)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.cancel()

	case key.Matches(msg, m.keys.Commit):
		selected, _ := m.ctrl.SelectionCount()
		if selected > 0 && m.opts.Confirm {
			m.warning = ""
			m.confirming = true
			return m, nil
		}
		return m.commit()

	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		visible := m.ctrl.Visible()
		if m.cursor < len(visible) {
			m.ctrl.Toggle(visible[m.cursor].ID())
			m.warning = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		if m.ctrl.SelectAllVisible() > 0 {
			m.warning = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.SelectNone):
		m.ctrl.SelectNoneVisible()
		return m, nil

	case key.Matches(msg, m.keys.ClearSearch):
		m.input.SetValue("")
		m.applyQuery()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-pageSize)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(pageSize)
		return m, nil
	}

	// Everything else edits the search text
	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.applyQuery()
	}
	return m, cmd
}

func (m *Model) applyQuery() {
	m.ctrl.SetQuery(m.input.Value())
	m.cursor = 0
	m.warning = ""
	m.suggestions = nil
	if m.ctrl.Query() != "" && len(m.ctrl.Visible()) == 0 {
		m.suggestions = Suggest(m.ctrl.Query(), m.ctrl.Items(), m.opts.MaxSuggestions)
	}
}

func (m Model) commit() (tea.Model, tea.Cmd) {
	cands, err := m.ctrl.Commit()
	if err != nil {
		if errors.Is(err, errors.ErrCodeEmptySelection) {
			m.warning = emptySelectionMsg
		} else {
			m.warning = err.Error()
		}
		return m, nil
	}
	m.result = cands
	return m, tea.Quit
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	if err := m.ctrl.Cancel(); err != nil {
		m.warning = err.Error()
		return m, nil
	}
	return m, tea.Quit
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) confirmPrompt() string {
	selected, _ := m.ctrl.SelectionCount()
	return fmt.Sprintf("%s on %d selected view(s)? y/n", m.opts.Action, selected)
}
