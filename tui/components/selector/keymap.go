package selector

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/viewpick/config"
	"github.com/grovetools/viewpick/tui/keymap"
)

// KeyMap defines the keybindings for the selector. Printable keys are left to
// the search field, so every action uses a control or named key.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	// Selection
	Toggle     key.Binding
	SelectAll  key.Binding
	SelectNone key.Binding
	// Search
	ClearSearch key.Binding
	// Actions
	Commit key.Binding
	Cancel key.Binding
	// Help
	Help key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		SelectNone: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "select none"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear search"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "execute"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// NewKeyMap returns the default bindings with overrides from the
// `picker.keys` config section applied.
func NewKeyMap(overrides config.KeybindingSectionConfig) (KeyMap, error) {
	km := DefaultKeyMap()
	if err := keymap.ApplyOverrides(&km, overrides); err != nil {
		return DefaultKeyMap(), err
	}
	return km, nil
}

// ShortHelp returns the bindings shown under the list.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SelectAll, k.SelectNone, k.Commit, k.Cancel}
}

// Sections groups every binding for the full help view.
func (k KeyMap) Sections() []keymap.Section {
	return []keymap.Section{
		keymap.NavigationSection(k.Up, k.Down, k.PageUp, k.PageDown),
		keymap.SelectionSection(k.Toggle, k.SelectAll, k.SelectNone),
		keymap.SearchSection(k.ClearSearch),
		keymap.ActionsSection(k.Commit, k.Cancel, k.Help),
	}
}

// GetHelp returns the binding that opens the full help view.
func (k KeyMap) GetHelp() key.Binding {
	return k.Help
}
