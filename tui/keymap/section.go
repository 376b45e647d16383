package keymap

import "github.com/charmbracelet/bubbles/key"

// Standard section names, shared by every help display.
const (
	SectionNavigation = "Navigation"
	SectionActions    = "Actions"
	SectionSearch     = "Search"
	SectionSelection  = "Selection"
	SectionSystem     = "System"
)

// Section represents a logical grouping of keybindings for structured help display.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is an interface for keymaps that organize their bindings into sections.
type SectionedKeyMap interface {
	Sections() []Section
}

// NewSection creates a section with a custom name.
func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

// NavigationSection creates a Navigation section with the specified bindings.
func NavigationSection(bindings ...key.Binding) Section {
	return Section{Name: SectionNavigation, Bindings: bindings}
}

// ActionsSection creates an Actions section with the specified bindings.
func ActionsSection(bindings ...key.Binding) Section {
	return Section{Name: SectionActions, Bindings: bindings}
}

// SearchSection creates a Search section with the specified bindings.
func SearchSection(bindings ...key.Binding) Section {
	return Section{Name: SectionSearch, Bindings: bindings}
}

// SelectionSection creates a Selection section with the specified bindings.
func SelectionSection(bindings ...key.Binding) Section {
	return Section{Name: SectionSelection, Bindings: bindings}
}

// SystemSection creates a System section with the specified bindings.
func SystemSection(bindings ...key.Binding) Section {
	return Section{Name: SectionSystem, Bindings: bindings}
}

// IsEmpty returns true if the section has no enabled bindings.
func (s Section) IsEmpty() bool {
	for _, b := range s.Bindings {
		if b.Enabled() {
			return false
		}
	}
	return true
}
