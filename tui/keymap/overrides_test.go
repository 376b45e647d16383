package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/viewpick/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"SelectAll", "select_all"},
		{"ClearSearch", "clear_search"},
		{"Toggle", "toggle"},
		{"HTTPServer", "h_t_t_p_server"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, camelToSnake(tt.input))
		})
	}
}

type NavKeys struct {
	Up   key.Binding
	Down key.Binding
}

type testKeyMap struct {
	NavKeys
	Toggle      key.Binding
	SelectAll   key.Binding
	hidden      key.Binding
	NotABinding string
}

func newTestKeyMap() testKeyMap {
	return testKeyMap{
		NavKeys: NavKeys{
			Up:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
			Down: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		},
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		hidden:    key.NewBinding(key.WithKeys("h")),
	}
}

func TestApplyOverrides(t *testing.T) {
	km := newTestKeyMap()

	err := ApplyOverrides(&km, config.KeybindingSectionConfig{
		"toggle":     {"x", "tab"},
		"select_all": {"A"},
		"up":         {"k"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "tab"}, km.Toggle.Keys())
	assert.Equal(t, "x/tab", km.Toggle.Help().Key)
	assert.Equal(t, "toggle", km.Toggle.Help().Desc, "help description is kept")
	assert.Equal(t, []string{"A"}, km.SelectAll.Keys())
	assert.Equal(t, []string{"k"}, km.Up.Keys(), "embedded structs are processed")
	assert.Equal(t, []string{"down"}, km.Down.Keys())
}

func TestApplyOverridesUnknownActions(t *testing.T) {
	km := newTestKeyMap()

	err := ApplyOverrides(&km, config.KeybindingSectionConfig{
		"toggle":        {"x"},
		"not_a_binding": {"y"},
		"hidden":        {"z"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hidden, not_a_binding")
	assert.Equal(t, []string{"x"}, km.Toggle.Keys(), "known overrides still apply")
}

func TestApplyOverridesNeedsPointer(t *testing.T) {
	assert.NoError(t, ApplyOverrides(newTestKeyMap(), nil))
	assert.Error(t, ApplyOverrides(newTestKeyMap(), config.KeybindingSectionConfig{"toggle": {"x"}}))
}
