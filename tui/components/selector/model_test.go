package selector

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/viewpick/pkg/picker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testObject struct {
	id, kind, name string
}

func (o testObject) ID() string       { return o.id }
func (o testObject) Kind() string     { return o.kind }
func (o testObject) Name() string     { return o.name }
func (o testObject) IsTemplate() bool { return false }

func openSession(t *testing.T, defaultID string) *picker.Controller {
	t.Helper()
	objects := []picker.Object{
		testObject{"L1", "floor", "Level 1"},
		testObject{"L2", "floor", "Level 2"},
		testObject{"S1", "section", "Stair A"},
		testObject{"E1", "elev", "North"},
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ctrl, err := picker.Open(picker.SourceFunc(func() ([]picker.Object, error) {
		return objects, nil
	}), defaultID, picker.StoreConfig{}, picker.WithLogger(logrus.NewEntry(logger)))
	require.NoError(t, err)
	return ctrl
}

func send(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypingFiltersList(t *testing.T) {
	ctrl := openSession(t, "")
	m := New(ctrl, Options{})

	m, _ = send(t, m, runes("LEVEL"))

	assert.Equal(t, "level", ctrl.Query())
	require.Len(t, ctrl.Visible(), 2)
	assert.Equal(t, 0, m.Cursor())
	assert.Contains(t, m.View(), "Level 1")
	assert.NotContains(t, m.View(), "Stair A")

	m, _ = send(t, m, keyMsg(tea.KeyCtrlU))
	assert.Empty(t, ctrl.Query())
	assert.Len(t, ctrl.Visible(), 4)
}

func TestToggleAndCounter(t *testing.T) {
	ctrl := openSession(t, "")
	m := New(ctrl, Options{})

	// Store order: elev:North, floor:Level 1, floor:Level 2, section:Stair A
	m, _ = send(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyTab))

	sel := ctrl.Selected()
	require.Len(t, sel, 1)
	assert.Equal(t, "L1", sel[0].ID())
	assert.Contains(t, m.View(), "1 from 4")

	m, _ = send(t, m, keyMsg(tea.KeyTab))
	assert.Empty(t, ctrl.Selected())
}

func TestCursorClamps(t *testing.T) {
	ctrl := openSession(t, "")
	m := New(ctrl, Options{})

	m, _ = send(t, m, keyMsg(tea.KeyUp))
	assert.Equal(t, 0, m.Cursor())

	m, _ = send(t, m, keyMsg(tea.KeyPgDown))
	assert.Equal(t, 3, m.Cursor())
}

func TestBulkSelectionIsScopedToFilter(t *testing.T) {
	ctrl := openSession(t, "")
	m := New(ctrl, Options{})

	m, _ = send(t, m, runes("level"), keyMsg(tea.KeyCtrlA), keyMsg(tea.KeyCtrlU))

	selected, total := ctrl.SelectionCount()
	assert.Equal(t, 2, selected)
	assert.Equal(t, 4, total)

	send(t, m, runes("1"), keyMsg(tea.KeyCtrlN))
	selected, _ = ctrl.SelectionCount()
	assert.Equal(t, 1, selected, "only Level 1 is visible for '1'")
}

func TestEmptyCommitWarns(t *testing.T) {
	ctrl := openSession(t, "")
	m := New(ctrl, Options{Confirm: true})

	m, cmd := send(t, m, keyMsg(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.False(t, m.Confirming())
	assert.Equal(t, emptySelectionMsg, m.Warning())
	assert.Equal(t, picker.StateIdle, ctrl.State())
	assert.Contains(t, m.View(), emptySelectionMsg)

	// Selecting something clears the warning
	m, _ = send(t, m, keyMsg(tea.KeyTab))
	assert.Empty(t, m.Warning())
}

func TestConfirmFlow(t *testing.T) {
	ctrl := openSession(t, "S1")
	m := New(ctrl, Options{Confirm: true, Action: "Execute Auto-Dimension"})

	m, cmd := send(t, m, keyMsg(tea.KeyEnter))
	assert.Nil(t, cmd)
	require.True(t, m.Confirming())
	assert.Contains(t, m.View(), "Execute Auto-Dimension on 1 selected view(s)? y/n")

	// Declining returns to the list
	m, cmd = send(t, m, runes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.Confirming())
	assert.Equal(t, picker.StateIdle, ctrl.State())
	assert.Empty(t, ctrl.Query(), "the answer is not typed into the search")

	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m, cmd = send(t, m, runes("y"))
	assert.True(t, isQuit(cmd))

	result, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, []string{"S1"}, picker.IDs(result))
}

func TestCommitWithoutConfirm(t *testing.T) {
	ctrl := openSession(t, "E1")
	m := New(ctrl, Options{})

	m, cmd := send(t, m, keyMsg(tea.KeyEnter))
	assert.True(t, isQuit(cmd))

	result, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, []string{"E1"}, picker.IDs(result))
}

func TestCancel(t *testing.T) {
	ctrl := openSession(t, "E1")
	m := New(ctrl, Options{})

	m, cmd := send(t, m, keyMsg(tea.KeyEsc))

	assert.True(t, isQuit(cmd))
	assert.True(t, m.Cancelled())
	_, ok := m.Result()
	assert.False(t, ok)
}

func TestSuggestionsWhenNothingMatches(t *testing.T) {
	ctrl := openSession(t, "")
	m := New(ctrl, Options{})

	m, _ = send(t, m, runes("levle"))

	assert.Empty(t, ctrl.Visible())
	assert.Equal(t, []string{"Level 1", "Level 2"}, m.Suggestions())
	assert.Contains(t, m.View(), "Did you mean")

	m, _ = send(t, m, keyMsg(tea.KeyCtrlU))
	assert.Empty(t, m.Suggestions())
}

func TestHelpToggle(t *testing.T) {
	ctrl := openSession(t, "")
	m := New(ctrl, Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	m, _ = send(t, m, keyMsg(tea.KeyF1))
	assert.Contains(t, m.View(), "select all")

	// Esc closes help instead of cancelling the session
	m, cmd := send(t, m, keyMsg(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.Equal(t, picker.StateIdle, ctrl.State())
	assert.Contains(t, m.View(), "views selected")
}

func TestCancelFromOverlays(t *testing.T) {
	t.Run("help open", func(t *testing.T) {
		ctrl := openSession(t, "")
		m := New(ctrl, Options{})

		m, _ = send(t, m, keyMsg(tea.KeyF1))
		m, cmd := send(t, m, keyMsg(tea.KeyCtrlC))

		assert.True(t, isQuit(cmd))
		assert.True(t, m.Cancelled())
	})

	t.Run("confirm prompt", func(t *testing.T) {
		ctrl := openSession(t, "S1")
		m := New(ctrl, Options{Confirm: true})

		m, _ = send(t, m, keyMsg(tea.KeyEnter))
		require.True(t, m.Confirming())
		m, cmd := send(t, m, keyMsg(tea.KeyCtrlC))

		assert.True(t, isQuit(cmd))
		assert.True(t, m.Cancelled())
	})

	t.Run("overridden cancel at confirm prompt", func(t *testing.T) {
		keys, err := NewKeyMap(map[string][]string{"cancel": {"ctrl+q"}})
		require.NoError(t, err)

		ctrl := openSession(t, "S1")
		m := New(ctrl, Options{Confirm: true, Keys: &keys})

		m, _ = send(t, m, keyMsg(tea.KeyEnter))
		require.True(t, m.Confirming())

		// The default binding no longer cancels once overridden
		m, cmd := send(t, m, keyMsg(tea.KeyCtrlC))
		assert.Nil(t, cmd)
		assert.Equal(t, picker.StateIdle, ctrl.State())

		m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlQ})
		assert.True(t, isQuit(cmd))
		assert.True(t, m.Cancelled())
	})

	t.Run("overridden cancel with help open", func(t *testing.T) {
		keys, err := NewKeyMap(map[string][]string{"cancel": {"ctrl+q"}})
		require.NoError(t, err)

		ctrl := openSession(t, "")
		m := New(ctrl, Options{Keys: &keys})

		m, _ = send(t, m, keyMsg(tea.KeyF1))
		m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlQ})
		assert.True(t, isQuit(cmd))
		assert.True(t, m.Cancelled())
	})
}

func TestKeyOverrides(t *testing.T) {
	keys, err := NewKeyMap(map[string][]string{"toggle": {"ctrl+t"}})
	require.NoError(t, err)

	ctrl := openSession(t, "")
	m := New(ctrl, Options{Keys: &keys})

	m, _ = send(t, m, keyMsg(tea.KeyCtrlT))
	assert.Len(t, ctrl.Selected(), 1)

	_, err = NewKeyMap(map[string][]string{"explode": {"x"}})
	assert.Error(t, err)
}
