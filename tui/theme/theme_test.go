package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveThemeColors(t *testing.T) {
	assert.Equal(t, newGruvboxColors(), resolveThemeColors("Gruvbox Dark"))
	assert.Equal(t, newTerminalColors(), resolveThemeColors("terminal"))
	assert.Equal(t, resolveThemeColors(defaultThemeName), resolveThemeColors("no-such-theme"))
}

func TestThemeFromEnv(t *testing.T) {
	t.Setenv("VIEWPICK_THEME", "terminal")
	assert.Equal(t, "terminal", getThemeName())
	assert.Equal(t, newTerminalColors(), NewTheme().Colors)
}

func TestUseIconSet(t *testing.T) {
	t.Cleanup(func() { UseIconSet("") })

	UseIconSet("ascii")
	assert.Equal(t, "[x]", IconChecked)
	assert.Equal(t, "[ ]", IconUnchecked)

	UseIconSet("nerd")
	assert.NotEqual(t, "[x]", IconChecked)
	assert.NotEmpty(t, IconChecked)
}

func TestRenderStatus(t *testing.T) {
	assert.Contains(t, RenderStatus("success", "done"), "done")
	assert.Equal(t, "plain", RenderStatus("other", "plain"))
}
