package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/viewpick/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// TestExtensions verifies that custom extensions in viewpick.yml are properly loaded
func TestExtensions(t *testing.T) {
	yamlContent := []byte(`
version: "1.0"
picker:
  confirm: false

logging:
  level: debug
  file:
    enabled: true
    path: /tmp/viewpick.log
`)

	cfg, err := LoadFromBytes(yamlContent)
	require.NoError(t, err)

	type fileSink struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	}
	type loggingConfig struct {
		Level string   `yaml:"level"`
		File  fileSink `yaml:"file"`
	}

	var logCfg loggingConfig
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.File.Enabled)
	assert.Equal(t, "/tmp/viewpick.log", logCfg.File.Path)

	var unknown struct {
		SomeField string `yaml:"some_field"`
	}
	require.NoError(t, cfg.UnmarshalExtension("unknown", &unknown), "missing extensions are not an error")
	assert.Empty(t, unknown.SomeField)

	assert.False(t, cfg.Picker.ConfirmEnabled())
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`version: "1.0"`))
	require.NoError(t, err)

	assert.Equal(t, OrderAlphabetical, cfg.Picker.CategoryOrder)
	assert.True(t, cfg.Picker.ConfirmEnabled())
	assert.Empty(t, cfg.Source.Ignore)
}

func TestEnvExpansion(t *testing.T) {
	t.Setenv("VIEWPICK_TEST_EXPORT", "/exports/tower.yml")

	cfg, err := LoadFromBytes([]byte(`
source:
  file: ${VIEWPICK_TEST_EXPORT}
picker:
  category_order: ${VIEWPICK_TEST_ORDER:-priority}
  category_priority: ["Floor Plan"]
`))
	require.NoError(t, err)

	assert.Equal(t, "/exports/tower.yml", cfg.Source.File)
	assert.Equal(t, OrderPriority, cfg.Picker.CategoryOrder)
}

func TestSchemaRejectsUnknownPickerKey(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
picker:
  colour: red
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
}

func TestSchemaRejectsWrongType(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
picker:
  kinds: floor_plan
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewpick.toml")
	writeFile(t, path, `
version = "1.0"

[picker]
category_order = "priority"
category_priority = ["Section", "Floor Plan"]
kinds = ["floor_plan", "section"]

[picker.labels]
floor_plan = "Plan"

[source]
ignore = ["Working*"]

[logging]
level = "warn"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, OrderPriority, cfg.Picker.CategoryOrder)
	assert.Equal(t, []string{"Section", "Floor Plan"}, cfg.Picker.CategoryPriority)
	assert.Equal(t, "Plan", cfg.Picker.Labels["floor_plan"])
	assert.Equal(t, []string{"Working*"}, cfg.Source.Ignore)

	var logCfg struct {
		Level string `yaml:"level"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "warn", logCfg.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg"))

	project := filepath.Join(root, "project")
	nested := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, filepath.Join(project, "viewpick.yml"), "version: \"1.0\"\n")

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(project, "viewpick.yml"), found)

	other := filepath.Join(root, "other")
	require.NoError(t, os.MkdirAll(other, 0755))
	_, err = FindConfigFile(other)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))

	// Falls back to the XDG file
	xdgFile := filepath.Join(root, "xdg", "viewpick", "viewpick.yml")
	writeFile(t, xdgFile, "version: \"1.0\"\n")
	found, err = FindConfigFile(other)
	require.NoError(t, err)
	assert.Equal(t, xdgFile, found)
}

func TestLoadOrDefault(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, OrderAlphabetical, cfg.Picker.CategoryOrder)
	assert.True(t, cfg.Picker.ConfirmEnabled())
}
