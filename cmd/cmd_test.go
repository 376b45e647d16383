package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/grovetools/viewpick/errors"
	"github.com/grovetools/viewpick/pkg/profiling"
	"github.com/grovetools/viewpick/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	testutil.Chdir(t, t.TempDir())
	return testutil.WriteSampleExport(t)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListJSON(t *testing.T) {
	path := setup(t)

	out, err := run(t, "list", path, "--json")
	require.NoError(t, err)

	var got []candidateJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 7)
	assert.Equal(t, "RCP1", got[0].ID)
	assert.Equal(t, "Ceiling Plan", got[0].Category)
	assert.Equal(t, "Ceiling Plan: Level 1 RCP", got[0].Text)

	for _, c := range got {
		assert.Equal(t, c.ID == "L1", c.Selected, "only the current view starts selected")
	}
}

func TestListQuery(t *testing.T) {
	path := setup(t)

	out, err := run(t, "list", path, "--query", "LEVEL")
	require.NoError(t, err)
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "Working Level 1")
	assert.NotContains(t, out, "North")
	assert.Contains(t, out, "4 shown, 1 from 7 views selected")
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"current view only", nil, "L1\n"},
		{"all floor plans", []string{"--query", "floor plan", "--all"}, "L1\nL2\nW1\n"},
		{"toggle adds in store order", []string{"--toggle", "S1"}, "L1\nS1\n"},
		{"explicit default", []string{"--default", "E1"}, "E1\n"},
		{"none scoped to query", []string{"--toggle", "S1", "--query", "level 1", "--none"}, "S1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := setup(t)
			out, err := run(t, append([]string{"select", path}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSelectEmpty(t *testing.T) {
	path := setup(t)

	_, err := run(t, "select", path, "--none")
	assert.True(t, errors.Is(err, errors.ErrCodeEmptySelection))

	assert.Equal(t, 1, Execute([]string{"select", path, "--none"}))
}

func TestTimingSummaryOnFailure(t *testing.T) {
	path := setup(t)
	t.Cleanup(profiling.Reset)

	root, prof := newRootCmd()
	var errOut bytes.Buffer
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&errOut)
	root.SetArgs([]string{"select", path, "--none", "--timing"})

	err := root.Execute()
	assert.True(t, errors.Is(err, errors.ErrCodeEmptySelection))

	prof.Finish(&errOut)
	assert.Contains(t, errOut.String(), "load views")
}

func TestSelectRestore(t *testing.T) {
	path := setup(t)

	_, err := run(t, "select", path, "--toggle", "S1")
	require.NoError(t, err)

	out, err := run(t, "select", path, "--restore", "--toggle", "L1")
	require.NoError(t, err)
	assert.Equal(t, "S1\n", out)
}

func TestSelectRejectsAllAndNone(t *testing.T) {
	path := setup(t)

	_, err := run(t, "select", path, "--all", "--none")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestViewFileFromConfig(t *testing.T) {
	path := setup(t)
	testutil.WriteFile(t, ".", "viewpick.yml", "source:\n  file: "+path+"\n  ignore:\n    - \"Working*\"\n")

	out, err := run(t, "select", "--query", "floor plan", "--all")
	require.NoError(t, err)
	assert.Equal(t, "L1\nL2\n", out)
}

func TestUnsupportedKindInConfig(t *testing.T) {
	path := setup(t)
	testutil.WriteFile(t, ".", "viewpick.yml", "picker:\n  kinds: [Secton]\n")

	_, err := run(t, "select", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
	assert.Contains(t, err.Error(), "Secton")

	_, err = run(t, "list", path)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
}

func TestMissingViewFile(t *testing.T) {
	setup(t)

	_, err := run(t, "list")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestConfigSchema(t *testing.T) {
	setup(t)

	out, err := run(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "category_order")
}

func TestConfigLayers(t *testing.T) {
	setup(t)
	testutil.WriteFile(t, ".", "viewpick.yml", "picker:\n  confirm: false\n")

	out, err := run(t, "config", "layers")
	require.NoError(t, err)
	assert.Contains(t, out, "PROJECT CONFIG")
	assert.Contains(t, out, "FINAL MERGED CONFIG")
}

func TestVersionJSON(t *testing.T) {
	setup(t)

	out, err := run(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"goVersion"`)
}
