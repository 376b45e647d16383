package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/viewpick/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardFlags(t *testing.T) {
	cmd := NewStandardCommand("viewpick", "Pick views")
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return nil }
	cmd.SetArgs([]string{"-v", "--json", "-c", "custom.yml"})
	require.NoError(t, cmd.Execute())

	opts := GetOptions(cmd)
	assert.True(t, opts.Verbose)
	assert.True(t, opts.JSONOutput)
	assert.Equal(t, "custom.yml", opts.ConfigFile)
}

func TestLoadConfigFromFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("picker:\n  confirm: false\n"), 0o644))

	cmd := NewStandardCommand("viewpick", "Pick views")
	require.NoError(t, cmd.PersistentFlags().Set("config", path))

	cfg, err := LoadConfig(cmd)
	require.NoError(t, err)
	assert.False(t, cfg.Picker.ConfirmEnabled())

	require.NoError(t, cmd.PersistentFlags().Set("config", filepath.Join(dir, "missing.yml")))
	_, err = LoadConfig(cmd)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil", nil, ExitOK, ""},
		{"cancelled", errors.Cancelled(), ExitCancelled, ""},
		{"empty selection", errors.EmptySelection(4), ExitError, "Please select at least one view."},
		{"config not found", errors.ConfigNotFound("/tmp/x.yml"), ExitError, "/tmp/x.yml"},
		{"duplicate id", errors.DuplicateIdentity("L1"), ExitError, "'L1'"},
		{"view file", errors.ViewFileInvalid("views.yml", fmt.Errorf("boom")), ExitError, "views.yml"},
		{"plain", fmt.Errorf("boom"), ExitError, "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &ErrorHandler{Out: &buf}
			assert.Equal(t, tt.wantCode, h.Handle(tt.err))
			if tt.wantOut == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.wantOut)
			}
		})
	}
}

func TestErrorHandlerVerboseDetails(t *testing.T) {
	var buf bytes.Buffer
	h := &ErrorHandler{Verbose: true, Out: &buf}
	h.Handle(errors.DuplicateIdentity("L1"))
	assert.Contains(t, buf.String(), `"code": "DUPLICATE_IDENTITY"`)
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "short", wrapText("short", 20))
	assert.Equal(t, "one two\nthree", wrapText("one two three", 8))
	assert.Equal(t, "a\nb", wrapText("a\nb", 8))
}

func TestRenderHelp(t *testing.T) {
	root := NewStandardCommand("viewpick", "Pick views")
	sub := &cobra.Command{
		Use:   "list",
		Short: "List eligible views",
		Long:  "List eligible views.\n\nExamples:\n# everything\nviewpick list --query level",
		Run:   func(cmd *cobra.Command, args []string) {},
	}
	sub.Flags().String("query", "", "Filter text")
	root.AddCommand(sub)

	var buf bytes.Buffer
	renderHelp(&buf, root, 58)
	out := buf.String()
	assert.Contains(t, out, "VIEWPICK")
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "list")

	buf.Reset()
	renderHelp(&buf, sub, 58)
	out = buf.String()
	assert.Contains(t, out, "--query")
	assert.Contains(t, out, "EXAMPLES")
	assert.True(t, strings.Contains(out, "viewpick list --query level"))
}
