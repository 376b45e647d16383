package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleExportYAML is a small host export covering eligible, ineligible and
// template views. The current view is "L1".
const SampleExportYAML = `document: Tower.rvt
current_view: L1
views:
  - id: L1
    type: FloorPlan
    name: Level 1
  - id: L2
    type: FloorPlan
    name: Level 2
  - id: RCP1
    type: CeilingPlan
    name: Level 1 RCP
  - id: S1
    type: Section
    name: Stair Section
  - id: E1
    type: Elevation
    name: North
  - id: D1
    type: Detail
    name: Wall Detail
  - id: 3D
    type: ThreeD
    name: "{3D}"
  - id: SCH
    type: Schedule
    name: Door Schedule
  - id: TPL
    type: FloorPlan
    name: Architectural Plan
    template: true
  - id: W1
    type: FloorPlan
    name: Working Level 1
`

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteSampleExport writes SampleExportYAML into a fresh temp directory and
// returns the file path.
func WriteSampleExport(t *testing.T) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "views.yml", SampleExportYAML)
}

// Chdir changes the working directory for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
	})
}
