package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// State is the local viewpick state as a generic map of key-value pairs.
type State map[string]interface{}

const selectionsKey = "selections"

// Selection records the outcome of the last committed session for one document.
type Selection struct {
	IDs         []string `yaml:"ids"`
	Query       string   `yaml:"query,omitempty"`
	CommittedAt string   `yaml:"committed_at"`
}

// stateFilePath returns the path to the state file, .viewpick/state.yml in
// the current working directory.
func stateFilePath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get current directory: %w", err)
	}
	return filepath.Join(cwd, ".viewpick", "state.yml"), nil
}

// Load loads the state from the state file.
// Returns an empty state if the file doesn't exist.
func Load() (State, error) {
	path, err := stateFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(State), nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}

	if state == nil {
		state = make(State)
	}

	return state, nil
}

// Save saves the state to the state file.
func Save(state State) error {
	path, err := stateFilePath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// RecordSelection stores the committed ids and query for document.
func RecordSelection(document string, ids []string, query string, at time.Time) error {
	state, err := Load()
	if err != nil {
		return err
	}

	selections, _ := state[selectionsKey].(map[string]interface{})
	if selections == nil {
		selections = make(map[string]interface{})
	}

	// Copy so a later caller mutation does not leak into the saved state
	saved := make([]interface{}, len(ids))
	for i, id := range ids {
		saved[i] = id
	}
	entry := map[string]interface{}{
		"ids":          saved,
		"committed_at": at.UTC().Format(time.RFC3339),
	}
	if query != "" {
		entry["query"] = query
	}
	selections[document] = entry
	state[selectionsKey] = selections

	return Save(state)
}

// LastSelection returns the selection last recorded for document.
func LastSelection(document string) (Selection, bool, error) {
	state, err := Load()
	if err != nil {
		return Selection{}, false, err
	}

	selections, _ := state[selectionsKey].(map[string]interface{})
	raw, ok := selections[document]
	if !ok {
		return Selection{}, false, nil
	}

	var sel Selection
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &sel,
		TagName: "yaml",
	})
	if err != nil {
		return Selection{}, false, fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Selection{}, false, fmt.Errorf("decode selection for '%s': %w", document, err)
	}
	return sel, true, nil
}
