package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/grovetools/viewpick/cli"
	"github.com/grovetools/viewpick/config"
	"github.com/grovetools/viewpick/errors"
	"github.com/grovetools/viewpick/pkg/picker"
	"github.com/grovetools/viewpick/pkg/profiling"
	"github.com/grovetools/viewpick/pkg/views"
	"github.com/grovetools/viewpick/state"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// session bundles what every picking command needs.
type session struct {
	cfg    *config.Config
	source *views.FileSource
	ctrl   *picker.Controller
	log    *logrus.Entry
}

// viewFile resolves the export path from the first argument or source.file.
func viewFile(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.Source.File != "" {
		return cfg.Source.File, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "no view file given").
		WithDetail("hint", "pass a path or set source.file in viewpick.yml")
}

// storeConfig translates the picker settings into engine options.
func storeConfig(cfg *config.Config) (picker.StoreConfig, error) {
	elig, err := views.NewDimensionable(cfg.Picker.Kinds...)
	if err != nil {
		return picker.StoreConfig{}, err
	}
	order := picker.Alphabetical()
	if cfg.Picker.CategoryOrder == config.OrderPriority {
		order = picker.PriorityOrder(cfg.Picker.CategoryPriority...)
	}
	return picker.StoreConfig{
		Eligibility: elig,
		Labeler:     picker.Labeler(views.Labels(cfg.Picker.Labels)),
		Order:       order,
	}, nil
}

// openSession loads configuration, reads the view export and opens a
// picking session with defaultID pre-selected.
func openSession(cmd *cobra.Command, args []string, defaultID string) (*session, error) {
	defer profiling.Start("open session").Stop()
	log := cli.GetLogger(cmd, "viewpick")

	span := profiling.Start("load config")
	cfg, err := cli.LoadConfig(cmd)
	span.Stop()
	if err != nil {
		return nil, err
	}
	path, err := viewFile(cfg, args)
	if err != nil {
		return nil, err
	}

	sc, err := storeConfig(cfg)
	if err != nil {
		return nil, err
	}

	span = profiling.Start("load views")
	src := views.NewFileSource(path, cfg.Source.Ignore)
	ctrl, err := picker.Open(src, defaultID, sc, picker.WithLogger(log))
	span.Stop()
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"file":     path,
		"document": src.Document(),
		"session":  ctrl.SessionID(),
	}).Debug("Views loaded")

	return &session{cfg: cfg, source: src, ctrl: ctrl, log: log}, nil
}

// restoreLast re-selects the ids committed last time for the same document.
func (s *session) restoreLast() (int, error) {
	last, ok, err := state.LastSelection(s.source.Document())
	if err != nil || !ok {
		return 0, err
	}
	restored := 0
	for _, id := range last.IDs {
		c, found := s.ctrl.Store().Get(id)
		if found && !c.Selected() && s.ctrl.Toggle(id) {
			restored++
		}
	}
	return restored, nil
}

// record remembers a committed selection for the next run. Failures are
// logged and never fail the command.
func (s *session) record(cands []picker.Candidate) {
	err := state.RecordSelection(s.source.Document(), picker.IDs(cands), s.ctrl.Query(), time.Now())
	if err != nil {
		s.log.WithError(err).Warn("Failed to record selection")
	}
}

type candidateJSON struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

func toJSON(cands []picker.Candidate) []candidateJSON {
	out := make([]candidateJSON, len(cands))
	for i, c := range cands {
		out[i] = candidateJSON{
			ID:       c.ID(),
			Category: c.Category(),
			Name:     c.Name(),
			Text:     c.DisplayText(),
			Selected: c.Selected(),
		}
	}
	return out
}

// writeSelection prints committed ids one per line, or a JSON array.
func writeSelection(w io.Writer, cands []picker.Candidate, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(toJSON(cands), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal selection: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	for _, id := range picker.IDs(cands) {
		fmt.Fprintln(w, id)
	}
	return nil
}
