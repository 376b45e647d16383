package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/viewpick/cli"
	"github.com/grovetools/viewpick/errors"
	"github.com/grovetools/viewpick/logging"
	"github.com/grovetools/viewpick/pkg/profiling"
	"github.com/grovetools/viewpick/tui"
	"github.com/grovetools/viewpick/tui/components/selector"
	"github.com/spf13/cobra"
)

func newPickCmd() *cobra.Command {
	var (
		defaultID    string
		title        string
		action       string
		noConfirm    bool
		restore      bool
		failOnCancel bool
	)

	cmd := &cobra.Command{
		Use:   "pick [view-file]",
		Short: "Interactively select views",
		Long: `Open the view picker over a host view export.

Type to filter, tab toggles the highlighted view, ctrl+a and ctrl+n select or
clear every visible view, enter executes. The committed view ids are printed
one per line.

Examples:
# pick from an export, pre-selecting its current view
viewpick pick views.yml
# start from last time's selection
viewpick pick views.yml --restore`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.InitializeTUI()

			s, err := openSession(cmd, args, defaultID)
			if err != nil {
				return err
			}
			if restore {
				n, err := s.restoreLast()
				if err != nil {
					s.log.WithError(err).Warn("Failed to restore last selection")
				}
				s.log.WithField("restored", n).Debug("Restored last selection")
			}

			keys, err := selector.NewKeyMap(s.cfg.Picker.Keys)
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid picker.keys")
			}

			model := selector.New(s.ctrl, selector.Options{
				Title:   title,
				Action:  action,
				Confirm: s.cfg.Picker.ConfirmEnabled() && !noConfirm,
				Keys:    &keys,
			})

			// The list is drawn on stderr so stdout carries only the result
			program := tea.NewProgram(model, tea.WithOutput(cmd.ErrOrStderr()))
			span := profiling.Start("interactive session")
			final, err := program.Run()
			span.Stop()
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "picker failed")
			}

			m, ok := final.(selector.Model)
			if !ok {
				return errors.New(errors.ErrCodeInternal, fmt.Sprintf("unexpected model %T", final))
			}
			cands, committed := m.Result()
			if !committed {
				if failOnCancel {
					return errors.Cancelled()
				}
				return nil
			}

			s.record(cands)
			logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).
				Success(fmt.Sprintf("%s on %d view(s)", action, len(cands)))
			return writeSelection(cmd.OutOrStdout(), cands, cli.GetOptions(cmd).JSONOutput)
		},
	}

	cmd.Flags().StringVar(&defaultID, "default", "", "View id to pre-select (defaults to the export's current view)")
	cmd.Flags().StringVar(&title, "title", "Select Views", "Title shown above the list")
	cmd.Flags().StringVar(&action, "action", "Execute", "Action named in the confirmation prompt")
	cmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "Commit without asking")
	cmd.Flags().BoolVar(&restore, "restore", false, "Pre-select the views committed last time")
	cmd.Flags().BoolVar(&failOnCancel, "fail-on-cancel", false, "Exit with code 2 when the picker is cancelled")

	return cmd
}
