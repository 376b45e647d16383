package cmd

import (
	"github.com/grovetools/viewpick/cli"
	"github.com/grovetools/viewpick/errors"
	"github.com/spf13/cobra"
)

func newSelectCmd() *cobra.Command {
	var (
		defaultID string
		query     string
		all       bool
		none      bool
		toggle    []string
		restore   bool
	)

	cmd := &cobra.Command{
		Use:   "select [view-file]",
		Short: "Select views without the interactive picker",
		Long: `Run a picking session from flags and commit it.

Steps run in this order: the default view is pre-selected, the last selection
is restored (--restore), ids in --toggle are flipped, then --query filters the
list and --all or --none apply to the views it leaves visible.

Examples:
# every floor plan
viewpick select views.yml --query "floor plan" --all
# the current view plus one more
viewpick select views.yml --toggle S1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && none {
				return errors.New(errors.ErrCodeInvalidInput, "--all and --none cannot be combined")
			}

			s, err := openSession(cmd, args, defaultID)
			if err != nil {
				return err
			}
			if restore {
				if _, err := s.restoreLast(); err != nil {
					s.log.WithError(err).Warn("Failed to restore last selection")
				}
			}

			for _, id := range toggle {
				if !s.ctrl.Toggle(id) {
					s.log.WithField("id", id).Warn("Unknown or ineligible view id")
				}
			}

			s.ctrl.SetQuery(query)
			switch {
			case all:
				s.ctrl.SelectAllVisible()
			case none:
				s.ctrl.SelectNoneVisible()
			}

			cands, err := s.ctrl.Commit()
			if err != nil {
				return err
			}
			s.record(cands)
			return writeSelection(cmd.OutOrStdout(), cands, cli.GetOptions(cmd).JSONOutput)
		},
	}

	cmd.Flags().StringVar(&defaultID, "default", "", "View id to pre-select (defaults to the export's current view)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter applied before --all/--none")
	cmd.Flags().BoolVar(&all, "all", false, "Select every visible view")
	cmd.Flags().BoolVar(&none, "none", false, "Deselect every visible view")
	cmd.Flags().StringSliceVar(&toggle, "toggle", nil, "View ids to toggle")
	cmd.Flags().BoolVar(&restore, "restore", false, "Pre-select the views committed last time")

	return cmd
}
