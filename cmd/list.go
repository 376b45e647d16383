package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/viewpick/cli"
	"github.com/grovetools/viewpick/tui"
	"github.com/grovetools/viewpick/tui/components/table"
	"github.com/grovetools/viewpick/tui/theme"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list [view-file]",
		Short: "List the eligible views",
		Long: `List the views that can be picked, in picker order.

Examples:
viewpick list views.yml
viewpick list views.yml --query level --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.InitializeTUI()

			s, err := openSession(cmd, args, "")
			if err != nil {
				return err
			}
			s.ctrl.SetQuery(query)
			visible := s.ctrl.Visible()
			out := cmd.OutOrStdout()

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(toJSON(visible), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal views: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			t := theme.DefaultTheme
			rows := make([][]string, 0, len(visible))
			marked := make(map[int]bool)
			for i, c := range visible {
				mark := theme.IconUnchecked
				if c.Selected() {
					mark = theme.IconChecked
					marked[i] = true
				}
				rows = append(rows, []string{mark, c.ID(), c.Category(), c.Name()})
			}

			opts := table.DefaultOptions()
			opts.AccentColumn = 2
			opts.MarkedRows = marked
			fmt.Fprintln(out, table.New([]string{"", "ID", "CATEGORY", "NAME"}, rows, opts))

			selected, total := s.ctrl.SelectionCount()
			fmt.Fprintln(out, t.Muted.Render(fmt.Sprintf("%d shown, %d from %d views selected", len(visible), selected, total)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Only list views whose text contains this")
	return cmd
}
