package cmd

import (
	"github.com/grovetools/viewpick/cli"
	"github.com/grovetools/viewpick/pkg/profiling"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the viewpick command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *profiling.CobraProfiler) {
	root := cli.NewStandardCommand(
		"viewpick",
		"Pick drawing views to dimension from a host view export",
	)

	prof := profiling.NewCobraProfiler()
	prof.AddFlags(root)

	root.AddCommand(newPickCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newSelectCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(cli.NewVersionCommand("viewpick"))

	cli.ApplyStyledHelpRecursive(root)
	return root, prof
}

// Execute runs the command tree and returns the process exit code.
func Execute(args []string) int {
	root, prof := newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	prof.Finish(root.ErrOrStderr())
	return cli.NewErrorHandler(cli.GetOptions(root).Verbose).Handle(err)
}
