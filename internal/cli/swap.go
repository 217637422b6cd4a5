package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/slicetree/pkg/pipeline"
)

// swapCommand creates the swap command. Each path names an internal node,
// from the root, as a string over L and R ("" or "root" is the root
// itself). Swaps run after the plan's own swaps, in order.
func (c *CLI) swapCommand() *cobra.Command {
	var repair string

	cmd := &cobra.Command{
		Use:   "swap <plan.toml> <path>...",
		Short: "Swap the children of internal nodes and print the new placement",
		Example: `  slicetree swap demo.toml root
  slicetree swap demo.toml L LR --repair children`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: completeSwapPaths,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), pipeline.Options{
				PlanPath: args[0],
				Swaps:    parsePaths(args[1:]),
				Repair:   repair,
			})
		},
	}

	cmd.Flags().StringVar(&repair, "repair", pipeline.DefaultRepair, "coordinate repair after each swap: tree, children")
	return cmd
}

// parsePaths maps the "root" alias to the empty path.
func parsePaths(args []string) []string {
	paths := make([]string, len(args))
	for i, a := range args {
		if a != "root" {
			paths[i] = a
		}
	}
	return paths
}
