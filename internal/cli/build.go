package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slicetree/pkg/pipeline"
)

// buildCommand creates the build command, which builds the plan's tree,
// applies the swaps listed in the plan and prints every leaf's placement.
func (c *CLI) buildCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "build <plan.toml>",
		Short:             "Build a floorplan and print its leaves",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePlanFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), pipeline.Options{PlanPath: args[0]})
		},
	}
}

// runBuild executes the pipeline without rendering and prints the result.
func (c *CLI) runBuild(ctx context.Context, opts pipeline.Options) error {
	res, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}

	name := res.Plan.Name
	if name == "" {
		name = opts.PlanPath
	}
	r := res.Tree.Root.Rect()
	printSuccess("Built %s %s", StyleTitle.Render(name), StyleNumber.Render(r.String()))
	printStats(res.Stats)
	if p, err := res.Tree.Root.Centroid(); err == nil {
		printDetail("centroid %s, weight %s", p, num(res.Tree.Root.Weight()))
	}
	return printLeafTable(res.Tree.Root)
}
