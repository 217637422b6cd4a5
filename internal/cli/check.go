package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/floorplan"
	"github.com/matzehuels/slicetree/pkg/pipeline"
)

// checkCommand creates the check command. It builds the plan twice, once
// per repair mode, validates both trees and verifies that they agree.
func (c *CLI) checkCommand() *cobra.Command {
	var swaps string

	cmd := &cobra.Command{
		Use:               "check <plan.toml>",
		Short:             "Validate a plan and the coordinate repair of its swaps",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePlanFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], parsePaths(splitList(swaps)))
		},
	}

	cmd.Flags().StringVar(&swaps, "swap", "", "extra node paths to swap (comma-separated)")
	return cmd
}

func (c *CLI) runCheck(ctx context.Context, input string, swaps []string) error {
	prog := newProgress(c.Logger)
	runner := c.newRunner()

	results := make(map[string]*pipeline.Result, 2)
	for _, mode := range []string{pipeline.RepairTree, pipeline.RepairChildren} {
		res, err := runner.Execute(ctx, pipeline.Options{PlanPath: input, Swaps: swaps, Repair: mode})
		if err != nil {
			printError("%s repair: %s", mode, errors.UserMessage(err))
			return err
		}
		results[mode] = res
	}

	if err := sameLayout(results[pipeline.RepairTree].Tree.Root, results[pipeline.RepairChildren].Tree.Root); err != nil {
		printError("repair modes disagree: %s", errors.UserMessage(err))
		return err
	}

	prog.done("Checked " + input)
	printSuccess("%s is consistent", StyleTitle.Render(input))
	printStats(results[pipeline.RepairTree].Stats)
	printNextStep("Draw it", fmt.Sprintf("%s render %s", appName, input))
	return nil
}

// sameLayout reports the first node whose rectangle or centroid differs
// between a and b.
func sameLayout(a, b floorplan.Node) error {
	return floorplan.Walk(a, func(n floorplan.Node, path string) error {
		other, err := floorplan.Find(b, path)
		if err != nil {
			return err
		}
		if n.Rect() != other.Rect() {
			return errors.New(errors.ErrCodeInvariant, "node %q: %v != %v", path, n.Rect(), other.Rect())
		}
		if n.HasCentroid() != other.HasCentroid() {
			return errors.New(errors.ErrCodeInvariant, "node %q: centroid computed on one side only", path)
		}
		c1, _ := n.Centroid()
		c2, _ := other.Centroid()
		if c1 != c2 {
			return errors.New(errors.ErrCodeInvariant, "node %q: centroid %v != %v", path, c1, c2)
		}
		return nil
	})
}
