package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/geom"
	"github.com/matzehuels/slicetree/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output base path (default: input without extension)
	vizType   string  // "floorplan" or "nodelink"
	formats   string  // comma-separated formats
	scale     float64 // drawing units per floorplan unit
	selected  string  // comma-separated module names to highlight
	centroids bool    // mark computed centroids
	target    string  // "x,y" point to mark
	detailed  bool    // geometry in nodelink labels
	swaps     string  // comma-separated node paths to swap first
	repair    string  // repair mode after each swap
}

// renderCommand creates the render command. The floorplan view supports
// svg and json; the nodelink view supports svg, png and dot.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		vizType: pipeline.DefaultVizType,
		scale:   pipeline.DefaultScale,
		repair:  pipeline.DefaultRepair,
	}

	cmd := &cobra.Command{
		Use:   "render <plan.toml>",
		Short: "Draw a floorplan or its slicing tree",
		Example: `  slicetree render demo.toml
  slicetree render demo.toml -f svg,json --centroids --select A,C
  slicetree render demo.toml -t nodelink -f svg,dot --detailed`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePlanFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path; the format is appended as extension")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", opts.vizType, "visualization type: floorplan, nodelink")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s), comma-separated (default svg)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "drawing units per floorplan unit (floorplan)")
	cmd.Flags().StringVar(&opts.selected, "select", "", "modules to highlight, comma-separated (floorplan)")
	cmd.Flags().BoolVar(&opts.centroids, "centroids", false, "mark computed centroids (floorplan)")
	cmd.Flags().StringVar(&opts.target, "target", "", "point to mark as x,y (floorplan)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show geometry in node labels (nodelink)")
	cmd.Flags().StringVar(&opts.swaps, "swap", "", "node paths to swap before drawing, comma-separated")
	cmd.Flags().StringVar(&opts.repair, "repair", opts.repair, "coordinate repair after each swap: tree, children")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, ro renderOpts) error {
	target, err := parseTarget(ro.target)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		PlanPath:  input,
		Swaps:     parsePaths(splitList(ro.swaps)),
		Repair:    ro.repair,
		VizType:   ro.vizType,
		Formats:   parseFormats(ro.formats),
		Scale:     ro.scale,
		Detailed:  ro.detailed,
		Selected:  splitList(ro.selected),
		Centroids: ro.centroids,
		Target:    target,
	}

	prog := newProgress(c.Logger)
	res, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(basePath(ro.output, input), opts.Formats, res.Artifacts)
	if err != nil {
		return err
	}
	prog.done("Rendered " + input)

	printSuccess("Rendered %s (%s)", StyleTitle.Render(input), opts.VizType)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// parseTarget parses an "x,y" point. An empty string means no target.
func parseTarget(s string) (*geom.Point, error) {
	if s == "" {
		return nil, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "target %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "target x %q", xs)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "target y %q", ys)
	}
	p := geom.NewPoint(x, y)
	return &p, nil
}
