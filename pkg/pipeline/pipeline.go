// Package pipeline runs the load → build → finalize → perturb → render
// sequence over a plan file.
//
// The CLI uses this package so every command shares one code path from a
// plan on disk to a validated tree and its rendered outputs.
//
// # Stages
//
//  1. Load: read and validate the TOML plan (package plan)
//  2. Build: evaluate the slicing expression into a floorplan tree
//  3. Finalize: compute weights and centroids bottom-up, when every module
//     has a weight
//  4. Perturb: swap the children of the nodes named by path, repairing
//     coordinates after each swap
//  5. Validate: check the tree against a full top-down recomputation
//  6. Render: produce the requested artifacts
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    PlanPath: "demo.toml",
//	    Swaps:    []string{"L"},
//	    Formats:  []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"slices"
	"time"

	"github.com/matzehuels/slicetree/pkg/geom"
	"github.com/matzehuels/slicetree/pkg/plan"
)

// Visualization types.
const (
	VizFloorplan = "floorplan"
	VizNodelink  = "nodelink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// Repair modes applied after each swap.
const (
	// RepairTree recomputes the swapped subtree with RecalculateTree.
	RepairTree = "tree"
	// RepairChildren walks the swapped subtree top-down and calls
	// RecalculateChildrenCoords at every internal node.
	RepairChildren = "children"
)

const (
	DefaultVizType = VizFloorplan
	DefaultRepair  = RepairTree
	DefaultScale   = 4.0
)

// formatsByViz lists the formats each visualization type can produce.
var formatsByViz = map[string][]string{
	VizFloorplan: {FormatSVG, FormatJSON},
	VizNodelink:  {FormatSVG, FormatPNG, FormatDOT},
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// PlanPath is the plan file to load. Ignored when Plan is set.
	PlanPath string
	// Plan is an already decoded plan.
	Plan *plan.Plan

	// Swaps are node paths swapped after the plan's own swaps.
	Swaps []string
	// Repair selects how coordinates are repaired after each swap.
	Repair string

	VizType   string
	Formats   []string
	Scale     float64
	Detailed  bool
	Selected  []string
	Centroids bool
	Target    *geom.Point
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Plan      *plan.Plan
	Tree      *plan.Tree
	Artifacts map[string][]byte
	Stats     Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Leaves     int
	Internal   int
	Swaps      int
	Finalized  bool
	BuildTime  time.Duration
	RenderTime time.Duration
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if _, ok := formatsByViz[vizType]; !ok {
		return fmt.Errorf("invalid viz type: %q (must be one of: floorplan, nodelink)", vizType)
	}
	return nil
}

// ValidateFormats checks that every format can be produced for vizType.
func ValidateFormats(vizType string, formats []string) error {
	if err := ValidateVizType(vizType); err != nil {
		return err
	}
	valid := formatsByViz[vizType]
	for _, f := range formats {
		if !slices.Contains(valid, f) {
			return fmt.Errorf("invalid format for %s: %q (must be one of: %v)", vizType, f, valid)
		}
	}
	return nil
}

// ValidateRepair checks that a repair mode is valid.
func ValidateRepair(mode string) error {
	if mode != RepairTree && mode != RepairChildren {
		return fmt.Errorf("invalid repair mode: %q (must be one of: tree, children)", mode)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Plan == nil && o.PlanPath == "" {
		return fmt.Errorf("plan path is required")
	}
	if o.Repair == "" {
		o.Repair = DefaultRepair
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if err := ValidateRepair(o.Repair); err != nil {
		return err
	}
	return ValidateFormats(o.VizType, o.Formats)
}
