package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/floorplan"
	"github.com/matzehuels/slicetree/pkg/observability"
	"github.com/matzehuels/slicetree/pkg/plan"
)

// Runner executes pipelines with a shared logger. It holds no per-run
// state, so one Runner may serve several goroutines.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete pipeline. The context is checked between
// stages; the stages themselves are not interruptible.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	p, err := r.Load(opts)
	if err != nil {
		return nil, err
	}
	result.Plan = p

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, p.Name, len(p.Modules))
	buildStart := time.Now()
	err = r.buildAndPerturb(ctx, p, opts, result)
	result.Stats.BuildTime = time.Since(buildStart)
	hooks.OnBuildComplete(ctx, p.Name, result.Stats.Leaves, result.Stats.BuildTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("built floorplan",
		"plan", p.Name,
		"leaves", result.Stats.Leaves,
		"swaps", result.Stats.Swaps,
		"finalized", result.Stats.Finalized,
		"duration", result.Stats.BuildTime)

	if len(opts.Formats) == 0 {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks.OnRenderStart(ctx, opts.VizType, opts.Formats)
	renderStart := time.Now()
	artifacts, err := Render(result.Tree.Root, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered outputs",
		"viz", opts.VizType,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// buildAndPerturb builds the tree, applies the plan's swaps followed by
// opts.Swaps and validates the result.
func (r *Runner) buildAndPerturb(ctx context.Context, p *plan.Plan, opts Options, result *Result) error {
	tree, finalized, err := r.Build(p)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	result.Tree = tree
	result.Stats.Finalized = finalized

	if err := ctx.Err(); err != nil {
		return err
	}

	swaps := append(append([]string(nil), p.Swaps...), opts.Swaps...)
	for _, path := range swaps {
		err := r.Swap(tree.Root, path, opts.Repair)
		observability.Pipeline().OnSwap(ctx, path, opts.Repair, err)
		if err != nil {
			return fmt.Errorf("swap: %w", err)
		}
	}
	result.Stats.Swaps = len(swaps)

	if err := floorplan.Validate(tree.Root); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if finalized {
		if err := floorplan.ValidateCentroids(tree.Root); err != nil {
			return fmt.Errorf("validate: %w", err)
		}
	}
	result.Stats.Leaves, result.Stats.Internal, _ = floorplan.Count(tree.Root)
	return nil
}

// Load returns opts.Plan, or reads the plan at opts.PlanPath.
func (r *Runner) Load(opts Options) (*plan.Plan, error) {
	if opts.Plan != nil {
		if err := opts.Plan.Validate(); err != nil {
			return nil, err
		}
		return opts.Plan, nil
	}
	p, err := plan.Load(opts.PlanPath)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded plan", "path", opts.PlanPath, "modules", len(p.Modules))
	return p, nil
}

// Build builds the plan's tree and finalizes it when every module carries
// a weight. It reports whether the tree was finalized.
func (r *Runner) Build(p *plan.Plan) (*plan.Tree, bool, error) {
	tree, err := p.Build()
	if err != nil {
		return nil, false, err
	}
	if !p.Weighted() {
		r.Logger.Debug("skipping finalize: not every module has a weight")
		return tree, false, nil
	}
	if err := floorplan.Finalize(tree.Root); err != nil {
		return nil, false, fmt.Errorf("finalize: %w", err)
	}
	return tree, true, nil
}
