// Package observability provides hooks for instrumenting floorplan pipelines.
//
// Consumers register hooks at startup to receive events about plan builds,
// child swaps and rendering, without the pipeline depending on any metrics
// or tracing backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnBuildStart(ctx, plan.Name, len(plan.Modules))
//	// ... build ...
//	observability.Pipeline().OnBuildComplete(ctx, plan.Name, leaves, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the floorplan pipeline.
type PipelineHooks interface {
	// Build events cover building, finalizing and validating a plan's tree.
	OnBuildStart(ctx context.Context, plan string, modules int)
	OnBuildComplete(ctx context.Context, plan string, leaves int, duration time.Duration, err error)

	// OnSwap records one child swap and its coordinate repair.
	OnSwap(ctx context.Context, path, repair string, err error)

	// Render events
	OnRenderStart(ctx context.Context, vizType string, formats []string)
	OnRenderComplete(ctx context.Context, vizType string, formats []string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBuildStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnSwap(context.Context, string, string, error)                      {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                    {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
