// Package floorplan implements a slicing floorplan tree: a strictly binary
// tree whose leaves wrap fixed rectangular placement units ([Module]) and
// whose internal nodes abut two subtrees horizontally or vertically.
//
// # Overview
//
// A layout optimizer (simulated annealing or similar) builds a tree once and
// then perturbs it millions of times, mostly by swapping a node's two
// children. Every perturbation must leave absolute coordinates consistent,
// so the package offers two ways to restore them:
//
//   - [Floorplan.RecalculateTree]: the authoritative O(subtree) top-down
//     recomputation from a node's own origin.
//   - [Floorplan.SwapChildren] and [Floorplan.RecalculateChildrenCoords]:
//     O(1) and one-level repairs used on the hot path.
//
// The incremental paths are optimizations of the recomputation, never
// alternatives to it. [Validate] checks a whole tree against the
// recomputation and is the reference used by the tests.
//
// # Geometry
//
// Coordinates use screen orientation (Y grows downward):
//
//   - [Horizontal] stacks the right child below the left one. Both children
//     must have the same width.
//   - [Vertical] places the right child to the right of the left one. Both
//     children must have the same height.
//
// A mismatched orthogonal dimension is rejected by [New] with a
// DIMENSION_MISMATCH error from package errors.
//
// # Node Kinds
//
// [Node] is a closed interface implemented by [*Leaf] and [*Floorplan].
// Use [Node.Kind] together with [AsLeaf] and [AsSplit] to discriminate,
// for example in a renderer:
//
//	floorplan.Walk(root, func(n floorplan.Node, path string) error {
//	    if leaf, ok := floorplan.AsLeaf(n); ok {
//	        drawModule(leaf.Module(), leaf.Rect())
//	    }
//	    return nil
//	})
//
// # Mass Properties
//
// Construction is two-phase. [New] computes the merged rectangle but leaves
// the centroid pending; reading it with [Base.Centroid] fails with
// CENTROID_PENDING until [Floorplan.Finalize] (or the tree-wide [Finalize])
// has run. Leaves start with weight 0 and no centroid: whoever owns the
// modules must assign both before any merge is computed, otherwise the
// merge reports ZERO_WEIGHT or CENTROID_PENDING.
//
// # Ownership
//
// Each internal node exclusively owns its two children. [New] refuses a
// child that already belongs to another node, which also rules out cycles.
// [Floorplan.Dissolve] releases both children so they can be paired again.
// Leaves hold a non-owning reference to their module; the leaf's rectangle
// is a copy and is only refreshed by an explicit [Leaf.Resync].
//
// # Concurrency
//
// Trees are not safe for concurrent use. Optimizers that evaluate candidates
// in parallel should give each goroutine its own [Clone].
package floorplan
