// Package pkg provides the libraries behind slicetree, a slicing floorplan
// tree for placement optimizers.
//
// # Overview
//
// A slicing floorplan is a binary tree: leaves are fixed rectangular
// modules, internal nodes abut two subtrees horizontally (right below left)
// or vertically (right beside left). The pkg directory is organized into
// these areas:
//
//  1. [geom] - Point and rectangle primitives
//  2. [floorplan] - The tree itself: construction, merging, swaps and
//     coordinate repair
//  3. [plan] - TOML plan files and the postfix slicing expression
//  4. [render] - Drawing the floorplan and its tree
//  5. [pipeline] - Orchestration (load → build → perturb → render)
//
// # Architecture
//
// The typical data flow through slicetree:
//
//	plan.toml
//	    ↓
//	[plan] package (decode, validate, evaluate the expression)
//	    ↓
//	[floorplan] package (build, finalize, swap, repair, validate)
//	    ↓
//	[render] packages (SVG, JSON, DOT, PNG)
//
// # Quick Start
//
//	p, _ := plan.Load("demo.toml")
//	tree, _ := p.Build()
//	_ = floorplan.Finalize(tree.Root)
//
//	f, _ := floorplan.AsSplit(tree.Root)
//	_ = f.SwapChildren()
//	_ = f.RecalculateTree()
//
//	svg, _ := sink.RenderSVG(tree.Root, sink.WithCentroids())
//
// # Supporting Packages
//
// [errors] - Coded errors. Invariant violations are grouped by
// [errors.IsInvariant].
//
// [observability] - Hooks for instrumenting pipeline runs.
//
// [buildinfo] - Version information set at build time.
package pkg
