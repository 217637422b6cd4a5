// Package render groups the floorplan renderers.
//
// # Overview
//
// Two views are provided:
//
//   - [sink]: the floorplan itself, every leaf at its absolute rectangle
//     (SVG), plus a JSON export of all node geometry
//   - [nodelink]: the slicing tree as a node-link diagram (DOT, rendered to
//     SVG or PNG with Graphviz)
//
// Both renderers only read the tree. They draw whatever coordinates the
// nodes hold, so callers repair the tree before rendering.
//
//	svg, err := sink.RenderSVG(root, sink.WithScale(4))
//	dot, err := nodelink.ToDOT(root, nodelink.Options{Detailed: true})
package render
