// Package nodelink renders the structure of a floorplan tree as a
// node-link diagram.
//
// # Overview
//
// Where package sink draws the floorplan itself, this package draws the
// slicing tree: internal nodes appear as ellipses labelled with their split
// type, leaves as boxes labelled with their module name. Edges leave a node
// toward its left child first, so the drawing reads like the postfix
// expression the tree came from.
//
// # Usage
//
//	dot, err := nodelink.ToDOT(root, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include the rectangle, weight and centroid.
//
// # Node IDs
//
// DOT node IDs are the node paths used by floorplan.Walk ("root", "L",
// "LR", ...), so a diagram and the CLI's swap command address nodes the
// same way.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
package nodelink
