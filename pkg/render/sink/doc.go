// Package sink draws a floorplan as SVG.
//
// # Overview
//
// [RenderSVG] walks a floorplan tree and draws every leaf at its absolute
// rectangle, with the cut lines of the internal nodes on top. Leaf fill
// colours cycle with tree depth so neighbouring subtrees stay apart.
//
//	svg, err := sink.RenderSVG(root,
//	    sink.WithScale(4),
//	    sink.WithSelected("A", "C"),
//	    sink.WithCentroids(),
//	)
//
// # Options
//
//   - [WithScale]: drawing units per floorplan unit (default 1)
//   - [WithCanvas]: fit the floorplan into a fixed canvas instead of scaling
//   - [WithSelected]: highlight leaves by module name
//   - [WithCentroids]: mark every computed centroid
//   - [WithTarget]: mark a point of interest, such as an optimizer target
//
// # JSON
//
// [RenderJSON] exports the geometry of every node (path, rectangle, weight
// and centroid when computed) for external tools.
//
// The renderers draw the rectangles stored in the tree. Run
// floorplan.Validate first if the tree may be out of date.
//
// # Coordinates
//
// Floorplan coordinates grow right and down, like SVG. A [Viewport] maps
// between the two systems; [Viewport.FromScreen] turns a pointer position
// on the drawing back into floorplan coordinates.
package sink
