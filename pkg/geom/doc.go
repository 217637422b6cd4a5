// Package geom provides the point and rectangle primitives used by the
// floorplan tree.
//
// Coordinates follow screen conventions: X grows to the right and Y grows
// downward, so a rectangle's Top is its Y origin and Bottom is Y+H.
//
// [Point] has a distinguished [Undefined] value meaning "not yet computed".
// It compares equal only to itself and is left untouched by [Point.ShiftX]
// and [Point.ShiftY], so translating a pending centroid never turns it into
// a real coordinate by accident.
package geom
