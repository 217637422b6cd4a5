package geom

import (
	"fmt"
	"math"
)

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Undefined returns the sentinel for a point that has not been computed
// yet. Both coordinates are +Inf.
func Undefined() Point { return Point{X: math.Inf(1), Y: math.Inf(1)} }

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point { return Point{X: x, Y: y} }

// IsUndefined reports whether p is the [Undefined] sentinel.
func (p Point) IsUndefined() bool { return math.IsInf(p.X, 1) && math.IsInf(p.Y, 1) }

// IsNull reports whether p is unset: either the sentinel or the origin.
func (p Point) IsNull() bool {
	return p.IsUndefined() || (p.X == 0 && p.Y == 0)
}

// ShiftX translates p horizontally by dx. The sentinel is not moved.
func (p *Point) ShiftX(dx float64) {
	if p.IsUndefined() {
		return
	}
	p.X += dx
}

// ShiftY translates p vertically by dy. The sentinel is not moved.
func (p *Point) ShiftY(dy float64) {
	if p.IsUndefined() {
		return
	}
	p.Y += dy
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// String formats p as (x,y), or (undefined) for the sentinel.
func (p Point) String() string {
	if p.IsUndefined() {
		return "(undefined)"
	}
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
