package geom

import "fmt"

// Rect is an axis-aligned rectangle given by its origin and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect returns the rectangle with origin (x, y) and size w×h.
func NewRect(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Width and Height return the size.
func (r Rect) Width() float64  { return r.W }
func (r Rect) Height() float64 { return r.H }

// Left, Top, Right and Bottom return the edges. Y grows downward, so Top is
// the smaller coordinate.
func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// SetX moves the rectangle horizontally without changing its size.
func (r *Rect) SetX(x float64) { r.X = x }

// SetY moves the rectangle vertically without changing its size.
func (r *Rect) SetY(y float64) { r.Y = y }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Center returns the geometric center.
func (r Rect) Center() Point {
	return Point{X: (r.Left() + r.Right()) / 2, Y: (r.Top() + r.Bottom()) / 2}
}

// Area returns W*H.
func (r Rect) Area() float64 { return r.W * r.H }

// String formats r as (x,y wxh).
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}
