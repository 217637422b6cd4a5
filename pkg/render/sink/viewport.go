package sink

import (
	"math"

	"github.com/matzehuels/slicetree/pkg/geom"
)

// Viewport maps floorplan coordinates onto the drawing: screen = p*Scale + Shift.
type Viewport struct {
	Scale  float64
	ShiftX float64
	ShiftY float64
}

// ToScreen maps a floorplan point onto the drawing.
func (v Viewport) ToScreen(p geom.Point) geom.Point {
	return geom.NewPoint(p.X*v.Scale+v.ShiftX, p.Y*v.Scale+v.ShiftY)
}

// FromScreen maps a drawing point back into floorplan coordinates.
func (v Viewport) FromScreen(p geom.Point) geom.Point {
	return geom.NewPoint((p.X-v.ShiftX)/v.Scale, (p.Y-v.ShiftY)/v.Scale)
}

func (v Viewport) rect(r geom.Rect) geom.Rect {
	o := v.ToScreen(r.Origin())
	return geom.NewRect(o.X, o.Y, r.W*v.Scale, r.H*v.Scale)
}

// Fit returns the viewport that centers bounds in a width x height canvas,
// keeping margin free on every side and preserving the aspect ratio.
func Fit(bounds geom.Rect, width, height, margin float64) Viewport {
	availW := math.Max(width-2*margin, 1)
	availH := math.Max(height-2*margin, 1)

	scale := 1.0
	if bounds.W > 0 && bounds.H > 0 {
		scale = math.Min(availW/bounds.W, availH/bounds.H)
	}
	return Viewport{
		Scale:  scale,
		ShiftX: (width-bounds.W*scale)/2 - bounds.X*scale,
		ShiftY: (height-bounds.H*scale)/2 - bounds.Y*scale,
	}
}
