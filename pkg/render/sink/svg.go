package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/floorplan"
	"github.com/matzehuels/slicetree/pkg/geom"
)

// Margin is the blank border around a scaled drawing.
const Margin = 10.0

// palette is indexed by leaf depth.
var palette = []string{
	"#f4a6a6", "#a6d8f4", "#b8f4a6", "#f4e3a6",
	"#d6a6f4", "#a6f4e3", "#f4c6a6", "#c9c9c9",
}

const (
	fontSizeMin = 6.0
	fontSizeMax = 24.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale     float64
	canvasW   float64
	canvasH   float64
	selected  map[string]bool
	target    geom.Point
	centroids bool
}

// WithScale sets the number of pixels per plan unit. The default is 1.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithCentroids marks every computed centroid.
func WithCentroids() SVGOption { return func(r *svgRenderer) { r.centroids = true } }

// WithTarget draws a cross at p, in plan coordinates.
func WithTarget(p geom.Point) SVGOption {
	return func(r *svgRenderer) { r.target = p }
}

// WithCanvas fits the drawing into a width x height canvas; it overrides
// WithScale.
func WithCanvas(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.canvasW, r.canvasH = width, height }
}

// WithSelected highlights the leaves with the given names.
func WithSelected(names ...string) SVGOption {
	return func(r *svgRenderer) {
		for _, n := range names {
			r.selected[n] = true
		}
	}
}

// RenderSVG draws the floorplan under root.
func RenderSVG(root floorplan.Node, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{scale: 1, selected: map[string]bool{}, target: geom.Undefined()}
	for _, opt := range opts {
		opt(&r)
	}
	canvas := r.canvasW != 0 || r.canvasH != 0
	if r.scale <= 0 || canvas && (r.canvasW <= 0 || r.canvasH <= 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "drawing size must be positive")
	}
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidNode, "nothing to draw")
	}

	vp, w, h := r.viewport(root.Rect())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")

	var cuts, marks bytes.Buffer
	err := floorplan.Walk(root, func(n floorplan.Node, path string) error {
		switch n := n.(type) {
		case *floorplan.Leaf:
			r.renderLeaf(&buf, vp, n, len(path))
		case *floorplan.Floorplan:
			renderCut(&cuts, vp, n)
		}
		if r.centroids {
			renderCentroid(&marks, vp, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	buf.Write(cuts.Bytes())
	buf.Write(marks.Bytes())
	if !r.target.IsUndefined() {
		renderTarget(&buf, vp, r.target)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func (r *svgRenderer) viewport(bounds geom.Rect) (vp Viewport, w, h float64) {
	if r.canvasW > 0 {
		return Fit(bounds, r.canvasW, r.canvasH, Margin), r.canvasW, r.canvasH
	}
	vp = Viewport{
		Scale:  r.scale,
		ShiftX: Margin - bounds.X*r.scale,
		ShiftY: Margin - bounds.Y*r.scale,
	}
	return vp, bounds.W*r.scale + 2*Margin, bounds.H*r.scale + 2*Margin
}

func (r *svgRenderer) renderLeaf(buf *bytes.Buffer, vp Viewport, l *floorplan.Leaf, depth int) {
	name := l.Name()
	s := vp.rect(l.Rect())

	class, stroke, width := "leaf", "#333333", 1.0
	if r.selected[name] {
		class, stroke, width = "leaf selected", "#d62728", 3.0
	}
	fmt.Fprintf(buf, `  <rect id="leaf-%s" class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		escapeXML(name), class, s.X, s.Y, s.W, s.H, palette[depth%len(palette)], stroke, width)

	if name == "" {
		return
	}
	c := s.Center()
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		c.X, c.Y, fontSize(s, len(name)), escapeXML(name))
}

// renderCut draws the line separating the two children of f.
func renderCut(buf *bytes.Buffer, vp Viewport, f *floorplan.Floorplan) {
	s := vp.rect(f.Rect())
	lr := vp.rect(f.Left().Rect())

	x1, y1, x2, y2 := lr.Right(), s.Top(), lr.Right(), s.Bottom()
	if f.Type() == floorplan.Horizontal {
		x1, y1, x2, y2 = s.Left(), lr.Bottom(), s.Right(), lr.Bottom()
	}
	fmt.Fprintf(buf, `  <line class="cut" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#000000" stroke-width="2"/>`+"\n",
		x1, y1, x2, y2)
}

func renderCentroid(buf *bytes.Buffer, vp Viewport, n floorplan.Node) {
	p, err := n.Centroid()
	if err != nil {
		return
	}
	s := vp.ToScreen(p)
	fill, r := "#1f77b4", 3.0
	if n.Kind() == floorplan.KindSplit {
		fill, r = "#ff7f0e", 2.0
	}
	fmt.Fprintf(buf, `  <circle class="centroid" cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`+"\n", s.X, s.Y, r, fill)
}

func renderTarget(buf *bytes.Buffer, vp Viewport, p geom.Point) {
	const arm = 6.0
	s := vp.ToScreen(p)
	fmt.Fprintf(buf, `  <g class="target" stroke="#d62728" stroke-width="2">`+
		`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+
		`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/></g>`+"\n",
		s.X-arm, s.Y, s.X+arm, s.Y, s.X, s.Y-arm, s.X, s.Y+arm)
}

func fontSize(r geom.Rect, textLen int) float64 {
	n := max(1, textLen)
	byHeight := r.H * 0.5
	byWidth := r.W * 0.85 / (float64(n) * 0.55)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
