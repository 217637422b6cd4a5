package floorplan

import (
	"math"

	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/geom"
)

// Kind distinguishes leaves from internal nodes.
type Kind int

const (
	// KindLeaf is a node wrapping a single module.
	KindLeaf Kind = iota + 1
	// KindSplit is an internal node combining two subtrees.
	KindSplit
)

// String returns the kind name used in logs and diagrams.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Node is a vertex of a floorplan tree. The set of implementations is closed:
// only [*Leaf] and [*Floorplan] satisfy it.
type Node interface {
	Kind() Kind

	Rect() geom.Rect
	SetRect(r geom.Rect)
	SetOrigin(x, y float64)
	Weight() float64
	SetWeight(w float64)
	Centroid() (geom.Point, error)
	SetCentroid(p geom.Point)
	ClearCentroid()
	HasCentroid() bool
	VertDistance(p geom.Point) float64
	HorizDistance(p geom.Point) float64

	base() *Base
}

// Base holds the attributes shared by every node: the bounding rectangle of
// the subtree, its mass and its centroid. The zero value has an empty
// rectangle, weight 0 and a pending centroid.
type Base struct {
	rect        geom.Rect
	weight      float64
	centroid    geom.Point
	hasCentroid bool
	owned       bool
}

// NewBase returns a Base with the given attributes. Pass [geom.Undefined] as
// the centroid to leave it pending; weight 0 is the neutral default.
func NewBase(r geom.Rect, centroid geom.Point, weight float64) Base {
	b := Base{rect: r, weight: weight}
	b.SetCentroid(centroid)
	return b
}

func (b *Base) base() *Base { return b }

// Rect returns the bounding rectangle in absolute coordinates.
func (b *Base) Rect() geom.Rect { return b.rect }

// SetRect replaces the bounding rectangle. The centroid is not moved.
func (b *Base) SetRect(r geom.Rect) { b.rect = r }

// SetOrigin moves the rectangle to (x, y) without resizing it.
func (b *Base) SetOrigin(x, y float64) {
	b.rect.SetX(x)
	b.rect.SetY(y)
}

// Weight returns the mass used to weight centroid merges.
func (b *Base) Weight() float64 { return b.weight }

// SetWeight sets the mass.
func (b *Base) SetWeight(w float64) { b.weight = w }

// Centroid returns the center of gravity. It fails with CENTROID_PENDING
// when the centroid has not been computed or assigned yet.
func (b *Base) Centroid() (geom.Point, error) {
	if !b.hasCentroid {
		return geom.Undefined(), errors.New(errors.ErrCodeCentroidPending, "centroid of node at %v not computed", b.rect)
	}
	return b.centroid, nil
}

// SetCentroid assigns the center of gravity. Assigning [geom.Undefined]
// is the same as [Base.ClearCentroid].
func (b *Base) SetCentroid(p geom.Point) {
	if p.IsUndefined() {
		b.ClearCentroid()
		return
	}
	b.centroid = p
	b.hasCentroid = true
}

// ClearCentroid puts the centroid back into the pending state.
func (b *Base) ClearCentroid() {
	b.centroid = geom.Undefined()
	b.hasCentroid = false
}

// HasCentroid reports whether the centroid has been computed or assigned.
func (b *Base) HasCentroid() bool { return b.hasCentroid }

// VertDistance returns the vertical distance from p to the node's centroid,
// or to the center of its rectangle while the centroid is pending.
func (b *Base) VertDistance(p geom.Point) float64 {
	if !b.hasCentroid {
		return math.Abs(b.rect.Center().Y - p.Y)
	}
	return math.Abs(b.centroid.Y - p.Y)
}

// HorizDistance is the horizontal counterpart of [Base.VertDistance].
func (b *Base) HorizDistance(p geom.Point) float64 {
	if !b.hasCentroid {
		return math.Abs(b.rect.Center().X - p.X)
	}
	return math.Abs(b.centroid.X - p.X)
}

// relocate moves n's origin to (x, y). A computed centroid keeps its offset
// relative to the origin. Nothing is touched when the origin is unchanged,
// so repeated placement is exact.
func relocate(n Node, x, y float64) {
	b := n.base()
	if b.rect.X == x && b.rect.Y == y {
		return
	}
	var off geom.Point
	if b.hasCentroid {
		off = geom.NewPoint(b.centroid.X-b.rect.X, b.centroid.Y-b.rect.Y)
	}
	b.rect.SetX(x)
	b.rect.SetY(y)
	if b.hasCentroid {
		b.centroid = geom.NewPoint(x+off.X, y+off.Y)
	}
}

// AsLeaf returns n as a leaf if it is one.
func AsLeaf(n Node) (*Leaf, bool) {
	if n == nil || n.Kind() != KindLeaf {
		return nil, false
	}
	l, ok := n.(*Leaf)
	return l, ok
}

// AsSplit returns n as an internal node if it is one.
func AsSplit(n Node) (*Floorplan, bool) {
	if n == nil || n.Kind() != KindSplit {
		return nil, false
	}
	f, ok := n.(*Floorplan)
	return f, ok
}
