package floorplan

import (
	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/geom"
)

// SwapChildren exchanges f's children and repairs their origins and
// centroids in O(1).
//
// Only the swapped pair is moved. Descendants of the children keep their
// absolute coordinates and must be brought along by
// [Floorplan.RecalculateChildrenCoords] on the affected child or by
// [Floorplan.RecalculateTree].
//
// The children must be aligned on the split axis (same Y for [Vertical],
// same X for [Horizontal]); otherwise nothing is changed and an
// INVARIANT_VIOLATION is returned.
func (f *Floorplan) SwapChildren() error {
	l, r := f.left.Rect(), f.right.Rect()
	switch f.typ {
	case Vertical:
		if l.Y != r.Y {
			return errors.New(errors.ErrCodeInvariant, "vertical split children not aligned: y %g != %g", l.Y, r.Y)
		}
	case Horizontal:
		if l.X != r.X {
			return errors.New(errors.ErrCodeInvariant, "horizontal split children not aligned: x %g != %g", l.X, r.X)
		}
	}

	f.left, f.right = f.right, f.left
	f.swapped = !f.swapped
	f.swapCoordinates()
	return nil
}

// swapCoordinates repairs the pair after the slots were exchanged. The new
// left child takes the pair's anchor, formerly held by the new right child,
// and the new right child follows it. Centroids move by the width (or
// height) of the child they jumped over.
func (f *Floorplan) swapCoordinates() {
	lb, rb := f.left.base(), f.right.base()

	if f.typ == Vertical {
		anchor := rb.rect.X
		lb.rect.SetX(anchor)
		rb.rect.SetX(anchor + lb.rect.Width())
		shiftCentroid(lb, -rb.rect.Width(), 0)
		shiftCentroid(rb, lb.rect.Width(), 0)
		return
	}

	anchor := rb.rect.Y
	lb.rect.SetY(anchor)
	rb.rect.SetY(anchor + lb.rect.Height())
	shiftCentroid(lb, 0, -rb.rect.Height())
	shiftCentroid(rb, 0, lb.rect.Height())
}

func shiftCentroid(b *Base, dx, dy float64) {
	if !b.hasCentroid {
		return
	}
	b.centroid.ShiftX(dx)
	b.centroid.ShiftY(dy)
}

// RecalculateTree recomputes the absolute origin of every node below f,
// taking f's own origin as correct. The left child is anchored at f's
// origin and the right child is offset by the left child's width
// ([Vertical]) or height ([Horizontal]). Computed centroids move with their
// rectangles. Cost is O(subtree).
func (f *Floorplan) RecalculateTree() error {
	return recalculate(f)
}

func recalculate(n Node) error {
	switch n := n.(type) {
	case *Leaf:
		return nil
	case *Floorplan:
		if n.left == nil || n.right == nil {
			return errors.New(errors.ErrCodeInvalidNode, "floorplan at %v has been dissolved", n.rect)
		}
		n.placeChildren()
		if err := recalculate(n.left); err != nil {
			return err
		}
		return recalculate(n.right)
	}
	return unknownKind(n)
}

// RecalculateChildrenCoords re-derives the origins of f's two children from
// f's origin without descending further. Each child's centroid keeps its
// offset relative to the child's origin. Use it on a node whose own origin
// was just corrected, for example a child of a swapped node, when the
// layout inside its children is still valid.
func (f *Floorplan) RecalculateChildrenCoords() error {
	if f.left == nil || f.right == nil {
		return errors.New(errors.ErrCodeInvalidNode, "floorplan at %v has been dissolved", f.rect)
	}
	if err := checkKind(f.left); err != nil {
		return err
	}
	if err := checkKind(f.right); err != nil {
		return err
	}
	f.placeChildren()
	return nil
}

func (f *Floorplan) placeChildren() {
	x, y := f.rect.X, f.rect.Y
	relocate(f.left, x, y)
	lr := f.left.Rect()
	if f.typ == Vertical {
		relocate(f.right, x+lr.Width(), y)
	} else {
		relocate(f.right, x, y+lr.Height())
	}
}

func checkKind(n Node) error {
	switch n.(type) {
	case *Leaf, *Floorplan:
		return nil
	}
	return unknownKind(n)
}

func unknownKind(n Node) error {
	if n == nil {
		return errors.New(errors.ErrCodeUnknownNodeKind, "nil node in floorplan tree")
	}
	return errors.New(errors.ErrCodeUnknownNodeKind, "unrecognized node %T (kind %s)", n, n.Kind())
}

// MoveTo places the whole tree under root with its origin at p. The
// relative layout is recomputed from the new origin, so root does not need
// to be consistent beforehand.
func MoveTo(root Node, p geom.Point) error {
	if err := checkKind(root); err != nil {
		return err
	}
	relocate(root, p.X, p.Y)
	if f, ok := AsSplit(root); ok {
		return f.RecalculateTree()
	}
	return nil
}
