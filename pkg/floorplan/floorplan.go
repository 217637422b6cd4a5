package floorplan

import (
	"strings"

	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/geom"
)

// SplitType is the orientation of an internal node.
type SplitType int

const (
	// Horizontal stacks the right child below the left one.
	Horizontal SplitType = iota
	// Vertical places the right child to the right of the left one.
	Vertical
)

// String returns "H" or "V".
func (t SplitType) String() string {
	switch t {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	default:
		return "?"
	}
}

// ParseSplitType accepts "H", "V", "horizontal" and "vertical" in any case.
func ParseSplitType(s string) (SplitType, error) {
	switch strings.ToLower(s) {
	case "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown split type %q (want H or V)", s)
}

// Floorplan is an internal node: two exclusively owned subtrees abutted
// according to a [SplitType].
type Floorplan struct {
	Base
	left, right Node
	typ         SplitType
	swapped     bool
}

// New pairs left and right into an internal node of type t.
//
// The children must agree on the orthogonal dimension (width for
// [Horizontal], height for [Vertical]) and must not already belong to
// another node. The merged rectangle is anchored at the left child's origin.
// Weight and centroid stay unset until [Floorplan.Finalize].
func New(left, right Node, t SplitType) (*Floorplan, error) {
	if left == nil || right == nil {
		return nil, errors.New(errors.ErrCodeInvalidNode, "floorplan children must not be nil")
	}
	if t != Horizontal && t != Vertical {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid split type %d", int(t))
	}
	if left == right {
		return nil, errors.New(errors.ErrCodeSharedNode, "node cannot be paired with itself")
	}
	if left.base().owned || right.base().owned {
		return nil, errors.New(errors.ErrCodeSharedNode, "child already belongs to another floorplan")
	}

	r, err := mergeRects(left.Rect(), right.Rect(), t)
	if err != nil {
		return nil, err
	}

	left.base().owned = true
	right.base().owned = true
	return &Floorplan{
		Base:  NewBase(r, geom.Undefined(), 0),
		left:  left,
		right: right,
		typ:   t,
	}, nil
}

// MustNew is like [New] but panics on error.
func MustNew(left, right Node, t SplitType) *Floorplan {
	f, err := New(left, right, t)
	if err != nil {
		panic(err)
	}
	return f
}

// Kind implements [Node].
func (f *Floorplan) Kind() Kind { return KindSplit }

// Left returns the first child: the upper one of a [Horizontal] split, the
// one on the left of a [Vertical] split.
func (f *Floorplan) Left() Node { return f.left }

// Right returns the second child, placed after Left along the split axis.
func (f *Floorplan) Right() Node { return f.right }

// Type returns the split orientation.
func (f *Floorplan) Type() SplitType { return f.typ }

// Swapped reports whether the children are in the opposite order from
// construction. It is bookkeeping only.
func (f *Floorplan) Swapped() bool { return f.swapped }

// MergedRect recomputes the combined rectangle from the current children.
// It does not modify f.
func (f *Floorplan) MergedRect() (geom.Rect, error) {
	return mergeRects(f.left.Rect(), f.right.Rect(), f.typ)
}

// Fit stores [Floorplan.MergedRect] as f's rectangle, for use after the
// children were edited independently.
func (f *Floorplan) Fit() error {
	r, err := f.MergedRect()
	if err != nil {
		return err
	}
	f.rect = r
	return nil
}

// Dissolve detaches both children and returns them. They may then be paired
// again with [New]. f must not be used afterwards.
func (f *Floorplan) Dissolve() (left, right Node) {
	left, right = f.left, f.right
	left.base().owned = false
	right.base().owned = false
	f.left, f.right = nil, nil
	return left, right
}

func mergeRects(l, r geom.Rect, t SplitType) (geom.Rect, error) {
	if t == Horizontal {
		if l.Width() != r.Width() {
			return geom.Rect{}, errors.New(errors.ErrCodeDimensionMismatch,
				"horizontal split needs equal widths: %g != %g", l.Width(), r.Width())
		}
		return geom.NewRect(l.X, l.Y, l.Width(), l.Height()+r.Height()), nil
	}
	if l.Height() != r.Height() {
		return geom.Rect{}, errors.New(errors.ErrCodeDimensionMismatch,
			"vertical split needs equal heights: %g != %g", l.Height(), r.Height())
	}
	return geom.NewRect(l.X, l.Y, l.Width()+r.Width(), l.Height()), nil
}
