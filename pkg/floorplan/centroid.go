package floorplan

import (
	"math"

	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/geom"
)

// MergedCentroid computes the center of gravity of f from its children.
//
// With p1, p2 the children's centroids and w1, w2 their weights, the result
// lies on the segment p1–p2 at distance length·w1/(w1+w2) from p2, so the
// heavier child pulls it closer and equal weights give the midpoint.
//
// Both centroids must be set, weights must be finite and non-negative with a
// positive sum, and p1 must differ from p2; otherwise the interpolation is
// undefined and an invariant error is returned.
func (f *Floorplan) MergedCentroid() (geom.Point, error) {
	p1, err := f.left.Centroid()
	if err != nil {
		return geom.Undefined(), errors.Wrap(errors.ErrCodeCentroidPending, err, "left child")
	}
	p2, err := f.right.Centroid()
	if err != nil {
		return geom.Undefined(), errors.Wrap(errors.ErrCodeCentroidPending, err, "right child")
	}

	w1, w2 := f.left.Weight(), f.right.Weight()
	if !validWeight(w1) || !validWeight(w2) {
		return geom.Undefined(), errors.New(errors.ErrCodeInvalidWeight, "weights must be finite and non-negative: %g, %g", w1, w2)
	}
	total := w1 + w2
	if total == 0 {
		return geom.Undefined(), errors.New(errors.ErrCodeZeroWeight, "both children have weight 0; assign weights before merging")
	}

	length := p1.Distance(p2)
	if length == 0 {
		return geom.Undefined(), errors.New(errors.ErrCodeDegenerateCentroid, "children share centroid %v", p1)
	}

	d := length * w1 / total
	return geom.NewPoint(
		p2.X+d*(p1.X-p2.X)/length,
		p2.Y+d*(p1.Y-p2.Y)/length,
	), nil
}

// Finalize stores the merged weight and centroid on f. The children must
// already have theirs; see the package-level [Finalize] for a whole tree.
func (f *Floorplan) Finalize() error {
	c, err := f.MergedCentroid()
	if err != nil {
		return err
	}
	f.weight = f.left.Weight() + f.right.Weight()
	f.SetCentroid(c)
	return nil
}

// Finalize computes weights and centroids bottom-up for every internal node
// under root. Every leaf must have a centroid and a weight assigned.
func Finalize(root Node) error {
	switch n := root.(type) {
	case *Leaf:
		if _, err := n.Centroid(); err != nil {
			return errors.Wrap(errors.ErrCodeCentroidPending, err, "leaf %q", n.Name())
		}
		return nil
	case *Floorplan:
		if err := Finalize(n.left); err != nil {
			return err
		}
		if err := Finalize(n.right); err != nil {
			return err
		}
		return n.Finalize()
	}
	return unknownKind(root)
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1)
}

// Refinalize merges the centroid and weight again at the node at path and
// at each of its ancestors, bottom-up. A swap moves the children of the
// swapped node but not its stored centroid, so every centroid from there to
// the root must follow. Nodes whose centroid is still pending are skipped.
func Refinalize(root Node, path string) error {
	if _, err := Find(root, path); err != nil {
		return err
	}
	for i := len(path); i >= 0; i-- {
		n, err := Find(root, path[:i])
		if err != nil {
			return err
		}
		f, ok := AsSplit(n)
		if !ok || !f.hasCentroid {
			continue
		}
		if err := f.Finalize(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "node %q", displayPath(path[:i]))
		}
	}
	return nil
}

// centroidTolerance absorbs the rounding picked up when stored centroids
// are shifted along with their rectangles instead of merged again.
const centroidTolerance = 1e-9

// ValidateCentroids checks every internal node that has a centroid: its
// weight must be the sum of its children's and its centroid must match
// [Floorplan.MergedCentroid] up to rounding. The first discrepancy is
// reported as an INVARIANT_VIOLATION naming the node path.
func ValidateCentroids(root Node) error {
	return Walk(root, func(n Node, path string) error {
		f, ok := AsSplit(n)
		if !ok || !f.hasCentroid {
			return nil
		}
		if w := f.left.Weight() + f.right.Weight(); w != f.weight {
			return errors.New(errors.ErrCodeInvariant, "node %q: weight %g, children sum to %g", displayPath(path), f.weight, w)
		}
		want, err := f.MergedCentroid()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvariant, err, "node %q", displayPath(path))
		}
		if !closeTo(f.centroid, want) {
			return errors.New(errors.ErrCodeInvariant, "node %q: centroid %v, children merge to %v", displayPath(path), f.centroid, want)
		}
		return nil
	})
}

func closeTo(a, b geom.Point) bool {
	scale := math.Max(1, math.Max(math.Abs(b.X), math.Abs(b.Y)))
	return math.Abs(a.X-b.X) <= centroidTolerance*scale && math.Abs(a.Y-b.Y) <= centroidTolerance*scale
}
