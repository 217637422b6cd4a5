package floorplan

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/slicetree/pkg/geom"
)

func leaf(name string, x, y, w, h float64) *Leaf {
	return NewLeaf(&Block{ID: name, Bounds: geom.NewRect(x, y, w, h)})
}

// weighted gives l a weight and puts its centroid at the rectangle center.
func weighted(l *Leaf, w float64) *Leaf {
	l.SetWeight(w)
	l.SetCentroid(l.Rect().Center())
	return l
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// rogue is a node of a kind the tree does not know about.
type rogue struct {
	Base
}

func (r *rogue) Kind() Kind { return Kind(99) }

// randomTree slices rect recursively into at most depth levels. All sizes are
// integers so every coordinate is exact in float64. Leaves are weighted by
// area with their centroid at the center.
func randomTree(t *testing.T, r *rand.Rand, rect geom.Rect, depth int, name string) Node {
	t.Helper()
	canV := rect.Width() >= 2
	canH := rect.Height() >= 2
	if depth == 0 || (!canV && !canH) {
		return weighted(leaf(name, rect.X, rect.Y, rect.W, rect.H), rect.Area())
	}

	typ := Vertical
	if !canV || (canH && r.IntN(2) == 0) {
		typ = Horizontal
	}

	var a, b geom.Rect
	if typ == Vertical {
		cut := float64(1 + r.IntN(int(rect.Width())-1))
		a = geom.NewRect(rect.X, rect.Y, cut, rect.H)
		b = geom.NewRect(rect.X+cut, rect.Y, rect.W-cut, rect.H)
	} else {
		cut := float64(1 + r.IntN(int(rect.Height())-1))
		a = geom.NewRect(rect.X, rect.Y, rect.W, cut)
		b = geom.NewRect(rect.X, rect.Y+cut, rect.W, rect.H-cut)
	}

	left := randomTree(t, r, a, depth-1, name+"L")
	right := randomTree(t, r, b, depth-1, name+"R")
	f, err := New(left, right, typ)
	if err != nil {
		t.Fatalf("New(%s) error = %v", name, err)
	}
	if err := f.Finalize(); err != nil {
		t.Fatalf("Finalize(%s) error = %v", name, err)
	}
	return f
}

func splits(t *testing.T, root Node) []*Floorplan {
	t.Helper()
	var out []*Floorplan
	if err := Walk(root, func(n Node, _ string) error {
		if f, ok := AsSplit(n); ok {
			out = append(out, f)
		}
		return nil
	}); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return out
}

type snapshot struct {
	rect     geom.Rect
	centroid geom.Point
}

func snapshotOf(t *testing.T, root Node) map[string]snapshot {
	t.Helper()
	out := make(map[string]snapshot)
	if err := Walk(root, func(n Node, path string) error {
		s := snapshot{rect: n.Rect(), centroid: geom.Undefined()}
		if n.HasCentroid() {
			s.centroid, _ = n.Centroid()
		}
		out[path] = s
		return nil
	}); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return out
}

// leafCentroidsCentered reports the first leaf whose centroid left the
// center of its rectangle.
func leafCentroidsCentered(t *testing.T, root Node) {
	t.Helper()
	leaves, err := Leaves(root)
	if err != nil {
		t.Fatalf("Leaves() error = %v", err)
	}
	for _, l := range leaves {
		c, err := l.Centroid()
		if err != nil {
			t.Fatalf("leaf %s: Centroid() error = %v", l.Name(), err)
		}
		if want := l.Rect().Center(); c != want {
			t.Errorf("leaf %s centroid = %v, want %v (rect %v)", l.Name(), c, want, l.Rect())
		}
	}
}
