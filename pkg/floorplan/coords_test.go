package floorplan

import (
	"maps"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/geom"
)

func TestSwapChildrenVertical(t *testing.T) {
	a := weighted(leaf("A", 0, 0, 10, 20), 1)
	b := weighted(leaf("B", 10, 0, 10, 20), 1)
	f := MustNew(a, b, Vertical)

	if err := f.SwapChildren(); err != nil {
		t.Fatalf("SwapChildren() error = %v", err)
	}

	if f.Left() != Node(b) || f.Right() != Node(a) {
		t.Fatal("children not exchanged")
	}
	if !f.Swapped() {
		t.Error("Swapped() = false after swap")
	}
	if b.Rect() != geom.NewRect(0, 0, 10, 20) {
		t.Errorf("B rect = %v, want (0,0 10x20)", b.Rect())
	}
	if a.Rect() != geom.NewRect(10, 0, 10, 20) {
		t.Errorf("A rect = %v, want (10,0 10x20)", a.Rect())
	}
	if c, _ := b.Centroid(); c != geom.NewPoint(5, 10) {
		t.Errorf("B centroid = %v, want (5,10)", c)
	}
	if c, _ := a.Centroid(); c != geom.NewPoint(15, 10) {
		t.Errorf("A centroid = %v, want (15,10)", c)
	}
	if f.Rect() != geom.NewRect(0, 0, 20, 20) {
		t.Errorf("parent rect changed: %v", f.Rect())
	}
}

func TestSwapChildrenHorizontal(t *testing.T) {
	a := weighted(leaf("A", 0, 0, 10, 5), 1)
	b := weighted(leaf("B", 0, 5, 10, 15), 1)
	f := MustNew(a, b, Horizontal)

	if err := f.SwapChildren(); err != nil {
		t.Fatalf("SwapChildren() error = %v", err)
	}

	if b.Rect() != geom.NewRect(0, 0, 10, 15) {
		t.Errorf("B rect = %v, want (0,0 10x15)", b.Rect())
	}
	if a.Rect() != geom.NewRect(0, 15, 10, 5) {
		t.Errorf("A rect = %v, want (0,15 10x5)", a.Rect())
	}
	if c, _ := b.Centroid(); c != geom.NewPoint(5, 7.5) {
		t.Errorf("B centroid = %v, want (5,7.5)", c)
	}
	if c, _ := a.Centroid(); c != geom.NewPoint(5, 17.5) {
		t.Errorf("A centroid = %v, want (5,17.5)", c)
	}
}

func TestSwapChildrenUnequalWidths(t *testing.T) {
	a := leaf("A", 2, 0, 4, 10)
	b := leaf("B", 6, 0, 9, 10)
	f := MustNew(a, b, Vertical)

	if err := f.SwapChildren(); err != nil {
		t.Fatalf("SwapChildren() error = %v", err)
	}
	if b.Rect().X != 2 || a.Rect().X != 11 {
		t.Errorf("x after swap: B=%v A=%v, want 2 and 11", b.Rect().X, a.Rect().X)
	}
	if a.HasCentroid() || b.HasCentroid() {
		t.Error("swap invented a centroid")
	}
}

func TestSwapChildrenMisaligned(t *testing.T) {
	tests := []struct {
		name string
		a, b *Leaf
		typ  SplitType
	}{
		{"vertical different y", leaf("A", 0, 0, 10, 20), leaf("B", 10, 5, 10, 20), Vertical},
		{"horizontal different x", leaf("A", 0, 0, 10, 20), leaf("B", 3, 20, 10, 20), Horizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := MustNew(tt.a, tt.b, tt.typ)
			before := snapshotOf(t, f)

			err := f.SwapChildren()
			if !errors.Is(err, errors.ErrCodeInvariant) {
				t.Fatalf("SwapChildren() error = %v, want %s", err, errors.ErrCodeInvariant)
			}
			if f.Left() != Node(tt.a) || f.Swapped() {
				t.Error("failed swap changed the children")
			}
			if !maps.Equal(before, snapshotOf(t, f)) {
				t.Error("failed swap moved coordinates")
			}
		})
	}
}

func TestSwapInvolution(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	root := randomTree(t, r, geom.NewRect(0, 0, 64, 48), 6, "n")
	before := snapshotOf(t, root)

	for _, f := range splits(t, root) {
		if err := f.SwapChildren(); err != nil {
			t.Fatalf("first SwapChildren() error = %v", err)
		}
		if err := f.SwapChildren(); err != nil {
			t.Fatalf("second SwapChildren() error = %v", err)
		}
		if f.Swapped() {
			t.Error("Swapped() = true after two swaps")
		}
	}

	after := snapshotOf(t, root)
	for path, want := range before {
		got := after[path]
		if got.rect != want.rect {
			t.Errorf("node %q rect = %v, want %v", path, got.rect, want.rect)
		}
		// Internal centroids come from Finalize and are not dyadic, so
		// adding and removing a width may cost an ulp.
		if !near(got.centroid, want.centroid) {
			t.Errorf("node %q centroid = %v, want %v", path, got.centroid, want.centroid)
		}
	}
}

func TestRecalculateTreeThreeLeaves(t *testing.T) {
	// Leaves start away from their final positions.
	l1 := leaf("L1", 100, 100, 10, 20)
	l2 := leaf("L2", -7, 3, 30, 20)
	l3 := leaf("L3", 55, 0, 40, 15)
	inner := MustNew(l1, l2, Vertical)
	root := MustNew(inner, l3, Horizontal)

	if root.Rect() != geom.NewRect(100, 100, 40, 35) {
		t.Fatalf("root rect = %v", root.Rect())
	}

	root.SetOrigin(0, 0)
	if err := root.RecalculateTree(); err != nil {
		t.Fatalf("RecalculateTree() error = %v", err)
	}

	tests := []struct {
		name string
		node Node
		want geom.Rect
	}{
		{"inner", inner, geom.NewRect(0, 0, 40, 20)},
		{"L1", l1, geom.NewRect(0, 0, 10, 20)},
		{"L2", l2, geom.NewRect(10, 0, 30, 20)},
		{"L3", l3, geom.NewRect(0, 20, 40, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Rect(); got != tt.want {
				t.Errorf("Rect() = %v, want %v", got, tt.want)
			}
		})
	}

	if err := Validate(root); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestRecalculateTreeMovesCentroids(t *testing.T) {
	a := weighted(leaf("A", 0, 0, 10, 20), 1)
	b := weighted(leaf("B", 10, 0, 10, 20), 1)
	root := MustNew(a, b, Vertical)

	root.SetOrigin(5, 5)
	if err := root.RecalculateTree(); err != nil {
		t.Fatalf("RecalculateTree() error = %v", err)
	}
	leafCentroidsCentered(t, root)
}

func TestMergedRectMatchesRecalculation(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for i := range 20 {
		root := randomTree(t, r, geom.NewRect(float64(i), 0, 40, 40), 5, "n")
		if err := MoveTo(root, geom.NewPoint(-3, 11)); err != nil {
			t.Fatalf("MoveTo() error = %v", err)
		}
		for _, f := range splits(t, root) {
			got, err := f.MergedRect()
			if err != nil {
				t.Fatalf("MergedRect() error = %v", err)
			}
			if got != f.Rect() {
				t.Errorf("tree %d: MergedRect() = %v, recalculated rect %v", i, got, f.Rect())
			}
		}
	}
}

func TestRecalculateIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	root := randomTree(t, r, geom.NewRect(0, 0, 50, 30), 6, "n").(*Floorplan)
	root.SetOrigin(13, -2)

	if err := root.RecalculateTree(); err != nil {
		t.Fatalf("RecalculateTree() error = %v", err)
	}
	first := snapshotOf(t, root)
	if err := root.RecalculateTree(); err != nil {
		t.Fatalf("RecalculateTree() error = %v", err)
	}
	if !maps.Equal(first, snapshotOf(t, root)) {
		t.Error("second RecalculateTree() changed coordinates")
	}

	if err := root.RecalculateChildrenCoords(); err != nil {
		t.Fatalf("RecalculateChildrenCoords() error = %v", err)
	}
	if !maps.Equal(first, snapshotOf(t, root)) {
		t.Error("RecalculateChildrenCoords() on a consistent tree changed coordinates")
	}
}

func TestRecalculateChildrenCoordsIsShallow(t *testing.T) {
	l1 := weighted(leaf("L1", 0, 0, 10, 20), 1)
	l2 := weighted(leaf("L2", 10, 0, 30, 20), 1)
	l3 := weighted(leaf("L3", 0, 20, 40, 15), 1)
	inner := MustNew(l1, l2, Vertical)
	root := MustNew(inner, l3, Horizontal)

	root.SetOrigin(0, 100)
	if err := root.RecalculateChildrenCoords(); err != nil {
		t.Fatalf("RecalculateChildrenCoords() error = %v", err)
	}

	if inner.Rect().Origin() != geom.NewPoint(0, 100) {
		t.Errorf("inner origin = %v, want (0,100)", inner.Rect().Origin())
	}
	if l3.Rect().Origin() != geom.NewPoint(0, 120) {
		t.Errorf("L3 origin = %v, want (0,120)", l3.Rect().Origin())
	}
	if c, _ := l3.Centroid(); c != geom.NewPoint(20, 127.5) {
		t.Errorf("L3 centroid = %v, want offset kept at (20,127.5)", c)
	}
	if l1.Rect().Origin() != geom.NewPoint(0, 0) {
		t.Errorf("grandchild moved: %v", l1.Rect().Origin())
	}

	if err := inner.RecalculateChildrenCoords(); err != nil {
		t.Fatalf("RecalculateChildrenCoords() error = %v", err)
	}
	if err := Validate(root); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	leafCentroidsCentered(t, root)
}

func TestSwapWithLeafChildrenNeedsNoRepair(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 5))
	root := randomTree(t, r, geom.NewRect(0, 0, 60, 60), 5, "n")

	for _, f := range splits(t, root) {
		if f.Left().Kind() != KindLeaf || f.Right().Kind() != KindLeaf {
			continue
		}
		if err := f.SwapChildren(); err != nil {
			t.Fatalf("SwapChildren() error = %v", err)
		}
		if err := Validate(root); err != nil {
			t.Fatalf("Validate() after leaf-pair swap error = %v", err)
		}
	}
	leafCentroidsCentered(t, root)
}

// repairBelow restores coordinates under f after a swap, one level at a time.
func repairBelow(t *testing.T, f *Floorplan) {
	t.Helper()
	for _, child := range []Node{f.Left(), f.Right()} {
		if s, ok := AsSplit(child); ok {
			if err := s.RecalculateChildrenCoords(); err != nil {
				t.Fatalf("RecalculateChildrenCoords() error = %v", err)
			}
			repairBelow(t, s)
		}
	}
}

func TestIncrementalRepairMatchesRecalculation(t *testing.T) {
	r := rand.New(rand.NewPCG(2024, 10))
	root := randomTree(t, r, geom.NewRect(0, 0, 96, 64), 7, "n").(*Floorplan)
	nodes := splits(t, root)

	for move := range 300 {
		f := nodes[r.IntN(len(nodes))]
		if err := f.SwapChildren(); err != nil {
			t.Fatalf("move %d: SwapChildren() error = %v", move, err)
		}

		if move%2 == 0 {
			repairBelow(t, f)
		} else if err := root.RecalculateTree(); err != nil {
			t.Fatalf("move %d: RecalculateTree() error = %v", move, err)
		}

		if err := Validate(root); err != nil {
			t.Fatalf("move %d: Validate() error = %v", move, err)
		}
	}
	leafCentroidsCentered(t, root)

	want, err := Clone(root)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if err := want.(*Floorplan).RecalculateTree(); err != nil {
		t.Fatalf("RecalculateTree() error = %v", err)
	}
	if !maps.Equal(snapshotOf(t, want), snapshotOf(t, root)) {
		t.Error("incremental coordinates differ from full recalculation")
	}
}

func TestRecalculateUnknownKind(t *testing.T) {
	r := &rogue{Base: NewBase(geom.NewRect(10, 0, 10, 20), geom.Undefined(), 0)}
	f := MustNew(leaf("A", 0, 0, 10, 20), r, Vertical)
	f.SetOrigin(1, 1)

	if err := f.RecalculateTree(); !errors.Is(err, errors.ErrCodeUnknownNodeKind) {
		t.Errorf("RecalculateTree() error = %v, want %s", err, errors.ErrCodeUnknownNodeKind)
	}

	g := MustNew(leaf("B", 0, 0, 10, 20), &rogue{Base: NewBase(geom.NewRect(10, 0, 10, 20), geom.Undefined(), 0)}, Vertical)
	g.SetOrigin(1, 1)
	if err := g.RecalculateChildrenCoords(); !errors.Is(err, errors.ErrCodeUnknownNodeKind) {
		t.Errorf("RecalculateChildrenCoords() error = %v, want %s", err, errors.ErrCodeUnknownNodeKind)
	}
	if g.Left().Rect().X != 0 {
		t.Error("RecalculateChildrenCoords() moved children before failing")
	}
}

func TestMoveTo(t *testing.T) {
	l1 := weighted(leaf("L1", 0, 0, 10, 20), 1)
	l2 := weighted(leaf("L2", 10, 0, 30, 20), 1)
	l3 := weighted(leaf("L3", 0, 20, 40, 15), 1)
	root := MustNew(MustNew(l1, l2, Vertical), l3, Horizontal)

	if err := MoveTo(root, geom.NewPoint(100, 50)); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	if l3.Rect().Origin() != geom.NewPoint(100, 70) {
		t.Errorf("L3 origin = %v, want (100,70)", l3.Rect().Origin())
	}
	leafCentroidsCentered(t, root)

	single := weighted(leaf("S", 0, 0, 2, 2), 1)
	if err := MoveTo(single, geom.NewPoint(4, 4)); err != nil {
		t.Fatalf("MoveTo(leaf) error = %v", err)
	}
	if c, _ := single.Centroid(); c != geom.NewPoint(5, 5) {
		t.Errorf("leaf centroid = %v, want (5,5)", c)
	}

	if err := MoveTo(nil, geom.NewPoint(0, 0)); !errors.Is(err, errors.ErrCodeUnknownNodeKind) {
		t.Errorf("MoveTo(nil) error = %v", err)
	}
}
