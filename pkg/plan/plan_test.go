package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/floorplan"
	"github.com/matzehuels/slicetree/pkg/geom"
)

const threeModules = `
name = "three"
expr = "L1 L2 V L3 H"
swaps = ["L"]

[[module]]
name = "L1"
width = 10
height = 20
weight = 200

[[module]]
name = "L2"
x = 99
y = 99
width = 30
height = 20
weight = 600

[[module]]
name = "L3"
width = 40
height = 15
weight = 600
cx = 5
cy = 5
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(threeModules))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Name != "three" {
		t.Errorf("Name = %q, want three", p.Name)
	}
	if len(p.Modules) != 3 {
		t.Fatalf("len(Modules) = %d, want 3", len(p.Modules))
	}
	if p.Modules[1].X != 99 || p.Modules[1].Width != 30 {
		t.Errorf("Modules[1] = %+v", p.Modules[1])
	}
	if len(p.Swaps) != 1 || p.Swaps[0] != "L" {
		t.Errorf("Swaps = %v, want [L]", p.Swaps)
	}
	if !p.Weighted() {
		t.Error("Weighted() = false, want true")
	}
}

func TestParseErrors(t *testing.T) {
	module := func(name string) string {
		return "\n[[module]]\nname = \"" + name + "\"\nwidth = 10\nheight = 10\n"
	}

	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"malformed toml", `expr = `, errors.ErrCodeInvalidFormat},
		{"unknown key", `expr = "A"` + "\ncolour = 1" + module("A"), errors.ErrCodeInvalidPlan},
		{"no modules", `expr = "A"`, errors.ErrCodeInvalidPlan},
		{"empty expr", `expr = ""` + module("A"), errors.ErrCodeInvalidPlan},
		{"duplicate module", `expr = "A A V"` + module("A") + module("A"), errors.ErrCodeInvalidPlan},
		{"reserved name", `expr = "H"` + module("H"), errors.ErrCodeInvalidPlan},
		{"unknown module", `expr = "A B V"` + module("A"), errors.ErrCodeInvalidPlan},
		{"module used twice", `expr = "A A V"` + module("A"), errors.ErrCodeInvalidPlan},
		{"operator underflow", `expr = "A V"` + module("A"), errors.ErrCodeInvalidPlan},
		{"too many subtrees", `expr = "A B"` + module("A") + module("B"), errors.ErrCodeInvalidPlan},
		{"unused module", `expr = "A"` + module("A") + module("B"), errors.ErrCodeInvalidPlan},
		{"bad swap path", `expr = "A"` + "\nswaps = [\"X\"]" + module("A"), errors.ErrCodeInvalidPath},
		{"zero size", "expr = \"A\"\n[[module]]\nname = \"A\"\nwidth = 0\nheight = 1\n", errors.ErrCodeInvalidPlan},
		{"negative weight", "expr = \"A\"\n[[module]]\nname = \"A\"\nwidth = 1\nheight = 1\nweight = -2\n", errors.ErrCodeInvalidPlan},
		{"cx without cy", "expr = \"A\"\n[[module]]\nname = \"A\"\nwidth = 1\nheight = 1\ncx = 0.5\n", errors.ErrCodeInvalidPlan},
		{"nan width", "expr = \"A\"\n[[module]]\nname = \"A\"\nwidth = nan\nheight = 1\n", errors.ErrCodeInvalidPlan},
		{"infinite height", "expr = \"A\"\n[[module]]\nname = \"A\"\nwidth = 1\nheight = inf\n", errors.ErrCodeInvalidPlan},
		{"infinite x", "expr = \"A\"\n[[module]]\nname = \"A\"\nx = -inf\nwidth = 1\nheight = 1\n", errors.ErrCodeInvalidPlan},
		{"nan weight", "expr = \"A\"\n[[module]]\nname = \"A\"\nwidth = 1\nheight = 1\nweight = nan\n", errors.ErrCodeInvalidPlan},
		{"infinite weight", "expr = \"A\"\n[[module]]\nname = \"A\"\nwidth = 1\nheight = 1\nweight = inf\n", errors.ErrCodeInvalidPlan},
		{"nan centroid", "expr = \"A\"\n[[module]]\nname = \"A\"\nwidth = 1\nheight = 1\ncx = nan\ncy = 0\n", errors.ErrCodeInvalidPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	p, err := Parse([]byte(threeModules))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tree, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	root, ok := floorplan.AsSplit(tree.Root)
	if !ok || root.Type() != floorplan.Horizontal {
		t.Fatalf("root is not a horizontal split: %T", tree.Root)
	}
	if root.Rect() != geom.NewRect(0, 0, 40, 35) {
		t.Errorf("root rect = %v, want (0,0 40x35)", root.Rect())
	}
	if err := floorplan.Validate(tree.Root); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	leaves, err := floorplan.Leaves(tree.Root)
	if err != nil {
		t.Fatalf("Leaves() error = %v", err)
	}
	want := map[string]geom.Rect{
		"L1": geom.NewRect(0, 0, 10, 20),
		"L2": geom.NewRect(10, 0, 30, 20),
		"L3": geom.NewRect(0, 20, 40, 15),
	}
	for _, l := range leaves {
		if l.Rect() != want[l.Name()] {
			t.Errorf("%s rect = %v, want %v", l.Name(), l.Rect(), want[l.Name()])
		}
		if l.Module() != floorplan.Module(tree.Blocks[l.Name()]) {
			t.Errorf("%s not backed by its block", l.Name())
		}
	}

	// L2 was declared at (99,99); its centroid follows the layout.
	c, _ := leaves[1].Centroid()
	if c != geom.NewPoint(25, 10) {
		t.Errorf("L2 centroid = %v, want (25,10)", c)
	}
	// L3 has an explicit centroid relative to its declared origin (0,0).
	c, _ = leaves[2].Centroid()
	if c != geom.NewPoint(5, 25) {
		t.Errorf("L3 centroid = %v, want (5,25)", c)
	}

	if err := floorplan.Finalize(tree.Root); err != nil {
		t.Errorf("Finalize() error = %v", err)
	}
}

func TestBuildUnweighted(t *testing.T) {
	p, err := Parse([]byte("expr = \"A B V\"\n[[module]]\nname = \"A\"\nwidth = 1\nheight = 2\n[[module]]\nname = \"B\"\nwidth = 3\nheight = 2\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Weighted() {
		t.Error("Weighted() = true without weights")
	}
	tree, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err := floorplan.Finalize(tree.Root); !errors.Is(err, errors.ErrCodeCentroidPending) {
		t.Errorf("Finalize() error = %v, want %s", err, errors.ErrCodeCentroidPending)
	}
}

func TestBuildDimensionMismatch(t *testing.T) {
	p, err := Parse([]byte("expr = \"A B H\"\n[[module]]\nname = \"A\"\nwidth = 1\nheight = 2\n[[module]]\nname = \"B\"\nwidth = 3\nheight = 2\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	_, err = p.Build()
	if !errors.Is(err, errors.ErrCodeDimensionMismatch) {
		t.Errorf("Build() error = %v, want %s", err, errors.ErrCodeDimensionMismatch)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "three.toml")
	if err := os.WriteFile(path, []byte(threeModules), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Expr != "L1 L2 V L3 H" {
		t.Errorf("Expr = %q", p.Expr)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte(`expr = "A"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, errors.ErrCodeInvalidPlan) {
		t.Errorf("Load(bad) error = %v, want %s", err, errors.ErrCodeInvalidPlan)
	}
}

func TestExamplePlans(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example plans")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			p, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tree, err := p.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if p.Weighted() {
				if err := floorplan.Finalize(tree.Root); err != nil {
					t.Fatalf("Finalize() error = %v", err)
				}
			}
			for _, s := range p.Swaps {
				n, err := floorplan.Find(tree.Root, s)
				if err != nil {
					t.Fatalf("Find(%q) error = %v", s, err)
				}
				f, ok := floorplan.AsSplit(n)
				if !ok {
					t.Fatalf("swap path %q is a leaf", s)
				}
				if err := f.SwapChildren(); err != nil {
					t.Fatalf("SwapChildren(%q) error = %v", s, err)
				}
				if err := f.RecalculateTree(); err != nil {
					t.Fatal(err)
				}
				if err := floorplan.Refinalize(tree.Root, s); err != nil {
					t.Fatalf("Refinalize(%q) error = %v", s, err)
				}
			}
			if err := floorplan.Validate(tree.Root); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if err := floorplan.ValidateCentroids(tree.Root); err != nil {
				t.Errorf("ValidateCentroids() error = %v", err)
			}
		})
	}
}
