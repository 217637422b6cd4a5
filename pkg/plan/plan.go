// Package plan loads floorplan descriptions from TOML files.
//
// A plan lists the modules with their rectangles and gives the tree as a
// postfix slicing expression, the usual encoding for slicing floorplans:
// operands are module names and the operators H and V pair the two
// subtrees on top of the stack.
//
//	name = "demo"
//	expr = "A B V C H"   # (A beside B) above C
//	swaps = ["L"]        # optional node paths to swap after building
//
//	[[module]]
//	name = "A"
//	width = 10
//	height = 20
//	weight = 1
//
// Module positions are optional: [Plan.Build] lays the tree out from the
// first module's origin. A module with a weight but no cx/cy gets its
// centroid at the center of its rectangle; a module without a weight keeps
// weight 0 and a pending centroid, and merging it fails until the caller
// assigns mass properties.
package plan

import (
	stderrors "errors"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/slicetree/pkg/errors"
)

// Plan is the decoded form of a plan file.
type Plan struct {
	Name    string   `toml:"name"`
	Expr    string   `toml:"expr"`
	Swaps   []string `toml:"swaps"`
	Modules []Module `toml:"module"`
}

// Module describes one placement unit.
type Module struct {
	Name   string   `toml:"name"`
	X      float64  `toml:"x"`
	Y      float64  `toml:"y"`
	Width  float64  `toml:"width"`
	Height float64  `toml:"height"`
	Weight *float64 `toml:"weight"`
	CX     *float64 `toml:"cx"`
	CY     *float64 `toml:"cy"`
}

// Load reads and validates the plan file at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read plan %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "plan %s", path)
	}
	return p, nil
}

// Parse decodes and validates a plan. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidPlan, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks module definitions and the slicing expression.
func (p *Plan) Validate() error {
	if len(p.Modules) == 0 {
		return errors.New(errors.ErrCodeInvalidPlan, "plan has no modules")
	}

	seen := make(map[string]bool, len(p.Modules))
	for i, m := range p.Modules {
		if err := errors.ValidateModuleName(m.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPlan, err, "module %d", i)
		}
		if seen[m.Name] {
			return errors.New(errors.ErrCodeInvalidPlan, "duplicate module %q", m.Name)
		}
		seen[m.Name] = true

		if !finite(m.X, m.Y) {
			return errors.New(errors.ErrCodeInvalidPlan, "module %q: position must be finite, got (%g,%g)", m.Name, m.X, m.Y)
		}
		if !finite(m.Width, m.Height) || m.Width <= 0 || m.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidPlan, "module %q: size must be positive and finite, got %gx%g", m.Name, m.Width, m.Height)
		}
		if m.Weight != nil && (!finite(*m.Weight) || *m.Weight < 0) {
			return errors.New(errors.ErrCodeInvalidPlan, "module %q: weight must be finite and not negative, got %g", m.Name, *m.Weight)
		}
		if (m.CX == nil) != (m.CY == nil) {
			return errors.New(errors.ErrCodeInvalidPlan, "module %q: cx and cy must be given together", m.Name)
		}
		if m.CX != nil && !finite(*m.CX, *m.CY) {
			return errors.New(errors.ErrCodeInvalidPlan, "module %q: centroid must be finite, got (%g,%g)", m.Name, *m.CX, *m.CY)
		}
	}

	for _, s := range p.Swaps {
		if err := errors.ValidateNodePath(s); err != nil {
			return err
		}
	}

	_, err := p.compile()
	return err
}

// Weighted reports whether every module has a weight, so that mass
// properties can be finalized right after building.
func (p *Plan) Weighted() bool {
	for _, m := range p.Modules {
		if m.Weight == nil {
			return false
		}
	}
	return true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
