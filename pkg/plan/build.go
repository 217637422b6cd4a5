package plan

import (
	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/floorplan"
	"github.com/matzehuels/slicetree/pkg/geom"
)

// Tree is a floorplan built from a plan.
type Tree struct {
	Root floorplan.Node
	// Blocks are the modules referenced by the leaves, by name. They are
	// owned by the Tree, not by the floorplan.
	Blocks map[string]*floorplan.Block
}

// Build evaluates the slicing expression into a floorplan tree and lays it
// out top-down from the first module's origin. Mass properties of internal
// nodes are left pending; see [floorplan.Finalize].
func (p *Plan) Build() (*Tree, error) {
	tokens, err := p.compile()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]Module, len(p.Modules))
	for _, m := range p.Modules {
		byName[m.Name] = m
	}

	tree := &Tree{Blocks: make(map[string]*floorplan.Block, len(p.Modules))}
	stack := make([]floorplan.Node, 0, len(p.Modules))
	for i, tok := range tokens {
		if !tok.isOp {
			m := byName[tok.module]
			b := &floorplan.Block{ID: m.Name, Bounds: geom.NewRect(m.X, m.Y, m.Width, m.Height)}
			tree.Blocks[m.Name] = b
			stack = append(stack, newLeaf(b, m))
			continue
		}

		n := len(stack)
		left, right := stack[n-2], stack[n-1]
		f, err := floorplan.New(left, right, tok.op)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "expr token %d (%s)", i+1, tok.op)
		}
		stack = append(stack[:n-2], f)
	}

	tree.Root = stack[0]
	if err := floorplan.MoveTo(tree.Root, tree.Root.Rect().Origin()); err != nil {
		return nil, err
	}
	return tree, nil
}

func newLeaf(b *floorplan.Block, m Module) *floorplan.Leaf {
	l := floorplan.NewLeaf(b)
	if m.Weight != nil {
		l.SetWeight(*m.Weight)
		l.SetCentroid(b.Bounds.Center())
	}
	if m.CX != nil && m.CY != nil {
		l.SetCentroid(geom.NewPoint(*m.CX, *m.CY))
	}
	return l
}
