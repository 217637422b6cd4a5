package plan

import (
	"strings"

	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/floorplan"
)

// token is one element of a postfix expression: a module name or an operator.
type token struct {
	module string
	op     floorplan.SplitType
	isOp   bool
}

// compile tokenizes the expression and checks that it describes a single
// tree using every module exactly once.
func (p *Plan) compile() ([]token, error) {
	fields := strings.Fields(p.Expr)
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPlan, "expr is empty")
	}

	known := make(map[string]bool, len(p.Modules))
	for _, m := range p.Modules {
		known[m.Name] = true
	}

	used := make(map[string]bool, len(p.Modules))
	tokens := make([]token, 0, len(fields))
	depth := 0
	for i, f := range fields {
		if len(f) == 1 {
			if t, err := floorplan.ParseSplitType(f); err == nil {
				if depth < 2 {
					return nil, errors.New(errors.ErrCodeInvalidPlan, "expr token %d: operator %s needs two operands", i+1, f)
				}
				depth--
				tokens = append(tokens, token{op: t, isOp: true})
				continue
			}
		}
		if !known[f] {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "expr token %d: unknown module %q", i+1, f)
		}
		if used[f] {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "expr token %d: module %q used twice", i+1, f)
		}
		used[f] = true
		depth++
		tokens = append(tokens, token{module: f})
	}

	if depth != 1 {
		return nil, errors.New(errors.ErrCodeInvalidPlan, "expr leaves %d subtrees, want 1", depth)
	}
	for _, m := range p.Modules {
		if !used[m.Name] {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "module %q not used in expr", m.Name)
		}
	}
	return tokens, nil
}
