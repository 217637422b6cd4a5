package floorplan

import (
	stderrors "errors"

	"github.com/matzehuels/slicetree/pkg/errors"
)

// SkipChildren may be returned by a [WalkFunc] to skip the children of the
// node being visited.
var SkipChildren = stderrors.New("skip children")

// WalkFunc is called for every node visited by [Walk]. path locates the node
// from the root as a string over {L, R}; the root's path is "".
type WalkFunc func(n Node, path string) error

// Walk visits the tree under root in pre-order, left before right.
// A nil node or a node of unknown kind aborts the walk with an
// UNKNOWN_NODE_KIND error.
func Walk(root Node, fn WalkFunc) error {
	return walk(root, "", fn)
}

func walk(n Node, path string, fn WalkFunc) error {
	if err := checkKind(n); err != nil {
		return err
	}
	if err := fn(n, path); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	f, ok := n.(*Floorplan)
	if !ok {
		return nil
	}
	if err := walk(f.left, path+"L", fn); err != nil {
		return err
	}
	return walk(f.right, path+"R", fn)
}

// Leaves returns the leaves under root from left to right.
func Leaves(root Node) ([]*Leaf, error) {
	var leaves []*Leaf
	err := Walk(root, func(n Node, _ string) error {
		if l, ok := AsLeaf(n); ok {
			leaves = append(leaves, l)
		}
		return nil
	})
	return leaves, err
}

// Count returns the number of leaves and internal nodes under root. For any
// tree built with [New], internal == leaves-1.
func Count(root Node) (leaves, internal int, err error) {
	err = Walk(root, func(n Node, _ string) error {
		if n.Kind() == KindLeaf {
			leaves++
		} else {
			internal++
		}
		return nil
	})
	return leaves, internal, err
}

// Find returns the node at path below root.
func Find(root Node, path string) (Node, error) {
	if err := errors.ValidateNodePath(path); err != nil {
		return nil, err
	}
	n := root
	for i, step := range path {
		f, ok := AsSplit(n)
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "node path %q: %q is a leaf", path, path[:i])
		}
		if step == 'L' {
			n = f.left
		} else {
			n = f.right
		}
	}
	if err := checkKind(n); err != nil {
		return nil, err
	}
	return n, nil
}

// errFound stops a walk once PathOf has located its target.
var errFound = stderrors.New("found")

// PathOf returns the path from root to target, the inverse of [Find].
// Nodes are matched by identity.
func PathOf(root, target Node) (string, error) {
	var found string
	err := Walk(root, func(n Node, path string) error {
		if n == target {
			found = path
			return errFound
		}
		return nil
	})
	switch {
	case err == errFound:
		return found, nil
	case err != nil:
		return "", err
	}
	return "", errors.New(errors.ErrCodeNotFound, "node is not part of this tree")
}

// Clone returns an independent deep copy of the tree under root. Leaves of
// the copy refer to the same modules as the original.
func Clone(root Node) (Node, error) {
	switch n := root.(type) {
	case *Leaf:
		c := *n
		c.owned = false
		return &c, nil
	case *Floorplan:
		if n.left == nil || n.right == nil {
			return nil, errors.New(errors.ErrCodeInvalidNode, "cannot clone a dissolved floorplan")
		}
		left, err := Clone(n.left)
		if err != nil {
			return nil, err
		}
		right, err := Clone(n.right)
		if err != nil {
			return nil, err
		}
		left.base().owned = true
		right.base().owned = true
		c := *n
		c.owned = false
		c.left, c.right = left, right
		return &c, nil
	}
	return nil, unknownKind(root)
}

// Validate checks the tree under root against a full top-down
// recomputation from root's origin: every internal node must satisfy its
// split invariant and cover exactly its merged rectangle, and every node
// must sit where [Floorplan.RecalculateTree] would place it. The first
// discrepancy is reported as an INVARIANT_VIOLATION naming the node path.
func Validate(root Node) error {
	want, err := Clone(root)
	if err != nil {
		return err
	}
	if f, ok := AsSplit(want); ok {
		if err := f.RecalculateTree(); err != nil {
			return err
		}
	}

	expected := make(map[string]Node)
	if err := Walk(want, func(n Node, path string) error {
		expected[path] = n
		return nil
	}); err != nil {
		return err
	}

	return Walk(root, func(n Node, path string) error {
		if f, ok := AsSplit(n); ok {
			merged, err := f.MergedRect()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvariant, err, "node %q", displayPath(path))
			}
			if merged.Width() != f.rect.Width() || merged.Height() != f.rect.Height() {
				return errors.New(errors.ErrCodeInvariant, "node %q: size %gx%g, children cover %gx%g",
					displayPath(path), f.rect.Width(), f.rect.Height(), merged.Width(), merged.Height())
			}
		}
		got, exp := n.Rect(), expected[path].Rect()
		if got != exp {
			return errors.New(errors.ErrCodeInvariant, "node %q at %v, recomputation places it at %v",
				displayPath(path), got, exp)
		}
		return nil
	})
}

func displayPath(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
