package pipeline

import (
	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/floorplan"
)

// Swap exchanges the children of the internal node at path and repairs the
// coordinates below it with the given repair mode. On a finalized tree the
// centroids from the swapped node up to the root are merged again.
func (r *Runner) Swap(root floorplan.Node, path, repair string) error {
	n, err := floorplan.Find(root, path)
	if err != nil {
		return err
	}
	f, ok := floorplan.AsSplit(n)
	if !ok {
		return errors.New(errors.ErrCodeInvalidPath, "node at %q is a leaf, only internal nodes can be swapped", path)
	}
	if err := f.SwapChildren(); err != nil {
		return err
	}
	if err := Repair(f, repair); err != nil {
		return err
	}
	if f.HasCentroid() {
		if err := floorplan.Refinalize(root, path); err != nil {
			return err
		}
	}
	r.Logger.Debug("swapped children", "path", path, "type", f.Type(), "repair", repair)
	return nil
}

// Repair brings the subtree under f back in line with f's own origin.
func Repair(f *floorplan.Floorplan, mode string) error {
	switch mode {
	case RepairTree:
		return f.RecalculateTree()
	case RepairChildren:
		return floorplan.Walk(f, func(n floorplan.Node, _ string) error {
			if s, ok := floorplan.AsSplit(n); ok {
				return s.RecalculateChildrenCoords()
			}
			return nil
		})
	}
	return ValidateRepair(mode)
}
