package floorplan

import "github.com/matzehuels/slicetree/pkg/geom"

// Module is a fixed placement unit. The tree only reads its rectangle and
// never mutates or owns it.
type Module interface {
	Rect() geom.Rect
}

// Named is implemented by modules that carry a display name.
type Named interface {
	Name() string
}

// Block is a minimal [Module] with an identifier.
type Block struct {
	ID     string
	Bounds geom.Rect
}

// Rect implements [Module].
func (b *Block) Rect() geom.Rect { return b.Bounds }

// Name implements [Named].
func (b *Block) Name() string { return b.ID }

// Leaf is a tree node wrapping one module.
type Leaf struct {
	Base
	module Module
}

// NewLeaf returns a leaf for m with a copy of its rectangle, weight 0 and a
// pending centroid. m must not be nil.
func NewLeaf(m Module) *Leaf {
	return &Leaf{
		Base:   NewBase(m.Rect(), geom.Undefined(), 0),
		module: m,
	}
}

// Kind implements [Node].
func (l *Leaf) Kind() Kind { return KindLeaf }

// Module returns the wrapped module.
func (l *Leaf) Module() Module { return l.module }

// Name returns the module's name if it has one, otherwise "".
func (l *Leaf) Name() string {
	if n, ok := l.module.(Named); ok {
		return n.Name()
	}
	return ""
}

// Resync copies the module's current rectangle into the leaf. Changes to a
// module are never picked up automatically. The centroid is left as is.
func (l *Leaf) Resync() {
	l.rect = l.module.Rect()
}
