package shapes

import (
	"sync"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/material"
)

// Group is a composite shape with no surface of its own; it takes its form
// from the children it owns. The group transform applies implicitly to
// every child. Membership edits happen during scene construction only.
type Group struct {
	baseShape
	children []Shape

	mu           sync.Mutex
	boundsCached bool
	bounds       Bounds
}

// NewGroup creates an empty group. Groups have no material of their own.
func NewGroup() *Group {
	g := &Group{baseShape: newBaseShape()}
	g.material = nil
	return g
}

// AddChild takes ownership of a shape. Adding a child invalidates the
// cached bounds.
func (g *Group) AddChild(children ...Shape) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.children = append(g.children, children...)
	g.boundsCached = false
}

// Children returns the group's children
func (g *Group) Children() []Shape {
	return g.children
}

// LocalIntersect is never called for groups; the Intersect walk recurses
// into children directly so it can accumulate transforms.
func (g *Group) LocalIntersect(core.Ray) []Intersection {
	return nil
}

// LocalNormalAt is never called for groups; only leaf shapes are hit
func (g *Group) LocalNormalAt(core.Tuple, *Intersection) core.Tuple {
	return core.NewVector(0, 0, 0)
}

// Bounds returns the merged bounds of all children, each transformed into
// the group's space. The cache is filled under a mutex so parallel render
// workers hitting a cold group cannot race; scene validation warms it so
// the lock stays uncontended while tracing.
func (g *Group) Bounds() Bounds {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.boundsCached {
		bounds := EmptyBounds()
		for _, child := range g.children {
			bounds = bounds.Merge(child.Bounds().Transform(child.Transform()))
		}
		g.bounds = bounds
		g.boundsCached = true
	}
	return g.bounds
}

// SetMaterial applies the material to every child, recursively. The group
// itself keeps no material.
func (g *Group) SetMaterial(m *material.Material) {
	for _, child := range g.children {
		child.SetMaterial(m)
	}
}
