// Package shapes implements the polymorphic shape tree: primitives,
// groups, constructive solid geometry, and the ray/shape intersection
// walk. Shapes define geometry in their own object space; a cached inverse
// transform maps world-space rays down into it.
package shapes

import (
	"sort"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/material"
)

// Shape is the contract every primitive and composite implements.
// LocalIntersect and LocalNormalAt operate entirely in object space; the
// package-level Intersect walk handles world/object conversion.
type Shape interface {
	// LocalIntersect returns intersections for a ray already in object
	// space. Negative t values are included; callers filter by validity.
	LocalIntersect(localRay core.Ray) []Intersection

	// LocalNormalAt returns the (not necessarily unit) normal at an
	// object-space point. The hit carries barycentric u/v for triangles.
	LocalNormalAt(localPoint core.Tuple, hit *Intersection) core.Tuple

	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix) error

	Material() *material.Material
	SetMaterial(m *material.Material)

	// Bounds returns the shape's axis-aligned bounds in its object space
	Bounds() Bounds
}

// baseShape carries the transform and material plumbing shared by all
// shapes. The inverse transform is recomputed on every SetTransform so it
// is always in sync.
type baseShape struct {
	transform core.Matrix
	inverse   core.Matrix
	material  *material.Material
}

func newBaseShape() baseShape {
	return baseShape{
		transform: core.Identity(),
		inverse:   core.Identity(),
		material:  material.NewMaterial(),
	}
}

// Transform returns the object-to-world transform
func (b *baseShape) Transform() core.Matrix {
	return b.transform
}

// InverseTransform returns the cached world-to-object transform
func (b *baseShape) InverseTransform() core.Matrix {
	return b.inverse
}

// SetTransform replaces the transform and recomputes the cached inverse.
// Singular matrices are rejected with ErrDegenerateGeometry.
func (b *baseShape) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inv
	return nil
}

// Material returns the shape's material. May be nil for groups and CSG
// nodes, which have no surface of their own.
func (b *baseShape) Material() *material.Material {
	return b.material
}

// SetMaterial assigns a (possibly shared) material
func (b *baseShape) SetMaterial(m *material.Material) {
	b.material = m
}

// Intersect casts a world-space ray against a shape tree and returns the
// hits sorted ascending by t. Each intersection records the accumulated
// world-to-object transform of the shape it struck, so normals and pattern
// lookups on nested shapes never need parent back-references.
func Intersect(s Shape, worldRay core.Ray) []Intersection {
	xs := intersectAccum(s, worldRay, core.Identity())
	sortIntersections(xs)
	return xs
}

// intersectAccum intersects a ray given in the parent's space, carrying
// the accumulated world-to-object transform down the tree.
func intersectAccum(s Shape, parentRay core.Ray, accum core.Matrix) []Intersection {
	inv := s.InverseTransform()
	localRay := parentRay.Transform(inv)
	worldToObject := inv.Multiply(accum)

	switch node := s.(type) {
	case *Group:
		// Cheap reject before recursing into children
		if !node.Bounds().Intersects(localRay) {
			return nil
		}
		var xs []Intersection
		for _, child := range node.Children() {
			xs = append(xs, intersectAccum(child, localRay, worldToObject)...)
		}
		return xs
	case *CSG:
		xs := intersectAccum(node.Left(), localRay, worldToObject)
		xs = append(xs, intersectAccum(node.Right(), localRay, worldToObject)...)
		sortIntersections(xs)
		return node.filterIntersections(xs)
	default:
		xs := s.LocalIntersect(localRay)
		for i := range xs {
			xs[i].worldToObject = worldToObject
		}
		return xs
	}
}

// Includes reports whether shape a is, or transitively contains, shape b.
// Primitives compare by identity; groups and CSG nodes search their
// children.
func Includes(a, b Shape) bool {
	switch node := a.(type) {
	case *Group:
		for _, child := range node.Children() {
			if Includes(child, b) {
				return true
			}
		}
		return false
	case *CSG:
		return Includes(node.Left(), b) || Includes(node.Right(), b)
	default:
		return a == b
	}
}

func sortIntersections(xs []Intersection) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}
