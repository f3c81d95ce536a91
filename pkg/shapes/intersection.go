package shapes

import "github.com/glintrt/glint/pkg/core"

// Intersection records a hit at distance t along a ray against a shape.
// For triangles, U and V hold the barycentric coordinates of the hit for
// smooth-normal interpolation. The intersection also carries the
// accumulated world-to-object transform captured during the tree walk.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64

	worldToObject core.Matrix
}

// NewIntersection creates an intersection against a shape, using the
// shape's own inverse transform for space conversion. The Intersect walk
// overrides this with the accumulated transform for nested shapes.
func NewIntersection(t float64, s Shape) Intersection {
	return Intersection{T: t, Object: s, worldToObject: s.InverseTransform()}
}

// NewIntersectionUV creates an intersection carrying barycentric u/v,
// used by triangle intersections.
func NewIntersectionUV(t float64, s Shape, u, v float64) Intersection {
	i := NewIntersection(t, s)
	i.U = u
	i.V = v
	return i
}

// WorldToObject converts a world-space point into the hit shape's object
// space, accounting for every group transform above it.
func (i *Intersection) WorldToObject(worldPoint core.Tuple) core.Tuple {
	return i.worldToObject.MultiplyTuple(worldPoint)
}

// NormalAt computes the world-space surface normal at a world-space point
// on the hit shape. The local normal is converted back using the
// inverse-transpose so non-uniform scaling is handled correctly.
func (i *Intersection) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := i.worldToObject.MultiplyTuple(worldPoint)
	localNormal := i.Object.LocalNormalAt(localPoint, i)

	worldNormal := i.worldToObject.Transpose().MultiplyTuple(localNormal)
	// The transpose smears translation into w; rebuild as a pure vector
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// Hit selects the intersection with the smallest t greater than Epsilon,
// so a ray never re-hits the surface it just left. Returns false when
// every intersection is behind the ray origin.
func Hit(xs []Intersection) (Intersection, bool) {
	best := Intersection{}
	found := false
	for _, x := range xs {
		if x.T <= core.Epsilon {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}
