package shapes

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/material"
)

// Sphere is a unit sphere centered at the object-space origin. Position,
// size, and orientation come from the shape transform.
type Sphere struct {
	baseShape
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{baseShape: newBaseShape()}
}

// NewGlassSphere creates a unit sphere with a fully transparent
// glass material (refractive index 1.5)
func NewGlassSphere() *Sphere {
	s := NewSphere()
	m := material.NewMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	s.SetMaterial(m)
	return s
}

// LocalIntersect solves the quadratic from substituting the ray equation
// into the unit-sphere implicit equation. A tangent ray reports the same t
// twice; both roots are reported even when negative.
func (s *Sphere) LocalIntersect(localRay core.Ray) []Intersection {
	sphereToRay := localRay.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := localRay.Direction.Dot(localRay.Direction)
	b := 2 * localRay.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []Intersection{
		NewIntersection((-b-sqrtD)/(2*a), s),
		NewIntersection((-b+sqrtD)/(2*a), s),
	}
}

// LocalNormalAt returns the vector from the origin to the surface point
func (s *Sphere) LocalNormalAt(localPoint core.Tuple, _ *Intersection) core.Tuple {
	return localPoint.Subtract(core.NewPoint(0, 0, 0))
}

// Bounds returns the unit cube enclosing the sphere
func (s *Sphere) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
