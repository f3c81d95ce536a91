package shapes

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
)

// Plane is the infinite xz plane at y=0 in object space. Coplanar rays are
// treated as missing rather than intersecting infinitely often.
type Plane struct {
	baseShape
}

// NewPlane creates an xz plane with the default material
func NewPlane() *Plane {
	return &Plane{baseShape: newBaseShape()}
}

// LocalIntersect returns the single crossing of the y=0 plane, or nothing
// when the ray is parallel to it
func (p *Plane) LocalIntersect(localRay core.Ray) []Intersection {
	if math.Abs(localRay.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -localRay.Origin.Y / localRay.Direction.Y
	return []Intersection{NewIntersection(t, p)}
}

// LocalNormalAt returns the constant +y normal
func (p *Plane) LocalNormalAt(core.Tuple, *Intersection) core.Tuple {
	return core.NewVector(0, 1, 0)
}

// Bounds returns a slab infinite in x and z with a thin y extent
func (p *Plane) Bounds() Bounds {
	return NewBounds(
		core.NewPoint(math.Inf(-1), -core.Epsilon, math.Inf(-1)),
		core.NewPoint(math.Inf(1), core.Epsilon, math.Inf(1)),
	)
}
