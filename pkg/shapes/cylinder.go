package shapes

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
)

// Cylinder is a radius-1 cylinder along the object-space y axis, infinite
// by default. Minimum and Maximum truncate it (exclusive bounds); Closed
// adds end caps.
type Cylinder struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder with the default material
func NewCylinder() *Cylinder {
	return &Cylinder{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// LocalIntersect solves the x^2+z^2=1 quadratic, clips wall hits to the
// truncation range, and adds cap hits when the cylinder is closed
func (cyl *Cylinder) LocalIntersect(localRay core.Ray) []Intersection {
	var xs []Intersection

	a := localRay.Direction.X*localRay.Direction.X + localRay.Direction.Z*localRay.Direction.Z
	if math.Abs(a) < core.Epsilon {
		// Parallel to the y axis: only the caps can be hit
		return cyl.intersectCaps(localRay, xs)
	}

	b := 2*localRay.Origin.X*localRay.Direction.X + 2*localRay.Origin.Z*localRay.Direction.Z
	c := localRay.Origin.X*localRay.Origin.X + localRay.Origin.Z*localRay.Origin.Z - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	sqrtD := math.Sqrt(disc)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	y0 := localRay.Origin.Y + t0*localRay.Direction.Y
	if cyl.Minimum < y0 && y0 < cyl.Maximum {
		xs = append(xs, NewIntersection(t0, cyl))
	}

	y1 := localRay.Origin.Y + t1*localRay.Direction.Y
	if cyl.Minimum < y1 && y1 < cyl.Maximum {
		xs = append(xs, NewIntersection(t1, cyl))
	}

	return cyl.intersectCaps(localRay, xs)
}

// checkCap reports whether the hit at t lies within radius 1 of the y axis
func checkCap(localRay core.Ray, t float64) bool {
	x := localRay.Origin.X + t*localRay.Direction.X
	z := localRay.Origin.Z + t*localRay.Direction.Z
	return x*x+z*z <= 1
}

func (cyl *Cylinder) intersectCaps(localRay core.Ray, xs []Intersection) []Intersection {
	if !cyl.Closed || math.Abs(localRay.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (cyl.Minimum - localRay.Origin.Y) / localRay.Direction.Y
	if checkCap(localRay, t) {
		xs = append(xs, NewIntersection(t, cyl))
	}

	t = (cyl.Maximum - localRay.Origin.Y) / localRay.Direction.Y
	if checkCap(localRay, t) {
		xs = append(xs, NewIntersection(t, cyl))
	}

	return xs
}

// LocalNormalAt distinguishes cap points (within the unit radius and
// within Epsilon of a truncation plane) from wall points
func (cyl *Cylinder) LocalNormalAt(localPoint core.Tuple, _ *Intersection) core.Tuple {
	dist := localPoint.X*localPoint.X + localPoint.Z*localPoint.Z

	switch {
	case dist < 1 && localPoint.Y >= cyl.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && localPoint.Y <= cyl.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(localPoint.X, 0, localPoint.Z)
	}
}

// Bounds returns the cylinder's extent, infinite in y unless truncated
func (cyl *Cylinder) Bounds() Bounds {
	return NewBounds(
		core.NewPoint(-1, cyl.Minimum, -1),
		core.NewPoint(1, cyl.Maximum, 1),
	)
}
