package shapes

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
)

// Cone is a double-napped cone with its apex at the object-space origin,
// extending along the y axis. The wall radius equals |y|. Like cylinders,
// cones can be truncated (exclusive bounds) and closed with caps.
type Cone struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone with the default material
func NewCone() *Cone {
	return &Cone{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// LocalIntersect solves the x^2-y^2+z^2=0 quadratic. When the leading
// coefficient vanishes the ray parallels one cone half and the equation
// degenerates to a linear one with a single wall hit.
func (cone *Cone) LocalIntersect(localRay core.Ray) []Intersection {
	var xs []Intersection

	o, d := localRay.Origin, localRay.Direction
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	c := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	if math.Abs(a) < core.Epsilon {
		if math.Abs(b) < core.Epsilon {
			// Parallel to both halves: misses the walls entirely
			return cone.intersectCaps(localRay, xs)
		}
		t := -c / (2 * b)
		y := o.Y + t*d.Y
		if cone.Minimum < y && y < cone.Maximum {
			xs = append(xs, NewIntersection(t, cone))
		}
		return cone.intersectCaps(localRay, xs)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return cone.intersectCaps(localRay, xs)
	}

	sqrtD := math.Sqrt(disc)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	y0 := o.Y + t0*d.Y
	if cone.Minimum < y0 && y0 < cone.Maximum {
		xs = append(xs, NewIntersection(t0, cone))
	}

	y1 := o.Y + t1*d.Y
	if cone.Minimum < y1 && y1 < cone.Maximum {
		xs = append(xs, NewIntersection(t1, cone))
	}

	return cone.intersectCaps(localRay, xs)
}

// checkConeCap reports whether the hit at t lies within |capY| of the
// y axis; a cone cap's radius grows with its distance from the apex
func checkConeCap(localRay core.Ray, t, capY float64) bool {
	x := localRay.Origin.X + t*localRay.Direction.X
	z := localRay.Origin.Z + t*localRay.Direction.Z
	return x*x+z*z <= math.Abs(capY)
}

func (cone *Cone) intersectCaps(localRay core.Ray, xs []Intersection) []Intersection {
	if !cone.Closed || math.Abs(localRay.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (cone.Minimum - localRay.Origin.Y) / localRay.Direction.Y
	if checkConeCap(localRay, t, cone.Minimum) {
		xs = append(xs, NewIntersection(t, cone))
	}

	t = (cone.Maximum - localRay.Origin.Y) / localRay.Direction.Y
	if checkConeCap(localRay, t, cone.Maximum) {
		xs = append(xs, NewIntersection(t, cone))
	}

	return xs
}

// LocalNormalAt distinguishes cap points from wall points; wall normals
// slope away from the apex
func (cone *Cone) LocalNormalAt(localPoint core.Tuple, _ *Intersection) core.Tuple {
	dist := localPoint.X*localPoint.X + localPoint.Z*localPoint.Z

	switch {
	case dist < math.Abs(localPoint.Y) && localPoint.Y >= cone.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < math.Abs(localPoint.Y) && localPoint.Y <= cone.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(dist)
		if localPoint.Y > 0 {
			y = -y
		}
		return core.NewVector(localPoint.X, y, localPoint.Z)
	}
}

// Bounds returns the cone's extent; the xz radius tracks the larger
// truncation bound
func (cone *Cone) Bounds() Bounds {
	limit := math.Max(math.Abs(cone.Minimum), math.Abs(cone.Maximum))
	return NewBounds(
		core.NewPoint(-limit, cone.Minimum, -limit),
		core.NewPoint(limit, cone.Maximum, limit),
	)
}
