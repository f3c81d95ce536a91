package shapes

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
)

// maxExtent caps infinite bounds before transforming them, so rotations of
// unbounded shapes (planes, open cylinders) never produce NaN corners.
const maxExtent = 1e10

// Bounds is an axis-aligned bounding box in some object space. Used as a
// cheap precheck before recursing into group children; correctness never
// depends on it being tight, only on it containing the shape.
type Bounds struct {
	Min core.Tuple
	Max core.Tuple
}

// EmptyBounds returns bounds that contain nothing and absorb any point
func EmptyBounds() Bounds {
	return Bounds{
		Min: core.NewPoint(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: core.NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// NewBounds returns bounds with the given corners
func NewBounds(min, max core.Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// AddPoint grows the bounds to contain the point
func (b Bounds) AddPoint(p core.Tuple) Bounds {
	return Bounds{
		Min: core.NewPoint(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: core.NewPoint(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// Merge returns bounds containing both boxes
func (b Bounds) Merge(other Bounds) Bounds {
	return b.AddPoint(other.Min).AddPoint(other.Max)
}

// Transform maps the bounds through a matrix by transforming all eight
// corners and re-boxing them. Infinite extents are clamped first.
func (b Bounds) Transform(m core.Matrix) Bounds {
	clamp := func(v float64) float64 {
		if v > maxExtent {
			return maxExtent
		}
		if v < -maxExtent {
			return -maxExtent
		}
		return v
	}

	min := core.NewPoint(clamp(b.Min.X), clamp(b.Min.Y), clamp(b.Min.Z))
	max := core.NewPoint(clamp(b.Max.X), clamp(b.Max.Y), clamp(b.Max.Z))

	corners := []core.Tuple{
		core.NewPoint(min.X, min.Y, min.Z),
		core.NewPoint(min.X, min.Y, max.Z),
		core.NewPoint(min.X, max.Y, min.Z),
		core.NewPoint(min.X, max.Y, max.Z),
		core.NewPoint(max.X, min.Y, min.Z),
		core.NewPoint(max.X, min.Y, max.Z),
		core.NewPoint(max.X, max.Y, min.Z),
		core.NewPoint(max.X, max.Y, max.Z),
	}

	result := EmptyBounds()
	for _, corner := range corners {
		result = result.AddPoint(m.MultiplyTuple(corner))
	}
	return result
}

// Intersects tests the ray against the box using the slab method
func (b Bounds) Intersects(ray core.Ray) bool {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	axes := [3][4]float64{
		{b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X},
		{b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y},
		{b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z},
	}

	for _, axis := range axes {
		min, max, origin, direction := axis[0], axis[1], axis[2], axis[3]

		if math.Abs(direction) < core.Epsilon {
			// Parallel to this slab: miss unless the origin is inside it
			if origin < min || origin > max {
				return false
			}
			continue
		}

		t1 := (min - origin) / direction
		t2 := (max - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}
