package shapes

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
)

// Cube is an axis-aligned box from -1 to +1 along each object-space axis.
type Cube struct {
	baseShape
}

// NewCube creates a unit cube with the default material
func NewCube() *Cube {
	return &Cube{baseShape: newBaseShape()}
}

// LocalIntersect uses the slab method: intersect the per-axis entry/exit
// intervals against the three pairs of face planes and keep the overlap.
func (c *Cube) LocalIntersect(localRay core.Ray) []Intersection {
	xtMin, xtMax := checkAxis(localRay.Origin.X, localRay.Direction.X)
	ytMin, ytMax := checkAxis(localRay.Origin.Y, localRay.Direction.Y)
	ztMin, ztMax := checkAxis(localRay.Origin.Z, localRay.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}

	return []Intersection{
		NewIntersection(tMin, c),
		NewIntersection(tMax, c),
	}
}

// checkAxis finds the entry/exit times against one pair of parallel faces
// at -1 and +1. A zero direction component yields +/-Inf with the correct
// sign instead of dividing by zero.
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalNormalAt picks the face whose coordinate has the largest absolute
// value; corner points resolve to the x face.
func (c *Cube) LocalNormalAt(localPoint core.Tuple, _ *Intersection) core.Tuple {
	absX := math.Abs(localPoint.X)
	absY := math.Abs(localPoint.Y)
	absZ := math.Abs(localPoint.Z)

	maxC := math.Max(absX, math.Max(absY, absZ))
	switch maxC {
	case absX:
		return core.NewVector(localPoint.X, 0, 0)
	case absY:
		return core.NewVector(0, localPoint.Y, 0)
	default:
		return core.NewVector(0, 0, localPoint.Z)
	}
}

// Bounds returns the cube's own extent
func (c *Cube) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
