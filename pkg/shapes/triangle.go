package shapes

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
)

// Triangle is a flat triangle defined by three object-space points. Edge
// vectors and the face normal are precomputed at construction.
type Triangle struct {
	baseShape
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a triangle from three points
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		baseShape: newBaseShape(),
		P1:        p1, P2: p2, P3: p3,
		E1:     e1,
		E2:     e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

// LocalIntersect runs the Moller-Trumbore algorithm: parallel rays miss,
// and barycentric bounds reject hits outside the triangle. The hit records
// u/v for smooth-normal interpolation.
func (tri *Triangle) LocalIntersect(localRay core.Ray) []Intersection {
	t, u, v, ok := mollerTrumbore(localRay, tri.P1, tri.E1, tri.E2)
	if !ok {
		return nil
	}
	return []Intersection{NewIntersectionUV(t, tri, u, v)}
}

// LocalNormalAt returns the precomputed face normal everywhere
func (tri *Triangle) LocalNormalAt(core.Tuple, *Intersection) core.Tuple {
	return tri.Normal
}

// Bounds returns the box around the three points
func (tri *Triangle) Bounds() Bounds {
	return EmptyBounds().AddPoint(tri.P1).AddPoint(tri.P2).AddPoint(tri.P3)
}

// SmoothTriangle is a triangle with per-vertex normals, interpolated at
// the hit point using the barycentric coordinates from intersection.
type SmoothTriangle struct {
	baseShape
	P1, P2, P3 core.Tuple
	N1, N2, N3 core.Tuple
	E1, E2     core.Tuple
}

// NewSmoothTriangle creates a triangle with vertex normals
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *SmoothTriangle {
	return &SmoothTriangle{
		baseShape: newBaseShape(),
		P1:        p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		E1: p2.Subtract(p1),
		E2: p3.Subtract(p1),
	}
}

// LocalIntersect is identical to the flat triangle's intersection
func (tri *SmoothTriangle) LocalIntersect(localRay core.Ray) []Intersection {
	t, u, v, ok := mollerTrumbore(localRay, tri.P1, tri.E1, tri.E2)
	if !ok {
		return nil
	}
	return []Intersection{NewIntersectionUV(t, tri, u, v)}
}

// LocalNormalAt interpolates the vertex normals with the hit's u/v
func (tri *SmoothTriangle) LocalNormalAt(_ core.Tuple, hit *Intersection) core.Tuple {
	if hit == nil {
		return tri.N1
	}
	return tri.N2.Multiply(hit.U).
		Add(tri.N3.Multiply(hit.V)).
		Add(tri.N1.Multiply(1 - hit.U - hit.V))
}

// Bounds returns the box around the three points
func (tri *SmoothTriangle) Bounds() Bounds {
	return EmptyBounds().AddPoint(tri.P1).AddPoint(tri.P2).AddPoint(tri.P3)
}

// mollerTrumbore computes the ray/triangle intersection for a triangle
// anchored at p1 with edge vectors e1, e2. Returns the distance and the
// barycentric u/v, or ok=false for parallel rays and out-of-bounds hits.
func mollerTrumbore(ray core.Ray, p1, e1, e2 core.Tuple) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}
