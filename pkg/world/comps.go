package world

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/shapes"
)

// Comps bundles everything the shading routines need about a single hit:
// the surface point and its object-space image, the eye/normal/reflection
// vectors, the inside flag, the acne-avoiding offset points, and the
// refractive indices on both sides of the boundary.
type Comps struct {
	T      float64
	Object shapes.Shape

	Point       core.Tuple
	ObjectPoint core.Tuple
	EyeV        core.Tuple
	NormalV     core.Tuple
	ReflectV    core.Tuple
	Inside      bool

	// OverPoint sits a hair above the surface along the normal; shadow
	// rays and reflection rays start here. UnderPoint sits just below;
	// refraction rays start there instead.
	OverPoint  core.Tuple
	UnderPoint core.Tuple

	// N1 is the refractive index of the material being exited, N2 of the
	// material being entered
	N1, N2 float64
}

// PrepareComputations precomputes shading data for a hit. The full sorted
// intersection list is needed to derive the refractive-index pair when
// rays pass through overlapping transparent solids; pass just the hit when
// refraction is not in play.
func PrepareComputations(hit shapes.Intersection, ray core.Ray, xs []shapes.Intersection) Comps {
	if xs == nil {
		xs = []shapes.Intersection{hit}
	}

	point := ray.Position(hit.T)
	eyeV := ray.Direction.Negate()
	normalV := hit.NormalAt(point)

	inside := false
	if normalV.Dot(eyeV) < 0 {
		// Hit on the inside of the shape: flip the normal so the surface
		// is lit from the side the eye is on
		inside = true
		normalV = normalV.Negate()
	}

	n1, n2 := refractiveIndices(hit, xs)

	offset := normalV.Multiply(core.Epsilon)
	return Comps{
		T:           hit.T,
		Object:      hit.Object,
		Point:       point,
		ObjectPoint: hit.WorldToObject(point),
		EyeV:        eyeV,
		NormalV:     normalV,
		ReflectV:    ray.Direction.Reflect(normalV),
		Inside:      inside,
		OverPoint:   point.Add(offset),
		UnderPoint:  point.Subtract(offset),
		N1:          n1,
		N2:          n2,
	}
}

// refractiveIndices walks the intersections in t order, keeping the list
// of shapes the ray has entered but not yet exited. When the hit is
// reached, n1 is the index of the innermost container before crossing the
// boundary and n2 the index after toggling the hit shape's membership.
func refractiveIndices(hit shapes.Intersection, xs []shapes.Intersection) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []shapes.Shape

	for _, x := range xs {
		atHit := x == hit

		if atHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		// Entering a shape appends it; exiting removes it
		removed := false
		for i, s := range containers {
			if s == x.Object {
				containers = append(containers[:i], containers[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			containers = append(containers, x.Object)
		}

		if atHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}

	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction
// of light reflected rather than refracted. Returns 1.0 under total
// internal reflection.
func Schlick(comps Comps) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	// Total internal reflection can only occur when n1 > n2
	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1.0 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
