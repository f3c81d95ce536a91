package core

import "fmt"

// Ray is an origin point plus a direction vector. Rays are immutable;
// Transform produces a new ray in a different space. The direction is not
// required to be normalized.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Validate checks that the ray has a point origin and a usable direction.
// Tracing assumes validated rays; this runs at scene construction.
func (r Ray) Validate() error {
	if !r.Origin.IsPoint() {
		return fmt.Errorf("%w: ray origin must be a point", ErrDegenerateGeometry)
	}
	if !r.Direction.IsVector() {
		return fmt.Errorf("%w: ray direction must be a vector", ErrDegenerateGeometry)
	}
	if r.Direction.Magnitude() < Epsilon {
		return fmt.Errorf("%w: ray direction has zero length", ErrDegenerateGeometry)
	}
	return nil
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies a matrix to both origin and direction, producing the
// ray in another space. The direction is deliberately not renormalized so
// t values remain comparable across spaces.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
