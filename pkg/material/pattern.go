package material

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
)

// Pattern computes a color as a pure function of a point in pattern space.
// Each pattern carries its own transform; ColorAtObject shifts an
// object-space point into pattern space before evaluating.
type Pattern interface {
	ColorAt(patternPoint core.Tuple) core.Color
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix) error
}

// basePattern holds the transform plumbing shared by every pattern
type basePattern struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newBasePattern() basePattern {
	return basePattern{transform: core.Identity(), inverse: core.Identity()}
}

// InverseTransform returns the cached inverse of the pattern transform
func (b *basePattern) InverseTransform() core.Matrix {
	return b.inverse
}

// SetTransform replaces the pattern transform, recomputing the cached
// inverse. A singular matrix is rejected.
func (b *basePattern) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inv
	return nil
}

// ColorAtObject evaluates a pattern at a point given in the owning shape's
// object space, applying the pattern's own transform first.
func ColorAtObject(p Pattern, objectPoint core.Tuple) core.Color {
	patternPoint := p.InverseTransform().MultiplyTuple(objectPoint)
	return p.ColorAt(patternPoint)
}

// SolidPattern is a single constant color
type SolidPattern struct {
	basePattern
	Color core.Color
}

// NewSolidPattern creates a pattern that always yields one color
func NewSolidPattern(c core.Color) *SolidPattern {
	return &SolidPattern{basePattern: newBasePattern(), Color: c}
}

// ColorAt returns the solid color regardless of position
func (p *SolidPattern) ColorAt(core.Tuple) core.Color {
	return p.Color
}

// StripePattern alternates two colors by the parity of floor(x)
type StripePattern struct {
	basePattern
	A, B core.Color
}

// NewStripePattern creates a stripe pattern alternating along x
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt alternates between the two colors along the x axis
func (p *StripePattern) ColorAt(pt core.Tuple) core.Color {
	if int(math.Floor(pt.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern linearly interpolates between two colors along x
type GradientPattern struct {
	basePattern
	A, B core.Color
}

// NewGradientPattern creates a linear gradient along x
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt blends A toward B using the fractional part of x
func (p *GradientPattern) ColorAt(pt core.Tuple) core.Color {
	distance := p.B.Subtract(p.A)
	fraction := pt.X - math.Floor(pt.X)
	return p.A.Add(distance.Scale(fraction))
}

// RingPattern alternates two colors in concentric rings around the y axis
type RingPattern struct {
	basePattern
	A, B core.Color
}

// NewRingPattern creates a ring pattern in the xz plane
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt alternates by the floor of the radial distance in xz
func (p *RingPattern) ColorAt(pt core.Tuple) core.Color {
	if int(math.Floor(math.Sqrt(pt.X*pt.X+pt.Z*pt.Z)))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckerPattern alternates two colors in a 3D checkerboard
type CheckerPattern struct {
	basePattern
	A, B core.Color
}

// NewCheckerPattern creates a 3D checker pattern
func NewCheckerPattern(a, b core.Color) *CheckerPattern {
	return &CheckerPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt alternates by the parity of floor(x)+floor(y)+floor(z)
func (p *CheckerPattern) ColorAt(pt core.Tuple) core.Color {
	sum := int(math.Floor(pt.X)) + int(math.Floor(pt.Y)) + int(math.Floor(pt.Z))
	if sum%2 == 0 {
		return p.A
	}
	return p.B
}

// BlendPattern averages two nested patterns, each evaluated through its
// own transform
type BlendPattern struct {
	basePattern
	A, B Pattern
}

// NewBlendPattern creates a pattern averaging two child patterns
func NewBlendPattern(a, b Pattern) *BlendPattern {
	return &BlendPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt evaluates both children at the point and averages the result
func (p *BlendPattern) ColorAt(pt core.Tuple) core.Color {
	ca := ColorAtObject(p.A, pt)
	cb := ColorAtObject(p.B, pt)
	return ca.Add(cb).Scale(0.5)
}
