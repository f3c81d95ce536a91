// Package world holds the scene container and the recursive shading
// engine: Phong lighting, shadow tests, and bounded reflection/refraction.
package world

import (
	"math"
	"sort"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/material"
	"github.com/glintrt/glint/pkg/shapes"
)

// DefaultMaxDepth bounds the reflection/refraction recursion. Five levels
// is enough for mirror-facing mirrors to fade out convincingly.
const DefaultMaxDepth = 5

// World owns the light sources and the shape tree. Built once per render
// and read-only while tracing, which is what makes parallel pixel
// evaluation safe without locks.
type World struct {
	Lights  []PointLight
	Objects []shapes.Shape
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// DefaultWorld creates the two-sphere reference world used throughout the
// test suite: a white light at (-10, 10, -10), an outer sphere with a
// green-ish matte material, and an inner half-scale sphere.
func DefaultWorld() *World {
	s1 := shapes.NewSphere()
	m1 := material.NewMaterial()
	m1.Color = core.NewColor(0.8, 1.0, 0.6)
	m1.Diffuse = 0.7
	m1.Specular = 0.2
	s1.SetMaterial(m1)

	s2 := shapes.NewSphere()
	if err := s2.SetTransform(core.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err) // scaling by 0.5 is never singular
	}

	return &World{
		Lights:  []PointLight{NewPointLight(core.NewPoint(-10, 10, -10), core.White)},
		Objects: []shapes.Shape{s1, s2},
	}
}

// Intersect casts a ray against every object in the world and returns all
// hits sorted ascending by t. This sequence feeds both primary visibility
// and shadow tests.
func (w *World) Intersect(ray core.Ray) []shapes.Intersection {
	var xs []shapes.Intersection
	for _, obj := range w.Objects {
		xs = append(xs, shapes.Intersect(obj, ray)...)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// ColorAt traces a ray into the world and returns its color. Rays that hit
// nothing yield black. The remaining parameter bounds recursion into
// reflection and refraction; depth exhaustion is not an error, it simply
// contributes black.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := shapes.Hit(xs)
	if !ok {
		return core.Black
	}

	comps := PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the color at a precomputed hit: the Phong contribution
// of every light, plus reflected and refracted contributions. When the
// material is both reflective and transparent, the Schlick reflectance
// weights the two so energy is split plausibly at the boundary.
func (w *World) ShadeHit(comps Comps, remaining int) core.Color {
	m := comps.Object.Material()

	surface := core.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(Lighting(m, comps.ObjectPoint, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}

	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether an object blocks the path from the point to
// the light. Only hits strictly closer than the light count.
func (w *World) IsShadowed(point core.Tuple, light PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()

	ray := core.NewRay(point, toLight.Normalize())
	hit, ok := shapes.Hit(w.Intersect(ray))
	return ok && hit.T < distance
}

// ReflectedColor traces the reflection bounce for a hit on a reflective
// material, scaled by the reflective coefficient. Returns black for
// non-reflective materials or when the depth budget is spent.
func (w *World) ReflectedColor(comps Comps, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}

	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Scale(reflective)
}

// RefractedColor traces the transmitted ray through a transparent
// material using Snell's law, scaled by the transparency coefficient.
// Returns black for opaque materials, spent depth budgets, or total
// internal reflection.
func (w *World) RefractedColor(comps Comps, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}

	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return core.Black
	}

	// Snell's law: sin(i)/sin(t) = n2/n1. A transmitted-angle sine above
	// one means total internal reflection.
	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Scale(transparency)
}
