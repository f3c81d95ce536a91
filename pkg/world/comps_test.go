package world

import (
	"math"
	"testing"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/shapes"
)

func TestPrepareComputations_Outside(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	s := shapes.NewSphere()
	hit := shapes.NewIntersection(4, s)

	comps := PrepareComputations(hit, ray, nil)

	if comps.T != 4 || comps.Object != s {
		t.Error("Comps should carry the hit's t and object")
	}
	if !comps.Point.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected point (0, 0, -1), got %v", comps.Point)
	}
	if !comps.EyeV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected eye vector (0, 0, -1), got %v", comps.EyeV)
	}
	if !comps.NormalV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normal (0, 0, -1), got %v", comps.NormalV)
	}
	if comps.Inside {
		t.Error("Hit from outside should not be flagged inside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	s := shapes.NewSphere()
	hit := shapes.NewIntersection(1, s)

	comps := PrepareComputations(hit, ray, nil)

	if !comps.Inside {
		t.Error("Hit from inside should be flagged")
	}
	// Normal is flipped toward the eye
	if !comps.NormalV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected flipped normal (0, 0, -1), got %v", comps.NormalV)
	}
}

func TestPrepareComputations_OffsetPoints(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	s := shapes.NewGlassSphere()
	if err := s.SetTransform(core.Translation(0, 0, 1)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	hit := shapes.NewIntersection(5, s)

	comps := PrepareComputations(hit, ray, nil)

	if comps.OverPoint.Z >= -core.Epsilon/2 {
		t.Errorf("OverPoint should sit above the surface, got z=%v", comps.OverPoint.Z)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Error("OverPoint should be offset toward the eye")
	}
	if comps.UnderPoint.Z <= core.Epsilon/2 {
		t.Errorf("UnderPoint should sit below the surface, got z=%v", comps.UnderPoint.Z)
	}
}

func TestPrepareComputations_ReflectionVector(t *testing.T) {
	p := shapes.NewPlane()
	ray := core.NewRay(core.NewPoint(0, 1, -1), core.NewVector(0, -math.Sqrt2/2, math.Sqrt2/2))
	hit := shapes.NewIntersection(math.Sqrt2, p)

	comps := PrepareComputations(hit, ray, nil)
	if !comps.ReflectV.Equals(core.NewVector(0, math.Sqrt2/2, math.Sqrt2/2)) {
		t.Errorf("Expected reflection (0, sqrt2/2, sqrt2/2), got %v", comps.ReflectV)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := shapes.NewGlassSphere()
	if err := a.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	a.Material().RefractiveIndex = 1.5

	b := shapes.NewGlassSphere()
	if err := b.SetTransform(core.Translation(0, 0, -0.25)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	b.Material().RefractiveIndex = 2.0

	c := shapes.NewGlassSphere()
	if err := c.SetTransform(core.Translation(0, 0, 0.25)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	c.Material().RefractiveIndex = 2.5

	ray := core.NewRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	xs := []shapes.Intersection{
		shapes.NewIntersection(2, a),
		shapes.NewIntersection(2.75, b),
		shapes.NewIntersection(3.25, c),
		shapes.NewIntersection(4.75, b),
		shapes.NewIntersection(5.25, c),
		shapes.NewIntersection(6, a),
	}

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, want := range expected {
		comps := PrepareComputations(xs[i], ray, xs)
		if comps.N1 != want.n1 || comps.N2 != want.n2 {
			t.Errorf("xs[%d]: expected n1=%v n2=%v, got n1=%v n2=%v", i, want.n1, want.n2, comps.N1, comps.N2)
		}
	}
}

func TestSchlick(t *testing.T) {
	t.Run("total internal reflection", func(t *testing.T) {
		s := shapes.NewGlassSphere()
		ray := core.NewRay(core.NewPoint(0, 0, math.Sqrt2/2), core.NewVector(0, 1, 0))
		xs := []shapes.Intersection{
			shapes.NewIntersection(-math.Sqrt2/2, s),
			shapes.NewIntersection(math.Sqrt2/2, s),
		}

		comps := PrepareComputations(xs[1], ray, xs)
		if got := Schlick(comps); got != 1.0 {
			t.Errorf("Expected reflectance 1.0, got %v", got)
		}
	})

	t.Run("perpendicular viewing angle", func(t *testing.T) {
		s := shapes.NewGlassSphere()
		ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))
		xs := []shapes.Intersection{
			shapes.NewIntersection(-1, s),
			shapes.NewIntersection(1, s),
		}

		comps := PrepareComputations(xs[1], ray, xs)
		if got := Schlick(comps); math.Abs(got-0.04) > 1e-4 {
			t.Errorf("Expected reflectance 0.04, got %v", got)
		}
	})

	t.Run("small angle with n2 greater than n1", func(t *testing.T) {
		s := shapes.NewGlassSphere()
		ray := core.NewRay(core.NewPoint(0, 0.99, -2), core.NewVector(0, 0, 1))
		xs := []shapes.Intersection{shapes.NewIntersection(1.8589, s)}

		comps := PrepareComputations(xs[0], ray, xs)
		if got := Schlick(comps); math.Abs(got-0.48873) > 1e-4 {
			t.Errorf("Expected reflectance 0.48873, got %v", got)
		}
	})
}
