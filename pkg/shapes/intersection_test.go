package shapes

import (
	"math"
	"testing"

	"github.com/glintrt/glint/pkg/core"
)

func TestHit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name     string
		ts       []float64
		expected float64
		found    bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"lowest nonnegative", []float64{5, 7, -3, 2}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs []Intersection
			for _, tv := range tt.ts {
				xs = append(xs, NewIntersection(tv, s))
			}

			hit, found := Hit(xs)
			if found != tt.found {
				t.Fatalf("Expected found=%t, got %t", tt.found, found)
			}
			if found && hit.T != tt.expected {
				t.Errorf("Expected hit at t=%v, got t=%v", tt.expected, hit.T)
			}
		})
	}
}

func TestHit_SkipsSurfaceAcne(t *testing.T) {
	s := NewSphere()
	xs := []Intersection{
		NewIntersection(core.Epsilon/2, s),
		NewIntersection(3, s),
	}

	hit, found := Hit(xs)
	if !found {
		t.Fatal("Expected a hit")
	}
	if hit.T != 3 {
		t.Errorf("Hits within epsilon of the origin should be skipped, got t=%v", hit.T)
	}
}

func TestIntersection_WorldToObject_NestedGroups(t *testing.T) {
	g1 := NewGroup()
	if err := g1.SetTransform(core.RotationY(math.Pi / 2)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	g2 := NewGroup()
	if err := g2.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	s := NewSphere()
	if err := s.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	g1.AddChild(g2)
	g2.AddChild(s)

	i := Intersection{
		T:      1,
		Object: s,
		worldToObject: s.InverseTransform().
			Multiply(g2.InverseTransform()).
			Multiply(g1.InverseTransform()),
	}

	got := i.WorldToObject(core.NewPoint(-2, 0, -10))
	if !got.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected (0, 0, -1), got %v", got)
	}
}

func TestIntersection_NormalAt_NestedGroups(t *testing.T) {
	g1 := NewGroup()
	if err := g1.SetTransform(core.RotationY(math.Pi / 2)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	g2 := NewGroup()
	if err := g2.SetTransform(core.Scaling(1, 2, 3)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	s := NewSphere()
	if err := s.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	g1.AddChild(g2)
	g2.AddChild(s)

	i := Intersection{
		T:      1,
		Object: s,
		worldToObject: s.InverseTransform().
			Multiply(g2.InverseTransform()).
			Multiply(g1.InverseTransform()),
	}

	got := i.NormalAt(core.NewPoint(1.7321, 1.1547, -5.5774))
	expected := core.NewVector(0.2857, 0.4286, -0.8571)
	if math.Abs(got.X-expected.X) > 1e-3 ||
		math.Abs(got.Y-expected.Y) > 1e-3 ||
		math.Abs(got.Z-expected.Z) > 1e-3 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestIntersect_TagsAccumulatedTransform(t *testing.T) {
	g := NewGroup()
	if err := g.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	s := NewSphere()
	if err := s.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	g.AddChild(s)

	ray := core.NewRay(core.NewPoint(10, 0, -10), core.NewVector(0, 0, 1))
	xs := Intersect(g, ray)
	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}

	// The hit point maps into the sphere's own space through every
	// enclosing transform
	hitPoint := ray.Position(xs[0].T)
	local := xs[0].WorldToObject(hitPoint)
	if math.Abs(local.Subtract(core.NewPoint(0, 0, 0)).Magnitude()-1) > 1e-4 {
		t.Errorf("Hit point should map onto the unit sphere surface, got %v", local)
	}
}
