package shapes

import (
	"math"
	"testing"

	"github.com/glintrt/glint/pkg/core"
)

func TestCylinder_LocalIntersect_Misses(t *testing.T) {
	cyl := NewCylinder()

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
	}{
		{"on the surface pointing up", core.NewPoint(1, 0, 0), core.NewVector(0, 1, 0)},
		{"inside pointing up", core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0)},
		{"outside askew", core.NewPoint(0, 0, -5), core.NewVector(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := cyl.LocalIntersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != 0 {
				t.Errorf("Expected miss, got %d intersections", len(xs))
			}
		})
	}
}

func TestCylinder_LocalIntersect_Hits(t *testing.T) {
	cyl := NewCylinder()

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"tangent", core.NewPoint(1, 0, -5), core.NewVector(0, 0, 1), []float64{5, 5}},
		{"through the center", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), []float64{4, 6}},
		{"at an angle", core.NewPoint(0.5, 0, -5), core.NewVector(0.1, 1, 1), []float64{6.80798, 7.08872}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := cyl.LocalIntersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			assertTs(t, xs, tt.expected)
		})
	}
}

func TestCylinder_LocalIntersect_Truncated(t *testing.T) {
	cyl := NewCylinder()
	cyl.Minimum = 1
	cyl.Maximum = 2

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"diagonal escape", core.NewPoint(0, 1.5, 0), core.NewVector(0.1, 1, 0), 0},
		{"above", core.NewPoint(0, 3, -5), core.NewVector(0, 0, 1), 0},
		{"below", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), 0},
		{"exactly at the maximum", core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1), 0},
		{"exactly at the minimum", core.NewPoint(0, 1, -5), core.NewVector(0, 0, 1), 0},
		{"through the middle", core.NewPoint(0, 1.5, -2), core.NewVector(0, 0, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := cyl.LocalIntersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_LocalIntersect_Capped(t *testing.T) {
	cyl := NewCylinder()
	cyl.Minimum = 1
	cyl.Maximum = 2
	cyl.Closed = true

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"down through both caps", core.NewPoint(0, 3, 0), core.NewVector(0, -1, 0), 2},
		{"diagonally through both caps", core.NewPoint(0, 3, -2), core.NewVector(0, -1, 2), 2},
		{"through a cap edge from above", core.NewPoint(0, 4, -2), core.NewVector(0, -1, 1), 2},
		{"diagonally up through both caps", core.NewPoint(0, 0, -2), core.NewVector(0, 1, 2), 2},
		{"through a cap edge from below", core.NewPoint(0, -1, -2), core.NewVector(0, 1, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := cyl.LocalIntersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_LocalNormalAt(t *testing.T) {
	t.Run("wall", func(t *testing.T) {
		cyl := NewCylinder()
		tests := []struct {
			point    core.Tuple
			expected core.Tuple
		}{
			{core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
			{core.NewPoint(0, 5, -1), core.NewVector(0, 0, -1)},
			{core.NewPoint(0, -2, 1), core.NewVector(0, 0, 1)},
			{core.NewPoint(-1, 1, 0), core.NewVector(-1, 0, 0)},
		}
		for _, tt := range tests {
			if got := cyl.LocalNormalAt(tt.point, nil); !got.Equals(tt.expected) {
				t.Errorf("Normal at %v: expected %v, got %v", tt.point, tt.expected, got)
			}
		}
	})

	t.Run("caps", func(t *testing.T) {
		cyl := NewCylinder()
		cyl.Minimum = 1
		cyl.Maximum = 2
		cyl.Closed = true

		tests := []struct {
			point    core.Tuple
			expected core.Tuple
		}{
			{core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0)},
			{core.NewPoint(0.5, 1, 0), core.NewVector(0, -1, 0)},
			{core.NewPoint(0, 1, 0.5), core.NewVector(0, -1, 0)},
			{core.NewPoint(0, 2, 0), core.NewVector(0, 1, 0)},
			{core.NewPoint(0.5, 2, 0), core.NewVector(0, 1, 0)},
			{core.NewPoint(0, 2, 0.5), core.NewVector(0, 1, 0)},
		}
		for _, tt := range tests {
			if got := cyl.LocalNormalAt(tt.point, nil); !got.Equals(tt.expected) {
				t.Errorf("Normal at %v: expected %v, got %v", tt.point, tt.expected, got)
			}
		}
	})
}

func TestCylinder_Defaults(t *testing.T) {
	cyl := NewCylinder()
	if !math.IsInf(cyl.Minimum, -1) || !math.IsInf(cyl.Maximum, 1) {
		t.Errorf("New cylinder should be unbounded, got [%v, %v]", cyl.Minimum, cyl.Maximum)
	}
	if cyl.Closed {
		t.Error("New cylinder should be open")
	}
}
