package shapes

import (
	"testing"

	"github.com/glintrt/glint/pkg/core"
)

func TestCube_LocalIntersect(t *testing.T) {
	c := NewCube()

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"+x face", core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0), []float64{4, 6}},
		{"-x face", core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0), []float64{4, 6}},
		{"+y face", core.NewPoint(0.5, 5, 0), core.NewVector(0, -1, 0), []float64{4, 6}},
		{"-y face", core.NewPoint(0.5, -5, 0), core.NewVector(0, 1, 0), []float64{4, 6}},
		{"+z face", core.NewPoint(0.5, 0, 5), core.NewVector(0, 0, -1), []float64{4, 6}},
		{"-z face", core.NewPoint(0.5, 0, -5), core.NewVector(0, 0, 1), []float64{4, 6}},
		{"from inside", core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1), []float64{-1, 1}},
		{"miss diagonal 1", core.NewPoint(-2, 0, 0), core.NewVector(0.2673, 0.5345, 0.8018), nil},
		{"miss diagonal 2", core.NewPoint(0, -2, 0), core.NewVector(0.8018, 0.2673, 0.5345), nil},
		{"miss diagonal 3", core.NewPoint(0, 0, -2), core.NewVector(0.5345, 0.8018, 0.2673), nil},
		{"miss parallel z", core.NewPoint(2, 0, 2), core.NewVector(0, 0, -1), nil},
		{"miss parallel y", core.NewPoint(0, 2, 2), core.NewVector(0, -1, 0), nil},
		{"miss parallel x", core.NewPoint(2, 2, 0), core.NewVector(-1, 0, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction))
			assertTs(t, xs, tt.expected)
		})
	}
}

func TestCube_LocalNormalAt(t *testing.T) {
	c := NewCube()

	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.NewPoint(1, 0.5, -0.8), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -0.2, 0.9), core.NewVector(-1, 0, 0)},
		{core.NewPoint(-0.4, 1, -0.1), core.NewVector(0, 1, 0)},
		{core.NewPoint(0.3, -1, -0.7), core.NewVector(0, -1, 0)},
		{core.NewPoint(-0.6, 0.3, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(0.4, 0.4, -1), core.NewVector(0, 0, -1)},
		// Corners resolve to the x face
		{core.NewPoint(1, 1, 1), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -1, -1), core.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point, nil); !got.Equals(tt.expected) {
			t.Errorf("Normal at %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}
