package core

import (
	"math"
	"testing"
)

func TestTuple_PointAndVectorTags(t *testing.T) {
	p := NewPoint(4, -4, 3)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("NewPoint should produce w=1, got w=%v", p.W)
	}

	v := NewVector(4, -4, 3)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("NewVector should produce w=0, got w=%v", v.W)
	}
}

func TestTuple_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Tuple
		expected Tuple
	}{
		{
			name:     "point plus vector is a point",
			got:      NewPoint(3, -2, 5).Add(NewVector(-2, 3, 1)),
			expected: NewPoint(1, 1, 6),
		},
		{
			name:     "point minus point is a vector",
			got:      NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7)),
			expected: NewVector(-2, -4, -6),
		},
		{
			name:     "point minus vector is a point",
			got:      NewPoint(3, 2, 1).Subtract(NewVector(5, 6, 7)),
			expected: NewPoint(-2, -4, -6),
		},
		{
			name:     "vector minus vector is a vector",
			got:      NewVector(3, 2, 1).Subtract(NewVector(5, 6, 7)),
			expected: NewVector(-2, -4, -6),
		},
		{
			name:     "negation",
			got:      Tuple{1, -2, 3, -4}.Negate(),
			expected: Tuple{-1, 2, -3, 4},
		},
		{
			name:     "scalar multiplication",
			got:      Tuple{1, -2, 3, -4}.Multiply(3.5),
			expected: Tuple{3.5, -7, 10.5, -14},
		},
		{
			name:     "scalar division",
			got:      Tuple{1, -2, 3, -4}.Divide(2),
			expected: Tuple{0.5, -1, 1.5, -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestTuple_Magnitude(t *testing.T) {
	tests := []struct {
		v        Tuple
		expected float64
	}{
		{NewVector(1, 0, 0), 1},
		{NewVector(0, 1, 0), 1},
		{NewVector(0, 0, 1), 1},
		{NewVector(1, 2, 3), math.Sqrt(14)},
		{NewVector(-1, -2, -3), math.Sqrt(14)},
	}

	for _, tt := range tests {
		if got := tt.v.Magnitude(); math.Abs(got-tt.expected) > Epsilon {
			t.Errorf("Magnitude(%v): expected %v, got %v", tt.v, tt.expected, got)
		}
	}
}

func TestTuple_Normalize(t *testing.T) {
	v := NewVector(1, 2, 3).Normalize()
	expected := NewVector(0.26726, 0.53452, 0.80178)
	if !v.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, v)
	}
	if math.Abs(v.Magnitude()-1) > Epsilon {
		t.Errorf("Normalized vector should have magnitude 1, got %v", v.Magnitude())
	}

	if got := NewVector(0, 0, 0).Normalize(); !got.Equals(Tuple{}) {
		t.Errorf("Normalizing a zero vector should yield zero, got %v", got)
	}
}

func TestTuple_DotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)

	if got := a.Dot(b); got != 20 {
		t.Errorf("Expected dot product 20, got %v", got)
	}
	if got := a.Cross(b); !got.Equals(NewVector(-1, 2, -1)) {
		t.Errorf("Expected cross product (-1, 2, -1), got %v", got)
	}
	if got := b.Cross(a); !got.Equals(NewVector(1, -2, 1)) {
		t.Errorf("Expected cross product (1, -2, 1), got %v", got)
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Tuple
		normal   Tuple
		expected Tuple
	}{
		{
			name:     "approaching at 45 degrees",
			v:        NewVector(1, -1, 0),
			normal:   NewVector(0, 1, 0),
			expected: NewVector(1, 1, 0),
		},
		{
			name:     "off a slanted surface",
			v:        NewVector(0, -1, 0),
			normal:   NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			expected: NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Reflect(tt.normal); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColor_Arithmetic(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	if got := c1.Add(c2); !got.Equals(NewColor(1.6, 0.7, 1.0)) {
		t.Errorf("Add: got %v", got)
	}
	if got := c1.Subtract(c2); !got.Equals(NewColor(0.2, 0.5, 0.5)) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := NewColor(0.2, 0.3, 0.4).Scale(2); !got.Equals(NewColor(0.4, 0.6, 0.8)) {
		t.Errorf("Scale: got %v", got)
	}
	if got := NewColor(1, 0.2, 0.4).Multiply(NewColor(0.9, 1, 0.1)); !got.Equals(NewColor(0.9, 0.2, 0.04)) {
		t.Errorf("Multiply: got %v", got)
	}
}
