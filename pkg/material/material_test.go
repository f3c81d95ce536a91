package material

import (
	"testing"

	"github.com/glintrt/glint/pkg/core"
)

func TestNewMaterial_Defaults(t *testing.T) {
	m := NewMaterial()

	if !m.Color.Equals(core.White) {
		t.Errorf("Default color should be white, got %v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected Phong defaults: %+v", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 {
		t.Errorf("Default material should be neither reflective nor transparent: %+v", m)
	}
	if m.RefractiveIndex != 1.0 {
		t.Errorf("Default refractive index should be 1.0, got %v", m.RefractiveIndex)
	}
	if m.Pattern != nil {
		t.Error("Default material should have no pattern")
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Material)
		wantErr bool
	}{
		{"defaults are valid", func(*Material) {}, false},
		{"negative ambient", func(m *Material) { m.Ambient = -0.1 }, true},
		{"negative shininess", func(m *Material) { m.Shininess = -1 }, true},
		{"reflective above one", func(m *Material) { m.Reflective = 1.5 }, true},
		{"negative transparency", func(m *Material) { m.Transparency = -0.5 }, true},
		{"zero refractive index", func(m *Material) { m.RefractiveIndex = 0 }, true},
		{"full glass is valid", func(m *Material) { m.Transparency = 1; m.RefractiveIndex = 1.5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMaterial()
			tt.mutate(m)
			err := m.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
		})
	}
}

func TestMaterial_ColorAtObject(t *testing.T) {
	m := NewMaterial()
	m.Color = core.NewColor(1, 0, 0)

	if got := m.ColorAtObject(core.NewPoint(9, 9, 9)); !got.Equals(core.NewColor(1, 0, 0)) {
		t.Errorf("Without a pattern the flat color applies everywhere, got %v", got)
	}

	m.Pattern = NewStripePattern(core.White, core.Black)
	if got := m.ColorAtObject(core.NewPoint(0.5, 0, 0)); !got.Equals(core.White) {
		t.Errorf("Pattern should override the flat color, got %v", got)
	}
	if got := m.ColorAtObject(core.NewPoint(1.5, 0, 0)); !got.Equals(core.Black) {
		t.Errorf("Pattern should override the flat color, got %v", got)
	}
}
