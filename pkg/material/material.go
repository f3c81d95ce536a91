// Package material implements Phong surface materials and the spatial
// color patterns evaluated in object space.
package material

import (
	"fmt"

	"github.com/glintrt/glint/pkg/core"
)

// Material holds the Phong reflection attributes for a surface. Materials
// are shared by reference across shapes and must not change once rendering
// begins.
type Material struct {
	Color           core.Color
	Pattern         Pattern // optional; overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // [0, 1]
	Transparency    float64 // [0, 1]
	RefractiveIndex float64 // > 0; 1.0 is a vacuum
}

// NewMaterial returns a material with the standard defaults: matte white,
// neither reflective nor transparent.
func NewMaterial() *Material {
	return &Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1.0,
	}
}

// Validate checks attribute ranges. Called during scene validation, before
// any rendering starts.
func (m *Material) Validate() error {
	if m.Ambient < 0 || m.Diffuse < 0 || m.Specular < 0 || m.Shininess < 0 {
		return fmt.Errorf("material reflection attributes must be non-negative")
	}
	if m.Reflective < 0 || m.Reflective > 1 {
		return fmt.Errorf("material reflective must be in [0, 1], got %g", m.Reflective)
	}
	if m.Transparency < 0 || m.Transparency > 1 {
		return fmt.Errorf("material transparency must be in [0, 1], got %g", m.Transparency)
	}
	if m.RefractiveIndex <= 0 {
		return fmt.Errorf("material refractive index must be positive, got %g", m.RefractiveIndex)
	}
	return nil
}

// ColorAtObject resolves the material's color at a point given in the
// shape's object space, consulting the pattern when one is set.
func (m *Material) ColorAtObject(objectPoint core.Tuple) core.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return ColorAtObject(m.Pattern, objectPoint)
}
