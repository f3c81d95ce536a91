package world

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/material"
)

// PointLight is a dimensionless light source with a position and an
// intensity color. Immutable after creation.
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting computes the Phong contribution of a single light at a surface
// point: ambient always applies; diffuse and specular are dropped when the
// point is shadowed or the light is behind the surface. The objectPoint is
// the surface point in the shape's object space, used for pattern lookup.
func Lighting(m *material.Material, objectPoint core.Tuple, light PointLight, point, eyeV, normalV core.Tuple, inShadow bool) core.Color {
	surfaceColor := m.ColorAtObject(objectPoint)
	effectiveColor := surfaceColor.Multiply(light.Intensity)

	ambient := effectiveColor.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	lightV := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightV.Dot(normalV)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectV := lightV.Negate().Reflect(normalV)
	reflectDotEye := reflectV.Dot(eyeV)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
