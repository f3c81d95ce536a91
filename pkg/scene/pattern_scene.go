package scene

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/material"
	"github.com/glintrt/glint/pkg/renderer"
	"github.com/glintrt/glint/pkg/shapes"
	"github.com/glintrt/glint/pkg/world"
)

// NewPatternScene builds a row of primitives, each showing off one
// pattern type: stripes on a sphere, a gradient on a cube, rings on a
// cylinder, and a checkered cone, over a blended floor.
func NewPatternScene(width, height int) (*Scene, error) {
	floor := shapes.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Specular = 0
	ringFloor := material.NewRingPattern(core.NewColor(0.9, 0.9, 0.85), core.NewColor(0.5, 0.55, 0.5))
	checkFloor := material.NewCheckerPattern(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.4, 0.4, 0.4))
	floorMat.Pattern = material.NewBlendPattern(ringFloor, checkFloor)
	floor.SetMaterial(floorMat)

	striped := shapes.NewSphere()
	mustSetTransform(striped, core.Translation(-3, 1, 1))
	stripedMat := material.NewMaterial()
	stripes := material.NewStripePattern(core.NewColor(0.9, 0.3, 0.3), core.NewColor(0.95, 0.95, 0.95))
	if err := stripes.SetTransform(core.Scaling(0.25, 0.25, 0.25).Multiply(core.RotationZ(math.Pi / 4))); err != nil {
		return nil, err
	}
	stripedMat.Pattern = stripes
	striped.SetMaterial(stripedMat)

	graded := shapes.NewCube()
	mustSetTransform(graded, core.Translation(-1, 1, 1), core.RotationY(math.Pi/6))
	gradedMat := material.NewMaterial()
	gradient := material.NewGradientPattern(core.NewColor(0.1, 0.3, 0.9), core.NewColor(0.9, 0.85, 0.2))
	if err := gradient.SetTransform(core.Translation(-1, 0, 0).Multiply(core.Scaling(2, 1, 1))); err != nil {
		return nil, err
	}
	gradedMat.Pattern = gradient
	graded.SetMaterial(gradedMat)

	ringed := shapes.NewCylinder()
	ringed.Minimum = 0
	ringed.Maximum = 2
	ringed.Closed = true
	mustSetTransform(ringed, core.Translation(1, 0, 1))
	ringedMat := material.NewMaterial()
	rings := material.NewRingPattern(core.NewColor(0.2, 0.6, 0.3), core.NewColor(0.9, 0.9, 0.9))
	if err := rings.SetTransform(core.Scaling(0.2, 0.2, 0.2)); err != nil {
		return nil, err
	}
	ringedMat.Pattern = rings
	ringed.SetMaterial(ringedMat)

	checkered := shapes.NewCone()
	checkered.Minimum = -1
	checkered.Maximum = 0
	checkered.Closed = true
	mustSetTransform(checkered, core.Translation(3, 1, 1), core.Scaling(1, 1, 1))
	checkeredMat := material.NewMaterial()
	checks := material.NewCheckerPattern(core.NewColor(0.8, 0.5, 0.2), core.NewColor(0.3, 0.2, 0.1))
	if err := checks.SetTransform(core.Scaling(0.3, 0.3, 0.3)); err != nil {
		return nil, err
	}
	checkeredMat.Pattern = checks
	checkered.SetMaterial(checkeredMat)

	w := world.NewWorld()
	w.Lights = []world.PointLight{
		world.NewPointLight(core.NewPoint(-10, 12, -10), core.White),
	}
	w.Objects = []shapes.Shape{floor, striped, graded, ringed, checkered}

	camera, err := renderer.NewCamera(width, height, math.Pi/2.5)
	if err != nil {
		return nil, err
	}
	if err := camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -5),
		core.NewPoint(0, 1, 1),
		core.NewVector(0, 1, 0),
	)); err != nil {
		return nil, err
	}

	return &Scene{
		Name:        "patterns",
		Description: "One primitive per pattern type",
		World:       w,
		Camera:      camera,
	}, nil
}
