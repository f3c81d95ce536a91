package scene

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/material"
	"github.com/glintrt/glint/pkg/renderer"
	"github.com/glintrt/glint/pkg/shapes"
	"github.com/glintrt/glint/pkg/world"
)

// NewCSGScene builds a constructive-solid-geometry demo: a cube with a
// sphere carved out of it, next to the lens-shaped intersection of two
// spheres, on a striped floor.
func NewCSGScene(width, height int) (*Scene, error) {
	floor := shapes.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Specular = 0
	floorMat.Pattern = material.NewStripePattern(
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.6, 0.6, 0.7),
	)
	floor.SetMaterial(floorMat)

	// Cube minus sphere: a rounded scoop out of one corner
	cube := shapes.NewCube()
	cube.SetMaterial(solidColor(0.9, 0.2, 0.2))

	scoop := shapes.NewSphere()
	mustSetTransform(scoop, core.Translation(0.5, 1, -0.5), core.Scaling(0.8, 0.8, 0.8))
	scoop.SetMaterial(solidColor(0.2, 0.2, 0.9))

	carved, err := shapes.NewCSG(shapes.OpDifference, cube, scoop)
	if err != nil {
		return nil, err
	}
	mustSetTransform(carved, core.Translation(-1.2, 1, 0.5), core.RotationY(math.Pi/5))

	// Two overlapping spheres intersected into a lens
	lensA := shapes.NewSphere()
	lensA.SetMaterial(solidColor(0.2, 0.8, 0.4))
	lensB := shapes.NewSphere()
	mustSetTransform(lensB, core.Translation(0, 0, 0.7))
	lensB.SetMaterial(solidColor(0.2, 0.8, 0.4))

	lens, err := shapes.NewCSG(shapes.OpIntersection, lensA, lensB)
	if err != nil {
		return nil, err
	}
	mustSetTransform(lens, core.Translation(1.4, 1, -0.3), core.RotationX(-math.Pi/8))

	w := world.NewWorld()
	w.Lights = []world.PointLight{
		world.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
		world.NewPointLight(core.NewPoint(8, 6, -8), core.NewColor(0.3, 0.3, 0.35)),
	}
	w.Objects = []shapes.Shape{floor, carved, lens}

	camera, err := renderer.NewCamera(width, height, math.Pi/3)
	if err != nil {
		return nil, err
	}
	if err := camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)); err != nil {
		return nil, err
	}

	return &Scene{
		Name:        "csg",
		Description: "Boolean solids: a carved cube and a lens",
		World:       w,
		Camera:      camera,
	}, nil
}
