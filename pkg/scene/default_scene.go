package scene

import (
	"math"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/material"
	"github.com/glintrt/glint/pkg/renderer"
	"github.com/glintrt/glint/pkg/shapes"
	"github.com/glintrt/glint/pkg/world"
)

// NewDefaultScene builds the standard demo: three spheres on a checkered
// floor, one matte, one mirrored, one glass, lit by a single point light.
func NewDefaultScene(width, height int) (*Scene, error) {
	floor := shapes.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Specular = 0
	floorMat.Reflective = 0.1
	floorMat.Pattern = material.NewCheckerPattern(
		core.NewColor(0.85, 0.85, 0.85),
		core.NewColor(0.25, 0.25, 0.25),
	)
	floor.SetMaterial(floorMat)

	middle := shapes.NewSphere()
	mustSetTransform(middle, core.Translation(-0.5, 1, 0.5))
	middleMat := solidColor(0.1, 1, 0.5)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middle.SetMaterial(middleMat)

	right := shapes.NewSphere()
	mustSetTransform(right, core.Translation(1.5, 0.5, -0.5), core.Scaling(0.5, 0.5, 0.5))
	rightMat := material.NewMaterial()
	rightMat.Color = core.NewColor(0.8, 0.8, 0.9)
	rightMat.Diffuse = 0.3
	rightMat.Specular = 1
	rightMat.Shininess = 300
	rightMat.Reflective = 0.9
	right.SetMaterial(rightMat)

	left := shapes.NewGlassSphere()
	mustSetTransform(left, core.Translation(-1.5, 0.33, -0.75), core.Scaling(0.33, 0.33, 0.33))
	left.Material().Reflective = 0.3
	left.Material().Diffuse = 0.1
	left.Material().Ambient = 0.05

	w := world.NewWorld()
	w.Lights = []world.PointLight{
		world.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
	}
	w.Objects = []shapes.Shape{floor, middle, right, left}

	camera, err := renderer.NewCamera(width, height, math.Pi/3)
	if err != nil {
		return nil, err
	}
	if err := camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)); err != nil {
		return nil, err
	}

	return &Scene{
		Name:        "default",
		Description: "Three spheres on a checkered floor",
		World:       w,
		Camera:      camera,
	}, nil
}
