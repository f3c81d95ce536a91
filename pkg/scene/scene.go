// Package scene assembles worlds and cameras into renderable scenes,
// validates them, and exposes a named registry of built-in demo scenes
// for the CLI and the web server.
package scene

import (
	"fmt"

	"github.com/glintrt/glint/pkg/material"
	"github.com/glintrt/glint/pkg/renderer"
	"github.com/glintrt/glint/pkg/shapes"
	"github.com/glintrt/glint/pkg/world"
)

// Scene pairs a world with a camera. After Validate succeeds the scene is
// considered frozen: nothing may be mutated before or during rendering.
type Scene struct {
	Name        string
	Description string
	World       *world.World
	Camera      *renderer.Camera
}

// Validate checks the scene for construction errors the tracer assumes
// away: missing camera or lights, invalid material attributes, and
// inverted truncation ranges. Construction must finish before rendering;
// this is the gate.
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene %q has no camera", s.Name)
	}
	if s.World == nil {
		return fmt.Errorf("scene %q has no world", s.Name)
	}
	if len(s.World.Lights) == 0 {
		return fmt.Errorf("scene %q has no light sources", s.Name)
	}

	for i, obj := range s.World.Objects {
		if err := validateShape(obj); err != nil {
			return fmt.Errorf("scene %q object %d: %w", s.Name, i, err)
		}
	}
	return nil
}

// validateShape checks one shape and recurses into composites. Composite
// bounds are computed here so render workers only ever read them.
func validateShape(s shapes.Shape) error {
	switch node := s.(type) {
	case *shapes.Group:
		for _, child := range node.Children() {
			if err := validateShape(child); err != nil {
				return err
			}
		}
		node.Bounds()
		return nil
	case *shapes.CSG:
		if err := validateShape(node.Left()); err != nil {
			return err
		}
		if err := validateShape(node.Right()); err != nil {
			return err
		}
		node.Bounds()
		return nil
	case *shapes.Cylinder:
		if node.Minimum >= node.Maximum {
			return fmt.Errorf("cylinder truncation range inverted: [%g, %g]", node.Minimum, node.Maximum)
		}
	case *shapes.Cone:
		if node.Minimum >= node.Maximum {
			return fmt.Errorf("cone truncation range inverted: [%g, %g]", node.Minimum, node.Maximum)
		}
	}

	if m := s.Material(); m != nil {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// solidColor builds a default material with the given color; builders use
// it for simple matte surfaces
func solidColor(r, g, b float64) *material.Material {
	m := material.NewMaterial()
	m.Color.R, m.Color.G, m.Color.B = r, g, b
	return m
}
