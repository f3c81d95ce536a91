package renderer

import (
	"fmt"
	"math"

	"github.com/glintrt/glint/pkg/core"
)

// Camera maps pixels to world-space rays. The virtual canvas sits exactly
// one unit in front of the camera (z = -1 in camera space); field of view
// and aspect ratio size it. Immutable once the scene is frozen.
type Camera struct {
	HSize int     // horizontal size in pixels
	VSize int     // vertical size in pixels
	FOV   float64 // field of view in radians

	transform core.Matrix
	inverse   core.Matrix

	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera with an identity transform (eye at the
// origin looking toward -z)
func NewCamera(hsize, vsize int, fov float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera size must be positive, got %dx%d", hsize, vsize)
	}
	if fov <= 0 || fov >= math.Pi {
		return nil, fmt.Errorf("camera field of view must be in (0, pi), got %g", fov)
	}

	c := &Camera{
		HSize:     hsize,
		VSize:     vsize,
		FOV:       fov,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}

	// Half the canvas extent at z=-1; the larger dimension spans the
	// full field of view
	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c, nil
}

// SetTransform sets the world-to-camera transform, usually built with
// core.ViewTransform, and recomputes the cached inverse
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// Transform returns the world-to-camera transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// PixelSize returns the world-space size of one pixel on the canvas plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of the pixel
// at (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// Offsets from the canvas edge to the pixel center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Untransformed canvas-space coordinates; the camera looks toward -z,
	// so +x on the canvas is to the viewer's left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
