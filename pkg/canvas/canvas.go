// Package canvas provides the output pixel buffer and image-file
// serialization: plain-text PPM, PNG, and TIFF.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/glintrt/glint/pkg/core"
)

// Canvas is a fixed-size buffer of linear colors. Values may exceed [0, 1]
// while rendering; clamping happens at export.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// SetPixel writes a color at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col core.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// clampChannel maps a linear channel value to an 8-bit value, clamping to
// [0, 255]
func clampChannel(v float64) uint8 {
	scaled := v * 255
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled + 0.5)
}

// ToImage converts the canvas to an 8-bit RGBA image with clamping
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			px := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: clampChannel(px.R),
				G: clampChannel(px.G),
				B: clampChannel(px.B),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM serializes the canvas as a plain-text PPM (P3) file with a
// maximum channel value of 255. Lines are kept at or under 70 characters
// for strict readers.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	const maxLine = 70
	for y := 0; y < c.Height; y++ {
		var line strings.Builder
		for x := 0; x < c.Width; x++ {
			px := c.PixelAt(x, y)
			for _, v := range []uint8{clampChannel(px.R), clampChannel(px.G), clampChannel(px.B)} {
				entry := fmt.Sprintf("%d", v)
				if line.Len() > 0 && line.Len()+1+len(entry) > maxLine {
					if _, err := fmt.Fprintln(w, line.String()); err != nil {
						return err
					}
					line.Reset()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(entry)
			}
		}
		if line.Len() > 0 {
			if _, err := fmt.Fprintln(w, line.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// WriteTIFF encodes the canvas as an uncompressed TIFF
func (c *Canvas) WriteTIFF(w io.Writer) error {
	return tiff.Encode(w, c.ToImage(), nil)
}

// Encode writes the canvas in the named format: "png", "ppm", or "tiff"
func (c *Canvas) Encode(w io.Writer, format string) error {
	switch format {
	case "png":
		return c.WritePNG(w)
	case "ppm":
		return c.WritePPM(w)
	case "tiff":
		return c.WriteTIFF(w)
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
}
