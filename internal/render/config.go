package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Global render configuration for colors and canvas.
var (
	// Background is the canvas fill, slate #0f172a.
	Background = MustHex("#0f172a")
	// Foreground is used for text styles that leave Color unset.
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// Open Graph preview size.
	CanvasWidth  = 1200
	CanvasHeight = 630
)

// Hex parses a "#rrggbb" (or "#rgb") string into an opaque color.
func Hex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// MustHex is Hex for literal colors; it panics on malformed input.
func MustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
