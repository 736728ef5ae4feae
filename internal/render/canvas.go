package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is an in-memory RGBA raster implementing Drawer.
type Canvas struct {
	img   *image.RGBA
	dc    *gg.Context
	fonts *FontSet

	// Background is the color used by FillBackground.
	Background color.Color
}

// NewCanvas allocates a width x height canvas filled with Background.
// A nil fonts uses DefaultFontSet.
func NewCanvas(width, height int, fonts *FontSet) *Canvas {
	if fonts == nil {
		fonts = DefaultFontSet()
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := &Canvas{
		img:        img,
		dc:         gg.NewContextForRGBA(img),
		fonts:      fonts,
		Background: Background,
	}
	c.FillBackground()
	return c
}

// Image returns the backing raster. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: c.Background}, image.Point{}, draw.Src)
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	face := c.fonts.Face(style.Role)
	width := font.MeasureString(face, text).Ceil()
	return metricsFor(face, width)
}

// DrawText draws text with its top-left corner at (x, y); the baseline sits
// one ascent below y.
func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	face := c.fonts.Face(style.Role)
	textColor := style.Color
	if textColor == nil {
		textColor = Foreground
	}
	ascent := face.Metrics().Ascent.Ceil()
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(x, y+ascent),
	}
	width := drawer.MeasureString(text).Ceil()
	drawer.DrawString(text)
	return metricsFor(face, width)
}

func (c *Canvas) FillRect(rect image.Rectangle, fill color.Color) {
	draw.Draw(c.img, rect, &image.Uniform{C: fill}, image.Point{}, draw.Over)
}

// FillRoundedRect fills rect with antialiased corners of the given radius.
func (c *Canvas) FillRoundedRect(rect image.Rectangle, radius float64, fill color.Color) {
	c.dc.SetColor(fill)
	c.dc.DrawRoundedRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), radius)
	c.dc.Fill()
}

func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle) {
	if img == nil || rect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.img, rect, img, img.Bounds(), xdraw.Over, nil)
}

func metricsFor(face font.Face, width int) TextMetrics {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	return TextMetrics{
		Width:   width,
		Height:  ascent + descent,
		Ascent:  ascent,
		Descent: descent,
	}
}
