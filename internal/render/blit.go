package render

import (
	"image"
	"image/color"
)

type pixelSink interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// blit copies src into dst via nearest-neighbor scaling.
func blit(dst pixelSink, src image.Image) {
	bounds := dst.Bounds()
	dstWidth := bounds.Dx()
	dstHeight := bounds.Dy()
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Dx()
	srcHeight := srcBounds.Dy()
	if dstWidth == 0 || dstHeight == 0 || srcWidth == 0 || srcHeight == 0 {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := srcBounds.Min.Y + (y*srcHeight)/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := srcBounds.Min.X + (x*srcWidth)/dstWidth
			r, g, b, _ := src.At(sx, sy).RGBA()
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
}
