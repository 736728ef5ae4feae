package render

import (
	"image"
	"image/color"
)

// Screen composes a full image using the primitives of a Drawer.
type Screen interface {
	Draw(d Drawer)
}

// Drawer is an abstraction the renderer provides to screens to draw primitives
// without exposing the underlying raster or font handling.
type Drawer interface {
	// Size returns the canvas size (in pixels) that screens draw into.
	Size() (width int, height int)

	FillBackground()

	// Text primitives. Coordinates are the top-left corner of the line.
	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	// Shape primitives.
	FillRect(rect image.Rectangle, c color.Color)
	FillRoundedRect(rect image.Rectangle, radius float64, c color.Color)

	// DrawImageInRect scales img into rect with nearest-neighbor sampling.
	DrawImageInRect(img image.Image, rect image.Rectangle)
}

// FontRole selects one of the faces of a FontSet.
type FontRole int

const (
	FontTitle FontRole = iota
	FontSubtitle
	FontSmall
	FontURL

	fontRoleCount
)

func (role FontRole) String() string {
	switch role {
	case FontTitle:
		return "title"
	case FontSubtitle:
		return "subtitle"
	case FontSmall:
		return "small"
	case FontURL:
		return "url"
	default:
		return "unknown"
	}
}

// TextStyle describes how to render text.
type TextStyle struct {
	Color color.Color // nil means Foreground
	Role  FontRole
}

type TextMetrics struct {
	Width   int
	Height  int
	Ascent  int
	Descent int
}
