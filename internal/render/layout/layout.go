package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitVertical splits rect into left and right parts.
// leftWidthPx is clamped to [0, rect.Dx()].
func SplitVertical(rect image.Rectangle, leftWidthPx int) (left image.Rectangle, right image.Rectangle) {
	rect = Normalize(rect)
	width := rect.Dx()
	if leftWidthPx < 0 {
		leftWidthPx = 0
	}
	if leftWidthPx > width {
		leftWidthPx = width
	}
	left = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+leftWidthPx, rect.Max.Y)
	right = image.Rect(rect.Min.X+leftWidthPx, rect.Min.Y, rect.Max.X, rect.Max.Y)
	return left, right
}

// Inclusive returns the rectangle covering the pixels (x0,y0) through (x1,y1),
// far edges included.
func Inclusive(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1+1, y1+1)
}

// Grid describes square cells laid out in rows of Columns, starting at Origin.
type Grid struct {
	Origin  image.Point
	Columns int
	CellPx  int
	GapPx   int
}

// Cell returns the rectangle of the i-th cell in row-major order. A cell at
// (x, y) covers pixels x through x+CellPx inclusive, so GapPx-1 pixels stay
// visible between neighbours.
func (g Grid) Cell(i int) image.Rectangle {
	cols := g.Columns
	if cols <= 0 {
		cols = 1
	}
	row := i / cols
	col := i % cols
	step := g.CellPx + g.GapPx
	x := g.Origin.X + col*step
	y := g.Origin.Y + row*step
	return Inclusive(x, y, x+g.CellPx, y+g.CellPx)
}

// Cells returns the first n cell rectangles in row-major order.
func (g Grid) Cells(n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	out := make([]image.Rectangle, n)
	for i := range out {
		out[i] = g.Cell(i)
	}
	return out
}

// Bounds returns the smallest rectangle covering the first n cells.
func (g Grid) Bounds(n int) image.Rectangle {
	var bounds image.Rectangle
	for _, cell := range g.Cells(n) {
		bounds = bounds.Union(cell)
	}
	return bounds
}

// Below returns a rectangle of size (widthPx,heightPx) placed marginPx under rect, left-aligned.
func Below(rect image.Rectangle, marginPx, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	top := rect.Max.Y + marginPx
	return image.Rect(rect.Min.X, top, rect.Min.X+widthPx, top+heightPx)
}
