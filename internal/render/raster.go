package render

import (
	"image"
	"image/color"
	"math"
)

// Rasterize draws an op list into a new RGBA image of the given size.
// The area outside the canvas rectangle is filled with the backdrop
// color. This software path backs both the on-screen widget raster and
// the headless preview tool.
func Rasterize(ops []Op, w, h int, backdrop color.RGBA) *image.RGBA {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			output.SetRGBA(x, y, backdrop)
		}
	}
	for _, op := range ops {
		drawOp(output, op)
	}
	return output
}

func drawOp(output *image.RGBA, op Op) {
	switch op.Kind {
	case OpFillRect:
		fillRect(output, op.Rect.X, op.Rect.Y, op.Rect.Right(), op.Rect.Bottom(), op.Color)
	case OpOutlineRect:
		outlineRect(output, op.Rect.X, op.Rect.Y, op.Rect.Right(), op.Rect.Bottom(), int(math.Ceil(op.Width)), op.Color)
	case OpSegment:
		thickness := int(math.Round(op.Width))
		if thickness < 1 {
			thickness = 1
		}
		drawLine(output, int(math.Round(op.A.X)), int(math.Round(op.A.Y)),
			int(math.Round(op.B.X)), int(math.Round(op.B.Y)), op.Color, thickness)
		// Round caps
		fillCircle(output, op.A.X, op.A.Y, op.Width/2, op.Color)
		fillCircle(output, op.B.X, op.B.Y, op.Width/2, op.Color)
	case OpDot:
		fillCircle(output, op.Center.X, op.Center.Y, op.Radius, op.Color)
	case OpRing:
		ringWidth := op.Width
		if ringWidth < 1 {
			ringWidth = 1
		}
		drawRing(output, op.Center.X, op.Center.Y, op.Radius, ringWidth, op.Color)
	}
}

// fillRect fills the axis-aligned rectangle [x1,x2)x[y1,y2).
func fillRect(output *image.RGBA, x1, y1, x2, y2 float64, col color.RGBA) {
	bounds := output.Bounds()
	for y := int(math.Floor(y1)); y < int(math.Ceil(y2)); y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := int(math.Floor(x1)); x < int(math.Ceil(x2)); x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			output.SetRGBA(x, y, col)
		}
	}
}

// outlineRect draws a rectangle outline of the given pixel thickness,
// inset so the outline hugs the rectangle edges.
func outlineRect(output *image.RGBA, fx1, fy1, fx2, fy2 float64, thickness int, col color.RGBA) {
	if thickness < 1 {
		thickness = 1
	}
	x1 := int(math.Floor(fx1))
	y1 := int(math.Floor(fy1))
	x2 := int(math.Ceil(fx2)) - 1
	y2 := int(math.Ceil(fy2)) - 1
	bounds := output.Bounds()

	for t := 0; t < thickness; t++ {
		// Top and bottom edges
		for x := x1; x <= x2; x++ {
			if x >= bounds.Min.X && x < bounds.Max.X && y1+t >= bounds.Min.Y && y1+t < bounds.Max.Y {
				output.SetRGBA(x, y1+t, col)
			}
			if x >= bounds.Min.X && x < bounds.Max.X && y2-t >= bounds.Min.Y && y2-t < bounds.Max.Y {
				output.SetRGBA(x, y2-t, col)
			}
		}
		// Left and right edges
		for y := y1; y <= y2; y++ {
			if x1+t >= bounds.Min.X && x1+t < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
				output.SetRGBA(x1+t, y, col)
			}
			if x2-t >= bounds.Min.X && x2-t < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
				output.SetRGBA(x2-t, y, col)
			}
		}
	}
}

// drawLine draws a thick line between two points using Bresenham's algorithm.
func drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := output.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.SetRGBA(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillCircle draws a filled circle centered at (cx, cy).
func fillCircle(output *image.RGBA, cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	bounds := output.Bounds()

	minX := int(cx - r - 1)
	maxX := int(cx + r + 1)
	minY := int(cy - r - 1)
	maxY := int(cy + r + 1)

	r2 := r * r
	for y := minY; y <= maxY; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				output.SetRGBA(x, y, col)
			}
		}
	}
}

// drawRing draws a circle outline of the given line width.
func drawRing(output *image.RGBA, cx, cy, r, width float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	bounds := output.Bounds()

	outer := r + width/2
	inner := r - width/2
	if inner < 0 {
		inner = 0
	}

	minX := int(cx - outer - 1)
	maxX := int(cx + outer + 1)
	minY := int(cy - outer - 1)
	maxY := int(cy + outer + 1)

	outer2 := outer * outer
	inner2 := inner * inner
	for y := minY; y <= maxY; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			dist2 := dx*dx + dy*dy
			if dist2 <= outer2 && dist2 >= inner2 {
				output.SetRGBA(x, y, col)
			}
		}
	}
}
