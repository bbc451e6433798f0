// Package render provides the viewport transform and the clipped
// stroke renderer. The renderer consumes a viewport plus stroke lists
// and produces a device-independent draw list; rasterization into
// pixels lives in raster.go.
package render

import (
	"math"

	"github.com/moomshiner/MiaNote/pkg/geometry"
)

const (
	// MinZoom and MaxZoom bound the viewport zoom factor.
	MinZoom = 0.1
	MaxZoom = 10.0
	// ZoomStep is the multiplicative step used by zoom in/out commands.
	ZoomStep = 1.25
)

// Viewport holds the visible-window state: the fixed logical canvas
// size, the current window extent, the zoom factor and the pan offset.
// The canvas rectangle is centered in the viewport before pan is
// applied. Pan is unbounded; zoom is kept within [MinZoom, MaxZoom].
type Viewport struct {
	CanvasSize geometry.Point2D
	ViewSize   geometry.Point2D
	Zoom       float64
	Pan        geometry.Point2D
}

// NewViewport creates a viewport over a canvas of the given fixed size,
// at zoom 1 with no pan.
func NewViewport(canvasWidth, canvasHeight float64) Viewport {
	return Viewport{
		CanvasSize: geometry.NewPoint2D(canvasWidth, canvasHeight),
		Zoom:       1.0,
	}
}

// ClampZoom clamps a requested zoom factor into [MinZoom, MaxZoom].
// Non-finite requests fall back to 1.
func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return 1.0
	}
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// TopLeftAt returns the screen-space top-left corner of the canvas
// rectangle for an explicit zoom value. Taking the zoom as a parameter
// lets callers query positions for a zoom level other than the live one,
// e.g. to keep the point under the cursor fixed during a zoom change.
func (v Viewport) TopLeftAt(zoom float64) geometry.Point2D {
	return v.ViewSize.Sub(v.CanvasSize.Scale(zoom)).Div(2).Add(v.Pan)
}

// TopLeft returns the screen-space top-left corner of the canvas
// rectangle at the viewport's current zoom.
func (v Viewport) TopLeft() geometry.Point2D {
	return v.TopLeftAt(v.Zoom)
}

// ScreenToCanvasAt maps a screen-space point into canvas space for an
// explicit zoom value.
func (v Viewport) ScreenToCanvasAt(p geometry.Point2D, zoom float64) geometry.Point2D {
	return p.Sub(v.TopLeftAt(zoom)).Div(zoom)
}

// ScreenToCanvas maps a screen-space point into canvas space at the
// current zoom.
func (v Viewport) ScreenToCanvas(p geometry.Point2D) geometry.Point2D {
	return v.ScreenToCanvasAt(p, v.Zoom)
}

// CanvasToScreenAt maps a canvas-space point into screen space for an
// explicit zoom value.
func (v Viewport) CanvasToScreenAt(p geometry.Point2D, zoom float64) geometry.Point2D {
	return v.TopLeftAt(zoom).Add(p.Scale(zoom))
}

// CanvasToScreen maps a canvas-space point into screen space at the
// current zoom.
func (v Viewport) CanvasToScreen(p geometry.Point2D) geometry.Point2D {
	return v.CanvasToScreenAt(p, v.Zoom)
}

// CanvasRect returns the canvas rectangle in canvas space.
func (v Viewport) CanvasRect() geometry.Rect {
	return geometry.NewRect(0, 0, v.CanvasSize.X, v.CanvasSize.Y)
}

// ScreenRect returns the canvas rectangle mapped into screen space at
// the current zoom.
func (v Viewport) ScreenRect() geometry.Rect {
	tl := v.TopLeft()
	return geometry.NewRect(tl.X, tl.Y, v.CanvasSize.X*v.Zoom, v.CanvasSize.Y*v.Zoom)
}

// InsideCanvas reports whether a canvas-space point lies within the
// canvas rectangle. The boundary is inclusive; non-finite points are
// treated as outside.
func (v Viewport) InsideCanvas(p geometry.Point2D) bool {
	return v.CanvasRect().Contains(p)
}
