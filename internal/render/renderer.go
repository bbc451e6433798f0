package render

import (
	"image/color"

	"github.com/moomshiner/MiaNote/internal/sketch"
	"github.com/moomshiner/MiaNote/pkg/colorutil"
	"github.com/moomshiner/MiaNote/pkg/geometry"
)

// OpKind identifies a draw operation.
type OpKind int

const (
	OpFillRect    OpKind = iota // filled rectangle (canvas background)
	OpOutlineRect               // rectangle outline (canvas border)
	OpSegment                   // round-capped line segment
	OpDot                       // filled circle
	OpRing                      // circle outline (hover cursor)
)

// Op is one device-independent draw operation in screen space. Which
// fields are meaningful depends on Kind.
type Op struct {
	Kind   OpKind
	Rect   geometry.Rect    // OpFillRect, OpOutlineRect
	A, B   geometry.Point2D // OpSegment endpoints
	Center geometry.Point2D // OpDot, OpRing
	Radius float64          // OpDot, OpRing
	Width  float64          // OpSegment stroke width, OpOutlineRect/OpRing line width
	Color  color.RGBA
}

// Renderer turns viewport plus stroke state into an ordered draw list,
// clipping every stroke against the canvas rectangle. It never mutates
// the strokes it is handed.
type Renderer struct {
	Background  color.RGBA
	BorderColor color.RGBA
	BorderWidth float64 // screen pixels, independent of zoom
	HoverColor  color.RGBA
}

// NewRenderer creates a renderer with the application's default colors.
func NewRenderer() *Renderer {
	return &Renderer{
		Background:  colorutil.Canvas,
		BorderColor: colorutil.Border,
		BorderWidth: 1.5,
		HoverColor:  colorutil.Border,
	}
}

// Frame builds the draw list for one repaint: canvas background, the
// committed strokes in z-order, the in-progress stroke, then the border
// and the optional hover ring so neither is occluded by strokes.
//
// hover is the last known in-canvas pointer position in canvas space,
// or nil when no hover indicator should be shown; hoverWidth is the
// active tool width.
func (r *Renderer) Frame(vp Viewport, committed []sketch.Stroke, current *sketch.Stroke, hover *geometry.Point2D, hoverWidth float64) []Op {
	clip := vp.ScreenRect()

	ops := make([]Op, 0, len(committed)+4)
	ops = append(ops, Op{Kind: OpFillRect, Rect: clip, Color: r.Background})

	for i := range committed {
		ops = r.appendStroke(ops, vp, clip, &committed[i])
	}
	if current != nil {
		ops = r.appendStroke(ops, vp, clip, current)
	}

	ops = append(ops, Op{Kind: OpOutlineRect, Rect: clip, Width: r.BorderWidth, Color: r.BorderColor})

	if hover != nil && vp.InsideCanvas(*hover) {
		center := vp.CanvasToScreen(*hover)
		radius := hoverWidth / 2 * vp.Zoom
		if center.IsFinite() && radius > 0 {
			ops = append(ops, Op{Kind: OpRing, Center: center, Radius: radius, Width: 1, Color: r.HoverColor})
		}
	}

	return ops
}

// appendStroke emits the visible portion of one stroke.
func (r *Renderer) appendStroke(ops []Op, vp Viewport, clip geometry.Rect, s *sketch.Stroke) []Op {
	if len(s.Points) == 0 {
		return ops
	}

	if s.IsDot() {
		// Dots are all-or-nothing: drawn only when the point is within
		// the closed canvas bounds, never partially at the border.
		p := s.Points[0]
		if !vp.InsideCanvas(p) {
			return ops
		}
		center := vp.CanvasToScreen(p)
		if !center.IsFinite() {
			return ops
		}
		return append(ops, Op{
			Kind:   OpDot,
			Center: center,
			Radius: s.Width / 2 * vp.Zoom,
			Color:  s.Color,
		})
	}

	width := s.Width * vp.Zoom
	for i := 0; i+1 < len(s.Points); i++ {
		a := vp.CanvasToScreen(s.Points[i])
		b := vp.CanvasToScreen(s.Points[i+1])
		if !a.IsFinite() || !b.IsFinite() {
			continue
		}
		ca, cb, visible := ClipSegment(a, b, clip)
		if !visible {
			continue
		}
		ops = append(ops, Op{Kind: OpSegment, A: ca, B: cb, Width: width, Color: s.Color})
	}
	return ops
}
