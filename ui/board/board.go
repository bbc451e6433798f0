// Package board provides the interactive drawing surface widget with
// pan, zoom, and pencil/eraser strokes.
package board

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/moomshiner/MiaNote/internal/app"
	"github.com/moomshiner/MiaNote/internal/editor"
	"github.com/moomshiner/MiaNote/internal/render"
	"github.com/moomshiner/MiaNote/pkg/geometry"
)

// backdrop is the color of the area around the canvas rectangle.
var backdrop = color.RGBA{R: 0xE4, G: 0xE5, B: 0xE9, A: 0xFF}

// Board is the drawing surface widget. It translates Fyne pointer
// events into editor gestures and rasterizes the renderer's draw list
// once per frame. All stroke, viewport and undo state lives in the
// application state; the widget itself only tracks input device
// bookkeeping.
type Board struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	// Input bookkeeping
	spaceHeld  bool
	middleHeld bool
	dragging   bool
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Tappable = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)
var _ fyne.Scrollable = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)
var _ desktop.Hoverable = (*Board)(nil)
var _ desktop.Cursorable = (*Board)(nil)

// New creates the drawing surface bound to the application state.
func New(state *app.State) *Board {
	b := &Board{state: state}
	b.raster = fynecanvas.NewRaster(b.draw)
	b.raster.ScaleMode = fynecanvas.ImageScalePixels
	b.raster.SetMinSize(fyne.NewSize(400, 300))

	state.Editor.OnRepaint(func() {
		b.Refresh()
	})
	state.On(app.EventViewportChanged, func(interface{}) {
		b.Refresh()
	})

	b.ExtendBaseWidget(b)
	return b
}

// SetPanModifier sets whether the pan modifier key (space) is held.
// Delivered by the window's key handlers since Fyne key events go to
// the focused window, not the widget under the pointer.
func (b *Board) SetPanModifier(held bool) {
	b.spaceHeld = held
	b.Refresh()
}

// Busy reports whether a stroke or pan gesture is mid-flight. The
// window uses this to gate the undo shortcut.
func (b *Board) Busy() bool {
	return b.state.Editor.State() != editor.StateIdle
}

func (b *Board) panModifier() bool {
	return b.spaceHeld || b.middleHeld
}

// draw is the raster drawing function, called once per frame with the
// widget's pixel size. The size doubles as the viewport-resize signal.
func (b *Board) draw(w, h int) image.Image {
	b.state.Resize(float64(w), float64(h))
	return render.Rasterize(b.state.Frame(), w, h, backdrop)
}

// Tapped commits a dot when the tap lands inside the canvas.
func (b *Board) Tapped(ev *fyne.PointEvent) {
	b.state.Editor.Tap(pointOf(ev.Position), b.panModifier(), b.state.Viewport())
}

// Dragged drives the drawing or panning gesture. The first event of a
// drag sequence doubles as the gesture start.
func (b *Board) Dragged(ev *fyne.DragEvent) {
	pos := pointOf(ev.Position)
	if !b.dragging {
		b.dragging = true
		start := pos.Sub(geometry.NewPoint2D(float64(ev.Dragged.DX), float64(ev.Dragged.DY)))
		b.state.Editor.DragStart(start, b.panModifier(), b.state.Viewport())
	}
	b.state.Editor.DragMove(pos, b.state.Viewport())
}

// DragEnd completes the active gesture.
func (b *Board) DragEnd() {
	b.dragging = false
	b.state.Editor.DragEnd()
}

// CancelGesture aborts a mid-flight gesture, e.g. on focus loss.
func (b *Board) CancelGesture() {
	b.dragging = false
	b.state.Editor.DragCancel()
}

// Scrolled zooms with the mouse wheel, anchored at the pointer.
func (b *Board) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		b.state.ZoomAt(pointOf(ev.Position), render.ZoomStep)
	} else if ev.Scrolled.DY < 0 {
		b.state.ZoomAt(pointOf(ev.Position), 1/render.ZoomStep)
	}
}

// MouseDown tracks the middle button, which acts as a pan modifier.
func (b *Board) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonTertiary {
		b.middleHeld = true
	}
}

// MouseUp releases the middle-button pan modifier.
func (b *Board) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonTertiary {
		b.middleHeld = false
	}
}

// MouseIn starts hover tracking.
func (b *Board) MouseIn(ev *desktop.MouseEvent) {
	b.state.Editor.PointerMove(pointOf(ev.Position), b.state.Viewport())
}

// MouseMoved updates the hover position for the cursor ring.
func (b *Board) MouseMoved(ev *desktop.MouseEvent) {
	b.state.Editor.PointerMove(pointOf(ev.Position), b.state.Viewport())
}

// MouseOut clears the hover indicator.
func (b *Board) MouseOut() {
	b.state.Editor.PointerExit()
}

// Cursor selects the pointer icon from the current input condition.
func (b *Board) Cursor() desktop.Cursor {
	_, inside := b.state.Editor.Hover()
	return CursorFor(inside, b.panModifier(), b.dragging)
}

// Refresh redraws the surface.
func (b *Board) Refresh() {
	if b.raster != nil {
		b.raster.Refresh()
	}
	b.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}

func pointOf(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
}
