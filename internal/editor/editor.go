// Package editor drives the drawing gesture state machine. It owns the
// in-progress stroke and the committed stroke list, translates pointer
// gestures into stroke edits or pan updates, and feeds the undo stack.
//
// The editor is constructed once and receives each input event together
// with the viewport snapshot that was current when the event was
// delivered; it never reaches into shared mutable state on its own.
// All methods must be called from the UI event loop thread.
package editor

import (
	"image/color"

	"github.com/moomshiner/MiaNote/internal/history"
	"github.com/moomshiner/MiaNote/internal/render"
	"github.com/moomshiner/MiaNote/internal/sketch"
	"github.com/moomshiner/MiaNote/pkg/colorutil"
	"github.com/moomshiner/MiaNote/pkg/geometry"
)

// State identifies the gesture state.
type State int

const (
	StateIdle State = iota
	StateDrawing
	StatePanning
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StatePanning:
		return "panning"
	default:
		return "unknown"
	}
}

// Default tool parameters. The host may override them through the
// setters; the editor accepts any positive width.
const (
	DefaultPencilWidth = 4.0
	DefaultEraserWidth = 24.0
)

// Editor is the gesture state machine.
type Editor struct {
	state     State
	committed []sketch.Stroke
	current   *sketch.Stroke
	undo      *history.Stack

	tool        sketch.Tool
	pencilColor color.RGBA
	pencilWidth float64
	eraserWidth float64
	background  color.RGBA

	// Pan gesture bookkeeping
	anchorPan  geometry.Point2D
	anchorDrag geometry.Point2D
	hasPointer bool
	lastScreen geometry.Point2D
	hover      *geometry.Point2D

	onBegin   func(prior sketch.Snapshot)
	onCommit  func(strokes sketch.Snapshot)
	onCancel  func()
	onPan     func(pan geometry.Point2D)
	onRepaint func()
}

// New creates an editor with an empty drawing and the given undo depth.
func New(undoCapacity int) *Editor {
	return &Editor{
		undo:        history.NewStack(undoCapacity),
		tool:        sketch.ToolPencil,
		pencilColor: colorutil.Black,
		pencilWidth: DefaultPencilWidth,
		eraserWidth: DefaultEraserWidth,
		background:  colorutil.Canvas,
	}
}

// OnBegin sets a callback invoked when a stroke gesture begins, with
// the committed strokes prior to the gesture.
func (e *Editor) OnBegin(fn func(prior sketch.Snapshot)) { e.onBegin = fn }

// OnCommit sets a callback invoked with the committed stroke list after
// a stroke or dot has been committed.
func (e *Editor) OnCommit(fn func(strokes sketch.Snapshot)) { e.onCommit = fn }

// OnCancel sets a callback invoked when an in-progress stroke is discarded.
func (e *Editor) OnCancel(fn func()) { e.onCancel = fn }

// OnPan sets a callback invoked with the new pan offset while panning.
func (e *Editor) OnPan(fn func(pan geometry.Point2D)) { e.onPan = fn }

// OnRepaint sets a callback invoked whenever visible state changed.
func (e *Editor) OnRepaint(fn func()) { e.onRepaint = fn }

// State returns the current gesture state.
func (e *Editor) State() State { return e.state }

// Committed returns the committed stroke list in z-order. The slice is
// owned by the editor; callers must not modify it.
func (e *Editor) Committed() []sketch.Stroke { return e.committed }

// Current returns the in-progress stroke, or nil outside a drawing
// gesture. Callers must not modify it.
func (e *Editor) Current() *sketch.Stroke { return e.current }

// Hover returns the last known in-canvas pointer position in canvas
// space. The second return value is false when no hover indicator
// should be shown.
func (e *Editor) Hover() (geometry.Point2D, bool) {
	if e.hover == nil || e.state == StatePanning {
		return geometry.Point2D{}, false
	}
	return *e.hover, true
}

// Tool returns the active tool.
func (e *Editor) Tool() sketch.Tool { return e.tool }

// SetTool selects the pencil or eraser for subsequent strokes.
func (e *Editor) SetTool(t sketch.Tool) { e.tool = t }

// SetColor sets the pencil color for subsequent strokes.
func (e *Editor) SetColor(c color.RGBA) { e.pencilColor = c }

// Color returns the pencil color.
func (e *Editor) Color() color.RGBA { return e.pencilColor }

// SetWidth sets the active tool's stroke width. Non-positive widths are
// ignored; the host clamps out-of-range values before they get here.
func (e *Editor) SetWidth(w float64) {
	if w <= 0 {
		return
	}
	if e.tool == sketch.ToolEraser {
		e.eraserWidth = w
	} else {
		e.pencilWidth = w
	}
}

// ToolWidth returns the active tool's stroke width, used for new
// strokes and for the hover ring radius.
func (e *Editor) ToolWidth() float64 {
	if e.tool == sketch.ToolEraser {
		return e.eraserWidth
	}
	return e.pencilWidth
}

// CanUndo reports whether an undo entry is available.
func (e *Editor) CanUndo() bool { return e.undo.CanUndo() }

// strokeColor returns the color for a new stroke: the pencil color, or
// the canvas background for the eraser, which "erases" by painting over.
func (e *Editor) strokeColor() color.RGBA {
	if e.tool == sketch.ToolEraser {
		return e.background
	}
	return e.pencilColor
}

// Tap handles a press+release with negligible movement. A tap inside
// the canvas commits a one-point "dot" stroke; a tap outside, or with
// the pan modifier held, is a no-op.
func (e *Editor) Tap(screen geometry.Point2D, panModifier bool, vp render.Viewport) {
	if e.state != StateIdle || panModifier {
		return
	}
	p := vp.ScreenToCanvas(screen)
	if !vp.InsideCanvas(p) {
		return
	}

	if e.onBegin != nil {
		e.onBegin(sketch.CloneStrokes(e.committed))
	}
	dot := sketch.NewStroke(p, e.strokeColor(), e.ToolWidth())
	e.commit(*dot)
}

// DragStart begins a drag gesture. The pan modifier always wins over
// drawing; otherwise a drag starting inside the canvas begins a stroke
// and a drag starting outside does nothing.
func (e *Editor) DragStart(screen geometry.Point2D, panModifier bool, vp render.Viewport) {
	if e.state != StateIdle {
		return
	}
	e.lastScreen = screen

	if panModifier {
		e.state = StatePanning
		e.anchorPan = vp.Pan
		e.anchorDrag = screen
		e.repaint()
		return
	}

	p := vp.ScreenToCanvas(screen)
	if !vp.InsideCanvas(p) {
		return
	}

	if e.onBegin != nil {
		e.onBegin(sketch.CloneStrokes(e.committed))
	}
	e.state = StateDrawing
	e.current = sketch.NewStroke(p, e.strokeColor(), e.ToolWidth())
	e.hover = &p
	e.repaint()
}

// DragMove extends the active gesture. While panning it publishes the
// accumulated, unbounded pan offset; while drawing it appends the
// mapped canvas point to the stroke without clamping, updating the
// hover position only when the point is inside the canvas.
func (e *Editor) DragMove(screen geometry.Point2D, vp render.Viewport) {
	e.lastScreen = screen

	switch e.state {
	case StatePanning:
		if e.onPan != nil {
			e.onPan(e.anchorPan.Add(screen.Sub(e.anchorDrag)))
		}
		e.repaint()
	case StateDrawing:
		p := vp.ScreenToCanvas(screen)
		e.current.Append(p)
		if vp.InsideCanvas(p) {
			e.hover = &p
		}
		e.repaint()
	}
}

// DragEnd completes the active gesture. A finished pan keeps its offset;
// a finished stroke is committed with an undo snapshot pushed just
// before the commit. A stray drag-end while idle is ignored.
func (e *Editor) DragEnd() {
	switch e.state {
	case StatePanning:
		e.state = StateIdle
		e.repaint()
	case StateDrawing:
		stroke := e.current.Clone()
		e.current = nil
		e.state = StateIdle
		e.commit(stroke)
	}
}

// DragCancel aborts the active gesture, discarding any in-progress
// stroke. No undo entry is consumed or left behind: snapshots are only
// pushed at commit time, so a cancelled gesture leaves the undo stack
// exactly as it was.
func (e *Editor) DragCancel() {
	switch e.state {
	case StatePanning:
		e.state = StateIdle
		e.repaint()
	case StateDrawing:
		e.current = nil
		e.state = StateIdle
		if e.onCancel != nil {
			e.onCancel()
		}
		e.repaint()
	}
}

// PointerMove tracks the hover position outside of drag gestures.
func (e *Editor) PointerMove(screen geometry.Point2D, vp render.Viewport) {
	e.hasPointer = true
	e.lastScreen = screen
	if e.state == StatePanning {
		return
	}
	p := vp.ScreenToCanvas(screen)
	if vp.InsideCanvas(p) {
		e.hover = &p
	} else {
		e.hover = nil
	}
	e.repaint()
}

// PointerExit clears the hover indicator when the pointer leaves the
// drawing surface.
func (e *Editor) PointerExit() {
	e.hasPointer = false
	e.hover = nil
	e.repaint()
}

// RefreshHover recomputes the hover position from the last known screen
// position after a zoom or pan change, so the hover ring keeps tracking
// the canvas point under the pointer instead of going stale.
func (e *Editor) RefreshHover(vp render.Viewport) {
	if !e.hasPointer && e.state != StateDrawing {
		return
	}
	p := vp.ScreenToCanvas(e.lastScreen)
	if vp.InsideCanvas(p) {
		e.hover = &p
	} else {
		e.hover = nil
	}
}

// Undo reverts the committed strokes to the most recent snapshot.
// Returns false when there is nothing to undo; popping an empty stack
// is a normal no-op. Undo requests are ignored mid-gesture (the host
// additionally gates the shortcut).
func (e *Editor) Undo() bool {
	if e.state != StateIdle {
		return false
	}
	snap, ok := e.undo.Pop()
	if !ok {
		return false
	}
	e.committed = sketch.CloneStrokes(snap)
	e.repaint()
	return true
}

// Clear drops all strokes and the undo history.
func (e *Editor) Clear() {
	e.committed = nil
	e.current = nil
	e.state = StateIdle
	e.undo.Clear()
	e.repaint()
}

// commit pushes the pre-commit snapshot onto the undo stack, appends
// the stroke to the committed list and notifies the host. The snapshot
// goes in atomically with the append so undo always reverts to the
// state before the just-finished stroke.
func (e *Editor) commit(stroke sketch.Stroke) {
	e.undo.Push(sketch.CloneStrokes(e.committed))
	e.committed = append(e.committed, stroke)
	if e.onCommit != nil {
		e.onCommit(sketch.CloneStrokes(e.committed))
	}
	e.repaint()
}

func (e *Editor) repaint() {
	if e.onRepaint != nil {
		e.onRepaint()
	}
}
