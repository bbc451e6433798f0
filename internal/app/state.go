// Package app provides application state, events, and lifecycle helpers.
package app

import (
	"github.com/moomshiner/MiaNote/internal/editor"
	"github.com/moomshiner/MiaNote/internal/history"
	"github.com/moomshiner/MiaNote/internal/render"
	"github.com/moomshiner/MiaNote/internal/sketch"
	"github.com/moomshiner/MiaNote/pkg/geometry"
)

// Default logical canvas size in pixels. The canvas is fixed for the
// lifetime of a session; only the viewport around it changes.
const (
	DefaultCanvasWidth  = 1600.0
	DefaultCanvasHeight = 1000.0
)

// EventType identifies application events.
type EventType int

const (
	EventStrokesChanged EventType = iota
	EventViewportChanged
	EventToolChanged
	EventStrokeCancelled
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State composes the drawing state: viewport, editor, renderer and the
// event bus tying the UI together. All mutation happens on the UI event
// loop thread; the event bus exists so widgets stay decoupled, not to
// provide cross-thread safety.
//
// There are deliberately no package-level singletons: the host
// constructs one State and passes it to the widgets that need it.
type State struct {
	viewport render.Viewport
	Editor   *editor.Editor
	Renderer *render.Renderer

	listeners map[EventType][]EventListener
}

// NewState creates the application state with an empty drawing.
func NewState() *State {
	s := &State{
		viewport:  render.NewViewport(DefaultCanvasWidth, DefaultCanvasHeight),
		Editor:    editor.New(history.DefaultCapacity),
		Renderer:  render.NewRenderer(),
		listeners: make(map[EventType][]EventListener),
	}

	s.Editor.OnCommit(func(strokes sketch.Snapshot) {
		s.Emit(EventStrokesChanged, strokes)
	})
	s.Editor.OnCancel(func() {
		s.Emit(EventStrokeCancelled, nil)
	})
	s.Editor.OnPan(func(pan geometry.Point2D) {
		s.SetPan(pan)
	})

	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	for _, listener := range s.listeners[event] {
		listener(data)
	}
}

// Viewport returns the current viewport snapshot. Events into the
// editor should carry the snapshot that was current when the input
// arrived, which is exactly what this returns on the UI thread.
func (s *State) Viewport() render.Viewport {
	return s.viewport
}

// Resize updates the viewport extent after a window resize.
func (s *State) Resize(width, height float64) {
	if width == s.viewport.ViewSize.X && height == s.viewport.ViewSize.Y {
		return
	}
	s.viewport.ViewSize = geometry.NewPoint2D(width, height)
	s.Editor.RefreshHover(s.viewport)
	s.Emit(EventViewportChanged, s.viewport)
}

// SetPan replaces the pan offset. Pan is unbounded.
func (s *State) SetPan(pan geometry.Point2D) {
	s.viewport.Pan = pan
	s.Editor.RefreshHover(s.viewport)
	s.Emit(EventViewportChanged, s.viewport)
}

// SetZoom sets the zoom factor, clamped to the supported range, keeping
// the canvas centered.
func (s *State) SetZoom(zoom float64) {
	s.viewport.Zoom = render.ClampZoom(zoom)
	s.Editor.RefreshHover(s.viewport)
	s.Emit(EventViewportChanged, s.viewport)
}

// ZoomAt changes zoom by the given factor while keeping the canvas
// point under the given screen position stationary, so wheel zoom
// anchors on the cursor.
func (s *State) ZoomAt(screen geometry.Point2D, factor float64) {
	oldZoom := s.viewport.Zoom
	newZoom := render.ClampZoom(oldZoom * factor)
	if newZoom == oldZoom {
		return
	}

	canvasP := s.viewport.ScreenToCanvasAt(screen, oldZoom)
	s.viewport.Zoom = newZoom
	if canvasP.IsFinite() {
		// Solve for the pan that maps canvasP back to the same screen point.
		base := s.viewport.ViewSize.Sub(s.viewport.CanvasSize.Scale(newZoom)).Div(2)
		s.viewport.Pan = screen.Sub(base).Sub(canvasP.Scale(newZoom))
	}
	s.Editor.RefreshHover(s.viewport)
	s.Emit(EventViewportChanged, s.viewport)
}

// ZoomIn increases zoom by one step, anchored at the viewport center.
func (s *State) ZoomIn() {
	s.ZoomAt(s.viewCenter(), render.ZoomStep)
}

// ZoomOut decreases zoom by one step, anchored at the viewport center.
func (s *State) ZoomOut() {
	s.ZoomAt(s.viewCenter(), 1/render.ZoomStep)
}

// ResetView restores zoom 1 and clears the pan offset.
func (s *State) ResetView() {
	s.viewport.Zoom = 1.0
	s.viewport.Pan = geometry.Point2D{}
	s.Editor.RefreshHover(s.viewport)
	s.Emit(EventViewportChanged, s.viewport)
}

// SetTool selects the drawing tool.
func (s *State) SetTool(t sketch.Tool) {
	s.Editor.SetTool(t)
	s.Emit(EventToolChanged, t)
}

// Undo reverts the last committed stroke. Returns false when the undo
// stack is empty.
func (s *State) Undo() bool {
	if !s.Editor.Undo() {
		return false
	}
	s.Emit(EventStrokesChanged, sketch.CloneStrokes(s.Editor.Committed()))
	return true
}

// Frame builds the draw list for the current state.
func (s *State) Frame() []render.Op {
	var hover *geometry.Point2D
	if p, ok := s.Editor.Hover(); ok {
		hover = &p
	}
	return s.Renderer.Frame(s.viewport, s.Editor.Committed(), s.Editor.Current(), hover, s.Editor.ToolWidth())
}

func (s *State) viewCenter() geometry.Point2D {
	return s.viewport.ViewSize.Div(2)
}
