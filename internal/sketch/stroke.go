// Package sketch defines the drawing data model: strokes and snapshots
// of the committed stroke list.
package sketch

import (
	"image/color"

	"github.com/google/uuid"

	"github.com/moomshiner/MiaNote/pkg/geometry"
)

// Stroke is one continuous pencil or eraser mark: an ordered list of
// canvas-space points plus the color and width used to render it.
// Width is in canvas units and is scaled by zoom only at render time.
//
// Points are recorded exactly as drawn and are never clamped to the
// canvas rectangle; a stroke dragged off the canvas and back keeps its
// out-of-bounds points so a later pan or zoom reveals the true path.
type Stroke struct {
	ID     string             `json:"id"`
	Points []geometry.Point2D `json:"points"`
	Color  color.RGBA         `json:"color"`
	Width  float64            `json:"width"`
}

// NewStroke creates a stroke starting at the given canvas point.
func NewStroke(start geometry.Point2D, col color.RGBA, width float64) *Stroke {
	return &Stroke{
		ID:     uuid.NewString(),
		Points: []geometry.Point2D{start},
		Color:  col,
		Width:  width,
	}
}

// Append adds a canvas point to the end of the stroke.
func (s *Stroke) Append(p geometry.Point2D) {
	s.Points = append(s.Points, p)
}

// IsDot reports whether the stroke renders as a filled dot rather than
// a polyline.
func (s *Stroke) IsDot() bool {
	return len(s.Points) == 1
}

// Clone returns a deep copy of the stroke.
func (s *Stroke) Clone() Stroke {
	points := make([]geometry.Point2D, len(s.Points))
	copy(points, s.Points)
	return Stroke{ID: s.ID, Points: points, Color: s.Color, Width: s.Width}
}

// Snapshot is an immutable full copy of a committed stroke list, in
// z-order (later strokes draw on top). Snapshots are what the undo
// stack stores.
type Snapshot []Stroke

// CloneStrokes deep-copies a stroke list into a Snapshot.
func CloneStrokes(strokes []Stroke) Snapshot {
	out := make(Snapshot, len(strokes))
	for i := range strokes {
		out[i] = strokes[i].Clone()
	}
	return out
}
