package sketch

import (
	"encoding/json"
	"testing"

	"github.com/moomshiner/MiaNote/pkg/colorutil"
	"github.com/moomshiner/MiaNote/pkg/geometry"
)

func TestNewStroke(t *testing.T) {
	s := NewStroke(geometry.NewPoint2D(3, 4), colorutil.Red, 6)

	if s.ID == "" {
		t.Error("stroke has no ID")
	}
	if !s.IsDot() {
		t.Error("fresh stroke should be a dot")
	}
	if s.Points[0] != geometry.NewPoint2D(3, 4) {
		t.Errorf("start point = %v", s.Points[0])
	}

	other := NewStroke(geometry.NewPoint2D(3, 4), colorutil.Red, 6)
	if other.ID == s.ID {
		t.Error("two strokes share an ID")
	}
}

func TestStrokeAppend(t *testing.T) {
	s := NewStroke(geometry.NewPoint2D(0, 0), colorutil.Black, 4)
	s.Append(geometry.NewPoint2D(1, 1))

	if s.IsDot() {
		t.Error("two-point stroke reports IsDot")
	}
	if len(s.Points) != 2 {
		t.Errorf("got %d points, want 2", len(s.Points))
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := NewStroke(geometry.NewPoint2D(0, 0), colorutil.Black, 4)
	s.Append(geometry.NewPoint2D(1, 1))

	c := s.Clone()
	s.Points[0] = geometry.NewPoint2D(99, 99)

	if c.Points[0] != geometry.NewPoint2D(0, 0) {
		t.Errorf("clone shares point storage: %v", c.Points[0])
	}
	if c.ID != s.ID {
		t.Error("clone should keep the ID")
	}
}

func TestCloneStrokes(t *testing.T) {
	orig := []Stroke{
		*NewStroke(geometry.NewPoint2D(0, 0), colorutil.Black, 4),
		*NewStroke(geometry.NewPoint2D(5, 5), colorutil.Red, 2),
	}

	snap := CloneStrokes(orig)
	orig[1].Points[0] = geometry.NewPoint2D(99, 99)

	if snap[1].Points[0] != geometry.NewPoint2D(5, 5) {
		t.Errorf("snapshot shares storage with source: %v", snap[1].Points[0])
	}
	if got := CloneStrokes(nil); len(got) != 0 {
		t.Errorf("CloneStrokes(nil) = %d strokes", len(got))
	}
}

func TestStrokeJSONRoundTrip(t *testing.T) {
	s := NewStroke(geometry.NewPoint2D(1.5, -2.25), colorutil.Blue, 8)
	s.Append(geometry.NewPoint2D(10, 20))

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Stroke
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != s.ID || got.Width != s.Width || len(got.Points) != 2 {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Points[1] != geometry.NewPoint2D(10, 20) {
		t.Errorf("point = %v", got.Points[1])
	}
	if !colorutil.Equal(got.Color, colorutil.Blue) {
		t.Errorf("color = %v", got.Color)
	}
}
