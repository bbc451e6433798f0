package render

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/moomshiner/MiaNote/pkg/geometry"
)

func TestClipSegment(t *testing.T) {
	clip := geometry.NewRect(0, 0, 100, 100)
	const tol = 1e-9

	tests := []struct {
		name    string
		a, b    geometry.Point2D
		wantA   geometry.Point2D
		wantB   geometry.Point2D
		visible bool
	}{
		{
			name:    "fully inside",
			a:       geometry.NewPoint2D(10, 10),
			b:       geometry.NewPoint2D(90, 90),
			wantA:   geometry.NewPoint2D(10, 10),
			wantB:   geometry.NewPoint2D(90, 90),
			visible: true,
		},
		{
			name:    "on boundary",
			a:       geometry.NewPoint2D(0, 0),
			b:       geometry.NewPoint2D(100, 100),
			wantA:   geometry.NewPoint2D(0, 0),
			wantB:   geometry.NewPoint2D(100, 100),
			visible: true,
		},
		{
			name:    "both left of rect",
			a:       geometry.NewPoint2D(-50, 10),
			b:       geometry.NewPoint2D(-10, 90),
			visible: false,
		},
		{
			name:    "both below rect",
			a:       geometry.NewPoint2D(10, 150),
			b:       geometry.NewPoint2D(90, 200),
			visible: false,
		},
		{
			name:    "crosses right edge",
			a:       geometry.NewPoint2D(50, 50),
			b:       geometry.NewPoint2D(150, 50),
			wantA:   geometry.NewPoint2D(50, 50),
			wantB:   geometry.NewPoint2D(100, 50),
			visible: true,
		},
		{
			name:    "crosses bottom edge",
			a:       geometry.NewPoint2D(10, 10),
			b:       geometry.NewPoint2D(10, 150),
			wantA:   geometry.NewPoint2D(10, 10),
			wantB:   geometry.NewPoint2D(10, 100),
			visible: true,
		},
		{
			name:    "spans rect horizontally",
			a:       geometry.NewPoint2D(-50, 40),
			b:       geometry.NewPoint2D(150, 40),
			wantA:   geometry.NewPoint2D(0, 40),
			wantB:   geometry.NewPoint2D(100, 40),
			visible: true,
		},
		{
			name:    "diagonal through two edges",
			a:       geometry.NewPoint2D(-50, 50),
			b:       geometry.NewPoint2D(50, 150),
			wantA:   geometry.NewPoint2D(0, 100),
			wantB:   geometry.NewPoint2D(0, 100),
			visible: true,
		},
		{
			name: "misses the corner",
			// Outcodes never agree on a side but the segment passes
			// outside the top-right corner.
			a:       geometry.NewPoint2D(90, -20),
			b:       geometry.NewPoint2D(130, 20),
			visible: false,
		},
		{
			name:    "horizontal above rect",
			a:       geometry.NewPoint2D(-50, -10),
			b:       geometry.NewPoint2D(150, -10),
			visible: false,
		},
		{
			name:    "degenerate point outside",
			a:       geometry.NewPoint2D(-10, 50),
			b:       geometry.NewPoint2D(-10, 50),
			visible: false,
		},
		{
			name:    "degenerate point inside",
			a:       geometry.NewPoint2D(50, 50),
			b:       geometry.NewPoint2D(50, 50),
			wantA:   geometry.NewPoint2D(50, 50),
			wantB:   geometry.NewPoint2D(50, 50),
			visible: true,
		},
		{
			name:    "nan endpoint",
			a:       geometry.NewPoint2D(math.NaN(), 50),
			b:       geometry.NewPoint2D(50, 50),
			visible: false,
		},
		{
			name:    "inf endpoint",
			a:       geometry.NewPoint2D(50, 50),
			b:       geometry.NewPoint2D(50, math.Inf(1)),
			visible: false,
		},
	}

	for _, tt := range tests {
		gotA, gotB, visible := ClipSegment(tt.a, tt.b, clip)
		if visible != tt.visible {
			t.Errorf("%s: visible = %v, want %v", tt.name, visible, tt.visible)
			continue
		}
		if !visible {
			continue
		}
		if !scalar.EqualWithinAbs(gotA.X, tt.wantA.X, tol) ||
			!scalar.EqualWithinAbs(gotA.Y, tt.wantA.Y, tol) {
			t.Errorf("%s: a = %v, want %v", tt.name, gotA, tt.wantA)
		}
		if !scalar.EqualWithinAbs(gotB.X, tt.wantB.X, tol) ||
			!scalar.EqualWithinAbs(gotB.Y, tt.wantB.Y, tol) {
			t.Errorf("%s: b = %v, want %v", tt.name, gotB, tt.wantB)
		}
	}
}

func TestClipSegmentDoesNotModifyInputs(t *testing.T) {
	clip := geometry.NewRect(0, 0, 100, 100)
	a := geometry.NewPoint2D(50, 50)
	b := geometry.NewPoint2D(150, 50)

	gotA, gotB, visible := ClipSegment(a, b, clip)
	if !visible {
		t.Fatal("segment should be partially visible")
	}
	if a != geometry.NewPoint2D(50, 50) || b != geometry.NewPoint2D(150, 50) {
		t.Errorf("inputs modified: a=%v b=%v", a, b)
	}
	if gotA != a {
		t.Errorf("inside endpoint changed: %v", gotA)
	}
	if gotB.X != 100 {
		t.Errorf("outside endpoint not snapped to edge: %v", gotB)
	}
}

func TestOutcode(t *testing.T) {
	clip := geometry.NewRect(0, 0, 100, 100)

	tests := []struct {
		name string
		p    geometry.Point2D
		want int
	}{
		{"inside", geometry.NewPoint2D(50, 50), outcodeInside},
		{"left", geometry.NewPoint2D(-1, 50), outcodeLeft},
		{"right", geometry.NewPoint2D(101, 50), outcodeRight},
		{"above", geometry.NewPoint2D(50, -1), outcodeAbove},
		{"below", geometry.NewPoint2D(50, 101), outcodeBelow},
		{"top left", geometry.NewPoint2D(-1, -1), outcodeLeft | outcodeAbove},
		{"bottom right", geometry.NewPoint2D(101, 101), outcodeRight | outcodeBelow},
		{"on edge", geometry.NewPoint2D(0, 100), outcodeInside},
	}
	for _, tt := range tests {
		if got := outcode(tt.p, clip); got != tt.want {
			t.Errorf("%s: outcode(%v) = %b, want %b", tt.name, tt.p, got, tt.want)
		}
	}
}
