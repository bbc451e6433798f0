package render

import (
	"image/color"
	"testing"

	"github.com/moomshiner/MiaNote/pkg/geometry"
)

var (
	testBackdrop = color.RGBA{0x11, 0x11, 0x11, 0xFF}
	testInk      = color.RGBA{0xEE, 0x00, 0x00, 0xFF}
)

func TestRasterizeBackdrop(t *testing.T) {
	img := Rasterize(nil, 20, 10, testBackdrop)

	if got := img.Bounds().Dx(); got != 20 {
		t.Fatalf("width = %d, want 20", got)
	}
	if got := img.RGBAAt(0, 0); got != testBackdrop {
		t.Errorf("pixel (0,0) = %v, want backdrop", got)
	}
	if got := img.RGBAAt(19, 9); got != testBackdrop {
		t.Errorf("pixel (19,9) = %v, want backdrop", got)
	}
}

func TestRasterizeFillRect(t *testing.T) {
	ops := []Op{{Kind: OpFillRect, Rect: geometry.NewRect(5, 2, 10, 4), Color: testInk}}
	img := Rasterize(ops, 20, 10, testBackdrop)

	if got := img.RGBAAt(5, 2); got != testInk {
		t.Errorf("inside fill: got %v", got)
	}
	if got := img.RGBAAt(14, 5); got != testInk {
		t.Errorf("inside fill far corner: got %v", got)
	}
	if got := img.RGBAAt(4, 2); got != testBackdrop {
		t.Errorf("left of fill: got %v", got)
	}
	if got := img.RGBAAt(5, 6); got != testBackdrop {
		t.Errorf("below fill: got %v", got)
	}
}

func TestRasterizeDot(t *testing.T) {
	ops := []Op{{Kind: OpDot, Center: geometry.NewPoint2D(10, 5), Radius: 3, Color: testInk}}
	img := Rasterize(ops, 20, 10, testBackdrop)

	if got := img.RGBAAt(10, 5); got != testInk {
		t.Errorf("dot center: got %v", got)
	}
	if got := img.RGBAAt(13, 5); got != testInk {
		t.Errorf("dot rim: got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != testBackdrop {
		t.Errorf("far corner: got %v", got)
	}
}

func TestRasterizeSegment(t *testing.T) {
	ops := []Op{{
		Kind:  OpSegment,
		A:     geometry.NewPoint2D(2, 5),
		B:     geometry.NewPoint2D(17, 5),
		Width: 2,
		Color: testInk,
	}}
	img := Rasterize(ops, 20, 10, testBackdrop)

	for x := 2; x <= 17; x++ {
		if got := img.RGBAAt(x, 5); got != testInk {
			t.Errorf("pixel (%d,5) = %v, want ink", x, got)
		}
	}
	if got := img.RGBAAt(10, 0); got != testBackdrop {
		t.Errorf("above line: got %v", got)
	}
}

func TestRasterizeClampsToImage(t *testing.T) {
	// Ops reaching outside the image must not panic.
	ops := []Op{
		{Kind: OpFillRect, Rect: geometry.NewRect(-10, -10, 100, 100), Color: testInk},
		{Kind: OpDot, Center: geometry.NewPoint2D(-5, -5), Radius: 20, Color: testInk},
		{Kind: OpSegment, A: geometry.NewPoint2D(-50, 5), B: geometry.NewPoint2D(70, 5), Width: 3, Color: testInk},
		{Kind: OpRing, Center: geometry.NewPoint2D(25, 5), Radius: 40, Width: 2, Color: testInk},
	}
	img := Rasterize(ops, 20, 10, testBackdrop)

	if got := img.RGBAAt(10, 5); got != testInk {
		t.Errorf("pixel (10,5) = %v, want ink", got)
	}
}
