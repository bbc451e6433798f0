package render

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/moomshiner/MiaNote/pkg/geometry"
)

// Cohen-Sutherland outcode bits. An outcode of 0 means the point is
// inside the clip rectangle.
const (
	outcodeInside = 0
	outcodeLeft   = 1 << 0
	outcodeRight  = 1 << 1
	outcodeAbove  = 1 << 2
	outcodeBelow  = 1 << 3
)

// clipEpsilon is the smallest axis delta considered clippable. A
// segment whose delta against the tested boundary is below this is
// rejected instead of divided.
const clipEpsilon = 1e-6

// outcode computes the Cohen-Sutherland outcode for a point against a
// clip rectangle.
func outcode(p geometry.Point2D, clip geometry.Rect) int {
	code := outcodeInside
	if p.X < clip.X {
		code |= outcodeLeft
	} else if p.X > clip.Right() {
		code |= outcodeRight
	}
	if p.Y < clip.Y {
		code |= outcodeAbove
	} else if p.Y > clip.Bottom() {
		code |= outcodeBelow
	}
	return code
}

// ClipSegment clips the segment a-b against the rectangle using the
// Cohen-Sutherland algorithm and returns the visible sub-segment.
// The third return value is false when no part of the segment lies
// inside the rectangle. The input points are not modified; an endpoint
// already inside comes back unchanged, an outside endpoint comes back
// snapped onto the crossed boundary.
//
// Segments with non-finite endpoints are rejected.
func ClipSegment(a, b geometry.Point2D, clip geometry.Rect) (geometry.Point2D, geometry.Point2D, bool) {
	if !a.IsFinite() || !b.IsFinite() {
		return a, b, false
	}

	codeA := outcode(a, clip)
	codeB := outcode(b, clip)

	// Each iteration moves one outside endpoint onto a boundary, so
	// four iterations suffice; the extra headroom guards against
	// floating-point re-classification at a boundary.
	for range 8 {
		if codeA|codeB == outcodeInside {
			return a, b, true
		}
		if codeA&codeB != 0 {
			return a, b, false
		}

		code := codeA
		if code == outcodeInside {
			code = codeB
		}

		dx := b.X - a.X
		dy := b.Y - a.Y

		var p geometry.Point2D
		switch {
		case code&outcodeLeft != 0:
			if scalar.EqualWithinAbs(dx, 0, clipEpsilon) {
				return a, b, false
			}
			p = geometry.NewPoint2D(clip.X, a.Y+dy*(clip.X-a.X)/dx)
		case code&outcodeRight != 0:
			if scalar.EqualWithinAbs(dx, 0, clipEpsilon) {
				return a, b, false
			}
			p = geometry.NewPoint2D(clip.Right(), a.Y+dy*(clip.Right()-a.X)/dx)
		case code&outcodeAbove != 0:
			if scalar.EqualWithinAbs(dy, 0, clipEpsilon) {
				return a, b, false
			}
			p = geometry.NewPoint2D(a.X+dx*(clip.Y-a.Y)/dy, clip.Y)
		default: // outcodeBelow
			if scalar.EqualWithinAbs(dy, 0, clipEpsilon) {
				return a, b, false
			}
			p = geometry.NewPoint2D(a.X+dx*(clip.Bottom()-a.Y)/dy, clip.Bottom())
		}

		if code == codeA {
			a = p
			codeA = outcode(a, clip)
		} else {
			b = p
			codeB = outcode(b, clip)
		}
	}

	return a, b, false
}
