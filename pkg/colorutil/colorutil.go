// Package colorutil provides shared color utilities for the drawing pad.
package colorutil

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Pen colors offered by the toolbar, plus the canvas background.
var (
	Black  = colornames.Black
	White  = colornames.White
	Red    = colornames.Red
	Green  = colornames.Green
	Blue   = colornames.Blue
	Orange = colornames.Orange
	Purple = colornames.Purple
)

// Canvas is the canvas background color. The eraser paints with this
// color, so changing it here changes what "erased" means.
var Canvas = White

// Border is the canvas outline color.
var Border = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}

// ToHex encodes a color as "#rrggbb" for storage in preferences.
func ToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromHex decodes a "#rrggbb" string. Returns Black for malformed input.
func FromHex(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return Black
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Equal reports whether two colors have identical RGBA channels.
func Equal(a, b color.RGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B && a.A == b.A
}
