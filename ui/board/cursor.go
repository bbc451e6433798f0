package board

import (
	"fyne.io/fyne/v2/driver/desktop"
)

// CursorFor selects the pointer icon for the drawing surface. It is a
// pure function of the input condition so it can be tested without a
// widget: the pan modifier shows a grab-style pointer, hovering over
// the canvas shows a crosshair, anywhere else keeps the default arrow.
func CursorFor(insideCanvas, panModifier, dragging bool) desktop.Cursor {
	if panModifier {
		return desktop.PointerCursor
	}
	if insideCanvas || dragging {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}
