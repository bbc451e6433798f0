package sketch

// Tool identifies the active drawing tool. The tool only changes the
// color and width applied to new strokes; the gesture handling is the
// same for both.
type Tool int

const (
	ToolPencil Tool = iota
	ToolEraser
)

// String returns a human-readable tool name for status display.
func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolEraser:
		return "eraser"
	default:
		return "unknown"
	}
}
