// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/moomshiner/MiaNote/internal/app"
	"github.com/moomshiner/MiaNote/internal/sketch"
	"github.com/moomshiner/MiaNote/internal/version"
	"github.com/moomshiner/MiaNote/pkg/colorutil"
	"github.com/moomshiner/MiaNote/ui/board"
	"github.com/moomshiner/MiaNote/ui/prefs"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	board     *board.Board
	statusBar *widget.Label

	pencilBtn *widget.Button
	eraserBtn *widget.Button
	widthSlde *widget.Slider
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("MiaNote")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.restorePreferences()

	win.Resize(fyne.NewSize(1100, 760))
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.board = board.New(mw.state)
	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()

	content := container.NewBorder(
		toolbar,                           // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.board,                          // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with tool, color, width and zoom
// controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	mw.pencilBtn = widget.NewButton("Pencil", func() {
		mw.state.SetTool(sketch.ToolPencil)
	})
	mw.eraserBtn = widget.NewButton("Eraser", func() {
		mw.state.SetTool(sketch.ToolEraser)
	})

	colors := []struct {
		name string
		col  color.RGBA
	}{
		{"Black", colorutil.Black},
		{"Red", colorutil.Red},
		{"Green", colorutil.Green},
		{"Blue", colorutil.Blue},
		{"Orange", colorutil.Orange},
		{"Purple", colorutil.Purple},
	}
	swatches := make([]fyne.CanvasObject, 0, len(colors))
	for _, c := range colors {
		col := c.col
		swatches = append(swatches, widget.NewButton(c.name, func() {
			mw.state.Editor.SetColor(col)
			mw.updateStatus()
		}))
	}

	mw.widthSlde = widget.NewSlider(1, 40)
	mw.widthSlde.Step = 1
	mw.widthSlde.Value = mw.state.Editor.ToolWidth()
	mw.widthSlde.OnChanged = func(v float64) {
		mw.state.Editor.SetWidth(v)
		mw.updateStatus()
	}

	zoomOutBtn := widget.NewButton("-", func() { mw.state.ZoomOut() })
	zoomInBtn := widget.NewButton("+", func() { mw.state.ZoomIn() })
	resetBtn := widget.NewButton("1:1", func() { mw.state.ResetView() })
	undoBtn := widget.NewButton("Undo", func() { mw.onUndo() })

	left := container.NewHBox(
		mw.pencilBtn,
		mw.eraserBtn,
		widget.NewSeparator(),
	)
	left.Add(container.NewHBox(swatches...))

	return container.NewBorder(
		nil, nil,
		left,
		container.NewHBox(
			widget.NewLabel("Zoom:"),
			zoomOutBtn,
			zoomInBtn,
			resetBtn,
			widget.NewSeparator(),
			undoBtn,
		),
		container.NewBorder(nil, nil, widget.NewLabel("Width:"), nil, mw.widthSlde),
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Clear Canvas", mw.onClear),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", mw.onUndo),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", func() { mw.state.ZoomIn() }),
		fyne.NewMenuItem("Zoom Out", func() { mw.state.ZoomOut() }),
		fyne.NewMenuItem("Actual Size", func() { mw.state.ResetView() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Fullscreen", mw.onToggleFullscreen),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

// setupShortcuts wires the undo shortcut and the space pan modifier.
// Key events arrive at the window, not the widget under the pointer, so
// the pan modifier is forwarded to the board from here.
func (mw *MainWindow) setupShortcuts() {
	mw.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyZ,
		Modifier: fyne.KeyModifierControl,
	}, func(fyne.Shortcut) {
		mw.onUndo()
	})

	if deskCanvas, ok := mw.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			if ev.Name == fyne.KeySpace {
				mw.board.SetPanModifier(true)
			}
		})
		deskCanvas.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			if ev.Name == fyne.KeySpace {
				mw.board.SetPanModifier(false)
			}
		})
	}
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventStrokesChanged, func(interface{}) {
		mw.updateStatus()
	})
	mw.state.On(app.EventViewportChanged, func(interface{}) {
		mw.updateStatus()
	})
	mw.state.On(app.EventToolChanged, func(interface{}) {
		mw.widthSlde.SetValue(mw.state.Editor.ToolWidth())
		mw.updateStatus()
	})
}

// onUndo reverts the last stroke unless a gesture is mid-flight.
func (mw *MainWindow) onUndo() {
	if mw.board.Busy() {
		return
	}
	mw.state.Undo()
}

// onClear asks for confirmation, then drops all strokes and history.
func (mw *MainWindow) onClear() {
	dialog.ShowConfirm("Clear Canvas", "Discard all strokes? This cannot be undone.",
		func(ok bool) {
			if ok {
				mw.state.Editor.Clear()
				mw.updateStatus()
			}
		}, mw.Window)
}

func (mw *MainWindow) onToggleFullscreen() {
	mw.SetFullScreen(!mw.FullScreen())
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About MiaNote",
		fmt.Sprintf("MiaNote %s\nA small freehand drawing pad.", version.Version),
		mw.Window)
}

// updateStatus refreshes the status bar text.
func (mw *MainWindow) updateStatus() {
	mw.statusBar.SetText(fmt.Sprintf("%s  |  width %.0f  |  zoom %.0f%%  |  %d strokes",
		mw.state.Editor.Tool(),
		mw.state.Editor.ToolWidth(),
		mw.state.Viewport().Zoom*100,
		len(mw.state.Editor.Committed())))
}

// restorePreferences applies saved tool settings.
func (mw *MainWindow) restorePreferences() {
	if mw.prefs == nil {
		return
	}
	mw.state.Editor.SetColor(colorutil.FromHex(mw.prefs.String(prefs.KeyPencilColor, colorutil.ToHex(colorutil.Black))))

	mw.state.Editor.SetTool(sketch.ToolPencil)
	mw.state.Editor.SetWidth(mw.prefs.Float(prefs.KeyPencilWidth, mw.state.Editor.ToolWidth()))
	mw.state.Editor.SetTool(sketch.ToolEraser)
	mw.state.Editor.SetWidth(mw.prefs.Float(prefs.KeyEraserWidth, mw.state.Editor.ToolWidth()))

	if mw.prefs.String(prefs.KeyTool, "pencil") == "eraser" {
		mw.state.SetTool(sketch.ToolEraser)
	} else {
		mw.state.SetTool(sketch.ToolPencil)
	}

	mw.state.SetZoom(mw.prefs.Float(prefs.KeyZoom, 1.0))
	if mw.prefs.Bool(prefs.KeyFullscreen, false) {
		mw.SetFullScreen(true)
	}
	mw.widthSlde.Value = mw.state.Editor.ToolWidth()
	mw.updateStatus()
}

// SavePreferences persists tool settings for the next session.
func (mw *MainWindow) SavePreferences() {
	if mw.prefs == nil {
		return
	}
	mw.prefs.SetString(prefs.KeyTool, mw.state.Editor.Tool().String())
	mw.prefs.SetString(prefs.KeyPencilColor, colorutil.ToHex(mw.state.Editor.Color()))

	tool := mw.state.Editor.Tool()
	mw.state.Editor.SetTool(sketch.ToolPencil)
	mw.prefs.SetFloat(prefs.KeyPencilWidth, mw.state.Editor.ToolWidth())
	mw.state.Editor.SetTool(sketch.ToolEraser)
	mw.prefs.SetFloat(prefs.KeyEraserWidth, mw.state.Editor.ToolWidth())
	mw.state.Editor.SetTool(tool)

	mw.prefs.SetFloat(prefs.KeyZoom, mw.state.Viewport().Zoom)
	mw.prefs.SetBool(prefs.KeyFullscreen, mw.FullScreen())

	if err := mw.prefs.Save(); err != nil {
		mw.statusBar.SetText("Failed to save preferences: " + err.Error())
	}
}
