// Command renderpreview renders a saved stroke list to a PNG without
// opening a window. Useful for eyeballing clipping and viewport math.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/disintegration/imaging"

	"github.com/moomshiner/MiaNote/internal/render"
	"github.com/moomshiner/MiaNote/internal/sketch"
	"github.com/moomshiner/MiaNote/pkg/geometry"
)

func main() {
	strokesPath := flag.String("strokes", "", "Path to JSON stroke list")
	outPath := flag.String("out", "preview.png", "Output PNG path")
	canvasW := flag.Float64("canvas-width", 1600, "Canvas width in canvas units")
	canvasH := flag.Float64("canvas-height", 1000, "Canvas height in canvas units")
	viewW := flag.Int("width", 1280, "Viewport width in pixels")
	viewH := flag.Int("height", 800, "Viewport height in pixels")
	zoom := flag.Float64("zoom", 1.0, "Zoom factor")
	panX := flag.Float64("pan-x", 0, "Pan offset X in pixels")
	panY := flag.Float64("pan-y", 0, "Pan offset Y in pixels")
	flag.Parse()

	if *strokesPath == "" {
		fmt.Println("Usage: renderpreview -strokes <path.json> [-out preview.png] [-zoom 1.0] [-pan-x 0 -pan-y 0]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*strokesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read strokes: %v\n", err)
		os.Exit(1)
	}

	var strokes []sketch.Stroke
	if err := json.Unmarshal(data, &strokes); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse strokes: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d strokes\n", len(strokes))

	vp := render.NewViewport(*canvasW, *canvasH)
	vp.ViewSize = geometry.NewPoint2D(float64(*viewW), float64(*viewH))
	vp.Zoom = render.ClampZoom(*zoom)
	vp.Pan = geometry.NewPoint2D(*panX, *panY)
	fmt.Printf("Viewport %dx%d, canvas %.0fx%.0f, zoom %.2f, pan (%.0f, %.0f)\n",
		*viewW, *viewH, *canvasW, *canvasH, vp.Zoom, vp.Pan.X, vp.Pan.Y)

	renderer := render.NewRenderer()
	ops := renderer.Frame(vp, strokes, nil, nil, 0)
	img := render.Rasterize(ops, *viewW, *viewH, color.RGBA{0xE4, 0xE5, 0xE9, 0xFF})

	if err := imaging.Save(img, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}
