// Package render produces page artifacts from a placement result.
package render

import (
	"io"

	"zappem.net/pub/graphics/svgof"

	"github.com/layoutlab/pagegen/internal/layout"
)

const (
	sheetStyle  = "fill:white;stroke:none"
	marginStyle = "fill:none;stroke:lightgray;stroke-width:0.2;stroke-dasharray:2,2"
	symbolStyle = "fill:none;stroke:black;stroke-width:0.35"
	labelStyle  = "font-family:Helvetica;font-size:2.1px;text-anchor:middle;fill:black"
)

// maxLabelLen keeps symbol labels from spilling past small boxes.
const maxLabelLen = 8

// SVG writes the placed page as a millimeter-accurate SVG document. Each
// placement is drawn as an outline of its bounding box with a centered
// name label.
func SVG(w io.Writer, result *layout.Result) {
	sheet := result.Sheet

	canvas := svgof.New(w)
	canvas.Decimals = 3

	// Document coordinates are sheet millimeters.
	canvas.StartviewUnit(sheet.WidthMM, sheet.HeightMM, "mm", 0, 0, sheet.WidthMM, sheet.HeightMM)

	// Sheet background
	canvas.Rect(0, 0, sheet.WidthMM, sheet.HeightMM, sheetStyle)

	// Sheet coordinates grow upward from the lower-left corner while SVG y
	// grows downward, so every y below is flipped against the sheet height.
	xMin, yMin, xMax, yMax := sheet.Usable()
	canvas.Rect(xMin, sheet.HeightMM-yMax, xMax-xMin, yMax-yMin, marginStyle)

	for _, placed := range result.Placed {
		bounds := placed.Bounds()
		canvas.Rect(bounds.XMin, sheet.HeightMM-bounds.YMax, bounds.XMax-bounds.XMin, bounds.YMax-bounds.YMin, symbolStyle)
		canvas.Text(placed.X, sheet.HeightMM-placed.Y+0.7, shortName(placed.Symbol.Name), labelStyle)
	}

	canvas.End()
}

// shortName truncates a symbol name so the label stays inside its box.
func shortName(name string) string {
	if len(name) <= maxLabelLen {
		return name
	}
	return name[:maxLabelLen]
}
