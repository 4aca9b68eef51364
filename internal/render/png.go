package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/layoutlab/pagegen/internal/layout"
)

var (
	rasterBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	rasterGray  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// PNG rasterizes the placed page at the given pixel density. The layout is
// the same as the SVG output: a white sheet, the usable-region guide, and
// one labeled outline per placement.
func PNG(result *layout.Result, pixelsPerMM float64) (image.Image, error) {
	if pixelsPerMM <= 0 {
		return nil, fmt.Errorf("raster scale must be positive, got %g", pixelsPerMM)
	}

	sheet := result.Sheet
	width := int(math.Round(sheet.WidthMM * pixelsPerMM))
	height := int(math.Round(sheet.HeightMM * pixelsPerMM))
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// White sheet background
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// Usable-region guide
	xMin, yMin, xMax, yMax := sheet.Usable()
	drawRectOutline(img, pixelRect(sheet, xMin, yMin, xMax, yMax, pixelsPerMM), rasterGray)

	for _, placed := range result.Placed {
		bounds := placed.Bounds()
		drawRectOutline(img, pixelRect(sheet, bounds.XMin, bounds.YMin, bounds.XMax, bounds.YMax, pixelsPerMM), rasterBlack)

		cx := int(math.Round(placed.X * pixelsPerMM))
		cy := int(math.Round((sheet.HeightMM - placed.Y) * pixelsPerMM))
		drawLabel(img, cx, cy+3, shortName(placed.Symbol.Name))
	}

	return img, nil
}

// PNGBytes rasterizes the placed page and encodes it as PNG data.
func PNGBytes(result *layout.Result, pixelsPerMM float64) ([]byte, error) {
	img, err := PNG(result, pixelsPerMM)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode page image: %w", err)
	}
	return buf.Bytes(), nil
}

// pixelRect converts a sheet-millimeter rectangle into image pixels,
// flipping y so the sheet's lower-left origin lands at the image bottom.
func pixelRect(sheet layout.Sheet, xMinMM, yMinMM, xMaxMM, yMaxMM, pixelsPerMM float64) image.Rectangle {
	x0 := int(math.Round(xMinMM * pixelsPerMM))
	y0 := int(math.Round((sheet.HeightMM - yMaxMM) * pixelsPerMM))
	x1 := int(math.Round(xMaxMM * pixelsPerMM))
	y1 := int(math.Round((sheet.HeightMM - yMinMM) * pixelsPerMM))
	return image.Rect(x0, y0, x1, y1)
}

// drawRectOutline draws a one-pixel rectangle outline. Set discards
// out-of-bounds pixels, so clipping is free.
func drawRectOutline(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawLabel draws the label centered horizontally on the given baseline.
func drawLabel(img *image.RGBA, cx, baselineY int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(rasterBlack),
		Face: basicfont.Face7x13,
	}
	d.Dot = fixed.P(cx, baselineY)

	adv := d.MeasureString(label)
	d.Dot.X -= adv / 2
	d.DrawString(label)
}
