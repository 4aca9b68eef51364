// Package layout implements collision-aware random symbol placement on
// drawing sheets.
package layout

import "fmt"

// Supported sheet size names.
const (
	SheetA4       = "A4"
	SheetA3       = "A3"
	SheetUSLetter = "US-Letter"
)

const defaultMarginMM = 10.0

// Sheet describes a drawing sheet in millimeters. The margin insets the
// usable placement region from every edge.
type Sheet struct {
	Name     string
	WidthMM  float64
	HeightMM float64
	MarginMM float64
}

var sheetSizes = map[string]Sheet{
	SheetA4:       {Name: SheetA4, WidthMM: 210, HeightMM: 297, MarginMM: defaultMarginMM},
	SheetA3:       {Name: SheetA3, WidthMM: 297, HeightMM: 420, MarginMM: defaultMarginMM},
	SheetUSLetter: {Name: SheetUSLetter, WidthMM: 215.9, HeightMM: 279.4, MarginMM: defaultMarginMM},
}

var sheetNames = []string{SheetA4, SheetA3, SheetUSLetter}

// SheetBySize returns the sheet definition for a size name.
func SheetBySize(name string) (Sheet, error) {
	sheet, ok := sheetSizes[name]
	if !ok {
		return Sheet{}, fmt.Errorf("unsupported sheet size: %s", name)
	}
	return sheet, nil
}

// SheetNames returns the supported sheet size names.
func SheetNames() []string {
	names := make([]string, len(sheetNames))
	copy(names, sheetNames)
	return names
}

// Usable returns the placement region after removing the margin from each
// edge, as (xMin, yMin, xMax, yMax) in sheet coordinates.
func (s Sheet) Usable() (float64, float64, float64, float64) {
	return s.MarginMM, s.MarginMM, s.WidthMM - s.MarginMM, s.HeightMM - s.MarginMM
}
