package layout

import "github.com/layoutlab/pagegen/internal/symbol"

// PlacedSymbol is one accepted symbol instance on a sheet. Instances are
// immutable once accepted; the placer only rejects and redraws, it never
// moves a placed symbol.
type PlacedSymbol struct {
	Symbol   *symbol.Symbol
	X        float64 // center, mm from the lower-left sheet corner
	Y        float64
	Rotation int // degrees, one of 0/90/180/270
	Params   map[string]interface{}
}

// BoundingBox is an axis-aligned box in sheet millimeters.
type BoundingBox struct {
	XMin float64 `json:"x_min" msgpack:"x_min"`
	YMin float64 `json:"y_min" msgpack:"y_min"`
	XMax float64 `json:"x_max" msgpack:"x_max"`
	YMax float64 `json:"y_max" msgpack:"y_max"`
}

// expand grows the box outward by d on all four sides.
func (b BoundingBox) expand(d float64) BoundingBox {
	return BoundingBox{
		XMin: b.XMin - d,
		YMin: b.YMin - d,
		XMax: b.XMax + d,
		YMax: b.YMax + d,
	}
}

// overlaps reports whether two boxes share interior area. Boxes that only
// touch along an edge do not overlap.
func (b BoundingBox) overlaps(other BoundingBox) bool {
	return b.XMax > other.XMin && other.XMax > b.XMin &&
		b.YMax > other.YMin && other.YMax > b.YMin
}

// Bounds returns the axis-aligned bounding box of the placement. Rotation
// does not affect the box: rotated symbols keep their unrotated extents.
func (p PlacedSymbol) Bounds() BoundingBox {
	halfW := p.Symbol.WidthMM / 2
	halfH := p.Symbol.HeightMM / 2

	return BoundingBox{
		XMin: p.X - halfW,
		YMin: p.Y - halfH,
		XMax: p.X + halfW,
		YMax: p.Y + halfH,
	}
}

// Collides reports whether p intrudes into other's space plus the spacing
// buffer. The buffer expands p's box only; other's box stays as is. This is
// the one-sided "would this candidate crowd an existing symbol" test the
// placement loop relies on.
func (p PlacedSymbol) Collides(other PlacedSymbol, minSpacing float64) bool {
	return p.Bounds().expand(minSpacing).overlaps(other.Bounds())
}
