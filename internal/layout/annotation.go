package layout

// Position is a symbol center point in sheet millimeters.
type Position struct {
	XMM float64 `json:"x_mm" msgpack:"x_mm"`
	YMM float64 `json:"y_mm" msgpack:"y_mm"`
}

// Annotation is the serializable record for one placed symbol.
type Annotation struct {
	ID          int                    `json:"id" msgpack:"id"`
	SymbolName  string                 `json:"symbol_name" msgpack:"symbol_name"`
	Position    Position               `json:"position" msgpack:"position"`
	RotationDeg int                    `json:"rotation_deg" msgpack:"rotation_deg"`
	BoundingBox BoundingBox            `json:"bounding_box" msgpack:"bounding_box"`
	Parameters  map[string]interface{} `json:"parameters" msgpack:"parameters"`
}

// Annotations converts the placements into annotation records, preserving
// acceptance order. The ID is the ordinal index within the run.
func (r *Result) Annotations() []Annotation {
	annotations := make([]Annotation, 0, len(r.Placed))

	for i, placed := range r.Placed {
		annotations = append(annotations, Annotation{
			ID:          i,
			SymbolName:  placed.Symbol.Name,
			Position:    Position{XMM: placed.X, YMM: placed.Y},
			RotationDeg: placed.Rotation,
			BoundingBox: placed.Bounds(),
			Parameters:  placed.Params,
		})
	}

	return annotations
}
