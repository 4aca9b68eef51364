// Package symbol provides the annotation symbol catalog for page generation.
package symbol

import "strings"

// ParamTemplate identifies which builtin parameter set a symbol draws from
// at placement time.
type ParamTemplate string

// Builtin parameter templates.
const (
	TemplateNone          ParamTemplate = "none"
	TemplateGdtTolerance  ParamTemplate = "gdt_tolerance"
	TemplateSurfaceFinish ParamTemplate = "surface_finish"
	TemplateThreadCallout ParamTemplate = "thread_callout"
	TemplateDiameter      ParamTemplate = "diameter"
)

// Parameter schema value types.
const (
	ParamFloat  = "float"
	ParamEnum   = "enum"
	ParamString = "string"
)

// templatePatterns maps name substrings to templates. Checked in order;
// first match wins.
var templatePatterns = []struct {
	substr   string
	template ParamTemplate
}{
	{"gdt_flatness", TemplateGdtTolerance},
	{"surface_finish", TemplateSurfaceFinish},
	{"thread_callout", TemplateThreadCallout},
	{"diameter", TemplateDiameter},
}

// ClassifyTemplate returns the parameter template for a symbol name.
// Names matching no known pattern get TemplateNone.
func ClassifyTemplate(name string) ParamTemplate {
	lower := strings.ToLower(name)
	for _, p := range templatePatterns {
		if strings.Contains(lower, p.substr) {
			return p.template
		}
	}
	return TemplateNone
}

// ParamSpec describes one declared instance parameter of a symbol.
type ParamSpec struct {
	Name    string
	Type    string // ParamFloat, ParamEnum or ParamString
	Min     float64
	Max     float64
	Values  []string
	Default string
}

// Symbol is one catalog entry: a named annotation glyph with fixed
// millimeter dimensions. Entries are immutable after the catalog is built.
type Symbol struct {
	Name     string
	Filename string
	WidthMM  float64
	HeightMM float64
	Template ParamTemplate
	Schema   []ParamSpec // declared parameters in draw order; empty for template-driven symbols
}

// Placeable reports whether the symbol has valid dimensions. Symbols with a
// zero or negative extent can never be placed.
func (s *Symbol) Placeable() bool {
	return s.WidthMM > 0 && s.HeightMM > 0
}
