package layout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/layoutlab/pagegen/internal/symbol"
)

// Value pools for the builtin parameter templates.
var (
	gdtDatums        = []string{"A", "B", "C", "-"}
	surfaceRoughness = []float64{0.8, 1.6, 3.2, 6.3, 12.5}
	surfaceProcesses = []string{"machined", "cast", "forged"}
	threadSizes      = []string{"M6", "M8", "M10", "M12", "1/4-20", "3/8-16"}
	threadPitches    = []float64{1.0, 1.25, 1.5, 2.0}
	threadClasses    = []string{"6H", "6g", "4H6H"}
)

// drawParams generates the instance parameters for one candidate. Symbols
// with a declared schema draw from it; otherwise the builtin template
// attached at catalog load decides. Draw order is fixed per template so that
// seeded runs replay identically.
func drawParams(rng *rand.Rand, sym *symbol.Symbol) map[string]interface{} {
	if len(sym.Schema) > 0 {
		return drawFromSchema(rng, sym.Schema)
	}

	params := make(map[string]interface{})

	switch sym.Template {
	case symbol.TemplateGdtTolerance:
		params["tolerance"] = roundTo(uniform(rng, 0.01, 0.5), 3)
		params["datum"] = choiceString(rng, gdtDatums)
	case symbol.TemplateSurfaceFinish:
		params["roughness"] = choiceFloat(rng, surfaceRoughness)
		params["process"] = choiceString(rng, surfaceProcesses)
	case symbol.TemplateThreadCallout:
		params["size"] = choiceString(rng, threadSizes)
		params["pitch"] = choiceFloat(rng, threadPitches)
		params["class"] = choiceString(rng, threadClasses)
	case symbol.TemplateDiameter:
		params["value"] = roundTo(uniform(rng, 5.0, 50.0), 1)
		plus := uniform(rng, 0.01, 0.1)
		minus := uniform(rng, 0.01, 0.1)
		params["tolerance"] = fmt.Sprintf("+%.3f/-%.3f", plus, minus)
	}

	return params
}

// drawFromSchema draws each declared parameter in schema order (the catalog
// sorts schemas by name at load).
func drawFromSchema(rng *rand.Rand, schema []symbol.ParamSpec) map[string]interface{} {
	params := make(map[string]interface{})

	for _, spec := range schema {
		switch spec.Type {
		case symbol.ParamFloat:
			params[spec.Name] = uniform(rng, spec.Min, spec.Max)
		case symbol.ParamEnum:
			if len(spec.Values) == 0 {
				params[spec.Name] = spec.Default
				continue
			}
			params[spec.Name] = choiceString(rng, spec.Values)
		default:
			params[spec.Name] = spec.Default
		}
	}

	return params
}

// uniform draws a float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func choiceString(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func choiceFloat(rng *rand.Rand, values []float64) float64 {
	return values[rng.Intn(len(values))]
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
