package symbol

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// manifestFile mirrors the symbols manifest YAML layout.
type manifestFile struct {
	SchemaVersion string          `yaml:"schema_version"`
	Symbols       []manifestEntry `yaml:"symbols"`
}

type manifestEntry struct {
	Name     string                   `yaml:"name"`
	Filename string                   `yaml:"filename"`
	WidthMM  float64                  `yaml:"w_mm"`
	HeightMM float64                  `yaml:"h_mm"`
	Params   map[string]manifestParam `yaml:"params"`
}

type manifestParam struct {
	Type    string      `yaml:"type"`
	Min     *float64    `yaml:"min"`
	Max     *float64    `yaml:"max"`
	Values  []string    `yaml:"values"`
	Default interface{} `yaml:"default"`
}

// LoadCatalog reads a symbols manifest file and builds a catalog from it.
func LoadCatalog(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open symbols manifest: %w", err)
	}
	defer file.Close()

	return LoadCatalogFromReader(file)
}

// LoadCatalogFromReader builds a catalog from manifest YAML read from r.
func LoadCatalogFromReader(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbols manifest: %w", err)
	}

	var mf manifestFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse symbols manifest: %w", err)
	}

	symbols := make([]Symbol, 0, len(mf.Symbols))
	for _, entry := range mf.Symbols {
		schema, err := schemaFromManifest(entry.Name, entry.Params)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, Symbol{
			Name:     entry.Name,
			Filename: entry.Filename,
			WidthMM:  entry.WidthMM,
			HeightMM: entry.HeightMM,
			Schema:   schema,
		})
	}

	return NewCatalog(symbols)
}

// schemaFromManifest converts a manifest params mapping into an ordered
// schema. YAML mapping order is not stable across decoders, so parameters
// are sorted by name; the placement engine draws them in this order.
func schemaFromManifest(symbolName string, params map[string]manifestParam) ([]ParamSpec, error) {
	if len(params) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	schema := make([]ParamSpec, 0, len(names))
	for _, name := range names {
		p := params[name]

		spec := ParamSpec{
			Name:   name,
			Type:   p.Type,
			Values: p.Values,
		}
		if spec.Type == "" {
			spec.Type = ParamString
		}
		if p.Min != nil {
			spec.Min = *p.Min
		}
		if p.Max != nil {
			spec.Max = *p.Max
		} else if spec.Type == ParamFloat {
			spec.Max = 1.0
		}
		if spec.Type == ParamFloat && spec.Min > spec.Max {
			return nil, fmt.Errorf("invalid param %s for symbol %s: min %g exceeds max %g",
				name, symbolName, spec.Min, spec.Max)
		}
		if s, ok := p.Default.(string); ok {
			spec.Default = s
		}

		schema = append(schema, spec)
	}

	return schema, nil
}
