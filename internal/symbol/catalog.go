package symbol

import (
	"errors"
	"fmt"
)

// builtinSymbols is the symbol set used when no manifest is supplied.
var builtinSymbols = []Symbol{
	{Name: "gdt_flatness", Filename: "gdt_flatness.svg", WidthMM: 8.0, HeightMM: 4.0},
	{Name: "gdt_parallelism", Filename: "gdt_parallelism.svg", WidthMM: 8.0, HeightMM: 4.0},
	{Name: "surface_finish_triangle", Filename: "surface_finish_triangle.svg", WidthMM: 3.0, HeightMM: 3.0},
	{Name: "thread_callout_m6", Filename: "thread_callout_m6.svg", WidthMM: 12.0, HeightMM: 3.0},
	{Name: "diameter_symbol", Filename: "diameter_symbol.svg", WidthMM: 4.0, HeightMM: 4.0},
	{Name: "radius_symbol", Filename: "radius_symbol.svg", WidthMM: 4.0, HeightMM: 4.0},
	{Name: "weld_symbol", Filename: "weld_symbol.svg", WidthMM: 6.0, HeightMM: 6.0},
}

// Catalog holds the loaded symbol definitions. Name order is the declaration
// order and is stable across runs; the placement engine depends on this for
// reproducible symbol draws.
type Catalog struct {
	symbols map[string]*Symbol
	names   []string
}

// NewCatalog builds a catalog from the given symbol definitions. Each symbol
// is classified against the builtin parameter templates as it is added.
// Duplicate names are rejected.
func NewCatalog(symbols []Symbol) (*Catalog, error) {
	c := &Catalog{
		symbols: make(map[string]*Symbol, len(symbols)),
		names:   make([]string, 0, len(symbols)),
	}

	for i := range symbols {
		sym := symbols[i]
		if sym.Name == "" {
			return nil, errors.New("symbol name must not be empty")
		}
		if _, exists := c.symbols[sym.Name]; exists {
			return nil, fmt.Errorf("duplicate symbol name: %s", sym.Name)
		}
		sym.Template = ClassifyTemplate(sym.Name)
		c.symbols[sym.Name] = &sym
		c.names = append(c.names, sym.Name)
	}

	return c, nil
}

// BuiltinCatalog returns the default symbol set used when no manifest is
// available.
func BuiltinCatalog() *Catalog {
	c, err := NewCatalog(builtinSymbols)
	if err != nil {
		// The builtin table is fixed and valid.
		panic(err)
	}
	return c
}

// Get returns a symbol by name.
func (c *Catalog) Get(name string) (*Symbol, error) {
	sym, ok := c.symbols[name]
	if !ok {
		return nil, errors.New("symbol not found: " + name)
	}
	return sym, nil
}

// Names returns the symbol names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Count returns the number of symbols in the catalog.
func (c *Catalog) Count() int {
	return len(c.names)
}

// All returns all symbols in declaration order.
func (c *Catalog) All() []*Symbol {
	result := make([]*Symbol, 0, len(c.names))
	for _, name := range c.names {
		result = append(result, c.symbols[name])
	}
	return result
}
