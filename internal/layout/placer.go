package layout

import (
	"log"
	"math/rand"

	"github.com/layoutlab/pagegen/internal/symbol"
)

const (
	defaultMinSpacingMM      = 2.0
	defaultAttemptsPerSymbol = 10
)

var rotationSteps = []int{0, 90, 180, 270}

// Outcome classifies how a placement run ended.
type Outcome string

const (
	// OutcomeComplete means every requested symbol was placed.
	OutcomeComplete Outcome = "complete"
	// OutcomePartial means the attempt budget ran out before the requested
	// count was reached. This is a normal result under space pressure, not
	// an error.
	OutcomePartial Outcome = "partial"
	// OutcomeNoSymbols means the catalog had nothing to place.
	OutcomeNoSymbols Outcome = "no_symbols"
)

// Result holds the outcome of one placement run. Placed preserves
// acceptance order.
type Result struct {
	Sheet     Sheet
	Requested int
	Attempts  int
	Outcome   Outcome
	Placed    []PlacedSymbol
}

// Shortfall returns how many requested symbols could not be placed.
func (r *Result) Shortfall() int {
	return r.Requested - len(r.Placed)
}

// Placer places symbols at random non-overlapping positions on a sheet.
// A Placer is safe for concurrent use across independent runs: each run
// owns its random stream and accepted list, and the catalog is immutable.
type Placer struct {
	catalog           *symbol.Catalog
	minSpacingMM      float64
	attemptsPerSymbol int
}

// NewPlacer creates a placer over the given catalog with the default
// spacing buffer and attempt budget.
func NewPlacer(catalog *symbol.Catalog) *Placer {
	return &Placer{
		catalog:           catalog,
		minSpacingMM:      defaultMinSpacingMM,
		attemptsPerSymbol: defaultAttemptsPerSymbol,
	}
}

// SetMinSpacing overrides the collision spacing buffer in millimeters.
func (p *Placer) SetMinSpacing(spacingMM float64) {
	p.minSpacingMM = spacingMM
}

// MinSpacing returns the configured spacing buffer in millimeters.
func (p *Placer) MinSpacing() float64 {
	return p.minSpacingMM
}

// PlaceSymbols runs one placement pass: up to requestedCount symbols are
// placed at random non-overlapping positions inside the sheet's usable
// region, deterministically for a given seed. Placing fewer symbols than
// requested is a normal outcome; only an unknown sheet name is an error.
func (p *Placer) PlaceSymbols(sheetName string, requestedCount int, seed int64) (*Result, error) {
	sheet, err := SheetBySize(sheetName)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Sheet:     sheet,
		Requested: requestedCount,
		Outcome:   OutcomeComplete,
		Placed:    make([]PlacedSymbol, 0),
	}

	if requestedCount <= 0 {
		return result, nil
	}

	symbols := p.catalog.All()
	if len(symbols) == 0 {
		result.Outcome = OutcomeNoSymbols
		return result, nil
	}

	// One dedicated stream per run. Every draw below, including draws for
	// candidates that end up rejected, consumes this stream in a fixed
	// order; that ordering is the determinism contract.
	rng := rand.New(rand.NewSource(seed))

	xMin, yMin, xMax, yMax := sheet.Usable()
	maxAttempts := requestedCount * p.attemptsPerSymbol

	for len(result.Placed) < requestedCount && result.Attempts < maxAttempts {
		result.Attempts++

		sym := symbols[rng.Intn(len(symbols))]

		// Unplaceable symbols consume the attempt and the name draw only.
		if !fits(sym, xMin, yMin, xMax, yMax) {
			continue
		}

		halfW := sym.WidthMM / 2
		halfH := sym.HeightMM / 2
		x := uniform(rng, xMin+halfW, xMax-halfW)
		y := uniform(rng, yMin+halfH, yMax-halfH)
		rotation := rotationSteps[rng.Intn(len(rotationSteps))]
		params := drawParams(rng, sym)

		candidate := PlacedSymbol{
			Symbol:   sym,
			X:        x,
			Y:        y,
			Rotation: rotation,
			Params:   params,
		}

		if p.hasCollision(candidate, result.Placed) {
			continue
		}

		result.Placed = append(result.Placed, candidate)
	}

	if len(result.Placed) < requestedCount {
		result.Outcome = OutcomePartial
		log.Printf("Warning: only placed %d of %d symbols on %s due to space constraints",
			len(result.Placed), requestedCount, sheet.Name)
	}

	return result, nil
}

// hasCollision checks the candidate against every accepted placement.
func (p *Placer) hasCollision(candidate PlacedSymbol, accepted []PlacedSymbol) bool {
	for _, existing := range accepted {
		if candidate.Collides(existing, p.minSpacingMM) {
			return true
		}
	}
	return false
}

// fits reports whether the symbol can lie inside the usable rectangle at
// all: valid dimensions and no larger than the region.
func fits(sym *symbol.Symbol, xMin, yMin, xMax, yMax float64) bool {
	if !sym.Placeable() {
		return false
	}
	return sym.WidthMM <= xMax-xMin && sym.HeightMM <= yMax-yMin
}
