// Package dataset generates multi-page annotation datasets.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/layoutlab/pagegen/internal/layout"
	"github.com/layoutlab/pagegen/internal/render"
	"github.com/layoutlab/pagegen/internal/storage"
	"github.com/layoutlab/pagegen/internal/symbol"
)

const defaultPixelsPerMM = 4.0

// PageSpec describes one page to generate.
type PageSpec struct {
	Sheet       string
	SymbolCount int
	Seed        int64
}

// PageResult pairs the stored artifacts with the placement they came from.
type PageResult struct {
	PageID    string
	Record    PageRecord
	Placement *layout.Result
}

// Generator produces annotated pages and stores their artifacts.
type Generator struct {
	placer      *layout.Placer
	store       storage.ObjectStoreInterface
	renderPNG   bool
	compact     bool
	pixelsPerMM float64
}

// NewGenerator creates a generator over the given catalog and store.
func NewGenerator(catalog *symbol.Catalog, store storage.ObjectStoreInterface) *Generator {
	return &Generator{
		placer:      layout.NewPlacer(catalog),
		store:       store,
		renderPNG:   true,
		pixelsPerMM: defaultPixelsPerMM,
	}
}

// SetRenderPNG toggles the PNG page artifact.
func (g *Generator) SetRenderPNG(enabled bool) {
	g.renderPNG = enabled
}

// SetCompactAnnotations toggles the msgpack annotation artifact.
func (g *Generator) SetCompactAnnotations(enabled bool) {
	g.compact = enabled
}

// SetRasterScale overrides the PNG pixel density.
func (g *Generator) SetRasterScale(pixelsPerMM float64) {
	g.pixelsPerMM = pixelsPerMM
}

// SetMinSpacing overrides the collision spacing buffer.
func (g *Generator) SetMinSpacing(spacingMM float64) {
	g.placer.SetMinSpacing(spacingMM)
}

// GeneratePage places one page and stores its artifacts under
// pages/<page-id>/. A partial placement still produces a page; only
// placement setup, rendering, or storage failures are errors.
func (g *Generator) GeneratePage(spec PageSpec) (*PageResult, error) {
	start := time.Now()

	placement, err := g.placer.PlaceSymbols(spec.Sheet, spec.SymbolCount, spec.Seed)
	if err != nil {
		return nil, err
	}

	pageID := uuid.New().String()
	prefix := "pages/" + pageID + "/"

	doc := &PageDocument{
		PageInfo: PageInfo{
			SheetSize:        placement.Sheet.Name,
			WidthMM:          placement.Sheet.WidthMM,
			HeightMM:         placement.Sheet.HeightMM,
			GeneratorVersion: Version,
			CreatedAt:        time.Now().UTC().Format(time.RFC3339),
		},
		Annotations: placement.Annotations(),
	}

	artifacts := make([]string, 0, 4)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode annotations: %w", err)
	}
	if err := g.store.PutObject(prefix+"annotations.json", data); err != nil {
		return nil, fmt.Errorf("failed to store annotations: %w", err)
	}
	artifacts = append(artifacts, prefix+"annotations.json")

	var svg bytes.Buffer
	render.SVG(&svg, placement)
	if err := g.store.PutObject(prefix+"page.svg", svg.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to store page SVG: %w", err)
	}
	artifacts = append(artifacts, prefix+"page.svg")

	if g.renderPNG {
		pngData, err := render.PNGBytes(placement, g.pixelsPerMM)
		if err != nil {
			return nil, fmt.Errorf("failed to render page PNG: %w", err)
		}
		if err := g.store.PutObject(prefix+"page.png", pngData); err != nil {
			return nil, fmt.Errorf("failed to store page PNG: %w", err)
		}
		artifacts = append(artifacts, prefix+"page.png")
	}

	if g.compact {
		packed, err := encodeCompactAnnotations(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode compact annotations: %w", err)
		}
		if err := g.store.PutObject(prefix+"annotations.msgpack", packed); err != nil {
			return nil, fmt.Errorf("failed to store compact annotations: %w", err)
		}
		artifacts = append(artifacts, prefix+"annotations.msgpack")
	}

	record := PageRecord{
		PageID:     pageID,
		SheetSize:  placement.Sheet.Name,
		Seed:       spec.Seed,
		Requested:  placement.Requested,
		Placed:     len(placement.Placed),
		Outcome:    string(placement.Outcome),
		Artifacts:  artifacts,
		DurationMS: time.Since(start).Milliseconds(),
		Success:    true,
	}

	return &PageResult{
		PageID:    pageID,
		Record:    record,
		Placement: placement,
	}, nil
}

// encodeCompactAnnotations packs the page document as msgpack. Map keys are
// sorted, so identical documents encode to identical bytes.
func encodeCompactAnnotations(doc *PageDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateBatch generates batch.Pages pages across batch.Workers workers and
// stores a dataset manifest alongside the page artifacts. Page seeds are
// derived from the base seed by page index, so the same batch config
// reproduces the same pages regardless of worker count.
func (g *Generator) GenerateBatch(batch BatchConfig) (*Manifest, error) {
	if batch.Pages < 0 {
		batch.Pages = 0
	}
	if batch.Workers < 1 {
		batch.Workers = 1
	}

	start := time.Now()

	queue := NewJobQueue()
	for i := 0; i < batch.Pages; i++ {
		queue.Add(&PageJob{
			Index: i,
			Spec: PageSpec{
				Sheet:       batch.Sheet,
				SymbolCount: batch.SymbolCount,
				Seed:        batch.BaseSeed + int64(i),
			},
		})
	}

	collector := newManifestCollector()

	var wg sync.WaitGroup
	for w := 0; w < batch.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				job := queue.PopFront()
				if job == nil {
					return
				}

				jobStart := time.Now()
				page, err := g.GeneratePage(job.Spec)
				if err != nil {
					log.Printf("Warning: page %d failed: %v", job.Index, err)
					collector.add(PageRecord{
						Index:      job.Index,
						SheetSize:  job.Spec.Sheet,
						Seed:       job.Spec.Seed,
						Requested:  job.Spec.SymbolCount,
						DurationMS: time.Since(jobStart).Milliseconds(),
						Error:      err.Error(),
					})
					continue
				}

				record := page.Record
				record.Index = job.Index
				collector.add(record)
			}
		}()
	}
	wg.Wait()

	log.Printf("Batch complete: %d of %d pages recorded", collector.count(), batch.Pages)

	records := collector.snapshot()
	manifest := &Manifest{
		DatasetID: uuid.New().String(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    batch,
		Stats:     computeStats(batch.Pages, records, time.Since(start)),
		Pages:     records,
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode dataset manifest: %w", err)
	}
	if err := g.store.PutObject("dataset_manifest.json", data); err != nil {
		return nil, fmt.Errorf("failed to store dataset manifest: %w", err)
	}

	return manifest, nil
}

// computeStats aggregates per-page records into the summary block stored in
// the dataset manifest. The success rate is a percentage and the average
// generation time is in seconds.
func computeStats(requested int, records []PageRecord, elapsed time.Duration) BatchStats {
	stats := BatchStats{TotalRequested: requested}

	var totalMS int64
	for _, record := range records {
		if record.Success {
			stats.Successful++
		} else {
			stats.Failed++
		}
		totalMS += record.DurationMS
	}

	if requested > 0 {
		stats.SuccessRate = float64(stats.Successful) / float64(requested) * 100
	}
	if len(records) > 0 {
		stats.AverageGenerationTime = float64(totalMS) / float64(len(records)) / 1000
	}

	minutes := elapsed.Minutes()
	stats.TotalTimeMinutes = minutes
	if minutes > 0 {
		stats.ThroughputPerMinute = float64(stats.Successful) / minutes
	}

	return stats
}
