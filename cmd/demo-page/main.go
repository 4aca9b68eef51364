// Demo page generator
package main

import (
	"log"
	"sort"

	"github.com/layoutlab/pagegen/internal/config"
	"github.com/layoutlab/pagegen/internal/dataset"
	"github.com/layoutlab/pagegen/internal/storage"
	"github.com/layoutlab/pagegen/internal/symbol"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config:", err)
	}

	// Symbol catalog
	catalog := symbol.BuiltinCatalog()
	if cfg.SymbolsManifest != "" {
		catalog, err = symbol.LoadCatalog(cfg.SymbolsManifest)
		if err != nil {
			log.Fatal("Failed to load symbols manifest:", err)
		}
	}
	log.Printf("Loaded %d symbols", catalog.Count())

	// Artifact store
	var store storage.ObjectStoreInterface
	if cfg.S3Bucket != "" {
		store, err = storage.NewS3Store(cfg.AWSRegion, cfg.S3Bucket)
		if err != nil {
			log.Fatal("Failed to create S3 store:", err)
		}
		log.Printf("Storing artifacts in s3://%s", cfg.S3Bucket)
	} else {
		store, err = storage.NewLocalStore(cfg.OutputDir)
		if err != nil {
			log.Fatal("Failed to create local store:", err)
		}
		log.Printf("Storing artifacts under %s", cfg.OutputDir)
	}

	// Generator
	generator := dataset.NewGenerator(catalog, store)
	generator.SetRenderPNG(cfg.RenderPNG)
	generator.SetCompactAnnotations(cfg.CompactAnnotations)
	generator.SetRasterScale(cfg.RasterScale)
	generator.SetMinSpacing(cfg.MinSpacingMM)

	if cfg.Pages > 1 {
		runBatch(generator, cfg)
		return
	}
	runSingle(generator, cfg)
}

func runSingle(generator *dataset.Generator, cfg *config.Config) {
	page, err := generator.GeneratePage(dataset.PageSpec{
		Sheet:       cfg.SheetSize,
		SymbolCount: cfg.SymbolCount,
		Seed:        cfg.Seed,
	})
	if err != nil {
		log.Fatal("Failed to generate page:", err)
	}

	record := page.Record
	log.Printf("Generated page %s on %s: placed %d of %d symbols (%s) in %dms",
		page.PageID, record.SheetSize, record.Placed, record.Requested, record.Outcome, record.DurationMS)

	// Per-symbol tally
	counts := make(map[string]int)
	for _, placed := range page.Placement.Placed {
		counts[placed.Symbol.Name]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Printf("  %s: %d", name, counts[name])
	}
}

func runBatch(generator *dataset.Generator, cfg *config.Config) {
	manifest, err := generator.GenerateBatch(dataset.BatchConfig{
		Pages:       cfg.Pages,
		Workers:     cfg.Workers,
		Sheet:       cfg.SheetSize,
		SymbolCount: cfg.SymbolCount,
		BaseSeed:    cfg.Seed,
	})
	if err != nil {
		log.Fatal("Failed to generate dataset:", err)
	}

	stats := manifest.Stats
	log.Printf("Dataset %s complete", manifest.DatasetID)
	log.Printf("  Requested:    %d pages", stats.TotalRequested)
	log.Printf("  Successful:   %d", stats.Successful)
	log.Printf("  Failed:       %d", stats.Failed)
	log.Printf("  Success rate: %.1f%%", stats.SuccessRate)
	log.Printf("  Total time:   %.1f minutes", stats.TotalTimeMinutes)
	log.Printf("  Throughput:   %.1f pages/minute", stats.ThroughputPerMinute)
}
