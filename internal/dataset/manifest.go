package dataset

import (
	"sort"
	"sync"

	"github.com/layoutlab/pagegen/internal/layout"
)

// Version identifies the generator that produced a page document.
const Version = "0.1.0"

// PageInfo describes the sheet a page was generated on.
type PageInfo struct {
	SheetSize        string  `json:"sheet_size" msgpack:"sheet_size"`
	WidthMM          float64 `json:"width_mm" msgpack:"width_mm"`
	HeightMM         float64 `json:"height_mm" msgpack:"height_mm"`
	GeneratorVersion string  `json:"generator_version" msgpack:"generator_version"`
	CreatedAt        string  `json:"created_at" msgpack:"created_at"`
}

// PageDocument is the serialized annotation artifact for one page.
type PageDocument struct {
	PageInfo    PageInfo            `json:"page_info" msgpack:"page_info"`
	Annotations []layout.Annotation `json:"annotations" msgpack:"annotations"`
}

// PageRecord summarizes one generated page in the dataset manifest.
type PageRecord struct {
	PageID     string   `json:"page_id,omitempty"`
	Index      int      `json:"index"`
	SheetSize  string   `json:"sheet_size"`
	Seed       int64    `json:"seed"`
	Requested  int      `json:"symbols_requested"`
	Placed     int      `json:"symbols_placed"`
	Outcome    string   `json:"outcome,omitempty"`
	Artifacts  []string `json:"artifacts,omitempty"`
	DurationMS int64    `json:"generation_time_ms"`
	Success    bool     `json:"success"`
	Error      string   `json:"error,omitempty"`
}

// BatchStats aggregates the outcome of a batch run.
type BatchStats struct {
	TotalRequested        int     `json:"total_requested"`
	Successful            int     `json:"successful"`
	Failed                int     `json:"failed"`
	SuccessRate           float64 `json:"success_rate"`
	TotalTimeMinutes      float64 `json:"total_time_minutes"`
	AverageGenerationTime float64 `json:"average_generation_time"`
	ThroughputPerMinute   float64 `json:"throughput_per_minute"`
}

// BatchConfig describes one batch generation run.
type BatchConfig struct {
	Pages       int    `json:"pages"`
	Workers     int    `json:"workers"`
	Sheet       string `json:"sheet_size"`
	SymbolCount int    `json:"symbols_per_page"`
	BaseSeed    int64  `json:"base_seed"`
}

// Manifest is the top-level dataset manifest written after a batch run.
type Manifest struct {
	DatasetID string       `json:"dataset_id"`
	CreatedAt string       `json:"created_at"`
	Config    BatchConfig  `json:"config"`
	Stats     BatchStats   `json:"generation_stats"`
	Pages     []PageRecord `json:"pages"`
}

// manifestCollector gathers page records from concurrent workers.
type manifestCollector struct {
	mu      sync.RWMutex
	records map[int]PageRecord
}

func newManifestCollector() *manifestCollector {
	return &manifestCollector{
		records: make(map[int]PageRecord),
	}
}

// add stores the record for a page index.
func (c *manifestCollector) add(record PageRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[record.Index] = record
}

// count returns the number of collected records.
func (c *manifestCollector) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// snapshot returns the collected records ordered by page index.
func (c *manifestCollector) snapshot() []PageRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]PageRecord, 0, len(c.records))
	for _, record := range c.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Index < records[j].Index
	})
	return records
}
