// Package config provides configuration management for the page generator.
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/layoutlab/pagegen/internal/layout"
)

// Config holds the page generator configuration.
type Config struct {
	OutputDir          string
	S3Bucket           string
	AWSRegion          string
	SymbolsManifest    string
	SheetSize          string
	SymbolCount        int
	Seed               int64
	Pages              int
	Workers            int
	MinSpacingMM       float64
	RasterScale        float64
	RenderPNG          bool
	CompactAnnotations bool
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		OutputDir:          getEnv("OUTPUT_DIR", "output"),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		AWSRegion:          getEnv("AWS_REGION", "ap-northeast-1"),
		SymbolsManifest:    getEnv("SYMBOLS_MANIFEST", ""),
		SheetSize:          getEnv("SHEET_SIZE", layout.SheetA3),
		SymbolCount:        getEnvInt("SYMBOL_COUNT", 40),
		Seed:               getEnvInt64("SEED", 42),
		Pages:              getEnvInt("PAGES", 1),
		Workers:            getEnvInt("WORKERS", 4),
		MinSpacingMM:       getEnvFloat("MIN_SPACING_MM", 2.0),
		RasterScale:        getEnvFloat("RASTER_SCALE", 4.0),
		RenderPNG:          getEnvBool("RENDER_PNG", true),
		CompactAnnotations: getEnvBool("COMPACT_ANNOTATIONS", false),
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.SymbolCount < 0 {
		return errors.New("invalid symbol count: must not be negative")
	}
	if c.Pages < 1 {
		return errors.New("invalid page count: must be at least 1")
	}
	if c.Workers < 1 {
		return errors.New("invalid worker count: must be at least 1")
	}
	if c.MinSpacingMM < 0 {
		return errors.New("invalid min spacing: must not be negative")
	}
	if c.RasterScale <= 0 {
		return errors.New("invalid raster scale: must be positive")
	}
	if _, err := layout.SheetBySize(c.SheetSize); err != nil {
		return err
	}

	return nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable, falling back to the
// default when unset or unparsable.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvInt64 returns a 64-bit integer environment variable, falling back
// to the default when unset or unparsable.
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvFloat returns a float environment variable, falling back to the
// default when unset or unparsable.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// getEnvBool returns a boolean environment variable, falling back to the
// default when unset or unparsable.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
