package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"OUTPUT_DIR",
	"S3_BUCKET",
	"AWS_REGION",
	"SYMBOLS_MANIFEST",
	"SHEET_SIZE",
	"SYMBOL_COUNT",
	"SEED",
	"PAGES",
	"WORKERS",
	"MIN_SPACING_MM",
	"RASTER_SCALE",
	"RENDER_PNG",
	"COMPACT_ANNOTATIONS",
}

// withCleanEnv clears the generator environment variables for the duration
// of the test and restores them afterwards.
func withCleanEnv(t *testing.T) {
	t.Helper()

	// 既存の環境変数を保存
	saved := make(map[string]string)
	for _, key := range envKeys {
		saved[key] = os.Getenv(key)
		os.Unsetenv(key)
	}

	// テスト後に環境変数を復元
	t.Cleanup(func() {
		for k, v := range saved {
			if v != "" {
				os.Setenv(k, v)
			} else {
				os.Unsetenv(k)
			}
		}
	})
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		wantSheet string
		wantPages int
	}{
		{
			name: "すべての環境変数が設定されている",
			envVars: map[string]string{
				"OUTPUT_DIR":   "/tmp/dataset",
				"SHEET_SIZE":   "A4",
				"SYMBOL_COUNT": "25",
				"SEED":         "7",
				"PAGES":        "12",
				"WORKERS":      "2",
			},
			wantSheet: "A4",
			wantPages: 12,
		},
		{
			name:      "デフォルト値が使用される",
			envVars:   map[string]string{},
			wantSheet: "A3", // デフォルト
			wantPages: 1,
		},
		{
			name: "SHEET_SIZEのみカスタム",
			envVars: map[string]string{
				"SHEET_SIZE": "US-Letter",
			},
			wantSheet: "US-Letter",
			wantPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withCleanEnv(t)

			// テスト用の環境変数を設定
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			require.NoError(t, err)

			assert.Equal(t, tt.wantSheet, cfg.SheetSize)
			assert.Equal(t, tt.wantPages, cfg.Pages)
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	withCleanEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// デフォルト値の確認
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "", cfg.S3Bucket)
	assert.Equal(t, "ap-northeast-1", cfg.AWSRegion)
	assert.Equal(t, "A3", cfg.SheetSize)
	assert.Equal(t, 40, cfg.SymbolCount)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 1, cfg.Pages)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 2.0, cfg.MinSpacingMM)
	assert.Equal(t, 4.0, cfg.RasterScale)
	assert.True(t, cfg.RenderPNG)
	assert.False(t, cfg.CompactAnnotations)
}

func TestLoadConfig_UnparsableValues(t *testing.T) {
	withCleanEnv(t)

	// 解析できない値はデフォルトに戻る
	os.Setenv("SYMBOL_COUNT", "many")
	os.Setenv("SEED", "abc")
	os.Setenv("MIN_SPACING_MM", "wide")
	os.Setenv("RENDER_PNG", "yes please")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.SymbolCount)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2.0, cfg.MinSpacingMM)
	assert.True(t, cfg.RenderPNG)
}

func TestConfig_Validation(t *testing.T) {
	valid := func() *Config {
		return &Config{
			SheetSize:    "A3",
			SymbolCount:  40,
			Pages:        1,
			Workers:      4,
			MinSpacingMM: 2.0,
			RasterScale:  4.0,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "有効な設定",
			mutate: func(c *Config) {},
		},
		{
			name:    "負のシンボル数",
			mutate:  func(c *Config) { c.SymbolCount = -1 },
			wantErr: "invalid symbol count",
		},
		{
			name:    "負のページ数",
			mutate:  func(c *Config) { c.Pages = -1 },
			wantErr: "invalid page count",
		},
		{
			name:    "ページ数0",
			mutate:  func(c *Config) { c.Pages = 0 },
			wantErr: "invalid page count",
		},
		{
			name:    "ワーカー0",
			mutate:  func(c *Config) { c.Workers = 0 },
			wantErr: "invalid worker count",
		},
		{
			name:    "負の最小間隔",
			mutate:  func(c *Config) { c.MinSpacingMM = -0.5 },
			wantErr: "invalid min spacing",
		},
		{
			name:    "ラスタースケール0",
			mutate:  func(c *Config) { c.RasterScale = 0 },
			wantErr: "invalid raster scale",
		},
		{
			name:    "未対応の用紙サイズ",
			mutate:  func(c *Config) { c.SheetSize = "B5" },
			wantErr: "unsupported sheet size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
