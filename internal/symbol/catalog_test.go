package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTemplate(t *testing.T) {
	tests := []struct {
		name       string
		symbolName string
		want       ParamTemplate
	}{
		{
			name:       "gdt_flatnessを含む名前",
			symbolName: "gdt_flatness",
			want:       TemplateGdtTolerance,
		},
		{
			name:       "surface_finishを含む名前",
			symbolName: "surface_finish_triangle",
			want:       TemplateSurfaceFinish,
		},
		{
			name:       "thread_calloutを含む名前",
			symbolName: "thread_callout_m6",
			want:       TemplateThreadCallout,
		},
		{
			name:       "diameterを含む名前",
			symbolName: "diameter_symbol",
			want:       TemplateDiameter,
		},
		{
			name:       "大文字でもマッチする",
			symbolName: "GDT_FLATNESS_LARGE",
			want:       TemplateGdtTolerance,
		},
		{
			name:       "gdt_parallelismはテンプレートなし",
			symbolName: "gdt_parallelism",
			want:       TemplateNone,
		},
		{
			name:       "未知の名前はテンプレートなし",
			symbolName: "weld_symbol",
			want:       TemplateNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTemplate(tt.symbolName)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCatalog(t *testing.T) {
	t.Run("正常系: シンボルが宣言順に登録される", func(t *testing.T) {
		c, err := NewCatalog([]Symbol{
			{Name: "b_symbol", WidthMM: 4, HeightMM: 4},
			{Name: "a_symbol", WidthMM: 8, HeightMM: 8},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, c.Count())
		assert.Equal(t, []string{"b_symbol", "a_symbol"}, c.Names())
	})

	t.Run("正常系: テンプレートがロード時に付与される", func(t *testing.T) {
		c, err := NewCatalog([]Symbol{
			{Name: "diameter_callout", WidthMM: 4, HeightMM: 4},
		})

		require.NoError(t, err)
		sym, err := c.Get("diameter_callout")
		require.NoError(t, err)
		assert.Equal(t, TemplateDiameter, sym.Template)
	})

	t.Run("異常系: 重複した名前", func(t *testing.T) {
		_, err := NewCatalog([]Symbol{
			{Name: "dup", WidthMM: 4, HeightMM: 4},
			{Name: "dup", WidthMM: 8, HeightMM: 8},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate symbol name")
	})

	t.Run("異常系: 空の名前", func(t *testing.T) {
		_, err := NewCatalog([]Symbol{{Name: "", WidthMM: 4, HeightMM: 4}})

		assert.Error(t, err)
	})
}

func TestBuiltinCatalog(t *testing.T) {
	c := BuiltinCatalog()

	assert.Equal(t, 7, c.Count())
	assert.Equal(t, []string{
		"gdt_flatness",
		"gdt_parallelism",
		"surface_finish_triangle",
		"thread_callout_m6",
		"diameter_symbol",
		"radius_symbol",
		"weld_symbol",
	}, c.Names())

	thread, err := c.Get("thread_callout_m6")
	require.NoError(t, err)
	assert.Equal(t, 12.0, thread.WidthMM)
	assert.Equal(t, 3.0, thread.HeightMM)
	assert.Equal(t, TemplateThreadCallout, thread.Template)

	// すべてのビルトインシンボルは配置可能
	for _, sym := range c.All() {
		assert.True(t, sym.Placeable(), "シンボル %s が配置不能", sym.Name)
	}
}

func TestCatalog_Get(t *testing.T) {
	c := BuiltinCatalog()

	t.Run("正常系: 存在するシンボル", func(t *testing.T) {
		sym, err := c.Get("weld_symbol")

		require.NoError(t, err)
		assert.Equal(t, "weld_symbol", sym.Name)
		assert.Equal(t, 6.0, sym.WidthMM)
	})

	t.Run("異常系: 存在しないシンボル", func(t *testing.T) {
		_, err := c.Get("missing_symbol")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "symbol not found")
	})
}

func TestSymbol_Placeable(t *testing.T) {
	tests := []struct {
		name   string
		symbol Symbol
		want   bool
	}{
		{
			name:   "有効な寸法",
			symbol: Symbol{Name: "ok", WidthMM: 4, HeightMM: 4},
			want:   true,
		},
		{
			name:   "幅がゼロ",
			symbol: Symbol{Name: "zero_w", WidthMM: 0, HeightMM: 4},
			want:   false,
		},
		{
			name:   "高さがゼロ",
			symbol: Symbol{Name: "zero_h", WidthMM: 4, HeightMM: 0},
			want:   false,
		},
		{
			name:   "負の幅",
			symbol: Symbol{Name: "neg_w", WidthMM: -1, HeightMM: 4},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.symbol.Placeable())
		})
	}
}
