package vizr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *AggregatedDataset {
	return &AggregatedDataset{
		Data: []Row{
			{
				Dimensions: map[string]any{"date": "2024-01-01"},
				Measures:   map[string]float64{"growth": 10, "humidity_avg": 40},
			},
			{
				Dimensions: map[string]any{"date": "2024-01-02"},
				Measures:   map[string]float64{"growth": math.NaN(), "humidity_avg": 55},
			},
			{
				Dimensions: map[string]any{"date": "2024-01-03"},
				Measures:   map[string]float64{"growth": 30, "humidity_avg": 35},
			},
		},
		Metadata: DatasetMetadata{
			Dimensions: []string{"date"},
			Measures:   []string{"growth", "humidity_avg"},
		},
	}
}

func TestBuildSeries_OnePerMeasure(t *testing.T) {
	series := BuildSeries(sampleDataset(), Category10)
	require.Len(t, series, 2)

	assert.Equal(t, "growth", series[0].ID)
	assert.Equal(t, "Growth", series[0].DisplayName)
	assert.Equal(t, Category10[0], series[0].Color)
	assert.True(t, series[0].Visible)
	assert.Len(t, series[0].Points, 3)

	assert.Equal(t, "humidity_avg", series[1].ID)
	assert.Equal(t, "Humidity (Avg)", series[1].DisplayName)
	assert.Equal(t, Category10[1], series[1].Color)
}

func TestBuildSeries_PaletteWraps(t *testing.T) {
	ds := &AggregatedDataset{
		Data: []Row{{
			Dimensions: map[string]any{"site": "A"},
			Measures:   map[string]float64{"a": 1, "b": 2, "c": 3},
		}},
	}
	palette := Palette{"#111111", "#222222"}
	series := BuildSeries(ds, palette)
	require.Len(t, series, 3)
	assert.Equal(t, "#111111", series[0].Color)
	assert.Equal(t, "#222222", series[1].Color)
	assert.Equal(t, "#111111", series[2].Color)
}

func TestBuildSeries_EmptyDataset(t *testing.T) {
	assert.Empty(t, BuildSeries(&AggregatedDataset{}, Category10))
	assert.Empty(t, BuildSeries(nil, Category10))
}

func TestBuildSeries_ResolvesPointValues(t *testing.T) {
	series := BuildSeries(sampleDataset(), Category10)
	growth := series[0]
	assert.Equal(t, 10.0, growth.Points[0].Value)
	assert.True(t, IsMissing(growth.Points[1].Value))
	assert.Equal(t, 30.0, growth.Points[2].Value)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"growth", "Growth"},
		{"revenue_sum", "Revenue (Sum)"},
		{"total_amount_avg", "Total Amount (Avg)"},
		{"site_count", "Site (Count)"},
		{"growth_rate", "Growth Rate"},
		{"min", "Min"},
	}
	for _, tt := range tests {
		if got := displayName(tt.key); got != tt.want {
			t.Errorf("displayName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
