package vizr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChart_LineScenario(t *testing.T) {
	ds := &AggregatedDataset{
		Data: []Row{
			{Dimensions: map[string]any{"date": "2024-01-01"}, Measures: map[string]float64{"growth": 10}},
			{Dimensions: map[string]any{"date": "2024-01-02"}, Measures: mustMeasures(`{"growth": null}`)},
			{Dimensions: map[string]any{"date": "2024-01-03"}, Measures: map[string]float64{"growth": 30}},
		},
	}
	chart := New(TypeLine, ds, DefaultSettings())
	require.NoError(t, chart.Render())

	series := chart.Series()
	require.Len(t, series, 1)
	assert.Equal(t, "Growth", series[0].DisplayName)

	domain := chart.ValueDomain()
	assert.LessOrEqual(t, domain[0], 0.0)
	assert.GreaterOrEqual(t, domain[1], 33.0)

	assert.Equal(t, ScaleTemporal, chart.input.X.Kind)
	assert.Equal(t, 3, chart.input.X.Ticks.Count)

	// two plotted points plus one path; the missing row breaks the path
	points := marksOfKind(chart.Context(), MarkPoint)
	assert.Len(t, points, 2)
	paths := marksOfKind(chart.Context(), MarkPath)
	require.Len(t, paths, 1)
}

func TestChart_RenderIdempotent(t *testing.T) {
	chart := New(TypeLine, sampleDataset(), DefaultSettings())
	require.NoError(t, chart.Render())
	var (
		domain1 = chart.ValueDomain()
		colors1 = seriesColors(chart.Series())
	)
	require.NoError(t, chart.Render())
	assert.Equal(t, domain1, chart.ValueDomain())
	assert.Equal(t, colors1, seriesColors(chart.Series()))
}

func TestChart_HeatmapWithOneDimensionDrawsNothing(t *testing.T) {
	chart := New(TypeHeatmap, sampleDataset(), DefaultSettings())
	require.NoError(t, chart.Render())
	assert.Empty(t, chart.Context().Marks())
}

func TestChart_UnsupportedTypeDrawsNothing(t *testing.T) {
	for _, typ := range []ChartType{TypeBoxPlot, TypeTreemap, TypeTable} {
		chart := New(typ, sampleDataset(), DefaultSettings())
		require.NoError(t, chart.Render())
		assert.Empty(t, chart.Context().Marks(), "type %s", typ)
	}
}

func TestChart_AliasesDelegate(t *testing.T) {
	chart := New(TypeGrowthProgression, sampleDataset(), DefaultSettings())
	require.NoError(t, chart.Render())
	assert.NotEmpty(t, marksOfKind(chart.Context(), MarkPath))
}

func TestChart_SchemaViolationFailsWholeRender(t *testing.T) {
	ds := &AggregatedDataset{
		Data: []Row{
			{Dimensions: map[string]any{"date": "d"}, Measures: map[string]float64{"a": 1}},
			{Dimensions: map[string]any{"date": "d"}, Measures: map[string]float64{"b": 2}},
		},
	}
	chart := New(TypeLine, ds, DefaultSettings())
	assert.Error(t, chart.Render())
}

func TestChart_WriteSVG(t *testing.T) {
	chart := New(TypeBar, sampleDataset(), DefaultSettings())
	require.NoError(t, chart.Render())

	var buf bytes.Buffer
	require.NoError(t, chart.WriteSVG(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<svg"))
	assert.Contains(t, out, "rect")
	// axis and legend groups carry per-surface ids
	assert.Contains(t, out, "axis-"+chart.Context().ID)
	assert.Contains(t, out, "legend-"+chart.Context().ID)
}

func TestChart_PieProportionalWedges(t *testing.T) {
	ds := &AggregatedDataset{
		Data: []Row{
			{Dimensions: map[string]any{"site": "A"}, Measures: map[string]float64{"count": 75}},
			{Dimensions: map[string]any{"site": "B"}, Measures: map[string]float64{"count": 25}},
		},
	}
	chart := New(TypePie, ds, DefaultSettings())
	require.NoError(t, chart.Render())

	wedges := marksOfKind(chart.Context(), MarkWedge)
	require.Len(t, wedges, 2)
	assert.InDelta(t, 270, wedges[0].SweepAngle, 0.001)
	assert.InDelta(t, 90, wedges[1].SweepAngle, 0.001)
}

func TestChart_ScatterRequiresTwoMeasures(t *testing.T) {
	ds := &AggregatedDataset{
		Data: []Row{{Dimensions: map[string]any{"d": "x"}, Measures: map[string]float64{"only": 1}}},
	}
	chart := New(TypeScatter, ds, DefaultSettings())
	require.NoError(t, chart.Render())
	assert.Empty(t, chart.Context().Marks())
}

func TestChart_HeatmapCells(t *testing.T) {
	ds := &AggregatedDataset{
		Data: []Row{
			{Dimensions: map[string]any{"day": "Mon", "site": "A"}, Measures: map[string]float64{"temp": 10}},
			{Dimensions: map[string]any{"day": "Tue", "site": "A"}, Measures: map[string]float64{"temp": 20}},
			{Dimensions: map[string]any{"day": "Mon", "site": "B"}, Measures: map[string]float64{"temp": 30}},
			{Dimensions: map[string]any{"day": "Tue", "site": "B"}, Measures: map[string]float64{"temp": 40}},
		},
		Metadata: DatasetMetadata{Dimensions: []string{"day", "site"}, Measures: []string{"temp"}},
	}
	chart := New(TypeHeatmap, ds, DefaultSettings())
	require.NoError(t, chart.Render())

	cells := marksOfKind(chart.Context(), MarkRect)
	require.Len(t, cells, 4)
	// coolest and hottest cells sit at the interpolation extremes
	assert.Equal(t, heatLow, cells[0].Fill)
	assert.Equal(t, heatHigh, cells[3].Fill)
}

func TestChart_StackedAreaDomain(t *testing.T) {
	ds := &AggregatedDataset{
		Data: []Row{
			{Dimensions: map[string]any{"date": "2024-01-01"}, Measures: map[string]float64{"a": 10, "b": 5}},
			{Dimensions: map[string]any{"date": "2024-01-02"}, Measures: map[string]float64{"a": 20, "b": 30}},
		},
		Metadata: DatasetMetadata{Measures: []string{"a", "b"}},
	}
	chart := New(TypeArea, ds, DefaultSettings())
	require.NoError(t, chart.Render())
	assert.InDelta(t, 55, chart.ValueDomain()[1], 0.001)
}

func marksOfKind(ctx *RenderContext, kind MarkKind) []*Mark {
	var out []*Mark
	for _, m := range ctx.Marks() {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func seriesColors(series []Series) []string {
	colors := make([]string, 0, len(series))
	for _, s := range series {
		colors = append(colors, s.Color)
	}
	return colors
}

func mustMeasures(payload string) map[string]float64 {
	var row Row
	if err := row.UnmarshalJSON([]byte(`{"measures": ` + payload + `}`)); err != nil {
		panic(err)
	}
	return row.Measures
}
