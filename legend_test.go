package vizr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_HideRescalesToVisibleSeries(t *testing.T) {
	chart := New(TypeLine, sampleDataset(), DefaultSettings())
	require.NoError(t, chart.Render())

	// growth tops out at 30, humidity at 55
	assert.Equal(t, 60.5, chart.ValueDomain()[1])

	chart.Toggle("humidity_avg")
	assert.Equal(t, [2]float64{0, 33}, chart.ValueDomain())
}

func TestToggle_RoundTripRestoresDomainAndColors(t *testing.T) {
	chart := New(TypeLine, sampleDataset(), DefaultSettings())
	require.NoError(t, chart.Render())

	before := seriesColors(chart.Series())
	domain := chart.ValueDomain()

	chart.Toggle("growth")
	chart.Toggle("growth")

	assert.Equal(t, before, seriesColors(chart.Series()))
	assert.Equal(t, domain, chart.ValueDomain())
	for _, s := range chart.Series() {
		assert.True(t, s.Visible)
	}
}

func TestToggle_DimsMarksInPlace(t *testing.T) {
	chart := New(TypeLine, sampleDataset(), DefaultSettings())
	require.NoError(t, chart.Render())
	total := len(chart.Context().Marks())

	chart.Toggle("growth")
	assert.Len(t, chart.Context().Marks(), total)
	for _, m := range chart.Context().Marks() {
		if m.SeriesID == "growth" {
			assert.Equal(t, hiddenOpacity, m.Opacity)
		} else {
			assert.Equal(t, 1.0, m.Opacity)
		}
	}

	chart.Toggle("growth")
	for _, m := range chart.Context().Marks() {
		assert.Equal(t, 1.0, m.Opacity)
	}
}

func TestToggle_VisibilitySurvivesRerender(t *testing.T) {
	chart := New(TypeLine, sampleDataset(), DefaultSettings())
	require.NoError(t, chart.Render())

	chart.Toggle("humidity_avg")
	require.NoError(t, chart.Render())

	for _, s := range chart.Series() {
		if s.ID == "humidity_avg" {
			assert.False(t, s.Visible)
		} else {
			assert.True(t, s.Visible)
		}
	}
	assert.Equal(t, [2]float64{0, 33}, chart.ValueDomain())
}

func TestToggle_NotifiesHost(t *testing.T) {
	chart := New(TypeLine, sampleDataset(), DefaultSettings())
	require.NoError(t, chart.Render())

	var (
		gotID      string
		gotVisible = true
	)
	chart.Legend.OnToggle = func(id string, visible bool) {
		gotID = id
		gotVisible = visible
	}
	chart.Toggle("growth")
	assert.Equal(t, "growth", gotID)
	assert.False(t, gotVisible)
}

func TestLegendRender_NilForNoSeries(t *testing.T) {
	l := NewLegendController()
	assert.Nil(t, l.render(NewRenderContext(DefaultSettings()), nil, DefaultSettings()))
}
