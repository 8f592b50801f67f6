package vizr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seriesWithValues(id string, visible bool, values ...float64) Series {
	s := Series{ID: id, Visible: visible}
	for _, v := range values {
		s.Points = append(s.Points, SeriesPoint{Value: v})
	}
	return s
}

func TestComputeValueDomain_AlwaysIncludesZero(t *testing.T) {
	tests := []struct {
		name   string
		series []Series
	}{
		{"positive values", []Series{seriesWithValues("a", true, 10, 30)}},
		{"negative values", []Series{seriesWithValues("a", true, -5, -30)}},
		{"mixed", []Series{seriesWithValues("a", true, -5, 30)}},
		{"near constant", []Series{seriesWithValues("a", true, 2, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeValueDomain(tt.series, true)
			assert.LessOrEqual(t, d[0], 0.0)
			assert.GreaterOrEqual(t, d[1], 0.0)
		})
	}
}

func TestComputeValueDomain_Padding(t *testing.T) {
	d := ComputeValueDomain([]Series{seriesWithValues("a", true, 10, 30)}, true)
	assert.Equal(t, 0.0, d[0])
	assert.InDelta(t, 33, d[1], 0.001)
}

func TestComputeValueDomain_VisibleOnly(t *testing.T) {
	series := []Series{
		seriesWithValues("big", false, 100),
		seriesWithValues("small", true, 20),
	}
	d := ComputeValueDomain(series, true)
	assert.InDelta(t, 22, d[1], 0.001)

	all := ComputeValueDomain(series, false)
	assert.InDelta(t, 110, all[1], 0.001)
}

func TestComputeValueDomain_IgnoresMissing(t *testing.T) {
	d := ComputeValueDomain([]Series{seriesWithValues("a", true, 10, math.NaN(), 30)}, true)
	assert.InDelta(t, 33, d[1], 0.001)
}

func TestComputeValueDomain_FloorOnDegenerateData(t *testing.T) {
	d := ComputeValueDomain([]Series{seriesWithValues("a", true, 0.5)}, true)
	assert.Equal(t, 10.0, d[1])

	empty := ComputeValueDomain(nil, true)
	assert.Equal(t, [2]float64{0, 10}, empty)
}

func TestComputeStackedDomain_CoversCumulativeMax(t *testing.T) {
	series := []Series{
		seriesWithValues("a", true, 10, 20),
		seriesWithValues("b", true, 5, 30),
	}
	d := ComputeStackedDomain(series, true)
	// cumulative max is 50 at index 1, plus 10% padding
	assert.InDelta(t, 55, d[1], 0.001)
}
