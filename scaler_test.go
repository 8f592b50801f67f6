package vizr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTemporal(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{"2024-03-01", true},
		{"2024-03-01T10:00:00Z", true},
		{"03/15/2024", true},
		{"3/5/24", true},
		{"2024/03/01", true},
		{"Clear", false},
		{"Site-42", false},
		{"2024-13-45", false},
		{"2024-03", false},
		{42.0, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsTemporal(tt.value); got != tt.want {
			t.Errorf("IsTemporal(%v) = %t, want %t", tt.value, got, tt.want)
		}
	}
}

func TestResolveScale_Temporal(t *testing.T) {
	values := []any{"2024-01-01", "2024-01-02", "2024-01-03"}
	scale := ResolveScale(values, AxisSettings{}, NewRange(0, 600))
	require.Equal(t, ScaleTemporal, scale.Kind)

	first, ok := scale.Position("2024-01-01")
	require.True(t, ok)
	assert.InDelta(t, 0, first, 0.01)

	last, ok := scale.Position("2024-01-03")
	require.True(t, ok)
	assert.InDelta(t, 600, last, 0.01)

	mid, ok := scale.Position("2024-01-02")
	require.True(t, ok)
	assert.InDelta(t, 300, mid, 0.01)
}

func TestResolveScale_CategoricalFirstOccurrenceOrder(t *testing.T) {
	values := []any{"beta", "alpha", "beta", "gamma", "alpha"}
	scale := ResolveScale(values, AxisSettings{}, NewRange(0, 300))
	require.Equal(t, ScaleCategorical, scale.Kind)
	assert.Equal(t, []string{"beta", "alpha", "gamma"}, scale.Category.Values(0))

	// bands of 100, centers at 50/150/250
	pos, ok := scale.Position("alpha")
	require.True(t, ok)
	assert.InDelta(t, 150, pos, 0.01)
}

func TestResolveScale_Continuous(t *testing.T) {
	values := []any{4.0, 1.0, 9.0}
	scale := ResolveScale(values, AxisSettings{}, NewRange(0, 800))
	require.Equal(t, ScaleContinuous, scale.Kind)

	pos, ok := scale.Position(1.0)
	require.True(t, ok)
	assert.InDelta(t, 0, pos, 0.01)

	pos, ok = scale.Position(9.0)
	require.True(t, ok)
	assert.InDelta(t, 800, pos, 0.01)
}

func TestResolveScale_CustomOverride(t *testing.T) {
	var (
		min = 0.0
		max = 100.0
	)
	values := []any{20.0, 80.0}
	scale := ResolveScale(values, AxisSettings{CustomScale: true, MinValue: &min, MaxValue: &max}, NewRange(0, 100))
	pos, ok := scale.Position(50.0)
	require.True(t, ok)
	assert.InDelta(t, 50, pos, 0.01)
}

func TestResolveScale_PartialOverride(t *testing.T) {
	max := 10.0
	values := []any{2.0, 4.0}
	scale := ResolveScale(values, AxisSettings{CustomScale: true, MaxValue: &max}, NewRange(0, 100))
	// min auto-computed at 2, max forced to 10
	pos, ok := scale.Position(2.0)
	require.True(t, ok)
	assert.InDelta(t, 0, pos, 0.01)
	pos, ok = scale.Position(10.0)
	require.True(t, ok)
	assert.InDelta(t, 100, pos, 0.01)
}

func TestResolveValueScale_Reversed(t *testing.T) {
	scale := ResolveValueScale([2]float64{0, 100}, NewRange(0, 400))
	// larger values map to smaller pixel offsets
	assert.InDelta(t, 0, scale.Number.Scale(100), 0.01)
	assert.InDelta(t, 400, scale.Number.Scale(0), 0.01)
	assert.InDelta(t, 200, scale.Number.Scale(50), 0.01)
}

func TestResolveScale_MixedPartialDateIsCategorical(t *testing.T) {
	// a value only partially matching a date pattern is non-temporal
	scale := ResolveScale([]any{"2024-99-99", "2024-01-01"}, AxisSettings{}, NewRange(0, 100))
	assert.Equal(t, ScaleCategorical, scale.Kind)
}
