package vizr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemporalTicks_Adaptive(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{100, 3},
		{320, 4},
		{640, 8},
		{2000, 8},
	}
	for _, tt := range tests {
		if got := temporalTicks(tt.width).Count; got != tt.want {
			t.Errorf("temporalTicks(%g).Count = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestTemporalTicks_Format(t *testing.T) {
	ts := temporalTicks(800)
	tm, ok := parseTemporal("2024-03-05")
	assert.True(t, ok)
	assert.Equal(t, "3/5/24", ts.TimeFormat(tm))
}

func TestCategoryTicks_NoThinningBelowDensity(t *testing.T) {
	domain := []string{"a", "b", "c", "d"}
	ts := categoryTicks(domain, 600)
	assert.Equal(t, 1, ts.Every)
	assert.Zero(t, ts.Rotate)
	for i := range domain {
		assert.True(t, ts.ShowLabel(i))
	}
}

func TestCategoryTicks_ThinsEveryNth(t *testing.T) {
	domain := make([]string, 30)
	for i := range domain {
		domain[i] = string(rune('a' + i))
	}
	// width 600 -> maxLabels 10 -> every 3rd label
	ts := categoryTicks(domain, 600)
	assert.Equal(t, 3, ts.Every)
	assert.True(t, ts.ShowLabel(0))
	assert.False(t, ts.ShowLabel(1))
	assert.False(t, ts.ShowLabel(2))
	assert.True(t, ts.ShowLabel(3))
}

func TestCategoryTicks_RotatesWhenDense(t *testing.T) {
	domain := make([]string, 30)
	for i := range domain {
		domain[i] = string(rune('a' + i))
	}
	// 30 labels thinned to 10 visible, still above the rotate threshold
	ts := categoryTicks(domain, 600)
	assert.Equal(t, -45.0, ts.Rotate)

	// 5 visible labels stay horizontal
	ts = categoryTicks(domain[:5], 600)
	assert.Zero(t, ts.Rotate)
}
