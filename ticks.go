package vizr

import (
	"math"
	"strconv"
	"time"
)

// TickStrategy carries the axis-tick policy computed with its scale: how
// many ticks on a continuous domain, which categorical labels survive
// thinning, and whether labels are rotated to avoid overlap.
type TickStrategy struct {
	Count        int
	Every        int
	Rotate       float64
	TimeFormat   func(time.Time) string
	NumberFormat func(float64) string
}

// ShowLabel reports whether the categorical label at index i survives
// thinning.
func (t TickStrategy) ShowLabel(i int) bool {
	if t.Every <= 1 {
		return true
	}
	return i%t.Every == 0
}

const (
	pixelsPerTemporalTick = 80.0
	pixelsPerCategory     = 60.0
	rotateThreshold       = 6
	labelRotation         = -45.0
)

func temporalTicks(width float64) TickStrategy {
	count := int(math.Floor(width / pixelsPerTemporalTick))
	if count > 8 {
		count = 8
	}
	if count < 3 {
		count = 3
	}
	return TickStrategy{
		Count: count,
		Every: 1,
		TimeFormat: func(t time.Time) string {
			return t.Format("1/2/06")
		},
	}
}

func categoryTicks(domain []string, width float64) TickStrategy {
	var (
		card  = len(domain)
		max   = int(math.Floor(width / pixelsPerCategory))
		every = 1
	)
	if max > 0 && card > max {
		every = int(math.Ceil(float64(card) / float64(max)))
	}
	strategy := TickStrategy{
		Count: card,
		Every: every,
	}
	if every > 0 {
		visible := int(math.Ceil(float64(card) / float64(every)))
		if visible > rotateThreshold {
			strategy.Rotate = labelRotation
		}
	}
	return strategy
}

func continuousTicks(width float64) TickStrategy {
	count := int(math.Floor(width / pixelsPerTemporalTick))
	if count > 8 {
		count = 8
	}
	if count < 3 {
		count = 3
	}
	return TickStrategy{
		Count: count,
		Every: 1,
		NumberFormat: func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		},
	}
}
