package vizr

import (
	"math"
)

const (
	domainPadding  = 0.1
	domainMaxFloor = 10.0
)

// ComputeValueDomain recomputes the value-axis domain from the series set,
// restricted to visible series unless visibleOnly is false. Each bound is
// padded outward by 10% of its magnitude, the domain always includes zero,
// and the upper bound is floored at 10 so near-constant data never yields
// a degenerate zero-height axis.
func ComputeValueDomain(series []Series, visibleOnly bool) [2]float64 {
	var (
		min = math.Inf(1)
		max = math.Inf(-1)
	)
	for _, s := range series {
		if visibleOnly && !s.Visible {
			continue
		}
		for _, pt := range s.Points {
			if IsMissing(pt.Value) {
				continue
			}
			if pt.Value < min {
				min = pt.Value
			}
			if pt.Value > max {
				max = pt.Value
			}
		}
	}
	if math.IsInf(min, 1) {
		min, max = 0, 0
	}
	return padDomain(min, max)
}

// ComputeStackedDomain covers the cumulative maximum across layers, for
// stacked area rendering. Missing values contribute nothing to a stack.
func ComputeStackedDomain(series []Series, visibleOnly bool) [2]float64 {
	var (
		totals = make(map[int]float64)
		min    = math.Inf(1)
		max    = math.Inf(-1)
	)
	for _, s := range series {
		if visibleOnly && !s.Visible {
			continue
		}
		for i, pt := range s.Points {
			if IsMissing(pt.Value) {
				continue
			}
			totals[i] += pt.Value
		}
	}
	for _, v := range totals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if math.IsInf(min, 1) {
		min, max = 0, 0
	}
	return padDomain(min, max)
}

func padDomain(min, max float64) [2]float64 {
	var (
		lo = min - domainPadding*math.Abs(min)
		hi = max + domainPadding*math.Abs(max)
	)
	return [2]float64{
		math.Min(0, lo),
		math.Max(hi, domainMaxFloor),
	}
}
