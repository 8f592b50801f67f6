package vizr

import (
	"fmt"
	"math"
)

type histogramStrategy struct{}

func (histogramStrategy) Name() string { return "histogram" }

// Render bins the first measure (Sturges' rule) and draws the bins as
// bars. Each bar resolves back to the raw rows it aggregates, so brush
// and click selections drill into the original records.
func (histogramStrategy) Render(ctx *RenderContext, in ChartInput) {
	if len(in.MeasureKeys) == 0 {
		log().Warn().Str("strategy", "histogram").Msg("histogram requires one measure")
		return
	}
	serie, ok := firstVisible(in.Series)
	if !ok {
		log().Debug().Str("strategy", "histogram").Msg("no visible series")
		return
	}
	bins := binPoints(serie.Points)
	if len(bins) == 0 {
		log().Warn().Str("strategy", "histogram").Msg("no defined values to bin")
		return
	}

	labels := make([]any, 0, len(bins))
	maxCount := 0.0
	for _, b := range bins {
		labels = append(labels, b.label)
		if n := float64(len(b.rows)); n > maxCount {
			maxCount = n
		}
	}
	var (
		xScale = ResolveScale(labels, in.Settings.Axes.X, NewRange(0, ctx.DrawingWidth()))
		yScale = ResolveValueScale(padDomain(0, maxCount), NewRange(0, ctx.DrawingHeight()))
		zeroY  = yScale.Number.Scale(0)
		width  = xScale.Band() * barWidthRatio
	)
	drawAxes(ctx, xScale, yScale)
	if in.Settings.Interactions.Brush.Enabled {
		ctx.EnableBrush()
	}

	for _, b := range bins {
		center, ok := xScale.Position(b.label)
		if !ok {
			continue
		}
		y := yScale.Number.Scale(float64(len(b.rows)))
		ctx.AddMark(Mark{
			Kind:     MarkRect,
			SeriesID: serie.ID,
			Rows:     b.rows,
			Label:    b.label,
			X:        center - width/2,
			Y:        y,
			Width:    width,
			Height:   zeroY - y,
			Fill:     serie.Color,
		})
	}
}

type bin struct {
	label string
	rows  []Row
}

func binPoints(points []SeriesPoint) []bin {
	var values []float64
	for _, pt := range points {
		if !IsMissing(pt.Value) {
			values = append(values, pt.Value)
		}
	}
	if len(values) == 0 {
		return nil
	}
	var (
		min = values[0]
		max = values[0]
	)
	for _, v := range values {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	count := int(math.Ceil(math.Log2(float64(len(values))))) + 1
	if count < 1 {
		count = 1
	}
	width := (max - min) / float64(count)
	if width == 0 {
		width = 1
	}
	bins := make([]bin, count)
	for i := range bins {
		var (
			lo = min + float64(i)*width
			hi = lo + width
		)
		bins[i].label = fmt.Sprintf("%s–%s", formatBound(lo), formatBound(hi))
	}
	for _, pt := range points {
		if IsMissing(pt.Value) {
			continue
		}
		idx := int((pt.Value - min) / width)
		if idx >= count {
			idx = count - 1
		}
		bins[idx].rows = append(bins[idx].rows, pt.Row)
	}
	return bins
}

func formatBound(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
