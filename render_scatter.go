package vizr

type scatterStrategy struct{}

func (scatterStrategy) Name() string { return "scatter" }

// Render plots rows as points over the first two measures (x, y). Rows
// missing either coordinate have no position and are left out; the brush
// captures points whose center lies inside the rectangle.
func (scatterStrategy) Render(ctx *RenderContext, in ChartInput) {
	if len(in.MeasureKeys) < 2 {
		log().Warn().Str("strategy", "scatter").Int("measures", len(in.MeasureKeys)).
			Msg("scatter chart requires two measures")
		return
	}
	var (
		xKey = in.MeasureKeys[0]
		yKey = in.MeasureKeys[1]
	)
	// scatter scales over measure values, not the dimension column
	xValues := make([]any, 0, len(in.Dataset.Data))
	for _, row := range in.Dataset.Data {
		if v := row.Measure(xKey); !IsMissing(v) {
			xValues = append(xValues, v)
		}
	}
	var (
		xScale = ResolveScale(xValues, in.Settings.Axes.X, NewRange(0, ctx.DrawingWidth()))
		domain = measureDomain(in.Dataset, yKey, in.Settings.Axes.Y)
		yScale = ResolveValueScale(domain, NewRange(0, ctx.DrawingHeight()))
	)
	drawAxes(ctx, xScale, yScale)
	if in.Settings.Interactions.Brush.Enabled {
		ctx.EnableBrush()
	}

	var (
		dimKey string
		color  = in.Settings.Colors.Palette.At(0)
	)
	if len(in.DimensionKeys) > 0 {
		dimKey = in.DimensionKeys[0]
	}
	for _, row := range in.Dataset.Data {
		var (
			xv = row.Measure(xKey)
			yv = row.Measure(yKey)
		)
		if IsMissing(xv) || IsMissing(yv) {
			continue
		}
		mark := Mark{
			Kind:     MarkPoint,
			SeriesID: yKey,
			Rows:     []Row{row},
			X:        xScale.Number.Scale(xv),
			Y:        yScale.Number.Scale(yv),
			Radius:   pointRadius + 1,
			Fill:     color,
		}
		if dimKey != "" {
			mark.DimKey = dimKey
			mark.DimValue = row.Dimensions[dimKey]
			mark.Label = stringValue(row.Dimensions[dimKey])
		}
		ctx.AddMark(mark)
	}
}

func measureDomain(ds *AggregatedDataset, key string, axis AxisSettings) [2]float64 {
	var (
		min = 0.0
		max = 0.0
		set bool
	)
	for _, row := range ds.Data {
		v := row.Measure(key)
		if IsMissing(v) {
			continue
		}
		if !set {
			min, max, set = v, v, true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	domain := padDomain(min, max)
	if axis.CustomScale {
		if axis.MinValue != nil {
			domain[0] = *axis.MinValue
		}
		if axis.MaxValue != nil {
			domain[1] = *axis.MaxValue
		}
	}
	return domain
}
