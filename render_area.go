package vizr

type areaStrategy struct{}

func (areaStrategy) Name() string { return "area" }

// Render draws a filled area per series. With several measures the layers
// stack on a cumulative baseline and the value domain already covers the
// cumulative maximum; a single measure gets a filled area plus an outline
// line for definition.
func (areaStrategy) Render(ctx *RenderContext, in ChartInput) {
	if len(in.DimensionKeys) == 0 || len(in.Series) == 0 {
		log().Warn().Str("strategy", "area").Msg("area chart requires one dimension and one measure")
		return
	}
	drawAxes(ctx, in.X, in.Y)
	if in.Settings.Interactions.Brush.Enabled {
		ctx.EnableBrush()
	}
	visible := VisibleSeries(in.Series)
	if len(visible) == 0 {
		return
	}
	if len(visible) == 1 {
		renderSingleArea(ctx, in, visible[0])
		return
	}
	renderStackedArea(ctx, in, visible)
}

func renderSingleArea(ctx *RenderContext, in ChartInput, s Series) {
	var (
		xKey  = in.DimensionKeys[0]
		zeroY = in.Y.Number.Scale(0)
		area  = Mark{Kind: MarkPath, SeriesID: s.ID, Fill: s.Color, Stroke: s.Color, Filled: true}
		line  = Mark{Kind: MarkPath, SeriesID: s.ID, Stroke: s.Color, Fill: s.Color}
		first = -1.0
		last  = -1.0
	)
	for _, pt := range s.Points {
		x, ok := in.X.Position(pt.Dimensions[xKey])
		if !ok || IsMissing(pt.Value) {
			continue
		}
		y := in.Y.Number.Scale(pt.Value)
		area.PathPoints = append(area.PathPoints, PathPoint{X: x, Y: y})
		line.PathPoints = append(line.PathPoints, PathPoint{X: x, Y: y})
		if first < 0 {
			first = x
		}
		last = x
		ctx.AddMark(Mark{
			Kind:     MarkPoint,
			SeriesID: s.ID,
			Rows:     []Row{pt.Row},
			DimKey:   xKey,
			DimValue: pt.Dimensions[xKey],
			Label:    s.DisplayName,
			X:        x,
			Y:        y,
			Radius:   pointRadius,
			Fill:     s.Color,
		})
	}
	if len(area.PathPoints) == 0 {
		return
	}
	// close the polygon along the zero baseline
	area.PathPoints = append(area.PathPoints,
		PathPoint{X: last, Y: zeroY},
		PathPoint{X: first, Y: zeroY},
	)
	ctx.AddMark(area)
	ctx.AddMark(line)
}

func renderStackedArea(ctx *RenderContext, in ChartInput, visible []Series) {
	var (
		xKey     = in.DimensionKeys[0]
		zeroY    = in.Y.Number.Scale(0)
		baseline = make([]float64, len(visible[0].Points))
	)
	for _, s := range visible {
		area := Mark{Kind: MarkPath, SeriesID: s.ID, Fill: s.Color, Stroke: s.Color, Filled: true}
		var (
			tops  []PathPoint
			bases []PathPoint
		)
		for i, pt := range s.Points {
			x, ok := in.X.Position(pt.Dimensions[xKey])
			if !ok {
				continue
			}
			value := pt.Value
			if IsMissing(value) {
				value = 0
			}
			var (
				bottom = baseline[i]
				top    = bottom + value
				yTop   = in.Y.Number.Scale(top)
				yBot   = in.Y.Number.Scale(bottom)
			)
			if bottom == 0 {
				yBot = zeroY
			}
			baseline[i] = top
			tops = append(tops, PathPoint{X: x, Y: yTop})
			bases = append(bases, PathPoint{X: x, Y: yBot})
			ctx.AddMark(Mark{
				Kind:     MarkPoint,
				SeriesID: s.ID,
				Rows:     []Row{pt.Row},
				DimKey:   xKey,
				DimValue: pt.Dimensions[xKey],
				Label:    s.DisplayName,
				Missing:  IsMissing(pt.Value),
				X:        x,
				Y:        yTop,
				Radius:   pointRadius,
				Fill:     s.Color,
			})
		}
		if len(tops) == 0 {
			continue
		}
		// top edge left to right, then back along the layer baseline
		area.PathPoints = tops
		for i := len(bases) - 1; i >= 0; i-- {
			area.PathPoints = append(area.PathPoints, bases[i])
		}
		ctx.AddMark(area)
	}
}
