package vizr

type barStrategy struct{}

func (barStrategy) Name() string { return "bar" }

// Render draws one bar per row from the first dimension/measure pair.
// Missing values collapse to a thin neutral bar at the baseline rather
// than dropping the row.
func (barStrategy) Render(ctx *RenderContext, in ChartInput) {
	if len(in.DimensionKeys) == 0 || len(in.Series) == 0 {
		log().Warn().Str("strategy", "bar").Msg("bar chart requires one dimension and one measure")
		return
	}
	serie, ok := firstVisible(in.Series)
	if !ok {
		log().Debug().Str("strategy", "bar").Msg("no visible series")
		return
	}
	drawAxes(ctx, in.X, in.Y)
	if in.Settings.Interactions.Brush.Enabled {
		ctx.EnableBrush()
	}

	var (
		xKey  = in.DimensionKeys[0]
		zeroY = in.Y.Number.Scale(0)
		band  = in.X.Band()
	)
	if band <= 0 && len(serie.Points) > 0 {
		band = ctx.DrawingWidth() / float64(len(serie.Points))
	}
	width := band * barWidthRatio

	for _, pt := range serie.Points {
		center, ok := in.X.Position(pt.Dimensions[xKey])
		if !ok {
			continue
		}
		mark := Mark{
			Kind:     MarkRect,
			SeriesID: serie.ID,
			Rows:     []Row{pt.Row},
			DimKey:   xKey,
			DimValue: pt.Dimensions[xKey],
			Label:    stringValue(pt.Dimensions[xKey]),
			X:        center - width/2,
			Width:    width,
			Fill:     serie.Color,
		}
		if IsMissing(pt.Value) {
			mark.Y = zeroY - 1
			mark.Height = 1
			mark.Fill = neutralColor
			mark.Missing = true
		} else {
			y := in.Y.Number.Scale(pt.Value)
			if y <= zeroY {
				mark.Y = y
				mark.Height = zeroY - y
			} else {
				mark.Y = zeroY
				mark.Height = y - zeroY
			}
		}
		ctx.AddMark(mark)
	}
}

const barWidthRatio = 0.8
