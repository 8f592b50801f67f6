package vizr

import (
	"github.com/midbel/slices"
)

const pointRadius = 3.0

type lineStrategy struct{}

func (lineStrategy) Name() string { return "line" }

// Render draws one interpolated path per series plus a point mark at each
// row. Missing values follow the configured policy: break the path, or
// plot a neutral mark at the zero baseline so the row stays visible.
func (lineStrategy) Render(ctx *RenderContext, in ChartInput) {
	if len(in.DimensionKeys) == 0 || len(in.Series) == 0 {
		log().Warn().Str("strategy", "line").Msg("line chart requires one dimension and one measure")
		return
	}
	drawAxes(ctx, in.X, in.Y)
	if in.Settings.Interactions.Brush.Enabled {
		ctx.EnableBrush()
	}

	var (
		xKey  = in.DimensionKeys[0]
		zeroY = in.Y.Number.Scale(0)
	)
	for _, s := range in.Series {
		opacity := 1.0
		if !s.Visible {
			opacity = hiddenOpacity
		}
		path := Mark{
			Kind:     MarkPath,
			SeriesID: s.ID,
			Stroke:   s.Color,
			Fill:     s.Color,
			Curved:   true,
			Opacity:  opacity,
		}
		gap := false
		for _, pt := range s.Points {
			x, ok := in.X.Position(pt.Dimensions[xKey])
			if !ok {
				continue
			}
			if IsMissing(pt.Value) {
				if in.Settings.MissingValues == MissingZero {
					path.PathPoints = append(path.PathPoints, PathPoint{X: x, Y: zeroY, Gap: gap})
					gap = false
					ctx.AddMark(Mark{
						Kind:     MarkPoint,
						SeriesID: s.ID,
						Rows:     []Row{pt.Row},
						DimKey:   xKey,
						DimValue: pt.Dimensions[xKey],
						Label:    s.DisplayName,
						Missing:  true,
						X:        x,
						Y:        zeroY,
						Radius:   pointRadius,
						Fill:     neutralColor,
						Stroke:   neutralColor,
						Opacity:  opacity,
					})
				} else {
					gap = true
				}
				continue
			}
			y := in.Y.Number.Scale(pt.Value)
			path.PathPoints = append(path.PathPoints, PathPoint{X: x, Y: y, Gap: gap})
			gap = false
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
				Opacity:  opacity,
			})
		}
		if len(path.PathPoints) > 0 {
			ctx.AddMark(path)
		}
	}
}

// firstVisible returns the first visible series, for single-track
// strategies.
func firstVisible(series []Series) (Series, bool) {
	visible := VisibleSeries(series)
	if len(visible) == 0 {
		return Series{}, false
	}
	return slices.Fst(visible), true
}
