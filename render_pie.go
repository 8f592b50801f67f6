package vizr

import (
	"math"
)

type pieStrategy struct{}

func (pieStrategy) Name() string { return "pie" }

// Render draws one wedge per row, angle proportional to the first visible
// measure. Pie has no axes and no brush; the selection model does not
// apply to an angular layout.
func (pieStrategy) Render(ctx *RenderContext, in ChartInput) {
	if len(in.DimensionKeys) == 0 || len(in.Series) == 0 {
		log().Warn().Str("strategy", "pie").Msg("pie chart requires one dimension and one measure")
		return
	}
	serie, ok := firstVisible(in.Series)
	if !ok {
		log().Debug().Str("strategy", "pie").Msg("no visible series")
		return
	}
	var total float64
	for _, pt := range serie.Points {
		if IsMissing(pt.Value) || pt.Value <= 0 {
			continue
		}
		total += pt.Value
	}
	if total <= 0 {
		log().Warn().Str("strategy", "pie").Msg("no positive values to plot")
		return
	}
	var (
		xKey   = in.DimensionKeys[0]
		cx     = ctx.DrawingWidth() / 2
		cy     = ctx.DrawingHeight() / 2
		radius = math.Min(cx, cy) * 0.85
		angle  float64
	)
	for i, pt := range serie.Points {
		if IsMissing(pt.Value) || pt.Value <= 0 {
			continue
		}
		sweep := pt.Value / total * fullCircle
		ctx.AddMark(Mark{
			Kind:       MarkWedge,
			SeriesID:   serie.ID,
			Rows:       []Row{pt.Row},
			DimKey:     xKey,
			DimValue:   pt.Dimensions[xKey],
			Label:      stringValue(pt.Dimensions[xKey]),
			CX:         cx,
			CY:         cy,
			Radius:     radius,
			StartAngle: angle,
			SweepAngle: sweep,
			Fill:       in.Settings.Colors.Palette.At(i),
		})
		angle += sweep
	}
}
