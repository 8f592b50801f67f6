package vizr

import (
	"math"
	"strconv"

	"github.com/midbel/svg"
)

type heatmapStrategy struct{}

func (heatmapStrategy) Name() string { return "heatmap" }

const (
	heatLow  = "#eff6ff"
	heatHigh = "#1d4ed8"
)

// Render draws one cell per row, positioned by banded scales over the
// first two dimensions, filled by a sequential interpolation over the
// first measure's value range. A gradient legend strip is drawn along the
// right edge.
func (heatmapStrategy) Render(ctx *RenderContext, in ChartInput) {
	if len(in.DimensionKeys) < 2 {
		log().Warn().Str("strategy", "heatmap").Int("dimensions", len(in.DimensionKeys)).
			Msg("heatmap requires two dimensions")
		return
	}
	if len(in.Series) == 0 {
		log().Warn().Str("strategy", "heatmap").Msg("heatmap requires one measure")
		return
	}
	serie, ok := firstVisible(in.Series)
	if !ok {
		log().Debug().Str("strategy", "heatmap").Msg("no visible series")
		return
	}
	var (
		xKey   = in.DimensionKeys[0]
		yKey   = in.DimensionKeys[1]
		xScale = resolveCategoryScale(in.Dataset.DimensionValues(xKey), NewRange(0, ctx.DrawingWidth()))
		yScale = resolveCategoryScale(in.Dataset.DimensionValues(yKey), NewRange(0, ctx.DrawingHeight()))
	)
	drawAxes(ctx, xScale, yScale)
	if in.Settings.Interactions.Brush.Enabled {
		ctx.EnableBrush()
	}

	var (
		min = math.Inf(1)
		max = math.Inf(-1)
	)
	for _, pt := range serie.Points {
		if IsMissing(pt.Value) {
			continue
		}
		min = math.Min(min, pt.Value)
		max = math.Max(max, pt.Value)
	}
	if math.IsInf(min, 1) {
		min, max = 0, 0
	}

	var (
		cw = xScale.Category.Space()
		ch = yScale.Category.Space()
	)
	for _, pt := range serie.Points {
		var (
			x = xScale.Category.Scale(stringValue(pt.Dimensions[xKey]))
			y = yScale.Category.Scale(stringValue(pt.Dimensions[yKey]))
		)
		mark := Mark{
			Kind:     MarkRect,
			SeriesID: serie.ID,
			Rows:     []Row{pt.Row},
			DimKey:   xKey,
			DimValue: pt.Dimensions[xKey],
			Label:    stringValue(pt.Dimensions[xKey]) + " / " + stringValue(pt.Dimensions[yKey]),
			X:        x + cellGap/2,
			Y:        y + cellGap/2,
			Width:    cw - cellGap,
			Height:   ch - cellGap,
		}
		if IsMissing(pt.Value) {
			mark.Fill = neutralColor
			mark.Missing = true
		} else if max > min {
			mark.Fill = InterpolateColor(heatLow, heatHigh, (pt.Value-min)/(max-min))
		} else {
			mark.Fill = heatHigh
		}
		ctx.AddMark(mark)
	}
	ctx.AddStatic(gradientStrip(ctx, min, max))
}

const cellGap = 2.0

// gradientStrip renders the heatmap color legend: a stack of interpolated
// segments with the value bounds labelled at both ends.
func gradientStrip(ctx *RenderContext, min, max float64) svg.Element {
	const (
		steps = 24
		width = 10.0
	)
	var (
		height = ctx.DrawingHeight() * 0.6
		seg    = height / steps
		g      svg.Group
	)
	g.Transform = svg.Translate(ctx.Width-ctx.Padding.Right+8, ctx.Padding.Top+ctx.DrawingHeight()*0.2)
	for i := 0; i < steps; i++ {
		t := 1 - float64(i)/float64(steps-1)
		var el svg.Rect
		el.Pos = svg.NewPos(0, float64(i)*seg)
		el.Dim = svg.NewDim(width, seg+0.5)
		el.Fill = svg.NewFill(InterpolateColor(heatLow, heatHigh, t))
		g.Append(el.AsElement())
	}
	font := svg.NewFont(FontSize * 0.8)
	top := svg.NewText(strconv.FormatFloat(max, 'f', -1, 64))
	top.Pos = svg.NewPos(width+2, 0)
	top.Font = font
	top.Baseline = "hanging"
	g.Append(top.AsElement())

	bottom := svg.NewText(strconv.FormatFloat(min, 'f', -1, 64))
	bottom.Pos = svg.NewPos(width+2, height)
	bottom.Font = font
	g.Append(bottom.AsElement())
	return g.AsElement()
}
