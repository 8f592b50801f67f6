package vizr

import (
	"github.com/midbel/svg"
)

const hiddenOpacity = 0.2

// LegendController owns series visibility across render cycles: series
// are rebuilt whenever the dataset changes, but the hidden set survives,
// so toggling never re-derives identity or reshuffles colors.
type LegendController struct {
	hidden map[string]bool

	// OnToggle notifies hosts that persist visualization state.
	OnToggle func(seriesID string, visible bool)
}

func NewLegendController() *LegendController {
	return &LegendController{
		hidden: make(map[string]bool),
	}
}

// Apply stamps the stored visibility onto freshly built series.
func (l *LegendController) Apply(series []Series) []Series {
	for i := range series {
		series[i].Visible = !l.hidden[series[i].ID]
	}
	return series
}

func (l *LegendController) SeriesVisible(id string) bool {
	return !l.hidden[id]
}

// Toggle flips one series. Marks dim to the hidden opacity in place
// (nothing is removed from the scene), the value domain recomputes over
// the remaining visible series, and the shared value axis redraws.
func (l *LegendController) Toggle(c *Chart, seriesID string) {
	l.hidden[seriesID] = !l.hidden[seriesID]
	visible := !l.hidden[seriesID]

	for i := range c.series {
		if c.series[i].ID == seriesID {
			c.series[i].Visible = visible
		}
	}
	c.input.Series = c.series

	opacity := 1.0
	if !visible {
		opacity = hiddenOpacity
	}
	c.ctx.SeriesOpacity(seriesID, opacity)

	if c.Type == TypeArea && len(c.input.MeasureKeys) > 1 {
		c.input.ValueDomain = ComputeStackedDomain(c.series, true)
	} else {
		c.input.ValueDomain = ComputeValueDomain(c.series, true)
	}
	height := c.input.Settings.Dimensions.Height - DefaultPadding.Vertical()
	c.input.Y = ResolveValueScale(c.input.ValueDomain, NewRange(0, height))
	if usesSharedScales(c.Type) {
		drawAxes(c.ctx, c.input.X, c.input.Y)
	}
	if c.input.Settings.Legends.Show {
		c.ctx.legend = l.render(c.ctx, c.series, c.input.Settings)
	}
	if l.OnToggle != nil {
		l.OnToggle(seriesID, visible)
	}
}

// usesSharedScales reports whether the chart type draws its axes from the
// chart-level scales; scatter and heatmap resolve their own.
func usesSharedScales(t ChartType) bool {
	switch t {
	case TypeLine, TypeGrowthProgression, TypeBar, TypeArea:
		return true
	default:
		return false
	}
}

// render draws one swatch and label per series; hidden series show dimmed
// so the toggle affordance stays visible.
func (l *LegendController) render(ctx *RenderContext, series []Series, settings VisualizationSettings) svg.Element {
	if len(series) == 0 {
		return nil
	}
	var (
		offset = FontSize * 1.4
		g      svg.Group
		font   = svg.NewFont(FontSize)
	)
	g.Id = "legend-" + ctx.ID
	vertical := settings.Legends.Position == "left" || settings.Legends.Position == "right"
	var advance float64
	for i, s := range series {
		var item svg.Group
		if vertical {
			item.Transform = svg.Translate(0, float64(i)*offset)
		} else {
			item.Transform = svg.Translate(advance, 0)
			advance += float64(len(s.DisplayName))*FontSize*0.6 + 40
		}
		opacity := 1.0
		if !s.Visible {
			opacity = 0.4
		}
		var sw svg.Rect
		sw.Pos = svg.NewPos(0, -FontSize*0.8)
		sw.Dim = svg.NewDim(12, 12)
		sw.Fill = svg.NewFill(s.Color)
		sw.Fill.Opacity = opacity
		item.Append(sw.AsElement())

		tx := svg.NewText(s.DisplayName)
		tx.Pos = svg.NewPos(18, 0)
		tx.Font = font
		tx.Baseline = "middle"
		item.Append(tx.AsElement())
		g.Append(item.AsElement())
	}

	var left, top float64
	switch settings.Legends.Position {
	case "top":
		left = ctx.Padding.Left
		top = FontSize * 1.5
	case "left":
		left = 4
		top = ctx.Padding.Top + FontSize
	case "right":
		left = ctx.Width - ctx.Padding.Right + 4
		top = ctx.Padding.Top + FontSize
	default: // bottom
		left = ctx.Padding.Left
		top = ctx.Height - FontSize
	}
	g.Transform = svg.Translate(left, top)
	return g.AsElement()
}
