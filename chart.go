package vizr

import (
	"fmt"
	"io"
	"time"
)

type ChartType string

const (
	TypeLine                 ChartType = "line"
	TypeBar                  ChartType = "bar"
	TypeArea                 ChartType = "area"
	TypePie                  ChartType = "pie"
	TypeScatter              ChartType = "scatter"
	TypeHeatmap              ChartType = "heatmap"
	TypeBoxPlot              ChartType = "box_plot"
	TypeHistogram            ChartType = "histogram"
	TypeTreemap              ChartType = "treemap"
	TypeTable                ChartType = "table"
	TypeGrowthProgression    ChartType = "growth_progression"
	TypeSpatialEffectiveness ChartType = "spatial_effectiveness"
)

// ChartInput is the common contract every render strategy consumes: the
// series (or raw rows), the resolved scales, the settings, and the
// optional interaction callbacks.
type ChartInput struct {
	Dataset       *AggregatedDataset
	Series        []Series
	DimensionKeys []string
	MeasureKeys   []string
	X             AxisScale
	Y             AxisScale
	ValueDomain   [2]float64
	Settings      VisualizationSettings
	Callbacks     Callbacks
}

// RenderStrategy draws one chart type into the context. Strategies with
// unmet shape preconditions log a diagnostic and emit nothing; they never
// panic or return an error, so one bad configuration cannot blank the
// host surface.
type RenderStrategy interface {
	Name() string
	Render(ctx *RenderContext, in ChartInput)
}

// strategyFor maps a chart type to its strategy. growth_progression and
// spatial_effectiveness are host-level names for line and heatmap;
// histogram bins first and delegates to bar; table emits no marks (the
// host renders the grid itself).
func strategyFor(t ChartType) RenderStrategy {
	switch t {
	case TypeLine, TypeGrowthProgression:
		return lineStrategy{}
	case TypeBar:
		return barStrategy{}
	case TypeArea:
		return areaStrategy{}
	case TypePie:
		return pieStrategy{}
	case TypeScatter:
		return scatterStrategy{}
	case TypeHeatmap, TypeSpatialEffectiveness:
		return heatmapStrategy{}
	case TypeHistogram:
		return histogramStrategy{}
	case TypeTable:
		return tableStrategy{}
	default:
		return nil
	}
}

// tableStrategy is a contract placeholder: the tabular presentation lives
// in the host, so the engine draws nothing for it.
type tableStrategy struct{}

func (tableStrategy) Name() string { return "table" }

func (tableStrategy) Render(ctx *RenderContext, in ChartInput) {}

// Chart drives one rendering surface through the pipeline: validate
// dataset, build series, resolve scales, dispatch the strategy, wire
// interactions. A full render is a clear-and-redraw; the context is
// recreated every cycle so nothing leaks between renders.
type Chart struct {
	Type      ChartType
	Dataset   *AggregatedDataset
	Settings  VisualizationSettings
	Callbacks Callbacks
	Legend    *LegendController
	Metrics   *Metrics

	ctx        *RenderContext
	controller *Controller
	series     []Series
	input      ChartInput
}

func New(chartType ChartType, ds *AggregatedDataset, settings VisualizationSettings) *Chart {
	return &Chart{
		Type:     chartType,
		Dataset:  ds,
		Settings: settings,
		Legend:   NewLegendController(),
	}
}

// Render performs one full cycle. The only error is a dataset schema
// violation, which fails the whole render rather than drawing a partial
// chart; every other failure mode degrades to a reduced or empty visual.
func (c *Chart) Render() error {
	if c.Dataset == nil {
		return fmt.Errorf("render: no dataset")
	}
	if err := c.Dataset.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	settings := c.Settings.Normalize()
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	started := time.Now()

	c.series = c.Legend.Apply(BuildSeries(c.Dataset, settings.Colors.Palette))
	c.input = c.resolveInput(settings)
	c.ctx = NewRenderContext(settings)
	c.ctx.Clear()

	strategy := strategyFor(c.Type)
	if strategy == nil {
		log().Warn().Str("chart_type", string(c.Type)).Msg("unsupported chart type, rendering nothing")
	} else {
		strategy.Render(c.ctx, c.input)
	}

	if settings.Legends.Show && c.Type != TypeTable {
		c.ctx.legend = c.Legend.render(c.ctx, c.series, settings)
	}
	c.controller = NewController(c.ctx, c.input)

	c.Metrics.observe(c.Type, time.Since(started).Seconds(), len(c.ctx.Marks()))
	log().Debug().
		Str("chart_type", string(c.Type)).
		Int("rows", len(c.Dataset.Data)).
		Int("series", len(c.series)).
		Int("marks", len(c.ctx.Marks())).
		Msg("render cycle complete")
	return nil
}

func (c *Chart) resolveInput(settings VisualizationSettings) ChartInput {
	in := ChartInput{
		Dataset:       c.Dataset,
		Series:        c.series,
		DimensionKeys: c.Dataset.DimensionKeys(),
		MeasureKeys:   c.Dataset.MeasureKeys(),
		Settings:      settings,
		Callbacks:     c.Callbacks,
	}
	var (
		width  = settings.Dimensions.Width - DefaultPadding.Horizontal()
		height = settings.Dimensions.Height - DefaultPadding.Vertical()
	)
	if len(in.DimensionKeys) > 0 {
		values := c.Dataset.DimensionValues(in.DimensionKeys[0])
		in.X = ResolveScale(values, settings.Axes.X, NewRange(0, width))
	}
	if c.Type == TypeArea && len(in.MeasureKeys) > 1 {
		in.ValueDomain = ComputeStackedDomain(c.series, true)
	} else {
		in.ValueDomain = ComputeValueDomain(c.series, true)
	}
	if settings.Axes.Y.CustomScale {
		if settings.Axes.Y.MinValue != nil {
			in.ValueDomain[0] = *settings.Axes.Y.MinValue
		}
		if settings.Axes.Y.MaxValue != nil {
			in.ValueDomain[1] = *settings.Axes.Y.MaxValue
		}
	}
	in.Y = ResolveValueScale(in.ValueDomain, NewRange(0, height))
	return in
}

// Context exposes the current surface; nil before the first render.
func (c *Chart) Context() *RenderContext {
	return c.ctx
}

// Controller exposes the pointer-event controller for the current cycle.
func (c *Chart) Controller() *Controller {
	return c.controller
}

// Series returns the derived series of the current cycle.
func (c *Chart) Series() []Series {
	return c.series
}

// ValueDomain returns the value-axis domain of the current cycle.
func (c *Chart) ValueDomain() [2]float64 {
	return c.input.ValueDomain
}

// Toggle flips one series' visibility: marks dim in place, the value
// domain recomputes over the remaining visible series, and the value axis
// redraws. Mark geometry is untouched until the next full render.
func (c *Chart) Toggle(seriesID string) {
	if c.ctx == nil {
		return
	}
	c.Legend.Toggle(c, seriesID)
}

// WriteSVG serializes the current scene; Render must have been called.
func (c *Chart) WriteSVG(w io.Writer) error {
	if c.ctx == nil {
		return fmt.Errorf("write svg: chart not rendered")
	}
	return c.ctx.WriteSVG(w)
}
