package vizr

import (
	"bufio"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/midbel/svg"
)

const (
	fullCircle = 360.0
	halfCircle = 180.0
	deg2rad    = math.Pi / halfCircle

	FontSize = 12.0
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

var DefaultPadding = Padding{
	Top:    40,
	Right:  30,
	Bottom: 60,
	Left:   60,
}

// RenderContext owns the rendering surface for one chart: the retained
// mark scene, the static axis layer, and the tooltip and brush
// sub-elements. It is cleared and rebuilt on every render cycle so no
// state leaks across renders.
type RenderContext struct {
	ID     string
	Width  float64
	Height float64
	Padding

	marks        []*Mark
	axes         svg.Element
	static       []svg.Element
	legend       svg.Element
	tooltip      *Tooltip
	brushBox     *Rect
	brushEnabled bool
}

// EnableBrush marks the surface as accepting brush gestures; strategies
// call it for point-selection chart types when the host enables brushing.
func (ctx *RenderContext) EnableBrush() {
	ctx.brushEnabled = true
}

func NewRenderContext(settings VisualizationSettings) *RenderContext {
	return &RenderContext{
		ID:      uuid.NewString(),
		Width:   settings.Dimensions.Width,
		Height:  settings.Dimensions.Height,
		Padding: DefaultPadding,
	}
}

func (ctx *RenderContext) DrawingWidth() float64 {
	return ctx.Width - ctx.Padding.Horizontal()
}

func (ctx *RenderContext) DrawingHeight() float64 {
	return ctx.Height - ctx.Padding.Vertical()
}

// Clear drops all marks and overlays from the prior cycle. Every render
// starts here; partial redraws would leave ghost elements behind.
func (ctx *RenderContext) Clear() {
	ctx.marks = nil
	ctx.axes = nil
	ctx.static = nil
	ctx.legend = nil
	ctx.tooltip = nil
	ctx.brushBox = nil
	ctx.brushEnabled = false
}

// AddMark retains a mark and returns it for later restyling.
func (ctx *RenderContext) AddMark(m Mark) *Mark {
	if m.Opacity == 0 {
		m.Opacity = 1
	}
	p := &m
	ctx.marks = append(ctx.marks, p)
	return p
}

func (ctx *RenderContext) AddStatic(el svg.Element) {
	ctx.static = append(ctx.static, el)
}

func (ctx *RenderContext) Marks() []*Mark {
	return ctx.marks
}

// MarkAt returns the topmost mark under the pointer, in plot coordinates.
func (ctx *RenderContext) MarkAt(x, y float64) *Mark {
	for i := len(ctx.marks) - 1; i >= 0; i-- {
		m := ctx.marks[i]
		if m.Kind == MarkPath {
			continue
		}
		if m.Contains(x, y) {
			return m
		}
	}
	return nil
}

// MarksIn returns all selectable marks captured by the rectangle.
func (ctx *RenderContext) MarksIn(r Rect) []*Mark {
	var hits []*Mark
	for _, m := range ctx.marks {
		if !m.Selectable() {
			continue
		}
		if m.Intersects(r) {
			hits = append(hits, m)
		}
	}
	return hits
}

// SeriesOpacity restyles every mark of one series in place, without
// removing it from the scene.
func (ctx *RenderContext) SeriesOpacity(seriesID string, opacity float64) {
	for _, m := range ctx.marks {
		if m.SeriesID == seriesID {
			m.Opacity = opacity
		}
	}
}

// Compose serializes the current scene. The element tree is rebuilt from
// the retained marks on every call, so restyles need no bookkeeping.
func (ctx *RenderContext) Compose() svg.Element {
	var el svg.SVG
	el.Dim = svg.NewDim(ctx.Width, ctx.Height)
	el.OmitProlog = true

	if ctx.axes != nil {
		el.Append(ctx.axes)
	}
	for _, st := range ctx.static {
		el.Append(st)
	}

	var area svg.Group
	area.Transform = svg.Translate(ctx.Padding.Left, ctx.Padding.Top)
	area.Class = append(area.Class, "area")
	for _, m := range ctx.marks {
		if node := ctx.composeMark(m); node != nil {
			area.Append(node)
		}
	}
	if ctx.brushBox != nil {
		area.Append(composeBrush(*ctx.brushBox))
	}
	el.Append(area.AsElement())

	if ctx.legend != nil {
		el.Append(ctx.legend)
	}
	if ctx.tooltip != nil {
		el.Append(ctx.tooltip.compose(ctx))
	}
	return el.AsElement()
}

// WriteSVG renders the composed scene to w.
func (ctx *RenderContext) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	ctx.Compose().Render(bw)
	return bw.Flush()
}

func (ctx *RenderContext) composeMark(m *Mark) svg.Element {
	switch m.Kind {
	case MarkRect:
		var el svg.Rect
		el.Title = m.Label
		el.Pos = svg.NewPos(m.X, m.Y)
		el.Dim = svg.NewDim(m.Width, m.Height)
		el.Fill = svg.NewFill(m.Fill)
		el.Fill.Opacity = m.Opacity
		return el.AsElement()
	case MarkPoint:
		var el svg.Circle
		el.Pos = svg.NewPos(m.X, m.Y)
		el.Radius = m.Radius
		el.Fill = svg.NewFill(m.Fill)
		el.Fill.Opacity = m.Opacity
		return el.AsElement()
	case MarkWedge:
		return composeWedge(m)
	case MarkPath:
		return composePath(m)
	default:
		return nil
	}
}

func composeWedge(m *Mark) svg.Element {
	var (
		start = m.StartAngle * deg2rad
		end   = (m.StartAngle + m.SweepAngle) * deg2rad
		pat   svg.Path
	)
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(m.Fill)
	pat.Fill.Opacity = m.Opacity

	center := svg.NewPos(m.CX, m.CY)
	pat.AbsMoveTo(center)
	pat.AbsLineTo(posFromAngle(center, start, m.Radius))
	pat.AbsArcTo(posFromAngle(center, end, m.Radius), m.Radius, m.Radius, 0, m.SweepAngle > halfCircle, true)
	pat.AbsLineTo(center)
	pat.ClosePath()
	return pat.AsElement()
}

func composePath(m *Mark) svg.Element {
	if len(m.PathPoints) == 0 {
		return nil
	}
	var (
		pat   = basePath(m.Stroke, m.Fill, m.Filled, m.Opacity)
		prev  svg.Pos
		begun bool
	)
	for _, p := range m.PathPoints {
		pos := svg.NewPos(p.X, p.Y)
		if !begun || p.Gap {
			pat.AbsMoveTo(pos)
			begun = true
			prev = pos
			continue
		}
		if m.Curved {
			var (
				ctrl1 = prev
				ctrl2 = pos
				diff  = (pos.X - prev.X) * curveStretch
			)
			ctrl1.X += diff
			ctrl2.X -= diff
			pat.AbsCubicCurve(pos, ctrl1, ctrl2)
		} else {
			pat.AbsLineTo(pos)
		}
		prev = pos
	}
	if m.Filled {
		pat.ClosePath()
	}
	return pat.AsElement()
}

const curveStretch = 0.5

func basePath(stroke, fill string, filled bool, opacity float64) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	if stroke == "" {
		stroke = fill
	}
	pat.Stroke = svg.NewStroke(stroke, 2)
	pat.Stroke.Opacity = opacity
	if filled {
		pat.Fill = svg.NewFill(fill)
		pat.Fill.Opacity = 0.35 * opacity
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func composeBrush(r Rect) svg.Element {
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.W, r.H)
	el.Fill = svg.NewFill("#000000")
	el.Fill.Opacity = 0.08
	return el.AsElement()
}

func posFromAngle(center svg.Pos, angle, radius float64) svg.Pos {
	return svg.NewPos(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
}
