package vizr

import (
	"strconv"
	"time"

	"github.com/midbel/svg"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// drawAxes emits the x and y axis into the context's axis layer,
// replacing whatever the previous draw left there.
func drawAxes(ctx *RenderContext, x, y AxisScale) {
	var g svg.Group
	g.Id = "axis-" + ctx.ID
	bottom := renderAxis(x, OrientBottom, ctx.DrawingWidth(), ctx.DrawingHeight(), ctx.Padding.Left, ctx.Height-ctx.Padding.Bottom)
	g.Append(bottom)
	left := renderAxis(y, OrientLeft, ctx.DrawingHeight(), ctx.DrawingWidth(), ctx.Padding.Left, ctx.Padding.Top)
	g.Append(left)
	ctx.axes = g.AsElement()
}

// renderAxis draws the domain line plus ticks and labels for one axis,
// applying the scale's thinning and rotation strategy.
func renderAxis(scale AxisScale, orient Orientation, length, size, left, top float64) svg.Element {
	var g svg.Group
	g.Transform = svg.Translate(left, top)
	d := domainLine(orient, length)
	g.Append(d.AsElement())

	font := svg.NewFont(FontSize)
	switch scale.Kind {
	case ScaleTemporal:
		format := scale.Ticks.TimeFormat
		if format == nil {
			format = func(t time.Time) string {
				return t.Format("1/2/06")
			}
		}
		for _, t := range scale.Time.Values(tickSteps(scale.Ticks.Count)) {
			pos := scale.Time.Scale(t)
			g.Append(renderTick(orient, pos, 0, format(t), 0, font, d.Stroke))
		}
	case ScaleCategorical:
		var (
			align  = scale.Category.Space() / 2
			labels = scale.Category.Values(0)
		)
		for i, s := range labels {
			if !scale.Ticks.ShowLabel(i) {
				continue
			}
			pos := scale.Category.Scale(s)
			g.Append(renderTick(orient, pos, align, s, scale.Ticks.Rotate, font, d.Stroke))
		}
	default:
		format := scale.Ticks.NumberFormat
		if format == nil {
			format = func(f float64) string {
				return strconv.FormatFloat(f, 'f', 2, 64)
			}
		}
		for _, f := range scale.Number.Values(tickSteps(scale.Ticks.Count)) {
			pos := scale.Number.Scale(f)
			g.Append(renderTick(orient, pos, 0, format(f), 0, font, d.Stroke))
		}
	}
	return g.AsElement()
}

// tickSteps converts a label count to the step count the scalers expect;
// Values(c) yields c+1 entries including both domain bounds.
func tickSteps(count int) int {
	if count <= 1 {
		return 1
	}
	return count - 1
}

func renderTick(orient Orientation, pos, align float64, label string, rotate float64, font svg.Font, stroke svg.Stroke) svg.Element {
	var grp svg.Group
	grp.Transform = svg.Translate(pos, 0)
	if orient.Vertical() {
		grp.Transform.TX = 0
		grp.Transform.TY = pos
	}
	tick := lineTick(orient, align, FontSize*0.8, stroke)
	grp.Append(tick.AsElement())

	text := tickText(orient, label, align, font)
	if rotate != 0 {
		text.Transform.RA = rotate
		text.Transform.RX = text.Pos.X
		text.Transform.RY = text.Pos.Y
		text.Anchor = "end"
	}
	grp.Append(text.AsElement())
	return grp.AsElement()
}

func domainLine(orient Orientation, length float64) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
