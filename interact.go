package vizr

import (
	"fmt"

	"github.com/midbel/svg"
)

type PointerEventKind int

const (
	PointerEnter PointerEventKind = iota
	PointerLeave
	PointerClick
	BrushStart
	BrushMove
	BrushEnd
)

// PointerEvent is one synthetic pointer interaction, in plot coordinates.
// Hosts translate native events into this form and feed them to Dispatch.
type PointerEvent struct {
	Kind PointerEventKind
	X    float64
	Y    float64
}

// Callbacks are the optional upward hooks of a render. A strategy given no
// callbacks still draws correctly; interactions are additive.
type Callbacks struct {
	OnPointClick func(DrillDownSelection)
	OnHover      func(rows []Row, x, y float64)
	OnHoverEnd   func()
	OnBrushEnd   func(Rect)
}

// Controller dispatches pointer events against the retained mark scene:
// tooltip lifecycle on enter/leave, click-to-select, and the brush
// gesture. All handlers run synchronously; brush state lives here and is
// discarded at BrushEnd, so the gesture is single-shot.
type Controller struct {
	ctx *RenderContext
	in  ChartInput

	hovered *Mark

	brushing bool
	originX  float64
	originY  float64
}

func NewController(ctx *RenderContext, in ChartInput) *Controller {
	return &Controller{
		ctx: ctx,
		in:  in,
	}
}

func (c *Controller) Dispatch(ev PointerEvent) {
	if c == nil || c.ctx == nil {
		return
	}
	switch ev.Kind {
	case PointerEnter:
		c.enter(ev)
	case PointerLeave:
		c.leave()
	case PointerClick:
		c.click(ev)
	case BrushStart:
		c.brushStart(ev)
	case BrushMove:
		c.brushMove(ev)
	case BrushEnd:
		c.brushEnd(ev)
	}
}

func (c *Controller) enter(ev PointerEvent) {
	mark := c.ctx.MarkAt(ev.X, ev.Y)
	if mark == nil || !mark.Selectable() {
		c.leave()
		return
	}
	if mark == c.hovered {
		return
	}
	// moving straight from one mark onto another ends the first hover
	c.leave()
	c.hovered = mark
	if c.in.Settings.Tooltips.Show {
		c.ctx.tooltip = tooltipFor(c.ctx, mark)
	}
	if c.in.Callbacks.OnHover != nil {
		b := mark.Bounds()
		cx, cy := b.Center()
		c.in.Callbacks.OnHover(mark.Rows, cx+c.ctx.Padding.Left, cy+c.ctx.Padding.Top)
	}
}

func (c *Controller) leave() {
	if c.hovered == nil {
		return
	}
	c.hovered = nil
	c.ctx.tooltip = nil
	if c.in.Callbacks.OnHoverEnd != nil {
		c.in.Callbacks.OnHoverEnd()
	}
}

// click resolves to every row sharing the clicked mark's dimension value,
// not just the single mark under the pointer.
func (c *Controller) click(ev PointerEvent) {
	mark := c.ctx.MarkAt(ev.X, ev.Y)
	if mark == nil || !mark.Selectable() {
		return
	}
	rows := mark.Rows
	if mark.DimKey != "" {
		rows = c.rowsSharing(mark.DimKey, mark.DimValue)
	}
	if c.in.Callbacks.OnPointClick == nil {
		return
	}
	var (
		b      = mark.Bounds()
		cx, cy = b.Center()
		title  = mark.Label
	)
	if mark.DimKey != "" {
		title = fmt.Sprintf("%s: %s", titleCase(mark.DimKey), stringValue(mark.DimValue))
	}
	c.in.Callbacks.OnPointClick(DrillDownSelection{
		Kind:           SelectionPoint,
		Rows:           rows,
		AnchorPosition: Position{X: cx + c.ctx.Padding.Left, Y: cy + c.ctx.Padding.Top},
		Title:          title,
	})
}

func (c *Controller) rowsSharing(key string, value any) []Row {
	var (
		rows []Row
		seen = make(map[string]struct{})
		want = stringValue(value)
	)
	for _, m := range c.ctx.Marks() {
		if !m.Selectable() || m.DimKey != key || stringValue(m.DimValue) != want {
			continue
		}
		for _, row := range m.Rows {
			k := rowKey(row)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			rows = append(rows, row)
		}
	}
	return rows
}

func (c *Controller) brushStart(ev PointerEvent) {
	if !c.ctx.brushEnabled {
		return
	}
	c.brushing = true
	c.originX, c.originY = ev.X, ev.Y
	box := NewRect(ev.X, ev.Y, 0, 0)
	c.ctx.brushBox = &box
}

func (c *Controller) brushMove(ev PointerEvent) {
	if !c.brushing {
		return
	}
	box := NewRect(c.originX, c.originY, ev.X-c.originX, ev.Y-c.originY)
	c.ctx.brushBox = &box
	// live preview: captured marks at full strength, the rest dimmed
	for _, m := range c.ctx.Marks() {
		if !m.Selectable() {
			continue
		}
		if m.Intersects(box) {
			m.Opacity = 1
		} else {
			m.Opacity = brushDimOpacity
		}
	}
}

// brushEnd fires even when the pointer is released outside the surface;
// the host binds end events on the full surface, not per mark.
func (c *Controller) brushEnd(ev PointerEvent) {
	if !c.brushing {
		return
	}
	c.brushing = false
	box := NewRect(c.originX, c.originY, ev.X-c.originX, ev.Y-c.originY)
	c.restoreOpacity()
	c.ctx.brushBox = nil

	var (
		rows []Row
		seen = make(map[string]struct{})
	)
	for _, m := range c.ctx.MarksIn(box) {
		for _, row := range m.Rows {
			k := rowKey(row)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			rows = append(rows, row)
		}
	}
	if c.in.Callbacks.OnBrushEnd != nil {
		c.in.Callbacks.OnBrushEnd(box)
	}
	if c.in.Callbacks.OnPointClick == nil {
		return
	}
	title := fmt.Sprintf("%d selected records", len(rows))
	if len(rows) == 0 {
		title = "No data selected"
	}
	c.in.Callbacks.OnPointClick(DrillDownSelection{
		Kind:           SelectionBrush,
		Rows:           rows,
		AnchorPosition: Position{X: box.X + c.ctx.Padding.Left, Y: box.Y + c.ctx.Padding.Top},
		Title:          title,
	})
}

func (c *Controller) restoreOpacity() {
	visible := make(map[string]bool, len(c.in.Series))
	for _, s := range c.in.Series {
		visible[s.ID] = s.Visible
	}
	for _, m := range c.ctx.Marks() {
		if on, ok := visible[m.SeriesID]; ok && !on {
			m.Opacity = hiddenOpacity
		} else {
			m.Opacity = 1
		}
	}
}

func rowKey(row Row) string {
	return fmt.Sprint(row.Dimensions, row.Measures)
}

const brushDimOpacity = 0.3

// Tooltip is the positioned hover readout; placement flips horizontally
// and vertically to stay inside the surface.
type Tooltip struct {
	X     float64
	Y     float64
	Lines []string
}

func tooltipFor(ctx *RenderContext, mark *Mark) *Tooltip {
	b := mark.Bounds()
	cx, _ := b.Center()
	lines := []string{mark.Label}
	if len(mark.Rows) > 0 {
		v := mark.Rows[0].Measure(mark.SeriesID)
		if IsMissing(v) {
			lines = append(lines, displayName(mark.SeriesID)+": –")
		} else {
			lines = append(lines, fmt.Sprintf("%s: %g", displayName(mark.SeriesID), v))
		}
	}
	return &Tooltip{
		X:     cx + ctx.Padding.Left,
		Y:     b.Y + ctx.Padding.Top,
		Lines: lines,
	}
}

func (t *Tooltip) compose(ctx *RenderContext) svg.Element {
	var (
		longest int
		pad     = 6.0
	)
	for _, l := range t.Lines {
		if len(l) > longest {
			longest = len(l)
		}
	}
	var (
		w = float64(longest)*FontSize*0.6 + 2*pad
		h = float64(len(t.Lines))*FontSize*1.4 + 2*pad
		x = t.X + 8
		y = t.Y - h - 8
	)
	// flip to stay on the surface
	if x+w > ctx.Width {
		x = t.X - w - 8
	}
	if y < 0 {
		y = t.Y + 8
	}
	var g svg.Group
	g.Id = "node-tooltip-" + ctx.ID
	g.Transform = svg.Translate(x, y)

	var box svg.Rect
	box.Pos = svg.NewPos(0, 0)
	box.Dim = svg.NewDim(w, h)
	box.Fill = svg.NewFill("#ffffff")
	box.Fill.Opacity = 0.95
	g.Append(box.AsElement())

	font := svg.NewFont(FontSize)
	for i, line := range t.Lines {
		txt := svg.NewText(line)
		txt.Pos = svg.NewPos(pad, pad+float64(i+1)*FontSize*1.2)
		txt.Font = font
		g.Append(txt.AsElement())
	}
	return g.AsElement()
}
