package vizr

import (
	"math"
)

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.W && r.X+r.W >= o.X && r.Y <= o.Y+o.H && r.Y+r.H >= o.Y
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

type MarkKind int

const (
	MarkRect MarkKind = iota
	MarkPoint
	MarkWedge
	MarkPath
)

// Mark is one retained visual element in plot coordinates. Strategies emit
// marks; the context composes them to SVG and the interaction controller
// hit-tests and restyles them in place.
type Mark struct {
	Kind     MarkKind
	SeriesID string
	Rows     []Row
	DimKey   string
	DimValue any
	Label    string
	Missing  bool

	// rect geometry (MarkRect), anchor+radius (MarkPoint)
	X      float64
	Y      float64
	Width  float64
	Height float64
	Radius float64

	// wedge geometry (MarkWedge), angles in degrees
	CX         float64
	CY         float64
	StartAngle float64
	SweepAngle float64

	// path geometry (MarkPath), already scaled
	PathPoints []PathPoint
	Filled     bool
	Curved     bool

	Fill    string
	Stroke  string
	Opacity float64
}

type PathPoint struct {
	X   float64
	Y   float64
	Gap bool // start a new subpath here (missing-value gap)
}

// Bounds returns the mark's bounding box, used for tooltip anchoring and
// brush intersection.
func (m *Mark) Bounds() Rect {
	switch m.Kind {
	case MarkPoint:
		return Rect{X: m.X - m.Radius, Y: m.Y - m.Radius, W: 2 * m.Radius, H: 2 * m.Radius}
	case MarkWedge:
		x, y := m.centroid()
		return Rect{X: x, Y: y}
	case MarkPath:
		var (
			minX = math.Inf(1)
			minY = math.Inf(1)
			maxX = math.Inf(-1)
			maxY = math.Inf(-1)
		)
		for _, p := range m.PathPoints {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
		if math.IsInf(minX, 1) {
			return Rect{}
		}
		return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
	default:
		return Rect{X: m.X, Y: m.Y, W: m.Width, H: m.Height}
	}
}

// Contains reports whether the pointer position hits the mark.
func (m *Mark) Contains(x, y float64) bool {
	switch m.Kind {
	case MarkPoint:
		dx, dy := x-m.X, y-m.Y
		r := math.Max(m.Radius, pointHitSlop)
		return dx*dx+dy*dy <= r*r
	case MarkWedge:
		var (
			dx   = x - m.CX
			dy   = y - m.CY
			dist = math.Hypot(dx, dy)
		)
		if dist > m.Radius {
			return false
		}
		angle := math.Atan2(dy, dx) / deg2rad
		if angle < 0 {
			angle += fullCircle
		}
		end := m.StartAngle + m.SweepAngle
		return angle >= m.StartAngle && angle <= end
	case MarkPath:
		return false
	default:
		return m.Bounds().Contains(x, y)
	}
}

// Intersects reports whether the brush rectangle captures the mark: rect
// marks intersect by overlap, point marks by center containment, wedges by
// centroid containment, paths never (their points are the hit targets).
func (m *Mark) Intersects(r Rect) bool {
	switch m.Kind {
	case MarkPoint:
		return r.Contains(m.X, m.Y)
	case MarkWedge:
		x, y := m.centroid()
		return r.Contains(x, y)
	case MarkPath:
		return false
	default:
		return r.Intersects(m.Bounds())
	}
}

func (m *Mark) centroid() (float64, float64) {
	var (
		mid = (m.StartAngle + m.SweepAngle/2) * deg2rad
		r   = m.Radius / 2
	)
	return m.CX + r*math.Cos(mid), m.CY + r*math.Sin(mid)
}

// Selectable reports whether the mark resolves to data rows.
func (m *Mark) Selectable() bool {
	return m.Kind != MarkPath && len(m.Rows) > 0 && !m.Missing
}

const pointHitSlop = 6.0
