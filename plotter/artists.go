package plotter

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Quiver arrow geometry, in multiples of the shaft width.
const (
	headWidth      = 3
	headLength     = 5
	headAxisLength = 4.5
)

// artist is anything an Axes can draw.
type artist interface {
	zorder() float64
	extend(b *bounds)
	draw(dc *gg.Context, t transform)
}

// LineStyle configures stroked artists. Width is in points.
type LineStyle struct {
	Color  color.Color
	Width  float64
	Alpha  float64
	ZOrder float64
}

// DefaultLineStyle returns an opaque 1.5pt line in the default color.
func DefaultLineStyle() LineStyle {
	return LineStyle{Color: defaultLineColor, Width: 1.5, Alpha: 1, ZOrder: 2}
}

// Line is a polyline in data coordinates. Non-finite points break the line.
type Line struct {
	X, Y  []float64
	Style LineStyle
}

func (l *Line) zorder() float64 { return l.Style.ZOrder }

func (l *Line) extend(b *bounds) {
	for i := range l.X {
		b.add(l.X[i], l.Y[i])
	}
}

func (l *Line) draw(dc *gg.Context, t transform) {
	dc.SetColor(withAlpha(l.Style.Color, l.Style.Alpha))
	dc.SetLineWidth(t.pt(l.Style.Width))
	pen := false
	for i := range l.X {
		if !finite(l.X[i]) || !finite(l.Y[i]) {
			pen = false
			continue
		}
		px, py := t.px(l.X[i], l.Y[i])
		if pen {
			dc.LineTo(px, py)
		} else {
			dc.MoveTo(px, py)
			pen = true
		}
	}
	dc.Stroke()
}

// AxLine spans the whole axes at a fixed data coordinate: vertical lines at
// x = Pos, horizontal lines at y = Pos.
type AxLine struct {
	Vertical bool
	Pos      float64
	Style    LineStyle
}

func (l *AxLine) zorder() float64 { return l.Style.ZOrder }

func (l *AxLine) extend(b *bounds) {
	if l.Vertical {
		b.addX(l.Pos)
	} else {
		b.addY(l.Pos)
	}
}

func (l *AxLine) draw(dc *gg.Context, t transform) {
	dc.SetColor(withAlpha(l.Style.Color, l.Style.Alpha))
	dc.SetLineWidth(t.pt(l.Style.Width))
	if l.Vertical {
		px, _ := t.px(l.Pos, 0)
		dc.DrawLine(px, t.box.y, px, t.box.y+t.box.h)
	} else {
		_, py := t.px(0, l.Pos)
		dc.DrawLine(t.box.x, py, t.box.x+t.box.w, py)
	}
	dc.Stroke()
}

// Arrow runs from its tail (X, Y) by the components (U, V), in data units.
type Arrow struct {
	X, Y  float64
	U, V  float64
	Color color.Color
}

// Tip returns the head position of the arrow.
func (a Arrow) Tip() (float64, float64) {
	return a.X + a.U, a.Y + a.V
}

// QuiverStyle configures a Quiver. Width is the shaft width as a fraction of
// the axes width.
type QuiverStyle struct {
	Width  float64
	Alpha  float64
	ZOrder float64
}

// DefaultQuiverStyle returns opaque thin arrows.
func DefaultQuiverStyle() QuiverStyle {
	return QuiverStyle{Width: 0.005, Alpha: 1, ZOrder: 1}
}

// Quiver is a batch of filled arrows scaled in data units on both axes.
type Quiver struct {
	Arrows []Arrow
	Style  QuiverStyle
}

func (q *Quiver) zorder() float64 { return q.Style.ZOrder }

func (q *Quiver) extend(b *bounds) {
	for _, a := range q.Arrows {
		b.add(a.X, a.Y)
		b.add(a.Tip())
	}
}

func (q *Quiver) draw(dc *gg.Context, t transform) {
	width := q.Style.Width * t.box.w
	for _, a := range q.Arrows {
		x0, y0 := t.px(a.X, a.Y)
		x1, y1 := t.px(a.Tip())
		dx, dy := x1-x0, y1-y0
		length := math.Hypot(dx, dy)
		if length == 0 || math.IsNaN(length) {
			continue
		}
		// Short arrows shrink as a whole so the head never overshoots the tail.
		sw := width
		if length < headLength*width {
			sw = length / headLength
		}
		hl, hal, hw := headLength*sw, headAxisLength*sw, headWidth*sw
		outline := [][2]float64{
			{0, -sw / 2},
			{length - hal, -sw / 2},
			{length - hl, -hw / 2},
			{length, 0},
			{length - hl, hw / 2},
			{length - hal, sw / 2},
			{0, sw / 2},
		}
		cos, sin := dx/length, dy/length
		for i, p := range outline {
			px := x0 + p[0]*cos - p[1]*sin
			py := y0 + p[0]*sin + p[1]*cos
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.ClosePath()
		dc.SetColor(withAlpha(a.Color, q.Style.Alpha))
		dc.Fill()
	}
}

// Segment is a pair of (x, y) points.
type Segment [2][2]float64

// LineCollection is a set of independently colored segments. Segment i takes
// its color from Array[i], cycling when Array is shorter than Segments.
// LineWidth is in points.
type LineCollection struct {
	Segments  []Segment
	Array     []float64
	Cmap      Colormap
	Norm      Normalize
	LineWidth float64
	Alpha     float64
	ZOrder    float64
}

// SegmentColor returns the opaque color of segment i before Alpha is applied.
func (lc *LineCollection) SegmentColor(i int) color.Color {
	if len(lc.Array) == 0 {
		return defaultLineColor
	}
	cmap := lc.Cmap
	if cmap == nil {
		cmap = Viridis
	}
	return cmap(lc.Norm.Apply(lc.Array[i%len(lc.Array)]))
}

func (lc *LineCollection) zorder() float64 { return lc.ZOrder }

func (lc *LineCollection) extend(b *bounds) {
	for _, s := range lc.Segments {
		b.add(s[0][0], s[0][1])
		b.add(s[1][0], s[1][1])
	}
}

func (lc *LineCollection) draw(dc *gg.Context, t transform) {
	dc.SetLineWidth(t.pt(lc.LineWidth))
	for i, s := range lc.Segments {
		x0, y0 := t.px(s[0][0], s[0][1])
		x1, y1 := t.px(s[1][0], s[1][1])
		dc.SetColor(withAlpha(lc.SegmentColor(i), lc.Alpha))
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
