package plotter

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/fogleman/gg"
	"github.com/sirupsen/logrus"
)

const (
	maxTicks   = 8
	tickLength = 3.5 // points
	tickFont   = 10  // points
	titleFont  = 12  // points
	spineWidth = 0.8 // points
)

// Axes is a 2D plotting surface inside a Figure. Artists are recorded as they
// are added and only rasterized when the figure is rendered, so limits always
// reflect every artist.
type Axes struct {
	fig   *Figure
	rect  Rect
	title string
	equal bool

	xlim, ylim *[2]float64

	artists     []artist
	lines       []*Line
	axlines     []*AxLine
	quivers     []*Quiver
	collections []*LineCollection
}

// AxHLine adds a horizontal line across the axes at y.
func (ax *Axes) AxHLine(y float64, style LineStyle) *AxLine {
	l := &AxLine{Pos: y, Style: style}
	ax.axlines = append(ax.axlines, l)
	ax.artists = append(ax.artists, l)
	return l
}

// AxVLine adds a vertical line across the axes at x.
func (ax *Axes) AxVLine(x float64, style LineStyle) *AxLine {
	l := &AxLine{Vertical: true, Pos: x, Style: style}
	ax.axlines = append(ax.axlines, l)
	ax.artists = append(ax.artists, l)
	return l
}

// Plot adds a polyline through the points (x[i], y[i]). It panics if x and y
// differ in length.
func (ax *Axes) Plot(x, y []float64, style LineStyle) *Line {
	if len(x) != len(y) {
		panic(fmt.Sprintf("plotter: x and y must have the same length, have %d and %d", len(x), len(y)))
	}
	l := &Line{X: x, Y: y, Style: style}
	ax.lines = append(ax.lines, l)
	ax.artists = append(ax.artists, l)
	return l
}

// Quiver adds a batch of arrows.
func (ax *Axes) Quiver(arrows []Arrow, style QuiverStyle) *Quiver {
	q := &Quiver{Arrows: arrows, Style: style}
	ax.quivers = append(ax.quivers, q)
	ax.artists = append(ax.artists, q)
	return q
}

// AddCollection adds a line collection and returns it.
func (ax *Axes) AddCollection(lc *LineCollection) *LineCollection {
	ax.collections = append(ax.collections, lc)
	ax.artists = append(ax.artists, lc)
	return lc
}

// SetAspectEqual makes one data unit span the same number of pixels on both
// axes by widening the narrower data range.
func (ax *Axes) SetAspectEqual() { ax.equal = true }

// AspectEqual reports whether SetAspectEqual was called.
func (ax *Axes) AspectEqual() bool { return ax.equal }

func (ax *Axes) SetTitle(title string) { ax.title = title }

// SetXLim fixes the x view limits, disabling autoscaling on x.
func (ax *Axes) SetXLim(lo, hi float64) { ax.xlim = &[2]float64{lo, hi} }

// SetYLim fixes the y view limits, disabling autoscaling on y.
func (ax *Axes) SetYLim(lo, hi float64) { ax.ylim = &[2]float64{lo, hi} }

func (ax *Axes) Lines() []*Line                 { return ax.lines }
func (ax *Axes) AxLines() []*AxLine             { return ax.axlines }
func (ax *Axes) Quivers() []*Quiver             { return ax.quivers }
func (ax *Axes) Collections() []*LineCollection { return ax.collections }

// Limits returns the view limits the axes would be rendered with.
func (ax *Axes) Limits() (xmin, xmax, ymin, ymax float64) {
	b := emptyBounds()
	for _, a := range ax.artists {
		a.extend(&b)
	}
	if ax.xlim != nil {
		xmin, xmax = ax.xlim[0], ax.xlim[1]
	} else {
		xmin, xmax = autoRange(b.xmin, b.xmax)
	}
	if ax.ylim != nil {
		ymin, ymax = ax.ylim[0], ax.ylim[1]
	} else {
		ymin, ymax = autoRange(b.ymin, b.ymax)
	}
	if ax.equal {
		bx := ax.pixelBox()
		sx := (xmax - xmin) / bx.w
		sy := (ymax - ymin) / bx.h
		if sx > sy {
			c, half := (ymin+ymax)/2, sx*bx.h/2
			ymin, ymax = c-half, c+half
		} else {
			c, half := (xmin+xmax)/2, sy*bx.w/2
			xmin, xmax = c-half, c+half
		}
	}
	return xmin, xmax, ymin, ymax
}

func (ax *Axes) pixelBox() box {
	return ax.rect.pixels(ax.fig.opts.Width, ax.fig.opts.Height)
}

func (ax *Axes) render(dc *gg.Context) {
	xmin, xmax, ymin, ymax := ax.Limits()
	t := transform{
		box:  ax.pixelBox(),
		xmin: xmin, xmax: xmax,
		ymin: ymin, ymax: ymax,
		dpi:  ax.fig.opts.DPI,
	}
	ax.fig.log.WithFields(logrus.Fields{
		"artists": len(ax.artists),
		"xlim":    [2]float64{xmin, xmax},
		"ylim":    [2]float64{ymin, ymax},
	}).Debug("rendering axes")

	dc.Push()
	dc.SetColor(color.White)
	dc.DrawRectangle(t.box.x, t.box.y, t.box.w, t.box.h)
	dc.Fill()
	dc.DrawRectangle(t.box.x, t.box.y, t.box.w, t.box.h)
	dc.Clip()

	sorted := make([]artist, len(ax.artists))
	copy(sorted, ax.artists)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].zorder() < sorted[j].zorder()
	})
	for _, a := range sorted {
		a.draw(dc, t)
	}
	dc.ResetClip()
	dc.Pop()

	ax.drawFrame(dc, t)
}

func (ax *Axes) drawFrame(dc *gg.Context, t transform) {
	b := t.box
	dc.SetColor(color.Black)
	dc.SetLineWidth(t.pt(spineWidth))
	dc.DrawRectangle(b.x, b.y, b.w, b.h)
	dc.Stroke()

	dc.SetFontFace(ax.fig.face(tickFont))
	tick := t.pt(tickLength)

	xticks, xstep := niceTicks(t.xmin, t.xmax, maxTicks)
	for _, v := range xticks {
		px, _ := t.px(v, 0)
		dc.DrawLine(px, b.y+b.h, px, b.y+b.h+tick)
		dc.Stroke()
		dc.DrawStringAnchored(formatTick(v, xstep), px, b.y+b.h+2*tick, 0.5, 1)
	}

	yticks, ystep := niceTicks(t.ymin, t.ymax, maxTicks)
	for _, v := range yticks {
		_, py := t.px(0, v)
		dc.DrawLine(b.x-tick, py, b.x, py)
		dc.Stroke()
		dc.DrawStringAnchored(formatTick(v, ystep), b.x-2*tick, py, 1, 0.5)
	}

	if ax.title != "" {
		dc.SetFontFace(ax.fig.face(titleFont))
		dc.DrawStringAnchored(ax.title, b.x+b.w/2, b.y-t.pt(6), 0.5, 0)
	}
}
