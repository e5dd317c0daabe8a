package plotter

import (
	"image/color"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	defaultElev = 30
	defaultAzim = -60

	// headAngle is the angle between a 3D arrow shaft and each head stroke.
	headAngle = 15 * math.Pi / 180

	// depthShadeMin is the opacity factor of the farthest marker of a shaded
	// scatter.
	depthShadeMin = 0.3
)

var (
	// boxAspect is the relative size of the x, y and z edges of the 3D box.
	boxAspect = r3.Vec{X: 1, Y: 1, Z: 0.75}

	paneColor = color.NRGBA{R: 242, G: 242, B: 242, A: 128}
	gridColor = color.NRGBA{R: 176, G: 176, B: 176, A: 255}
)

// MarkerStyle configures scatter markers. Size is the marker area in
// points squared.
type MarkerStyle struct {
	Color      color.Color
	Size       float64
	Alpha      float64
	DepthShade bool
}

// DefaultMarkerStyle returns opaque, depth shaded markers.
func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{Color: defaultLineColor, Size: 36, Alpha: 1, DepthShade: true}
}

// Scatter3D is one scatter call's worth of markers. Depth shading is computed
// within a single Scatter3D, so a one-point scatter is never shaded.
type Scatter3D struct {
	Points []r3.Vec
	Style  MarkerStyle
}

// ArrowStyle configures 3D arrows. LengthRatio is the head length as a
// fraction of the arrow length.
type ArrowStyle struct {
	Color       color.Color
	Alpha       float64
	LineWidth   float64
	LengthRatio float64
}

// DefaultArrowStyle returns opaque arrows with a 0.3 head ratio.
func DefaultArrowStyle() ArrowStyle {
	return ArrowStyle{Color: defaultLineColor, Alpha: 1, LineWidth: 1.5, LengthRatio: 0.3}
}

// Quiver3D is a batch of line-drawn 3D arrows.
type Quiver3D struct {
	Tails   []r3.Vec
	Vectors []r3.Vec
	Style   ArrowStyle
}

// Lines returns the strokes of arrow i: the shaft from tip to tail followed by
// the two head strokes starting at the tip.
func (q *Quiver3D) Lines(i int) [3][2]r3.Vec {
	tail, v := q.Tails[i], q.Vectors[i]
	tip := r3.Add(tail, v)

	// Heads are the shaft direction rotated both ways about a horizontal axis
	// perpendicular to it.
	axis := r3.Vec{Y: 1}
	if n := math.Hypot(v.X, v.Y); n != 0 {
		axis = r3.Vec{X: v.Y / n, Y: -v.X / n}
	}
	pos := r3.NewRotation(headAngle, axis).Rotate(v)
	neg := r3.NewRotation(-headAngle, axis).Rotate(v)
	return [3][2]r3.Vec{
		{tip, tail},
		{tip, r3.Sub(tip, r3.Scale(q.Style.LengthRatio, pos))},
		{tip, r3.Sub(tip, r3.Scale(q.Style.LengthRatio, neg))},
	}
}

// Axes3D is a 3D plotting surface drawn with an orthographic projection.
type Axes3D struct {
	fig        *Figure
	rect       Rect
	title      string
	elev, azim float64

	scatters []*Scatter3D
	quivers  []*Quiver3D
}

// Scatter adds markers at (x[i], y[i], z[i]). y and z must be at least as
// long as x.
func (ax *Axes3D) Scatter(x, y, z []float64, style MarkerStyle) *Scatter3D {
	pts := make([]r3.Vec, len(x))
	for i := range x {
		pts[i] = r3.Vec{X: x[i], Y: y[i], Z: z[i]}
	}
	s := &Scatter3D{Points: pts, Style: style}
	ax.scatters = append(ax.scatters, s)
	return s
}

// Quiver adds arrows from tails[i] along vecs[i]. vecs must be at least as
// long as tails.
func (ax *Axes3D) Quiver(tails, vecs []r3.Vec, style ArrowStyle) *Quiver3D {
	q := &Quiver3D{
		Tails:   append([]r3.Vec(nil), tails...),
		Vectors: append([]r3.Vec(nil), vecs[:len(tails)]...),
		Style:   style,
	}
	ax.quivers = append(ax.quivers, q)
	return q
}

// SetView sets the elevation and azimuth of the camera, in degrees.
func (ax *Axes3D) SetView(elev, azim float64) { ax.elev, ax.azim = elev, azim }

// View returns the elevation and azimuth of the camera, in degrees.
func (ax *Axes3D) View() (elev, azim float64) { return ax.elev, ax.azim }

func (ax *Axes3D) SetTitle(title string) { ax.title = title }

func (ax *Axes3D) Scatters() []*Scatter3D { return ax.scatters }
func (ax *Axes3D) Quivers() []*Quiver3D   { return ax.quivers }

// Limits returns the autoscaled [min, max] range of the x, y and z axes.
func (ax *Axes3D) Limits() [3][2]float64 {
	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	add := func(p r3.Vec) {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return
		}
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	for _, s := range ax.scatters {
		for _, p := range s.Points {
			add(p)
		}
	}
	for _, q := range ax.quivers {
		for i, t := range q.Tails {
			add(t)
			add(r3.Add(t, q.Vectors[i]))
		}
	}
	var lims [3][2]float64
	for k := 0; k < 3; k++ {
		lims[k][0], lims[k][1] = autoRange(component(lo, k), component(hi, k))
	}
	return lims
}

// camera projects data coordinates onto the axes box.
type camera struct {
	lims      [3][2]float64
	right, up r3.Vec
	toward    r3.Vec
	scale     float64
	cx, cy    float64
}

func (ax *Axes3D) camera(b box) camera {
	e, a := ax.elev*math.Pi/180, ax.azim*math.Pi/180
	c := camera{
		lims:   ax.Limits(),
		right:  r3.Vec{X: -math.Sin(a), Y: math.Cos(a)},
		up:     r3.Vec{X: -math.Sin(e) * math.Cos(a), Y: -math.Sin(e) * math.Sin(a), Z: math.Cos(e)},
		toward: r3.Vec{X: math.Cos(e) * math.Cos(a), Y: math.Cos(e) * math.Sin(a), Z: math.Sin(e)},
		cx:     b.x + b.w/2,
		cy:     b.y + b.h/2,
	}
	var maxU, maxV float64
	for i := 0; i < 8; i++ {
		corner := r3.Vec{
			X: (float64(i&1) - 0.5) * boxAspect.X,
			Y: (float64(i>>1&1) - 0.5) * boxAspect.Y,
			Z: (float64(i>>2&1) - 0.5) * boxAspect.Z,
		}
		maxU = math.Max(maxU, math.Abs(r3.Dot(corner, c.right)))
		maxV = math.Max(maxV, math.Abs(r3.Dot(corner, c.up)))
	}
	c.scale = 0.9 * math.Min(b.w/(2*maxU), b.h/(2*maxV))
	return c
}

// normalized maps p into the box centered on the origin.
func (c camera) normalized(p r3.Vec) r3.Vec {
	var n [3]float64
	for k := 0; k < 3; k++ {
		lo, hi := c.lims[k][0], c.lims[k][1]
		n[k] = ((component(p, k)-lo)/(hi-lo) - 0.5) * component(boxAspect, k)
	}
	return r3.Vec{X: n[0], Y: n[1], Z: n[2]}
}

// project returns the pixel position of p and its depth; larger depths are
// closer to the viewer.
func (c camera) project(p r3.Vec) (x, y, depth float64) {
	n := c.normalized(p)
	return c.cx + r3.Dot(n, c.right)*c.scale, c.cy - r3.Dot(n, c.up)*c.scale, r3.Dot(n, c.toward)
}

func (ax *Axes3D) render(dc *gg.Context) {
	b := ax.rect.pixels(ax.fig.opts.Width, ax.fig.opts.Height)
	cam := ax.camera(b)
	pt := func(v float64) float64 { return v * ax.fig.opts.DPI / 72 }

	ax.fig.log.WithFields(logrus.Fields{
		"scatters": len(ax.scatters),
		"quivers":  len(ax.quivers),
		"elev":     ax.elev,
		"azim":     ax.azim,
	}).Debug("rendering 3d axes")

	ax.drawPanes(dc, cam, pt)

	type item struct {
		depth float64
		draw  func()
	}
	var items []item
	for _, s := range ax.scatters {
		s := s
		d := 0.0
		for _, p := range s.Points {
			_, _, pd := cam.project(p)
			d += pd
		}
		if len(s.Points) > 0 {
			d /= float64(len(s.Points))
		}
		items = append(items, item{d, func() { drawScatter(dc, cam, s, pt) }})
	}
	for _, q := range ax.quivers {
		q := q
		d := 0.0
		for i, t := range q.Tails {
			_, _, dt := cam.project(t)
			_, _, dh := cam.project(r3.Add(t, q.Vectors[i]))
			d += (dt + dh) / 2
		}
		if len(q.Tails) > 0 {
			d /= float64(len(q.Tails))
		}
		items = append(items, item{d, func() { drawQuiver3D(dc, cam, q, pt) }})
	}
	// Farthest first.
	sort.SliceStable(items, func(i, j int) bool { return items[i].depth < items[j].depth })
	for _, it := range items {
		it.draw()
	}

	if ax.title != "" {
		dc.SetColor(color.Black)
		dc.SetFontFace(ax.fig.face(titleFont))
		dc.DrawStringAnchored(ax.title, b.x+b.w/2, b.y, 0.5, 0)
	}
}

// drawPanes fills the three box faces farthest from the viewer and draws tick
// grid lines on them.
func (ax *Axes3D) drawPanes(dc *gg.Context, cam camera, pt func(float64) float64) {
	for k := 0; k < 3; k++ {
		i, j := (k+1)%3, (k+2)%3
		far := cam.lims[k][1]
		if component(cam.toward, k) > 0 {
			far = cam.lims[k][0]
		}
		at := func(u, v float64) r3.Vec {
			var p [3]float64
			p[k], p[i], p[j] = far, u, v
			return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
		}
		ilo, ihi := cam.lims[i][0], cam.lims[i][1]
		jlo, jhi := cam.lims[j][0], cam.lims[j][1]

		for n, c := range []r3.Vec{at(ilo, jlo), at(ihi, jlo), at(ihi, jhi), at(ilo, jhi)} {
			x, y, _ := cam.project(c)
			if n == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetColor(paneColor)
		dc.FillPreserve()
		dc.SetColor(gridColor)
		dc.SetLineWidth(pt(spineWidth))
		dc.Stroke()

		dc.SetLineWidth(pt(0.5))
		iticks, _ := niceTicks(ilo, ihi, 5)
		for _, u := range iticks {
			x0, y0, _ := cam.project(at(u, jlo))
			x1, y1, _ := cam.project(at(u, jhi))
			dc.DrawLine(x0, y0, x1, y1)
		}
		jticks, _ := niceTicks(jlo, jhi, 5)
		for _, v := range jticks {
			x0, y0, _ := cam.project(at(ilo, v))
			x1, y1, _ := cam.project(at(ihi, v))
			dc.DrawLine(x0, y0, x1, y1)
		}
		dc.Stroke()
	}
}

func drawScatter(dc *gg.Context, cam camera, s *Scatter3D, pt func(float64) float64) {
	radius := pt(math.Sqrt(s.Style.Size) / 2)
	xs := make([]float64, len(s.Points))
	ys := make([]float64, len(s.Points))
	ds := make([]float64, len(s.Points))
	dmin, dmax := math.Inf(1), math.Inf(-1)
	for i, p := range s.Points {
		xs[i], ys[i], ds[i] = cam.project(p)
		dmin, dmax = math.Min(dmin, ds[i]), math.Max(dmax, ds[i])
	}
	for i := range s.Points {
		if !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		alpha := s.Style.Alpha
		if s.Style.DepthShade && dmax > dmin {
			alpha *= 1 - (1-depthShadeMin)*(dmax-ds[i])/(dmax-dmin)
		}
		dc.SetColor(withAlpha(s.Style.Color, alpha))
		dc.DrawCircle(xs[i], ys[i], radius)
		dc.Fill()
	}
}

func drawQuiver3D(dc *gg.Context, cam camera, q *Quiver3D, pt func(float64) float64) {
	dc.SetColor(withAlpha(q.Style.Color, q.Style.Alpha))
	dc.SetLineWidth(pt(q.Style.LineWidth))
	for i := range q.Tails {
		for _, l := range q.Lines(i) {
			x0, y0, _ := cam.project(l[0])
			x1, y1, _ := cam.project(l[1])
			dc.DrawLine(x0, y0, x1, y1)
		}
	}
	dc.Stroke()
}

func component(v r3.Vec, k int) float64 {
	switch k {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
