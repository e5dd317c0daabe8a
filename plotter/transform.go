package plotter

import (
	"math"
	"strconv"
)

// margin added on each side of autoscaled data ranges, as a fraction of the
// range.
const autoMargin = 0.05

// Rect is a rectangle in figure-fraction coordinates with the origin at the
// bottom left.
type Rect struct {
	Left, Bottom, Width, Height float64
}

var defaultAxesRect = Rect{Left: 0.125, Bottom: 0.11, Width: 0.775, Height: 0.77}

// box is a rectangle in pixels with the origin at the top left.
type box struct {
	x, y, w, h float64
}

func (r Rect) pixels(width, height int) box {
	w, h := float64(width), float64(height)
	return box{
		x: r.Left * w,
		y: h - (r.Bottom+r.Height)*h,
		w: r.Width * w,
		h: r.Height * h,
	}
}

type bounds struct {
	xmin, xmax, ymin, ymax float64
}

func emptyBounds() bounds {
	return bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
}

func (b *bounds) addX(x float64) {
	if finite(x) {
		b.xmin = math.Min(b.xmin, x)
		b.xmax = math.Max(b.xmax, x)
	}
}

func (b *bounds) addY(y float64) {
	if finite(y) {
		b.ymin = math.Min(b.ymin, y)
		b.ymax = math.Max(b.ymax, y)
	}
}

func (b *bounds) add(x, y float64) {
	if finite(x) && finite(y) {
		b.addX(x)
		b.addY(y)
	}
}

// autoRange turns a data extent into view limits: an empty extent becomes
// [0, 1], a single value is widened, and a margin is added on both sides.
func autoRange(lo, hi float64) (float64, float64) {
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	d := (hi - lo) * autoMargin
	return lo - d, hi + d
}

// transform maps data coordinates into the pixel box of an axes.
type transform struct {
	box                    box
	xmin, xmax, ymin, ymax float64
	dpi                    float64
}

func (t transform) px(x, y float64) (float64, float64) {
	px := t.box.x + (x-t.xmin)/(t.xmax-t.xmin)*t.box.w
	py := t.box.y + t.box.h - (y-t.ymin)/(t.ymax-t.ymin)*t.box.h
	return px, py
}

// pt converts points to pixels.
func (t transform) pt(v float64) float64 {
	return v * t.dpi / 72
}

// niceTicks returns at most maxTicks+1 tick positions in [lo, hi], spaced by
// 1, 2, 2.5 or 5 times a power of ten.
func niceTicks(lo, hi float64, maxTicks int) ([]float64, float64) {
	if !finite(lo) || !finite(hi) || hi <= lo || maxTicks < 1 {
		return nil, 0
	}
	raw := (hi - lo) / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if m*mag >= raw*(1-1e-9) {
			step = m * mag
			break
		}
	}
	var ticks []float64
	first := math.Ceil(lo/step - 1e-9)
	last := math.Floor(hi/step + 1e-9)
	for k := first; k <= last; k++ {
		ticks = append(ticks, k*step)
	}
	return ticks, step
}

// formatTick prints v with as many decimals as step needs.
func formatTick(v, step float64) string {
	d := 0
	for ; d < 10; d++ {
		scaled := step * math.Pow10(d)
		if math.Abs(scaled-math.Round(scaled)) < 1e-6 {
			break
		}
	}
	if math.Abs(v) < step*1e-9 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', d, 64)
}
