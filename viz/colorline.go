package viz

import (
	"gonum.org/v1/gonum/floats"

	"matrixviz-wasm/plotter"
)

type colorLineOptions struct {
	values    []float64
	cmap      plotter.Colormap
	norm      plotter.Normalize
	lineWidth float64
	alpha     float64
}

// A ColorLineOption configures ColorLine.
type ColorLineOption func(*colorLineOptions)

// WithValues sets the scalars mapped to segment colors. Segment i uses
// values[i], cycling when there are fewer values than segments.
func WithValues(values []float64) ColorLineOption {
	return func(o *colorLineOptions) { o.values = values }
}

// WithValue colors every segment with the single scalar v.
func WithValue(v float64) ColorLineOption {
	return func(o *colorLineOptions) { o.values = []float64{v} }
}

func WithColormap(cmap plotter.Colormap) ColorLineOption {
	return func(o *colorLineOptions) { o.cmap = cmap }
}

func WithNorm(norm plotter.Normalize) ColorLineOption {
	return func(o *colorLineOptions) { o.norm = norm }
}

// WithLineWidth sets the line width in points.
func WithLineWidth(w float64) ColorLineOption {
	return func(o *colorLineOptions) { o.lineWidth = w }
}

func WithAlpha(alpha float64) ColorLineOption {
	return func(o *colorLineOptions) { o.alpha = alpha }
}

// DefaultValues returns n values evenly spaced from 0 to 1 inclusive.
func DefaultValues(n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, 1)
}

// ColorLine adds the polyline through (x[i], y[i]) to ax as a collection of
// segments colored through a colormap. Without values the line runs from the
// low end of the colormap at its start to the high end at its finish.
func ColorLine(ax *plotter.Axes, x, y []float64, opts ...ColorLineOption) *plotter.LineCollection {
	o := colorLineOptions{
		cmap:      plotter.Copper,
		norm:      plotter.Normalize{VMin: 0, VMax: 1},
		lineWidth: 3,
		alpha:     1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.values == nil {
		o.values = DefaultValues(len(x))
	}

	return ax.AddCollection(&plotter.LineCollection{
		Segments:  MakeSegments(x, y),
		Array:     o.values,
		Cmap:      o.cmap,
		Norm:      o.norm,
		LineWidth: o.lineWidth,
		Alpha:     o.alpha,
		ZOrder:    2,
	})
}

// MakeSegments pairs consecutive points: segment i runs from (x[i], y[i]) to
// (x[i+1], y[i+1]). y must be at least as long as x.
func MakeSegments(x, y []float64) []plotter.Segment {
	if len(x) < 2 {
		return []plotter.Segment{}
	}
	segs := make([]plotter.Segment, len(x)-1)
	for i := range segs {
		segs[i] = plotter.Segment{{x[i], y[i]}, {x[i+1], y[i+1]}}
	}
	return segs
}
