package viz

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"matrixviz-wasm/plotter"
)

var (
	// DefaultVectorColors colors the images of the first and second basis
	// vectors.
	DefaultVectorColors = [2]color.Color{plotter.MustHex("#FFD800"), plotter.MustHex("#00CD79")}

	originAxisColor = plotter.MustHex("#d6d6d6")
	circleColor     = plotter.MustHex("#F57F53")
	cloudColor      = plotter.MustHex("#2EBCE7")
)

type effectOptions struct {
	vectorColors [2]color.Color
}

// An Option configures Matrix2DEffect and Matrix3x2Effect.
type Option func(*effectOptions)

// WithVectorColors sets the colors of the two basis vectors.
func WithVectorColors(first, second color.Color) Option {
	return func(o *effectOptions) {
		o.vectorColors = [2]color.Color{first, second}
	}
}

func newEffectOptions(opts []Option) effectOptions {
	o := effectOptions{vectorColors: DefaultVectorColors}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Matrix2DEffect adds an axes to fig showing the unit circle and the basis
// vectors after applying m.
func Matrix2DEffect(fig *plotter.Figure, m Matrix2, opts ...Option) *plotter.Axes {
	o := newEffectOptions(opts)
	upper, lower := TransformCircle(m)
	vecs := [][2]float64{m.Col(0), m.Col(1)}

	ax := fig.Axes()
	origin := plotter.DefaultLineStyle()
	origin.Color = originAxisColor
	origin.ZOrder = 0
	ax.AxVLine(0, origin)
	ax.AxHLine(0, origin)

	PlotVectors(ax, vecs, o.vectorColors[:], 1)

	circle := plotter.LineStyle{Color: circleColor, Width: 4, Alpha: 1, ZOrder: 2}
	ax.Plot(upper.X, upper.Y, circle)
	ax.Plot(lower.X, lower.Y, circle)
	ax.SetAspectEqual()
	return ax
}

// Matrix3x2Effect adds a 3D axes to fig showing the unit circle mapped into
// space by m, together with the images of the basis vectors.
func Matrix3x2Effect(fig *plotter.Figure, m Matrix3x2, opts ...Option) *plotter.Axes3D {
	o := newEffectOptions(opts)
	pts := ProjectCircle(m)

	ax := fig.Axes3D()
	marker := plotter.DefaultMarkerStyle()
	marker.Color = cloudColor
	marker.Alpha = 0.3
	// One scatter per point.
	for _, p := range pts {
		ax.Scatter([]float64{p.X}, []float64{p.Y}, []float64{p.Z}, marker)
	}

	for j := 0; j < 2; j++ {
		ax.Quiver([]r3.Vec{{}}, []r3.Vec{m.Col(j)}, plotter.ArrowStyle{
			Color:       o.vectorColors[j],
			Alpha:       0.5,
			LineWidth:   1.5,
			LengthRatio: 0.2,
		})
	}
	return ax
}
