package viz

import (
	"image/color"

	"matrixviz-wasm/plotter"
)

// vectorWidth is the arrow shaft width as a fraction of the axes width.
const vectorWidth = 0.018

// PlotVectors draws each row of vecs as an arrow from the origin, in data
// units on both axes, with cols[i] as the color of vecs[i]. cols must be at
// least as long as vecs.
func PlotVectors(ax *plotter.Axes, vecs [][2]float64, cols []color.Color, alpha float64) *plotter.Axes {
	arrows := make([]plotter.Arrow, len(vecs))
	for i, v := range vecs {
		arrows[i] = plotter.Arrow{U: v[0], V: v[1], Color: cols[i]}
	}
	ax.Quiver(arrows, plotter.QuiverStyle{Width: vectorWidth, Alpha: alpha, ZOrder: 1})
	return ax
}
