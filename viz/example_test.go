package viz_test

import (
	"fmt"

	"matrixviz-wasm/plotter"
	"matrixviz-wasm/viz"
)

func ExampleMakeSegments() {
	fmt.Println(viz.MakeSegments([]float64{0, 1, 2}, []float64{0, 1, 0}))
	// Output: [[[0 0] [1 1]] [[1 1] [2 0]]]
}

func ExampleDefaultValues() {
	fmt.Println(viz.DefaultValues(5))
	// Output: [0 0.25 0.5 0.75 1]
}

func ExampleMatrix2DEffect() {
	fig := plotter.NewFigure(plotter.FigureOptions{Size: "400x400"})
	ax := viz.Matrix2DEffect(fig, viz.Matrix2{{2, 0}, {0, 1}})
	for _, a := range ax.Quivers()[0].Arrows {
		fmt.Println(a.Tip())
	}
	// Output:
	// 2 0
	// 0 1
}
