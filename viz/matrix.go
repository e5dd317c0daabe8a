// Package viz visualizes the effect of small linear transformations on the
// unit circle and on the basis vectors, and renders gradient-colored lines.
//
// Every function draws onto an explicit plotter.Figure or plotter.Axes owned
// by the caller. Inputs are not validated: mismatched lengths panic and
// non-finite matrix entries propagate into the drawing.
package viz

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// CirclePoints is the number of x samples per half circle in Matrix2DEffect.
	CirclePoints = 100000
	// circleEdge keeps the samples just inside (-1, 1).
	circleEdge = 0.9998
	// ThetaStep is the angular step of the circle sampled by Matrix3x2Effect.
	ThetaStep = 0.1
)

// Matrix2 is a row-major 2×2 matrix.
type Matrix2 [2][2]float64

// Identity2 is the 2×2 identity.
var Identity2 = Matrix2{{1, 0}, {0, 1}}

// Col returns column j, the image of the j-th basis vector.
func (m Matrix2) Col(j int) [2]float64 {
	return [2]float64{m[0][j], m[1][j]}
}

// Matrix3x2 is a row-major 3×2 matrix mapping the plane into space.
type Matrix3x2 [3][2]float64

// Col returns column j, the image of the j-th basis vector.
func (m Matrix3x2) Col(j int) r3.Vec {
	return r3.Vec{X: m[0][j], Y: m[1][j], Z: m[2][j]}
}

// Dense returns m as a gonum matrix.
func (m Matrix3x2) Dense() *mat.Dense {
	return mat.NewDense(3, 2, []float64{
		m[0][0], m[0][1],
		m[1][0], m[1][1],
		m[2][0], m[2][1],
	})
}

// Curve is a sampled planar curve.
type Curve struct {
	X, Y []float64
}

// UnitCircleHalves samples n evenly spaced x values just inside (-1, 1) and the
// matching non-negative y = sqrt(1 - x²). The lower half is (x, -y).
func UnitCircleHalves(n int) (x, y []float64) {
	x = floats.Span(make([]float64, n), -circleEdge, circleEdge)
	y = make([]float64, n)
	for i, v := range x {
		y[i] = math.Sqrt(1 - v*v)
	}
	return x, y
}

// TransformCircle applies m to the upper and lower halves of the sampled unit
// circle.
func TransformCircle(m Matrix2) (upper, lower Curve) {
	x, y := UnitCircleHalves(CirclePoints)
	return transformHalves(m, x, y)
}

func transformHalves(m Matrix2, x, y []float64) (upper, lower Curve) {
	n := len(x)
	upper = Curve{X: make([]float64, n), Y: make([]float64, n)}
	lower = Curve{X: make([]float64, n), Y: make([]float64, n)}

	floats.ScaleTo(upper.X, m[0][0], x)
	floats.ScaleTo(upper.Y, m[1][0], x)
	copy(lower.X, upper.X)
	copy(lower.Y, upper.Y)

	floats.AddScaled(upper.X, m[0][1], y)
	floats.AddScaled(upper.Y, m[1][1], y)
	floats.AddScaled(lower.X, -m[0][1], y)
	floats.AddScaled(lower.Y, -m[1][1], y)
	return upper, lower
}

// CircleSamples returns (cos θ, sin θ) for θ = 0, ThetaStep, 2·ThetaStep, …
// strictly below 2π.
func CircleSamples() (x1, x2 []float64) {
	n := int(math.Ceil(2 * math.Pi / ThetaStep))
	x1 = make([]float64, n)
	x2 = make([]float64, n)
	for i := range x1 {
		theta := float64(i) * ThetaStep
		x1[i], x2[i] = math.Cos(theta), math.Sin(theta)
	}
	return x1, x2
}

// ProjectCircle left-multiplies the sampled unit circle by m, giving one
// point in space per sample.
func ProjectCircle(m Matrix3x2) []r3.Vec {
	x1, x2 := CircleSamples()
	n := len(x1)
	data := make([]float64, 0, 2*n)
	data = append(data, x1...)
	data = append(data, x2...)

	var out mat.Dense
	out.Mul(m.Dense(), mat.NewDense(2, n, data))

	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = r3.Vec{X: out.At(0, i), Y: out.At(1, i), Z: out.At(2, i)}
	}
	return pts
}
