package viz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestUnitCircleHalves(t *testing.T) {
	x, y := UnitCircleHalves(CirclePoints)
	require.Len(t, x, CirclePoints)
	require.Len(t, y, CirclePoints)
	assert.InDelta(t, -0.9998, x[0], 1e-12)
	assert.InDelta(t, 0.9998, x[len(x)-1], 1e-12)
	for i := range x {
		assert.InDelta(t, 1, x[i]*x[i]+y[i]*y[i], 1e-9)
		if y[i] < 0 {
			t.Fatalf("y[%d] = %v is negative", i, y[i])
		}
	}
}

func TestTransformCircleIdentity(t *testing.T) {
	x, y := UnitCircleHalves(CirclePoints)
	upper, lower := TransformCircle(Identity2)

	assert.True(t, floats.EqualApprox(x, upper.X, 1e-12))
	assert.True(t, floats.EqualApprox(y, upper.Y, 1e-12))
	assert.True(t, floats.EqualApprox(x, lower.X, 1e-12))
	negY := make([]float64, len(y))
	floats.ScaleTo(negY, -1, y)
	assert.True(t, floats.EqualApprox(negY, lower.Y, 1e-12))
}

func TestTransformCircleNegation(t *testing.T) {
	idUpper, idLower := TransformCircle(Identity2)
	upper, lower := TransformCircle(Matrix2{{-1, 0}, {0, -1}})

	for _, tc := range []struct {
		name      string
		got, want []float64
	}{
		{"upper x", upper.X, idUpper.X},
		{"upper y", upper.Y, idUpper.Y},
		{"lower x", lower.X, idLower.X},
		{"lower y", lower.Y, idLower.Y},
	} {
		neg := make([]float64, len(tc.want))
		floats.ScaleTo(neg, -1, tc.want)
		assert.True(t, floats.EqualApprox(neg, tc.got, 1e-12), tc.name)
	}
}

func TestTransformHalvesLinearCombination(t *testing.T) {
	m := Matrix2{{2, 3}, {-1, 4}}
	upper, lower := transformHalves(m, []float64{0.5}, []float64{0.25})
	assert.InDelta(t, 2*0.5+3*0.25, upper.X[0], 1e-12)
	assert.InDelta(t, -1*0.5+4*0.25, upper.Y[0], 1e-12)
	assert.InDelta(t, 2*0.5-3*0.25, lower.X[0], 1e-12)
	assert.InDelta(t, -1*0.5-4*0.25, lower.Y[0], 1e-12)
}

func TestMatrixColumns(t *testing.T) {
	m := Matrix2{{1, 2}, {3, 4}}
	assert.Equal(t, [2]float64{1, 3}, m.Col(0))
	assert.Equal(t, [2]float64{2, 4}, m.Col(1))

	p := Matrix3x2{{1, 2}, {3, 4}, {5, 6}}
	assert.Equal(t, r3.Vec{X: 1, Y: 3, Z: 5}, p.Col(0))
	assert.Equal(t, r3.Vec{X: 2, Y: 4, Z: 6}, p.Col(1))
	r, c := p.Dense().Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 6.0, p.Dense().At(2, 1))
}

func TestCircleSamples(t *testing.T) {
	x1, x2 := CircleSamples()
	require.Len(t, x1, 63)
	require.Len(t, x2, 63)
	assert.Equal(t, 1.0, x1[0])
	assert.Equal(t, 0.0, x2[0])
	assert.InDelta(t, math.Cos(6.2), x1[62], 1e-12)
	assert.InDelta(t, math.Sin(6.2), x2[62], 1e-12)
}

func TestProjectCircle(t *testing.T) {
	x1, x2 := CircleSamples()

	embed := ProjectCircle(Matrix3x2{{1, 0}, {0, 1}, {0, 0}})
	require.Len(t, embed, len(x1))
	for i, p := range embed {
		assert.InDelta(t, x1[i], p.X, 1e-12)
		assert.InDelta(t, x2[i], p.Y, 1e-12)
		assert.Equal(t, 0.0, p.Z)
	}

	m := Matrix3x2{{1, 2}, {3, 4}, {5, 6}}
	for i, p := range ProjectCircle(m) {
		want := r3.Add(r3.Scale(x1[i], m.Col(0)), r3.Scale(x2[i], m.Col(1)))
		assert.InDelta(t, 0, r3.Norm(r3.Sub(want, p)), 1e-12)
	}
}
