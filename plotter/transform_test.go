package plotter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNiceTicks(t *testing.T) {
	for _, tc := range []struct {
		name     string
		lo, hi   float64
		want     []float64
		wantStep float64
	}{
		{"unit", 0, 1, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, 0.2},
		{"symmetric", -1.1, 1.1, []float64{-1, -0.5, 0, 0.5, 1}, 0.5},
		{"quarter", 0, 2, []float64{0, 0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2}, 0.25},
		{"large", 0, 700, []float64{0, 100, 200, 300, 400, 500, 600, 700}, 100},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ticks, step := niceTicks(tc.lo, tc.hi, 8)
			assert.InDelta(t, tc.wantStep, step, 1e-12)
			assert.InDeltaSlice(t, tc.want, ticks, 1e-12)
		})
	}

	ticks, _ := niceTicks(1, 1, 8)
	assert.Empty(t, ticks)
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "0.25", formatTick(0.25, 0.25))
	assert.Equal(t, "-1.5", formatTick(-1.5, 0.5))
	assert.Equal(t, "300", formatTick(300, 100))
	assert.Equal(t, "0.0", formatTick(-1e-17, 0.5))
}

func TestAutoRange(t *testing.T) {
	lo, hi := autoRange(0, 10)
	assert.InDelta(t, -0.5, lo, 1e-12)
	assert.InDelta(t, 10.5, hi, 1e-12)

	lo, hi = autoRange(2, 2)
	assert.InDelta(t, 1.45, lo, 1e-12)
	assert.InDelta(t, 2.55, hi, 1e-12)

	lo, hi = emptyBounds().xmin, emptyBounds().xmax
	lo, hi = autoRange(lo, hi)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}
