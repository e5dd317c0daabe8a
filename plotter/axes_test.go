package plotter

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFigure(t *testing.T, w, h int) *Figure {
	t.Helper()
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewFigure(FigureOptions{Width: w, Height: h, Logger: logger})
}

func TestAxesLimitsAutoscale(t *testing.T) {
	ax := testFigure(t, 200, 200).Axes()
	ax.Plot([]float64{0, 10}, []float64{-2, 2}, DefaultLineStyle())

	xmin, xmax, ymin, ymax := ax.Limits()
	assert.InDelta(t, -0.5, xmin, 1e-12)
	assert.InDelta(t, 10.5, xmax, 1e-12)
	assert.InDelta(t, -2.2, ymin, 1e-12)
	assert.InDelta(t, 2.2, ymax, 1e-12)
}

func TestAxesLimitsIncludeArtists(t *testing.T) {
	ax := testFigure(t, 200, 200).Axes()
	ax.AxVLine(-4, DefaultLineStyle())
	ax.Quiver([]Arrow{{U: 3, V: 1, Color: MustHex("#000000")}}, DefaultQuiverStyle())
	ax.AddCollection(&LineCollection{Segments: []Segment{{{0, 0}, {1, 5}}}})

	xmin, xmax, ymin, ymax := ax.Limits()
	assert.InDelta(t, -4-0.35, xmin, 1e-12)
	assert.InDelta(t, 3+0.35, xmax, 1e-12)
	assert.InDelta(t, -0.25, ymin, 1e-12)
	assert.InDelta(t, 5.25, ymax, 1e-12)
}

func TestAxesLimitsFixed(t *testing.T) {
	ax := testFigure(t, 200, 200).Axes()
	ax.Plot([]float64{0, 10}, []float64{0, 10}, DefaultLineStyle())
	ax.SetXLim(-1, 1)
	ax.SetYLim(2, 3)

	xmin, xmax, ymin, ymax := ax.Limits()
	assert.Equal(t, []float64{-1, 1, 2, 3}, []float64{xmin, xmax, ymin, ymax})
}

func TestAxesAspectEqual(t *testing.T) {
	fig := testFigure(t, 400, 200)
	ax := fig.Axes()
	ax.Plot([]float64{-1, 1}, []float64{-1, 1}, DefaultLineStyle())
	ax.SetAspectEqual()
	require.True(t, ax.AspectEqual())

	xmin, xmax, ymin, ymax := ax.Limits()
	b := ax.pixelBox()
	assert.InDelta(t, (xmax-xmin)/b.w, (ymax-ymin)/b.h, 1e-12)
	// The wide box widens x; y keeps its autoscaled range.
	assert.InDelta(t, -1.1, ymin, 1e-12)
	assert.InDelta(t, 1.1, ymax, 1e-12)
	assert.Less(t, xmin, -1.1)
}

func TestAxesPlotLengthMismatch(t *testing.T) {
	ax := testFigure(t, 100, 100).Axes()
	assert.Panics(t, func() { ax.Plot([]float64{1, 2}, []float64{1}, DefaultLineStyle()) })
}

func TestAxesAccessors(t *testing.T) {
	ax := testFigure(t, 100, 100).Axes()
	l := ax.Plot([]float64{1, 2}, []float64{1, 2}, DefaultLineStyle())
	h := ax.AxHLine(0, DefaultLineStyle())
	q := ax.Quiver(nil, DefaultQuiverStyle())
	lc := ax.AddCollection(&LineCollection{})

	assert.Equal(t, []*Line{l}, ax.Lines())
	assert.Equal(t, []*AxLine{h}, ax.AxLines())
	assert.False(t, h.Vertical)
	assert.Equal(t, []*Quiver{q}, ax.Quivers())
	assert.Equal(t, []*LineCollection{lc}, ax.Collections())
}

func TestLineCollectionSegmentColor(t *testing.T) {
	lc := &LineCollection{
		Segments: make([]Segment, 4),
		Array:    []float64{0, 1},
		Cmap:     Gray,
		Norm:     Normalize{VMin: 0, VMax: 1},
	}
	assert.Equal(t, nrgba(Gray(0)), nrgba(lc.SegmentColor(0)))
	assert.Equal(t, nrgba(Gray(1)), nrgba(lc.SegmentColor(1)))
	assert.Equal(t, nrgba(Gray(0)), nrgba(lc.SegmentColor(2)))

	lc.Array = nil
	assert.Equal(t, nrgba(defaultLineColor), nrgba(lc.SegmentColor(3)))
}

func TestRenderLine(t *testing.T) {
	fig := testFigure(t, 200, 200)
	ax := fig.Axes()
	style := LineStyle{Color: MustHex("#ff0000"), Width: 10, Alpha: 1, ZOrder: 2}
	ax.Plot([]float64{-1, 1}, []float64{0, 0}, style)

	img := fig.Render()
	require.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())

	// The axes box spans x 25..180 and y 24..178; the line runs through its middle.
	c := nrgba(img.At(102, 101))
	assert.Greater(t, c.R, uint8(200))
	assert.Less(t, c.G, uint8(60))

	// Outside the axes the background stays white.
	assert.Equal(t, nrgba(MustHex("#ffffff")), nrgba(img.At(2, 2)))
}

func TestRenderQuiverArrow(t *testing.T) {
	fig := testFigure(t, 200, 200)
	ax := fig.Axes()
	ax.Quiver([]Arrow{{U: 1, V: 0, Color: MustHex("#0000ff")}}, QuiverStyle{Width: 0.05, Alpha: 1, ZOrder: 1})
	ax.SetXLim(-1, 1)
	ax.SetYLim(-1, 1)

	img := fig.Render()
	// A point on the shaft, a quarter of the way along the arrow.
	x, y := 25+155*0.625, 24+154*0.5
	c := nrgba(img.At(int(x), int(y)))
	assert.Greater(t, c.B, uint8(200))
	assert.Less(t, c.R, uint8(60))
}

func TestFigureEncoding(t *testing.T) {
	fig := testFigure(t, 120, 80)
	fig.Axes().Plot([]float64{0, 1}, []float64{0, 1}, DefaultLineStyle())

	b, err := fig.PNG()
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 120, 80), img.Bounds())

	s, err := fig.Base64PNG()
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
}

func TestFigureTitleAndBackground(t *testing.T) {
	logger, _ := test.NewNullLogger()
	fig := NewFigure(FigureOptions{Width: 100, Height: 60, Title: "T", Background: "#000000", Logger: logger})
	img := fig.Render()
	assert.Equal(t, nrgba(MustHex("#000000")), nrgba(img.At(99, 59)))
}
