// Package plotter is a small retained-mode plotting layer on top of gg.
//
// A Figure owns the drawing context. Axes and Axes3D record artists (lines,
// arrows, line collections, scatter markers) in data coordinates; nothing is
// rasterized until the figure is rendered, at which point limits, ticks and
// projections are computed from everything that was added.
package plotter

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
)

// Figure is a drawing context holding one or more axes. It is not safe for
// concurrent use.
type Figure struct {
	opts FigureOptions
	log  logrus.FieldLogger
	axes []renderer
}

type renderer interface {
	render(dc *gg.Context)
}

// NewFigure creates an empty figure. Missing or invalid options fall back to
// their defaults.
func NewFigure(opts FigureOptions) *Figure {
	opts.normalize()
	return &Figure{opts: opts, log: opts.Logger}
}

// Options returns the effective options after defaults were applied.
func (f *Figure) Options() FigureOptions { return f.opts }

// Axes adds a new 2D axes covering the default subplot area.
func (f *Figure) Axes() *Axes {
	ax := &Axes{fig: f, rect: defaultAxesRect}
	f.axes = append(f.axes, ax)
	return ax
}

// Axes3D adds a new 3D axes covering the default subplot area.
func (f *Figure) Axes3D() *Axes3D {
	ax := &Axes3D{fig: f, rect: defaultAxesRect, elev: defaultElev, azim: defaultAzim}
	f.axes = append(f.axes, ax)
	return ax
}

// Render rasterizes the figure.
func (f *Figure) Render() image.Image {
	w, h := f.opts.Width, f.opts.Height
	dc := gg.NewContext(w, h)
	var bg color.Color = color.White
	if f.opts.Background != "" {
		bg = MustHex(f.opts.Background)
	}
	dc.SetColor(bg)
	dc.Clear()

	for _, ax := range f.axes {
		ax.render(dc)
	}

	if f.opts.Title != "" {
		dc.SetColor(color.Black)
		dc.SetFontFace(f.face(14))
		dc.DrawStringAnchored(f.opts.Title, float64(w)/2, 25, 0.5, 0.5) // Centered at top
	}

	f.log.WithFields(logrus.Fields{
		"axes":   len(f.axes),
		"width":  w,
		"height": h,
	}).Debug("rendered figure")
	return dc.Image()
}

// PNG renders the figure and encodes it as PNG.
func (f *Figure) PNG() ([]byte, error) {
	return EncodePNG(f.Render())
}

// Base64PNG renders the figure and returns the PNG bytes base64 encoded.
func (f *Figure) Base64PNG() (string, error) {
	b, err := f.PNG()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *Figure) face(points float64) font.Face {
	return fontFace(points, f.opts.DPI, f.log)
}
