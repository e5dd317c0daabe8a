package plotter

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// defaultLineColor is used by collections that carry no value array.
var defaultLineColor = MustHex("#1f77b4")

// Hex parses a "#rrggbb" or "#rgb" color code.
func Hex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c.Clamped(), nil
}

// MustHex is like Hex but panics on malformed input. Intended for package level
// color tables.
func MustHex(s string) color.Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// withAlpha returns c with its opacity multiplied by alpha (clamped to [0, 1]).
func withAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * clamp01(alpha)))
	return n
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// hsv2rgb converts HSV color values to RGB.
func hsv2rgb(h, s, v float64) (float64, float64, float64) {
	var r, g, b float64
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch ((int(i) % 6) + 6) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return r, g, b
}
