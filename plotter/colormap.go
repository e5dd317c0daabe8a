package plotter

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// A Colormap maps a normalized scalar in [0, 1] to a color. Values outside
// the range are clamped to the ends of the map.
type Colormap func(t float64) color.Color

// Copper is a black to light copper ramp.
func Copper(t float64) color.Color {
	t = clamp01(t)
	return colorful.Color{R: math.Min(1, 1.25*t), G: 0.7812 * t, B: 0.4975 * t}
}

// Gray is a black to white ramp.
func Gray(t float64) color.Color {
	t = clamp01(t)
	return colorful.Color{R: t, G: t, B: t}
}

// Hot runs black, red, yellow, white.
func Hot(t float64) color.Color {
	t = clamp01(t)
	return colorful.Color{
		R: clamp01(t / 0.365079),
		G: clamp01((t - 0.365079) / (0.746032 - 0.365079)),
		B: clamp01((t - 0.746032) / (1 - 0.746032)),
	}
}

// Cool runs cyan to magenta.
func Cool(t float64) color.Color {
	t = clamp01(t)
	return colorful.Color{R: t, G: 1 - t, B: 1}
}

// HSV cycles through the hue circle at full saturation and value.
func HSV(t float64) color.Color {
	r, g, b := hsv2rgb(clamp01(t), 1, 1)
	return colorful.Color{R: r, G: g, B: b}
}

// Viridis approximates the perceptually uniform map of the same name with
// five evenly spaced stops.
var Viridis = LinearColormap(
	MustHex("#440154"),
	MustHex("#3b528b"),
	MustHex("#21918c"),
	MustHex("#5ec962"),
	MustHex("#fde725"),
)

// LinearColormap interpolates linearly in RGB between evenly spaced stops.
func LinearColormap(stops ...color.Color) Colormap {
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		cs[i], _ = colorful.MakeColor(s)
	}
	return func(t float64) color.Color {
		switch len(cs) {
		case 0:
			return color.Black
		case 1:
			return cs[0]
		}
		pos := clamp01(t) * float64(len(cs)-1)
		i := int(math.Floor(pos))
		if i >= len(cs)-1 {
			return cs[len(cs)-1]
		}
		return cs[i].BlendRgb(cs[i+1], pos-float64(i)).Clamped()
	}
}

// Colormaps holds the named colormaps known to ColormapByName.
var Colormaps = map[string]Colormap{
	"copper":  Copper,
	"gray":    Gray,
	"hot":     Hot,
	"cool":    Cool,
	"hsv":     HSV,
	"viridis": Viridis,
}

// ColormapByName looks up a registered colormap.
func ColormapByName(name string) (Colormap, error) {
	cm, ok := Colormaps[name]
	if !ok {
		names := make([]string, 0, len(Colormaps))
		for n := range Colormaps {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown colormap %q (known: %v)", name, names)
	}
	return cm, nil
}

// Normalize linearly maps [VMin, VMax] onto [0, 1]. It does not clip; the
// colormap clamps out of range values.
type Normalize struct {
	VMin, VMax float64
}

// Apply returns the normalized value of v. A degenerate range maps everything
// to 0.
func (n Normalize) Apply(v float64) float64 {
	if n.VMax == n.VMin {
		return 0
	}
	return (v - n.VMin) / (n.VMax - n.VMin)
}
