//go:build js && wasm

// main.go

package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"syscall/js" // Import the js package

	"github.com/sirupsen/logrus"

	"matrixviz-wasm/plotter"
	"matrixviz-wasm/series"
	"matrixviz-wasm/viz"
)

var log = logrus.New()

// bindingOptions is the options JSON accepted by every exported function.
type bindingOptions struct {
	plotter.FigureOptions
	VectorColors []string       `json:"vectorColors"` // Two hex colors for the basis vectors
	Columns      series.Columns `json:"columns"`      // CSV columns for colorline
	Colormap     string         `json:"cmap"`         // Colormap name for colorline
	Norm         *[2]float64    `json:"norm"`         // [vmin, vmax] for colorline
	LineWidth    float64        `json:"lineWidth"`    // Points, colorline only
	Alpha        *float64       `json:"alpha"`        // Opacity, colorline only
}

func errorResult(format string, a ...interface{}) interface{} {
	return js.ValueOf(map[string]interface{}{
		"error": fmt.Sprintf(format, a...),
	})
}

// parseArgs validates the (data, optionsJSON) argument pair shared by all
// exported functions.
func parseArgs(args []js.Value) (string, bindingOptions, error) {
	var opts bindingOptions
	// Basic argument validation
	if len(args) != 2 {
		return "", opts, fmt.Errorf("invalid number of arguments: expected 2 (data, optionsJSON)")
	}
	if args[0].Type() != js.TypeString || args[1].Type() != js.TypeString {
		return "", opts, fmt.Errorf("invalid argument types: both arguments must be strings")
	}
	if err := json.Unmarshal([]byte(args[1].String()), &opts); err != nil {
		return "", opts, fmt.Errorf("failed to parse options JSON: %w", err)
	}
	opts.Logger = log
	return args[0].String(), opts, nil
}

func vectorColors(opts bindingOptions) []viz.Option {
	if len(opts.VectorColors) == 0 {
		return nil
	}
	if len(opts.VectorColors) != 2 {
		log.WithField("vectorColors", opts.VectorColors).Warn("expected two vector colors, using defaults")
		return nil
	}
	var cs [2]color.Color
	for i, s := range opts.VectorColors {
		c, err := plotter.Hex(s)
		if err != nil {
			log.WithError(err).Warn("invalid vector color, using defaults")
			return nil
		}
		cs[i] = c
	}
	return []viz.Option{viz.WithVectorColors(cs[0], cs[1])}
}

func render(fig *plotter.Figure) interface{} {
	base64Image, err := fig.Base64PNG()
	if err != nil {
		// Return error to JavaScript
		return errorResult("%v", err)
	}
	// Return the base64 encoded image string to JavaScript
	return js.ValueOf(map[string]interface{}{
		"base64Image": base64Image,
	})
}

// matrix2DEffectWasm renders the effect of a 2x2 matrix given as JSON
// ([[a, b], [c, d]]).
func matrix2DEffectWasm(this js.Value, args []js.Value) interface{} {
	data, opts, err := parseArgs(args)
	if err != nil {
		return errorResult("%v", err)
	}
	var m viz.Matrix2
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return errorResult("failed to parse matrix JSON: %v", err)
	}
	fig := plotter.NewFigure(opts.FigureOptions)
	viz.Matrix2DEffect(fig, m, vectorColors(opts)...)
	return render(fig)
}

// matrix3x2EffectWasm renders the effect of a 3x2 matrix given as JSON
// ([[a, b], [c, d], [e, f]]).
func matrix3x2EffectWasm(this js.Value, args []js.Value) interface{} {
	data, opts, err := parseArgs(args)
	if err != nil {
		return errorResult("%v", err)
	}
	var m viz.Matrix3x2
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return errorResult("failed to parse matrix JSON: %v", err)
	}
	fig := plotter.NewFigure(opts.FigureOptions)
	viz.Matrix3x2Effect(fig, m, vectorColors(opts)...)
	return render(fig)
}

// colorlineWasm renders a gradient line through CSV columns.
func colorlineWasm(this js.Value, args []js.Value) interface{} {
	data, opts, err := parseArgs(args)
	if err != nil {
		return errorResult("%v", err)
	}
	s, err := series.ParseCSV(data, opts.Columns, log)
	if err != nil {
		return errorResult("%v", err)
	}

	var lineOpts []viz.ColorLineOption
	if s.Z != nil {
		lineOpts = append(lineOpts, viz.WithValues(s.Z))
	}
	if opts.Colormap != "" {
		cmap, err := plotter.ColormapByName(opts.Colormap)
		if err != nil {
			return errorResult("%v", err)
		}
		lineOpts = append(lineOpts, viz.WithColormap(cmap))
	}
	if opts.Norm != nil {
		lineOpts = append(lineOpts, viz.WithNorm(plotter.Normalize{VMin: opts.Norm[0], VMax: opts.Norm[1]}))
	}
	if opts.LineWidth > 0 {
		lineOpts = append(lineOpts, viz.WithLineWidth(opts.LineWidth))
	}
	if opts.Alpha != nil {
		lineOpts = append(lineOpts, viz.WithAlpha(*opts.Alpha))
	}

	fig := plotter.NewFigure(opts.FigureOptions)
	viz.ColorLine(fig.Axes(), s.X, s.Y, lineOpts...)
	return render(fig)
}

func main() {
	log.Info("Go WASM Initialized (matrixviz)") // Log to browser console
	c := make(chan struct{})
	js.Global().Set("matrix2DEffectGo", js.FuncOf(matrix2DEffectWasm))
	js.Global().Set("matrix3x2EffectGo", js.FuncOf(matrix3x2EffectWasm))
	js.Global().Set("colorlineGo", js.FuncOf(colorlineWasm))
	<-c
}
