package plotter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	defaultWidth  = 768
	defaultHeight = 512
	defaultDPI    = 100
)

// FigureOptions holds the configuration for a figure.
type FigureOptions struct {
	Width      int     `json:"width"`                // Output image width (overridden by Size if provided)
	Height     int     `json:"height"`               // Output image height (overridden by Size if provided)
	Size       string  `json:"size,omitempty"`       // Output image size as "WIDTHxHEIGHT" string (e.g., "800x600")
	DPI        float64 `json:"dpi,omitempty"`        // Pixels per inch; line widths and fonts are given in points
	Title      string  `json:"title,omitempty"`      // Figure title drawn centered at the top
	Background string  `json:"background,omitempty"` // Hex background color, white if empty

	Logger logrus.FieldLogger `json:"-"`
}

// ParseSize parses a "WIDTHxHEIGHT" string.
func ParseSize(s string) (int, int, error) {
	wh := strings.Split(s, "x")
	if len(wh) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(wh[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(wh[1]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: width and height must be positive integers", s)
	}
	return w, h, nil
}

// normalize fills in defaults. Invalid values are logged and replaced rather
// than rejected.
func (o *FigureOptions) normalize() {
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.Size != "" {
		w, h, err := ParseSize(o.Size)
		if err != nil {
			o.Logger.WithError(err).Warn("ignoring size option")
		} else {
			o.Width, o.Height = w, h
		}
	}
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.DPI <= 0 {
		o.DPI = defaultDPI
	}
	if o.Background != "" {
		if _, err := Hex(o.Background); err != nil {
			o.Logger.WithError(err).Warn("ignoring background option")
			o.Background = ""
		}
	}
}
