package plotter

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularOnce sync.Once
	regular     *truetype.Font
)

// fontFace returns Go Regular at the given point size. If the embedded font
// cannot be parsed the fixed 7x13 bitmap face is used instead.
func fontFace(points, dpi float64, log logrus.FieldLogger) font.Face {
	regularOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			log.WithError(err).Error("parsing embedded font")
			return
		}
		regular = f
	})
	if regular == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(regular, &truetype.Options{
		Size:    points,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
