package plotter

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("800x600")
	require.NoError(t, err)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	for _, bad := range []string{"800", "axb", "0x10", "-1x5", "1x2x3"} {
		_, _, err := ParseSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestFigureOptionsDefaults(t *testing.T) {
	fig := NewFigure(FigureOptions{})
	opts := fig.Options()
	assert.Equal(t, defaultWidth, opts.Width)
	assert.Equal(t, defaultHeight, opts.Height)
	assert.Equal(t, float64(defaultDPI), opts.DPI)
	assert.NotNil(t, opts.Logger)
}

func TestFigureOptionsSizeOverrides(t *testing.T) {
	fig := NewFigure(FigureOptions{Width: 10, Height: 10, Size: "320x240"})
	assert.Equal(t, 320, fig.Options().Width)
	assert.Equal(t, 240, fig.Options().Height)
}

func TestFigureOptionsInvalidValuesWarn(t *testing.T) {
	logger, hook := test.NewNullLogger()
	fig := NewFigure(FigureOptions{Width: 300, Size: "big", Background: "teal", Logger: logger})

	opts := fig.Options()
	assert.Equal(t, 300, opts.Width)
	assert.Equal(t, defaultHeight, opts.Height)
	assert.Empty(t, opts.Background)

	require.Len(t, hook.AllEntries(), 2)
	for _, e := range hook.AllEntries() {
		assert.Equal(t, logrus.WarnLevel, e.Level)
	}
}
