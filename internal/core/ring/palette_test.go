package ring_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"progressring/internal/core/model"
	"progressring/internal/core/ring"
)

func TestGradientForPalette(t *testing.T) {
	tests := []struct {
		mode  model.ColorMode
		stop0 color.NRGBA
		stop1 color.NRGBA
	}{
		{model.ColorBlue, color.NRGBA{R: 0x10, G: 0xea, B: 0xf0, A: 0xff}, color.NRGBA{R: 0x5e, G: 0xdf, B: 0xff, A: 0xff}},
		{model.ColorRed, color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, color.NRGBA{R: 0xff, G: 0x57, B: 0x22, A: 0xff}},
		{model.ColorGreen, color.NRGBA{R: 0x00, G: 0xbd, B: 0x56, A: 0xff}, color.NRGBA{R: 0x4e, G: 0xf0, B: 0x37, A: 0xff}},
		{model.ColorMode(9), color.NRGBA{R: 0x10, G: 0xea, B: 0xf0, A: 0xff}, color.NRGBA{R: 0x5e, G: 0xdf, B: 0xff, A: 0xff}},
	}

	for _, test := range tests {
		gradient := ring.GradientFor(test.mode, 50)
		assert.Equal(t, test.stop0, gradient.Stop0, "stop0 of %s", test.mode)
		assert.Equal(t, test.stop1, gradient.Stop1, "stop1 of %s", test.mode)
		assert.Equal(t, ring.TileMirror, gradient.Tile)
		assert.Equal(t, ring.Point{X: 50, Y: 50}, gradient.To)
	}
}
