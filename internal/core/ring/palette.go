package ring

import (
	"image/color"

	"progressring/internal/core/model"
)

// TileMode controls how a gradient continues past its end points.
type TileMode int

const (
	TileClamp TileMode = iota
	TileMirror
)

// Gradient is a two-stop linear gradient between From and To.
type Gradient struct {
	From  Point
	To    Point
	Stop0 color.NRGBA
	Stop1 color.NRGBA
	Tile  TileMode
}

var (
	backgroundColor = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	shadowColor     = color.NRGBA{R: 0xf6, G: 0xf4, B: 0xe6, A: 0xff}
)

var palette = map[model.ColorMode][2]color.NRGBA{
	model.ColorBlue:  {{R: 0x10, G: 0xea, B: 0xf0, A: 0xff}, {R: 0x5e, G: 0xdf, B: 0xff, A: 0xff}},
	model.ColorRed:   {{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, {R: 0xff, G: 0x57, B: 0x22, A: 0xff}},
	model.ColorGreen: {{R: 0x00, G: 0xbd, B: 0x56, A: 0xff}, {R: 0x4e, G: 0xf0, B: 0x37, A: 0xff}},
}

// GradientFor returns the diagonal mirrored gradient of a color mode.
// span is the gradient length along each axis in pixels. Unknown modes use blue.
func GradientFor(mode model.ColorMode, span float32) Gradient {
	stops, ok := palette[mode]
	if !ok {
		stops = palette[model.ColorBlue]
	}
	return Gradient{
		From:  Point{X: 0, Y: 0},
		To:    Point{X: span, Y: span},
		Stop0: stops[0],
		Stop1: stops[1],
		Tile:  TileMirror,
	}
}
