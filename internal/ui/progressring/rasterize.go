package progressring

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"progressring/internal/core/ring"
)

const (
	shadowStrength = 0.6
	shadowSteps    = 4
	// arcSegment keeps every rasterx.AddArc call below a half turn.
	arcSegment = 90
)

// rasterize paints the recorded circles and arcs. scale converts ring
// coordinates to image pixels. Text is left to the toolkit.
func rasterize(frame *ring.Recorder, width, height int, scale float32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if scale <= 0 || width <= 0 || height <= 0 {
		return img
	}
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)

	for _, circle := range frame.Circles {
		paintCircle(dasher, circle, float64(scale))
	}
	for _, arc := range frame.Arcs {
		paintArc(dasher, arc, float64(scale))
	}
	return img
}

func paintCircle(dasher *rasterx.Dasher, circle ring.CircleOp, scale float64) {
	setStroke(dasher, circle.Stroke.Width, nil, scale)
	dasher.SetColor(strokeSource(circle.Stroke, scale))
	rasterx.AddCircle(
		float64(circle.Center.X)*scale,
		float64(circle.Center.Y)*scale,
		float64(circle.Radius)*scale,
		dasher,
	)
	dasher.Draw()
	dasher.Clear()
}

func paintArc(dasher *rasterx.Dasher, arc ring.ArcOp, scale float64) {
	if arc.SweepAngle <= 0 {
		return
	}

	// The glow is stacked translucent strokes, widest first, so it fades outward.
	if shadow := arc.Stroke.Shadow; shadow != nil && shadow.Radius > 0 {
		for step := shadowSteps; step > 0; step-- {
			spread := shadow.Radius * float32(step) / shadowSteps
			setStroke(dasher, arc.Stroke.Width+2*spread, arc.Stroke.Dash, scale)
			dasher.SetColor(withAlpha(shadow.Color, shadowStrength/shadowSteps))
			addArc(dasher, arc, scale)
			dasher.Draw()
			dasher.Clear()
		}
	}

	setStroke(dasher, arc.Stroke.Width, arc.Stroke.Dash, scale)
	dasher.SetColor(strokeSource(arc.Stroke, scale))
	addArc(dasher, arc, scale)
	dasher.Draw()
	dasher.Clear()
}

// addArc traces the arc clockwise from its start angle so the dash pattern
// begins where the sweep begins.
func addArc(adder rasterx.Adder, arc ring.ArcOp, scale float64) {
	center := arc.Bounds.Center()
	cx, cy := float64(center.X)*scale, float64(center.Y)*scale
	radius := math.Min(float64(arc.Bounds.Width()), float64(arc.Bounds.Height())) / 2 * scale
	sweep := math.Min(float64(arc.SweepAngle), 360)

	angle := float64(arc.StartAngle)
	x, y := pointOnCircle(cx, cy, radius, angle)
	adder.Start(rasterx.ToFixedP(x, y))
	for remaining := sweep; remaining > 0; remaining -= arcSegment {
		angle += math.Min(remaining, arcSegment)
		endX, endY := pointOnCircle(cx, cy, radius, angle)
		rasterx.AddArc([]float64{radius, radius, 0, 0, 1, endX, endY}, cx, cy, x, y, adder)
		x, y = endX, endY
	}
	adder.Stop(false)
}

func pointOnCircle(cx, cy, radius, degrees float64) (float64, float64) {
	radians := degrees * math.Pi / 180
	return cx + radius*math.Cos(radians), cy + radius*math.Sin(radians)
}

func setStroke(dasher *rasterx.Dasher, width float32, dash []float32, scale float64) {
	var dashes []float64
	for _, length := range dash {
		dashes = append(dashes, float64(length)*scale)
	}
	dasher.SetStroke(fixed.Int26_6(float64(width)*scale*64), 0, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Round, dashes, 0)
}

// strokeSource returns what rasterx paints a stroke with: a flat color or a gradient color function.
func strokeSource(stroke ring.Stroke, scale float64) interface{} {
	if stroke.Gradient == nil {
		return stroke.Color
	}
	return gradientSource(*stroke.Gradient, scale).GetColorFunction(1)
}

// gradientSource converts a ring gradient into image space.
func gradientSource(gradient ring.Gradient, scale float64) *rasterx.Gradient {
	spread := rasterx.PadSpread
	if gradient.Tile == ring.TileMirror {
		spread = rasterx.ReflectSpread
	}
	return &rasterx.Gradient{
		Points: [5]float64{
			float64(gradient.From.X) * scale,
			float64(gradient.From.Y) * scale,
			float64(gradient.To.X) * scale,
			float64(gradient.To.Y) * scale,
		},
		Stops: []rasterx.GradStop{
			{StopColor: gradient.Stop0, Offset: 0, Opacity: 1},
			{StopColor: gradient.Stop1, Offset: 1, Opacity: 1},
		},
		Matrix: rasterx.Identity,
		Spread: spread,
		Units:  rasterx.UserSpaceOnUse,
	}
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * alpha))
	return c
}
