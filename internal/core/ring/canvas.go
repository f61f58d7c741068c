package ring

import "image/color"

// Point is a position in pixels.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned box in pixels.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent.
func (rect Rect) Width() float32 { return rect.Max.X - rect.Min.X }

// Height returns the vertical extent.
func (rect Rect) Height() float32 { return rect.Max.Y - rect.Min.Y }

// Center returns the midpoint.
func (rect Rect) Center() Point {
	return Point{X: (rect.Min.X + rect.Max.X) / 2, Y: (rect.Min.Y + rect.Max.Y) / 2}
}

// Shadow is a soft glow drawn behind a stroke.
type Shadow struct {
	Radius float32
	Color  color.NRGBA
}

// Stroke describes how a path outline is painted. Gradient overrides Color when set.
type Stroke struct {
	Width    float32
	Color    color.NRGBA
	Gradient *Gradient
	// Dash alternates on and off lengths along the path. Empty means solid.
	Dash   []float32
	Shadow *Shadow
}

// TextStyle describes a centered label.
type TextStyle struct {
	Size        float32
	Gradient    *Gradient
	StrokeWidth float32
	Dash        []float32
}

// Canvas is the render target handed to Ring.Draw.
type Canvas interface {
	DrawCircle(center Point, radius float32, stroke Stroke)
	// DrawArc draws the arc of the oval inscribed in bounds. Angles are in
	// degrees, zero at three o'clock, positive clockwise.
	DrawArc(bounds Rect, startAngle, sweepAngle float32, stroke Stroke)
	// DrawText draws text horizontally centered on anchor.X with its baseline at anchor.Y.
	DrawText(text string, anchor Point, style TextStyle)
}

// CircleOp is a recorded DrawCircle call.
type CircleOp struct {
	Center Point
	Radius float32
	Stroke Stroke
}

// ArcOp is a recorded DrawArc call.
type ArcOp struct {
	Bounds     Rect
	StartAngle float32
	SweepAngle float32
	Stroke     Stroke
}

// TextOp is a recorded DrawText call.
type TextOp struct {
	Text   string
	Anchor Point
	Style  TextStyle
}

// Recorder is a Canvas that keeps the calls of the last frame.
type Recorder struct {
	Circles []CircleOp
	Arcs    []ArcOp
	Texts   []TextOp
}

// Reset drops recorded calls.
func (recorder *Recorder) Reset() {
	recorder.Circles = recorder.Circles[:0]
	recorder.Arcs = recorder.Arcs[:0]
	recorder.Texts = recorder.Texts[:0]
}

// DrawCircle records a circle.
func (recorder *Recorder) DrawCircle(center Point, radius float32, stroke Stroke) {
	recorder.Circles = append(recorder.Circles, CircleOp{Center: center, Radius: radius, Stroke: stroke})
}

// DrawArc records an arc.
func (recorder *Recorder) DrawArc(bounds Rect, startAngle, sweepAngle float32, stroke Stroke) {
	recorder.Arcs = append(recorder.Arcs, ArcOp{Bounds: bounds, StartAngle: startAngle, SweepAngle: sweepAngle, Stroke: stroke})
}

// DrawText records a label.
func (recorder *Recorder) DrawText(text string, anchor Point, style TextStyle) {
	recorder.Texts = append(recorder.Texts, TextOp{Text: text, Anchor: anchor, Style: style})
}
