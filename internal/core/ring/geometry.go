package ring

// ReferenceLabel is the string the label size is fitted against.
const ReferenceLabel = "100"

const (
	backgroundStrokeRatio = float32(0.20)
	foregroundStrokeRatio = float32(0.14)
	dashOnRatio           = float32(0.3)
	dashOffRatio          = float32(0.05)
	shadowRadiusRatio     = float32(0.2)
	textStrokeRatio       = float32(0.1)
	textDashOnRatio       = float32(0.8)
	textDashOffRatio      = float32(0.05)
	minTextSize           = float32(1)
)

// TextMeasurer reports the rendered width and height of text at a given size.
type TextMeasurer interface {
	MeasureText(text string, size float32) (width, height float32)
}

// Geometry is the layout derived from the view size.
type Geometry struct {
	Width  float32
	Height float32

	BackgroundStroke float32
	ForegroundStroke float32
	Center           float32
	BackgroundRadius float32
	// ArcInset is the distance from each edge to the arc bounding box.
	ArcInset  float32
	ArcBounds Rect

	ForegroundDash []float32
	ShadowRadius   float32

	TextSize   float32
	TextWidth  float32
	TextHeight float32
	// TextOrigin is the left edge and baseline of the reference label.
	TextOrigin      Point
	TextStrokeWidth float32
	TextDash        []float32
}

// ComputeGeometry lays out a ring of width w. Height only positions the label baseline.
func ComputeGeometry(w, h, textSize float32, measurer TextMeasurer) Geometry {
	background := w * backgroundStrokeRatio
	foreground := w * foregroundStrokeRatio
	inset := (background-foreground)/2 + foreground/2

	geometry := Geometry{
		Width:            w,
		Height:           h,
		BackgroundStroke: background,
		ForegroundStroke: foreground,
		Center:           w / 2,
		BackgroundRadius: (w - background) / 2,
		ArcInset:         inset,
		ArcBounds: Rect{
			Min: Point{X: inset, Y: inset},
			Max: Point{X: w - inset, Y: w - inset},
		},
		ForegroundDash: []float32{foreground * dashOnRatio, foreground * dashOffRatio},
		ShadowRadius:   foreground * shadowRadiusRatio,
	}

	size, width, height := fitText(textSize, w-background*2, measurer)
	geometry.TextSize = size
	geometry.TextWidth = width
	geometry.TextHeight = height
	geometry.TextOrigin = Point{X: (w - width) / 2, Y: (h + height) / 2}
	geometry.TextStrokeWidth = size * textStrokeRatio
	geometry.TextDash = []float32{size * textDashOnRatio, size * textDashOffRatio}
	return geometry
}

// TextAnchor is the horizontal center and baseline of the label.
func (geometry Geometry) TextAnchor() Point {
	return Point{X: geometry.TextOrigin.X + geometry.TextWidth/2, Y: geometry.TextOrigin.Y}
}

// fitText shrinks size in 1px steps until ReferenceLabel fits within bound.
func fitText(size, bound float32, measurer TextMeasurer) (float32, float32, float32) {
	if measurer == nil {
		return size, 0, 0
	}
	width, height := measurer.MeasureText(ReferenceLabel, size)
	for (width > bound || height > bound) && size-1 >= minTextSize {
		size--
		width, height = measurer.MeasureText(ReferenceLabel, size)
	}
	return size, width, height
}
