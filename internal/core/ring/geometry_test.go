package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"progressring/internal/core/model"
	"progressring/internal/core/ring"
)

type countingMeasurer struct {
	texts []string
}

func (measurer *countingMeasurer) MeasureText(text string, size float32) (float32, float32) {
	measurer.texts = append(measurer.texts, text)
	return fixedMeasurer{}.MeasureText(text, size)
}

func TestComputeGeometry(t *testing.T) {
	geometry := ring.ComputeGeometry(300, 300, 20, fixedMeasurer{})

	assert.InDelta(t, 60, geometry.BackgroundStroke, 1e-4)
	assert.InDelta(t, 42, geometry.ForegroundStroke, 1e-4)
	assert.InDelta(t, 150, geometry.Center, 1e-4)
	assert.InDelta(t, 120, geometry.BackgroundRadius, 1e-4)
	assert.InDelta(t, 30, geometry.ArcInset, 1e-4)
	assert.InDelta(t, 270, geometry.ArcBounds.Max.X, 1e-4)
	assert.InDelta(t, 270, geometry.ArcBounds.Max.Y, 1e-4)

	// 20px fits: 3 * 20 * 0.6 = 36 wide, 14 tall.
	assert.Equal(t, float32(20), geometry.TextSize)
	assert.InDelta(t, 36, geometry.TextWidth, 1e-4)
	assert.InDelta(t, 14, geometry.TextHeight, 1e-4)
	assert.InDelta(t, 132, geometry.TextOrigin.X, 1e-4)
	assert.InDelta(t, 157, geometry.TextOrigin.Y, 1e-4)
	assert.InDelta(t, 150, geometry.TextAnchor().X, 1e-4)
	assert.InDelta(t, 2, geometry.TextStrokeWidth, 1e-4)
	assert.InDelta(t, 16, geometry.TextDash[0], 1e-4)
	assert.InDelta(t, 1, geometry.TextDash[1], 1e-4)
}

func TestComputeGeometryShrinksText(t *testing.T) {
	// Bound is 200 - 2*40 = 120; "100" at size s is 1.8s wide, so the largest fit is 66.
	geometry := ring.ComputeGeometry(200, 200, 100, fixedMeasurer{})

	assert.Equal(t, float32(66), geometry.TextSize)
	assert.LessOrEqual(t, geometry.TextWidth, float32(120))
	assert.LessOrEqual(t, geometry.TextHeight, float32(120))
}

func TestComputeGeometryMeasuresReferenceLabel(t *testing.T) {
	measurer := &countingMeasurer{}

	ring.ComputeGeometry(200, 200, 100, measurer)

	assert.NotEmpty(t, measurer.texts)
	for _, text := range measurer.texts {
		assert.Equal(t, ring.ReferenceLabel, text)
	}
}

func TestComputeGeometryStopsShrinkingAtMinimum(t *testing.T) {
	geometry := ring.ComputeGeometry(0, 0, 10, fixedMeasurer{})

	assert.Equal(t, float32(1), geometry.TextSize)
}

func TestComputeGeometryUsesWidth(t *testing.T) {
	geometry := ring.ComputeGeometry(200, 400, 10, fixedMeasurer{})

	assert.InDelta(t, 100, geometry.Center, 1e-4)
	assert.InDelta(t, 180, geometry.ArcBounds.Max.Y, 1e-4)
	assert.InDelta(t, (400+7)/2.0, geometry.TextOrigin.Y, 1e-4)
}

func TestLabelLayoutIgnoresLiveLabel(t *testing.T) {
	progressRing, err := ring.New(model.DefaultRingConfig(), ring.WithMeasurer(fixedMeasurer{}))
	assert.NoError(t, err)
	progressRing.SizeChanged(300, 300, 0, 0)
	before := progressRing.Geometry()

	assert.NoError(t, progressRing.SetProgress(3.6))
	progressRing.SizeChanged(300, 300, 300, 300)

	assert.Equal(t, before.TextWidth, progressRing.Geometry().TextWidth)
	assert.Equal(t, before.TextSize, progressRing.Geometry().TextSize)
}
