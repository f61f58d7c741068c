// Package progressring provides the Fyne widget for the circular progress indicator.
package progressring

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"progressring/internal/core/animation"
	"progressring/internal/core/model"
	"progressring/internal/core/ring"
)

var labelStyle = fyne.TextStyle{Bold: true}

// renderedLabel returns the rendered size of label text and the distance
// from its top edge to the baseline.
func renderedLabel(text string, size float32) (fyne.Size, float32) {
	return fyne.CurrentApp().Driver().RenderedTextSize(text, size, labelStyle, nil)
}

// textMeasurer measures label text with the current Fyne theme font. The
// height is the part above the baseline, which is what the ring centers.
type textMeasurer struct{}

func (textMeasurer) MeasureText(text string, size float32) (float32, float32) {
	measured, baseline := renderedLabel(text, size)
	return measured.Width, baseline
}

// ProgressRing is a square widget showing progress as a dashed arc around a percentage.
type ProgressRing struct {
	widget.BaseWidget

	core            *ring.Ring
	layoutRequested bool
}

// New creates a progress ring. Animation ticks are delivered on the Fyne thread
// unless a scheduler option says otherwise.
func New(config model.RingConfig, options ...ring.Option) (*ProgressRing, error) {
	progressRing := &ProgressRing{}
	progressRing.ExtendBaseWidget(progressRing)

	defaults := []ring.Option{
		ring.WithScheduler(animation.NewTickerScheduler(fyne.Do)),
		ring.WithMeasurer(textMeasurer{}),
	}
	core, err := ring.New(config, append(defaults, options...)...)
	if err != nil {
		return nil, err
	}
	core.SetHost(progressRing)
	progressRing.core = core
	return progressRing, nil
}

// CreateRenderer implements fyne.Widget.
func (progressRing *ProgressRing) CreateRenderer() fyne.WidgetRenderer {
	return newRenderer(progressRing)
}

// Invalidate implements ring.Host.
func (progressRing *ProgressRing) Invalidate() {
	progressRing.Refresh()
}

// RequestLayout implements ring.Host.
func (progressRing *ProgressRing) RequestLayout() {
	progressRing.layoutRequested = true
	progressRing.Refresh()
}

// SetListener registers the progress listener.
func (progressRing *ProgressRing) SetListener(listener ring.Listener) {
	progressRing.core.SetListener(listener)
}

// Progress returns the sweep in degrees.
func (progressRing *ProgressRing) Progress() float32 {
	return progressRing.core.Progress()
}

// SetProgress sets the sweep in degrees.
func (progressRing *ProgressRing) SetProgress(value float32) error {
	return progressRing.core.SetProgress(value)
}

// Label returns the percentage text.
func (progressRing *ProgressRing) Label() string {
	return progressRing.core.Label()
}

// ColorMode returns the palette in use.
func (progressRing *ProgressRing) ColorMode() model.ColorMode {
	return progressRing.core.ColorMode()
}

// SetColorMode switches the palette.
func (progressRing *ProgressRing) SetColorMode(mode model.ColorMode) {
	progressRing.core.SetColorMode(mode)
}

// AnimationDuration returns the run duration.
func (progressRing *ProgressRing) AnimationDuration() time.Duration {
	return progressRing.core.AnimationDuration()
}

// SetAnimationDuration pauses a running animation and sets the run duration.
func (progressRing *ProgressRing) SetAnimationDuration(duration time.Duration) {
	progressRing.core.SetAnimationDuration(duration)
}

// ProgressTextSize returns the unfitted label size.
func (progressRing *ProgressRing) ProgressTextSize() float32 {
	return progressRing.core.ProgressTextSize()
}

// Dp converts density-independent units to pixels.
func (progressRing *ProgressRing) Dp(value float32) float32 {
	return progressRing.core.Dp(value)
}

// SetProgressTextSize sets the label size and lays the widget out again.
func (progressRing *ProgressRing) SetProgressTextSize(size float32) {
	progressRing.core.SetProgressTextSize(size)
}

// AnimationState returns the animation mode.
func (progressRing *ProgressRing) AnimationState() animation.State {
	return progressRing.core.AnimationState()
}

// Start animates the progress to 360.
func (progressRing *ProgressRing) Start() {
	progressRing.core.Start()
}

// Pause suspends the animation.
func (progressRing *ProgressRing) Pause() {
	progressRing.core.Pause()
}

// Resume continues a paused animation.
func (progressRing *ProgressRing) Resume() {
	progressRing.core.Resume()
}

// Stop cancels the animation.
func (progressRing *ProgressRing) Stop() {
	progressRing.core.Stop()
}
