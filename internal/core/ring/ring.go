// Package ring implements the state, layout, drawing and animation of a
// circular progress indicator independently of any UI toolkit.
package ring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"progressring/internal/core/animation"
	"progressring/internal/core/model"
)

// ErrInvalidArgument is returned when a setter receives a value outside its domain.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// MaxProgress is a full sweep in degrees.
	MaxProgress = float32(360)
	// StartAngle points the arc at twelve o'clock.
	StartAngle = float32(-90)

	defaultSideDp  = float32(200)
	gradientSpanDp = float32(50)
	degreesPerStep = float32(3.6)
)

// Host is the toolkit side of a Ring.
type Host interface {
	// Invalidate asks for Draw to be called again.
	Invalidate()
	// RequestLayout asks for SizeChanged to be called again before the next Draw.
	RequestLayout()
}

// Option customizes a Ring.
type Option func(*Ring)

// WithHost attaches the toolkit host.
func WithHost(host Host) Option {
	return func(ring *Ring) { ring.host = host }
}

// WithScheduler drives the animation from the given scheduler.
func WithScheduler(scheduler animation.Scheduler) Option {
	return func(ring *Ring) { ring.scheduler = scheduler }
}

// WithMeasurer sets the text measurer used by the label auto-fit.
func WithMeasurer(measurer TextMeasurer) Option {
	return func(ring *Ring) { ring.measurer = measurer }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(ring *Ring) {
		if logger != nil {
			ring.logger = logger
		}
	}
}

// Ring is a circular progress indicator. It is not safe for concurrent use;
// the host calls it from its UI thread.
type Ring struct {
	config    model.RingConfig
	progress  float32
	label     string
	colorMode model.ColorMode
	textSize  float32
	gradient  Gradient
	geometry  Geometry

	measurer  TextMeasurer
	host      Host
	listener  Listener
	scheduler animation.Scheduler
	animator  *animation.Animator
	logger    *zap.Logger
}

// New creates a ring from construction-time configuration.
func New(config model.RingConfig, options ...Option) (*Ring, error) {
	defaults := model.DefaultRingConfig()
	if config.Density <= 0 {
		config.Density = defaults.Density
	}
	if config.TextSize <= 0 {
		config.TextSize = defaults.TextSize
	}
	if config.AnimationDuration <= 0 {
		config.AnimationDuration = defaults.AnimationDuration
	}
	if err := validateProgress(config.Progress); err != nil {
		return nil, err
	}

	ring := &Ring{
		config:   config,
		textSize: config.Dp(config.TextSize),
		logger:   zap.NewNop(),
	}
	for _, option := range options {
		option(ring)
	}
	ring.logger = ring.logger.With(zap.String("component", "progress_ring"))

	animationConfig := animation.DefaultConfig()
	animationConfig.Target = MaxProgress
	animationConfig.Duration = config.AnimationDuration
	ring.animator = animation.New(animationConfig, ring.scheduler, animation.Hooks{
		OnValue: ring.handleAnimatedValue,
		OnEnd:   ring.handleAnimationEnd,
	})

	ring.applyProgress(config.Progress)
	ring.applyColorMode(config.ColorMode)
	return ring, nil
}

// SetListener registers the listener, replacing any previous one. Nil removes it.
func (ring *Ring) SetListener(listener Listener) {
	ring.listener = listener
}

// SetHost attaches the toolkit host after construction.
func (ring *Ring) SetHost(host Host) {
	ring.host = host
}

// Progress returns the sweep in degrees.
func (ring *Ring) Progress() float32 {
	return ring.progress
}

// Label returns the percentage text drawn in the middle.
func (ring *Ring) Label() string {
	return ring.label
}

// SetProgress sets the sweep in degrees. Values of 360 and above are clamped.
// Negative values fail with ErrInvalidArgument and leave the ring unchanged.
func (ring *Ring) SetProgress(value float32) error {
	if err := validateProgress(value); err != nil {
		return err
	}
	ring.applyProgress(value)
	ring.invalidate()
	return nil
}

// ColorMode returns the active palette.
func (ring *Ring) ColorMode() model.ColorMode {
	return ring.colorMode
}

// SetColorMode switches the arc and label gradient.
func (ring *Ring) SetColorMode(mode model.ColorMode) {
	ring.applyColorMode(mode)
	ring.invalidate()
}

// AnimationDuration returns the duration of an animated run.
func (ring *Ring) AnimationDuration() time.Duration {
	return ring.animator.Duration()
}

// SetAnimationDuration pauses a running animation and changes the duration of runs.
func (ring *Ring) SetAnimationDuration(duration time.Duration) {
	ring.Pause()
	ring.animator.SetDuration(duration)
	ring.invalidate()
}

// ProgressTextSize returns the configured label size in pixels before fitting.
func (ring *Ring) ProgressTextSize() float32 {
	return ring.textSize
}

// Dp converts density-independent units to pixels at the ring's density.
func (ring *Ring) Dp(value float32) float32 {
	return ring.config.Dp(value)
}

// SetProgressTextSize changes the label size and requests a new layout.
func (ring *Ring) SetProgressTextSize(size float32) {
	ring.textSize = size
	if ring.host != nil {
		ring.host.RequestLayout()
	}
}

// Geometry returns the layout of the last SizeChanged call.
func (ring *Ring) Geometry() Geometry {
	return ring.geometry
}

// AnimationState returns the animation mode.
func (ring *Ring) AnimationState() animation.State {
	return ring.animator.State()
}

// Measure returns the square size the ring wants under the given constraints.
func (ring *Ring) Measure(width, height Constraint) (float32, float32) {
	measuredWidth, measuredHeight := Measure(width, height, ring.config.Dp(defaultSideDp))
	ring.logger.Debug("measure",
		zap.Float32("width", measuredWidth),
		zap.Float32("height", measuredHeight),
	)
	return measuredWidth, measuredHeight
}

// SizeChanged recomputes the geometry for a new size.
func (ring *Ring) SizeChanged(width, height, oldWidth, oldHeight float32) {
	ring.geometry = ComputeGeometry(width, height, ring.textSize, ring.measurer)
	ring.logger.Debug("size changed",
		zap.Float32("width", width),
		zap.Float32("height", height),
		zap.Float32("old_width", oldWidth),
		zap.Float32("old_height", oldHeight),
		zap.Float32("text_size", ring.geometry.TextSize),
	)
}

// Draw paints the background ring, the progress arc and the label.
func (ring *Ring) Draw(canvas Canvas) {
	geometry := ring.geometry
	gradient := ring.gradient

	canvas.DrawCircle(
		Point{X: geometry.Center, Y: geometry.Center},
		geometry.BackgroundRadius,
		Stroke{Width: geometry.BackgroundStroke, Color: backgroundColor},
	)
	canvas.DrawArc(geometry.ArcBounds, StartAngle, ring.progress, Stroke{
		Width:    geometry.ForegroundStroke,
		Gradient: &gradient,
		Dash:     geometry.ForegroundDash,
		Shadow:   &Shadow{Radius: geometry.ShadowRadius, Color: shadowColor},
	})
	canvas.DrawText(ring.label, geometry.TextAnchor(), TextStyle{
		Size:        geometry.TextSize,
		Gradient:    &gradient,
		StrokeWidth: geometry.TextStrokeWidth,
		Dash:        geometry.TextDash,
	})
}

// Start sweeps the progress from its current value to 360 over the animation duration.
// A run in flight is cancelled first.
func (ring *Ring) Start() {
	ring.animator.Start(ring.progress)
	ring.logger.Debug("animation started", zap.Float32("from", ring.progress))
	if ring.listener != nil {
		ring.listener.OnProgressStart()
	}
}

// Pause suspends a running animation. It does nothing otherwise.
func (ring *Ring) Pause() {
	if !ring.animator.Pause() {
		return
	}
	ring.logger.Debug("animation paused", zap.Float32("progress", ring.progress))
	if ring.listener != nil {
		ring.listener.OnProgressPause()
	}
}

// Resume continues a paused animation. It does nothing otherwise.
func (ring *Ring) Resume() {
	if !ring.animator.Resume() {
		return
	}
	ring.logger.Debug("animation resumed", zap.Float32("progress", ring.progress))
	if ring.listener != nil {
		ring.listener.OnProgressResume()
	}
}

// Stop cancels the animation. No end callback is emitted.
func (ring *Ring) Stop() {
	if ring.animator.Stop() {
		ring.logger.Debug("animation cancelled", zap.Float32("progress", ring.progress))
	}
}

func (ring *Ring) handleAnimatedValue(value float32) {
	ring.applyProgress(value)
	ring.invalidate()
	if ring.listener != nil {
		ring.listener.OnProgressValue(value)
	}
}

func (ring *Ring) handleAnimationEnd() {
	ring.logger.Debug("animation ended")
	if ring.listener != nil {
		ring.listener.OnProgressEnd()
	}
}

func (ring *Ring) applyProgress(value float32) {
	if value >= MaxProgress {
		ring.progress = MaxProgress
		ring.label = "100"
		return
	}
	ring.progress = value
	ring.label = strconv.Itoa(int(value / degreesPerStep))
}

func (ring *Ring) applyColorMode(mode model.ColorMode) {
	ring.colorMode = mode
	ring.gradient = GradientFor(mode, ring.config.Dp(gradientSpanDp))
}

func (ring *Ring) invalidate() {
	if ring.host != nil {
		ring.host.Invalidate()
	}
}

func validateProgress(value float32) error {
	if math.IsNaN(float64(value)) {
		return fmt.Errorf("%w: progress is NaN", ErrInvalidArgument)
	}
	if value < 0 {
		return fmt.Errorf("%w: progress must not be negative, got %v", ErrInvalidArgument, value)
	}
	return nil
}
