package ring_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progressring/internal/core/animation"
	"progressring/internal/core/animation/animationtest"
	"progressring/internal/core/model"
	"progressring/internal/core/ring"
)

// fixedMeasurer approximates a monospace face: each rune is 0.6em wide, glyphs are 0.7em tall.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, size float32) (float32, float32) {
	return float32(len(text)) * size * 0.6, size * 0.7
}

type hostSpy struct {
	invalidations int
	layouts       int
}

func (host *hostSpy) Invalidate()    { host.invalidations++ }
func (host *hostSpy) RequestLayout() { host.layouts++ }

type listenerSpy struct {
	values  []float32
	starts  int
	pauses  int
	resumes int
	ends    int
}

func (spy *listenerSpy) OnProgressValue(value float32) { spy.values = append(spy.values, value) }
func (spy *listenerSpy) OnProgressStart()              { spy.starts++ }
func (spy *listenerSpy) OnProgressPause()              { spy.pauses++ }
func (spy *listenerSpy) OnProgressResume()             { spy.resumes++ }
func (spy *listenerSpy) OnProgressEnd()                { spy.ends++ }

func newRing(t *testing.T, config model.RingConfig) (*ring.Ring, *animationtest.Manual, *hostSpy, *listenerSpy) {
	t.Helper()
	clock := animationtest.NewManual()
	host := &hostSpy{}
	listener := &listenerSpy{}
	progressRing, err := ring.New(config,
		ring.WithScheduler(clock),
		ring.WithMeasurer(fixedMeasurer{}),
		ring.WithHost(host),
	)
	require.NoError(t, err)
	progressRing.SetListener(listener)
	return progressRing, clock, host, listener
}

func TestNewAppliesDefaults(t *testing.T) {
	progressRing, _, _, _ := newRing(t, model.DefaultRingConfig())

	assert.Equal(t, float32(160), progressRing.Progress())
	assert.Equal(t, "44", progressRing.Label())
	assert.Equal(t, model.ColorBlue, progressRing.ColorMode())
	assert.Equal(t, 5*time.Second, progressRing.AnimationDuration())
	assert.Equal(t, float32(70), progressRing.ProgressTextSize())
	assert.Equal(t, animation.StateIdle, progressRing.AnimationState())
}

func TestNewConvertsTextSizeWithDensity(t *testing.T) {
	config := model.DefaultRingConfig()
	config.Density = 2

	progressRing, _, _, _ := newRing(t, config)

	assert.Equal(t, float32(140), progressRing.ProgressTextSize())
	assert.Equal(t, float32(60), progressRing.Dp(30))
	width, height := progressRing.Measure(ring.Constraint{}, ring.Constraint{})
	assert.Equal(t, float32(400), width)
	assert.Equal(t, float32(400), height)
}

func TestNewRejectsNegativeProgress(t *testing.T) {
	config := model.DefaultRingConfig()
	config.Progress = -1

	_, err := ring.New(config)
	assert.ErrorIs(t, err, ring.ErrInvalidArgument)
}

func TestSetProgressLabel(t *testing.T) {
	tests := []struct {
		value    float32
		progress float32
		label    string
	}{
		{0, 0, "0"},
		{3.6, 3.6, "1"},
		{100, 100, "27"},
		{180, 180, "50"},
		{359.9, 359.9, "99"},
		{360, 360, "100"},
		{720, 360, "100"},
	}

	progressRing, _, _, _ := newRing(t, model.DefaultRingConfig())
	for _, test := range tests {
		require.NoError(t, progressRing.SetProgress(test.value))
		assert.Equal(t, test.progress, progressRing.Progress(), "progress for %v", test.value)
		assert.Equal(t, test.label, progressRing.Label(), "label for %v", test.value)
	}
}

func TestSetProgressRequestsRedraw(t *testing.T) {
	progressRing, _, host, _ := newRing(t, model.DefaultRingConfig())

	require.NoError(t, progressRing.SetProgress(90))
	assert.Equal(t, 1, host.invalidations)
}

func TestSetProgressRejectsNegative(t *testing.T) {
	progressRing, _, host, _ := newRing(t, model.DefaultRingConfig())
	require.NoError(t, progressRing.SetProgress(180))
	invalidations := host.invalidations

	err := progressRing.SetProgress(-0.1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ring.ErrInvalidArgument))
	assert.Equal(t, float32(180), progressRing.Progress())
	assert.Equal(t, "50", progressRing.Label())
	assert.Equal(t, invalidations, host.invalidations)
}

func TestSetColorMode(t *testing.T) {
	progressRing, _, host, _ := newRing(t, model.DefaultRingConfig())
	progressRing.SizeChanged(300, 300, 0, 0)

	progressRing.SetColorMode(model.ColorGreen)

	assert.Equal(t, model.ColorGreen, progressRing.ColorMode())
	assert.Equal(t, 1, host.invalidations)

	recorder := &ring.Recorder{}
	progressRing.Draw(recorder)
	require.Len(t, recorder.Arcs, 1)
	require.NotNil(t, recorder.Arcs[0].Stroke.Gradient)
	assert.Equal(t, ring.GradientFor(model.ColorGreen, 50), *recorder.Arcs[0].Stroke.Gradient)
	require.NotNil(t, recorder.Texts[0].Style.Gradient)
	assert.Equal(t, *recorder.Arcs[0].Stroke.Gradient, *recorder.Texts[0].Style.Gradient)
}

func TestSetProgressTextSizeRequestsLayout(t *testing.T) {
	progressRing, _, host, _ := newRing(t, model.DefaultRingConfig())

	progressRing.SetProgressTextSize(40)

	assert.Equal(t, float32(40), progressRing.ProgressTextSize())
	assert.Equal(t, 1, host.layouts)
}

func TestMeasure(t *testing.T) {
	progressRing, _, _, _ := newRing(t, model.DefaultRingConfig())

	width, height := progressRing.Measure(ring.Exact(300), ring.Exact(500))
	assert.Equal(t, float32(300), width)
	assert.Equal(t, float32(300), height)

	width, height = progressRing.Measure(ring.Exact(300), ring.Constraint{Mode: ring.AtMost, Size: 500})
	assert.Equal(t, float32(200), width)
	assert.Equal(t, float32(200), height)

	width, height = progressRing.Measure(ring.Constraint{}, ring.Constraint{})
	assert.Equal(t, float32(200), width)
	assert.Equal(t, float32(200), height)
}

func TestDrawCommands(t *testing.T) {
	progressRing, _, _, _ := newRing(t, model.DefaultRingConfig())
	require.NoError(t, progressRing.SetProgress(180))
	progressRing.SizeChanged(200, 200, 0, 0)

	recorder := &ring.Recorder{}
	progressRing.Draw(recorder)

	require.Len(t, recorder.Circles, 1)
	circle := recorder.Circles[0]
	assert.Equal(t, ring.Point{X: 100, Y: 100}, circle.Center)
	assert.InDelta(t, 80, circle.Radius, 1e-4)
	assert.InDelta(t, 40, circle.Stroke.Width, 1e-4)
	assert.Nil(t, circle.Stroke.Gradient)

	require.Len(t, recorder.Arcs, 1)
	arc := recorder.Arcs[0]
	assert.Equal(t, ring.StartAngle, arc.StartAngle)
	assert.Equal(t, float32(180), arc.SweepAngle)
	assert.InDelta(t, 28, arc.Stroke.Width, 1e-4)
	assert.InDelta(t, 20, arc.Bounds.Min.X, 1e-4)
	assert.InDelta(t, 180, arc.Bounds.Max.X, 1e-4)
	require.Len(t, arc.Stroke.Dash, 2)
	assert.InDelta(t, 8.4, arc.Stroke.Dash[0], 1e-4)
	assert.InDelta(t, 1.4, arc.Stroke.Dash[1], 1e-4)
	require.NotNil(t, arc.Stroke.Shadow)
	assert.InDelta(t, 5.6, arc.Stroke.Shadow.Radius, 1e-4)

	require.Len(t, recorder.Texts, 1)
	text := recorder.Texts[0]
	assert.Equal(t, "50", text.Text)
	assert.InDelta(t, 100, text.Anchor.X, 1e-4)

	recorder.Reset()
	progressRing.Draw(recorder)
	assert.Len(t, recorder.Circles, 1)
}

func TestStartPauseResumeToCompletion(t *testing.T) {
	config := model.DefaultRingConfig()
	config.Progress = 0
	config.AnimationDuration = time.Second
	progressRing, clock, _, listener := newRing(t, config)

	progressRing.Start()
	progressRing.Pause()

	assert.Equal(t, 1, listener.starts)
	assert.Equal(t, 1, listener.pauses)
	assert.GreaterOrEqual(t, progressRing.Progress(), float32(0))
	assert.Less(t, progressRing.Progress(), float32(360))
	assert.Equal(t, animation.StatePaused, progressRing.AnimationState())

	progressRing.Resume()
	assert.Equal(t, 1, listener.resumes)
	clock.Advance(2 * time.Second)

	assert.Equal(t, 1, listener.ends)
	assert.Equal(t, float32(360), progressRing.Progress())
	assert.Equal(t, "100", progressRing.Label())
	assert.Equal(t, animation.StateIdle, progressRing.AnimationState())
	require.NotEmpty(t, listener.values)
	assert.Equal(t, float32(360), listener.values[len(listener.values)-1])
}

func TestAnimationTicksUpdateProgress(t *testing.T) {
	config := model.DefaultRingConfig()
	config.Progress = 0
	config.AnimationDuration = time.Second
	progressRing, clock, host, listener := newRing(t, config)

	// 32 frames of 16ms: the last tick lands on 512ms.
	progressRing.Start()
	clock.Advance(512 * time.Millisecond)

	assert.InDelta(t, 184.32, progressRing.Progress(), 0.01)
	assert.Equal(t, "51", progressRing.Label())
	assert.Equal(t, len(listener.values), host.invalidations)
}

func TestPauseTwiceIsNoOp(t *testing.T) {
	progressRing, clock, _, listener := newRing(t, model.DefaultRingConfig())

	progressRing.Start()
	clock.Advance(100 * time.Millisecond)
	progressRing.Pause()
	progressRing.Pause()

	assert.Equal(t, 1, listener.pauses)
}

func TestPauseAndResumeWhenIdle(t *testing.T) {
	progressRing, _, _, listener := newRing(t, model.DefaultRingConfig())

	progressRing.Pause()
	progressRing.Resume()

	assert.Zero(t, listener.pauses)
	assert.Zero(t, listener.resumes)
}

func TestStopCancelsRun(t *testing.T) {
	config := model.DefaultRingConfig()
	config.Progress = 0
	config.AnimationDuration = time.Second
	progressRing, clock, _, listener := newRing(t, config)

	progressRing.Start()
	clock.Advance(200 * time.Millisecond)
	progressRing.Stop()
	values := len(listener.values)
	progress := progressRing.Progress()

	clock.Advance(5 * time.Second)

	assert.Len(t, listener.values, values)
	assert.Zero(t, listener.ends)
	assert.Equal(t, progress, progressRing.Progress())
	assert.Equal(t, 0, clock.Active())
}

func TestStopFromValueCallback(t *testing.T) {
	config := model.DefaultRingConfig()
	config.Progress = 0
	config.AnimationDuration = time.Second
	progressRing, clock, _, _ := newRing(t, config)

	var values int
	progressRing.SetListener(ring.ListenerFuncs{
		Value: func(value float32) {
			values++
			if value >= 90 {
				progressRing.Stop()
			}
		},
		End: func() { t.Fatal("end after stop") },
	})

	progressRing.Start()
	clock.Advance(2 * time.Second)

	assert.Less(t, progressRing.Progress(), float32(360))
	assert.Equal(t, 0, clock.Active())
	assert.Positive(t, values)
}

func TestRestartReplacesRun(t *testing.T) {
	config := model.DefaultRingConfig()
	config.Progress = 0
	config.AnimationDuration = time.Second
	progressRing, clock, _, listener := newRing(t, config)

	progressRing.Start()
	clock.Advance(300 * time.Millisecond)
	progressRing.Start()

	assert.Equal(t, 2, listener.starts)
	assert.Equal(t, 1, clock.Active())

	clock.Advance(2 * time.Second)
	assert.Equal(t, 1, listener.ends)
}

func TestSetAnimationDurationPausesRun(t *testing.T) {
	config := model.DefaultRingConfig()
	config.Progress = 0
	config.AnimationDuration = time.Second
	progressRing, clock, host, listener := newRing(t, config)

	progressRing.Start()
	clock.Advance(100 * time.Millisecond)
	before := host.invalidations
	progressRing.SetAnimationDuration(10 * time.Second)

	assert.Equal(t, 1, listener.pauses)
	assert.Equal(t, animation.StatePaused, progressRing.AnimationState())
	assert.Equal(t, 10*time.Second, progressRing.AnimationDuration())
	assert.Equal(t, before+1, host.invalidations)
}

func TestListenerIsOptional(t *testing.T) {
	progressRing, clock, _, _ := newRing(t, model.DefaultRingConfig())
	progressRing.SetListener(nil)

	progressRing.Start()
	progressRing.Pause()
	progressRing.Resume()
	clock.Advance(6 * time.Second)

	assert.Equal(t, float32(360), progressRing.Progress())
}
