package animation

import (
	"sync"
	"time"
)

// Config contains animation timing values.
type Config struct {
	// Target is the value a run ends on.
	Target float32
	// Duration is the time a run takes from its start value to Target.
	Duration time.Duration
	// FrameInterval is the tick period requested from the Scheduler.
	FrameInterval time.Duration
}

// Animator linearly interpolates a value toward Config.Target over Config.Duration.
// At most one tick registration is active at any time.
type Animator struct {
	mu         sync.Mutex
	config     Config
	scheduler  Scheduler
	hooks      Hooks
	state      State
	from       float32
	value      float32
	elapsed    time.Duration
	startedAt  time.Time
	cancel     CancelFunc
	generation uint64
}

// New creates an idle Animator.
func New(config Config, scheduler Scheduler, hooks Hooks) *Animator {
	defaults := DefaultConfig()
	if config.FrameInterval <= 0 {
		config.FrameInterval = defaults.FrameInterval
	}
	if scheduler == nil {
		scheduler = NewTickerScheduler(nil)
	}
	return &Animator{
		config:    config,
		scheduler: scheduler,
		hooks:     hooks,
		state:     StateIdle,
	}
}

// State returns the current mode.
func (animator *Animator) State() State {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	return animator.state
}

// Value returns the most recently interpolated value.
func (animator *Animator) Value() float32 {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	return animator.value
}

// Duration returns the duration used by runs.
func (animator *Animator) Duration() time.Duration {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	return animator.config.Duration
}

// SetDuration changes the duration. A paused run keeps its elapsed time and
// continues against the new duration when resumed.
func (animator *Animator) SetDuration(duration time.Duration) {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	animator.config.Duration = duration
}

// Start cancels any in-flight run and begins a new one from the given value.
func (animator *Animator) Start(from float32) {
	animator.mu.Lock()
	defer animator.mu.Unlock()

	animator.cancelLocked()
	animator.from = from
	animator.value = from
	animator.elapsed = 0
	animator.state = StateRunning
	animator.armLocked()
}

// Pause suspends a running animation. It reports false when nothing was running.
func (animator *Animator) Pause() bool {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	if animator.state != StateRunning {
		return false
	}
	animator.elapsed += animator.scheduler.Now().Sub(animator.startedAt)
	animator.cancelLocked()
	animator.state = StatePaused
	return true
}

// Resume continues a paused animation. It reports false when not paused.
func (animator *Animator) Resume() bool {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	if animator.state != StatePaused {
		return false
	}
	animator.state = StateRunning
	animator.armLocked()
	return true
}

// Stop cancels any run without reaching the target. It reports whether a run was active.
func (animator *Animator) Stop() bool {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	active := animator.state != StateIdle
	animator.cancelLocked()
	animator.state = StateIdle
	animator.elapsed = 0
	return active
}

func (animator *Animator) armLocked() {
	animator.generation++
	generation := animator.generation
	animator.startedAt = animator.scheduler.Now()
	animator.cancel = animator.scheduler.Every(animator.config.FrameInterval, func(now time.Time) {
		animator.tick(generation, now)
	})
}

func (animator *Animator) cancelLocked() {
	animator.generation++
	if animator.cancel != nil {
		animator.cancel()
		animator.cancel = nil
	}
}

func (animator *Animator) tick(generation uint64, now time.Time) {
	animator.mu.Lock()
	if generation != animator.generation || animator.state != StateRunning {
		animator.mu.Unlock()
		return
	}

	fraction := animator.fractionLocked(animator.elapsed + now.Sub(animator.startedAt))
	value := animator.from + (animator.config.Target-animator.from)*fraction
	finished := fraction >= 1
	if finished {
		value = animator.config.Target
		animator.cancelLocked()
		animator.state = StateIdle
		animator.elapsed = 0
	}
	animator.value = value
	hooks := animator.hooks
	animator.mu.Unlock()

	if hooks.OnValue != nil {
		hooks.OnValue(value)
	}
	if finished && hooks.OnEnd != nil {
		hooks.OnEnd()
	}
}

func (animator *Animator) fractionLocked(elapsed time.Duration) float32 {
	if animator.config.Duration <= 0 {
		return 1
	}
	fraction := float64(elapsed) / float64(animator.config.Duration)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return float32(fraction)
}
