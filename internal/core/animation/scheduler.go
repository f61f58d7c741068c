package animation

import (
	"context"
	"time"
)

// CancelFunc stops a scheduled tick registration. It is safe to call more than once.
type CancelFunc func()

// Scheduler provides the clock and periodic callbacks that drive an Animator.
type Scheduler interface {
	Now() time.Time
	Every(interval time.Duration, tick func(now time.Time)) CancelFunc
}

// TickerScheduler ticks from a goroutine and hands every tick to dispatch,
// which is expected to run it on the UI thread.
type TickerScheduler struct {
	dispatch func(func())
}

// NewTickerScheduler creates a scheduler. A nil dispatch runs ticks on the ticker goroutine.
func NewTickerScheduler(dispatch func(func())) *TickerScheduler {
	if dispatch == nil {
		dispatch = func(run func()) { run() }
	}
	return &TickerScheduler{dispatch: dispatch}
}

// Now returns the wall clock time.
func (scheduler *TickerScheduler) Now() time.Time {
	return time.Now()
}

// Every starts a ticker that fires until the returned CancelFunc is called.
func (scheduler *TickerScheduler) Every(interval time.Duration, tick func(now time.Time)) CancelFunc {
	if interval <= 0 {
		interval = DefaultConfig().FrameInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				scheduler.dispatch(func() {
					// The tick may have been queued before cancel.
					if ctx.Err() != nil {
						return
					}
					tick(now)
				})
			}
		}
	}()
	return CancelFunc(cancel)
}
