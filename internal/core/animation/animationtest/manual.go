// Package animationtest provides a virtual-time Scheduler for tests.
package animationtest

import (
	"sync"
	"time"

	"progressring/internal/core/animation"
)

type registration struct {
	interval  time.Duration
	next      time.Time
	tick      func(time.Time)
	cancelled bool
}

// Manual is a Scheduler whose clock only moves when Advance is called.
type Manual struct {
	mu            sync.Mutex
	now           time.Time
	registrations []*registration
}

// NewManual creates a scheduler starting at an arbitrary fixed instant.
func NewManual() *Manual {
	return &Manual{now: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the virtual time.
func (manual *Manual) Now() time.Time {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// Every registers a periodic tick.
func (manual *Manual) Every(interval time.Duration, tick func(now time.Time)) animation.CancelFunc {
	if interval <= 0 {
		interval = time.Millisecond
	}
	manual.mu.Lock()
	defer manual.mu.Unlock()
	entry := &registration{interval: interval, next: manual.now.Add(interval), tick: tick}
	manual.registrations = append(manual.registrations, entry)
	return func() {
		manual.mu.Lock()
		defer manual.mu.Unlock()
		entry.cancelled = true
	}
}

// Active returns the number of registrations that have not been cancelled.
func (manual *Manual) Active() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	count := 0
	for _, entry := range manual.registrations {
		if !entry.cancelled {
			count++
		}
	}
	return count
}

// Advance moves the clock forward, firing due ticks in time order.
func (manual *Manual) Advance(delta time.Duration) {
	manual.mu.Lock()
	deadline := manual.now.Add(delta)
	manual.mu.Unlock()

	for {
		manual.mu.Lock()
		due := manual.nextDueLocked(deadline)
		if due == nil {
			manual.now = deadline
			manual.mu.Unlock()
			return
		}
		manual.now = due.next
		due.next = due.next.Add(due.interval)
		at := manual.now
		manual.mu.Unlock()

		due.tick(at)
	}
}

func (manual *Manual) nextDueLocked(deadline time.Time) *registration {
	var due *registration
	live := manual.registrations[:0]
	for _, entry := range manual.registrations {
		if entry.cancelled {
			continue
		}
		live = append(live, entry)
		if entry.next.After(deadline) {
			continue
		}
		if due == nil || entry.next.Before(due.next) {
			due = entry
		}
	}
	manual.registrations = live
	return due
}
