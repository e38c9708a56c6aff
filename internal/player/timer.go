// Package player implements the activity playback state machine: session
// lifecycle, per-question countdowns, scoring (including blast streaks and
// levels), and the wheel-spin outcome and rotation geometry.
package player

import (
	"sync"
	"time"
)

// DefaultTickInterval is the production countdown granularity. Tests shrink
// it to run in milliseconds.
const DefaultTickInterval = time.Second

// Countdown counts down from an initial number of seconds, invoking onTick
// after each elapsed interval with the seconds remaining (the first call
// reports initial-1, the last reports 0) and onExpire exactly once when zero
// is reached. Cancel stops further callbacks and is idempotent.
//
// Callbacks run on the countdown's own goroutine, never concurrently with
// each other. A cancel can race the tick that is just firing; owners that
// need strict serialization against their own state (the Session does)
// guard callbacks with a generation check.
type Countdown struct {
	mu      sync.Mutex
	quit    chan struct{}
	stopped bool
}

// StartCountdown begins a countdown of seconds at the given tick interval.
// A non-positive seconds value expires on the first tick.
func StartCountdown(seconds int, interval time.Duration, onTick func(remaining int), onExpire func()) *Countdown {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	c := &Countdown{quit: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		remaining := seconds
		for {
			select {
			case <-c.quit:
				return
			case <-ticker.C:
			}
			c.mu.Lock()
			if c.stopped {
				c.mu.Unlock()
				return
			}
			remaining--
			if remaining < 0 {
				remaining = 0
			}
			expired := remaining == 0
			if expired {
				// Mark finished before the callbacks so a concurrent Cancel
				// becomes a no-op instead of closing quit twice.
				c.stopped = true
			}
			c.mu.Unlock()

			if onTick != nil {
				onTick(remaining)
			}
			if expired {
				if onExpire != nil {
					onExpire()
				}
				return
			}
		}
	}()
	return c
}

// Cancel stops the countdown. Idempotent. A tick that was already firing
// when Cancel ran may still be delivered once; owners that need strict
// cutoff use a generation check on their callbacks.
func (c *Countdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	close(c.quit)
}
