package clock

import (
	"time"

	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/ports"
)

// DefaultFrameInterval approximates a 60Hz paint cadence.
const DefaultFrameInterval = 16 * time.Millisecond

// Wall binds the clock contract to real timers. Frame callbacks fire one
// frame interval after they were scheduled; timeouts map onto time.AfterFunc.
//
// Callbacks run on timer goroutines, so consumers are expected to serialize
// re-entry themselves (the scheduler does).
type Wall struct {
	frameInterval time.Duration
}

// WallOption configures a Wall clock.
type WallOption func(*Wall)

// WithFrameInterval overrides the simulated paint cadence.
func WithFrameInterval(d time.Duration) WallOption {
	return func(c *Wall) {
		c.frameInterval = d
	}
}

// NewWall creates a real-time clock with options.
func NewWall(opts ...WallOption) *Wall {
	c := &Wall{frameInterval: DefaultFrameInterval}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnNextFrame schedules fn one frame interval out.
func (c *Wall) OnNextFrame(fn func()) ports.Handle {
	return timerHandle{timer: time.AfterFunc(c.frameInterval, fn)}
}

// OnTimeout schedules fn after delay. A zero delay still goes through the
// timer layer, deferring past the current synchronous execution.
func (c *Wall) OnTimeout(delay time.Duration, fn func()) ports.Handle {
	if delay < 0 {
		delay = 0
	}
	return timerHandle{timer: time.AfterFunc(delay, fn)}
}

// Now returns the current wall time.
func (c *Wall) Now() time.Time {
	return time.Now()
}

type timerHandle struct {
	timer *time.Timer
}

// Cancel stops the underlying timer. time.Timer.Stop is already idempotent.
func (h timerHandle) Cancel() {
	h.timer.Stop()
}
