package clock

import (
	"sort"
	"sync"
	"time"

	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/ports"
)

// Virtual is a manually advanced clock. Nothing fires until the owner calls
// AdvanceFrame or AdvanceTime, which makes every scheduling interleaving
// reproducible.
//
// Frame semantics mirror a batching paint host: callbacks scheduled before an
// AdvanceFrame call fire in that frame, callbacks scheduled while a frame is
// running are deferred to the next one. Timeouts fire in deadline order, ties
// broken by scheduling order; a zero-delay timeout fires on the next
// AdvanceTime call, never synchronously.
type Virtual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	frames []*task
	timers []*task
}

type task struct {
	fn       func()
	deadline time.Time
	seq      uint64
	done     bool
}

type taskHandle struct {
	clock *Virtual
	task  *task
}

// Cancel marks the task as consumed. Safe to call multiple times and after
// the task has fired.
func (h *taskHandle) Cancel() {
	h.clock.mu.Lock()
	defer h.clock.mu.Unlock()
	h.task.done = true
}

// NewVirtual creates a virtual clock positioned at the Unix epoch.
func NewVirtual() *Virtual {
	return &Virtual{now: time.Unix(0, 0).UTC()}
}

// OnNextFrame queues fn for the next AdvanceFrame call.
func (c *Virtual) OnNextFrame(fn func()) ports.Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &task{fn: fn, seq: c.nextSeq()}
	c.frames = append(c.frames, t)
	return &taskHandle{clock: c, task: t}
}

// OnTimeout queues fn to fire once the clock has been advanced past delay.
// Negative delays are treated as zero.
func (c *Virtual) OnTimeout(delay time.Duration, fn func()) ports.Handle {
	if delay < 0 {
		delay = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	t := &task{fn: fn, deadline: c.now.Add(delay), seq: c.nextSeq()}
	c.timers = append(c.timers, t)
	return &taskHandle{clock: c, task: t}
}

// Now returns the virtual wall time.
func (c *Virtual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AdvanceFrame delivers one paint: every callback queued before this call
// fires, in scheduling order. Callbacks queued by the callbacks themselves
// land in the following frame.
func (c *Virtual) AdvanceFrame() {
	c.mu.Lock()
	batch := c.frames
	c.frames = nil
	c.mu.Unlock()

	for _, t := range batch {
		if c.claim(t) {
			t.fn()
		}
	}
}

// AdvanceTime moves the wall clock forward by d and fires every timeout whose
// deadline has been reached, in deadline order. Timeouts scheduled by a firing
// callback fire in the same call when already due.
func (c *Virtual) AdvanceTime(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()

	for {
		t := c.popDue()
		if t == nil {
			return
		}
		t.fn()
	}
}

// popDue removes and claims the earliest due timer, or returns nil.
func (c *Virtual) popDue() *task {
	c.mu.Lock()
	defer c.mu.Unlock()

	sort.SliceStable(c.timers, func(i, j int) bool {
		if !c.timers[i].deadline.Equal(c.timers[j].deadline) {
			return c.timers[i].deadline.Before(c.timers[j].deadline)
		}
		return c.timers[i].seq < c.timers[j].seq
	})

	for len(c.timers) > 0 {
		t := c.timers[0]
		if t.deadline.After(c.now) {
			return nil
		}
		c.timers = c.timers[1:]
		if t.done {
			// Canceled; drop and keep scanning.
			continue
		}
		t.done = true
		return t
	}
	return nil
}

func (c *Virtual) claim(t *task) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

func (c *Virtual) nextSeq() uint64 {
	c.seq++
	return c.seq
}
