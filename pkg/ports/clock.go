package ports

import "time"

// Handle cancels a scheduled callback (or an in-flight run).
// Cancel is idempotent: canceling an already-fired or already-canceled handle
// is a no-op, never an error.
type Handle interface {
	Cancel()
}

// Clock supplies the two timing primitives the scheduler composes: discrete
// next-frame scheduling and wall-clock timeouts. Implementations must invoke
// callbacks outside any lock held by the caller of the scheduling method.
type Clock interface {
	// OnNextFrame invokes fn exactly once, at the next point the host is
	// ready to paint. Multiple calls queue independently; callbacks fire
	// strictly after the call that scheduled them, never synchronously.
	OnNextFrame(fn func()) Handle

	// OnTimeout invokes fn once after delay has elapsed. A zero delay still
	// defers past the current synchronous execution.
	OnTimeout(delay time.Duration, fn func()) Handle

	// Now reports the clock's current wall time. Virtual clocks advance it
	// manually so age-based diagnostics stay deterministic.
	Now() time.Time
}
