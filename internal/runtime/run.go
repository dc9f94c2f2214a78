package runtime

import (
	"time"

	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/domain"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/ports"
)

// RunSpec is everything a named primitive contributes to a run: the
// descriptor plus sticky tags and the display intent. Every primitive reduces
// to one of these, so they all share the same scheduling contract.
type RunSpec struct {
	Descriptor domain.Descriptor

	// StickyAdd tags survive cleanup: they are merged into the end tags and
	// excluded from end-of-run removal.
	StickyAdd []string

	// StickyRemove tags never appear while the run is alive and are removed
	// for good at cleanup, regardless of descriptor membership.
	StickyRemove []string

	// Show flips the display flag to visible at run start.
	Show bool

	// Hide flips the display flag to hidden at cleanup, after the
	// transition-scoped tags are gone.
	Hide bool
}

// Run is one in-flight transition on a target. All fields are guarded by the
// owning scheduler's lock.
type Run struct {
	id     uint64
	target ports.Target
	spec   RunSpec
	phase  domain.Phase

	frame   ports.Handle
	timeout ports.Handle

	// cleanupDue marks that the duration elapsed before the frame chain
	// settled; the settle frame performs cleanup immediately after settling.
	cleanupDue bool

	startedAt time.Time
}

// RunHandle allows explicit cancellation and inspection of a run.
// It implements ports.Handle.
type RunHandle struct {
	scheduler *Scheduler
	run       *Run
}

// Cancel ends the run, collapsing the remaining tag timeline to now.
// Idempotent: canceling a finished run is a no-op.
func (h *RunHandle) Cancel() {
	if h == nil {
		return
	}
	h.scheduler.locked(func() {
		h.scheduler.finishLocked(h.run, domain.EndCanceled)
	})
}

// RunID returns the run's unique identifier.
func (h *RunHandle) RunID() uint64 {
	return h.run.id
}

// Phase returns the run's current phase.
func (h *RunHandle) Phase() domain.Phase {
	h.scheduler.mu.Lock()
	defer h.scheduler.mu.Unlock()
	return h.run.phase
}
