// Package runtime implements the transition scheduler: the state machine that
// drives a target's tag set through the four-phase timeline (start tags
// synchronously, during tags on the next frame, end tags one frame later,
// cleanup after the configured duration).
package runtime

import (
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/domain"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/observability"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/ports"
)

// Scheduler owns the per-target run registry and all tag mutation. At most
// one run is active per target; starting a new one supersedes the old run
// before any of the new run's mutations land.
//
// All mutation happens under s.mu, which restores the host's single logical
// execution context even when clock callbacks arrive from timer goroutines.
// Lifecycle hooks are dispatched after the lock is released, so hooks may
// call back into the scheduler.
type Scheduler struct {
	clock   ports.Clock
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	metrics *observability.Metrics

	mu      sync.Mutex
	runs    map[string]*Run
	nextID  uint64
	pending []func()
}

// NewScheduler creates a scheduler bound to a clock.
func NewScheduler(clk ports.Clock, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock: clk,
		runs:  make(map[string]*Run),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Start creates a run for the given spec, superseding any active run on the
// same target, and returns a handle for explicit cancellation.
func (s *Scheduler) Start(target ports.Target, spec RunSpec) *RunHandle {
	var handle *RunHandle
	s.locked(func() {
		handle = s.startLocked(target, spec)
	})
	return handle
}

// Active reports the phase of the target's in-flight run, if any.
func (s *Scheduler) Active(targetID string) (domain.Phase, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[targetID]
	if !ok {
		return "", false
	}
	return run.phase, true
}

// Orphaned reports runs that have not settled after olderThan. A run gets
// stuck this way when the host removes its element and stops delivering
// frames; the condition is diagnostic, not an error.
func (s *Scheduler) Orphaned(olderThan time.Duration) []domain.OrphanedRun {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.OrphanedRun
	for _, run := range s.runs {
		if run.phase != domain.PhaseStarted {
			continue
		}
		age := now.Sub(run.startedAt)
		if age > olderThan {
			out = append(out, domain.OrphanedRun{
				TargetID: run.target.ID(),
				RunID:    run.id,
				Phase:    run.phase,
				Age:      age,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetID < out[j].TargetID })
	return out
}

// locked runs fn under the scheduler lock, then dispatches any hook
// callbacks fn queued.
func (s *Scheduler) locked(fn func()) {
	s.mu.Lock()
	fn()
	callbacks := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

func (s *Scheduler) startLocked(target ports.Target, spec RunSpec) *RunHandle {
	if old, ok := s.runs[target.ID()]; ok {
		s.logger.Debug("superseding active run", "target", target.ID(), "run", old.id)
		s.finishLocked(old, domain.EndSuperseded)
	}

	s.nextID++
	run := &Run{
		id:        s.nextID,
		target:    target,
		spec:      spec,
		phase:     domain.PhaseInit,
		startedAt: s.clock.Now(),
	}
	s.runs[target.ID()] = run

	// Init -> Started, synchronously: the host must get a chance to commit a
	// paint with the start tags alone before the during tags land.
	target.AddTags(spec.Descriptor.Start...)
	target.RemoveTags(spec.StickyRemove...)
	if spec.Show && !target.Visible() {
		target.SetVisible(true)
	}
	run.phase = domain.PhaseStarted

	run.frame = s.clock.OnNextFrame(func() { s.onDuringFrame(run) })
	run.timeout = s.clock.OnTimeout(spec.Descriptor.Duration, func() { s.onCleanupTimeout(run) })

	s.metrics.RunStarted()
	s.emitRunStart(run)
	s.emitPhase(run)
	s.logger.Debug("run started",
		"target", target.ID(), "run", run.id, "duration", spec.Descriptor.Duration)

	return &RunHandle{scheduler: s, run: run}
}

// onDuringFrame is the first frame after start: apply the during tags and
// schedule the settle frame, so there are two frame boundaries between the
// start and end appearance.
func (s *Scheduler) onDuringFrame(run *Run) {
	s.locked(func() {
		if run.phase != domain.PhaseStarted {
			return
		}
		run.target.AddTags(subtract(run.spec.Descriptor.During, run.spec.StickyRemove)...)
		run.frame = s.clock.OnNextFrame(func() { s.onSettleFrame(run) })
		s.logger.Debug("during tags applied", "target", run.target.ID(), "run", run.id)
	})
}

// onSettleFrame swaps the start appearance for the end appearance. The during
// tags stay applied so the animation keeps going until cleanup.
func (s *Scheduler) onSettleFrame(run *Run) {
	s.locked(func() {
		if run.phase != domain.PhaseStarted {
			return
		}
		run.target.RemoveTags(run.spec.Descriptor.Start...)
		run.target.AddTags(subtract(run.spec.Descriptor.End, run.spec.StickyRemove)...)
		run.phase = domain.PhaseSettled
		run.frame = nil
		s.emitPhase(run)

		if run.cleanupDue {
			// The duration elapsed while the frame chain was still in
			// flight; cleanup was clamped to follow settling.
			s.finishLocked(run, domain.EndCompleted)
		}
	})
}

func (s *Scheduler) onCleanupTimeout(run *Run) {
	s.locked(func() {
		switch run.phase {
		case domain.PhaseSettled:
			s.finishLocked(run, domain.EndCompleted)
		case domain.PhaseCleaned:
			// Canceled or superseded after the timeout was queued.
		default:
			run.cleanupDue = true
		}
	})
}

// finishLocked collapses the run's remaining tag timeline to now and marks it
// cleaned. Completion, cancellation and supersession all end here, which is
// what keeps the primitives consistent with each other.
func (s *Scheduler) finishLocked(run *Run, reason domain.EndReason) {
	if run.phase == domain.PhaseCleaned {
		return
	}
	if run.frame != nil {
		run.frame.Cancel()
		run.frame = nil
	}
	if run.timeout != nil {
		run.timeout.Cancel()
		run.timeout = nil
	}

	target := run.target
	desc := run.spec.Descriptor
	target.RemoveTags(desc.Start...)
	target.RemoveTags(subtract(desc.During, run.spec.StickyAdd)...)
	target.RemoveTags(subtract(desc.End, run.spec.StickyAdd)...)
	target.AddTags(run.spec.StickyAdd...)
	target.RemoveTags(run.spec.StickyRemove...)
	if run.spec.Hide {
		// The display flag flips only after the transition tags are gone.
		target.SetVisible(false)
	}

	run.phase = domain.PhaseCleaned
	if s.runs[target.ID()] == run {
		delete(s.runs, target.ID())
	}

	switch reason {
	case domain.EndCompleted:
		s.metrics.RunCompleted()
	case domain.EndCanceled:
		s.metrics.RunCanceled()
	case domain.EndSuperseded:
		s.metrics.RunSuperseded()
	}
	s.emitPhase(run)
	s.emitRunEnd(run, reason)
	s.logger.Debug("run finished", "target", target.ID(), "run", run.id, "reason", string(reason))
}

func (s *Scheduler) emitRunStart(run *Run) {
	cb := s.hooks.OnRunStart
	if cb == nil {
		return
	}
	ev := &domain.RunEvent{Time: s.clock.Now(), TargetID: run.target.ID(), RunID: run.id}
	s.pending = append(s.pending, func() { cb(ev) })
}

func (s *Scheduler) emitRunEnd(run *Run, reason domain.EndReason) {
	cb := s.hooks.OnRunEnd
	if cb == nil {
		return
	}
	ev := &domain.RunEvent{Time: s.clock.Now(), TargetID: run.target.ID(), RunID: run.id, Reason: reason}
	s.pending = append(s.pending, func() { cb(ev) })
}

func (s *Scheduler) emitPhase(run *Run) {
	cb := s.hooks.OnPhaseChange
	if cb == nil {
		return
	}
	ev := &domain.PhaseEvent{
		Time:     s.clock.Now(),
		TargetID: run.target.ID(),
		RunID:    run.id,
		Phase:    run.phase,
		Tags:     run.target.Tags(),
	}
	s.pending = append(s.pending, func() { cb(ev) })
}

// subtract returns the tags of a that are not in b.
func subtract(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	out := make([]string, 0, len(a))
	for _, tag := range a {
		if !contains(b, tag) {
			out = append(out, tag)
		}
	}
	return out
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
