package domain

import "time"

// EndReason describes why a run reached PhaseCleaned.
type EndReason string

const (
	EndCompleted  EndReason = "completed"  // the cleanup timeout fired normally
	EndCanceled   EndReason = "canceled"   // explicit cancellation via the run handle
	EndSuperseded EndReason = "superseded" // a newer run on the same target took over
)

// PhaseEvent records one phase change of a run.
type PhaseEvent struct {
	Time     time.Time `json:"time"`
	TargetID string    `json:"target_id"`
	RunID    uint64    `json:"run_id"`
	Phase    Phase     `json:"phase"`
	// Tags is the target's tag set immediately after the phase mutation.
	Tags []string `json:"tags"`
}

// RunEvent records the start or end of a run.
type RunEvent struct {
	Time     time.Time `json:"time"`
	TargetID string    `json:"target_id"`
	RunID    uint64    `json:"run_id"`
	// Reason is set on run end only.
	Reason EndReason `json:"reason,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks are invoked outside the scheduler lock, so a hook may safely call
// back into the engine.
type LifecycleHooks struct {
	OnRunStart    func(*RunEvent)
	OnRunEnd      func(*RunEvent)
	OnPhaseChange func(*PhaseEvent)
}

// OrphanedRun describes a run stuck before PhaseSettled longer than a caller
// supplied threshold, typically because the host stopped delivering frames
// for its target.
type OrphanedRun struct {
	TargetID string        `json:"target_id"`
	RunID    uint64        `json:"run_id"`
	Phase    Phase         `json:"phase"`
	Age      time.Duration `json:"age"`
}
