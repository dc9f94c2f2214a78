package domain

// Phase identifies the lifecycle position of an in-flight run.
type Phase string

const (
	// PhaseInit is the phase of a run that has been created but has not yet
	// applied its start tags. Runs leave it synchronously on creation.
	PhaseInit Phase = "init"

	// PhaseStarted covers the window between the synchronous start mutation
	// and the settle frame, including the mid-transition frame where the
	// during tags are applied.
	PhaseStarted Phase = "started"

	// PhaseSettled means the end tags are applied and the start tags removed;
	// the run is waiting out its duration.
	PhaseSettled Phase = "settled"

	// PhaseCleaned is terminal: transition-scoped tags are gone and all
	// pending clock handles have been released.
	PhaseCleaned Phase = "cleaned"
)
