package transition

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/plastic-forks/live-view-transition-inconsistency/internal/runtime"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/adapters/clock"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/domain"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/observability"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/ports"
)

// Engine is the high-level entry point for the transition library.
// It wraps the internal scheduler and provides a reference-based API for
// consumers: every primitive takes a target reference resolved through the
// injected Resolver.
type Engine struct {
	scheduler *runtime.Scheduler
	resolver  ports.Resolver
	clock     ports.Clock
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	metrics   *observability.Metrics
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithClock injects a custom clock, bypassing the default wall clock.
// Tests pass clock.NewVirtual() here for deterministic timelines.
func WithClock(clk ports.Clock) Option {
	return func(e *Engine) {
		e.clock = clk
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New initializes a new transition Engine bound to a target resolver.
// By default it schedules against real timers; inject a clock to override.
func New(resolver ports.Resolver, opts ...Option) (*Engine, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}

	eng := &Engine{resolver: resolver}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.clock == nil {
		eng.clock = clock.NewWall()
	}
	// Ensure logger is initialized (so we don't pass nil to the scheduler,
	// which would overwrite its default).
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.scheduler = runtime.NewScheduler(
		eng.clock,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithMetrics(eng.metrics),
	)
	return eng, nil
}

// Show starts a transition that forces the target visible at run start.
func (e *Engine) Show(ref string, opts domain.Options) (ports.Handle, error) {
	target, err := e.resolve(ref, opts)
	if err != nil {
		return nil, err
	}
	return e.handle(e.scheduler.Show(target, opts))
}

// Hide starts a transition that forces the target hidden at cleanup.
func (e *Engine) Hide(ref string, opts domain.Options) (ports.Handle, error) {
	target, err := e.resolve(ref, opts)
	if err != nil {
		return nil, err
	}
	return e.handle(e.scheduler.Hide(target, opts))
}

// Toggle dispatches to Show with in when the target is currently hidden,
// else to Hide with out.
func (e *Engine) Toggle(ref string, in, out domain.Options) (ports.Handle, error) {
	override := ref
	switch {
	case in.Target != "":
		override = in.Target
	case out.Target != "":
		override = out.Target
	}
	target, err := e.resolver.Resolve(override)
	if err != nil {
		return nil, err
	}
	return e.handle(e.scheduler.Toggle(target, in, out))
}

// AddClass permanently adds tags to the target through a transition run.
func (e *Engine) AddClass(ref string, tags []string, opts domain.Options) (ports.Handle, error) {
	target, err := e.resolve(ref, opts)
	if err != nil {
		return nil, err
	}
	return e.handle(e.scheduler.AddClass(target, tags, opts))
}

// RemoveClass permanently removes tags from the target through a transition
// run.
func (e *Engine) RemoveClass(ref string, tags []string, opts domain.Options) (ports.Handle, error) {
	target, err := e.resolve(ref, opts)
	if err != nil {
		return nil, err
	}
	return e.handle(e.scheduler.RemoveClass(target, tags, opts))
}

// Transition starts a transition with no display intent.
func (e *Engine) Transition(ref string, opts domain.Options) (ports.Handle, error) {
	target, err := e.resolve(ref, opts)
	if err != nil {
		return nil, err
	}
	return e.handle(e.scheduler.Transition(target, opts))
}

// RunTransition starts (or supersedes) a run directly from a descriptor and
// returns a handle usable for explicit cancellation.
func (e *Engine) RunTransition(ref string, desc domain.Descriptor) (ports.Handle, error) {
	target, err := e.resolver.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return e.scheduler.Start(target, runtime.RunSpec{Descriptor: desc}), nil
}

// CancelRun cancels a run by handle. Idempotent; a nil or finished handle is
// a no-op.
func (e *Engine) CancelRun(h ports.Handle) {
	if h != nil {
		h.Cancel()
	}
}

// OrphanedRuns reports runs that have not settled after olderThan, typically
// because the host removed their element and stopped delivering frames.
func (e *Engine) OrphanedRuns(olderThan time.Duration) []domain.OrphanedRun {
	return e.scheduler.Orphaned(olderThan)
}

// Resolver returns the underlying target resolver used by the engine.
func (e *Engine) Resolver() ports.Resolver {
	return e.resolver
}

func (e *Engine) resolve(ref string, opts domain.Options) (ports.Target, error) {
	if opts.Target != "" {
		ref = opts.Target
	}
	return e.resolver.Resolve(ref)
}

// handle narrows the scheduler's concrete run handle to ports.Handle while
// keeping a typed nil out of the interface on error paths.
func (e *Engine) handle(h *runtime.RunHandle, err error) (ports.Handle, error) {
	if err != nil {
		return nil, err
	}
	return h, nil
}
