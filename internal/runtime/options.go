package runtime

import (
	"log/slog"

	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/domain"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/observability"
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the structured logger for the scheduler.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Scheduler) {
		s.hooks = hooks
	}
}

// WithMetrics attaches Prometheus instrumentation. A nil value disables it.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}
