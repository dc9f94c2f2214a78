package runtime

import (
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/domain"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/ports"
)

// The named primitives all reduce to a RunSpec and delegate to Start, so
// they share one timeline and one coalescing policy.

// Show runs the transition described by opts and forces the target visible
// at run start.
func (s *Scheduler) Show(target ports.Target, opts domain.Options) (*RunHandle, error) {
	desc, err := opts.Descriptor()
	if err != nil {
		return nil, err
	}
	return s.Start(target, RunSpec{Descriptor: desc, Show: true}), nil
}

// Hide runs the transition described by opts and forces the target hidden at
// cleanup, after the transition tags are removed.
func (s *Scheduler) Hide(target ports.Target, opts domain.Options) (*RunHandle, error) {
	desc, err := opts.Descriptor()
	if err != nil {
		return nil, err
	}
	return s.Start(target, RunSpec{Descriptor: desc, Hide: true}), nil
}

// Toggle dispatches to Show with in when the target is hidden, else to Hide
// with out.
func (s *Scheduler) Toggle(target ports.Target, in, out domain.Options) (*RunHandle, error) {
	if target.Visible() {
		return s.Hide(target, out)
	}
	return s.Show(target, in)
}

// AddClass permanently adds tags to the target through a transition run: the
// tags ride along with the end tags but survive cleanup.
func (s *Scheduler) AddClass(target ports.Target, tags []string, opts domain.Options) (*RunHandle, error) {
	desc, err := domain.NewDescriptor(opts.During, opts.Start, union(opts.End, tags), opts.Duration())
	if err != nil {
		return nil, err
	}
	return s.Start(target, RunSpec{Descriptor: desc, StickyAdd: tags}), nil
}

// RemoveClass permanently removes tags from the target through a transition
// run: the tags are dropped at run start, never re-added while the run is
// alive (even when the end tags name them), and force-removed at cleanup.
func (s *Scheduler) RemoveClass(target ports.Target, tags []string, opts domain.Options) (*RunHandle, error) {
	desc, err := opts.Descriptor()
	if err != nil {
		return nil, err
	}
	return s.Start(target, RunSpec{Descriptor: desc, StickyRemove: tags}), nil
}

// Transition runs the transition described by opts with no display intent.
func (s *Scheduler) Transition(target ports.Target, opts domain.Options) (*RunHandle, error) {
	desc, err := opts.Descriptor()
	if err != nil {
		return nil, err
	}
	return s.Start(target, RunSpec{Descriptor: desc}), nil
}

// union appends the tags of b missing from a, preserving order.
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	for _, tag := range b {
		if !contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}
