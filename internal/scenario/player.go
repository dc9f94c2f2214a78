package scenario

import (
	"fmt"
	"log/slog"
	"time"

	transition "github.com/plastic-forks/live-view-transition-inconsistency"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/adapters/clock"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/adapters/memory"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/domain"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/ports"
)

// TargetState is the observed state of one target at a point in the timeline.
type TargetState struct {
	ID      string
	Tags    []string
	Visible bool
}

// Event records the outcome of one scenario step: what ran, where the virtual
// clock stood afterwards, and a snapshot of every target.
type Event struct {
	Step    int
	Label   string
	Elapsed time.Duration
	Frame   int
	Targets []TargetState
}

// Player executes a scenario against a virtual clock.
type Player struct {
	scenario *Scenario
	clock    *clock.Virtual
	registry *memory.Registry
	engine   *transition.Engine

	epoch   time.Time
	frame   int
	handles map[string]ports.Handle
}

// NewPlayer wires a fresh engine, registry and virtual clock for the
// scenario. The logger may be nil.
func NewPlayer(sc *Scenario, logger *slog.Logger) (*Player, error) {
	registry := memory.NewRegistry()
	for _, spec := range sc.Targets {
		el := memory.NewElement(spec.ID, spec.Tags...)
		if spec.Hidden {
			el.SetVisible(false)
		}
		registry.Add(el)
	}

	clk := clock.NewVirtual()
	opts := []transition.Option{transition.WithClock(clk)}
	if logger != nil {
		opts = append(opts, transition.WithLogger(logger))
	}
	engine, err := transition.New(registry, opts...)
	if err != nil {
		return nil, err
	}

	return &Player{
		scenario: sc,
		clock:    clk,
		registry: registry,
		engine:   engine,
		epoch:    clk.Now(),
		handles:  make(map[string]ports.Handle),
	}, nil
}

// Play executes every step in order and returns the recorded timeline.
// Execution stops at the first failing step.
func (p *Player) Play() ([]Event, error) {
	events := make([]Event, 0, len(p.scenario.Steps))
	for i, step := range p.scenario.Steps {
		label, err := p.exec(step)
		if err != nil {
			return events, fmt.Errorf("step %d (%s): %w", i, label, err)
		}
		events = append(events, Event{
			Step:    i,
			Label:   label,
			Elapsed: p.clock.Now().Sub(p.epoch),
			Frame:   p.frame,
			Targets: p.snapshot(),
		})
	}
	return events, nil
}

func (p *Player) exec(step Step) (string, error) {
	switch {
	case step.Show != "":
		return p.primitive("show", step.Show, step.Opts, func(opts domain.Options) (ports.Handle, error) {
			return p.engine.Show(step.Show, opts)
		})
	case step.Hide != "":
		return p.primitive("hide", step.Hide, step.Opts, func(opts domain.Options) (ports.Handle, error) {
			return p.engine.Hide(step.Hide, opts)
		})
	case step.Toggle != "":
		label := fmt.Sprintf("toggle %s", step.Toggle)
		in, err := domain.ParseOptions(step.In)
		if err != nil {
			return label, err
		}
		out, err := domain.ParseOptions(step.Out)
		if err != nil {
			return label, err
		}
		h, err := p.engine.Toggle(step.Toggle, in, out)
		if err != nil {
			return label, err
		}
		p.handles[step.Toggle] = h
		return label, nil
	case step.AddClass != "":
		return p.primitive("add_class", step.AddClass, step.Opts, func(opts domain.Options) (ports.Handle, error) {
			return p.engine.AddClass(step.AddClass, step.Tags, opts)
		})
	case step.RemoveClass != "":
		return p.primitive("remove_class", step.RemoveClass, step.Opts, func(opts domain.Options) (ports.Handle, error) {
			return p.engine.RemoveClass(step.RemoveClass, step.Tags, opts)
		})
	case step.Transition != "":
		return p.primitive("transition", step.Transition, step.Opts, func(opts domain.Options) (ports.Handle, error) {
			return p.engine.Transition(step.Transition, opts)
		})
	case step.Cancel != "":
		label := fmt.Sprintf("cancel %s", step.Cancel)
		p.engine.CancelRun(p.handles[step.Cancel])
		return label, nil
	case step.Snapshot != "":
		return fmt.Sprintf("snapshot %s", step.Snapshot), nil
	case step.Frames != 0:
		for i := 0; i < step.Frames; i++ {
			p.clock.AdvanceFrame()
			p.frame++
		}
		return fmt.Sprintf("advance %d frame(s)", step.Frames), nil
	case step.WaitMs != 0:
		d := time.Duration(step.WaitMs) * time.Millisecond
		p.clock.AdvanceTime(d)
		return fmt.Sprintf("advance %v", d), nil
	}
	return "noop", fmt.Errorf("empty step")
}

func (p *Player) primitive(name, ref string, bag map[string]any, invoke func(domain.Options) (ports.Handle, error)) (string, error) {
	label := fmt.Sprintf("%s %s", name, ref)
	opts, err := domain.ParseOptions(bag)
	if err != nil {
		return label, err
	}
	h, err := invoke(opts)
	if err != nil {
		return label, err
	}
	p.handles[ref] = h
	return label, nil
}

func (p *Player) snapshot() []TargetState {
	out := make([]TargetState, 0, len(p.scenario.Targets))
	for _, spec := range p.scenario.Targets {
		el, ok := p.registry.Get(spec.ID)
		if !ok {
			continue
		}
		out = append(out, TargetState{ID: spec.ID, Tags: el.Tags(), Visible: el.Visible()})
	}
	return out
}
