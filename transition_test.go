package transition_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	transition "github.com/plastic-forks/live-view-transition-inconsistency"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/adapters/clock"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/adapters/memory"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/domain"
)

func newEngine(t *testing.T, elements ...*memory.Element) (*transition.Engine, *clock.Virtual, *memory.Registry) {
	t.Helper()
	reg := memory.NewFromElements(elements...)
	clk := clock.NewVirtual()
	engine, err := transition.New(reg, transition.WithClock(clk))
	require.NoError(t, err)
	return engine, clk, reg
}

func TestNew(t *testing.T) {
	t.Run("requires a resolver", func(t *testing.T) {
		_, err := transition.New(nil)
		assert.ErrorContains(t, err, "resolver is required")
	})

	t.Run("defaults to a wall clock", func(t *testing.T) {
		engine, err := transition.New(memory.NewRegistry())
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})
}

func TestEngine_RunTransition(t *testing.T) {
	panel := memory.NewElement("#panel")
	engine, clk, _ := newEngine(t, panel)

	desc, err := domain.NewDescriptor(
		[]string{"dur"}, []string{"s"}, []string{"e"}, time.Second)
	require.NoError(t, err)

	handle, err := engine.RunTransition("#panel", desc)
	require.NoError(t, err)
	require.NotNil(t, handle)

	assert.Equal(t, []string{"s"}, panel.Tags())
	clk.AdvanceFrame()
	assert.Equal(t, []string{"dur", "s"}, panel.Tags())
	clk.AdvanceFrame()
	assert.Equal(t, []string{"dur", "e"}, panel.Tags())
	clk.AdvanceTime(time.Second)
	assert.Empty(t, panel.Tags())
}

func TestEngine_UnresolvedTarget(t *testing.T) {
	engine, _, _ := newEngine(t)

	_, err := engine.Show("#missing", domain.Options{})
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)

	_, err = engine.RunTransition("#missing", domain.Descriptor{})
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestEngine_OptionsTargetOverride(t *testing.T) {
	panel := memory.NewElement("#panel")
	other := memory.NewElement("#other")
	engine, _, _ := newEngine(t, panel, other)

	_, err := engine.Transition("#panel", domain.Options{
		Start:  []string{"s"},
		Target: "#other",
	})
	require.NoError(t, err)

	assert.Empty(t, panel.Tags(), "the option bag's target key redirects the run")
	assert.Equal(t, []string{"s"}, other.Tags())
}

func TestEngine_CancelRun(t *testing.T) {
	panel := memory.NewElement("#panel")
	engine, _, _ := newEngine(t, panel)

	handle, err := engine.Transition("#panel", domain.Options{
		Start:      []string{"s"},
		DurationMs: 1000,
	})
	require.NoError(t, err)

	engine.CancelRun(handle)
	assert.Empty(t, panel.Tags())

	// Idempotent, including on nil handles.
	engine.CancelRun(handle)
	engine.CancelRun(nil)
	assert.Empty(t, panel.Tags())
}

func TestEngine_InvalidDuration(t *testing.T) {
	panel := memory.NewElement("#panel")
	engine, _, _ := newEngine(t, panel)

	_, err := engine.Hide("#panel", domain.Options{DurationMs: -1})
	require.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.Empty(t, panel.Tags())
	assert.True(t, panel.Visible(), "no partial mutation on a rejected request")
}

func TestEngine_Toggle(t *testing.T) {
	panel := memory.NewElement("#panel").Hidden()
	engine, clk, _ := newEngine(t, panel)

	in := domain.Options{Start: []string{"opacity-0"}, End: []string{"opacity-100"}, DurationMs: 100}
	out := domain.Options{Start: []string{"opacity-100"}, End: []string{"opacity-0"}, DurationMs: 100}

	_, err := engine.Toggle("#panel", in, out)
	require.NoError(t, err)
	assert.True(t, panel.Visible())

	clk.AdvanceFrame()
	clk.AdvanceFrame()
	clk.AdvanceTime(100 * time.Millisecond)
	assert.True(t, panel.Visible())

	_, err = engine.Toggle("#panel", in, out)
	require.NoError(t, err)
	clk.AdvanceFrame()
	clk.AdvanceFrame()
	clk.AdvanceTime(100 * time.Millisecond)
	assert.False(t, panel.Visible())
}

func TestEngine_OrphanedRuns(t *testing.T) {
	panel := memory.NewElement("#panel")
	engine, clk, reg := newEngine(t, panel)

	_, err := engine.Transition("#panel", domain.Options{Start: []string{"s"}, DurationMs: 1000})
	require.NoError(t, err)

	// The host drops the element; frames stop arriving.
	reg.Remove("#panel")
	clk.AdvanceTime(30 * time.Second)

	orphans := engine.OrphanedRuns(10 * time.Second)
	require.Len(t, orphans, 1)
	assert.Equal(t, "#panel", orphans[0].TargetID)
	assert.Equal(t, 30*time.Second, orphans[0].Age)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	panel := memory.NewElement("#panel")
	reg := memory.NewFromElements(panel)
	clk := clock.NewVirtual()

	var phases []domain.Phase
	engine, err := transition.New(reg,
		transition.WithClock(clk),
		transition.WithLifecycleHooks(domain.LifecycleHooks{
			OnPhaseChange: func(ev *domain.PhaseEvent) { phases = append(phases, ev.Phase) },
		}),
	)
	require.NoError(t, err)

	_, err = engine.Transition("#panel", domain.Options{Start: []string{"s"}, DurationMs: 50})
	require.NoError(t, err)
	clk.AdvanceFrame()
	clk.AdvanceFrame()
	clk.AdvanceTime(50 * time.Millisecond)

	assert.Equal(t, []domain.Phase{
		domain.PhaseStarted, domain.PhaseSettled, domain.PhaseCleaned,
	}, phases)
}
