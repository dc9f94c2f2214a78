/*
Package transition implements a class-transition scheduling engine: it takes
a declarative transition request (a target element, start/during/end tag sets
and a duration) and mutates the element's tag set at the correct moments
relative to an animation-frame clock and a wall-clock timeout.

Every named primitive (Show, Hide, Toggle, AddClass, RemoveClass, Transition)
reduces to the same four-phase timeline:

 1. Start tags are applied synchronously, so the host can commit a paint with
    the start appearance alone. A transition that shows its target flips the
    display flag here.
 2. On the next frame, the during tags are applied, triggering the animation.
 3. On the frame after that, the end tags are applied and the start tags
    removed. The during tags stay so the animation runs to completion.
 4. After the configured duration, the during and end tags are removed. A
    transition that hides its target flips the display flag here, last.

At most one run is active per target: a new request supersedes the old run,
collapsing its remaining timeline before any new mutation lands. Tags added
or removed via AddClass/RemoveClass are sticky and survive cleanup.

The clock is injected (see pkg/adapters/clock), so tests and scripted
reproductions drive the timeline deterministically with a virtual clock while
live use binds to real timers.

# Usage

	reg := memory.NewFromElements(memory.NewElement("#panel").Hidden())
	engine, err := transition.New(reg)
	if err != nil {
		log.Fatal(err)
	}

	_, err = engine.Show("#panel", domain.Options{
		Start:      []string{"opacity-0"},
		During:     []string{"transition-opacity"},
		End:        []string{"opacity-100"},
		DurationMs: 200,
	})
*/
package transition
