package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/adapters/clock"
)

func TestVirtual_Frames(t *testing.T) {
	t.Run("callbacks never fire synchronously", func(t *testing.T) {
		c := clock.NewVirtual()
		fired := false
		c.OnNextFrame(func() { fired = true })
		assert.False(t, fired)

		c.AdvanceFrame()
		assert.True(t, fired)
	})

	t.Run("callbacks scheduled during a frame land in the next one", func(t *testing.T) {
		c := clock.NewVirtual()
		var order []string
		c.OnNextFrame(func() {
			order = append(order, "first")
			c.OnNextFrame(func() { order = append(order, "second") })
		})

		c.AdvanceFrame()
		assert.Equal(t, []string{"first"}, order)

		c.AdvanceFrame()
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("multiple callbacks fire in scheduling order", func(t *testing.T) {
		c := clock.NewVirtual()
		var order []int
		c.OnNextFrame(func() { order = append(order, 1) })
		c.OnNextFrame(func() { order = append(order, 2) })
		c.OnNextFrame(func() { order = append(order, 3) })

		c.AdvanceFrame()
		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("canceled callbacks do not fire", func(t *testing.T) {
		c := clock.NewVirtual()
		fired := false
		h := c.OnNextFrame(func() { fired = true })
		h.Cancel()
		h.Cancel() // idempotent

		c.AdvanceFrame()
		assert.False(t, fired)
	})
}

func TestVirtual_Timeouts(t *testing.T) {
	t.Run("zero delay defers past the current execution", func(t *testing.T) {
		c := clock.NewVirtual()
		fired := false
		c.OnTimeout(0, func() { fired = true })
		assert.False(t, fired, "zero-delay timeout must not fire synchronously")

		c.AdvanceTime(0)
		assert.True(t, fired)
	})

	t.Run("fires in deadline order with scheduling order as tiebreak", func(t *testing.T) {
		c := clock.NewVirtual()
		var order []string
		c.OnTimeout(20*time.Millisecond, func() { order = append(order, "late") })
		c.OnTimeout(10*time.Millisecond, func() { order = append(order, "early-1") })
		c.OnTimeout(10*time.Millisecond, func() { order = append(order, "early-2") })

		c.AdvanceTime(15 * time.Millisecond)
		assert.Equal(t, []string{"early-1", "early-2"}, order)

		c.AdvanceTime(5 * time.Millisecond)
		assert.Equal(t, []string{"early-1", "early-2", "late"}, order)
	})

	t.Run("timeouts scheduled by a firing callback fire when already due", func(t *testing.T) {
		c := clock.NewVirtual()
		var order []string
		c.OnTimeout(10*time.Millisecond, func() {
			order = append(order, "outer")
			c.OnTimeout(0, func() { order = append(order, "inner") })
		})

		c.AdvanceTime(10 * time.Millisecond)
		assert.Equal(t, []string{"outer", "inner"}, order)
	})

	t.Run("cancel is idempotent and safe after firing", func(t *testing.T) {
		c := clock.NewVirtual()
		count := 0
		h := c.OnTimeout(time.Millisecond, func() { count++ })

		c.AdvanceTime(time.Millisecond)
		require.Equal(t, 1, count)

		h.Cancel()
		c.AdvanceTime(time.Millisecond)
		assert.Equal(t, 1, count)
	})

	t.Run("negative delay is clamped to zero", func(t *testing.T) {
		c := clock.NewVirtual()
		fired := false
		c.OnTimeout(-time.Second, func() { fired = true })

		c.AdvanceTime(0)
		assert.True(t, fired)
	})
}

func TestVirtual_Now(t *testing.T) {
	c := clock.NewVirtual()
	start := c.Now()

	c.AdvanceTime(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, c.Now().Sub(start))

	// Frames do not move wall time.
	c.AdvanceFrame()
	assert.Equal(t, 250*time.Millisecond, c.Now().Sub(start))
}
