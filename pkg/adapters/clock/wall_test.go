package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/adapters/clock"
)

func TestWall_OnTimeout(t *testing.T) {
	c := clock.NewWall()
	done := make(chan struct{})

	c.OnTimeout(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout callback never fired")
	}
}

func TestWall_OnNextFrame(t *testing.T) {
	c := clock.NewWall(clock.WithFrameInterval(time.Millisecond))
	done := make(chan struct{})

	c.OnNextFrame(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("frame callback never fired")
	}
}

func TestWall_Cancel(t *testing.T) {
	c := clock.NewWall()
	fired := make(chan struct{}, 1)

	h := c.OnTimeout(20*time.Millisecond, func() { fired <- struct{}{} })
	h.Cancel()
	h.Cancel() // idempotent

	select {
	case <-fired:
		t.Fatal("canceled timeout fired")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestWall_Now(t *testing.T) {
	c := clock.NewWall()
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}
