package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeaterFiresExactCount(t *testing.T) {
	clock := NewFakeClock()
	var ticks []int
	done := 0

	r := NewRepeater(clock, 100*time.Millisecond, 20, func(n int) {
		ticks = append(ticks, n)
	}, func() { done++ })
	r.Start()

	assert.True(t, r.Running())
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(99 * time.Millisecond)
	assert.Empty(t, ticks)

	clock.Advance(time.Millisecond)
	assert.Equal(t, []int{1}, ticks)

	clock.Advance(1900 * time.Millisecond)
	require.Len(t, ticks, 20)
	assert.Equal(t, 20, ticks[19])
	assert.Equal(t, 1, done)
	assert.False(t, r.Running())
	assert.Equal(t, 20, r.Fired())
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(time.Second)
	assert.Len(t, ticks, 20)
	assert.Equal(t, 1, done)
}

func TestRepeaterStop(t *testing.T) {
	clock := NewFakeClock()
	fired := 0
	done := 0

	r := NewRepeater(clock, 10*time.Millisecond, 5, func(int) { fired++ }, func() { done++ })
	r.Start()
	clock.Advance(25 * time.Millisecond)
	assert.Equal(t, 2, fired)

	assert.True(t, r.Stop())
	assert.False(t, r.Stop(), "second stop has nothing to cancel")

	clock.Advance(time.Second)
	assert.Equal(t, 2, fired)
	assert.Equal(t, 0, done)
	assert.Equal(t, 0, clock.Pending())

	r.Start()
	assert.False(t, r.Running(), "a stopped repeater cannot be restarted")
}

func TestRepeaterStopFromTick(t *testing.T) {
	clock := NewFakeClock()
	var r *Repeater
	fired := 0
	r = NewRepeater(clock, time.Millisecond, 10, func(n int) {
		fired++
		if n == 3 {
			r.Stop()
		}
	}, nil)
	r.Start()

	clock.Advance(time.Second)
	assert.Equal(t, 3, fired)
}

func TestRepeaterZeroCount(t *testing.T) {
	done := 0
	r := NewRepeater(NewFakeClock(), time.Millisecond, 0, func(int) {
		t.Fatal("no tick expected")
	}, func() { done++ })
	r.Start()
	assert.Equal(t, 1, done)
	assert.False(t, r.Running())
}

func TestRepeaterRealClock(t *testing.T) {
	var fired atomic.Int32
	finished := make(chan struct{})

	r := NewRepeater(nil, time.Millisecond, 3, func(int) { fired.Add(1) }, func() { close(finished) })
	r.Start()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("repeater did not finish")
	}
	assert.Equal(t, int32(3), fired.Load())
}

func TestFakeClockOrdering(t *testing.T) {
	clock := NewFakeClock()
	start := clock.Now()
	var order []string

	clock.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	clock.AfterFunc(10*time.Millisecond, func() {
		order = append(order, "a")
		assert.Equal(t, start.Add(10*time.Millisecond), clock.Now())
		clock.AfterFunc(5*time.Millisecond, func() { order = append(order, "b") })
	})
	stopped := clock.AfterFunc(20*time.Millisecond, func() { order = append(order, "x") })
	assert.True(t, stopped.Stop())

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, start.Add(50*time.Millisecond), clock.Now())
	assert.False(t, stopped.Stop())
}
