package tracker

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTimer() (*Timer, clockwork.FakeClock, chan int) {
	clock := clockwork.NewFakeClock()
	timer := NewTimer(clock)
	ticks := make(chan int, 16)
	timer.SetOnTick(func(elapsedSeconds int) { ticks <- elapsedSeconds })
	return timer, clock, ticks
}

func waitTick(t *testing.T, ticks <-chan int) int {
	t.Helper()
	select {
	case n := <-ticks:
		return n
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tick")
		return 0
	}
}

func TestTimerCountsWholeSeconds(t *testing.T) {
	timer, clock, ticks := newTestTimer()

	timer.Start()
	clock.BlockUntil(1)

	for want := 1; want <= 3; want++ {
		clock.Advance(time.Second)
		require.Equal(t, want, waitTick(t, ticks))
	}

	assert.Equal(t, 3, timer.Elapsed())
	assert.True(t, timer.Running())
}

func TestTimerStartWhileRunningIsNoop(t *testing.T) {
	timer, clock, ticks := newTestTimer()

	timer.Start()
	timer.Start()
	clock.BlockUntil(1)

	// A second Start must not register a second ticker, so one advance
	// yields exactly one second.
	clock.Advance(time.Second)
	require.Equal(t, 1, waitTick(t, ticks))
	clock.Advance(time.Second)
	require.Equal(t, 2, waitTick(t, ticks))
	assert.Equal(t, 2, timer.Elapsed())
}

func TestTimerPauseKeepsElapsed(t *testing.T) {
	timer, clock, ticks := newTestTimer()

	timer.Start()
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	waitTick(t, ticks)
	clock.Advance(time.Second)
	waitTick(t, ticks)

	timer.Pause()
	assert.False(t, timer.Running())

	// No ticker is registered anymore, so time passing changes nothing.
	clock.Advance(10 * time.Second)
	assert.Equal(t, 2, timer.Elapsed())
}

func TestTimerPauseWhilePausedIsNoop(t *testing.T) {
	timer, _, _ := newTestTimer()

	timer.Pause()
	assert.False(t, timer.Running())
	assert.Equal(t, 0, timer.Elapsed())
}

func TestTimerResumesAfterPause(t *testing.T) {
	timer, clock, ticks := newTestTimer()

	timer.Start()
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	waitTick(t, ticks)

	timer.Pause()
	timer.Start()
	clock.BlockUntil(1)

	clock.Advance(time.Second)
	require.Equal(t, 2, waitTick(t, ticks))
	assert.Equal(t, 2, timer.Elapsed())
}

func TestTimerResetZeroesElapsed(t *testing.T) {
	timer, clock, ticks := newTestTimer()

	timer.Start()
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	waitTick(t, ticks)

	timer.Reset()
	assert.False(t, timer.Running())
	assert.Equal(t, 0, timer.Elapsed())

	clock.Advance(10 * time.Second)
	assert.Equal(t, 0, timer.Elapsed())
}

func TestTimerResetWhileIdle(t *testing.T) {
	timer, _, _ := newTestTimer()

	timer.Reset()
	assert.False(t, timer.Running())
	assert.Equal(t, 0, timer.Elapsed())
}

func TestTimerElapsedNeverDecreasesExceptOnReset(t *testing.T) {
	timer, clock, ticks := newTestTimer()

	previous := timer.Elapsed()

	timer.Start()
	clock.BlockUntil(1)
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		waitTick(t, ticks)
		current := timer.Elapsed()
		require.GreaterOrEqual(t, current, previous)
		previous = current
	}

	timer.Pause()
	require.GreaterOrEqual(t, timer.Elapsed(), previous)

	timer.Reset()
	assert.Equal(t, 0, timer.Elapsed())
}
