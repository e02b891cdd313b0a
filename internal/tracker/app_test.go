package tracker

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saint-creator/myquicknote-timer/internal/storage"
)

func newTestApp() (*App, clockwork.FakeClock, chan int) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))
	app := NewApp(storage.NewMemoryStore(), clock, testLogger())
	ticks := make(chan int, 16)
	app.Timer.SetOnTick(func(elapsedSeconds int) { ticks <- elapsedSeconds })
	return app, clock, ticks
}

func TestSaveSessionResetsTimer(t *testing.T) {
	app, clock, ticks := newTestApp()

	app.Timer.Start()
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	waitTick(t, ticks)
	clock.Advance(time.Second)
	waitTick(t, ticks)

	require.True(t, app.SaveSession("reading"))

	assert.Equal(t, 0, app.Timer.Elapsed())
	assert.False(t, app.Timer.Running())

	sessions := app.Sessions.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "reading", sessions[0].Note)
	assert.Equal(t, 2, sessions[0].DurationSeconds)
	assert.True(t, clock.Now().Equal(sessions[0].CreatedAt))
}

func TestSaveSessionResetsPausedTimer(t *testing.T) {
	app, clock, ticks := newTestApp()

	app.Timer.Start()
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	waitTick(t, ticks)
	app.Timer.Pause()

	require.True(t, app.SaveSession("reading"))
	assert.Equal(t, 0, app.Timer.Elapsed())
	assert.False(t, app.Timer.Running())
}

func TestSaveSessionWithZeroElapsed(t *testing.T) {
	app, _, _ := newTestApp()

	assert.False(t, app.SaveSession("reading"))
	assert.Equal(t, 0, app.Sessions.Count())
}

func TestAppAggregates(t *testing.T) {
	app, _, _ := newTestApp()

	require.True(t, app.Sessions.Save("Read", 60))
	require.True(t, app.Sessions.Save("read", 120))

	today := app.TodayStats()
	assert.Equal(t, 180, today.TotalSeconds)
	assert.Equal(t, 1, today.TaskCount)

	stats := app.TaskStats()
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 90.0, stats[0].AverageSeconds)
}
