package tracker

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Timer counts elapsed whole seconds while running. Exactly one ticker is
// registered while running and none otherwise; Pause and Reset stop the
// ticker before returning, so no tick lands after either call.
type Timer struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	elapsed int
	running bool
	ticker  clockwork.Ticker
	stop    chan struct{}
	onTick  func(elapsedSeconds int)
}

func NewTimer(clock clockwork.Clock) *Timer {
	return &Timer{clock: clock}
}

// SetOnTick sets the callback invoked after every one-second advance.
func (t *Timer) SetOnTick(callback func(elapsedSeconds int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTick = callback
}

// Start begins counting from the current elapsed value. Calling Start
// while already running does nothing.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	t.running = true
	t.ticker = t.clock.NewTicker(time.Second)
	t.stop = make(chan struct{})
	go t.run(t.ticker, t.stop)
}

func (t *Timer) run(ticker clockwork.Ticker, stop chan struct{}) {
	for {
		select {
		case <-ticker.Chan():
			t.mu.Lock()
			if !t.running {
				t.mu.Unlock()
				return
			}
			t.elapsed++
			elapsed := t.elapsed
			callback := t.onTick
			t.mu.Unlock()

			if callback != nil {
				callback(elapsed)
			}
		case <-stop:
			return
		}
	}
}

// Pause stops counting but keeps the elapsed value. No-op when not running.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTicking()
}

// Reset stops counting and zeroes the elapsed value, unconditionally.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTicking()
	t.elapsed = 0
}

// stopTicking must be called with the lock held.
func (t *Timer) stopTicking() {
	if !t.running {
		return
	}
	t.running = false
	t.ticker.Stop()
	t.ticker = nil
	close(t.stop)
	t.stop = nil
}

func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
