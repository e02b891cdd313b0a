package tracker

import (
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/Saint-creator/myquicknote-timer/internal/storage"
)

// App is the application state: the timer, the saved sessions and the
// theme preference, all sharing one clock and one backing store. The UI
// gets an App injected instead of reaching for globals.
type App struct {
	Timer    *Timer
	Sessions *SessionStore
	Theme    *ThemePrefs

	clock clockwork.Clock
}

func NewApp(store storage.Store, clock clockwork.Clock, log *logrus.Logger) *App {
	return &App{
		Timer:    NewTimer(clock),
		Sessions: NewSessionStore(store, clock, log),
		Theme:    NewThemePrefs(store, log),
		clock:    clock,
	}
}

// SaveSession saves the current timer run under the given note and resets
// the timer. With nothing on the clock it does nothing and reports false.
func (a *App) SaveSession(note string) bool {
	elapsed := a.Timer.Elapsed()
	if elapsed == 0 {
		return false
	}

	if !a.Sessions.Save(note, elapsed) {
		return false
	}
	a.Timer.Reset()
	return true
}

// TodayStats reports totals for sessions saved today.
func (a *App) TodayStats() TodayStat {
	return TodayStats(a.Sessions.Sessions(), a.clock.Now())
}

// TaskStats reports per-task totals over all saved sessions.
func (a *App) TaskStats() []TaskStat {
	return TaskStats(a.Sessions.Sessions())
}
