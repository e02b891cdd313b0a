package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Saint-creator/myquicknote-timer/internal/config"
	"github.com/Saint-creator/myquicknote-timer/internal/models"
	"github.com/Saint-creator/myquicknote-timer/internal/tracker"
)

type MainWindow struct {
	window  fyne.Window
	fyneApp fyne.App
	app     *tracker.App

	timerPanel *TimerPanel
	history    *HistoryView
	stats      *StatsView
}

func NewMainWindow(fyneApp fyne.App, cfg *config.Config, app *tracker.App, chime *Chime) *MainWindow {
	w := &MainWindow{
		window:  fyneApp.NewWindow(cfg.App.Name),
		fyneApp: fyneApp,
		app:     app,
	}

	w.timerPanel = NewTimerPanel(app, chime)
	w.history = NewHistoryView(app, w.window)
	w.stats = NewStatsView(app)
	w.setup()
	return w
}

func (w *MainWindow) setup() {
	// Keep the derived views in sync with the session list.
	w.timerPanel.OnSaved = func() {
		w.history.Reload()
		w.stats.Reload()
	}
	w.history.OnChanged = func() {
		w.stats.Reload()
		w.timerPanel.RefreshToday()
	}

	themeButton := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		w.applyTheme(w.app.Theme.Toggle())
	})

	topBar := container.NewHBox(layout.NewSpacer(), themeButton)

	tabs := container.NewAppTabs(
		container.NewTabItem("Timer", w.timerPanel.Container()),
		container.NewTabItem("History", w.history.Container()),
		container.NewTabItem("Statistics", w.stats.Container()),
	)

	w.window.SetContent(container.NewBorder(topBar, nil, nil, nil, tabs))
	w.applyTheme(w.app.Theme.Current())
}

func (w *MainWindow) applyTheme(t models.Theme) {
	if t == models.ThemeLight {
		w.fyneApp.Settings().SetTheme(theme.LightTheme())
		return
	}
	w.fyneApp.Settings().SetTheme(theme.DarkTheme())
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
