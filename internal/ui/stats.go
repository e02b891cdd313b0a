package ui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Saint-creator/myquicknote-timer/internal/tracker"
)

// StatsView shows the today summary and the per-task averages. Everything
// here is recomputed from the session list on every reload.
type StatsView struct {
	app *tracker.App

	container  *fyne.Container
	todayStats *widget.Label
	taskRows   *fyne.Container
	refreshBtn *widget.Button
}

func NewStatsView(app *tracker.App) *StatsView {
	sv := &StatsView{
		app:        app,
		todayStats: widget.NewLabel(""),
	}
	sv.setup()
	return sv
}

func (sv *StatsView) setup() {
	title := widget.NewLabelWithStyle("Statistics", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	sv.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), sv.Reload)
	sv.taskRows = container.NewVBox()

	sv.container = container.NewVBox(
		container.NewHBox(title, sv.refreshBtn),
		widget.NewLabelWithStyle("Today", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sv.todayStats,
		widget.NewLabelWithStyle("Per task", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sv.taskRows,
	)

	sv.Reload()
}

// Reload recomputes both aggregates and redraws the view.
func (sv *StatsView) Reload() {
	today := sv.app.TodayStats()
	sv.todayStats.SetText(fmt.Sprintf(
		"Total Time: %s\nTasks: %d",
		tracker.FormatSeconds(today.TotalSeconds),
		today.TaskCount,
	))

	sv.taskRows.Objects = nil
	stats := sv.app.TaskStats()
	if len(stats) == 0 {
		sv.taskRows.Add(widget.NewLabel("Nothing tracked yet"))
		sv.taskRows.Refresh()
		return
	}

	for _, stat := range stats {
		average := int(math.Round(stat.AverageSeconds))
		sv.taskRows.Add(widget.NewLabel(fmt.Sprintf(
			"%s: avg %s over %d session(s), total %s",
			stat.Name,
			tracker.FormatSeconds(average),
			stat.Count,
			tracker.FormatSeconds(stat.TotalSeconds),
		)))
	}
	sv.taskRows.Refresh()
}

func (sv *StatsView) Container() *fyne.Container {
	return sv.container
}
