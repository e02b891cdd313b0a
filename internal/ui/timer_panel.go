package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Saint-creator/myquicknote-timer/internal/tracker"
)

var (
	timeColor  = color.NRGBA{R: 25, G: 25, B: 25, A: 255}
	todayColor = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
)

// TimerPanel is the stopwatch face: the elapsed display, the transport
// buttons, the note entry and the save button, plus the running total for
// today.
type TimerPanel struct {
	app   *tracker.App
	chime *Chime

	container   *fyne.Container
	timeLabel   *canvas.Text
	todayLabel  *canvas.Text
	startButton *widget.Button
	resetButton *widget.Button
	saveButton  *widget.Button
	noteEntry   *widget.Entry

	// OnSaved runs after a session is saved so other views can refresh.
	OnSaved func()
}

func NewTimerPanel(app *tracker.App, chime *Chime) *TimerPanel {
	p := &TimerPanel{
		app:   app,
		chime: chime,
	}
	p.setup()
	return p
}

func (p *TimerPanel) setup() {
	p.timeLabel = canvas.NewText(tracker.FormatSeconds(0), timeColor)
	p.timeLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.timeLabel.TextSize = 40
	p.timeLabel.Alignment = fyne.TextAlignCenter

	p.todayLabel = canvas.NewText("", todayColor)
	p.todayLabel.TextSize = 14
	p.todayLabel.Alignment = fyne.TextAlignCenter

	p.noteEntry = widget.NewEntry()
	p.noteEntry.SetPlaceHolder("What are you working on?")

	p.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if p.app.Timer.Running() {
			p.app.Timer.Pause()
		} else {
			p.app.Timer.Start()
		}
		p.refreshControls()
	})
	p.startButton.Importance = widget.HighImportance

	p.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		p.app.Timer.Reset()
		p.refreshDisplay()
		p.refreshControls()
	})

	p.saveButton = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		if !p.app.SaveSession(p.noteEntry.Text) {
			return
		}
		p.noteEntry.SetText("")
		p.refreshDisplay()
		p.refreshControls()
		p.chime.Play()
		if p.OnSaved != nil {
			p.OnSaved()
		}
	})

	p.app.Timer.SetOnTick(func(elapsedSeconds int) {
		p.timeLabel.Text = tracker.FormatSeconds(elapsedSeconds)
		p.timeLabel.Refresh()
		if elapsedSeconds == 1 {
			p.refreshControls()
		}
	})

	controls := container.NewHBox(
		p.startButton,
		p.resetButton,
	)

	p.container = container.NewVBox(
		container.NewPadded(p.timeLabel),
		container.NewCenter(controls),
		container.NewPadded(p.todayLabel),
		p.noteEntry,
		p.saveButton,
	)

	p.refreshDisplay()
	p.refreshControls()
}

func (p *TimerPanel) refreshDisplay() {
	p.timeLabel.Text = tracker.FormatSeconds(p.app.Timer.Elapsed())
	p.timeLabel.Refresh()
	p.RefreshToday()
}

// RefreshToday redraws the today summary line.
func (p *TimerPanel) RefreshToday() {
	today := p.app.TodayStats()
	p.todayLabel.Text = fmt.Sprintf("Today: %s across %d task(s)",
		tracker.FormatSeconds(today.TotalSeconds), today.TaskCount)
	p.todayLabel.Refresh()
}

// Reset and save only make sense with time on the clock.
func (p *TimerPanel) refreshControls() {
	if p.app.Timer.Running() {
		p.startButton.SetText("Pause")
		p.startButton.SetIcon(theme.MediaPauseIcon())
	} else {
		p.startButton.SetText("Start")
		p.startButton.SetIcon(theme.MediaPlayIcon())
	}

	if p.app.Timer.Elapsed() == 0 {
		p.resetButton.Disable()
		p.saveButton.Disable()
	} else {
		p.resetButton.Enable()
		p.saveButton.Enable()
	}
}

func (p *TimerPanel) Container() *fyne.Container {
	return p.container
}
