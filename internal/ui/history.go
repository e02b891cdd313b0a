package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Saint-creator/myquicknote-timer/internal/tracker"
)

// HistoryView lists the saved sessions, newest first, with a delete button
// per row and a clear-all action for the whole list.
type HistoryView struct {
	app    *tracker.App
	window fyne.Window

	container *fyne.Container
	rows      *fyne.Container
	clearBtn  *widget.Button

	// OnChanged runs after a delete or clear so other views can refresh.
	OnChanged func()
}

func NewHistoryView(app *tracker.App, window fyne.Window) *HistoryView {
	h := &HistoryView{
		app:    app,
		window: window,
	}
	h.setup()
	return h
}

func (h *HistoryView) setup() {
	h.rows = container.NewVBox()

	h.clearBtn = widget.NewButtonWithIcon("Clear all", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Clear history", "Delete all saved sessions?", func(confirmed bool) {
			if !confirmed {
				return
			}
			h.app.Sessions.ClearAll()
			h.Reload()
			if h.OnChanged != nil {
				h.OnChanged()
			}
		}, h.window)
	})

	h.container = container.NewBorder(
		h.clearBtn, nil, nil, nil,
		container.NewVScroll(h.rows),
	)

	h.Reload()
}

// Reload rebuilds the rows from the current session list.
func (h *HistoryView) Reload() {
	h.rows.Objects = nil

	sessions := h.app.Sessions.Sessions()
	if len(sessions) == 0 {
		h.clearBtn.Disable()
		h.rows.Add(widget.NewLabel("No sessions saved yet"))
		h.rows.Refresh()
		return
	}
	h.clearBtn.Enable()

	for _, session := range sessions {
		h.rows.Add(h.makeRow(session.ID, session.Note,
			tracker.FormatSeconds(session.DurationSeconds),
			session.CreatedAt.Local().Format("Jan 2, 15:04")))
	}
	h.rows.Refresh()
}

func (h *HistoryView) makeRow(id, note, duration, saved string) *fyne.Container {
	noteLabel := widget.NewLabelWithStyle(note, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	durationLabel := widget.NewLabel(duration)
	savedLabel := widget.NewLabel(saved)

	deleteBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		h.app.Sessions.Delete(id)
		h.Reload()
		if h.OnChanged != nil {
			h.OnChanged()
		}
	})

	return container.NewHBox(
		noteLabel,
		durationLabel,
		savedLabel,
		layout.NewSpacer(),
		deleteBtn,
	)
}

func (h *HistoryView) Container() *fyne.Container {
	return h.container
}
