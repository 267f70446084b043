// Package dashboard implements the desktop timer window.
package dashboard

import (
	"fmt"
	"image/color"

	"studyhub/internal/core/model"
	"studyhub/internal/core/scheduler"
	"studyhub/internal/i18n"
	"studyhub/internal/ui/display"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var (
	focusColor  = color.NRGBA{R: 237, G: 135, B: 150, A: 255}
	breakColor  = color.NRGBA{R: 166, G: 218, B: 149, A: 255}
	timerColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	pausedColor = color.NRGBA{R: 245, G: 169, B: 127, A: 255}
	background  = color.NRGBA{R: 36, G: 39, B: 58, A: 255}
)

// Window manages the timer UI.
type Window struct {
	window     fyne.Window
	actions    display.Actions
	snapshot   scheduler.Snapshot
	stageLabel *canvas.Text
	timerLabel *canvas.Text
	progress   *widget.ProgressBar
	counter    *widget.Label
	start      *widget.Button
	pause      *widget.Button
	reset      *widget.Button
	skip       *widget.Button
}

// New creates the timer window. Buttons forward to actions.
func New(app fyne.App, actions display.Actions) *Window {
	window := app.NewWindow("StudyHub")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	stageLabel := canvas.NewText(display.StageLabel(model.StageFocus), focusColor)
	stageLabel.Alignment = fyne.TextAlignCenter
	stageLabel.TextStyle = fyne.TextStyle{Bold: true}
	stageLabel.TextSize = 20

	timerLabel := canvas.NewText("--:--", timerColor)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 56

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	dashboard := &Window{
		window:     window,
		actions:    actions,
		stageLabel: stageLabel,
		timerLabel: timerLabel,
		progress:   progress,
		counter:    widget.NewLabel(""),
	}
	dashboard.counter.Alignment = fyne.TextAlignCenter

	dashboard.start = widget.NewButton(i18n.T("Start"), func() {
		display.Activate(dashboard.actions, dashboard.snapshot)
	})
	dashboard.start.Importance = widget.HighImportance
	dashboard.pause = widget.NewButton(i18n.T("Pause"), actions.Pause)
	dashboard.reset = widget.NewButton(i18n.T("Reset"), actions.Reset)
	dashboard.skip = widget.NewButton(i18n.T("Skip"), actions.Skip)

	buttons := container.NewHBox(layout.NewSpacer(), dashboard.start, dashboard.pause, dashboard.reset, dashboard.skip, layout.NewSpacer())
	content := container.NewVBox(
		stageLabel,
		timerLabel,
		progress,
		dashboard.counter,
		buttons,
	)
	root := container.NewStack(canvas.NewRectangle(background), container.NewPadded(content))

	window.SetContent(root)
	window.SetCloseIntercept(window.Hide)
	window.Resize(fyne.NewSize(360, 260))

	dashboard.Update(scheduler.Snapshot{Stage: model.StageFocus}, model.DefaultStageConfig())
	return dashboard
}

// Show displays the window.
func (dashboard *Window) Show() {
	dashboard.window.Show()
	dashboard.window.RequestFocus()
}

// Update renders snapshot. Must run on the fyne goroutine.
func (dashboard *Window) Update(snapshot scheduler.Snapshot, stages model.StageConfig) {
	dashboard.snapshot = snapshot
	paused := !snapshot.Running && snapshot.Remaining > 0

	dashboard.stageLabel.Text = display.StageLabel(snapshot.Stage)
	dashboard.stageLabel.Color = stageColor(snapshot.Stage)
	dashboard.stageLabel.Refresh()

	dashboard.timerLabel.Text = display.Clock(display.Shown(snapshot, stages))
	if paused {
		dashboard.timerLabel.Color = pausedColor
	} else {
		dashboard.timerLabel.Color = timerColor
	}
	dashboard.timerLabel.Refresh()

	dashboard.progress.SetValue(snapshot.Progress())
	dashboard.counter.SetText(fmt.Sprintf("%s: %d", i18n.T("Completed focus sessions"), snapshot.CompletedFocusCount))

	controls := display.ControlsFor(snapshot)
	dashboard.start.SetText(controls.StartLabel())
	setEnabled(dashboard.start, controls.Start)
	setEnabled(dashboard.pause, controls.Pause)
	setEnabled(dashboard.reset, controls.Reset)
	setEnabled(dashboard.skip, controls.Skip)
}

func stageColor(stage model.StageKind) color.Color {
	if stage == model.StageFocus {
		return focusColor
	}
	return breakColor
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
