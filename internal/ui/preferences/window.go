// Package preferences implements the desktop settings window.
package preferences

import (
	"studyhub/internal/config"
	"studyhub/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings config.Settings
	onSave   func(config.Settings) error

	focus      *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	cycles     *widget.Entry
	idleAfter  *widget.Entry
	sound      *widget.Check
	idle       *widget.Check
	backend    *widget.Select
	status     *widget.Label
	saveButton *widget.Button
}

// New creates a preferences window. onSave persists and applies the settings;
// an error keeps the window open with the message shown.
func New(app fyne.App, settings config.Settings, onSave func(config.Settings) error) *Window {
	window := app.NewWindow("StudyHub " + i18n.T("Settings"))

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		focus:      widget.NewEntry(),
		shortBreak: widget.NewEntry(),
		longBreak:  widget.NewEntry(),
		cycles:     widget.NewEntry(),
		idleAfter:  widget.NewEntry(),
		sound:      widget.NewCheck("Play a chime when a stage ends", nil),
		idle:       widget.NewCheck("Pause focus when I am away", nil),
		backend:    widget.NewSelect([]string{config.BackendYAML, config.BackendSQLite, config.BackendBadger}, nil),
		status:     widget.NewLabel(""),
	}
	prefs.status.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		widget.NewLabelWithStyle("Pomodoro", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel(i18n.T("Focus")), prefs.focus, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel(i18n.T("Break")), prefs.shortBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel(i18n.T("Long Break")), prefs.longBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break after"), prefs.cycles, widget.NewLabel("focus sessions")),
		prefs.sound,
		prefs.idle,
		container.NewHBox(widget.NewLabel("Away after"), prefs.idleAfter, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Progress storage (next launch)"), prefs.backend),
		prefs.status,
	)

	prefs.saveButton = widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(prefs.saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.SetCloseIntercept(window.Hide)
	window.Resize(fyne.NewSize(420, 420))

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings config.Settings) {
	prefs.settings = settings
	values := ValuesFrom(settings)
	prefs.focus.SetText(values.FocusMinutes)
	prefs.shortBreak.SetText(values.ShortBreakMinutes)
	prefs.longBreak.SetText(values.LongBreakMinutes)
	prefs.cycles.SetText(values.Cycles)
	prefs.idleAfter.SetText(values.IdleMinutes)
	prefs.sound.SetChecked(values.SoundEnabled)
	prefs.idle.SetChecked(values.IdleEnabled)
	prefs.backend.SetSelected(values.StateBackend)
	prefs.status.SetText("")
}

func (prefs *Window) values() FormValues {
	return FormValues{
		FocusMinutes:      prefs.focus.Text,
		ShortBreakMinutes: prefs.shortBreak.Text,
		LongBreakMinutes:  prefs.longBreak.Text,
		Cycles:            prefs.cycles.Text,
		IdleMinutes:       prefs.idleAfter.Text,
		SoundEnabled:      prefs.sound.Checked,
		IdleEnabled:       prefs.idle.Checked,
		StateBackend:      prefs.backend.Selected,
	}
}

func (prefs *Window) handleSave() {
	settings, err := prefs.values().Apply(prefs.settings)
	if err == nil && prefs.onSave != nil {
		err = prefs.onSave(settings)
	}
	if err != nil {
		prefs.status.SetText(err.Error())
		return
	}

	prefs.settings = settings
	prefs.status.SetText("")
	prefs.window.Hide()
}
