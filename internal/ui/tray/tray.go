// Package tray manages the system tray menu of the desktop front end.
package tray

import (
	"fmt"
	"time"

	"studyhub/internal/core/scheduler"
	"studyhub/internal/i18n"
	"studyhub/internal/ui/display"

	"fyne.io/fyne/v2"
)

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnPreferences func()
	OnStart       func()
	OnPause       func()
	OnReset       func()
	OnSkip        func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        MenuSetter
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	resetItem  *fyne.MenuItem
	skipItem   *fyne.MenuItem
	menu       *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("StudyHub", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem(i18n.T("Start"), invoke(&manager.callbacks.OnStart))
	manager.pauseItem = fyne.NewMenuItem(i18n.T("Pause"), invoke(&manager.callbacks.OnPause))
	manager.resetItem = fyne.NewMenuItem(i18n.T("Reset"), invoke(&manager.callbacks.OnReset))
	manager.skipItem = fyne.NewMenuItem(i18n.T("Skip"), invoke(&manager.callbacks.OnSkip))

	manager.menu = fyne.NewMenu("StudyHub",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		manager.resetItem,
		manager.skipItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(i18n.T("Show timer"), invoke(&manager.callbacks.OnShowTimer)),
		fyne.NewMenuItem(i18n.T("Settings"), invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem(i18n.T("Quit"), invoke(&manager.callbacks.OnQuit)),
	)

	manager.refreshMenu()
	return manager
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}

// Update refreshes the status line and action availability. shown is the
// remaining time displayed for the stage.
func (manager *Manager) Update(snapshot scheduler.Snapshot, shown time.Duration) {
	controls := display.ControlsFor(snapshot)

	status := fmt.Sprintf("%s %s", display.StageLabel(snapshot.Stage), display.Clock(shown))
	if !snapshot.Running && snapshot.Remaining > 0 {
		status = fmt.Sprintf("%s (%s)", status, i18n.T("Paused"))
	}
	manager.statusItem.Label = status

	manager.startItem.Label = controls.StartLabel()
	manager.startItem.Disabled = !controls.Start
	manager.pauseItem.Disabled = !controls.Pause
	manager.resetItem.Disabled = !controls.Reset
	manager.skipItem.Disabled = !controls.Skip

	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}
