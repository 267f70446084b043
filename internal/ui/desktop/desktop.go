// Package desktop runs the tray-based desktop front end.
package desktop

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studyhub/internal/alert"
	"studyhub/internal/app"
	"studyhub/internal/core/model"
	"studyhub/internal/core/scheduler"
	"studyhub/internal/ui/animation"
	"studyhub/internal/ui/dashboard"
	"studyhub/internal/ui/display"
	"studyhub/internal/ui/preferences"
	"studyhub/internal/ui/tray"
	"studyhub/resources"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

// AppID is the fyne application identifier.
const AppID = "com.studyhub.app"

// ErrTrayUnsupported is returned when the driver has no system tray.
var ErrTrayUnsupported = errors.New("system tray unsupported on this platform")

// Run shows the timer window and tray until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, session *app.Session, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	fyneApp := fyneapp.NewWithID(AppID)
	fyneApp.SetIcon(resources.MustLogo(resources.IconFocus))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return ErrTrayUnsupported
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := session.Scheduler
	timerWindow := dashboard.New(fyneApp, sched)
	prefsWindow := preferences.New(fyneApp, session.Settings.Get(), session.UpdateSettings)

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnShowTimer:   timerWindow.Show,
		OnPreferences: prefsWindow.Show,
		OnStart:       func() { display.Activate(sched, sched.Snapshot()) },
		OnPause:       sched.Pause,
		OnReset:       sched.Reset,
		OnSkip:        sched.Skip,
		OnQuit:        fyneApp.Quit,
	})

	icons := newTrayIcons(desktopApp)
	pulseConfig := animation.DefaultConfig()
	pulse := animation.New(pulseConfig, func(resource fyne.Resource) {
		fyne.Do(func() { icons.force(resource) })
	})

	render := func() {
		snapshot := sched.Snapshot()
		stages := session.Settings.StageConfig()
		fyne.Do(func() {
			timerWindow.Update(snapshot, stages)
			trayManager.Update(snapshot, display.Shown(snapshot, stages))
			icons.set(iconFor(snapshot))
		})
	}

	events := sched.Subscribe(32)
	go func() {
		for range events {
			render()
		}
	}()

	notify := alert.SinkFunc(func(a alert.Alert) {
		fyne.Do(func() {
			icons.hold(pulseConfig.PulseDuration)
			fyneApp.SendNotification(fyne.NewNotification(a.Title(), a.Body()))
		})
		pulse.Pulse(ctx, animation.PulseSpec{
			Frames: []fyne.Resource{iconFor(scheduler.Snapshot{Stage: a.Next, Running: true}), resources.MustLogo(resources.IconPaused)},
			Rest:   iconFor(sched.Snapshot()),
		})
	})

	runDone := make(chan error, 1)
	go func() {
		runDone <- session.Run(ctx, notify)
	}()
	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	render()
	timerWindow.Show()
	fyneApp.Run()

	cancel()
	pulse.Stop()
	err := <-runDone
	logger.Info("desktop closed")
	return err
}

func iconFor(snapshot scheduler.Snapshot) fyne.Resource {
	switch {
	case !snapshot.Running && snapshot.Remaining > 0:
		return resources.MustLogo(resources.IconPaused)
	case snapshot.Stage == model.StageFocus:
		return resources.MustLogo(resources.IconFocus)
	default:
		return resources.MustLogo(resources.IconBreak)
	}
}

// trayIcons avoids resetting an unchanged tray icon on every tick and lets a
// pulse own the icon while it runs. Only used on the fyne goroutine.
type trayIcons struct {
	app       desktop.App
	current   fyne.Resource
	heldUntil time.Time
}

func newTrayIcons(app desktop.App) *trayIcons {
	return &trayIcons{app: app}
}

func (icons *trayIcons) hold(duration time.Duration) {
	icons.heldUntil = time.Now().Add(duration)
}

func (icons *trayIcons) set(resource fyne.Resource) {
	if time.Now().Before(icons.heldUntil) {
		return
	}
	icons.force(resource)
}

func (icons *trayIcons) force(resource fyne.Resource) {
	if icons.current == resource {
		return
	}
	icons.current = resource
	icons.app.SetSystemTrayIcon(resource)
}
