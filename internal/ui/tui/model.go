// Package tui is the terminal front end of the pomodoro timer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"studyhub/internal/alert"
	"studyhub/internal/core/model"
	"studyhub/internal/core/scheduler"
	"studyhub/internal/i18n"
	"studyhub/internal/ui/display"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Controller is the scheduler surface the terminal drives.
type Controller interface {
	display.Actions
	Snapshot() scheduler.Snapshot
}

// AlertMsg delivers a completion alert to the program.
type AlertMsg alert.Alert

// ErrorMsg shows an error toast.
type ErrorMsg struct{ Err error }

type eventMsg scheduler.Event

type eventsClosedMsg struct{}

type toastTickMsg time.Time

// Model is the bubbletea model of the timer screen.
type Model struct {
	controller Controller
	events     <-chan scheduler.Event
	stages     func() model.StageConfig

	snapshot scheduler.Snapshot
	bar      progress.Model
	styles   Styles
	toasts   []Toast
	width    int
	now      func() time.Time
}

// New creates the timer screen. events should be a scheduler subscription;
// stages supplies the configured durations shown while a stage is idle.
func New(controller Controller, events <-chan scheduler.Event, stages func() model.StageConfig) Model {
	return Model{
		controller: controller,
		events:     events,
		stages:     stages,
		snapshot:   controller.Snapshot(),
		bar:        progress.New(progress.WithGradient(string(red), string(mauve)), progress.WithWidth(40)),
		styles:     NewStyles(),
		now:        time.Now,
	}
}

// Init starts listening for scheduler events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tickToasts())
}

func waitForEvent(events <-chan scheduler.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

func tickToasts() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		barWidth := msg.Width - 10
		if barWidth > 40 {
			barWidth = 40
		}
		if barWidth < 10 {
			barWidth = 10
		}
		m.bar.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case eventMsg:
		m.snapshot = m.controller.Snapshot()
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit

	case AlertMsg:
		a := alert.Alert(msg)
		m.toasts = append(m.toasts, Toast{
			Level:   ToastInfo,
			Message: a.Title() + ". " + a.Body(),
			Expires: m.now().Add(toastLifetime),
		})
		return m, nil

	case ErrorMsg:
		m.toasts = append(m.toasts, Toast{
			Level:   ToastError,
			Message: msg.Err.Error(),
			Expires: m.now().Add(toastLifetime),
		})
		return m, nil

	case toastTickMsg:
		m.toasts = expireToasts(m.toasts, time.Time(msg))
		return m, tickToasts()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	controls := display.ControlsFor(m.snapshot)

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "s", " ":
		display.Activate(m.controller, m.snapshot)
	case "p":
		if controls.Pause {
			m.controller.Pause()
		}
	case "r":
		if controls.Reset {
			m.controller.Reset()
		}
	case "n":
		if controls.Skip {
			m.controller.Skip()
		}
	}
	return m, nil
}

// View renders the timer screen.
func (m Model) View() string {
	snapshot := m.snapshot
	stages := model.DefaultStageConfig()
	if m.stages != nil {
		stages = m.stages()
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Title.Render("StudyHub")+"  ",
		m.styles.Stage(snapshot.Stage == model.StageFocus).Render(display.StageLabel(snapshot.Stage)),
	)

	clock := m.styles.Clock.Render(display.Clock(display.Shown(snapshot, stages)))
	if !snapshot.Running && snapshot.Remaining > 0 {
		clock = lipgloss.JoinHorizontal(lipgloss.Center, clock, "  ", m.styles.Paused.Render(i18n.T("Paused")))
	}

	counter := m.styles.Counter.Render(fmt.Sprintf("%s: %d", i18n.T("Completed focus sessions"), snapshot.CompletedFocusCount))

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		clock,
		m.bar.ViewAs(snapshot.Progress()),
		"",
		counter,
		"",
		m.help(display.ControlsFor(snapshot)),
	)

	view := m.styles.Frame.Render(body)
	if toasts := renderToasts(m.styles, m.toasts, m.width); toasts != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, toasts)
	}
	return view + "\n"
}

func (m Model) help(controls display.Controls) string {
	type binding struct {
		key     string
		label   string
		enabled bool
	}
	bindings := []binding{
		{"s", controls.StartLabel(), controls.Start},
		{"p", i18n.T("Pause"), controls.Pause},
		{"r", i18n.T("Reset"), controls.Reset},
		{"n", i18n.T("Skip"), controls.Skip},
		{"q", i18n.T("Quit"), true},
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if b.enabled {
			parts = append(parts, m.styles.Key.Render(b.key)+" "+m.styles.Hint.Render(b.label))
		} else {
			parts = append(parts, m.styles.KeyOff.Render(b.key+" "+b.label))
		}
	}
	return strings.Join(parts, "  ")
}
