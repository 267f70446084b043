package tui

import (
	"errors"
	"testing"
	"time"

	"studyhub/internal/alert"
	"studyhub/internal/core/model"
	"studyhub/internal/core/scheduler"
	"studyhub/internal/i18n"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	snapshot scheduler.Snapshot
	calls    []string
}

func (c *fakeController) Start()                       { c.calls = append(c.calls, "start") }
func (c *fakeController) Pause()                       { c.calls = append(c.calls, "pause") }
func (c *fakeController) Resume()                      { c.calls = append(c.calls, "resume") }
func (c *fakeController) Reset()                       { c.calls = append(c.calls, "reset") }
func (c *fakeController) Skip()                        { c.calls = append(c.calls, "skip") }
func (c *fakeController) Snapshot() scheduler.Snapshot { return c.snapshot }

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func newTestModel(controller *fakeController) (Model, chan scheduler.Event) {
	i18n.SetLang("en")
	events := make(chan scheduler.Event, 4)
	m := New(controller, events, model.DefaultStageConfig)
	m.now = func() time.Time { return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC) }
	return m, events
}

func TestModel_IdleViewShowsFullStage(t *testing.T) {
	controller := &fakeController{snapshot: scheduler.Snapshot{Stage: model.StageFocus, CompletedFocusCount: 2}}
	m, _ := newTestModel(controller)

	view := m.View()
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "Focus")
	assert.Contains(t, view, "Completed focus sessions: 2")
}

func TestModel_KeysFollowControls(t *testing.T) {
	controller := &fakeController{snapshot: scheduler.Snapshot{Stage: model.StageFocus}}
	m, _ := newTestModel(controller)

	m, _ = update(t, m, key('p'))
	m, _ = update(t, m, key('r'))
	m, _ = update(t, m, key('s'))
	m, _ = update(t, m, key('n'))
	assert.Equal(t, []string{"start", "skip"}, controller.calls, "pause and reset are disabled while idle")

	controller.calls = nil
	controller.snapshot = scheduler.Snapshot{Stage: model.StageFocus, Running: true, Remaining: time.Minute, StageDuration: 25 * time.Minute}
	m, _ = update(t, m, eventMsg{Type: scheduler.EventTickUpdate})

	m, _ = update(t, m, key('s'))
	m, _ = update(t, m, key('n'))
	m, _ = update(t, m, key('p'))
	m, _ = update(t, m, key('r'))
	assert.Equal(t, []string{"pause", "reset"}, controller.calls, "start and skip are disabled while running")
	assert.Contains(t, m.View(), "01:00")
}

func TestModel_StartResumesPausedStage(t *testing.T) {
	controller := &fakeController{snapshot: scheduler.Snapshot{Stage: model.StageShortBreak, Remaining: 90 * time.Second, StageDuration: 5 * time.Minute}}
	m, _ := newTestModel(controller)

	view := m.View()
	assert.Contains(t, view, "01:30")
	assert.Contains(t, view, "Paused")
	assert.Contains(t, view, "Resume")

	update(t, m, key('s'))
	assert.Equal(t, []string{"resume"}, controller.calls)
}

func TestModel_EventRefreshesSnapshotAndWaitsAgain(t *testing.T) {
	controller := &fakeController{snapshot: scheduler.Snapshot{Stage: model.StageFocus}}
	m, events := newTestModel(controller)

	controller.snapshot = scheduler.Snapshot{Stage: model.StageLongBreak, CompletedFocusCount: 4}
	m, cmd := update(t, m, eventMsg{Type: scheduler.EventStageChanged})
	assert.Equal(t, model.StageLongBreak, m.snapshot.Stage)
	require.NotNil(t, cmd)

	events <- scheduler.Event{Type: scheduler.EventStageStarted}
	assert.Equal(t, eventMsg{Type: scheduler.EventStageStarted}, cmd())

	close(events)
	assert.Equal(t, eventsClosedMsg{}, cmd())
}

func TestModel_QuitWhenEventsClose(t *testing.T) {
	m, _ := newTestModel(&fakeController{})
	_, cmd := update(t, m, eventsClosedMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = update(t, m, key('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_ToastsAppearAndExpire(t *testing.T) {
	m, _ := newTestModel(&fakeController{snapshot: scheduler.Snapshot{Stage: model.StageShortBreak}})

	m, _ = update(t, m, AlertMsg(alert.Alert{Finished: model.StageFocus, Next: model.StageShortBreak}))
	m, _ = update(t, m, ErrorMsg{Err: errors.New("disk full")})
	view := m.View()
	assert.Contains(t, view, "Focus finished")
	assert.Contains(t, view, "disk full")

	m, cmd := update(t, m, toastTickMsg(m.now().Add(toastLifetime)))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.toasts)
	assert.NotContains(t, m.View(), "Focus finished")
}
