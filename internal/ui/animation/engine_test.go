package animation

import (
	"context"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spriteRecorder struct {
	mu     sync.Mutex
	frames []string
}

func (recorder *spriteRecorder) update(resource fyne.Resource) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.frames = append(recorder.frames, resource.Name())
}

func (recorder *spriteRecorder) snapshot() []string {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]string(nil), recorder.frames...)
}

func testSpec() PulseSpec {
	return PulseSpec{
		Frames: []fyne.Resource{
			fyne.NewStaticResource("bright", nil),
			fyne.NewStaticResource("dull", nil),
		},
		Rest: fyne.NewStaticResource("rest", nil),
	}
}

func TestPulseAlternatesThenRests(t *testing.T) {
	recorder := &spriteRecorder{}
	engine := New(Config{FrameDuration: time.Millisecond, PulseDuration: 20 * time.Millisecond}, recorder.update)

	engine.Pulse(context.Background(), testSpec())

	require.Eventually(t, func() bool {
		frames := recorder.snapshot()
		return len(frames) > 2 && frames[len(frames)-1] == "rest"
	}, time.Second, time.Millisecond)

	frames := recorder.snapshot()
	assert.Equal(t, "bright", frames[0])
	assert.Equal(t, "dull", frames[1])
}

func TestStopRestoresRestFrame(t *testing.T) {
	recorder := &spriteRecorder{}
	engine := New(Config{FrameDuration: time.Hour, PulseDuration: time.Hour}, recorder.update)

	engine.Pulse(context.Background(), testSpec())
	engine.Stop()

	assert.Equal(t, []string{"bright", "rest"}, recorder.snapshot())
	engine.Stop()
}

func TestPulseWithoutFramesIsNoop(t *testing.T) {
	recorder := &spriteRecorder{}
	engine := New(Config{}, recorder.update)

	engine.Pulse(context.Background(), PulseSpec{Rest: fyne.NewStaticResource("rest", nil)})
	engine.Stop()
	assert.Empty(t, recorder.snapshot())
}
