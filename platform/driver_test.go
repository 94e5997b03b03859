package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"zaplib.dev/core/platform"
	"zaplib.dev/core/zap"
)

// fakeDriver delivers one fixed batch of events per PumpOnce call, then
// reports no more windows once every batch has been delivered.
type fakeDriver struct {
	batches [][]zap.Event
	call    int
}

func (d *fakeDriver) PumpOnce(q *platform.Queue) bool {
	if d.call >= len(d.batches) {
		return false
	}
	for _, ev := range d.batches[d.call] {
		q.Send(ev)
	}
	d.call++
	return true
}

func (d *fakeDriver) CopyTextToClipboard(string)                      {}
func (d *fakeDriver) ShowTextIME(x, y float32)                        {}
func (d *fakeDriver) HideTextIME()                                    {}
func (d *fakeDriver) StartTimer(q *platform.Queue, interval float64, repeats bool) uint64 { return 1 }
func (d *fakeDriver) StopTimer(id uint64)                             {}
func (d *fakeDriver) UpdateMenu(menu platform.Menu)                   {}

func TestRunDeliversEventsInOrderAndStopsWhenDriverIsDone(t *testing.T) {
	cx := zap.NewContext()
	driver := &fakeDriver{batches: [][]zap.Event{
		{zap.TimerEvent{Timer: 1}, zap.TimerEvent{Timer: 2}},
		{zap.TimerEvent{Timer: 3}},
	}}

	var seen []zap.Event
	platform.Run(cx, driver, platform.GPUBackend{}, func(ev zap.Event) {
		seen = append(seen, ev)
	})

	assert.Equal(t, []zap.Event{
		zap.TimerEvent{Timer: 1},
		zap.TimerEvent{Timer: 2},
		zap.TimerEvent{Timer: 3},
	}, seen)
	assert.Equal(t, 2, driver.call)
}

func TestRunPaintsThroughGPUBackendWhenADrawWasRequested(t *testing.T) {
	cx := zap.NewContext()
	driver := &fakeDriver{batches: [][]zap.Event{
		{zap.TimerEvent{Timer: 1}},
	}}

	var beganCanvas, sawPaint, endedTarget bool
	gpu := platform.GPUBackend{
		BeginMainCanvas: func(clearColor [4]float32, clearDepth float32) error {
			beganCanvas = true
			return nil
		},
		EndRenderTarget: func() error {
			endedTarget = true
			return nil
		},
	}

	platform.Run(cx, driver, gpu, func(ev zap.Event) {
		if _, ok := ev.(zap.TimerEvent); ok {
			cx.RequestDraw()
		}
		if se, ok := ev.(zap.SystemEvent); ok && se.Kind == zap.SystemPaint {
			sawPaint = true
		}
	})

	assert.True(t, beganCanvas)
	assert.True(t, sawPaint)
	assert.True(t, endedTarget)
}

func TestRunSkipsPaintWhenNoDrawWasRequested(t *testing.T) {
	cx := zap.NewContext()
	driver := &fakeDriver{batches: [][]zap.Event{
		{zap.TimerEvent{Timer: 1}},
	}}

	var beganCanvas bool
	gpu := platform.GPUBackend{
		BeginMainCanvas: func(clearColor [4]float32, clearDepth float32) error {
			beganCanvas = true
			return nil
		},
	}

	platform.Run(cx, driver, gpu, func(ev zap.Event) {})

	assert.False(t, beganCanvas)
}
