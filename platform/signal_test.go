package platform_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zaplib.dev/core/platform"
	"zaplib.dev/core/zap"
)

func TestTimerWorkerPostsRepeatedlyUntilContextCancelled(t *testing.T) {
	var q platform.Queue
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- platform.TimerWorker(1, 5*time.Millisecond, true)(ctx, &q) }()

	ev1 := q.NextEvent().(zap.TimerEvent)
	ev2 := q.NextEvent().(zap.TimerEvent)
	assert.Equal(t, uint64(1), ev1.Timer)
	assert.Equal(t, uint64(1), ev2.Timer)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("TimerWorker did not stop after context cancellation")
	}
}

func TestTimerWorkerStopsAfterOneTickWhenNotRepeating(t *testing.T) {
	var q platform.Queue
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- platform.TimerWorker(7, time.Millisecond, false)(ctx, &q) }()

	ev := q.NextEvent().(zap.TimerEvent)
	assert.Equal(t, uint64(7), ev.Timer)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("TimerWorker did not stop after its single tick")
	}
}

func TestSignalPumpStartRunsWorkersConcurrentlyAndStopWaitsForThem(t *testing.T) {
	p := platform.NewSignalPump()
	var q platform.Queue

	p.Start(&q,
		platform.TimerWorker(1, time.Millisecond, true),
		platform.TimerWorker(2, time.Millisecond, true),
	)

	seen := map[uint64]bool{}
	for len(seen) < 2 {
		ev := q.NextEvent().(zap.TimerEvent)
		seen[ev.Timer] = true
	}
	assert.True(t, seen[1])
	assert.True(t, seen[2])

	err := p.Stop()
	require.NoError(t, err)
}

func TestSignalPumpStopPropagatesAWorkerError(t *testing.T) {
	p := platform.NewSignalPump()
	var q platform.Queue

	boom := assert.AnError
	p.Start(&q, func(ctx context.Context, q *platform.Queue) error {
		return boom
	})

	err := p.Stop()
	assert.ErrorIs(t, err, boom)
}
