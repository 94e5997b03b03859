package platform

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"zaplib.dev/core/zap"
)

// SignalPump runs a fixed number of worker goroutines that each own one
// slice of the application's background signal sources (a file watcher, a
// network poller, a timer set by EventLoopDriver.StartTimer) and feed
// zap.SignalEvent/zap.TimerEvent notifications onto the driver's Queue,
// mirroring the original's platform.start_timer/stop_timer vectors drained
// by the single-threaded xlib event loop — here the fan-in itself runs
// concurrently instead of being polled once per frame.
type SignalPump struct {
	group *errgroup.Group
	ctx   context.Context
	stop  context.CancelFunc
}

// NewSignalPump creates an idle pump; call Start to launch workers against
// a Queue.
func NewSignalPump() *SignalPump {
	ctx, stop := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	return &SignalPump{group: g, ctx: gctx, stop: stop}
}

// Start launches workers against q. Each worker's error (if any) cancels
// the pump's context, stopping every other worker.
func (p *SignalPump) Start(q *Queue, workers ...func(ctx context.Context, q *Queue) error) {
	for _, w := range workers {
		w := w
		p.group.Go(func() error { return w(p.ctx, q) })
	}
}

// Stop cancels every worker and waits for them to return.
func (p *SignalPump) Stop() error {
	p.stop()
	return p.group.Wait()
}

// TimerWorker returns a SignalPump worker that posts a zap.TimerEvent onto
// q every interval, stopping when ctx is cancelled or (if !repeats) after
// the first tick — the concurrent equivalent of the original's
// platform.start_timer/stop_timer vectors.
func TimerWorker(id uint64, interval time.Duration, repeats bool) func(ctx context.Context, q *Queue) error {
	return func(ctx context.Context, q *Queue) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				q.Send(zap.TimerEvent{Timer: id})
				if !repeats {
					return nil
				}
			}
		}
	}
}
