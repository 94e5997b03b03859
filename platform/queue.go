// Package platform defines the collaborator interfaces a concrete OS/GPU
// backend implements (EventLoopDriver, GPUBackend) and owns the one
// platform-abstract piece of the runtime: the driver loop that pumps a
// backend's event batches into a zap.Context and decides, between batches,
// whether a Draw/Paint pass is due.
package platform

import (
	"sync"

	"zaplib.dev/core/zap"
)

// Queue is an infinitely buffered double-ended queue of zap.Events, fed by
// a platform backend's native event source (possibly from more than one
// goroutine — a window-system callback, a timer goroutine, a websocket
// reader) and drained by the driver loop on the main thread.
//
// Front holds events that jump the line (SendFirst), Back holds events in
// arrival order; NextEvent prefers Front. The zero value is ready to use.
type Queue struct {
	back  []zap.Event
	front []zap.Event

	mu   sync.Mutex
	cond sync.Cond
}

func (q *Queue) lockAndInit() {
	q.mu.Lock()
	if q.cond.L == nil {
		q.cond.L = &q.mu
	}
}

// NextEvent blocks until an event is available, then returns it.
func (q *Queue) NextEvent() zap.Event {
	q.lockAndInit()
	defer q.mu.Unlock()

	for {
		if n := len(q.front); n > 0 {
			e := q.front[n-1]
			q.front = q.front[:n-1]
			return e
		}
		if n := len(q.back); n > 0 {
			e := q.back[0]
			q.back = q.back[1:]
			return e
		}
		q.cond.Wait()
	}
}

// PollEvent returns the next event without blocking, or ok=false if the
// queue is currently empty.
func (q *Queue) PollEvent() (ev zap.Event, ok bool) {
	q.lockAndInit()
	defer q.mu.Unlock()

	if n := len(q.front); n > 0 {
		e := q.front[n-1]
		q.front = q.front[:n-1]
		return e, true
	}
	if n := len(q.back); n > 0 {
		e := q.back[0]
		q.back = q.back[1:]
		return e, true
	}
	return nil, false
}

// DrainAvailable pops every event currently queued (without blocking) in
// arrival order, the shape the driver loop wants for one Dispatch batch.
func (q *Queue) DrainAvailable() []zap.Event {
	q.lockAndInit()
	defer q.mu.Unlock()

	batch := make([]zap.Event, 0, len(q.front)+len(q.back))
	for i := len(q.front) - 1; i >= 0; i-- {
		batch = append(batch, q.front[i])
	}
	batch = append(batch, q.back...)
	q.front = q.front[:0]
	q.back = q.back[:0]
	return batch
}

// Send enqueues ev in arrival order. Safe to call from any goroutine —
// this is the seam EventLoopDriver.PumpOnce, TimerWorker and
// WebSocketTransport.ReadPump use to feed the main driver loop.
func (q *Queue) Send(ev zap.Event) {
	q.lockAndInit()
	defer q.mu.Unlock()
	q.back = append(q.back, ev)
	q.cond.Signal()
}

// SendFirst enqueues ev ahead of every pending Back event.
func (q *Queue) SendFirst(ev zap.Event) {
	q.lockAndInit()
	defer q.mu.Unlock()
	q.front = append(q.front, ev)
	q.cond.Signal()
}
