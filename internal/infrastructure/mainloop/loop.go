// Package mainloop provides the single-threaded update loop that all
// layout and tab mutations run on, plus a coalescer for merging bursts of
// same-key tasks.
package mainloop

import (
	"context"
	"sync"

	"github.com/atelier-ide/atelier/internal/application/port"
)

// Loop is a serialized task queue implementing port.Dispatcher. Dispatched
// functions run in submission order on one goroutine; Schedule defers a
// function by one full queue drain so it observes state settled by
// everything dispatched before it.
//
// The queue is unbounded: Dispatch never blocks, so tasks may freely
// dispatch follow-up work regardless of how much is already queued.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	stopped bool

	wake chan struct{}
	done chan struct{}
}

// NewLoop creates a loop. Run must be called for tasks to execute.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Run executes tasks until ctx is cancelled or Stop is called. It is the
// owner goroutine's responsibility to call Run exactly once.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)
	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		stopped := l.stopped
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}

		if stopped {
			// Tasks queued before Stop still run; the final batch may have
			// raced the stop flag.
			l.mu.Lock()
			rest := l.queue
			l.queue = nil
			l.mu.Unlock()
			for _, fn := range rest {
				fn()
			}
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}
	}
}

// Dispatch enqueues fn to run as soon as possible. Silently drops after
// Stop, matching the semantics of posting to a torn-down UI loop.
func (l *Loop) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	l.signal()
}

// Schedule enqueues fn behind a re-dispatch hop, so it runs after every
// task already queued, including those enqueued by tasks ahead of it.
func (l *Loop) Schedule(fn func()) {
	if fn == nil {
		return
	}
	l.Dispatch(func() {
		l.Dispatch(fn)
	})
}

// Stop prevents further dispatches and ends Run once the queue drains.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
	l.signal()
	<-l.done
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

var _ port.Dispatcher = (*Loop)(nil)
