// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"sync"
	"time"
)

// queue is the unbounded FIFO feeding the loop. The platform and
// every Proxy push into the same queue, so the loop sees events
// in arrival order. Sends never block.
type queue struct {
	mu     sync.Mutex
	events []interface{}
	closed bool
	// wake is notified when events is non-empty.
	wake chan struct{}
}

func newQueue() *queue {
	return &queue{wake: make(chan struct{}, 1)}
}

func (q *queue) push(e interface{}) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrLoopTerminated
	}
	q.events = append(q.events, e)
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
	return nil
}

// take removes and returns every queued event.
func (q *queue) take() []interface{} {
	q.mu.Lock()
	defer q.mu.Unlock()
	evs := q.events
	q.events = nil
	return evs
}

// close makes later pushes fail and wakes a waiting loop.
func (q *queue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *queue) terminated() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// wait blocks as directed by flow and returns the events that
// woke the loop. A timeout returns no events. Wait fails with
// ErrLoopTerminated once the queue is closed, or with the error
// of ctx.
func (q *queue) wait(ctx context.Context, flow ControlFlow, now time.Time) ([]interface{}, error) {
	var timeout <-chan time.Time
	for {
		if q.terminated() {
			return nil, ErrLoopTerminated
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if evs := q.take(); len(evs) > 0 || flow.Kind == FlowPoll {
			return evs, nil
		}
		if flow.Kind == FlowWaitUntil && timeout == nil {
			d := flow.Deadline.Sub(now)
			if d <= 0 {
				return nil, nil
			}
			t := time.NewTimer(d)
			defer t.Stop()
			timeout = t.C
		}
		select {
		case <-q.wake:
		case <-timeout:
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
