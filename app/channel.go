// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"sync"

	"github.com/winloop/winloop/io/system"
)

// ErrLoopTerminated is returned when an event is sent to a loop
// that has shut down.
var ErrLoopTerminated = errors.New("app: event loop terminated")

// CustomEvent is an event injected by the program rather than
// the platform. The set of custom events is closed.
type CustomEvent interface {
	implementsCustomEvent()
}

// UpdateWindowProperties asks the loop to sync the window item
// properties to the platform window. Requests for the same
// window within one iteration are merged.
type UpdateWindowProperties struct {
	ID system.WindowID
}

// RunFunc is called on the loop goroutine. A RunFunc that blocks
// stalls the loop.
type RunFunc func()

// WindowHidden notifies the loop that a window was hidden.
type WindowHidden struct{}

// Exit stops the loop at the end of the current iteration.
type Exit struct{}

// Channel carries custom events to the loop. Before the loop
// runs, events are buffered; once bound to a running loop they
// are forwarded directly. Channel is safe for concurrent use.
type Channel struct {
	mu   sync.Mutex
	live injector
	buf  []CustomEvent
	// done is set when the channel is bound for good.
	done bool
}

// Proxy sends custom events to a loop from any goroutine.
type Proxy struct {
	ch *Channel
}

// injector delivers events to a running loop.
type injector interface {
	push(e interface{}) error
}

// Send delivers e to the loop, or buffers it if the loop is not
// running yet. It fails with ErrLoopTerminated if the loop has
// shut down.
func (c *Channel) Send(e CustomEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live == nil {
		c.buf = append(c.buf, e)
		return nil
	}
	return c.live.push(e)
}

// bind forwards buffered events to inj in order and switches to
// direct delivery. Binding a live channel is a no-op.
func (c *Channel) bind(inj injector) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live != nil {
		return
	}
	for i, e := range c.buf {
		if err := inj.push(e); err != nil {
			// Keep what the loop could not take.
			c.buf = c.buf[i:]
			c.live = inj
			return
		}
	}
	c.buf = nil
	c.live = inj
}

// unbind returns the channel to buffering, unless it is
// terminated.
func (c *Channel) unbind() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.done {
		c.live = nil
	}
}

// terminate binds the channel to inj permanently.
func (c *Channel) terminate(inj injector) {
	c.bind(inj)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.done = true
}

// Send delivers e to the loop.
func (p *Proxy) Send(e CustomEvent) error {
	return p.ch.Send(e)
}

// Run calls f on the loop goroutine.
func (p *Proxy) Run(f func()) error {
	return p.ch.Send(RunFunc(f))
}

// Exit stops the loop.
func (p *Proxy) Exit() error {
	return p.ch.Send(Exit{})
}

// UpdateWindowProperties schedules a property sync for id.
func (p *Proxy) UpdateWindowProperties(id system.WindowID) error {
	return p.ch.Send(UpdateWindowProperties{ID: id})
}

// WindowHidden notifies the loop that a window was hidden.
func (p *Proxy) WindowHidden() error {
	return p.ch.Send(WindowHidden{})
}

func (UpdateWindowProperties) implementsCustomEvent() {}
func (RunFunc) implementsCustomEvent()                {}
func (WindowHidden) implementsCustomEvent()           {}
func (Exit) implementsCustomEvent()                   {}
