// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/slog"

	"github.com/winloop/winloop/anim"
	"github.com/winloop/winloop/app/clipboard"
	"github.com/winloop/winloop/io/system"
)

// ErrLoopRunning is returned by Run when the loop of the Context
// is already running.
var ErrLoopRunning = errors.New("app: event loop already running")

// ControlFlow tells the loop what to do after an iteration.
type ControlFlow struct {
	Kind FlowKind
	// Deadline is the wake up time for FlowWaitUntil.
	Deadline time.Time
}

type FlowKind uint8

const (
	// FlowWait sleeps until the next event.
	FlowWait FlowKind = iota
	// FlowPoll starts the next iteration immediately.
	FlowPoll
	// FlowWaitUntil sleeps until the next event or the deadline.
	FlowWaitUntil
	// FlowExit stops the loop. It is final for the loop instance.
	FlowExit
)

// Context owns the state shared by every run of the event loop:
// the window registry, the custom event channel and the animation
// clock. A Context may be run again after Run returns.
type Context struct {
	registry  *Registry
	channel   Channel
	queue     *queue
	clock     *anim.Driver
	clipboard clipboard.Clipboard
	log       *slog.Logger
	tracer    trace.Tracer
	trans     translator
	now       func() time.Time
	running   atomic.Bool

	// Per iteration state.
	flow    ControlFlow
	redraws pendingSet
	syncs   pendingSet
	// native holds the windows drawn by RedrawRequested.
	native  pendingSet
}

// NewContext creates a Context configured by opts.
func NewContext(opts ...Option) *Context {
	c := new(Context)
	c.queue = newQueue()
	c.registry = newRegistry()
	c.configure(opts)
	c.clock = anim.NewDriver(c.now())
	return c
}

// Registry returns the window registry. It must only be used on
// the loop goroutine, or while the loop is not running.
func (c *Context) Registry() *Registry {
	return c.registry
}

// Register adds a window to the loop.
func (c *Context) Register(id system.WindowID, w Window) {
	c.registry.Register(id, w)
}

// Unregister removes a window from the loop.
func (c *Context) Unregister(id system.WindowID) {
	c.registry.Unregister(id)
}

// Proxy returns a handle for sending custom events from any
// goroutine.
func (c *Context) Proxy() *Proxy {
	return &Proxy{ch: &c.channel}
}

// Clock returns the animation clock shared by the loop and its
// windows.
func (c *Context) Clock() *anim.Driver {
	return c.clock
}

// Clipboard returns the clipboard. It is never nil.
func (c *Context) Clipboard() clipboard.Clipboard {
	return c.clipboard
}

// Post delivers a platform event to the loop. It is safe to call
// from any goroutine, and events posted before Run are kept for it.
func (c *Context) Post(e system.Event) error {
	return c.queue.push(e)
}

// Close terminates the Context. A running loop exits after its
// current iteration, and later sends fail with ErrLoopTerminated.
func (c *Context) Close() {
	c.queue.close()
	c.channel.terminate(c.queue)
}

// Run runs the event loop on the calling goroutine until an Exit
// event, Close or the cancellation of ctx. The barriers of the final
// iteration run before Run returns. Run returns ctx.Err() if ctx was
// cancelled.
func (c *Context) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer c.running.Store(false)
	if c.queue.terminated() {
		return ErrLoopTerminated
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	c.channel.bind(c.queue)
	defer c.channel.unbind()
	c.log.Debug("event loop started")
	defer c.log.Debug("event loop stopped")

	// Start with an iteration to pick up queued work.
	flow := ControlFlow{Kind: FlowPoll}
	for {
		evs, err := c.queue.wait(ctx, flow, c.now())
		if err != nil {
			// Drain what is left and stop.
			evs = append(evs, c.queue.take()...)
			c.iterate(ctx, evs)
			c.log.Debug("event loop interrupted", "err", err)
			if errors.Is(err, ErrLoopTerminated) {
				return nil
			}
			return err
		}
		flow = c.iterate(ctx, evs)
		if flow.Kind == FlowExit {
			return nil
		}
	}
}

// iterate runs one loop iteration over evs and returns the
// resulting control flow.
func (c *Context) iterate(ctx context.Context, evs []interface{}) ControlFlow {
	_, span := c.tracer.Start(ctx, "winloop.iteration")
	defer span.End()

	now := c.now()
	c.flow = ControlFlow{Kind: FlowWait}
	c.clock.Tick(now)
	c.collectRedraws()

	for _, e := range evs {
		c.dispatch(e)
	}

	for _, id := range c.syncs.drain() {
		if w, ok := c.registry.Lookup(id); ok {
			w.Runtime().UpdateWindowProperties()
		}
	}

	animating := false
	c.registry.All(func(_ system.WindowID, w Window) bool {
		animating = w.Runtime().HasActiveAnimations()
		return !animating
	})
	if animating {
		c.setFlow(ControlFlow{Kind: FlowPoll})
	}
	// Pick up requests made while dispatching.
	c.collectRedraws()
	drawn := 0
	var deferred []system.WindowID
	for _, id := range c.redraws.drain() {
		if c.native.contains(id) {
			// Drawn once already; draw again next iteration.
			deferred = append(deferred, id)
			continue
		}
		if w, ok := c.registry.Lookup(id); ok {
			c.draw(w)
			drawn++
		}
	}
	c.native.drain()
	for _, id := range deferred {
		c.redraws.insert(id)
	}
	if len(deferred) > 0 {
		c.setFlow(ControlFlow{Kind: FlowPoll})
	}

	if c.flow.Kind == FlowWait {
		if d, ok := c.clock.NextUpdate(now); ok {
			c.flow = ControlFlow{Kind: FlowWaitUntil, Deadline: now.Add(d)}
		}
	}
	span.SetAttributes(
		attribute.Int("winloop.events", len(evs)),
		attribute.Int("winloop.redraws", drawn),
		attribute.String("winloop.flow", c.flow.Kind.String()),
	)
	return c.flow
}

// collectRedraws moves the redraw requests of every live window
// to the pending set.
func (c *Context) collectRedraws() {
	c.registry.All(func(id system.WindowID, w Window) bool {
		if w.TakePendingRedraw() {
			c.redraws.insert(id)
		}
		return true
	})
}

func (c *Context) dispatch(e interface{}) {
	switch e := e.(type) {
	case system.WindowEvent:
		w, ok := c.registry.Lookup(e.ID)
		if !ok {
			c.log.Debug("dropping event for unknown window", "window", e.ID, "event", fmt.Sprintf("%T", e.Event))
			return
		}
		c.trans.process(w, e.Event)
	case system.RedrawRequested:
		c.redraws.remove(e.ID)
		if w, ok := c.registry.Lookup(e.ID); ok {
			c.native.insert(e.ID)
			c.draw(w)
		}
	case UpdateWindowProperties:
		c.syncs.insert(e.ID)
	case WindowHidden:
		if QuitOnLastWindowClosed() && c.registry.Len() == 0 {
			c.log.Debug("last window closed, exiting")
			c.setFlow(ControlFlow{Kind: FlowExit})
		}
	case RunFunc:
		e()
	case Exit:
		c.setFlow(ControlFlow{Kind: FlowExit})
	default:
		panic(fmt.Errorf("app: unknown loop event %T", e))
	}
}

// draw draws w and keeps the loop polling if w asks for another
// frame.
func (c *Context) draw(w Window) {
	if w.Draw() {
		c.setFlow(ControlFlow{Kind: FlowPoll})
	}
}

// setFlow updates the control flow unless the loop is exiting.
func (c *Context) setFlow(f ControlFlow) {
	if c.flow.Kind == FlowExit {
		return
	}
	c.flow = f
}

func (k FlowKind) String() string {
	switch k {
	case FlowWait:
		return "Wait"
	case FlowPoll:
		return "Poll"
	case FlowWaitUntil:
		return "WaitUntil"
	case FlowExit:
		return "Exit"
	default:
		panic("invalid FlowKind")
	}
}
