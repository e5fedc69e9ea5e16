// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements windows without a display, for
// driving the event loop from tests and tools.
package headless

import (
	"image"

	mkey "golang.org/x/mobile/event/key"

	"github.com/winloop/winloop/anim"
	"github.com/winloop/winloop/app"
	"github.com/winloop/winloop/f32"
	"github.com/winloop/winloop/gesture"
	"github.com/winloop/winloop/io/key"
	"github.com/winloop/winloop/io/pointer"
	"github.com/winloop/winloop/io/system"
	"github.com/winloop/winloop/unit"
)

// Window is a headless window whose content is a Flickable with
// a single child. It implements both app.Window and
// app.RuntimeWindow, and must only be used on the loop
// goroutine once the loop runs.
type Window struct {
	// Flickable is the root item.
	Flickable *gesture.Flickable
	// Child receives the pointer events the Flickable forwards.
	Child Handler
	// Keys records the key events delivered to the window.
	Keys []key.Event
	// Frame is called for every drawn frame.
	Frame func(w *Window)
	// Closable is returned by RequestClose.
	Closable bool
	// Title is the title item property. The platform sees it
	// after the next property sync.
	Title string

	id     system.WindowID
	ctx    *app.Context
	clock  *anim.Driver
	size   image.Point
	scale  float32
	frames int
	redraw bool

	mods     key.Modifiers
	pressed  mkey.Code
	imeFocus bool
	active   bool
	focus    bool
	hidden   bool

	platformTitle string

	// grabbed is set while the Flickable owns the pointer.
	grabbed bool
	// delayed is a press held back from Child.
	delayed *delayedEvent
}

// Handler handles pointer events.
type Handler interface {
	Handle(e pointer.Event) pointer.Result
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(e pointer.Event) pointer.Result

type delayedEvent struct {
	event pointer.Event
	timer *anim.Timer
}

// NewWindow creates a window of the given logical size and
// registers it with ctx under id.
func NewWindow(ctx *app.Context, id system.WindowID, width, height float32) *Window {
	clock := ctx.Clock()
	w := &Window{
		Flickable: gesture.NewFlickable(clock, width, height),
		Closable:  true,
		id:        id,
		ctx:       ctx,
		clock:     clock,
		scale:     1,
		size:      image.Pt(int(width), int(height)),
	}
	ctx.Register(id, w)
	return w
}

func (f HandlerFunc) Handle(e pointer.Event) pointer.Result {
	return f(e)
}

// ID returns the id the window is registered under.
func (w *Window) ID() system.WindowID {
	return w.id
}

// Size returns the window size in physical pixels.
func (w *Window) Size() image.Point {
	return w.size
}

// Frames returns the number of frames drawn.
func (w *Window) Frames() int {
	return w.frames
}

// Hidden reports whether the window was hidden.
func (w *Window) Hidden() bool {
	return w.hidden
}

// Focused reports whether the window has the keyboard focus.
func (w *Window) Focused() bool {
	return w.focus
}

// PlatformTitle returns the title last synced to the platform.
func (w *Window) PlatformTitle() string {
	return w.platformTitle
}

// SetTitle sets the title and schedules a property sync.
func (w *Window) SetTitle(title string) error {
	w.Title = title
	return w.ctx.Proxy().UpdateWindowProperties(w.id)
}

// SetInputMethodFocused sets whether the input method of the
// window has the focus.
func (w *Window) SetInputMethodFocused(focus bool) {
	w.imeFocus = focus
}

// RequestRedraw schedules a frame.
func (w *Window) RequestRedraw() {
	w.redraw = true
}

func (w *Window) TakePendingRedraw() bool {
	r := w.redraw
	w.redraw = false
	return r
}

func (w *Window) Draw() bool {
	w.frames++
	if w.Frame != nil {
		w.Frame(w)
	}
	return w.TakePendingRedraw()
}

func (w *Window) ResizeEvent(size image.Point) {
	w.size = size
	m := unit.Metric{PxPerDp: w.scale}
	w.SetGeometry(float32(m.Dp(float32(size.X))), float32(m.Dp(float32(size.Y))))
	w.RequestRedraw()
}

func (w *Window) Modifiers() key.Modifiers     { return w.mods }
func (w *Window) SetModifiers(m key.Modifiers) { w.mods = m }
func (w *Window) PressedKey() mkey.Code        { return w.pressed }
func (w *Window) SetPressedKey(c mkey.Code)    { w.pressed = c }
func (w *Window) InputMethodFocused() bool     { return w.imeFocus }
func (w *Window) Runtime() app.RuntimeWindow   { return w }

// Hide hides and unregisters the window.
func (w *Window) Hide() {
	if w.hidden {
		return
	}
	w.hidden = true
	w.ctx.Unregister(w.id)
	w.ctx.Proxy().WindowHidden()
}

// Destroyed reports whether the window is hidden. A hidden
// headless window cannot be shown again.
func (w *Window) Destroyed() bool {
	return w.hidden
}

func (w *Window) ProcessKeyInput(e key.Event) {
	w.Keys = append(w.Keys, e)
}

// ProcessMouseInput delivers e to the Flickable and its child,
// as directed by the Flickable filter.
func (w *Window) ProcessMouseInput(e pointer.Event) {
	defer w.RequestRedraw()
	if w.grabbed {
		w.grabbed = w.Flickable.Handle(e) == pointer.GrabMouse
		return
	}
	fr := w.Flickable.Filter(e)
	switch fr.Kind {
	case pointer.ForwardEvent, pointer.ForwardAndIgnore, pointer.ForwardAndInterceptGrab:
		w.forward(e)
	case pointer.Intercept:
		w.cancelDelayed()
		w.grabbed = w.Flickable.Handle(e) == pointer.GrabMouse
	case pointer.DelayForwarding:
		w.cancelDelayed()
		d := &delayedEvent{event: e}
		d.timer = w.clock.AfterFunc(fr.Delay, func() {
			if w.delayed == d {
				w.delayed = nil
				w.deliver(d.event)
				w.RequestRedraw()
			}
		})
		w.delayed = d
	case pointer.InterceptAndDispatch:
		w.deliver(fr.Dispatch)
		w.Flickable.Handle(e)
	}
}

// forward delivers e to the child after any held back press.
func (w *Window) forward(e pointer.Event) {
	if d := w.delayed; d != nil {
		w.delayed = nil
		d.timer.Stop()
		w.deliver(d.event)
	}
	w.deliver(e)
}

func (w *Window) deliver(e pointer.Event) {
	if w.Child != nil {
		w.Child.Handle(e)
	}
}

func (w *Window) cancelDelayed() {
	if d := w.delayed; d != nil {
		w.delayed = nil
		d.timer.Stop()
	}
}

func (w *Window) RequestClose() bool { return w.Closable }
func (w *Window) Active() bool       { return w.active }
func (w *Window) SetActive(a bool)   { w.active = a }
func (w *Window) SetFocus(f bool)    { w.focus = f }
func (w *Window) ScaleFactor() float32 {
	return w.scale
}

func (w *Window) SetScaleFactor(s float32) {
	w.scale = s
	w.RequestRedraw()
}

// SetGeometry resizes the root item.
func (w *Window) SetGeometry(width, height float32) {
	w.Flickable.Width, w.Flickable.Height = width, height
}

// UpdateWindowProperties syncs the item properties to the
// platform.
func (w *Window) UpdateWindowProperties() {
	w.platformTitle = w.Title
}

// HasActiveAnimations reports whether the viewport is moving.
func (w *Window) HasActiveAnimations() bool {
	return w.Flickable.Viewport.X.Animating() || w.Flickable.Viewport.Y.Animating()
}

// Offset returns the content offset in logical pixels.
func (w *Window) Offset() f32.Point {
	return w.Flickable.Offset()
}
