// SPDX-License-Identifier: Unlicense OR MIT

/*
Package shiny feeds the events of a golang.org/x/exp/shiny window
into an event loop.

Shiny reports events with the types of golang.org/x/mobile/event.
Pump converts them to the events of package system:

	go func() {
		err := shiny.Pump(ctx, win, id, loop.Post)
		...
	}()
*/
package shiny

import (
	"context"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/winloop/winloop/f32"
	"github.com/winloop/winloop/io/pointer"
	"github.com/winloop/winloop/io/system"
)

// PostFunc delivers an event to the loop, such as
// app.Context.Post.
type PostFunc func(e system.Event) error

type adapter struct {
	id     system.WindowID
	post   PostFunc
	mods   key.Modifiers
	cursor f32.Point
	scale  float32
}

// stopEvent unblocks NextEvent when the pump is cancelled.
type stopEvent struct{}

// Pump reads the events of deque and posts them for window id
// until the window dies, post fails or ctx is done.
func Pump(ctx context.Context, deque screen.EventDeque, id system.WindowID, post PostFunc) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			deque.SendFirst(stopEvent{})
		case <-done:
		}
	}()
	a := &adapter{id: id, post: post, scale: 1}
	for {
		e := deque.NextEvent()
		if _, ok := e.(stopEvent); ok {
			return ctx.Err()
		}
		dead, err := a.event(e)
		if err != nil || dead {
			return err
		}
	}
}

// event converts e and reports whether the window died.
func (a *adapter) event(e interface{}) (bool, error) {
	switch e := e.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			return true, a.send(system.CloseRequested{})
		}
		switch e.Crosses(lifecycle.StageFocused) {
		case lifecycle.CrossOn:
			return false, a.send(system.Focused{Focus: true})
		case lifecycle.CrossOff:
			return false, a.send(system.Focused{Focus: false})
		}
	case size.Event:
		if s := e.PixelsPerPt; s > 0 && s != a.scale {
			a.scale = s
			if err := a.send(system.ScaleFactorChanged{ScaleFactor: s, Size: e.Size()}); err != nil {
				return false, err
			}
		}
		return false, a.send(system.Resized{Size: e.Size()})
	case paint.Event:
		return false, a.post(system.RedrawRequested{ID: a.id})
	case key.Event:
		return false, a.key(e)
	case mouse.Event:
		return false, a.mouse(e)
	case touch.Event:
		t := system.Touch{Position: f32.Pt(e.X, e.Y)}
		switch e.Type {
		case touch.TypeBegin:
			t.Phase = system.TouchStarted
		case touch.TypeMove:
			t.Phase = system.TouchMoved
		case touch.TypeEnd:
			t.Phase = system.TouchEnded
		}
		return false, a.send(t)
	}
	return false, nil
}

func (a *adapter) key(e key.Event) error {
	if err := a.modifiers(e.Modifiers); err != nil {
		return err
	}
	state := system.Pressed
	if e.Direction == key.DirRelease {
		state = system.Released
	}
	if e.Code != key.CodeUnknown {
		if err := a.send(system.KeyboardInput{Code: e.Code, State: state}); err != nil {
			return err
		}
	}
	if state == system.Pressed && e.Rune >= 0 {
		return a.send(system.ReceivedCharacter{Rune: e.Rune})
	}
	return nil
}

func (a *adapter) mouse(e mouse.Event) error {
	if err := a.modifiers(e.Modifiers); err != nil {
		return err
	}
	if pos := f32.Pt(e.X, e.Y); pos != a.cursor {
		a.cursor = pos
		if err := a.send(system.CursorMoved{Position: pos}); err != nil {
			return err
		}
	}
	if e.Button.IsWheel() {
		if e.Direction == mouse.DirRelease {
			return nil
		}
		var d f32.Point
		switch e.Button {
		case mouse.ButtonWheelUp:
			d.Y = 1
		case mouse.ButtonWheelDown:
			d.Y = -1
		case mouse.ButtonWheelLeft:
			d.X = 1
		case mouse.ButtonWheelRight:
			d.X = -1
		}
		return a.send(system.MouseWheel{Delta: d, Unit: system.LineDelta})
	}
	var state system.State
	switch e.Direction {
	case mouse.DirPress:
		state = system.Pressed
	case mouse.DirRelease:
		state = system.Released
	default:
		return nil
	}
	return a.send(system.MouseInput{Button: button(e.Button), State: state})
}

func (a *adapter) modifiers(m key.Modifiers) error {
	if m == a.mods {
		return nil
	}
	a.mods = m
	return a.send(system.ModifiersChanged{Modifiers: m})
}

func (a *adapter) send(e system.Input) error {
	return a.post(system.WindowEvent{ID: a.id, Event: e})
}

func button(b mouse.Button) pointer.Button {
	switch b {
	case mouse.ButtonLeft:
		return pointer.ButtonLeft
	case mouse.ButtonRight:
		return pointer.ButtonRight
	case mouse.ButtonMiddle:
		return pointer.ButtonMiddle
	default:
		return pointer.ButtonNone
	}
}
