// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements pointer gestures.

Flickable turns drags and wheel events over a scrollable container
into viewport offsets, and continues a fast drag with a decelerating
fling after release.

A Flickable takes part in both passes of pointer delivery: Filter
runs before the container's children see an event and decides
whether to steal it, Handle runs when the event ends up at the
Flickable itself.
*/
package gesture

import (
	"time"

	"github.com/winloop/winloop/anim"
	"github.com/winloop/winloop/f32"
	"github.com/winloop/winloop/io/pointer"
)

const (
	// DistanceThreshold is how far the pointer must travel
	// before a drag is taken away from the children.
	DistanceThreshold float32 = 8
	// DurationThreshold is how long after a press a move may
	// still start a drag.
	DurationThreshold = 500 * time.Millisecond
	// ForwardDelay is how long a press is left to the children
	// before it is replayed to the Flickable.
	ForwardDelay = 100 * time.Millisecond
	// FlingDuration is the length of the fling after release.
	FlingDuration = 250 * time.Millisecond
)

// Flickable is a scrollable container. Viewport holds the
// scrolled content; its offset ranges from the size
// difference of viewport and container up to zero on each axis.
type Flickable struct {
	// Width and Height are the container size.
	Width, Height float32
	Viewport      Viewport
	// Interactive enables dragging. Wheel events are
	// handled regardless.
	Interactive bool

	clock *anim.Driver
	state flickState
}

// Viewport is the scrolled content of a Flickable.
type Viewport struct {
	// X and Y are the content offset.
	X, Y          *anim.Value
	Width, Height float32
}

// FlickState is the gesture state of a Flickable.
type FlickState uint8

const (
	// StateIdle is the default state.
	StateIdle FlickState = iota
	// StatePressed is reported while the primary button is
	// held without a drag.
	StatePressed
	// StateDragging is reported while a drag is captured.
	StateDragging
	// StateFlinging is reported while the fling after a
	// release is running.
	StateFlinging
)

type flickState struct {
	// pressedPos is where the press was made.
	pressedPos f32.Point
	// pressedTime is valid while pressed is set.
	pressedTime        time.Time
	pressed            bool
	pressedViewportPos f32.Point
	// capture is set while the Flickable owns the pointer
	// and events are no longer forwarded to the children.
	capture bool
}

// NewFlickable returns an interactive Flickable of the given
// size whose viewport offsets are animated by clock.
func NewFlickable(clock *anim.Driver, width, height float32) *Flickable {
	return &Flickable{
		Width:       width,
		Height:      height,
		Interactive: true,
		Viewport: Viewport{
			X:      clock.NewValue(0),
			Y:      clock.NewValue(0),
			Width:  width,
			Height: height,
		},
		clock: clock,
	}
}

// Filter is called before the children of f receive e.
func (f *Flickable) Filter(e pointer.Event) pointer.FilterResult {
	if e.HasPosition() && !f.contains(e.Position) {
		return pointer.Forward(pointer.Intercept)
	}
	if !f.Interactive && e.Kind != pointer.Wheel {
		return pointer.Forward(pointer.ForwardAndIgnore)
	}
	s := &f.state
	switch e.Kind {
	case pointer.Press:
		if e.Button != pointer.ButtonLeft {
			return pointer.Forward(pointer.ForwardAndIgnore)
		}
		s.pressedPos = e.Position
		s.pressedTime = f.clock.Now()
		s.pressed = true
		s.pressedViewportPos = f.Offset()
		if s.capture {
			return pointer.Forward(pointer.Intercept)
		}
		return pointer.Delay(ForwardDelay)
	case pointer.Release, pointer.Exit:
		if e.Kind == pointer.Release && e.Button != pointer.ButtonLeft {
			return pointer.Forward(pointer.ForwardAndIgnore)
		}
		wasCapturing := s.capture
		f.released(e)
		if wasCapturing {
			return pointer.Forward(pointer.Intercept)
		}
		return pointer.Forward(pointer.ForwardEvent)
	case pointer.Move:
		switch {
		case s.capture || f.dragStarted(e.Position):
			return pointer.Forward(pointer.Intercept)
		case s.pressed:
			return pointer.Forward(pointer.ForwardAndInterceptGrab)
		default:
			return pointer.Forward(pointer.ForwardEvent)
		}
	case pointer.Wheel:
		return pointer.Dispatch(pointer.Event{Kind: pointer.Move, Position: e.Position})
	}
	return pointer.Forward(pointer.ForwardEvent)
}

// Handle is called when e is delivered to f itself.
func (f *Flickable) Handle(e pointer.Event) pointer.Result {
	if !f.Interactive && e.Kind != pointer.Wheel {
		return pointer.Ignored
	}
	if (e.Kind == pointer.Wheel || e.Kind == pointer.Press) && !f.contains(e.Position) {
		return pointer.Ignored
	}
	s := &f.state
	switch e.Kind {
	case pointer.Press:
		s.capture = true
		return pointer.GrabMouse
	case pointer.Release, pointer.Exit:
		f.released(e)
		return pointer.Accepted
	case pointer.Move:
		if !s.pressed {
			s.capture = false
			return pointer.Ignored
		}
		s.capture = true
		f.SetOffset(s.pressedViewportPos.Add(e.Position.Sub(s.pressedPos)))
		return pointer.GrabMouse
	case pointer.Wheel:
		f.SetOffset(f.Offset().Add(e.Scroll))
		return pointer.Accepted
	}
	return pointer.Ignored
}

// dragStarted reports whether a move to pos, while pressed,
// is far and early enough to become a drag along an axis the
// viewport can scroll in.
func (f *Flickable) dragStarted(pos f32.Point) bool {
	s := &f.state
	if !s.pressed {
		return false
	}
	if f.clock.Now().Sub(s.pressedTime) > DurationThreshold {
		return false
	}
	canMoveHoriz := f.Viewport.Width > f.Width
	canMoveVert := f.Viewport.Height > f.Height
	diff := pos.Sub(s.pressedPos)
	return (canMoveHoriz && abs(diff.X) > DistanceThreshold) ||
		(canMoveVert && abs(diff.Y) > DistanceThreshold)
}

// released ends a press. A drag that was fast and long enough
// continues as a fling.
func (f *Flickable) released(e pointer.Event) {
	s := &f.state
	if s.pressed && e.HasPosition() {
		dist := e.Position.Sub(s.pressedPos)
		millis := f.clock.Now().Sub(s.pressedTime).Milliseconds()
		if dist.Len2() > DistanceThreshold*DistanceThreshold && millis > 1 {
			speed := dist.Div(float32(millis))
			flight := float32(FlingDuration.Milliseconds())
			end := f.bounds().Clamp(s.pressedViewportPos.Add(dist).Add(speed.Mul(flight)))
			a := anim.Animation{Duration: FlingDuration, Easing: anim.EaseOut}
			f.Viewport.X.SetAnimated(end.X, a)
			f.Viewport.Y.SetAnimated(end.Y, a)
		}
	}
	// Capturing ends at release, before the fling is over.
	s.capture = false
	s.pressed = false
	s.pressedTime = time.Time{}
}

// Offset returns the current viewport offset.
func (f *Flickable) Offset() f32.Point {
	return f32.Pt(f.Viewport.X.Get(), f.Viewport.Y.Get())
}

// SetOffset moves the viewport to p clamped to the valid
// range, stopping any fling.
func (f *Flickable) SetOffset(p f32.Point) {
	p = f.bounds().Clamp(p)
	f.Viewport.X.Set(p.X)
	f.Viewport.Y.Set(p.Y)
}

// State reports the gesture state.
func (f *Flickable) State() FlickState {
	switch {
	case f.state.pressed && f.state.capture:
		return StateDragging
	case f.state.pressed:
		return StatePressed
	case f.Viewport.X.Animating() || f.Viewport.Y.Animating():
		return StateFlinging
	default:
		return StateIdle
	}
}

// bounds returns the valid offsets. Each axis ranges from
// min(0, container-viewport) to 0.
func (f *Flickable) bounds() f32.Rectangle {
	lo := f32.Pt(f.Width-f.Viewport.Width, f.Height-f.Viewport.Height).Min(f32.Point{})
	return f32.Rectangle{Min: lo}
}

func (f *Flickable) contains(p f32.Point) bool {
	return f32.Rect(0, 0, f.Width, f.Height).Contains(p)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (s FlickState) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StatePressed:
		return "StatePressed"
	case StateDragging:
		return "StateDragging"
	case StateFlinging:
		return "StateFlinging"
	default:
		panic("unreachable")
	}
}
