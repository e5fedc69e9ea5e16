// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements pointer events and the results
handlers return for them.

Pointer events are delivered in two passes. The filter pass
visits an item before its children and returns a FilterResult
that decides whether the children see the event. The handling
pass visits the item that ended up receiving the event and
returns a Result.
*/
package pointer

import (
	"fmt"
	"time"

	"github.com/winloop/winloop/f32"
)

// Event is a pointer event. Positions are in logical pixels
// relative to the receiving item.
type Event struct {
	Kind Kind
	// Position is the pointer position. Exit events carry
	// no position.
	Position f32.Point
	// Button is the button for Press and Release events.
	Button Button
	// Scroll is the scroll amount of Wheel events, in
	// logical pixels.
	Scroll f32.Point
}

// Kind of an Event.
type Kind uint8

// Button of a Press or Release Event.
type Button uint8

const (
	// Press of a pointer.
	Press Kind = iota
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Wheel scroll.
	Wheel
	// Exit of the pointer from the window.
	Exit
)

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// FilterKind is the decision of a filter pass.
type FilterKind uint8

const (
	// ForwardEvent forwards the event to the children.
	ForwardEvent FilterKind = iota
	// ForwardAndIgnore forwards the event to the children
	// without delivering it to the filtering item afterwards.
	ForwardAndIgnore
	// ForwardAndInterceptGrab forwards the event, but the
	// filtering item takes the pointer grab unless a child
	// claims it.
	ForwardAndInterceptGrab
	// Intercept delivers the event to the filtering item only.
	Intercept
	// DelayForwarding forwards the event now and replays it
	// to the filtering item after Delay.
	DelayForwarding
	// InterceptAndDispatch delivers Dispatch to the children
	// and the original event to the filtering item.
	InterceptAndDispatch
)

// FilterResult is returned from a filter pass.
type FilterResult struct {
	Kind FilterKind
	// Delay is set for DelayForwarding.
	Delay time.Duration
	// Dispatch is set for InterceptAndDispatch.
	Dispatch Event
}

// Result is returned from a handling pass.
type Result uint8

const (
	// Ignored means the item did not handle the event.
	Ignored Result = iota
	// Accepted means the event was consumed.
	Accepted
	// GrabMouse means the event was consumed and the item
	// wants every following pointer event until release.
	GrabMouse
)

// Forward returns a FilterResult of kind k.
func Forward(k FilterKind) FilterResult {
	return FilterResult{Kind: k}
}

// Delay returns a DelayForwarding result.
func Delay(d time.Duration) FilterResult {
	return FilterResult{Kind: DelayForwarding, Delay: d}
}

// Dispatch returns an InterceptAndDispatch result.
func Dispatch(e Event) FilterResult {
	return FilterResult{Kind: InterceptAndDispatch, Dispatch: e}
}

// HasPosition reports whether the event carries a position.
func (e Event) HasPosition() bool {
	return e.Kind != Exit
}

func (Event) ImplementsEvent() {}

func (t Kind) String() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Wheel:
		return "Wheel"
	case Exit:
		return "Exit"
	default:
		panic("unknown Kind")
	}
}

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "ButtonNone"
	case ButtonLeft:
		return "ButtonLeft"
	case ButtonRight:
		return "ButtonRight"
	case ButtonMiddle:
		return "ButtonMiddle"
	default:
		panic("unknown Button")
	}
}

func (k FilterKind) String() string {
	switch k {
	case ForwardEvent:
		return "ForwardEvent"
	case ForwardAndIgnore:
		return "ForwardAndIgnore"
	case ForwardAndInterceptGrab:
		return "ForwardAndInterceptGrab"
	case Intercept:
		return "Intercept"
	case DelayForwarding:
		return "DelayForwarding"
	case InterceptAndDispatch:
		return "InterceptAndDispatch"
	default:
		panic("unknown FilterKind")
	}
}

func (r FilterResult) String() string {
	switch r.Kind {
	case DelayForwarding:
		return fmt.Sprintf("DelayForwarding(%v)", r.Delay)
	case InterceptAndDispatch:
		return fmt.Sprintf("InterceptAndDispatch(%v)", r.Dispatch.Kind)
	default:
		return r.Kind.String()
	}
}

func (r Result) String() string {
	switch r {
	case Ignored:
		return "Ignored"
	case Accepted:
		return "Accepted"
	case GrabMouse:
		return "GrabMouse"
	default:
		panic("unknown Result")
	}
}
