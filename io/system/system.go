// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains the normalized events a platform
// delivers to the event loop.
//
// Window events are wrapped in a WindowEvent carrying the
// WindowID of their target. Positions and sizes are in
// physical pixels; the loop converts them to logical pixels
// with the window scale factor.
package system

import (
	"fmt"
	"image"

	"golang.org/x/mobile/event/key"

	"github.com/winloop/winloop/f32"
	"github.com/winloop/winloop/io/event"
	"github.com/winloop/winloop/io/pointer"
)

// WindowID identifies a platform window.
type WindowID uint64

// Event is a platform event for the loop.
type Event interface {
	event.Event
	implementsSystemEvent()
}

// WindowEvent targets a single window.
type WindowEvent struct {
	ID    WindowID
	Event Input
}

// RedrawRequested is sent by the platform when the window
// content must be redrawn.
type RedrawRequested struct {
	ID WindowID
}

// Input is an event for a single window.
type Input interface {
	implementsInput()
}

// Resized reports a new inner size.
type Resized struct {
	Size image.Point
}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct{}

// ReceivedCharacter carries a character produced by the keyboard.
// Shortcuts such as Ctrl+C produce control characters.
type ReceivedCharacter struct {
	Rune rune
}

// Focused reports a change of the window focus.
type Focused struct {
	Focus bool
}

// KeyboardInput reports a raw key transition.
type KeyboardInput struct {
	Code  key.Code
	State State
}

// IMECommit carries text committed by an input method.
type IMECommit struct {
	Text string
}

// ModifiersChanged reports the platform modifier state.
type ModifiersChanged struct {
	Modifiers key.Modifiers
}

// CursorMoved reports a pointer position.
type CursorMoved struct {
	Position f32.Point
}

// CursorLeft is sent when the pointer leaves the window.
type CursorLeft struct{}

// MouseWheel reports a scroll. Delta is in lines for
// LineDelta and in physical pixels for PixelDelta.
type MouseWheel struct {
	Delta f32.Point
	Unit  DeltaUnit
}

// MouseInput reports a button transition.
type MouseInput struct {
	Button pointer.Button
	State  State
}

// Touch reports a touch point.
type Touch struct {
	Phase    TouchPhase
	Position f32.Point
}

// ScaleFactorChanged reports a new scale factor together with
// the suggested inner size in physical pixels.
type ScaleFactorChanged struct {
	ScaleFactor float32
	Size        image.Point
}

// State of a key or button.
type State uint8

// DeltaUnit is the unit of a MouseWheel delta.
type DeltaUnit uint8

// TouchPhase is the phase of a Touch.
type TouchPhase uint8

const (
	Pressed State = iota
	Released
)

const (
	LineDelta DeltaUnit = iota
	PixelDelta
)

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

func (WindowEvent) ImplementsEvent()     {}
func (RedrawRequested) ImplementsEvent() {}

func (WindowEvent) implementsSystemEvent()     {}
func (RedrawRequested) implementsSystemEvent() {}

func (Resized) implementsInput()            {}
func (CloseRequested) implementsInput()     {}
func (ReceivedCharacter) implementsInput()  {}
func (Focused) implementsInput()            {}
func (KeyboardInput) implementsInput()      {}
func (IMECommit) implementsInput()          {}
func (ModifiersChanged) implementsInput()   {}
func (CursorMoved) implementsInput()        {}
func (CursorLeft) implementsInput()         {}
func (MouseWheel) implementsInput()         {}
func (MouseInput) implementsInput()         {}
func (Touch) implementsInput()              {}
func (ScaleFactorChanged) implementsInput() {}

func (id WindowID) String() string {
	return fmt.Sprintf("WindowID(%d)", uint64(id))
}

func (s State) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	default:
		panic("unknown State")
	}
}
