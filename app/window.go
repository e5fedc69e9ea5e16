// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	mkey "golang.org/x/mobile/event/key"

	"github.com/winloop/winloop/io/key"
	"github.com/winloop/winloop/io/pointer"
)

// Window is the platform side of a window as seen by the loop.
//
// The loop never owns a Window. Registration only lets the loop
// observe it; the toolkit decides when a window dies and reports
// it through Destroyed.
type Window interface {
	// TakePendingRedraw reports whether a redraw was requested
	// since the last call and clears the request.
	TakePendingRedraw() bool
	// Draw renders the window. It returns true if a redraw was
	// requested while drawing.
	Draw() bool
	// ResizeEvent is called for platform resizes.
	ResizeEvent(size image.Point)
	// Modifiers returns the keyboard modifiers last reported
	// for the window.
	Modifiers() key.Modifiers
	SetModifiers(m key.Modifiers)
	// PressedKey returns the code of the key held down, or
	// mkey.CodeUnknown.
	PressedKey() mkey.Code
	SetPressedKey(c mkey.Code)
	// InputMethodFocused reports whether the input method proxy
	// of the window has the focus.
	InputMethodFocused() bool
	// Hide hides the window. A hidden window unregisters itself.
	Hide()
	// Destroyed reports whether the toolkit has released the window.
	Destroyed() bool
	// Runtime returns the input pipeline of the window.
	Runtime() RuntimeWindow
}

// RuntimeWindow is the toolkit side of a window: its input
// pipeline and item properties.
type RuntimeWindow interface {
	ProcessKeyInput(e key.Event)
	ProcessMouseInput(e pointer.Event)
	// RequestClose asks the window whether it may close.
	RequestClose() bool
	Active() bool
	SetActive(active bool)
	SetFocus(focus bool)
	ScaleFactor() float32
	SetScaleFactor(s float32)
	// SetGeometry sets the window item size in logical pixels.
	SetGeometry(width, height float32)
	// UpdateWindowProperties applies the window item properties
	// to the platform window.
	UpdateWindowProperties()
	HasActiveAnimations() bool
}
