// SPDX-License-Identifier: Unlicense OR MIT

/*
Package key implements key and text events.

Keys are identified by the text they produce. Keys without a
printable form, such as arrows, function keys or Tab, use the
reserved texts declared in this package. A platform key code is
turned into such a text with SpecialText or CodeText.
*/
package key

import (
	"strings"
)

// An Event is generated when a key is pressed or released,
// or when text is committed. Text is the resolved text of
// the key.
type Event struct {
	Kind Kind
	// Text of the key.
	Text string
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
}

// Kind of an Event.
type Kind uint8

const (
	// Press is the kind of a pressed key.
	Press Kind = iota
	// Release is the kind of a key that has been released.
	Release
)

// Modifiers is the set of modifier keys held during an Event.
type Modifiers uint32

const (
	// ModShift is the shift modifier key.
	ModShift Modifiers = 1 << iota
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModCtrl is the control modifier. On Apple platforms
	// it is reported for the command key.
	ModCtrl
	// ModMeta is the "logo" modifier key. On Apple platforms
	// it is reported for the control key.
	ModMeta
)

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (Event) ImplementsEvent() {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModShift) {
		strs = append(strs, "Shift")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "Alt")
	}
	if m.Contain(ModCtrl) {
		strs = append(strs, "Ctrl")
	}
	if m.Contain(ModMeta) {
		strs = append(strs, "Meta")
	}
	return strings.Join(strs, "-")
}

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid Kind")
	}
}
