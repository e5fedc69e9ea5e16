// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"unicode"

	mkey "golang.org/x/mobile/event/key"

	"github.com/winloop/winloop/f32"
	"github.com/winloop/winloop/io/key"
	"github.com/winloop/winloop/io/pointer"
	"github.com/winloop/winloop/io/system"
	"github.com/winloop/winloop/unit"
)

// wheelLinePx is the number of logical pixels per scrolled line.
const wheelLinePx = 60

// ModifierTable maps platform modifiers to toolkit modifiers.
type ModifierTable []ModifierMapping

// ModifierMapping maps one platform modifier.
type ModifierMapping struct {
	From mkey.Modifiers
	To   key.Modifiers
}

var (
	// DefaultModifiers is the identity mapping.
	DefaultModifiers = ModifierTable{
		{From: mkey.ModShift, To: key.ModShift},
		{From: mkey.ModAlt, To: key.ModAlt},
		{From: mkey.ModControl, To: key.ModCtrl},
		{From: mkey.ModMeta, To: key.ModMeta},
	}
	// AppleModifiers reports the command key as control and the
	// control key as meta, so that shortcuts read the same on
	// every platform.
	AppleModifiers = ModifierTable{
		{From: mkey.ModShift, To: key.ModShift},
		{From: mkey.ModAlt, To: key.ModAlt},
		{From: mkey.ModMeta, To: key.ModCtrl},
		{From: mkey.ModControl, To: key.ModMeta},
	}
)

// modifierTables selects the ModifierTable per GOOS.
var modifierTables = map[string]ModifierTable{
	"darwin": AppleModifiers,
	"ios":    AppleModifiers,
}

// translator turns platform window events into calls on the
// window input pipeline. It tracks the pointer between events.
type translator struct {
	modifiers ModifierTable
	// noScaleUpdates ignores ScaleFactorChanged.
	noScaleUpdates bool

	// cursor is the last pointer position in logical pixels.
	cursor  f32.Point
	pressed bool
}

// Map converts platform modifiers.
func (t ModifierTable) Map(m mkey.Modifiers) key.Modifiers {
	var mods key.Modifiers
	for _, e := range t {
		if m&e.From != 0 {
			mods |= e.To
		}
	}
	return mods
}

func platformModifiers(goos string) ModifierTable {
	if t, ok := modifierTables[goos]; ok {
		return t
	}
	return DefaultModifiers
}

func (t *translator) process(w Window, e system.Input) {
	rw := w.Runtime()
	metric := unit.Metric{PxPerDp: rw.ScaleFactor()}
	switch e := e.(type) {
	case system.Resized:
		w.ResizeEvent(e.Size)
	case system.CloseRequested:
		if rw.RequestClose() {
			w.Hide()
		}
	case system.ReceivedCharacter:
		// Shortcuts such as Ctrl+C arrive as control characters
		// after the key event. Use the pressed key instead, unless
		// that is a control key already delivered as a key event.
		var text string
		if unicode.IsControl(e.Rune) {
			code := w.PressedKey()
			w.SetPressedKey(mkey.CodeUnknown)
			s, ok := key.CodeText(code)
			if !ok || key.IsControl(s) {
				return
			}
			text = s
		} else {
			text = string(e.Rune)
		}
		sendText(rw, text, w.Modifiers())
	case system.Focused:
		// Popups are not separate windows, so focus and
		// activation are the same.
		focus := e.Focus || w.InputMethodFocused()
		if focus != rw.Active() {
			rw.SetActive(focus)
			rw.SetFocus(focus)
		}
	case system.KeyboardInput:
		kind := key.Press
		if e.State == system.Pressed {
			w.SetPressedKey(e.Code)
		} else {
			kind = key.Release
			w.SetPressedKey(mkey.CodeUnknown)
		}
		if text, ok := key.SpecialText(e.Code); ok {
			rw.ProcessKeyInput(keyEvent(kind, text, w.Modifiers()))
		}
	case system.IMECommit:
		sendText(rw, e.Text, w.Modifiers())
	case system.ModifiersChanged:
		w.SetModifiers(t.modifiers.Map(e.Modifiers))
	case system.CursorMoved:
		t.cursor = metric.DpPoint(e.Position)
		rw.ProcessMouseInput(pointer.Event{Kind: pointer.Move, Position: t.cursor})
	case system.CursorLeft:
		// Keep a pressed pointer; the release follows.
		if !t.pressed {
			rw.ProcessMouseInput(pointer.Event{Kind: pointer.Exit})
		}
	case system.MouseWheel:
		var delta f32.Point
		switch e.Unit {
		case system.LineDelta:
			delta = e.Delta.Mul(wheelLinePx)
		case system.PixelDelta:
			delta = metric.DpPoint(e.Delta)
		}
		rw.ProcessMouseInput(pointer.Event{Kind: pointer.Wheel, Position: t.cursor, Scroll: delta})
	case system.MouseInput:
		ev := pointer.Event{Position: t.cursor, Button: e.Button}
		if e.State == system.Pressed {
			t.pressed = true
			ev.Kind = pointer.Press
		} else {
			t.pressed = false
			ev.Kind = pointer.Release
		}
		rw.ProcessMouseInput(ev)
	case system.Touch:
		ev := pointer.Event{Position: metric.DpPoint(e.Position)}
		switch e.Phase {
		case system.TouchStarted:
			t.pressed = true
			ev.Kind, ev.Button = pointer.Press, pointer.ButtonLeft
		case system.TouchEnded, system.TouchCancelled:
			t.pressed = false
			ev.Kind, ev.Button = pointer.Release, pointer.ButtonLeft
		default:
			ev.Kind = pointer.Move
		}
		rw.ProcessMouseInput(ev)
	case system.ScaleFactorChanged:
		if t.noScaleUpdates {
			return
		}
		m := unit.Metric{PxPerDp: e.ScaleFactor}
		size := m.DpPoint(f32.Pt(float32(e.Size.X), float32(e.Size.Y)))
		rw.SetGeometry(size.X, size.Y)
		rw.SetScaleFactor(e.ScaleFactor)
	}
}

// sendText delivers committed text as a press and release.
func sendText(rw RuntimeWindow, text string, mods key.Modifiers) {
	ev := keyEvent(key.Press, text, mods)
	rw.ProcessKeyInput(ev)
	ev.Kind = key.Release
	rw.ProcessKeyInput(ev)
}

// keyEvent maps Shift+Tab to Backtab.
func keyEvent(kind key.Kind, text string, mods key.Modifiers) key.Event {
	if text == key.TextTab && mods.Contain(key.ModShift) {
		text = key.TextBacktab
	}
	return key.Event{Kind: kind, Text: text, Modifiers: mods}
}
