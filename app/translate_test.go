// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	mkey "golang.org/x/mobile/event/key"

	"github.com/winloop/winloop/f32"
	"github.com/winloop/winloop/io/key"
	"github.com/winloop/winloop/io/pointer"
	"github.com/winloop/winloop/io/system"
)

func newTranslator() *translator {
	return &translator{modifiers: DefaultModifiers}
}

func TestControlCharacter(t *testing.T) {
	tests := []struct {
		name    string
		pressed mkey.Code
		r       rune
		want    []key.Event
	}{
		{name: "no pressed key", pressed: mkey.CodeUnknown, r: 0x03},
		{name: "control key", pressed: mkey.CodeReturnEnter, r: '\r'},
		{name: "tab", pressed: mkey.CodeTab, r: '\t'},
		{
			name: "shortcut", pressed: mkey.CodeC, r: 0x03,
			want: []key.Event{
				{Kind: key.Press, Text: "c", Modifiers: key.ModCtrl},
				{Kind: key.Release, Text: "c", Modifiers: key.ModCtrl},
			},
		},
		{
			name: "printable", pressed: mkey.CodeA, r: 'A',
			want: []key.Event{
				{Kind: key.Press, Text: "A", Modifiers: key.ModCtrl},
				{Kind: key.Release, Text: "A", Modifiers: key.ModCtrl},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newFakeWindow()
			w.mods = key.ModCtrl
			w.pressed = tc.pressed
			newTranslator().process(w, system.ReceivedCharacter{Rune: tc.r})
			if diff := cmp.Diff(tc.want, w.rt.keys); diff != "" {
				t.Errorf("key events mismatch (-want +got):\n%s", diff)
			}
			if tc.r < ' ' && w.pressed != mkey.CodeUnknown {
				t.Errorf("pressed key %v not consumed", w.pressed)
			}
		})
	}
}

func TestBacktab(t *testing.T) {
	tr := newTranslator()
	w := newFakeWindow()
	tr.process(w, system.ModifiersChanged{Modifiers: mkey.ModShift})
	tr.process(w, system.KeyboardInput{Code: mkey.CodeTab, State: system.Pressed})
	tr.process(w, system.KeyboardInput{Code: mkey.CodeTab, State: system.Released})
	tr.process(w, system.IMECommit{Text: "\t"})
	want := []key.Event{
		{Kind: key.Press, Text: key.TextBacktab, Modifiers: key.ModShift},
		{Kind: key.Release, Text: key.TextBacktab, Modifiers: key.ModShift},
		{Kind: key.Press, Text: key.TextBacktab, Modifiers: key.ModShift},
		{Kind: key.Release, Text: key.TextBacktab, Modifiers: key.ModShift},
	}
	if diff := cmp.Diff(want, w.rt.keys); diff != "" {
		t.Errorf("key events mismatch (-want +got):\n%s", diff)
	}

	w = newFakeWindow()
	tr.process(w, system.KeyboardInput{Code: mkey.CodeTab, State: system.Pressed})
	if got := w.rt.keys[0].Text; got != key.TextTab {
		t.Errorf("Tab without Shift = %q, want %q", got, key.TextTab)
	}
}

func TestKeyboardInputPressedKey(t *testing.T) {
	tr := newTranslator()
	w := newFakeWindow()
	tr.process(w, system.KeyboardInput{Code: mkey.CodeX, State: system.Pressed})
	if w.pressed != mkey.CodeX {
		t.Errorf("pressed key = %v, want %v", w.pressed, mkey.CodeX)
	}
	if len(w.rt.keys) != 0 {
		t.Errorf("printable key delivered %v", w.rt.keys)
	}
	tr.process(w, system.KeyboardInput{Code: mkey.CodeX, State: system.Released})
	if w.pressed != mkey.CodeUnknown {
		t.Errorf("pressed key after release = %v", w.pressed)
	}
}

func TestFocus(t *testing.T) {
	tr := newTranslator()
	w := newFakeWindow()
	tr.process(w, system.Focused{Focus: true})
	tr.process(w, system.Focused{Focus: true})
	tr.process(w, system.Focused{Focus: false})
	w.imeFocus = true
	// The input method keeps the window active.
	tr.process(w, system.Focused{Focus: false})
	tr.process(w, system.Focused{Focus: true})
	if diff := cmp.Diff([]bool{true, false, true}, w.rt.focus); diff != "" {
		t.Errorf("focus changes mismatch (-want +got):\n%s", diff)
	}
	if !w.rt.active {
		t.Error("window not active")
	}
}

func TestModifierTables(t *testing.T) {
	tests := []struct {
		table ModifierTable
		in    mkey.Modifiers
		want  key.Modifiers
	}{
		{DefaultModifiers, mkey.ModControl, key.ModCtrl},
		{DefaultModifiers, mkey.ModMeta | mkey.ModShift, key.ModMeta | key.ModShift},
		{AppleModifiers, mkey.ModMeta, key.ModCtrl},
		{AppleModifiers, mkey.ModControl, key.ModMeta},
		{AppleModifiers, mkey.ModAlt | mkey.ModShift, key.ModAlt | key.ModShift},
		{AppleModifiers, 0, 0},
	}
	for _, tc := range tests {
		if got := tc.table.Map(tc.in); got != tc.want {
			t.Errorf("Map(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if got := platformModifiers("darwin"); got[2].To != key.ModCtrl || got[2].From != mkey.ModMeta {
		t.Errorf("darwin does not map Command to Ctrl: %v", got)
	}
	if got := platformModifiers("linux"); got[2].From != mkey.ModControl {
		t.Errorf("linux remaps Control: %v", got)
	}

	tr := &translator{modifiers: AppleModifiers}
	w := newFakeWindow()
	tr.process(w, system.ModifiersChanged{Modifiers: mkey.ModMeta})
	if w.mods != key.ModCtrl {
		t.Errorf("modifiers = %v, want %v", w.mods, key.ModCtrl)
	}
}

func TestPointerTranslation(t *testing.T) {
	tr := newTranslator()
	w := newFakeWindow()
	w.rt.scale = 2
	tr.process(w, system.CursorMoved{Position: f32.Pt(100, 50)})
	tr.process(w, system.MouseWheel{Delta: f32.Pt(0, -1), Unit: system.LineDelta})
	tr.process(w, system.MouseWheel{Delta: f32.Pt(10, 20), Unit: system.PixelDelta})
	tr.process(w, system.MouseInput{Button: pointer.ButtonLeft, State: system.Pressed})
	// Leaving while pressed is ignored.
	tr.process(w, system.CursorLeft{})
	tr.process(w, system.MouseInput{Button: pointer.ButtonLeft, State: system.Released})
	tr.process(w, system.CursorLeft{})
	want := []pointer.Event{
		{Kind: pointer.Move, Position: f32.Pt(50, 25)},
		{Kind: pointer.Wheel, Position: f32.Pt(50, 25), Scroll: f32.Pt(0, -60)},
		{Kind: pointer.Wheel, Position: f32.Pt(50, 25), Scroll: f32.Pt(5, 10)},
		{Kind: pointer.Press, Position: f32.Pt(50, 25), Button: pointer.ButtonLeft},
		{Kind: pointer.Release, Position: f32.Pt(50, 25), Button: pointer.ButtonLeft},
		{Kind: pointer.Exit},
	}
	if diff := cmp.Diff(want, w.rt.mouse); diff != "" {
		t.Errorf("pointer events mismatch (-want +got):\n%s", diff)
	}
}

func TestTouchTranslation(t *testing.T) {
	tr := newTranslator()
	w := newFakeWindow()
	w.rt.scale = 2
	for _, e := range []system.Touch{
		{Phase: system.TouchStarted, Position: f32.Pt(20, 20)},
		{Phase: system.TouchMoved, Position: f32.Pt(20, 40)},
		{Phase: system.TouchCancelled, Position: f32.Pt(20, 40)},
	} {
		tr.process(w, e)
	}
	want := []pointer.Event{
		{Kind: pointer.Press, Position: f32.Pt(10, 10), Button: pointer.ButtonLeft},
		{Kind: pointer.Move, Position: f32.Pt(10, 20)},
		{Kind: pointer.Release, Position: f32.Pt(10, 20), Button: pointer.ButtonLeft},
	}
	if diff := cmp.Diff(want, w.rt.mouse); diff != "" {
		t.Errorf("pointer events mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleFactorChanged(t *testing.T) {
	e := system.ScaleFactorChanged{ScaleFactor: 2, Size: image.Pt(800, 600)}

	tr := newTranslator()
	w := newFakeWindow()
	tr.process(w, e)
	if w.rt.scale != 2 || w.rt.geometry != f32.Pt(400, 300) {
		t.Errorf("scale, geometry = %v, %v; want 2, (400,300)", w.rt.scale, w.rt.geometry)
	}

	tr.noScaleUpdates = true
	w = newFakeWindow()
	tr.process(w, e)
	if w.rt.scale != 1 || w.rt.geometry != (f32.Point{}) {
		t.Errorf("override: scale, geometry = %v, %v", w.rt.scale, w.rt.geometry)
	}
}

func TestScaleFactorEnv(t *testing.T) {
	t.Setenv(scaleFactorEnv, "")
	c := NewContext(WithClipboard(nopClipboard))
	if !c.trans.noScaleUpdates {
		t.Error("environment override ignored")
	}
	c = NewContext(WithClipboard(nopClipboard), WithScaleFactorOverride(false))
	if c.trans.noScaleUpdates {
		t.Error("option did not override environment")
	}
}

func TestCloseRequest(t *testing.T) {
	tr := newTranslator()
	w := newFakeWindow()
	w.rt.allowQuit = false
	tr.process(w, system.CloseRequested{})
	if w.hidden {
		t.Error("window hidden although close was refused")
	}
	w.rt.allowQuit = true
	tr.process(w, system.CloseRequested{})
	if !w.hidden {
		t.Error("window not hidden")
	}
}

func TestResize(t *testing.T) {
	w := newFakeWindow()
	newTranslator().process(w, system.Resized{Size: image.Pt(640, 480)})
	if w.size != image.Pt(640, 480) {
		t.Errorf("size = %v", w.size)
	}
}
