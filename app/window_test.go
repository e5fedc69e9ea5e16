// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	mkey "golang.org/x/mobile/event/key"

	"github.com/winloop/winloop/app/clipboard"
	"github.com/winloop/winloop/f32"
	"github.com/winloop/winloop/io/key"
	"github.com/winloop/winloop/io/pointer"
)

var nopClipboard clipboard.Clipboard = clipboard.Nop{}

// fakeWindow records the calls made by the loop.
type fakeWindow struct {
	redraw    bool
	drawMore  bool
	draws     int
	mods      key.Modifiers
	pressed   mkey.Code
	imeFocus  bool
	hidden    bool
	destroyed bool
	size      image.Point
	// onDraw is called from Draw.
	onDraw    func()

	rt fakeRuntime
}

type fakeRuntime struct {
	keys      []key.Event
	mouse     []pointer.Event
	allowQuit bool
	active    bool
	focus     []bool
	scale     float32
	geometry  f32.Point
	syncs     int
	animating bool
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{rt: fakeRuntime{scale: 1, allowQuit: true}}
}

func (w *fakeWindow) TakePendingRedraw() bool {
	r := w.redraw
	w.redraw = false
	return r
}

func (w *fakeWindow) Draw() bool {
	w.draws++
	if w.onDraw != nil {
		w.onDraw()
	}
	return w.drawMore
}

func (w *fakeWindow) ResizeEvent(size image.Point) { w.size = size }
func (w *fakeWindow) Modifiers() key.Modifiers     { return w.mods }
func (w *fakeWindow) SetModifiers(m key.Modifiers) { w.mods = m }
func (w *fakeWindow) PressedKey() mkey.Code        { return w.pressed }
func (w *fakeWindow) SetPressedKey(c mkey.Code)    { w.pressed = c }
func (w *fakeWindow) InputMethodFocused() bool     { return w.imeFocus }
func (w *fakeWindow) Hide()                        { w.hidden = true }
func (w *fakeWindow) Destroyed() bool              { return w.destroyed }
func (w *fakeWindow) Runtime() RuntimeWindow       { return &w.rt }
func (r *fakeRuntime) ProcessKeyInput(e key.Event) { r.keys = append(r.keys, e) }
func (r *fakeRuntime) ProcessMouseInput(e pointer.Event) {
	r.mouse = append(r.mouse, e)
}
func (r *fakeRuntime) RequestClose() bool        { return r.allowQuit }
func (r *fakeRuntime) Active() bool              { return r.active }
func (r *fakeRuntime) SetActive(a bool)          { r.active = a }
func (r *fakeRuntime) SetFocus(f bool)           { r.focus = append(r.focus, f) }
func (r *fakeRuntime) ScaleFactor() float32      { return r.scale }
func (r *fakeRuntime) SetScaleFactor(s float32)  { r.scale = s }
func (r *fakeRuntime) SetGeometry(w, h float32)  { r.geometry = f32.Pt(w, h) }
func (r *fakeRuntime) UpdateWindowProperties()   { r.syncs++ }
func (r *fakeRuntime) HasActiveAnimations() bool { return r.animating }
