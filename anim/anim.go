// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim implements the animation clock shared by the event
loop, gestures and windows.

A Driver holds the current animation tick. The event loop advances
it once per iteration with Tick; everything evaluated during that
iteration observes the same time through Now. Animated Values and
Timers are bound to a Driver and are only touched from the loop
goroutine.
*/
package anim

import (
	"container/heap"
	"time"
)

// Driver is the animation clock.
type Driver struct {
	now    time.Time
	values []*Value
	timers timerHeap
	seq    uint64
}

// Animation describes how a Value moves to a new target.
type Animation struct {
	Duration time.Duration
	Easing   Easing
}

// Value is an animatable float property.
type Value struct {
	d    *Driver
	v    float32
	anim *transition
}

type transition struct {
	from, to float32
	start    time.Time
	a        Animation
}

// Timer is a callback scheduled with AfterFunc.
type Timer struct {
	d       *Driver
	when    time.Time
	seq     uint64
	f       func()
	index   int
	stopped bool
}

type timerHeap []*Timer

// NewDriver returns a Driver whose current tick is now.
func NewDriver(now time.Time) *Driver {
	return &Driver{now: now}
}

// Now returns the current animation tick.
func (d *Driver) Now() time.Time {
	return d.now
}

// Tick advances the clock to now, runs expired timers in
// deadline order and retires finished animations. Ticks that
// move backwards are ignored.
func (d *Driver) Tick(now time.Time) {
	if now.After(d.now) {
		d.now = now
	}
	// Timers scheduled by the callbacks below wait for the next Tick.
	var expired []*Timer
	for len(d.timers) > 0 && !d.timers[0].when.After(d.now) {
		expired = append(expired, heap.Pop(&d.timers).(*Timer))
	}
	for _, t := range expired {
		// An earlier callback may have stopped t.
		if t.stopped {
			continue
		}
		t.stopped = true
		t.f()
	}
	running := d.values[:0]
	for _, v := range d.values {
		if v.update() {
			running = append(running, v)
		}
	}
	for i := len(running); i < len(d.values); i++ {
		d.values[i] = nil
	}
	d.values = running
}

// Active reports whether any Value is animating.
func (d *Driver) Active() bool {
	for _, v := range d.values {
		if v.Animating() {
			return true
		}
	}
	return false
}

// NextUpdate returns the time from now until the next timer
// expires. It returns false if no timer is pending.
func (d *Driver) NextUpdate(now time.Time) (time.Duration, bool) {
	if len(d.timers) == 0 {
		return 0, false
	}
	dur := d.timers[0].when.Sub(now)
	if dur < 0 {
		dur = 0
	}
	return dur, true
}

// AfterFunc schedules f to run on the first Tick at least
// dur after the current tick.
func (d *Driver) AfterFunc(dur time.Duration, f func()) *Timer {
	d.seq++
	t := &Timer{d: d, when: d.now.Add(dur), seq: d.seq, f: f}
	heap.Push(&d.timers, t)
	return t
}

// Stop prevents the Timer from firing. It returns false if
// the timer already fired or was stopped.
func (t *Timer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.d.timers, t.index)
	}
	return true
}

// NewValue returns a Value bound to d.
func (d *Driver) NewValue(v float32) *Value {
	return &Value{d: d, v: v}
}

// Get returns the value at the current tick.
func (v *Value) Get() float32 {
	v.update()
	return v.v
}

// Set replaces the value, cancelling any animation.
func (v *Value) Set(x float32) {
	v.anim = nil
	v.v = x
}

// SetAnimated moves the value to target over a.Duration.
func (v *Value) SetAnimated(target float32, a Animation) {
	if a.Duration <= 0 {
		v.Set(target)
		return
	}
	if a.Easing == nil {
		a.Easing = Linear
	}
	v.anim = &transition{from: v.Get(), to: target, start: v.d.now, a: a}
	for _, w := range v.d.values {
		if w == v {
			return
		}
	}
	v.d.values = append(v.d.values, v)
}

// Animating reports whether an animation is in progress.
func (v *Value) Animating() bool {
	return v.update()
}

// Target returns the value the property settles on.
func (v *Value) Target() float32 {
	if v.anim != nil {
		return v.anim.to
	}
	return v.v
}

// update evaluates the running animation and reports whether
// it is still in progress.
func (v *Value) update() bool {
	tr := v.anim
	if tr == nil {
		return false
	}
	elapsed := v.d.now.Sub(tr.start)
	if elapsed >= tr.a.Duration {
		v.v = tr.to
		v.anim = nil
		return false
	}
	p := float32(elapsed) / float32(tr.a.Duration)
	v.v = tr.from + (tr.to-tr.from)*tr.a.Easing.Ease(p)
	return true
}

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].seq < h[j].seq
	}
	return h[i].when.Before(h[j].when)
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x interface{}) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
