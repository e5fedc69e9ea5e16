// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"golang.org/x/exp/slices"

	"github.com/winloop/winloop/io/system"
)

// Registry maps window ids to the windows observed by the loop.
// It must only be used from the loop goroutine.
type Registry struct {
	windows map[system.WindowID]Window
}

// pendingSet is a sorted set of window ids. It holds each id at
// most once.
type pendingSet struct {
	ids []system.WindowID
}

func newRegistry() *Registry {
	return &Registry{windows: make(map[system.WindowID]Window)}
}

// Register adds w under id, replacing any previous window.
func (r *Registry) Register(id system.WindowID, w Window) {
	r.windows[id] = w
}

// Unregister removes id. Removing an absent id is a no-op.
func (r *Registry) Unregister(id system.WindowID) {
	delete(r.windows, id)
}

// Lookup returns the window for id if it is registered and
// not destroyed.
func (r *Registry) Lookup(id system.WindowID) (Window, bool) {
	w, ok := r.windows[id]
	if !ok || w.Destroyed() {
		return nil, false
	}
	return w, true
}

// All calls f for every live window until f returns false.
// Destroyed windows are skipped.
func (r *Registry) All(f func(id system.WindowID, w Window) bool) {
	for id, w := range r.windows {
		if w.Destroyed() {
			continue
		}
		if !f(id, w) {
			return
		}
	}
}

// Len returns the number of live windows.
func (r *Registry) Len() int {
	n := 0
	r.All(func(system.WindowID, Window) bool {
		n++
		return true
	})
	return n
}

func (s *pendingSet) insert(id system.WindowID) {
	if i, found := slices.BinarySearch(s.ids, id); !found {
		s.ids = slices.Insert(s.ids, i, id)
	}
}

func (s *pendingSet) remove(id system.WindowID) {
	if i, found := slices.BinarySearch(s.ids, id); found {
		s.ids = slices.Delete(s.ids, i, i+1)
	}
}

func (s *pendingSet) contains(id system.WindowID) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// drain returns the ids in order and empties the set.
func (s *pendingSet) drain() []system.WindowID {
	ids := s.ids
	s.ids = nil
	return ids
}
