// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/winloop/winloop/io/system"
)

func TestPendingSetDeduplicates(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		var s pendingSet
		want := make(map[system.WindowID]bool)
		for j := 0; j < 50; j++ {
			id := system.WindowID(r.Intn(10))
			if r.Intn(4) == 0 {
				s.remove(id)
				delete(want, id)
				continue
			}
			s.insert(id)
			want[id] = true
		}
		var exp []system.WindowID
		for id := range want {
			exp = append(exp, id)
		}
		sort.Slice(exp, func(i, j int) bool { return exp[i] < exp[j] })
		for _, id := range exp {
			if !s.contains(id) {
				t.Fatalf("set is missing %d", id)
			}
		}
		if diff := cmp.Diff(exp, s.drain(), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("pending set mismatch (-want +got):\n%s", diff)
		}
		if ids := s.drain(); len(ids) != 0 {
			t.Errorf("drained set returned %v", ids)
		}
	}
}

func TestRegistrySkipsDestroyed(t *testing.T) {
	r := newRegistry()
	live, dead := newFakeWindow(), newFakeWindow()
	dead.destroyed = true
	r.Register(1, live)
	r.Register(2, dead)

	if _, ok := r.Lookup(2); ok {
		t.Error("Lookup returned a destroyed window")
	}
	if w, ok := r.Lookup(1); !ok || w != live {
		t.Errorf("Lookup(1) = %v, %v", w, ok)
	}
	if _, ok := r.Lookup(3); ok {
		t.Error("Lookup returned an unknown window")
	}
	var ids []system.WindowID
	r.All(func(id system.WindowID, _ Window) bool {
		ids = append(ids, id)
		return true
	})
	if diff := cmp.Diff([]system.WindowID{1}, ids); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
	if n := r.Len(); n != 1 {
		t.Errorf("Len() = %d, want 1", n)
	}
	r.Unregister(1)
	r.Unregister(1)
	if n := r.Len(); n != 0 {
		t.Errorf("Len() after Unregister = %d, want 0", n)
	}
}
