// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"github.com/winloop/winloop/f32"
	"github.com/winloop/winloop/unit"
)

func TestMetricRoundTrip(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}

	if got, exp := m.Dp(10), unit.Dp(5); got != exp {
		t.Errorf("Dp conversion mismatch %v != %v", exp, got)
	}
	if got, exp := m.Px(m.Dp(7)), float32(7); got != exp {
		t.Errorf("Px(Dp) round trip mismatch %v != %v", exp, got)
	}
	if got, exp := m.DpPoint(f32.Pt(30, 12)), f32.Pt(15, 6); got != exp {
		t.Errorf("DpPoint mismatch %v != %v", exp, got)
	}
}

func TestMetricZero(t *testing.T) {
	var m unit.Metric
	if got := m.Dp(3); got != 3 {
		t.Errorf("zero Metric should be identity, got %v", got)
	}
}
