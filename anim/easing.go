// SPDX-License-Identifier: Unlicense OR MIT

package anim

import "math"

// Easing maps animation progress in [0, 1] to the fraction
// of the distance covered.
type Easing interface {
	Ease(t float32) float32
}

type linear struct{}

// Linear moves at constant speed.
var Linear Easing = linear{}

// CubicBezier is a CSS style timing function with control
// points (X1, Y1) and (X2, Y2). The end points are fixed at
// (0, 0) and (1, 1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float32
}

// EaseOut decelerates towards the end.
var EaseOut = CubicBezier{X1: 0, Y1: 0, X2: 0.58, Y2: 1}

func (linear) Ease(t float32) float32 { return t }

// Ease solves the curve for x = t and returns y.
func (c CubicBezier) Ease(t float32) float32 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	x := float64(t)
	x1, x2 := float64(c.X1), float64(c.X2)
	// Newton's method converges quickly for well formed curves.
	s := x
	for i := 0; i < 8; i++ {
		dx := bezier(s, x1, x2) - x
		if math.Abs(dx) < 1e-6 {
			return float32(bezier(s, float64(c.Y1), float64(c.Y2)))
		}
		d := bezierSlope(s, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= dx / d
	}
	// Fall back to bisection.
	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 32; i++ {
		v := bezier(s, x1, x2)
		if math.Abs(v-x) < 1e-6 {
			break
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return float32(bezier(s, float64(c.Y1), float64(c.Y2)))
}

// bezier evaluates one coordinate of the curve at s.
func bezier(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}
