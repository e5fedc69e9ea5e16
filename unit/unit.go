// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit converts between physical and logical pixels.

Physical pixels, or px, are the pixels of the underlying display as
reported by the platform. Their size vary between platforms and
displays.

Logical pixels, or dp, are independent of the display density. All
positions handed to windows and gestures are in dp. A Metric holds the
scale factor of a window and converts between the two.

*/
package unit

import (
	"fmt"

	"github.com/winloop/winloop/f32"
)

// Metric converts between physical and logical pixels.
type Metric struct {
	// PxPerDp is the window scale factor. The zero value
	// is treated as 1.
	PxPerDp float32
}

// Dp is a length in logical pixels.
type Dp float32

// Px returns the physical pixels for v logical pixels.
func (m Metric) Px(v Dp) float32 {
	return float32(v) * m.scale()
}

// Dp converts physical pixels to logical pixels.
func (m Metric) Dp(px float32) Dp {
	return Dp(px / m.scale())
}

// DpPoint converts a point in physical pixels to logical pixels.
func (m Metric) DpPoint(p f32.Point) f32.Point {
	return p.Div(m.scale())
}

func (m Metric) scale() float32 {
	if m.PxPerDp == 0 {
		return 1
	}
	return m.PxPerDp
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}
