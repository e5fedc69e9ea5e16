// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync/atomic"

	"github.com/winloop/winloop/app/clipboard"
)

// ErrClipboardUnavailable is wrapped by errors from the system
// clipboard. The loop falls back to a clipboard that does nothing.
var ErrClipboardUnavailable = clipboard.ErrUnavailable

// keepRunning is the inverse of the quit policy, so that the zero
// value is the default.
var keepRunning atomic.Bool

// SetQuitOnLastWindowClosed sets whether hiding the last window
// exits the loop. The default is true.
func SetQuitOnLastWindowClosed(quit bool) {
	keepRunning.Store(!quit)
}

// QuitOnLastWindowClosed reports the policy set by
// SetQuitOnLastWindowClosed.
func QuitOnLastWindowClosed() bool {
	return !keepRunning.Load()
}
