// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app runs the event loop shared by every window of a
program.

# Event loop

A Context holds the windows, the animation clock and the channel
for custom events. Platform backends deliver window events with
Post; the rest of the program sends custom events through a Proxy:

	ctx := app.NewContext()
	ctx.Register(id, w)
	go func() {
		ctx.Proxy().Run(func() {
			// Runs on the loop goroutine.
		})
	}()
	if err := ctx.Run(context.Background()); err != nil {
		log.Fatal(err)
	}

Every iteration of the loop dispatches the queued events, syncs window
properties and draws the windows that asked for it. Between
iterations the loop sleeps until the next event, or until the next
animation timer fires. Windows with running animations keep the loop
polling.

Custom events sent before Run are kept and delivered in order when the
loop starts. Sends after Close fail with ErrLoopTerminated.

# Input

Window events are translated to key and pointer events in logical
pixels before they reach a window. See package
github.com/winloop/winloop/io/system for the events accepted by Post.

# Environment

Setting WINLOOP_SCALE_FACTOR disables handling of scale factor changes
reported by the platform.
*/
package app
