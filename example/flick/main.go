// SPDX-License-Identifier: Unlicense OR MIT

package main

// A flick through a headless window. The drag is fed to the event
// loop as platform events; the loop keeps polling until the fling
// settles and then exits.

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/exp/slog"

	"github.com/winloop/winloop/app"
	"github.com/winloop/winloop/app/headless"
	"github.com/winloop/winloop/f32"
	"github.com/winloop/winloop/io/pointer"
	"github.com/winloop/winloop/io/system"
)

var (
	distance = flag.Float64("distance", 120, "drag distance in pixels")
	duration = flag.Duration("duration", 60*time.Millisecond, "drag duration")
	verbose  = flag.Bool("v", false, "log loop activity")
)

func main() {
	flag.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx := app.NewContext(app.WithLogger(logger))
	w := headless.NewWindow(ctx, 1, 300, 300)
	w.Flickable.Viewport.Height = 1200
	w.Frame = func(w *headless.Window) {
		if w.HasActiveAnimations() {
			logger.Debug("frame", "offset", w.Offset())
		}
	}
	if err := w.SetTitle("flick"); err != nil {
		log.Fatal(err)
	}

	go drag(ctx, w.ID(), float32(*distance), *duration)
	if err := ctx.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: offset %v after %d frames\n", w.PlatformTitle(), w.Offset(), w.Frames())
}

// drag posts a vertical drag from the bottom of the window and
// exits the loop once the fling is over.
func drag(ctx *app.Context, id system.WindowID, dist float32, d time.Duration) {
	post := func(e system.Input) {
		if err := ctx.Post(system.WindowEvent{ID: id, Event: e}); err != nil {
			log.Fatal(err)
		}
	}
	const steps = 6
	start := f32.Pt(150, 280)
	post(system.CursorMoved{Position: start})
	post(system.MouseInput{Button: pointer.ButtonLeft, State: system.Pressed})
	for i := 1; i <= steps; i++ {
		time.Sleep(d / steps)
		post(system.CursorMoved{Position: start.Sub(f32.Pt(0, dist*float32(i)/steps))})
	}
	post(system.MouseInput{Button: pointer.ButtonLeft, State: system.Released})

	p := ctx.Proxy()
	for {
		time.Sleep(50 * time.Millisecond)
		settled := make(chan bool, 1)
		if err := p.Run(func() {
			_, ok := ctx.Registry().Lookup(id)
			settled <- !ok || !ctx.Clock().Active()
		}); err != nil {
			return
		}
		if <-settled {
			p.Exit()
			return
		}
	}
}
