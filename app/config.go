// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"io"
	"os"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/slog"

	"github.com/winloop/winloop/app/clipboard"
)

// Option configures a Context.
type Option func(c *Context)

// scaleFactorEnv disables scale factor updates when set.
const scaleFactorEnv = "WINLOOP_SCALE_FACTOR"

const instrumentationName = "github.com/winloop/winloop/app"

// WithLogger sets the logger of the loop. The default discards
// everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		c.log = l
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(c *Context) {
		c.clipboard = cb
	}
}

// WithTracerProvider sets the source of the per iteration tracer.
// The default is the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Context) {
		c.tracer = tp.Tracer(instrumentationName)
	}
}

// WithModifierTable overrides the modifier mapping of the
// platform.
func WithModifierTable(t ModifierTable) Option {
	return func(c *Context) {
		c.trans.modifiers = t
	}
}

// WithScaleFactorOverride disables handling of scale factor
// changes, like setting the WINLOOP_SCALE_FACTOR environment
// variable.
func WithScaleFactorOverride(override bool) Option {
	return func(c *Context) {
		c.trans.noScaleUpdates = override
	}
}

// WithNow sets the time source of the loop.
func WithNow(now func() time.Time) Option {
	return func(c *Context) {
		c.now = now
	}
}

func (c *Context) configure(opts []Option) {
	c.now = time.Now
	c.trans.modifiers = platformModifiers(runtime.GOOS)
	_, c.trans.noScaleUpdates = os.LookupEnv(scaleFactorEnv)
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.tracer == nil {
		c.tracer = otel.GetTracerProvider().Tracer(instrumentationName)
	}
	if c.clipboard == nil {
		cb, err := clipboard.New()
		if err != nil {
			c.log.Warn("using no-op clipboard", "err", err)
			cb = clipboard.Nop{}
		}
		c.clipboard = cb
	}
}
