// SPDX-License-Identifier: Unlicense OR MIT

// Package clipboard accesses the system clipboard through the
// platform's command line helpers.
package clipboard

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sys/execabs"
)

// ErrUnavailable is returned when no clipboard helper
// could be found.
var ErrUnavailable = errors.New("clipboard: unavailable")

// Clipboard reads and writes text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Nop is a Clipboard that stores nothing.
type Nop struct{}

// command is a clipboard backed by a pair of helper programs.
type command struct {
	read, write []string
}

// helpers lists the commands per GOOS in order of preference.
var helpers = map[string][]command{
	"darwin": {
		{read: []string{"pbpaste"}, write: []string{"pbcopy"}},
	},
	"windows": {
		{read: []string{"powershell", "-NoProfile", "-Command", "Get-Clipboard"}, write: []string{"clip"}},
	},
	"wayland": {
		{read: []string{"wl-paste", "--no-newline"}, write: []string{"wl-copy"}},
	},
	"x11": {
		{read: []string{"xclip", "-selection", "clipboard", "-o"}, write: []string{"xclip", "-selection", "clipboard", "-i"}},
		{read: []string{"xsel", "--clipboard", "--output"}, write: []string{"xsel", "--clipboard", "--input"}},
	},
}

// New returns the system clipboard. The returned error wraps
// ErrUnavailable when the platform offers no usable helper.
func New() (Clipboard, error) {
	var candidates []command
	switch runtime.GOOS {
	case "darwin", "windows":
		candidates = helpers[runtime.GOOS]
	default:
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			candidates = append(candidates, helpers["wayland"]...)
		}
		if os.Getenv("DISPLAY") != "" {
			candidates = append(candidates, helpers["x11"]...)
		}
	}
	for _, h := range candidates {
		if _, err := execabs.LookPath(h.read[0]); err != nil {
			continue
		}
		if _, err := execabs.LookPath(h.write[0]); err != nil {
			continue
		}
		c := h
		return &c, nil
	}
	return nil, fmt.Errorf("%w on %s", ErrUnavailable, runtime.GOOS)
}

func (c *command) ReadText() (string, error) {
	out, err := execabs.Command(c.read[0], c.read[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("clipboard: %s: %w", c.read[0], err)
	}
	return string(out), nil
}

func (c *command) WriteText(s string) error {
	cmd := execabs.Command(c.write[0], c.write[1:]...)
	cmd.Stdin = strings.NewReader(s)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard: %s: %w", c.write[0], err)
	}
	return nil
}

func (Nop) ReadText() (string, error) { return "", nil }
func (Nop) WriteText(string) error    { return nil }
