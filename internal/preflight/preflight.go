// Package preflight probes the terminal before a game starts.
package preflight

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// Screen is the part of tcell.Screen the probe needs.
type Screen interface {
	Init() error
	Fini()
	Size() (int, int)
	Colors() int
	CharacterSet() string
}

// Opener creates the screen to probe.
type Opener func() (Screen, error)

// TerminalOpener opens the real terminal through tcell.
func TerminalOpener() (Screen, error) {
	return tcell.NewScreen()
}

// Report describes what the probe found.
type Report struct {
	Width   int
	Height  int
	Colors  int
	Charset string
}

// Check opens the screen, reads its capabilities and closes it again.
// A terminal below the minimum size yields the report together with
// an error wrapping core.ErrTerminalTooSmall.
func Check(open Opener) (Report, error) {
	scr, err := open()
	if err != nil {
		return Report{}, fmt.Errorf("preflight: open terminal: %w", err)
	}
	if err := scr.Init(); err != nil {
		return Report{}, fmt.Errorf("preflight: init terminal: %w", err)
	}
	defer scr.Fini()

	w, h := scr.Size()
	r := Report{
		Width:   w,
		Height:  h,
		Colors:  scr.Colors(),
		Charset: scr.CharacterSet(),
	}
	if err := core.CheckSize(w, h); err != nil {
		return r, fmt.Errorf("preflight: %w", err)
	}
	return r, nil
}

// Fprint writes the report in a human-readable form.
func (r Report) Fprint(w io.Writer) {
	fmt.Fprintf(w, "terminal: %dx%d (minimum %dx%d)\n", r.Width, r.Height, core.MinScreenW, core.MinScreenH)
	fmt.Fprintf(w, "colors:   %d\n", r.Colors)
	fmt.Fprintf(w, "charset:  %s\n", r.Charset)
}
