package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clony-bird/internal/platform/tui"
	"github.com/vovakirdan/clony-bird/internal/preflight"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the terminal can run the game",
	Long: `Open the terminal the way the game does, report its size and colour
support, and list the controls. Exits non-zero if the terminal is
unusable or smaller than 40x20.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	report, err := preflight.Check(preflight.TerminalOpener)
	if report.Width > 0 {
		report.Fprint(out)
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "check failed: %v\n", err)
		return err
	}

	fmt.Fprintln(out)
	printControls(out, tui.DefaultKeyMap())
	fmt.Fprintln(out, "\nok")
	return nil
}

// printControls lists every binding that has help text.
func printControls(w io.Writer, keys tui.KeyMap) {
	fmt.Fprintln(w, "controls:")
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			if h.Key == "" {
				continue
			}
			fmt.Fprintf(w, "  %-8s %s\n", h.Key, h.Desc)
		}
	}
}
