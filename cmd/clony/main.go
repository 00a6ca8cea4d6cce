// clony is a terminal arcade game: steer a glider through scrolling gaps
// across five levels of increasing speed.
//
// Usage:
//
//	clony          - Play
//	clony check    - Probe the terminal and show the controls
//
// Settings are read from ~/.arcade/configs/clony.yaml (or .toml), then
// ./configs/clony.yaml (or .toml), falling back to built-in defaults.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/clony-bird/internal/audio"
	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
	"github.com/vovakirdan/clony-bird/internal/games/clony"
	"github.com/vovakirdan/clony-bird/internal/platform/tui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clony",
	Short: "Clony Bird - fly through the gaps in your terminal",
	Long: `Clony Bird is a terminal arcade game. Pick a difficulty, then keep the
bird airborne and steer it through the gaps. Every 30 gaps cleared
raises the level and the speed, up to level 5.

Controls:
  Left/Right, 1-3  - Choose difficulty
  Enter            - Confirm difficulty
  Space/W/Up       - Start and jump
  R                - Restart after game over
  Q/Esc/Ctrl+C     - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// newLogger builds the logger used for the whole run.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "clony",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", level)
	}
	return logger
}

// terminalSize returns the size of the controlling terminal, or 80x24 if it cannot be read.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load()
	if err != nil {
		log.Error("loading config", "err", err)
		return err
	}

	// The alternate screen owns the terminal while playing; logs are held
	// back and written to stderr once it is released.
	var logBuf bytes.Buffer
	logger := newLogger(&logBuf, cfg.LogLevel)
	defer func() {
		//nolint:errcheck // Best-effort flush to stderr
		os.Stderr.Write(logBuf.Bytes())
	}()
	logger.Debug("config loaded", "source", source)

	width, height := terminalSize()
	rt := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		ReservedRows: 1,
		TickRate:     cfg.Loop.Interval(),
		Seed:         time.Now().UnixNano(),
	}

	game, err := clony.New(cfg, rt)
	if err != nil {
		if errors.Is(err, core.ErrTerminalTooSmall) {
			logger.Error("cannot start", "err", err)
			return err
		}
		logger.Error("invalid configuration", "source", source, "err", err)
		return err
	}

	sound := startSound(cfg.Sound, logger)
	if p, ok := sound.(*audio.Player); ok {
		defer p.Close()
	}

	if err := tui.Run(game, rt, logger, sound); err != nil {
		logger.Error("running game", "err", err)
		return fmt.Errorf("clony: %w", err)
	}

	state := game.State()
	logger.Info("bye", "level", state.Level, "score", state.Score)
	return nil
}

// startSound opens the speaker when sound is enabled. Audio problems never
// stop the game; it just runs silent.
func startSound(cfg config.Sound, logger *log.Logger) tui.SoundPlayer {
	if !cfg.Enabled {
		return audio.Nop{}
	}
	p := audio.NewPlayer(cfg.Volume)
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return audio.Nop{}
	}
	return p
}
