package core

import (
	"errors"
	"fmt"
	"time"
)

// Minimum terminal size the game can be played in.
const (
	MinScreenW = 40
	MinScreenH = 20
)

// ErrTerminalTooSmall is returned when the terminal cannot fit the arena.
var ErrTerminalTooSmall = errors.New("terminal too small")

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	ReservedRows int           // Bottom rows kept by the platform (help footer)
	TickRate     time.Duration // Fixed frame duration
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		ReservedRows: 0,
		TickRate:     33 * time.Millisecond,
		Seed:         0,
	}
}

// ArenaSize returns the part of the screen the game may draw into.
func (c RuntimeConfig) ArenaSize() (int, int) {
	return c.ScreenW, max(c.ScreenH-c.ReservedRows, 0)
}

// ValidateSize reports ErrTerminalTooSmall if the screen is below the minimum.
func (c RuntimeConfig) ValidateSize() error {
	return CheckSize(c.ScreenW, c.ScreenH)
}

// CheckSize reports ErrTerminalTooSmall if w x h is below MinScreenW x MinScreenH.
func CheckSize(w, h int) error {
	if w < MinScreenW || h < MinScreenH {
		return fmt.Errorf("%w: need at least %dx%d, have %dx%d",
			ErrTerminalTooSmall, MinScreenW, MinScreenH, w, h)
	}
	return nil
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Phase    Phase // Current state machine phase
	Level    int   // Current level (1-based)
	Score    int   // Total score across levels
	GameOver bool  // Whether the run has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // What happened during the tick, in order
}

// Has reports whether the tick produced an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
