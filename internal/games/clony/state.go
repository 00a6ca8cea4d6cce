package clony

import "github.com/vovakirdan/clony-bird/internal/core"

// transitions lists the legal phase changes.
// Restart goes back to selection; nothing else moves backwards.
var transitions = map[core.Phase][]core.Phase{
	core.PhaseSelecting: {core.PhaseIdle},
	core.PhaseIdle:      {core.PhasePlaying},
	core.PhasePlaying:   {core.PhaseGameOver},
	core.PhaseGameOver:  {core.PhaseSelecting},
}

// canTransition reports whether the machine may move from one phase to another.
func canTransition(from, to core.Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// transition moves the session to the given phase if the move is legal.
func (g *Game) transition(to core.Phase) bool {
	if !canTransition(g.phase, to) {
		return false
	}
	g.phase = to
	return true
}

// Started reports whether the player has begun flying this run.
func (g *Game) Started() bool {
	return g.phase == core.PhasePlaying || g.phase == core.PhaseGameOver
}

// Over reports whether the run has ended.
func (g *Game) Over() bool {
	return g.phase == core.PhaseGameOver
}

// Selected reports whether a difficulty has been committed for this run.
func (g *Game) Selected() bool {
	return g.phase != core.PhaseSelecting
}

// Phase returns the current state machine phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}
