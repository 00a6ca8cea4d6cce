package core

// Phase is the top-level state of a game session.
type Phase int

const (
	PhaseSelecting Phase = iota // choosing a difficulty
	PhaseIdle                   // difficulty chosen, waiting for the first jump
	PhasePlaying                // simulation running
	PhaseGameOver               // run ended, waiting for restart or quit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
