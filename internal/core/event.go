package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventScored
	EventLevelUp
	EventGameOver
	EventRestarted
	EventDifficultyChosen
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventScored:
		return "scored"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	case EventDifficultyChosen:
		return "difficulty_chosen"
	default:
		return "unknown"
	}
}

// Event is emitted by the game during Step. Level and Score are the values
// right after the event was applied.
type Event struct {
	Kind  EventKind
	Level int
	Score int
}
