package core

// Action represents a semantic game action, abstracted from physical key presses.
// The input source produces at most one per poll.
type Action int

const (
	ActionNone        Action = iota
	ActionSelectLeft         // Left, h - previous difficulty
	ActionSelectRight        // Right, l - next difficulty
	ActionSelect1            // 1 - first difficulty
	ActionSelect2            // 2 - second difficulty
	ActionSelect3            // 3 - third difficulty
	ActionConfirm            // Enter - commit selection
	ActionJump               // Space, W, Up - start/flap
	ActionRestart            // R - restart after game over
	ActionQuit               // Q, Esc, Ctrl+C - exit program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSelectLeft:
		return "SelectLeft"
	case ActionSelectRight:
		return "SelectRight"
	case ActionSelect1:
		return "Select1"
	case ActionSelect2:
		return "Select2"
	case ActionSelect3:
		return "Select3"
	case ActionConfirm:
		return "Confirm"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SelectIndex returns the zero-based catalog index for ActionSelect1..3.
func (a Action) SelectIndex() (int, bool) {
	switch a {
	case ActionSelect1:
		return 0, true
	case ActionSelect2:
		return 1, true
	case ActionSelect3:
		return 2, true
	}
	return 0, false
}
