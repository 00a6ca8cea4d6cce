package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	One     key.Binding
	Two     key.Binding
	Three   key.Binding
	Confirm key.Binding
	Jump    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "easier"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "harder"),
		),
		One: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-3", "pick"),
		),
		Two: key.NewBinding(
			key.WithKeys("2"),
		),
		Three: key.NewBinding(
			key.WithKeys("3"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "w", "up"),
			key.WithHelp("space", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
// Disabled bindings are skipped by the help model.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.One, k.Confirm, k.Jump, k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.One, k.Confirm},
		{k.Jump, k.Restart, k.Quit},
	}
}

// SetPhase enables only the bindings that do something in the given phase.
// Quit stays enabled everywhere.
func (k *KeyMap) SetPhase(p core.Phase) {
	selecting := p == core.PhaseSelecting
	k.Left.SetEnabled(selecting)
	k.Right.SetEnabled(selecting)
	k.One.SetEnabled(selecting)
	k.Two.SetEnabled(selecting)
	k.Three.SetEnabled(selecting)
	k.Confirm.SetEnabled(selecting)
	k.Jump.SetEnabled(p == core.PhaseIdle || p == core.PhasePlaying)
	k.Restart.SetEnabled(p == core.PhaseGameOver)
	k.Quit.SetEnabled(true)
}

// MapKey translates a key message to a game action.
// Keys that mean nothing in the current phase map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionSelectLeft
	case key.Matches(msg, k.Right):
		return core.ActionSelectRight
	case key.Matches(msg, k.One):
		return core.ActionSelect1
	case key.Matches(msg, k.Two):
		return core.ActionSelect2
	case key.Matches(msg, k.Three):
		return core.ActionSelect3
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
