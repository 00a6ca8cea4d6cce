package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// Game is what the loop drives: one action in per tick, a frame out on demand.
type Game interface {
	Title() string
	Step(action core.Action) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// SoundPlayer plays the cue for a game event.
type SoundPlayer interface {
	Play(kind core.EventKind)
}

// Model is the Bubble Tea model running a single game.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	sound    SoundPlayer
	pending  core.Action // Last key pressed since the previous tick
	state    core.GameState
	quitting bool
}

// NewModel creates a model for game. The screen covers the terminal minus
// the rows reserved for the help footer.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger, sound SoundPlayer) Model {
	w, h := cfg.ArenaSize()

	keys := DefaultKeyMap()
	state := game.State()
	keys.SetPhase(state.Phase)

	hm := help.New()
	hm.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(w, h),
		config: cfg,
		keys:   keys,
		help:   hm,
		logger: logger,
		sound:  sound,
		state:  state,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the action for the next tick. Quit is honoured at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.logger.Info("quit", "phase", m.state.Phase, "level", m.state.Level, "score", m.state.Score)
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.pending = action
	return m, nil
}

// handleResize only changes the visible area; the arena keeps the size it started with.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(m.config.ArenaSize())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick feeds the buffered action to the game and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.pending)
	m.pending = core.ActionNone
	m.state = result.State
	m.keys.SetPhase(m.state.Phase)

	for _, ev := range result.Events {
		m.report(ev)
	}

	return m, tickCmd(m.config.TickRate)
}

// report logs an event and plays its sound cue.
func (m Model) report(ev core.Event) {
	switch ev.Kind {
	case core.EventScored:
		m.logger.Debug("scored", "level", ev.Level, "score", ev.Score)
	case core.EventLevelUp:
		m.logger.Info("level up", "level", ev.Level, "score", ev.Score)
	case core.EventGameOver:
		m.logger.Info("game over", "level", ev.Level, "score", ev.Score)
	default:
		m.logger.Debug(ev.Kind.String(), "level", ev.Level, "score", ev.Score)
	}
	m.sound.Play(ev.Kind)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program on the alternate screen and blocks until the player quits.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger, sound SoundPlayer) error {
	model := NewModel(game, cfg, logger, sound)

	p := tea.NewProgram(model, tea.WithAltScreen())

	start := time.Now()
	logger.Info("starting", "game", game.Title(), "width", cfg.ScreenW, "height", cfg.ScreenH, "tick", cfg.TickRate)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("stopped", "played", time.Since(start).Round(time.Second))
	return nil
}
