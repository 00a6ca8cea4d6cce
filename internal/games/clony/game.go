// Package clony implements Clony Bird: a glider that must fly through the gaps
// of scrolling obstacles, across five levels of increasing speed.
package clony

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
)

// Visual characters for rendering
const (
	BirdChar     = '▶'
	ObstacleChar = '█'
	GroundChar   = '═'
)

// Option customizes a Game at construction.
type Option func(*Game)

// WithRand replaces the seeded random source used for gap placement.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// Game is a single play session: all mutable state of one run lives here.
type Game struct {
	cfg     config.ClonyConfig
	catalog config.Catalog
	rng     Rand

	arenaW int
	arenaH int

	phase         core.Phase
	selectedIndex int     // Highlighted catalog entry
	multiplier    float64 // Committed difficulty speed multiplier

	level        int
	levelScore   int
	totalScore   int
	levelUpTicks int // Ticks left to show the level-up banner

	bird      Bird
	obstacles *ObstacleManager

	tick   uint64
	events []core.Event
}

// New creates a session for the given terminal. The terminal must be at
// least core.MinScreenW x core.MinScreenH; anything smaller is a fatal
// startup condition reported as core.ErrTerminalTooSmall.
func New(cfg config.ClonyConfig, rt core.RuntimeConfig, opts ...Option) (*Game, error) {
	if err := rt.ValidateSize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("clony: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		catalog: config.NewCatalog(cfg.Difficulty),
	}
	g.arenaW, g.arenaH = rt.ArenaSize()

	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(rt.Seed))
	}

	g.obstacles = NewObstacleManager(g.rng, g.arenaW, g.arenaH, cfg.Obstacles)
	g.Reset()
	return g, nil
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Clony Bird"
}

// Reset returns the session to the state of a freshly constructed one:
// selection screen, default difficulty, level 1, no score, new obstacles.
// The random source keeps its stream, so gaps differ from the previous run.
func (g *Game) Reset() {
	g.phase = core.PhaseSelecting
	g.selectedIndex = g.catalog.DefaultIndex()
	g.multiplier = g.catalog.Option(g.selectedIndex).SpeedMultiplier
	g.level = 1
	g.levelScore = 0
	g.totalScore = 0
	g.levelUpTicks = 0
	g.bird = NewBird(g.arenaW, g.arenaH)
	g.obstacles.Reset()
	g.tick = 0
}

// Step advances the session by one tick with at most one input action.
func (g *Game) Step(action core.Action) core.StepResult {
	g.events = nil
	g.tick++

	if g.levelUpTicks > 0 {
		g.levelUpTicks--
	}

	switch g.phase {
	case core.PhaseSelecting:
		g.stepSelecting(action)

	case core.PhaseIdle:
		if action == core.ActionJump && g.transition(core.PhasePlaying) {
			g.emit(core.EventStarted)
			g.simulate()
		}

	case core.PhasePlaying:
		if action == core.ActionJump {
			g.Jump()
		}
		g.simulate()

	case core.PhaseGameOver:
		if action == core.ActionRestart && g.transition(core.PhaseSelecting) {
			g.Reset()
			g.emit(core.EventRestarted)
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// stepSelecting handles input on the difficulty selection screen.
func (g *Game) stepSelecting(action core.Action) {
	switch action {
	case core.ActionSelectLeft:
		g.selectedIndex = g.catalog.Prev(g.selectedIndex)
	case core.ActionSelectRight:
		g.selectedIndex = g.catalog.Next(g.selectedIndex)
	case core.ActionSelect1, core.ActionSelect2, core.ActionSelect3:
		if i, ok := action.SelectIndex(); ok && i < g.catalog.Len() {
			g.selectedIndex = i
		}
	case core.ActionConfirm:
		if g.transition(core.PhaseIdle) {
			g.multiplier = g.catalog.Option(g.selectedIndex).SpeedMultiplier
			g.emit(core.EventDifficultyChosen)
		}
	}
}

// Jump gives the bird the jump impulse. Outside of play it does nothing.
func (g *Game) Jump() {
	if g.phase != core.PhasePlaying {
		return
	}
	g.bird.Jump(g.cfg.Physics)
}

// Speed returns how many columns obstacles move per tick at the current level.
func (g *Game) Speed() float64 {
	return g.cfg.Levels.SpeedAt(g.level) * g.multiplier
}

// simulate runs one tick of the world. Order matters: the bird moves first,
// then the obstacles, then collisions and scoring are resolved, and finally
// spent obstacles are recycled.
func (g *Game) simulate() {
	speed := g.Speed()

	if g.bird.Advance(g.cfg.Physics, g.arenaH) {
		g.endGame()
		return
	}

	g.obstacles.Advance(speed)
	g.checkAndScore()
	g.obstacles.Recycle()
}

// emit records an event for the current tick.
func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		Level: g.level,
		Score: g.totalScore,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Level:    g.level,
		Score:    g.totalScore,
		GameOver: g.Over(),
	}
}

// Catalog returns the difficulty catalog offered at selection.
func (g *Game) Catalog() config.Catalog {
	return g.catalog
}
