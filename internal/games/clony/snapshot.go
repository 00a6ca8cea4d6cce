package clony

import "github.com/vovakirdan/clony-bird/internal/core"

// Snapshot captures the complete session state for rendering, determinism
// testing and debugging. It shares no memory with the game.
type Snapshot struct {
	Tick           uint64
	Phase          core.Phase
	Level          int
	MaxLevel       int
	LevelScore     int
	PointsPerLevel int
	TotalScore     int
	SelectedIndex  int
	Difficulty     string
	Multiplier     float64
	LevelUpTicks   int
	Bird           Bird
	Obstacles      []Obstacle
	ArenaW         int
	ArenaH         int
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	obs := make([]Obstacle, g.obstacles.Len())
	copy(obs, g.obstacles.Obstacles())

	return Snapshot{
		Tick:           g.tick,
		Phase:          g.phase,
		Level:          g.level,
		MaxLevel:       g.cfg.Levels.Max,
		LevelScore:     g.levelScore,
		PointsPerLevel: g.cfg.Levels.PointsPerLevel,
		TotalScore:     g.totalScore,
		SelectedIndex:  g.selectedIndex,
		Difficulty:     g.catalog.Option(g.selectedIndex).Label,
		Multiplier:     g.multiplier,
		LevelUpTicks:   g.levelUpTicks,
		Bird:           g.bird,
		Obstacles:      obs,
		ArenaW:         g.arenaW,
		ArenaH:         g.arenaH,
	}
}
