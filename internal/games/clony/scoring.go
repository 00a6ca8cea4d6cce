package clony

import "github.com/vovakirdan/clony-bird/internal/core"

// checkAndScore runs after movement each tick. Every obstacle the bird has
// cleared is scored, then the first obstacle overlapping the bird ends the run.
func (g *Game) checkAndScore() {
	obs := g.obstacles.obstacles
	width := float64(g.cfg.Obstacles.Width)

	// Several obstacles may resolve in the same tick; each one scores.
	for i := range obs {
		if obs[i].Passed || obs[i].X+width >= g.bird.X {
			continue
		}
		obs[i].Passed = true
		g.levelScore++
		g.totalScore++
		g.emit(core.EventScored)

		if g.levelScore >= g.cfg.Levels.PointsPerLevel {
			g.levelUp()
		}
	}

	for _, o := range obs {
		if g.collides(o) {
			g.endGame()
			return
		}
	}
}

// collides reports whether the bird is inside the obstacle's columns but
// outside its gap. The horizontal test has a small margin; the gap test has none.
func (g *Game) collides(o Obstacle) bool {
	hit := o.HitSpan(g.cfg.Obstacles.Width, g.cfg.Obstacles.CollisionMargin)
	if !hit.ContainsHalfOpen(g.bird.X) {
		return false
	}
	return !o.GapSpan(g.cfg.Obstacles.Gap).ContainsClosed(g.bird.Y)
}

// levelUp advances to the next level, or saturates the level score at the top level.
func (g *Game) levelUp() {
	if g.level < g.cfg.Levels.Max {
		g.level++
		g.levelScore = 0
		g.levelUpTicks = g.cfg.Levels.BannerTicks
		g.emit(core.EventLevelUp)
		return
	}
	g.levelScore = g.cfg.Levels.PointsPerLevel
}

// endGame moves the run to game over. Calling it again has no effect.
func (g *Game) endGame() {
	if g.phase == core.PhaseGameOver {
		return
	}
	if g.transition(core.PhaseGameOver) {
		g.emit(core.EventGameOver)
	}
}
