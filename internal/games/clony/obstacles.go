package clony

import (
	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
)

// Rand is the random source used to place gaps. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Obstacle is a scrolling barrier with a vertical gap.
type Obstacle struct {
	X          float64 // Left edge, decreasing over time
	GapCenterY int     // Row at the middle of the gap
	Passed     bool    // Whether the bird has already scored this obstacle
}

// GapSpan returns the rows the bird may occupy while inside the obstacle.
// Both ends are part of the gap.
func (o Obstacle) GapSpan(gap int) core.Span {
	return core.NewSpan(float64(o.GapCenterY-gap/2), float64(o.GapCenterY+gap/2))
}

// HitSpan returns the columns where the obstacle can hit the bird,
// widened by margin on each side. The right end is exclusive.
func (o Obstacle) HitSpan(width int, margin float64) core.Span {
	return core.NewSpan(o.X, o.X+float64(width)).Grow(margin)
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       Rand
	arenaW    int
	arenaH    int
	cfg       config.Obstacles
}

// NewObstacleManager creates a manager and fills in the initial obstacles.
func NewObstacleManager(rng Rand, arenaW, arenaH int, cfg config.Obstacles) *ObstacleManager {
	m := &ObstacleManager{
		obstacles: make([]Obstacle, 0, cfg.MinCount+1),
		rng:       rng,
		arenaW:    arenaW,
		arenaH:    arenaH,
		cfg:       cfg,
	}
	m.Reset()
	return m
}

// Reset discards every obstacle and lays out a fresh initial set, starting at
// the middle of the arena and spaced evenly to the right.
func (m *ObstacleManager) Reset() {
	m.obstacles = m.obstacles[:0]
	startX := m.arenaW / 2
	for i := 0; i < m.cfg.MinCount; i++ {
		m.spawn(float64(startX + i*m.cfg.Spacing))
	}
}

// Advance moves every obstacle left by speed columns.
func (m *ObstacleManager) Advance(speed float64) {
	for i := range m.obstacles {
		m.obstacles[i].X -= speed
	}
}

// Recycle drops obstacles that have fully left the arena and tops the set back
// up to the minimum count. New obstacles go one spacing beyond the rightmost
// one, or at the arena centre if none are left. Returns how many were dropped.
func (m *ObstacleManager) Recycle() int {
	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		if o.X > -float64(m.cfg.Width) {
			kept = append(kept, o)
		}
	}
	dropped := len(m.obstacles) - len(kept)
	m.obstacles = kept

	for len(m.obstacles) < m.cfg.MinCount {
		x := float64(m.arenaW / 2)
		if len(m.obstacles) > 0 {
			x = m.maxX() + float64(m.cfg.Spacing)
		}
		m.spawn(x)
	}
	return dropped
}

// Obstacles returns the live obstacles in spawn order.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// Len returns the number of live obstacles.
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}

func (m *ObstacleManager) maxX() float64 {
	x := m.obstacles[0].X
	for _, o := range m.obstacles[1:] {
		x = max(x, o.X)
	}
	return x
}

func (m *ObstacleManager) spawn(x float64) {
	m.obstacles = append(m.obstacles, Obstacle{
		X:          x,
		GapCenterY: m.gapCenter(),
	})
}

// gapCenter picks a row uniformly in [h/4, 3h/4].
func (m *ObstacleManager) gapCenter() int {
	lo := m.arenaH / 4
	hi := 3 * m.arenaH / 4
	if hi <= lo {
		return lo
	}
	return lo + m.rng.Intn(hi-lo+1)
}
