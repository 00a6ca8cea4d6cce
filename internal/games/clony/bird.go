package clony

import (
	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
)

// Bird is the player-controlled glider.
// X is fixed for the lifetime of a run; only Y and Velocity change.
type Bird struct {
	X        float64
	Y        float64
	Velocity float64
}

// NewBird places the bird a quarter of the way across and halfway down the arena.
func NewBird(arenaW, arenaH int) Bird {
	return Bird{
		X: float64(arenaW / 4),
		Y: float64(arenaH / 2),
	}
}

// Advance applies one tick of gravity, clamps the velocity and moves the bird.
// It reports whether the bird left the playable band (ceiling or floor).
func (b *Bird) Advance(phys config.Physics, arenaH int) bool {
	b.Velocity = core.ClampF(b.Velocity+phys.Gravity, phys.MinVelocity, phys.MaxVelocity)
	b.Y += b.Velocity
	return b.Y < 1 || b.Y >= float64(arenaH-2)
}

// Jump replaces the current velocity with the jump impulse.
func (b *Bird) Jump(phys config.Physics) {
	b.Velocity = phys.JumpImpulse
}
