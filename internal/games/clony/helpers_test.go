package clony

import (
	"testing"

	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
)

// fixedRand always returns v, capped to the requested range.
type fixedRand struct {
	v int
}

func (r fixedRand) Intn(n int) int {
	return min(r.v, n-1)
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    seed,
	}
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := New(config.DefaultClonyConfig(), testRuntime(1), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

// startPlaying confirms the default difficulty and starts the run.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(core.ActionConfirm)
	g.Step(core.ActionJump)
	if g.phase != core.PhasePlaying {
		t.Fatalf("phase = %v, want Playing", g.phase)
	}
}
