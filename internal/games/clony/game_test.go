package clony

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/clony-bird/internal/config"
	"github.com/vovakirdan/clony-bird/internal/core"
)

func TestNewRejectsSmallTerminal(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"too narrow", 39, 24},
		{"too short", 80, 19},
		{"both", 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := core.RuntimeConfig{ScreenW: tt.w, ScreenH: tt.h}
			_, err := New(config.DefaultClonyConfig(), rt)
			if !errors.Is(err, core.ErrTerminalTooSmall) {
				t.Errorf("New(%dx%d) error = %v, want ErrTerminalTooSmall", tt.w, tt.h, err)
			}
		})
	}

	if _, err := New(config.DefaultClonyConfig(), core.RuntimeConfig{ScreenW: 40, ScreenH: 20}); err != nil {
		t.Errorf("New(40x20) error = %v, want nil", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultClonyConfig()
	cfg.Levels.Max = 0

	_, err := New(cfg, testRuntime(1))
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New() error = %v, want ErrInvalid", err)
	}
}

func TestFreshSession(t *testing.T) {
	g := newTestGame(t)

	if g.phase != core.PhaseSelecting {
		t.Errorf("phase = %v, want Selecting", g.phase)
	}
	if g.Started() || g.Over() || g.Selected() {
		t.Errorf("flags started=%v over=%v selected=%v, want all false", g.Started(), g.Over(), g.Selected())
	}
	if g.selectedIndex != 1 || g.multiplier != 1.0 {
		t.Errorf("difficulty = %d (x%v), want Normal", g.selectedIndex, g.multiplier)
	}
	if g.level != 1 || g.levelScore != 0 || g.totalScore != 0 {
		t.Errorf("level/score = %d/%d/%d, want 1/0/0", g.level, g.levelScore, g.totalScore)
	}
	if g.obstacles.Len() != 3 {
		t.Errorf("obstacles = %d, want 3", g.obstacles.Len())
	}
	if g.bird.X != 20 || g.bird.Y != 12 {
		t.Errorf("bird at (%v, %v), want (20, 12)", g.bird.X, g.bird.Y)
	}
}

func TestArenaExcludesReservedRows(t *testing.T) {
	rt := testRuntime(1)
	rt.ReservedRows = 1

	g, err := New(config.DefaultClonyConfig(), rt)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.arenaW != 80 || g.arenaH != 23 {
		t.Errorf("arena = %dx%d, want 80x23", g.arenaW, g.arenaH)
	}
}

func TestDifficultySelection(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    int
	}{
		{"default", nil, 1},
		{"right", []core.Action{core.ActionSelectRight}, 2},
		{"right wraps", []core.Action{core.ActionSelectRight, core.ActionSelectRight}, 0},
		{"left", []core.Action{core.ActionSelectLeft}, 0},
		{"left wraps", []core.Action{core.ActionSelectLeft, core.ActionSelectLeft}, 2},
		{"direct 1", []core.Action{core.ActionSelect1}, 0},
		{"direct 3", []core.Action{core.ActionSelect3}, 2},
		{"direct then right", []core.Action{core.ActionSelect3, core.ActionSelectRight}, 0},
		{"jump ignored", []core.Action{core.ActionJump, core.ActionRestart}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			for _, a := range tt.actions {
				g.Step(a)
			}
			if g.selectedIndex != tt.want {
				t.Errorf("selectedIndex = %d, want %d", g.selectedIndex, tt.want)
			}
			if g.phase != core.PhaseSelecting {
				t.Errorf("phase = %v, want Selecting", g.phase)
			}
		})
	}
}

func TestConfirmCommitsMultiplier(t *testing.T) {
	tests := []struct {
		pick core.Action
		want float64
	}{
		{core.ActionSelect1, 0.75},
		{core.ActionSelect2, 1.0},
		{core.ActionSelect3, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.pick.String(), func(t *testing.T) {
			g := newTestGame(t)
			g.Step(tt.pick)
			res := g.Step(core.ActionConfirm)

			if g.phase != core.PhaseIdle {
				t.Fatalf("phase = %v, want Idle", g.phase)
			}
			if g.multiplier != tt.want {
				t.Errorf("multiplier = %v, want %v", g.multiplier, tt.want)
			}
			if !res.Has(core.EventDifficultyChosen) {
				t.Error("missing difficulty event")
			}
		})
	}
}

func TestIdleStartsOnJumpSameTick(t *testing.T) {
	g := newTestGame(t, WithRand(fixedRand{v: 6}))
	g.Step(core.ActionConfirm)

	before := g.obstacles.Obstacles()[0].X
	for i := 0; i < 5; i++ {
		g.Step(core.ActionNone)
	}
	if g.phase != core.PhaseIdle || g.bird.Y != 12 || g.obstacles.Obstacles()[0].X != before {
		t.Fatal("world moved while idle")
	}

	res := g.Step(core.ActionJump)
	if g.phase != core.PhasePlaying {
		t.Fatalf("phase = %v, want Playing", g.phase)
	}
	if !res.Has(core.EventStarted) {
		t.Error("missing start event")
	}
	// The starting jump only starts the run; gravity acts on the same tick.
	if g.bird.Velocity != g.cfg.Physics.Gravity {
		t.Errorf("velocity = %v, want %v", g.bird.Velocity, g.cfg.Physics.Gravity)
	}
	if g.obstacles.Obstacles()[0].X != before-1 {
		t.Errorf("obstacle X = %v, want %v", g.obstacles.Obstacles()[0].X, before-1)
	}
}

func TestJumpOnlyWhilePlaying(t *testing.T) {
	g := newTestGame(t, WithRand(fixedRand{v: 6}))

	g.Jump()
	if g.bird.Velocity != 0 {
		t.Errorf("jump while selecting changed velocity to %v", g.bird.Velocity)
	}

	g.Step(core.ActionConfirm)
	g.Jump()
	if g.bird.Velocity != 0 {
		t.Errorf("jump while idle changed velocity to %v", g.bird.Velocity)
	}

	g.Step(core.ActionJump)
	g.Jump()
	if g.bird.Velocity != g.cfg.Physics.JumpImpulse {
		t.Errorf("jump while playing: velocity = %v, want %v", g.bird.Velocity, g.cfg.Physics.JumpImpulse)
	}

	g.endGame()
	g.bird.Velocity = 1
	g.Jump()
	if g.bird.Velocity != 1 {
		t.Errorf("jump after game over changed velocity to %v", g.bird.Velocity)
	}
}

func TestQuitLeavesSessionAlone(t *testing.T) {
	g := newTestGame(t, WithRand(fixedRand{v: 6}))

	phases := []core.Action{core.ActionConfirm, core.ActionJump}
	for _, next := range phases {
		before := g.phase
		g.Step(core.ActionQuit)
		if g.phase != before {
			t.Errorf("quit moved %v to %v", before, g.phase)
		}
		g.Step(next)
	}
}

func TestTransitionTable(t *testing.T) {
	phases := []core.Phase{core.PhaseSelecting, core.PhaseIdle, core.PhasePlaying, core.PhaseGameOver}
	legal := map[[2]core.Phase]bool{
		{core.PhaseSelecting, core.PhaseIdle}:    true,
		{core.PhaseIdle, core.PhasePlaying}:      true,
		{core.PhasePlaying, core.PhaseGameOver}:  true,
		{core.PhaseGameOver, core.PhaseSelecting}: true,
	}

	for _, from := range phases {
		for _, to := range phases {
			want := legal[[2]core.Phase{from, to}]
			if got := canTransition(from, to); got != want {
				t.Errorf("canTransition(%v, %v) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestRestartOnlyFromGameOver(t *testing.T) {
	g := newTestGame(t, WithRand(fixedRand{v: 6}))
	startPlaying(t, g)

	g.Step(core.ActionRestart)
	if g.phase != core.PhasePlaying {
		t.Errorf("restart while playing moved to %v", g.phase)
	}
}

func TestSpeedByLevelAndDifficulty(t *testing.T) {
	tests := []struct {
		pick  core.Action
		level int
		want  float64
	}{
		{core.ActionSelect2, 1, 1.0},
		{core.ActionSelect2, 3, 2.0},
		{core.ActionSelect2, 5, 3.0},
		{core.ActionSelect1, 1, 0.75},
		{core.ActionSelect3, 1, 1.5},
		{core.ActionSelect3, 5, 4.5},
	}

	for _, tt := range tests {
		g := newTestGame(t)
		g.Step(tt.pick)
		g.Step(core.ActionConfirm)
		g.level = tt.level
		if got := g.Speed(); got != tt.want {
			t.Errorf("Speed() at %v level %d = %v, want %v", tt.pick, tt.level, got, tt.want)
		}
	}
}

// runUntilOver plays without jumping until the bird hits the floor.
func runUntilOver(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 1000 && g.phase != core.PhaseGameOver; i++ {
		g.Step(core.ActionNone)
	}
	if g.phase != core.PhaseGameOver {
		t.Fatal("run did not end")
	}
}

func TestFallingEndsRun(t *testing.T) {
	g := newTestGame(t, WithRand(fixedRand{v: 6}))
	startPlaying(t, g)

	var sawOver bool
	for i := 0; i < 1000 && g.phase == core.PhasePlaying; i++ {
		res := g.Step(core.ActionNone)
		sawOver = res.Has(core.EventGameOver)
	}

	if g.phase != core.PhaseGameOver || !sawOver {
		t.Fatalf("phase = %v, game-over event = %v", g.phase, sawOver)
	}
	if g.bird.Y < float64(g.arenaH-2) {
		t.Errorf("bird y = %v, want at or below %d", g.bird.Y, g.arenaH-2)
	}
	if !g.Started() || !g.Over() || !g.State().GameOver {
		t.Error("flags not set after game over")
	}
}

func TestRestartEqualsFreshSession(t *testing.T) {
	fresh := newTestGame(t, WithRand(fixedRand{v: 6}))
	want := fresh.Snapshot()

	g := newTestGame(t, WithRand(fixedRand{v: 6}))
	g.Step(core.ActionSelect3)
	g.Step(core.ActionConfirm)
	g.Step(core.ActionJump)
	g.totalScore, g.levelScore, g.level, g.levelUpTicks = 42, 12, 2, 30
	runUntilOver(t, g)

	res := g.Step(core.ActionRestart)
	if !res.Has(core.EventRestarted) {
		t.Error("missing restart event")
	}

	if got := g.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("after restart:\n got %+v\nwant %+v", got, want)
	}
}

func TestRestartRegeneratesObstacles(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	runUntilOver(t, g)
	g.Step(core.ActionRestart)

	fresh := newTestGame(t).Snapshot()
	got := g.Snapshot()
	if len(got.Obstacles) != len(fresh.Obstacles) {
		t.Fatalf("obstacles = %d, want %d", len(got.Obstacles), len(fresh.Obstacles))
	}
	for i := range got.Obstacles {
		if got.Obstacles[i].X != fresh.Obstacles[i].X || got.Obstacles[i].Passed {
			t.Errorf("obstacle %d = %+v, want X=%v unpassed", i, got.Obstacles[i], fresh.Obstacles[i].X)
		}
	}
	got.Obstacles, fresh.Obstacles = nil, nil
	if !reflect.DeepEqual(got, fresh) {
		t.Errorf("after restart:\n got %+v\nwant %+v", got, fresh)
	}
}

func TestDeterminism(t *testing.T) {
	const seed = 12345
	inputs := make([]core.Action, 600)
	inputs[0] = core.ActionConfirm
	inputs[1] = core.ActionJump
	for i := 2; i < len(inputs); i++ {
		if i%9 == 0 {
			inputs[i] = core.ActionJump
		}
	}

	newGame := func() *Game {
		g, err := New(config.DefaultClonyConfig(), testRuntime(seed))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		return g
	}
	g1, g2 := newGame(), newGame()

	for i, a := range inputs {
		r1, r2 := g1.Step(a), g2.Step(a)
		if !reflect.DeepEqual(r1, r2) {
			t.Fatalf("tick %d: results differ: %+v vs %+v", i, r1, r2)
		}
		if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
			t.Fatalf("tick %d: snapshots differ", i)
		}
	}
}

// autopilot steers toward the gap of the next obstacle ahead of the bird.
func autopilot(g *Game) core.Action {
	for _, o := range g.obstacles.Obstacles() {
		if o.X+float64(g.cfg.Obstacles.Width) >= g.bird.X {
			if g.bird.Y > float64(o.GapCenterY)+1 && g.bird.Velocity > 0 {
				return core.ActionJump
			}
			return core.ActionNone
		}
	}
	return core.ActionNone
}

func TestSessionInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		g, err := New(config.DefaultClonyConfig(), testRuntime(seed))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		rng := rand.New(rand.NewSource(seed))
		phys := g.cfg.Physics
		lastTotal := 0

		for tick := 0; tick < 5000; tick++ {
			var action core.Action
			switch g.phase {
			case core.PhaseSelecting:
				action = []core.Action{core.ActionSelectLeft, core.ActionSelectRight, core.ActionConfirm}[rng.Intn(3)]
			case core.PhaseIdle:
				action = core.ActionJump
			case core.PhasePlaying:
				action = autopilot(g)
			case core.PhaseGameOver:
				action = core.ActionRestart
			}

			res := g.Step(action)

			if g.phase == core.PhaseSelecting {
				lastTotal = 0
			}
			if g.totalScore < lastTotal {
				t.Fatalf("seed %d tick %d: total score fell from %d to %d", seed, tick, lastTotal, g.totalScore)
			}
			lastTotal = g.totalScore

			if g.level < 1 || g.level > g.cfg.Levels.Max {
				t.Fatalf("seed %d tick %d: level %d out of range", seed, tick, g.level)
			}
			if g.levelScore < 0 || g.levelScore > g.cfg.Levels.PointsPerLevel {
				t.Fatalf("seed %d tick %d: level score %d out of range", seed, tick, g.levelScore)
			}
			if g.bird.Velocity < phys.MinVelocity || g.bird.Velocity > phys.MaxVelocity {
				t.Fatalf("seed %d tick %d: velocity %v out of range", seed, tick, g.bird.Velocity)
			}
			if g.obstacles.Len() < g.cfg.Obstacles.MinCount {
				t.Fatalf("seed %d tick %d: %d obstacles", seed, tick, g.obstacles.Len())
			}
			if res.State.GameOver != g.Over() || res.State.Score != g.totalScore {
				t.Fatalf("seed %d tick %d: state %+v out of sync", seed, tick, res.State)
			}
		}
	}
}
