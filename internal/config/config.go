// Package config provides YAML/TOML configuration loading and the
// difficulty catalog for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// ClonyConfig contains all configuration for Clony Bird.
type ClonyConfig struct {
	Physics    Physics          `yaml:"physics" toml:"physics"`
	Obstacles  Obstacles        `yaml:"obstacles" toml:"obstacles"`
	Levels     Levels           `yaml:"levels" toml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Loop       Loop             `yaml:"loop" toml:"loop"`
	Sound      Sound            `yaml:"sound" toml:"sound"`
	LogLevel   string           `yaml:"log_level" toml:"log_level"`
}

// Physics defines the bird's per-tick kinematics.
type Physics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	MinVelocity float64 `yaml:"min_velocity" toml:"min_velocity"`
	MaxVelocity float64 `yaml:"max_velocity" toml:"max_velocity"`
}

// Obstacles defines obstacle geometry and spawning.
type Obstacles struct {
	Width           int     `yaml:"width" toml:"width"`
	Gap             int     `yaml:"gap" toml:"gap"`
	Spacing         int     `yaml:"spacing" toml:"spacing"`
	CollisionMargin float64 `yaml:"collision_margin" toml:"collision_margin"`
	MinCount        int     `yaml:"min_count" toml:"min_count"`
}

// Levels defines level progression.
type Levels struct {
	Max            int     `yaml:"max" toml:"max"`
	PointsPerLevel int     `yaml:"points_per_level" toml:"points_per_level"`
	BaseSpeed      float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedStep      float64 `yaml:"speed_step" toml:"speed_step"`
	BannerTicks    int     `yaml:"banner_ticks" toml:"banner_ticks"`
}

// SpeedAt returns the obstacle speed for a level before the difficulty multiplier.
func (l Levels) SpeedAt(level int) float64 {
	return l.BaseSpeed + float64(level-1)*l.SpeedStep
}

// Loop defines the fixed frame duration.
type Loop struct {
	TickMS int `yaml:"tick_ms" toml:"tick_ms"`
}

// Interval returns the frame duration.
func (l Loop) Interval() time.Duration {
	return time.Duration(l.TickMS) * time.Millisecond
}

// Sound defines the optional sound cues.
type Sound struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"`
}

// Validate checks that the configuration can drive a playable game.
func (c ClonyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	p := c.Physics
	check(p.Gravity > 0, "physics.gravity must be positive, got %v", p.Gravity)
	check(p.JumpImpulse < 0, "physics.jump_impulse must be negative, got %v", p.JumpImpulse)
	check(p.MinVelocity < 0 && p.MaxVelocity > 0,
		"physics velocity range must straddle zero, got [%v, %v]", p.MinVelocity, p.MaxVelocity)

	o := c.Obstacles
	check(o.Width > 0, "obstacles.width must be positive, got %d", o.Width)
	check(o.Gap >= 2, "obstacles.gap must be at least 2, got %d", o.Gap)
	check(o.Spacing > o.Width, "obstacles.spacing (%d) must exceed width (%d)", o.Spacing, o.Width)
	check(o.CollisionMargin >= 0, "obstacles.collision_margin must not be negative, got %v", o.CollisionMargin)
	check(o.MinCount > 0, "obstacles.min_count must be positive, got %d", o.MinCount)

	l := c.Levels
	check(l.Max >= 1, "levels.max must be at least 1, got %d", l.Max)
	check(l.PointsPerLevel >= 1, "levels.points_per_level must be at least 1, got %d", l.PointsPerLevel)
	check(l.BaseSpeed > 0, "levels.base_speed must be positive, got %v", l.BaseSpeed)
	check(l.SpeedStep >= 0, "levels.speed_step must not be negative, got %v", l.SpeedStep)
	check(l.BannerTicks >= 0, "levels.banner_ticks must not be negative, got %d", l.BannerTicks)

	check(c.Loop.TickMS > 0, "loop.tick_ms must be positive, got %d", c.Loop.TickMS)
	check(c.Sound.Volume >= 0 && c.Sound.Volume <= 1, "sound.volume must be in [0, 1], got %v", c.Sound.Volume)

	if err := c.Difficulty.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
