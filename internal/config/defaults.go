package config

import (
	_ "embed"
)

//go:embed defaults/clony.yaml
var defaultClonyYAML []byte

// DefaultClonyConfig returns the built-in configuration.
// It mirrors defaults/clony.yaml and is the fallback if the embedded file cannot be parsed.
func DefaultClonyConfig() ClonyConfig {
	return ClonyConfig{
		Physics: Physics{
			Gravity:     0.072,
			JumpImpulse: -0.8,
			MinVelocity: -1.5,
			MaxVelocity: 3.0,
		},
		Obstacles: Obstacles{
			Width:           3,
			Gap:             8,
			Spacing:         25,
			CollisionMargin: 0.3,
			MinCount:        3,
		},
		Levels: Levels{
			Max:            5,
			PointsPerLevel: 30,
			BaseSpeed:      1.0,
			SpeedStep:      0.5,
			BannerTicks:    60,
		},
		Difficulty: DifficultyConfig{
			DefaultIndex: 1,
			Options: []DifficultyOption{
				{Label: "Easy", SpeedMultiplier: 0.75},
				{Label: "Normal", SpeedMultiplier: 1.0},
				{Label: "Hard", SpeedMultiplier: 1.5},
			},
		},
		Loop: Loop{
			TickMS: 33,
		},
		Sound: Sound{
			Enabled: false,
			Volume:  0.5,
		},
		LogLevel: "info",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultClonyYAML
}
