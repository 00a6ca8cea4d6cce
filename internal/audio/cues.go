// Package audio plays short tones for game events through the system speaker.
package audio

import (
	"time"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// Note is a single sine tone.
type Note struct {
	Freq float64       // Hz
	Dur  time.Duration // How long the tone lasts
}

var cues = map[core.EventKind][]Note{
	core.EventStarted: {
		{Freq: 523.25, Dur: 60 * time.Millisecond},
	},
	core.EventScored: {
		{Freq: 880, Dur: 40 * time.Millisecond},
	},
	core.EventLevelUp: {
		{Freq: 659.25, Dur: 80 * time.Millisecond},
		{Freq: 880, Dur: 80 * time.Millisecond},
		{Freq: 1046.5, Dur: 120 * time.Millisecond},
	},
	core.EventGameOver: {
		{Freq: 329.63, Dur: 150 * time.Millisecond},
		{Freq: 220, Dur: 250 * time.Millisecond},
	},
}

// CueFor returns the notes played for an event kind, or nil if the event is silent.
func CueFor(kind core.EventKind) []Note {
	return cues[kind]
}
