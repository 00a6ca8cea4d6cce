package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/clony-bird/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player turns game events into tones mixed onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player. Volume is linear in [0, 1]; 0 mutes.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Init opens the speaker. It fails on machines without an audio device;
// callers treat that as "no sound" rather than a fatal error.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cue for kind. Events without a cue and calls before Init are ignored.
func (p *Player) Play(kind core.EventKind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := p.cue(kind)
	if err != nil || s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// cue builds the streamer for an event kind. A nil streamer means silence.
func (p *Player) cue(kind core.EventKind) (beep.Streamer, error) {
	notes := CueFor(kind)
	if len(notes) == 0 {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.1fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.Dur), tone))
	}
	return p.gain(beep.Seq(parts...)), nil
}

// gain applies the configured volume on a log2 scale.
func (p *Player) gain(s beep.Streamer) beep.Streamer {
	if p.volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(p.volume)}
}

// Nop is a player that never makes a sound.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.EventKind) {}
